// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - ConfigStore: Application configuration (TOML file)
//   - ReactionStore: Reaction library persistence (memory or SQLite)
//   - WorksheetLoader: Reads batch worksheets (HCL files)
//   - FileWatcher: Reports writes to a worksheet file (fsnotify)
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
