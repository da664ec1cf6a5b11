package domain

import (
	"fmt"
	"math"
)

const unknownDescription = "Unknown"

// DisplayFormat defines how equations and amounts are rendered.
type DisplayFormat string

// Available display formats.
const (
	// DisplayFormatPlain uses ASCII digits and "->".
	DisplayFormatPlain DisplayFormat = "plain"

	// DisplayFormatUnicode uses subscript digits and "→".
	DisplayFormatUnicode DisplayFormat = "unicode"

	// DisplayFormatLaTeX emits LaTeX markup.
	DisplayFormatLaTeX DisplayFormat = "latex"
)

// IsValid returns true if the display format is recognised.
func (f DisplayFormat) IsValid() bool {
	switch f {
	case DisplayFormatPlain, DisplayFormatUnicode, DisplayFormatLaTeX:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f DisplayFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f DisplayFormat) Description() string {
	switch f {
	case DisplayFormatPlain:
		return "Plain text (H2 + O2 -> H2O)"
	case DisplayFormatUnicode:
		return "Unicode subscripts (H₂ + O₂ → H₂O)"
	case DisplayFormatLaTeX:
		return "LaTeX markup (H_{2} \\rightarrow ...)"
	default:
		return unknownDescription
	}
}

// StorageBackend selects where the reaction library lives.
type StorageBackend string

// Available storage backends.
const (
	// StorageBackendMemory keeps the library for the life of the process.
	StorageBackendMemory StorageBackend = "memory"

	// StorageBackendSQLite keeps the library in a SQLite file.
	StorageBackendSQLite StorageBackend = "sqlite"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageBackendMemory, StorageBackendSQLite:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b StorageBackend) Description() string {
	switch b {
	case StorageBackendMemory:
		return "In-memory (not persisted)"
	case StorageBackendSQLite:
		return "SQLite file"
	default:
		return unknownDescription
	}
}

// SolverSettings holds the numeric policy of the balancer.
type SolverSettings struct {
	// PivotTolerance is the relative threshold below which a pivot
	// candidate counts as zero during elimination.
	PivotTolerance float64

	// Tolerance is the distance to the nearest integer accepted during
	// rational reconstruction.
	Tolerance float64

	// MaxDenominator bounds the reconstruction search.
	MaxDenominator int
}

// Validate checks the solver settings are usable.
func (s SolverSettings) Validate() error {
	if !(s.PivotTolerance > 0) || math.IsInf(s.PivotTolerance, 0) || s.PivotTolerance >= 1 {
		return fmt.Errorf("%w: pivot tolerance must be in (0, 1), got %g", ErrInvalidSettings, s.PivotTolerance)
	}
	if !(s.Tolerance > 0) || math.IsInf(s.Tolerance, 0) || s.Tolerance >= 0.5 {
		return fmt.Errorf("%w: tolerance must be in (0, 0.5), got %g", ErrInvalidSettings, s.Tolerance)
	}
	if s.MaxDenominator < 1 {
		return fmt.Errorf("%w: max denominator must be >= 1, got %d", ErrInvalidSettings, s.MaxDenominator)
	}
	return nil
}

// DisplaySettings holds output formatting.
type DisplaySettings struct {
	// Format is the equation rendering style.
	Format DisplayFormat

	// Precision is the number of significant digits for amounts.
	Precision int
}

// StorageSettings holds library storage configuration.
type StorageSettings struct {
	// Backend selects memory or sqlite.
	Backend StorageBackend

	// Path is the sqlite file. Empty means the default under the config dir.
	Path string
}

// MCPSettings holds MCP server configuration.
type MCPSettings struct {
	// RateLimit is tool calls per second. Zero disables limiting.
	RateLimit float64

	// Burst is the limiter bucket size.
	Burst int
}

// AppSettings holds all application settings.
type AppSettings struct {
	Solver  SolverSettings
	Display DisplaySettings
	Storage StorageSettings
	MCP     MCPSettings
}

// Validate checks every section.
func (s AppSettings) Validate() error {
	if err := s.Solver.Validate(); err != nil {
		return err
	}
	if !s.Display.Format.IsValid() {
		return fmt.Errorf("%w: unknown display format %q", ErrInvalidSettings, s.Display.Format)
	}
	if s.Display.Precision < 1 || s.Display.Precision > 17 {
		return fmt.Errorf("%w: precision must be between 1 and 17, got %d", ErrInvalidSettings, s.Display.Precision)
	}
	if !s.Storage.Backend.IsValid() {
		return fmt.Errorf("%w: unknown storage backend %q", ErrInvalidSettings, s.Storage.Backend)
	}
	if s.MCP.RateLimit < 0 || s.MCP.Burst < 0 {
		return fmt.Errorf("%w: rate limit and burst must not be negative", ErrInvalidSettings)
	}
	return nil
}

// Solver defaults.
const (
	DefaultPivotTolerance = 1e-9
	DefaultTolerance      = 1e-6
	DefaultMaxDenominator = 10000
)

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Solver: DefaultSolverSettings(),
		Display: DisplaySettings{
			Format:    DisplayFormatUnicode,
			Precision: 6,
		},
		Storage: StorageSettings{
			Backend: StorageBackendSQLite,
		},
		MCP: MCPSettings{
			RateLimit: 10,
			Burst:     20,
		},
	}
}

// DefaultSolverSettings returns the default numeric policy.
func DefaultSolverSettings() SolverSettings {
	return SolverSettings{
		PivotTolerance: DefaultPivotTolerance,
		Tolerance:      DefaultTolerance,
		MaxDenominator: DefaultMaxDenominator,
	}
}

// AllDisplayFormats returns all available display formats.
func AllDisplayFormats() []DisplayFormat {
	return []DisplayFormat{
		DisplayFormatPlain,
		DisplayFormatUnicode,
		DisplayFormatLaTeX,
	}
}

// AllStorageBackends returns all available storage backends.
func AllStorageBackends() []StorageBackend {
	return []StorageBackend{
		StorageBackendMemory,
		StorageBackendSQLite,
	}
}
