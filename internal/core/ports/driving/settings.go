package driving

import "github.com/custodia-labs/chemeq-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set updates a single setting from its dotted key and text value.
	Set(key, value string) error

	// Keys returns the recognised setting keys in display order.
	Keys() []string

	// SetSolver updates the numeric policy of the balancer.
	SetSolver(solver domain.SolverSettings) error

	// SetDisplayFormat updates the equation rendering style.
	SetDisplayFormat(format domain.DisplayFormat) error

	// SetPrecision updates the significant digits for amounts.
	SetPrecision(digits int) error

	// SetStorageBackend selects the library backend and optional path.
	SetStorageBackend(backend domain.StorageBackend, path string) error

	// Validate checks the stored settings.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
