package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
	"github.com/custodia-labs/chemeq-cli/internal/core/ports/driven"
	"github.com/custodia-labs/chemeq-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyPivotTolerance = "solver.pivot_tolerance"
	KeyTolerance      = "solver.tolerance"
	KeyMaxDenominator = "solver.max_denominator"
	KeyDisplayFormat  = "display.format"
	KeyPrecision      = "display.precision"
	KeyStorageBackend = "storage.backend"
	KeyStoragePath    = "storage.path"
	KeyMCPRateLimit   = "mcp.rate_limit"
	KeyMCPBurst       = "mcp.burst"
)

var settingKeys = []string{
	KeyPivotTolerance,
	KeyTolerance,
	KeyMaxDenominator,
	KeyDisplayFormat,
	KeyPrecision,
	KeyStorageBackend,
	KeyStoragePath,
	KeyMCPRateLimit,
	KeyMCPBurst,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings. Missing or unrecognised
// values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Solver: domain.SolverSettings{
			PivotTolerance: s.getFloat(KeyPivotTolerance, defaults.Solver.PivotTolerance),
			Tolerance:      s.getFloat(KeyTolerance, defaults.Solver.Tolerance),
			MaxDenominator: s.getInt(KeyMaxDenominator, defaults.Solver.MaxDenominator),
		},
		Display: domain.DisplaySettings{
			Format:    s.getDisplayFormat(defaults.Display.Format),
			Precision: s.getInt(KeyPrecision, defaults.Display.Precision),
		},
		Storage: domain.StorageSettings{
			Backend: s.getStorageBackend(defaults.Storage.Backend),
			Path:    s.configStore.GetString(KeyStoragePath),
		},
		MCP: domain.MCPSettings{
			RateLimit: s.getFloat(KeyMCPRateLimit, defaults.MCP.RateLimit),
			Burst:     s.getInt(KeyMCPBurst, defaults.MCP.Burst),
		},
	}

	return settings, nil
}

// Save validates and persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{KeyPivotTolerance, settings.Solver.PivotTolerance},
		{KeyTolerance, settings.Solver.Tolerance},
		{KeyMaxDenominator, settings.Solver.MaxDenominator},
		{KeyDisplayFormat, settings.Display.Format.String()},
		{KeyPrecision, settings.Display.Precision},
		{KeyStorageBackend, settings.Storage.Backend.String()},
		{KeyStoragePath, settings.Storage.Path},
		{KeyMCPRateLimit, settings.MCP.RateLimit},
		{KeyMCPBurst, settings.MCP.Burst},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Keys returns the recognised setting keys.
func (s *SettingsService) Keys() []string {
	out := make([]string, len(settingKeys))
	copy(out, settingKeys)
	return out
}

// Set updates a single setting from text.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	value = strings.TrimSpace(value)

	switch key {
	case KeyPivotTolerance:
		err = parseFloatInto(value, &settings.Solver.PivotTolerance)
	case KeyTolerance:
		err = parseFloatInto(value, &settings.Solver.Tolerance)
	case KeyMaxDenominator:
		err = parseIntInto(value, &settings.Solver.MaxDenominator)
	case KeyDisplayFormat:
		settings.Display.Format = domain.DisplayFormat(strings.ToLower(value))
	case KeyPrecision:
		err = parseIntInto(value, &settings.Display.Precision)
	case KeyStorageBackend:
		settings.Storage.Backend = domain.StorageBackend(strings.ToLower(value))
	case KeyStoragePath:
		settings.Storage.Path = value
	case KeyMCPRateLimit:
		err = parseFloatInto(value, &settings.MCP.RateLimit)
	case KeyMCPBurst:
		err = parseIntInto(value, &settings.MCP.Burst)
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidSettings, key)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidSettings, key, err)
	}

	return s.Save(settings)
}

// SetSolver updates the numeric policy of the balancer.
func (s *SettingsService) SetSolver(solver domain.SolverSettings) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Solver = solver
	return s.Save(settings)
}

// SetDisplayFormat updates the equation rendering style.
func (s *SettingsService) SetDisplayFormat(format domain.DisplayFormat) error {
	if !format.IsValid() {
		return fmt.Errorf("%w: unknown display format %q", domain.ErrInvalidSettings, format)
	}
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Display.Format = format
	return s.Save(settings)
}

// SetPrecision updates the significant digits for amounts.
func (s *SettingsService) SetPrecision(digits int) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Display.Precision = digits
	return s.Save(settings)
}

// SetStorageBackend selects the library backend.
func (s *SettingsService) SetStorageBackend(backend domain.StorageBackend, path string) error {
	if !backend.IsValid() {
		return fmt.Errorf("%w: unknown storage backend %q", domain.ErrInvalidSettings, backend)
	}
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Storage.Backend = backend
	settings.Storage.Path = path
	return s.Save(settings)
}

// Validate checks the stored settings, including values Get replaced with
// defaults because they were unrecognised.
func (s *SettingsService) Validate() error {
	if f := s.configStore.GetString(KeyDisplayFormat); f != "" && !domain.DisplayFormat(f).IsValid() {
		return fmt.Errorf("%w: unknown display format %q", domain.ErrInvalidSettings, f)
	}
	if b := s.configStore.GetString(KeyStorageBackend); b != "" && !domain.StorageBackend(b).IsValid() {
		return fmt.Errorf("%w: unknown storage backend %q", domain.ErrInvalidSettings, b)
	}
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Validate()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat64(key)
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getDisplayFormat(defaultVal domain.DisplayFormat) domain.DisplayFormat {
	format := domain.DisplayFormat(s.configStore.GetString(KeyDisplayFormat))
	if !format.IsValid() {
		return defaultVal
	}
	return format
}

func (s *SettingsService) getStorageBackend(defaultVal domain.StorageBackend) domain.StorageBackend {
	backend := domain.StorageBackend(s.configStore.GetString(KeyStorageBackend))
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}

func parseFloatInto(value string, dst *float64) error {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func parseIntInto(value string, dst *int) error {
	v, err := strconv.Atoi(value)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
