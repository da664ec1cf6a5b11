package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayFormat_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		format   DisplayFormat
		expected bool
	}{
		{"plain is valid", DisplayFormatPlain, true},
		{"unicode is valid", DisplayFormatUnicode, true},
		{"latex is valid", DisplayFormatLaTeX, true},
		{"empty string is invalid", DisplayFormat(""), false},
		{"unknown is invalid", DisplayFormat("html"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.IsValid())
		})
	}
}

func TestDisplayFormat_Description(t *testing.T) {
	for _, f := range AllDisplayFormats() {
		assert.NotEqual(t, unknownDescription, f.Description(), f.String())
	}
	assert.Equal(t, unknownDescription, DisplayFormat("x").Description())
}

func TestStorageBackend_IsValid(t *testing.T) {
	assert.True(t, StorageBackendMemory.IsValid())
	assert.True(t, StorageBackendSQLite.IsValid())
	assert.False(t, StorageBackend("postgres").IsValid())
	assert.Equal(t, "sqlite", StorageBackendSQLite.String())
	assert.Equal(t, unknownDescription, StorageBackend("").Description())
}

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, 1e-9, s.Solver.PivotTolerance)
	assert.Equal(t, 1e-6, s.Solver.Tolerance)
	assert.Equal(t, 10000, s.Solver.MaxDenominator)
	assert.Equal(t, DisplayFormatUnicode, s.Display.Format)
	assert.Equal(t, 6, s.Display.Precision)
	assert.Equal(t, StorageBackendSQLite, s.Storage.Backend)
	require.NoError(t, s.Validate())
}

func TestAppSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AppSettings)
	}{
		{"zero pivot tolerance", func(s *AppSettings) { s.Solver.PivotTolerance = 0 }},
		{"negative tolerance", func(s *AppSettings) { s.Solver.Tolerance = -1 }},
		{"tolerance of one half", func(s *AppSettings) { s.Solver.Tolerance = 0.5 }},
		{"zero max denominator", func(s *AppSettings) { s.Solver.MaxDenominator = 0 }},
		{"unknown format", func(s *AppSettings) { s.Display.Format = "html" }},
		{"zero precision", func(s *AppSettings) { s.Display.Precision = 0 }},
		{"unknown backend", func(s *AppSettings) { s.Storage.Backend = "redis" }},
		{"negative rate", func(s *AppSettings) { s.MCP.RateLimit = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultAppSettings()
			tt.mutate(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidSettings)
		})
	}
}
