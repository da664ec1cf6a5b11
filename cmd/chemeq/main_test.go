package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/chemeq-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
)

func TestWire_MemoryBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[storage]\nbackend = \"memory\"\n"), 0o600))

	s, cleanup, err := wire(cli.Options{ConfigPath: path})
	require.NoError(t, err)
	defer func() { assert.NoError(t, cleanup()) }()

	require.NotNil(t, s.Calculator)
	require.NotNil(t, s.Catalog)
	require.NotNil(t, s.Settings)
	require.NotNil(t, s.Worksheet)

	_, err = s.Catalog.Save(t.Context(), "water", "H2 + O2 -> H2O", "")
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(filepath.Dir(path), "library.db"))
	assert.True(t, os.IsNotExist(err))
}

func TestWire_SQLiteBesideConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	s, cleanup, err := wire(cli.Options{ConfigPath: path})
	require.NoError(t, err)

	_, err = s.Catalog.Save(t.Context(), "water", "H2 + O2 -> H2O", "")
	require.NoError(t, err)
	require.NoError(t, cleanup())

	assert.FileExists(t, filepath.Join(dir, "library.db"))

	s, cleanup, err = wire(cli.Options{ConfigPath: path})
	require.NoError(t, err)
	defer func() { assert.NoError(t, cleanup()) }()

	r, err := s.Catalog.Get(t.Context(), "water")
	require.NoError(t, err)
	assert.Equal(t, "H2 + O2 -> H2O", r.Equation)
}

func TestWire_SettingsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[display]\nformat = \"latex\"\nprecision = 3\n\n[storage]\nbackend = \"memory\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	s, cleanup, err := wire(cli.Options{ConfigPath: path})
	require.NoError(t, err)
	defer cleanup()

	settings, err := s.Settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DisplayFormatLaTeX, settings.Display.Format)
	assert.Equal(t, 3, settings.Display.Precision)
}

func TestOpenLibrary_FallsBackToMemory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	store, cleanup := openLibrary(domain.StorageSettings{
		Backend: domain.StorageBackendSQLite,
		Path:    filepath.Join(blocker, "nested", "library.db"),
	}, "")
	require.NotNil(t, store)
	assert.NoError(t, cleanup())
}
