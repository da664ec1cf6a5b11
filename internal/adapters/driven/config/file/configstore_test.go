package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_WithNestedDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("display.format", "plain"))

	_, err = os.Stat(filepath.Join(dir, "config.toml"))
	assert.NoError(t, err)
}

func TestNewConfigStoreAt_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom", "chemeq.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0700))
	require.NoError(t, os.WriteFile(path, []byte("[display]\nprecision = 4\n"), 0600))

	store, err := NewConfigStoreAt(path)
	require.NoError(t, err)
	assert.Equal(t, path, store.Path())
	assert.Equal(t, 4, store.GetInt("display.precision"))
}

func TestDefaultDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}
	dir, err := DefaultDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".chemeq"), dir)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("display.format", "latex"))
	require.NoError(t, store.Set("display.precision", 4))
	require.NoError(t, store.Set("solver.tolerance", 1e-6))
	require.NoError(t, store.Set("debug.enabled", true))

	assert.Equal(t, "latex", store.GetString("display.format"))
	assert.Equal(t, 4, store.GetInt("display.precision"))
	assert.Equal(t, 1e-6, store.GetFloat64("solver.tolerance"))
	assert.Equal(t, 4.0, store.GetFloat64("display.precision"))
	assert.True(t, store.GetBool("debug.enabled"))

	assert.Equal(t, "", store.GetString("missing"))
	assert.Equal(t, 0, store.GetInt("display.format"))
	assert.Equal(t, 0.0, store.GetFloat64("display.format"))
	assert.False(t, store.GetBool("display.format"))
	assert.Nil(t, store.GetStringSlice("missing"))
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Set("solver.pivot_tolerance", 1e-12))
	require.NoError(t, store.Set("solver.max_denominator", 500))
	require.NoError(t, store.Set("storage.backend", "memory"))

	reopened, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 1e-12, reopened.GetFloat64("solver.pivot_tolerance"))
	assert.Equal(t, 500, reopened.GetInt("solver.max_denominator"))
	assert.Equal(t, "memory", reopened.GetString("storage.backend"))
}

func TestConfigStore_WritesTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Set("display.format", "plain"))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[display]")
	assert.Contains(t, string(data), "format = 'plain'")
}

func TestConfigStore_ReadsHandWrittenTables(t *testing.T) {
	tmpDir := t.TempDir()
	content := "[solver]\ntolerance = 1e-5\nmax_denominator = 200\n\n[display]\nformat = \"latex\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 1e-5, store.GetFloat64("solver.tolerance"))
	assert.Equal(t, 200, store.GetInt("solver.max_denominator"))
	assert.Equal(t, "latex", store.GetString("display.format"))
}

func TestConfigStore_GetStringSlice(t *testing.T) {
	tmpDir := t.TempDir()
	content := "names = [\"a\", \"b\"]\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, store.GetStringSlice("names"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Save())

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("not [valid toml"), 0600))

	_, err := NewConfigStore(tmpDir)
	assert.Error(t, err)
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), nil, 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Set("display.precision", 3))
	assert.Equal(t, 3, store.GetInt("display.precision"))
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Set("display.precision", i)
			_ = store.GetInt("display.precision")
		}()
	}
	wg.Wait()
}

func TestNestMap(t *testing.T) {
	nested := nestMap(map[string]any{
		"solver.tolerance": 1e-6,
		"solver.max":       10,
		"top":              true,
		"top.child":        "kept flat",
	})

	assert.Equal(t, map[string]any{"tolerance": 1e-6, "max": 10}, nested["solver"])
	assert.Equal(t, true, nested["top"])
	assert.Equal(t, "kept flat", nested["top.child"])
	assert.Equal(t, nestMap(map[string]any{}), map[string]any{})

	assert.Equal(t, map[string]any{
		"solver.tolerance": 1e-6,
		"solver.max":       10,
	}, flattenMap(map[string]any{"solver": map[string]any{"tolerance": 1e-6, "max": 10}}, ""))
}
