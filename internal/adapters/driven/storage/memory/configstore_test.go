package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("display.format", "latex"))
	require.NoError(t, store.Set("display.format", "plain"))

	val, ok := store.Get("display.format")
	assert.True(t, ok)
	assert.Equal(t, "plain", val)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("s", "text")
	_ = store.Set("i", 42)
	_ = store.Set("i64", int64(7))
	_ = store.Set("f", 1e-9)
	_ = store.Set("b", true)
	_ = store.Set("list", []any{"a", 1, "b"})

	assert.Equal(t, "text", store.GetString("s"))
	assert.Equal(t, "", store.GetString("i"))

	assert.Equal(t, 42, store.GetInt("i"))
	assert.Equal(t, 7, store.GetInt("i64"))
	assert.Equal(t, 0, store.GetInt("s"))

	assert.Equal(t, 1e-9, store.GetFloat64("f"))
	assert.Equal(t, 42.0, store.GetFloat64("i"))
	assert.Equal(t, 7.0, store.GetFloat64("i64"))
	assert.Equal(t, 0.0, store.GetFloat64("s"))
	assert.Equal(t, 0.0, store.GetFloat64("missing"))

	assert.True(t, store.GetBool("b"))
	assert.False(t, store.GetBool("s"))

	assert.Equal(t, []string{"a", "b"}, store.GetStringSlice("list"))
	assert.Nil(t, store.GetStringSlice("s"))
}

func TestConfigStore_PersistenceIsNoOp(t *testing.T) {
	store := NewConfigStore()
	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
	assert.Equal(t, ":memory:", store.Path())
}
