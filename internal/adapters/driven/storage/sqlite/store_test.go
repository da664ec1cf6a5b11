package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(filepath.Join(t.TempDir(), "library.db"))
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, store.Close()) })
	return store
}

func TestNewStore_RunsMigrations(t *testing.T) {
	store := setupTestStore(t)

	v, err := store.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, "library.db", filepath.Base(store.Path()))
}

func TestNewStore_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "library.db")

	store, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.ReactionStore().Save(ctx, domain.SavedReaction{
		ID: "r1", Name: "water", Equation: "H2 + O2 -> H2O",
	}))
	require.NoError(t, store.Close())

	reopened, err := NewStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, err := reopened.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	got, err := reopened.ReactionStore().Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "water", got.Name)
}

func TestReactionStore_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	rs := setupTestStore(t).ReactionStore()
	created := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	r := domain.SavedReaction{
		ID:        "r1",
		Name:      "water",
		Equation:  "H2 + O2 -> H2O",
		Notes:     "synthesis",
		CreatedAt: created,
		UpdatedAt: created,
	}
	require.NoError(t, rs.Save(ctx, r))

	got, err := rs.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "water", got.Name)
	assert.Equal(t, "H2 + O2 -> H2O", got.Equation)
	assert.Equal(t, "synthesis", got.Notes)
	assert.True(t, created.Equal(got.CreatedAt))

	byName, err := rs.GetByName(ctx, "water")
	require.NoError(t, err)
	assert.Equal(t, "r1", byName.ID)
}

func TestReactionStore_Save_FillsTimestamps(t *testing.T) {
	ctx := context.Background()
	rs := setupTestStore(t).ReactionStore()

	require.NoError(t, rs.Save(ctx, domain.SavedReaction{ID: "r1", Name: "ozone", Equation: "O3 -> O2"}))

	got, err := rs.Get(ctx, "r1")
	require.NoError(t, err)
	assert.False(t, got.CreatedAt.IsZero())
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestReactionStore_Save_Upsert(t *testing.T) {
	ctx := context.Background()
	rs := setupTestStore(t).ReactionStore()

	require.NoError(t, rs.Save(ctx, domain.SavedReaction{ID: "r1", Name: "water", Equation: "H2 + O2 -> H2O"}))
	require.NoError(t, rs.Save(ctx, domain.SavedReaction{ID: "r1", Name: "water", Equation: "H2 + O2 -> H2O", Notes: "edited"}))

	got, err := rs.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "edited", got.Notes)

	list, err := rs.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestReactionStore_Save_DuplicateName(t *testing.T) {
	ctx := context.Background()
	rs := setupTestStore(t).ReactionStore()

	require.NoError(t, rs.Save(ctx, domain.SavedReaction{ID: "r1", Name: "water", Equation: "H2 + O2 -> H2O"}))
	err := rs.Save(ctx, domain.SavedReaction{ID: "r2", Name: "water", Equation: "D2 + O2 -> D2O"})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestReactionStore_NotFound(t *testing.T) {
	ctx := context.Background()
	rs := setupTestStore(t).ReactionStore()

	_, err := rs.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = rs.GetByName(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, rs.Delete(ctx, "missing"), domain.ErrNotFound)
}

func TestReactionStore_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	rs := setupTestStore(t).ReactionStore()

	for _, r := range []domain.SavedReaction{
		{ID: "a", Name: "water", Equation: "H2 + O2 -> H2O"},
		{ID: "b", Name: "ammonia", Equation: "NH3 + O2 -> NO + H2O"},
		{ID: "c", Name: "ozone", Equation: "O3 -> O2"},
	} {
		require.NoError(t, rs.Save(ctx, r))
	}

	list, err := rs.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"ammonia", "ozone", "water"}, []string{list[0].Name, list[1].Name, list[2].Name})

	require.NoError(t, rs.Delete(ctx, "b"))
	list, err = rs.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestReactionStore_List_Empty(t *testing.T) {
	list, err := setupTestStore(t).ReactionStore().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}
