package worksheet

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_Watch(t *testing.T) {
	t.Run("signals on write", func(t *testing.T) {
		path := writeWorksheet(t, `reaction "r" { equation = "O3 -> O2" }`)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		changes, err := NewWatcher().Watch(ctx, path)
		require.NoError(t, err)

		go func() {
			time.Sleep(50 * time.Millisecond)
			os.WriteFile(path, []byte(`reaction "r" { equation = "H2 + O2 -> H2O" }`), 0600)
		}()

		select {
		case _, ok := <-changes:
			assert.True(t, ok)
		case <-time.After(2 * time.Second):
			t.Fatal("timeout waiting for change signal")
		}
	})

	t.Run("ignores other files", func(t *testing.T) {
		path := writeWorksheet(t, `reaction "r" { equation = "O3 -> O2" }`)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		changes, err := NewWatcher().Watch(ctx, path)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "other.hcl"), []byte("x"), 0600))

		select {
		case <-changes:
			t.Fatal("unexpected change signal")
		case <-time.After(200 * time.Millisecond):
		}
	})

	t.Run("closes channel when context is cancelled", func(t *testing.T) {
		path := writeWorksheet(t, "")

		ctx, cancel := context.WithCancel(context.Background())
		changes, err := NewWatcher().Watch(ctx, path)
		require.NoError(t, err)

		cancel()

		select {
		case _, ok := <-changes:
			if ok {
				for range changes {
				}
			}
		case <-time.After(time.Second):
			t.Fatal("channel did not close after context cancellation")
		}
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		changes, err := NewWatcher().Watch(context.Background(), filepath.Join(t.TempDir(), "missing.hcl"))
		assert.Error(t, err)
		assert.Nil(t, changes)
		assert.Contains(t, err.Error(), "watch target error")
	})
}

func TestIsChange(t *testing.T) {
	target := filepath.Join(t.TempDir(), "reactions.hcl")

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write", fsnotify.Event{Name: target, Op: fsnotify.Write}, true},
		{"create", fsnotify.Event{Name: target, Op: fsnotify.Create}, true},
		{"write and chmod", fsnotify.Event{Name: target, Op: fsnotify.Write | fsnotify.Chmod}, true},
		{"chmod only", fsnotify.Event{Name: target, Op: fsnotify.Chmod}, false},
		{"remove", fsnotify.Event{Name: target, Op: fsnotify.Remove}, false},
		{"other file", fsnotify.Event{Name: target + ".swp", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isChange(tt.event, target))
		})
	}
}
