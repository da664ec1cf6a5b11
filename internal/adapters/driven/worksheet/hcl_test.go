package worksheet

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
)

func writeWorksheet(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reactions.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoader_Load(t *testing.T) {
	path := writeWorksheet(t, `
reaction "water" {
  equation = "H2 + O2 -> H2O"
  moles    = [2, 1.5]
}

reaction "ozone" {
  equation = "O3 -> O2"
}
`)

	ws, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(ws.Path))
	require.Len(t, ws.Entries, 2)
	assert.Equal(t, domain.WorksheetEntry{
		Name:     "water",
		Equation: "H2 + O2 -> H2O",
		Moles:    []float64{2, 1.5},
	}, ws.Entries[0])
	assert.Equal(t, "ozone", ws.Entries[1].Name)
	assert.Nil(t, ws.Entries[1].Moles)
}

func TestLoader_Load_MolesConversion(t *testing.T) {
	tests := []struct {
		name  string
		moles string
		want  []float64
	}{
		{"numeric strings convert", `["2", "0.5"]`, []float64{2, 0.5}},
		{"null is balance only", `null`, nil},
		{"empty list is balance only", `[]`, nil},
		{"negative kept", `[-1, 3]`, []float64{-1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeWorksheet(t, `reaction "r" {
  equation = "H2 + O2 -> H2O"
  moles    = `+tt.moles+`
}
`)
			ws, err := NewLoader().Load(context.Background(), path)
			require.NoError(t, err)
			require.Len(t, ws.Entries, 1)
			assert.Equal(t, tt.want, ws.Entries[0].Moles)
		})
	}
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax error", `reaction "r" {`},
		{"missing equation", `reaction "r" {}`},
		{"missing label", `reaction { equation = "O3 -> O2" }`},
		{"unknown attribute", `reaction "r" {
  equation = "O3 -> O2"
  colour   = "blue"
}`},
		{"moles not numbers", `reaction "r" {
  equation = "O3 -> O2"
  moles    = ["two"]
}`},
		{"moles not a list", `reaction "r" {
  equation = "O3 -> O2"
  moles    = { a = 1 }
}`},
		{"duplicate names", `reaction "r" {
  equation = "O3 -> O2"
}
reaction "r" {
  equation = "H2 + O2 -> H2O"
}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader().Load(context.Background(), writeWorksheet(t, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestLoader_Load_MissingFile(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLoader_Load_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader().Load(ctx, writeWorksheet(t, `reaction "r" { equation = "O3 -> O2" }`))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoader_Load_EmptyFile(t *testing.T) {
	ws, err := NewLoader().Load(context.Background(), writeWorksheet(t, ""))
	require.NoError(t, err)
	assert.Empty(t, ws.Entries)
}
