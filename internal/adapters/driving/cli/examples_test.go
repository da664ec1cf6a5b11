package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
)

func TestExamplesCmd_List(t *testing.T) {
	s := setupTestServices(t)

	out, err := executeCommand(t, "examples")
	require.NoError(t, err)

	assert.Contains(t, out, "  1. Gold in aqua regia")
	for _, ex := range s.Catalog.Examples() {
		assert.Contains(t, out, ex.Equation)
	}
}

func TestExamplesCmd_ListJSON(t *testing.T) {
	s := setupTestServices(t)

	out, err := executeCommand(t, "examples", "--json")
	require.NoError(t, err)

	var examples []domain.ExampleReaction
	require.NoError(t, json.Unmarshal([]byte(out), &examples))
	assert.Equal(t, s.Catalog.Examples(), examples)
}

func TestExamplesCmd_Run(t *testing.T) {
	setupTestServices(t)

	tests := []struct {
		name     string
		ref      string
		expected string
	}{
		{"by number", "1", "Au + 4HCl + HNO3 -> HAuCl4 + NO + 2H2O"},
		{"by name", "propane combustion", "C3H8 + 5O2 -> 3CO2 + 4H2O"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, "examples", tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, firstLine(out))
		})
	}
}

func TestExamplesCmd_NotFound(t *testing.T) {
	setupTestServices(t)

	for _, ref := range []string{"0", "999", "no such reaction"} {
		_, err := executeCommand(t, "examples", ref)
		assert.ErrorIs(t, err, domain.ErrNotFound, ref)
	}
}

func TestFindExample(t *testing.T) {
	examples := []domain.ExampleReaction{
		{Name: "Water", Equation: "H2 + O2 -> H2O"},
		{Name: "Rust", Equation: "Fe + O2 -> Fe2O3"},
	}

	tests := []struct {
		ref      string
		expected string
		wantErr  bool
	}{
		{ref: "1", expected: "Water"},
		{ref: "2", expected: "Rust"},
		{ref: "RUST", expected: "Rust"},
		{ref: "3", wantErr: true},
		{ref: "-1", wantErr: true},
		{ref: "salt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			ex, err := findExample(examples, tt.ref)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ex.Name)
		})
	}
}
