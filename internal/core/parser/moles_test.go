package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
)

func TestParseMoles(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
		want     []float64
	}{
		{"spaces", "2 1", 2, []float64{2, 1}},
		{"commas", "2,1.5", 2, []float64{2, 1.5}},
		{"mixed separators", " 0.5 ,\t3e-1 , 4 ", 3, []float64{0.5, 0.3, 4}},
		{"zero allowed", "0 1", 2, []float64{0, 1}},
		{"blank means none", "   ", 2, nil},
		{"empty means none", "", 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMoles(tt.text, tt.expected)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMoles_Errors(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"too few", "2", 2},
		{"too many", "1 2 3", 2},
		{"not a number", "2 abc", 2},
		{"nan", "NaN 1", 2},
		{"infinity", "Inf 1", 2},
		{"overflow", "1e400 1", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMoles(tt.text, tt.expected)
			assert.ErrorIs(t, err, domain.ErrInvalidMolesInput)
		})
	}
}
