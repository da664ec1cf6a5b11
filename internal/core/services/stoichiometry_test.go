package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
)

func TestCompute(t *testing.T) {
	r := mustReaction(t, "H2 + O2 -> H2O")
	coeffs := domain.CoefficientVector{2, 1, 2}

	tests := []struct {
		name       string
		initial    []float64
		ratio      float64
		limiting   int
		produced   []float64
		remaining  []float64
		conversion []float64
	}{
		{
			name:       "exact proportions",
			initial:    []float64{2, 1},
			ratio:      1,
			limiting:   0,
			produced:   []float64{2},
			remaining:  []float64{0, 0},
			conversion: []float64{1, 1},
		},
		{
			name:       "hydrogen in excess",
			initial:    []float64{4, 1},
			ratio:      1,
			limiting:   1,
			produced:   []float64{2},
			remaining:  []float64{2, 0},
			conversion: []float64{0.5, 1},
		},
		{
			name:       "oxygen in excess",
			initial:    []float64{1, 3},
			ratio:      0.5,
			limiting:   0,
			produced:   []float64{1},
			remaining:  []float64{0, 2.5},
			conversion: []float64{1, 0.5 / 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Compute(r, coeffs, tt.initial)
			require.NoError(t, err)

			assert.InDelta(t, tt.ratio, q.LimitingRatio, 1e-12)
			assert.Equal(t, tt.limiting, q.LimitingIndex)
			assert.InDeltaSlice(t, tt.produced, q.ProducedMoles, 1e-12)
			assert.InDeltaSlice(t, tt.remaining, q.RemainingMoles, 1e-12)
			assert.InDeltaSlice(t, tt.conversion, q.ConversionRates, 1e-12)
		})
	}
}

func TestCompute_ZeroInitialPassesNaNThrough(t *testing.T) {
	r := mustReaction(t, "H2 + O2 -> H2O")

	q, err := Compute(r, domain.CoefficientVector{2, 1, 2}, []float64{0, 1})
	require.NoError(t, err)

	assert.Equal(t, 0.0, q.LimitingRatio)
	assert.True(t, math.IsNaN(q.ConversionRates[0]))
	assert.Equal(t, 0.0, q.ConversionRates[1])
	assert.Equal(t, []float64{0}, q.ProducedMoles)
}

func TestCompute_SkipsNonPositiveCoefficients(t *testing.T) {
	r := mustReaction(t, "H2 + O2 -> H2O")

	q, err := Compute(r, domain.CoefficientVector{0, 1, 2}, []float64{5, 1})
	require.NoError(t, err)

	assert.Equal(t, 1, q.LimitingIndex)
	assert.Equal(t, 1.0, q.LimitingRatio)
	assert.Equal(t, []float64{5, 0}, q.RemainingMoles)
	assert.Equal(t, []float64{2}, q.ProducedMoles)
}

func TestCompute_Preconditions(t *testing.T) {
	r := mustReaction(t, "H2 + O2 -> H2O")

	_, err := Compute(r, domain.CoefficientVector{2, 1}, []float64{2, 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = Compute(r, domain.CoefficientVector{2, 1, 2}, []float64{2})
	assert.ErrorIs(t, err, domain.ErrInvalidMolesInput)

	_, err = Compute(r, domain.CoefficientVector{0, 0, 2}, []float64{2, 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
