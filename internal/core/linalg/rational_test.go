package linalg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
)

func TestToSmallestIntegers(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want []int
	}{
		{"halves", []float64{1, 0.5, 1}, []int{2, 1, 2}},
		{"negative first entry flips sign", []float64{-1, -0.5, -1}, []int{2, 1, 2}},
		{"mixed signs keep shape", []float64{0.5, -0.25}, []int{2, -1}},
		{"thirds", []float64{1.0 / 3, 2.0 / 3, 1}, []int{1, 2, 3}},
		{"leading zero", []float64{0, -2, 4}, []int{0, 1, -2}},
		{"unscaled input", []float64{6, 3, 6}, []int{2, 1, 2}},
		{"degenerate vector", []float64{1e-9, 0}, []int{0, 0}},
		{"empty vector", []float64{}, []int{}},
		{"within tolerance", []float64{1, 0.3333333}, []int{3, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToSmallestIntegers(tt.in, DefaultTolerance, DefaultMaxDenominator)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToSmallestIntegers_KMnO4(t *testing.T) {
	// Kernel vector of KMnO4 + HCl -> KCl + MnCl2 + H2O + Cl2 with Cl2 free.
	v := []float64{0.4, 3.2, 0.4, 0.4, 1.6, 1}
	got, err := ToSmallestIntegers(v, DefaultTolerance, DefaultMaxDenominator)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 16, 2, 2, 8, 5}, got)
	assert.Equal(t, 1, domain.CoefficientVector(got).GCD())
}

func TestToSmallestIntegers_Fails(t *testing.T) {
	tests := []struct {
		name   string
		in     []float64
		maxDen int
	}{
		{"irrational ratio", []float64{1, 1 / math.Pi}, 100},
		{"denominator bound too small", []float64{1, 1.0 / 7}, 6},
		{"nan entry", []float64{1, math.NaN()}, 100},
		{"infinite entry", []float64{math.Inf(1), 1}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToSmallestIntegers(tt.in, 1e-9, tt.maxDen)
			assert.ErrorIs(t, err, domain.ErrReconstructionFailed)
		})
	}
}
