package linalg

import (
	"fmt"
	"math"

	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
	"github.com/custodia-labs/chemeq-cli/internal/logger"
)

// Reconstruction defaults.
const (
	DefaultTolerance      = 1e-6
	DefaultMaxDenominator = 10000
)

// ToSmallestIntegers converts a float vector into the smallest integer
// vector with the same ratios. The vector is normalised by its largest
// absolute entry and scaled by d = 1, 2, ... maxDenominator until every
// entry is within tolerance of an integer; the first such d is used. The
// rounded result is divided by the gcd of its nonzero entries and negated
// when its first nonzero entry is negative.
//
// A vector whose largest entry is below tolerance yields the zero vector.
// When no denominator fits the error wraps domain.ErrReconstructionFailed.
func ToSmallestIntegers(v []float64, tolerance float64, maxDenominator int) ([]int, error) {
	out := make([]int, len(v))

	maxAbs := 0.0
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: vector has non-finite entry %v", domain.ErrReconstructionFailed, x)
		}
		maxAbs = math.Max(maxAbs, math.Abs(x))
	}
	if maxAbs < tolerance {
		return out, nil
	}

	normalized := make([]float64, len(v))
	for i, x := range v {
		normalized[i] = x / maxAbs
	}

	denominator := 0
	for d := 1; d <= maxDenominator; d++ {
		if fitsIntegers(normalized, float64(d), tolerance) {
			denominator = d
			break
		}
	}
	if denominator == 0 {
		return nil, fmt.Errorf("%w: no denominator up to %d within tolerance %g",
			domain.ErrReconstructionFailed, maxDenominator, tolerance)
	}
	logger.Debug("reconstructed with denominator %d", denominator)

	for i, x := range normalized {
		out[i] = int(math.Round(x * float64(denominator)))
	}

	g := domain.CoefficientVector(out).GCD()
	if g > 1 {
		for i := range out {
			out[i] /= g
		}
	}

	for _, x := range out {
		if x == 0 {
			continue
		}
		if x < 0 {
			for i := range out {
				out[i] = -out[i]
			}
		}
		break
	}
	return out, nil
}

func fitsIntegers(v []float64, scale, tolerance float64) bool {
	for _, x := range v {
		s := x * scale
		if math.Abs(s-math.Round(s)) >= tolerance {
			return false
		}
	}
	return true
}
