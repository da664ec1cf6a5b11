package services

import (
	"fmt"
	"math"

	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
)

// Compute performs limiting-reagent stoichiometry.
//
// The limiting ratio is the smallest initial[i]/coeffs[i] over reactants
// with a positive coefficient. Each reactant uses coeffs[i]*ratio, and each
// product yields |coeffs[j]*ratio|. A zero initial amount gives a NaN or
// infinite conversion rate, which is passed through.
func Compute(r domain.Reaction, coeffs domain.CoefficientVector, initial []float64) (*domain.QuantitativeResult, error) {
	nr, np := len(r.Reactants), len(r.Products)
	if len(coeffs) != nr+np {
		return nil, fmt.Errorf("%w: %d coefficients for %d species", domain.ErrInvalidInput, len(coeffs), nr+np)
	}
	if len(initial) != nr {
		return nil, fmt.Errorf("%w: %d initial amounts for %d reactants", domain.ErrInvalidMolesInput, len(initial), nr)
	}

	ratio := math.Inf(1)
	limiting := -1
	for i := 0; i < nr; i++ {
		if coeffs[i] <= 0 {
			continue
		}
		if q := initial[i] / float64(coeffs[i]); q < ratio {
			ratio, limiting = q, i
		}
	}
	if limiting < 0 {
		return nil, fmt.Errorf("%w: no reactant has a positive coefficient", domain.ErrInvalidInput)
	}

	res := &domain.QuantitativeResult{
		LimitingRatio:   ratio,
		LimitingIndex:   limiting,
		ProducedMoles:   make([]float64, np),
		RemainingMoles:  make([]float64, nr),
		ConversionRates: make([]float64, nr),
	}
	for i := 0; i < nr; i++ {
		used := float64(coeffs[i]) * ratio
		res.RemainingMoles[i] = initial[i] - used
		res.ConversionRates[i] = used / initial[i]
	}
	for j := 0; j < np; j++ {
		res.ProducedMoles[j] = math.Abs(float64(coeffs[nr+j]) * ratio)
	}
	return res, nil
}
