package domain

// QuantitativeResult is the limiting-reagent stoichiometry of one request.
// Conversion rates may be NaN or Inf when an initial amount is zero;
// callers check before display.
type QuantitativeResult struct {
	// LimitingRatio is min(initial[i] / coeff[i]) over reactants.
	LimitingRatio float64

	// LimitingIndex is the reactant attaining LimitingRatio, or -1.
	LimitingIndex int

	// ProducedMoles has one entry per product.
	ProducedMoles []float64

	// RemainingMoles has one entry per reactant.
	RemainingMoles []float64

	// ConversionRates has one entry per reactant.
	ConversionRates []float64
}

// Calculation is the outcome of a balance request, optionally with
// stoichiometry when initial moles were supplied.
type Calculation struct {
	Balanced BalancedReaction

	// InitialMoles echoes the reactant amounts used, nil for balance only.
	InitialMoles []float64

	// Quantities is nil when no initial moles were supplied.
	Quantities *QuantitativeResult

	// Warnings are non-fatal notes for the user.
	Warnings []string
}
