package domain

import (
	"fmt"
	"sort"
)

// Reaction is an ordered list of reactants and products.
// Column order for all matrix work is reactants then products, each in
// input order.
type Reaction struct {
	Reactants []MoleculeFormula
	Products  []MoleculeFormula
}

// Validate checks that both sides are non-empty.
func (r Reaction) Validate() error {
	if len(r.Reactants) == 0 {
		return fmt.Errorf("%w: no reactants", ErrMalformedReaction)
	}
	if len(r.Products) == 0 {
		return fmt.Errorf("%w: no products", ErrMalformedReaction)
	}
	return nil
}

// Species returns reactants followed by products.
func (r Reaction) Species() []MoleculeFormula {
	out := make([]MoleculeFormula, 0, len(r.Reactants)+len(r.Products))
	out = append(out, r.Reactants...)
	return append(out, r.Products...)
}

// Elements returns the sorted union of every element in the reaction.
func (r Reaction) Elements() []ElementSymbol {
	seen := make(map[ElementSymbol]struct{})
	for _, m := range r.Species() {
		for e := range m.Counts {
			seen[e] = struct{}{}
		}
	}
	out := make([]ElementSymbol, 0, len(seen))
	for e := range seen {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// BalancedReaction pairs a reaction with its coefficients.
type BalancedReaction struct {
	Reaction
	Coefficients CoefficientVector
}

// Coefficient returns the coefficient of the i-th species.
func (b BalancedReaction) Coefficient(i int) int {
	if i < 0 || i >= len(b.Coefficients) {
		return 0
	}
	return b.Coefficients[i]
}

// Conserves reports whether every element has the same atom total on both
// sides under the coefficients.
func (b BalancedReaction) Conserves() bool {
	if len(b.Coefficients) != len(b.Reactants)+len(b.Products) {
		return false
	}
	nr := len(b.Reactants)
	for _, e := range b.Elements() {
		left, right := 0, 0
		for i, m := range b.Reactants {
			left += b.Coefficients[i] * m.Counts.Count(e)
		}
		for j, m := range b.Products {
			right += b.Coefficients[nr+j] * m.Counts.Count(e)
		}
		if left != right {
			return false
		}
	}
	return true
}
