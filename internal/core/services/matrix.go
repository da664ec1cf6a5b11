package services

import (
	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
	"github.com/custodia-labs/chemeq-cli/internal/core/linalg"
)

// BuildMatrix returns the stoichiometric matrix of r and its row labels.
// Rows are the reaction's elements in sorted order; columns are reactants
// then products. Reactant cells hold the atom count, product cells its
// negation, absent elements 0.
func BuildMatrix(r domain.Reaction) (*linalg.Matrix, []domain.ElementSymbol) {
	elements := r.Elements()
	species := r.Species()
	nr := len(r.Reactants)

	m := linalg.NewMatrix(len(elements), len(species))
	for i, e := range elements {
		for j, s := range species {
			n := float64(s.Counts.Count(e))
			if j >= nr {
				n = -n
			}
			m.Set(i, j, n)
		}
	}
	return m, elements
}
