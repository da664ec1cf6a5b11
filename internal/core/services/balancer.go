package services

import (
	"fmt"

	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
	"github.com/custodia-labs/chemeq-cli/internal/core/linalg"
	"github.com/custodia-labs/chemeq-cli/internal/logger"
)

// Balance finds the minimal positive integer coefficients of r.
//
// The null space of the stoichiometric matrix must be one-dimensional:
// an empty null space is domain.ErrNoSolution, a larger one
// domain.ErrIndeterminate. The single basis vector is reconstructed into
// integers and made non-negative. A vector that then has a zero entry or
// breaks conservation (its raw entries had mixed signs) describes no
// physical reaction and is also domain.ErrNoSolution.
func Balance(r domain.Reaction, solver domain.SolverSettings) (domain.CoefficientVector, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	m, elements := BuildMatrix(r)
	logger.Debug("stoichiometric matrix %dx%d over elements %v", m.Rows(), m.Cols(), elements)

	basis := linalg.Kernel(m, solver.PivotTolerance)
	switch len(basis) {
	case 0:
		return nil, fmt.Errorf("%w: no balancing assignment satisfies conservation of atoms", domain.ErrNoSolution)
	case 1:
	default:
		return nil, fmt.Errorf("%w: %d independent balancings; the equation combines independent reactions or redundant species",
			domain.ErrIndeterminate, len(basis))
	}
	logger.Debug("null space basis %v", basis[0])

	ints, err := linalg.ToSmallestIntegers(basis[0], solver.Tolerance, solver.MaxDenominator)
	if err != nil {
		return nil, err
	}

	coeffs := make(domain.CoefficientVector, len(ints))
	for i, c := range ints {
		if c < 0 {
			c = -c
		}
		coeffs[i] = c
	}

	species := r.Species()
	for i, c := range coeffs {
		if c == 0 {
			return nil, fmt.Errorf("%w: %s cannot take part in a balanced reaction",
				domain.ErrNoSolution, species[i].Name)
		}
	}
	if !(domain.BalancedReaction{Reaction: r, Coefficients: coeffs}).Conserves() {
		return nil, fmt.Errorf("%w: atoms only balance with species moved to the other side", domain.ErrNoSolution)
	}

	logger.Debug("coefficients %v", coeffs)
	return coeffs, nil
}
