package driving

import (
	"context"

	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
)

// CalculatorService balances equations and computes stoichiometry.
type CalculatorService interface {
	// ParseFormula parses a single formula into element counts.
	ParseFormula(ctx context.Context, formula string) (*domain.MoleculeFormula, error)

	// Balance parses and balances a reaction.
	Balance(ctx context.Context, equation string) (*domain.BalancedReaction, error)

	// Calculate balances a reaction and, when moles is non-empty,
	// computes limiting-reagent stoichiometry.
	Calculate(ctx context.Context, equation string, moles []float64) (*domain.Calculation, error)

	// CalculateText is Calculate with the moles given as free text
	// separated by whitespace or commas. Blank text means balance only.
	CalculateText(ctx context.Context, equation, molesText string) (*domain.Calculation, error)
}
