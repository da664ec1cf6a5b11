package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
	"github.com/custodia-labs/chemeq-cli/internal/core/parser"
	"github.com/custodia-labs/chemeq-cli/internal/core/ports/driving"
	"github.com/custodia-labs/chemeq-cli/internal/logger"
)

// Ensure CalculatorService implements the interface.
var _ driving.CalculatorService = (*CalculatorService)(nil)

// WarningBalanceOnly is attached to a calculation made without initial amounts.
const WarningBalanceOnly = "initial moles not provided; balance only"

// CalculatorService balances equations using the configured solver policy.
type CalculatorService struct {
	settings driving.SettingsService
}

// NewCalculatorService creates a new calculator service.
// A nil settings service means default solver settings.
func NewCalculatorService(settings driving.SettingsService) *CalculatorService {
	return &CalculatorService{settings: settings}
}

// ParseFormula parses a single formula.
func (s *CalculatorService) ParseFormula(ctx context.Context, formula string) (*domain.MoleculeFormula, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m, err := parser.ParseMolecule(formula)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Balance parses and balances a reaction.
func (s *CalculatorService) Balance(ctx context.Context, equation string) (*domain.BalancedReaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger.Section("Balance")
	logger.Debug("equation: %q", equation)

	r, err := parser.ParseReaction(equation)
	if err != nil {
		return nil, err
	}
	return s.balance(r)
}

// Calculate balances a reaction and computes stoichiometry when moles is
// non-empty.
func (s *CalculatorService) Calculate(ctx context.Context, equation string, moles []float64) (*domain.Calculation, error) {
	b, err := s.Balance(ctx, equation)
	if err != nil {
		return nil, err
	}
	return s.calculate(b, moles)
}

// CalculateText parses moles from free text and calculates.
func (s *CalculatorService) CalculateText(ctx context.Context, equation, molesText string) (*domain.Calculation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger.Section("Calculate")
	logger.Debug("equation: %q, moles: %q", equation, molesText)

	r, err := parser.ParseReaction(equation)
	if err != nil {
		return nil, err
	}
	moles, err := parser.ParseMoles(molesText, len(r.Reactants))
	if err != nil {
		return nil, err
	}
	b, err := s.balance(r)
	if err != nil {
		return nil, err
	}
	return s.calculate(b, moles)
}

func (s *CalculatorService) balance(r domain.Reaction) (*domain.BalancedReaction, error) {
	coeffs, err := Balance(r, s.solver())
	if err != nil {
		return nil, err
	}
	return &domain.BalancedReaction{Reaction: r, Coefficients: coeffs}, nil
}

func (s *CalculatorService) calculate(b *domain.BalancedReaction, moles []float64) (*domain.Calculation, error) {
	calc := &domain.Calculation{Balanced: *b}
	if len(moles) == 0 {
		calc.Warnings = append(calc.Warnings, WarningBalanceOnly)
		return calc, nil
	}

	q, err := Compute(b.Reaction, b.Coefficients, moles)
	if err != nil {
		return nil, fmt.Errorf("stoichiometry: %w", err)
	}
	logger.Debug("limiting ratio %g (reactant %d)", q.LimitingRatio, q.LimitingIndex)

	calc.InitialMoles = moles
	calc.Quantities = q
	return calc, nil
}

// solver returns the stored solver settings, falling back to defaults
// when none are configured or they are invalid.
func (s *CalculatorService) solver() domain.SolverSettings {
	if s.settings == nil {
		return domain.DefaultSolverSettings()
	}
	settings, err := s.settings.Get()
	if err != nil {
		logger.Warn("reading solver settings: %v", err)
		return domain.DefaultSolverSettings()
	}
	if err := settings.Solver.Validate(); err != nil {
		logger.Warn("ignoring solver settings: %v", err)
		return domain.DefaultSolverSettings()
	}
	return settings.Solver
}
