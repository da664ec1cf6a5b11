package render

import (
	"errors"

	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
)

// errorHints maps error kinds to user-facing text, most specific first.
var errorHints = []struct {
	kind error
	hint string
}{
	{domain.ErrMalformedReaction, "Check the equation: reactants and products must be separated by an arrow (->, →, => or =)"},
	{domain.ErrMalformedFormula, "Check the formulas: only element symbols, counts and parentheses are allowed"},
	{domain.ErrNoSolution, "This reaction cannot be balanced"},
	{domain.ErrIndeterminate, "This reaction has more than one independent balancing; enter the reactions separately"},
	{domain.ErrReconstructionFailed, "No whole-number coefficients found; try raising solver.max_denominator"},
	{domain.ErrInvalidMolesInput, "Enter one amount per reactant, separated by spaces or commas"},
	{domain.ErrInvalidSettings, "Invalid setting"},
	{domain.ErrNotFound, "Not found"},
	{domain.ErrAlreadyExists, "Already exists"},
	{domain.ErrInvalidInput, "Invalid input"},
}

// ErrorMessage returns a one-line message for err suitable for end users.
// Known error kinds get a hint followed by the detail.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	for _, h := range errorHints {
		if errors.Is(err, h.kind) {
			return h.hint + " (" + err.Error() + ")"
		}
	}
	return err.Error()
}

// ErrorKind returns a short machine-readable name for err's kind, or
// "internal" if err is not a domain error.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrMalformedReaction):
		return "malformed_reaction"
	case errors.Is(err, domain.ErrMalformedFormula):
		return "malformed_formula"
	case errors.Is(err, domain.ErrNoSolution):
		return "no_solution"
	case errors.Is(err, domain.ErrIndeterminate):
		return "indeterminate"
	case errors.Is(err, domain.ErrReconstructionFailed):
		return "reconstruction_failed"
	case errors.Is(err, domain.ErrInvalidMolesInput):
		return "invalid_moles"
	case errors.Is(err, domain.ErrInvalidSettings):
		return "invalid_settings"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrAlreadyExists):
		return "already_exists"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	default:
		return "internal"
	}
}
