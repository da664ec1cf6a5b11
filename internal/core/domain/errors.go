package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidSettings indicates a settings value is out of range or unknown.
	ErrInvalidSettings = errors.New("invalid settings")

	// Chemistry Errors.

	// ErrMalformedReaction indicates the reaction text does not split into
	// two non-empty sides, or a side yields no formulas.
	ErrMalformedReaction = errors.New("malformed reaction")

	// ErrMalformedFormula indicates an empty formula, a character outside
	// the formula grammar, or an unmatched parenthesis.
	ErrMalformedFormula = errors.New("malformed formula")

	// ErrNoSolution indicates no assignment of coefficients conserves atoms.
	ErrNoSolution = errors.New("no balancing solution")

	// ErrIndeterminate indicates more than one independent balancing exists.
	ErrIndeterminate = errors.New("indeterminate reaction")

	// ErrReconstructionFailed indicates no integer ratio reproduces the
	// null space vector within tolerance.
	ErrReconstructionFailed = errors.New("rational reconstruction failed")

	// ErrInvalidMolesInput indicates the initial moles text has the wrong
	// number of values or a value that is not a finite number.
	ErrInvalidMolesInput = errors.New("invalid moles input")
)
