package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrAlreadyExists", ErrAlreadyExists},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrInvalidSettings", ErrInvalidSettings},
		{"ErrMalformedReaction", ErrMalformedReaction},
		{"ErrMalformedFormula", ErrMalformedFormula},
		{"ErrNoSolution", ErrNoSolution},
		{"ErrIndeterminate", ErrIndeterminate},
		{"ErrReconstructionFailed", ErrReconstructionFailed},
		{"ErrInvalidMolesInput", ErrInvalidMolesInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrors_Distinct tests that chemistry errors do not match each other
func TestErrors_Distinct(t *testing.T) {
	all := []error{
		ErrMalformedReaction, ErrMalformedFormula, ErrNoSolution,
		ErrIndeterminate, ErrReconstructionFailed, ErrInvalidMolesInput,
	}
	for i, a := range all {
		for j, b := range all {
			assert.Equal(t, i == j, errors.Is(a, b), "%v vs %v", a, b)
		}
	}
}

// TestErrors_Wrapped tests that wrapping keeps the kind
func TestErrors_Wrapped(t *testing.T) {
	err := fmt.Errorf("formula %q: %w", "H2 O", ErrMalformedFormula)
	assert.ErrorIs(t, err, ErrMalformedFormula)
	assert.NotErrorIs(t, err, ErrMalformedReaction)
}
