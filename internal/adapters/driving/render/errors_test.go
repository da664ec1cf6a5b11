package render

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains string
		kind     string
	}{
		{"reaction", fmt.Errorf("%w: no arrow", domain.ErrMalformedReaction), "arrow", "malformed_reaction"},
		{"formula", fmt.Errorf("%w: bad", domain.ErrMalformedFormula), "Check the formulas", "malformed_formula"},
		{"no solution", domain.ErrNoSolution, "cannot be balanced", "no_solution"},
		{"indeterminate", domain.ErrIndeterminate, "more than one", "indeterminate"},
		{"reconstruction", domain.ErrReconstructionFailed, "max_denominator", "reconstruction_failed"},
		{"moles", domain.ErrInvalidMolesInput, "one amount per reactant", "invalid_moles"},
		{"settings", domain.ErrInvalidSettings, "Invalid setting", "invalid_settings"},
		{"not found", domain.ErrNotFound, "Not found", "not_found"},
		{"other", errors.New("disk on fire"), "disk on fire", "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := ErrorMessage(tt.err)
			assert.Contains(t, msg, tt.contains)
			assert.Contains(t, msg, tt.err.Error())
			assert.Equal(t, tt.kind, ErrorKind(tt.err))
		})
	}
}

func TestErrorMessage_Nil(t *testing.T) {
	assert.Empty(t, ErrorMessage(nil))
	assert.Empty(t, ErrorKind(nil))
}
