package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
)

// ParseMoles splits text on whitespace and commas into exactly expected
// finite numbers. Blank text returns nil with no error, meaning no
// amounts were given.
func ParseMoles(text string, expected int) ([]float64, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	if len(fields) == 0 {
		return nil, nil
	}
	if len(fields) != expected {
		return nil, fmt.Errorf("%w: got %d values, need one per reactant (%d)",
			domain.ErrInvalidMolesInput, len(fields), expected)
	}

	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %q is not a finite number", domain.ErrInvalidMolesInput, f)
		}
		out[i] = v
	}
	return out, nil
}
