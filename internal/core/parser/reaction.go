package parser

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
)

// Arrows lists the accepted reaction arrows in the order they are tried.
// The first arrow present in the text is the separator.
var Arrows = []string{"→", "->", "=>", "="}

// ParseReaction parses "<side> <arrow> <side>" where each side is one or
// more formulas joined by '+'. Formula errors keep their
// domain.ErrMalformedFormula kind; structural problems wrap
// domain.ErrMalformedReaction.
func ParseReaction(text string) (domain.Reaction, error) {
	arrow := findArrow(text)
	if arrow == "" {
		return domain.Reaction{}, fmt.Errorf("%w: no reaction arrow in %q", domain.ErrMalformedReaction, text)
	}

	parts := strings.Split(text, arrow)
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return domain.Reaction{}, fmt.Errorf("%w: expected exactly two sides around %q in %q",
			domain.ErrMalformedReaction, arrow, text)
	}

	reactants, err := parseSide(parts[0])
	if err != nil {
		return domain.Reaction{}, fmt.Errorf("reactants: %w", err)
	}
	products, err := parseSide(parts[1])
	if err != nil {
		return domain.Reaction{}, fmt.Errorf("products: %w", err)
	}

	r := domain.Reaction{Reactants: reactants, Products: products}
	if err := r.Validate(); err != nil {
		return domain.Reaction{}, err
	}
	return r, nil
}

func findArrow(text string) string {
	for _, a := range Arrows {
		if strings.Contains(text, a) {
			return a
		}
	}
	return ""
}

func parseSide(side string) ([]domain.MoleculeFormula, error) {
	var out []domain.MoleculeFormula
	for _, piece := range strings.Split(side, "+") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		m, err := ParseMolecule(piece)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: side %q has no formulas", domain.ErrMalformedReaction, strings.TrimSpace(side))
	}
	return out, nil
}
