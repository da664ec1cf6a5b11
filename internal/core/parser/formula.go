package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
)

// ParseFormula parses a formula such as "Ca3(PO4)2" into element counts.
// Surrounding whitespace is ignored; anything else outside the grammar,
// an unmatched parenthesis, or a formula without atoms is an error
// wrapping domain.ErrMalformedFormula.
func ParseFormula(formula string) (domain.FormulaCounts, error) {
	src := strings.TrimSpace(formula)
	if src == "" {
		return nil, fmt.Errorf("%w: empty formula", domain.ErrMalformedFormula)
	}

	p := &formulaParser{src: src}
	counts, err := p.segment(0)
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.src) {
		// segment only stops early on a closing parenthesis at depth 0.
		return nil, p.errorf("unmatched ')'")
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("%w: %q contains no atoms", domain.ErrMalformedFormula, src)
	}
	return counts, nil
}

// ParseMolecule parses a formula and keeps its trimmed text as the name.
func ParseMolecule(formula string) (domain.MoleculeFormula, error) {
	counts, err := ParseFormula(formula)
	if err != nil {
		return domain.MoleculeFormula{}, err
	}
	return domain.MoleculeFormula{Name: strings.TrimSpace(formula), Counts: counts}, nil
}

type formulaParser struct {
	src string
	pos int
}

// segment reads tokens until the end of input or a ')' it does not own.
func (p *formulaParser) segment(depth int) (domain.FormulaCounts, error) {
	counts := domain.FormulaCounts{}
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == ')':
			if depth == 0 {
				return nil, p.errorf("unmatched ')'")
			}
			return counts, nil

		case c == '(':
			open := p.pos
			p.pos++
			inner, err := p.segment(depth + 1)
			if err != nil {
				return nil, err
			}
			if p.pos >= len(p.src) {
				p.pos = open
				return nil, p.errorf("unmatched '('")
			}
			p.pos++ // ')'
			n, err := p.count()
			if err != nil {
				return nil, err
			}
			if err := p.merge(counts, inner, n); err != nil {
				return nil, err
			}

		case isUpper(c):
			symbol := p.element()
			n, err := p.count()
			if err != nil {
				return nil, err
			}
			if n > 0 && counts[symbol] > math.MaxInt32-n {
				return nil, p.errorf("count overflow")
			}
			counts.Add(symbol, n)

		default:
			r, _ := utf8.DecodeRuneInString(p.src[p.pos:])
			return nil, p.errorf("unexpected %q", r)
		}
	}
	return counts, nil
}

func (p *formulaParser) element() domain.ElementSymbol {
	start := p.pos
	p.pos++
	if p.pos < len(p.src) && isLower(p.src[p.pos]) {
		p.pos++
	}
	return domain.ElementSymbol(p.src[start:p.pos])
}

// count reads an optional run of digits. Absent digits mean 1.
func (p *formulaParser) count() (int, error) {
	start := p.pos
	for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
		p.pos++
	}
	if start == p.pos {
		return 1, nil
	}
	digits := p.src[start:p.pos]
	n, err := strconv.Atoi(digits)
	if err != nil || n > math.MaxInt32 {
		p.pos = start
		return 0, p.errorf("count %s too large", digits)
	}
	return n, nil
}

func (p *formulaParser) merge(into, group domain.FormulaCounts, factor int) error {
	for e, n := range group {
		if factor > 0 && (n > math.MaxInt32/factor || into[e] > math.MaxInt32-n*factor) {
			return p.errorf("count overflow")
		}
	}
	into.Merge(group, factor)
	return nil
}

func (p *formulaParser) errorf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: %s at position %d in %q", domain.ErrMalformedFormula, msg, p.pos, p.src)
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
