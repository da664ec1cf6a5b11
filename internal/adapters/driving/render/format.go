package render

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
)

// Options controls rendering.
type Options struct {
	Format domain.DisplayFormat

	// Precision is the number of significant digits for amounts.
	Precision int
}

// DefaultOptions returns the options of the default settings.
func DefaultOptions() Options {
	d := domain.DefaultAppSettings().Display
	return Options{Format: d.Format, Precision: d.Precision}
}

// OptionsFrom builds options from display settings.
func OptionsFrom(d domain.DisplaySettings) Options {
	return Options{Format: d.Format, Precision: d.Precision}
}

var subscripts = [10]rune{'₀', '₁', '₂', '₃', '₄', '₅', '₆', '₇', '₈', '₉'}

// Formula renders a formula name in the given format.
func Formula(name string, format domain.DisplayFormat) string {
	switch format {
	case domain.DisplayFormatUnicode:
		var sb strings.Builder
		for _, r := range name {
			if r >= '0' && r <= '9' {
				sb.WriteRune(subscripts[r-'0'])
			} else {
				sb.WriteRune(r)
			}
		}
		return sb.String()
	case domain.DisplayFormatLaTeX:
		var sb strings.Builder
		runes := []rune(name)
		for i := 0; i < len(runes); i++ {
			if !unicode.IsDigit(runes[i]) {
				sb.WriteRune(runes[i])
				continue
			}
			j := i
			for j < len(runes) && unicode.IsDigit(runes[j]) {
				j++
			}
			sb.WriteString("_{" + string(runes[i:j]) + "}")
			i = j - 1
		}
		return sb.String()
	default:
		return name
	}
}

// Arrow returns the reaction arrow for the format.
func Arrow(format domain.DisplayFormat) string {
	switch format {
	case domain.DisplayFormatUnicode:
		return "→"
	case domain.DisplayFormatLaTeX:
		return `\rightarrow`
	default:
		return "->"
	}
}

// Coefficient renders a stoichiometric coefficient; 1 is omitted.
func Coefficient(n int) string {
	if n == 1 {
		return ""
	}
	return strconv.Itoa(n)
}

// Equation renders a balanced reaction.
func Equation(b domain.BalancedReaction, format domain.DisplayFormat) string {
	side := func(ms []domain.MoleculeFormula, offset int) string {
		terms := make([]string, len(ms))
		for i, m := range ms {
			terms[i] = Coefficient(b.Coefficient(offset+i)) + Formula(m.Name, format)
		}
		return strings.Join(terms, " + ")
	}
	return side(b.Reactants, 0) + " " + Arrow(format) + " " + side(b.Products, len(b.Reactants))
}

// Amount renders a mole amount with the given significant digits.
func Amount(v float64, precision int) string {
	switch {
	case math.IsNaN(v):
		return "undefined"
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}
	if precision <= 0 {
		precision = domain.DefaultAppSettings().Display.Precision
	}
	if v == 0 {
		// Avoids printing "-0".
		v = 0
	}
	return strconv.FormatFloat(v, 'g', precision, 64)
}

// Percent renders a fraction as a percentage.
func Percent(v float64, precision int) string {
	s := Amount(v*100, precision)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return s
	}
	return s + "%"
}

// Products renders one "name: amount mol" entry per product. LaTeX output
// is a single \cases block.
func Products(b domain.BalancedReaction, produced []float64, opts Options) string {
	lines := make([]string, 0, len(b.Products))
	for i, p := range b.Products {
		amount := "undefined"
		if i < len(produced) {
			amount = Amount(produced[i], opts.Precision)
		}
		lines = append(lines, Formula(p.Name, opts.Format)+": "+amount+" mol")
	}
	if opts.Format == domain.DisplayFormatLaTeX {
		return ` \cases{` + strings.Join(lines, `,\\ `) + `}`
	}
	return strings.Join(lines, "\n")
}

// Calculation renders the full result of a request: the balanced equation
// and, when present, the stoichiometry.
func Calculation(calc *domain.Calculation, opts Options) string {
	if calc == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(Equation(calc.Balanced, opts.Format))
	sb.WriteString("\n")

	q := calc.Quantities
	if q != nil {
		sb.WriteString("\nProducts:\n")
		if opts.Format == domain.DisplayFormatLaTeX {
			sb.WriteString(Products(calc.Balanced, q.ProducedMoles, opts))
			sb.WriteString("\n")
		} else {
			for _, line := range strings.Split(Products(calc.Balanced, q.ProducedMoles, opts), "\n") {
				sb.WriteString("  " + line + "\n")
			}
		}

		sb.WriteString("\nReactants:\n")
		for i, r := range calc.Balanced.Reactants {
			name := Formula(r.Name, opts.Format)
			sb.WriteString("  " + name + ": " + Amount(at(q.RemainingMoles, i), opts.Precision) +
				" mol left, " + Percent(at(q.ConversionRates, i), opts.Precision) + " converted\n")
		}

		if q.LimitingIndex >= 0 && q.LimitingIndex < len(calc.Balanced.Reactants) {
			sb.WriteString("\nLimiting reactant: " +
				Formula(calc.Balanced.Reactants[q.LimitingIndex].Name, opts.Format) + "\n")
		}
	}

	for _, w := range calc.Warnings {
		sb.WriteString("\nNote: " + w + "\n")
	}
	return sb.String()
}

// Counts renders element counts as "Ca: 3, O: 8, P: 2".
func Counts(c domain.FormulaCounts) string {
	parts := make([]string, 0, len(c))
	for _, e := range c.Elements() {
		parts = append(parts, string(e)+": "+strconv.Itoa(c.Count(e)))
	}
	return strings.Join(parts, ", ")
}

func at(v []float64, i int) float64 {
	if i < 0 || i >= len(v) {
		return math.NaN()
	}
	return v[i]
}
