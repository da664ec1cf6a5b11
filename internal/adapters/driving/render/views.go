package render

import (
	"math"

	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
)

// Roles of a species in a reaction.
const (
	RoleReactant = "reactant"
	RoleProduct  = "product"
)

// SpeciesView is the JSON shape of one species of a calculation.
// Amounts are nil when no stoichiometry was requested or when the value
// is not finite.
type SpeciesView struct {
	Formula        string   `json:"formula"`
	Role           string   `json:"role"`
	Coefficient    int      `json:"coefficient"`
	InitialMoles   *float64 `json:"initial_moles,omitempty"`
	RemainingMoles *float64 `json:"remaining_moles,omitempty"`
	ConversionRate *float64 `json:"conversion_rate,omitempty"`
	ProducedMoles  *float64 `json:"produced_moles,omitempty"`
}

// CalculationView is the JSON shape of a calculation.
type CalculationView struct {
	Equation         string        `json:"equation"`
	Coefficients     []int         `json:"coefficients"`
	Species          []SpeciesView `json:"species"`
	LimitingReactant string        `json:"limiting_reactant,omitempty"`
	LimitingRatio    *float64      `json:"limiting_ratio,omitempty"`
	Warnings         []string      `json:"warnings,omitempty"`
}

// FormulaView is the JSON shape of a parsed formula.
type FormulaView struct {
	Formula  string         `json:"formula"`
	Elements map[string]int `json:"elements"`
	Atoms    int            `json:"atoms"`
}

// ErrorView is the JSON shape of a failed request.
type ErrorView struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Number returns a pointer to v, or nil if v is NaN or infinite.
func Number(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// NewCalculationView converts a calculation for JSON output. The equation
// is rendered in plain format.
func NewCalculationView(calc *domain.Calculation) CalculationView {
	b := calc.Balanced
	view := CalculationView{
		Equation:     Equation(b, domain.DisplayFormatPlain),
		Coefficients: append([]int(nil), b.Coefficients...),
		Species:      make([]SpeciesView, 0, len(b.Reactants)+len(b.Products)),
		Warnings:     calc.Warnings,
	}

	q := calc.Quantities
	for i, r := range b.Reactants {
		s := SpeciesView{Formula: r.Name, Role: RoleReactant, Coefficient: b.Coefficient(i)}
		if q != nil {
			if i < len(calc.InitialMoles) {
				s.InitialMoles = Number(calc.InitialMoles[i])
			}
			s.RemainingMoles = Number(at(q.RemainingMoles, i))
			s.ConversionRate = Number(at(q.ConversionRates, i))
		}
		view.Species = append(view.Species, s)
	}
	for j, p := range b.Products {
		s := SpeciesView{Formula: p.Name, Role: RoleProduct, Coefficient: b.Coefficient(len(b.Reactants) + j)}
		if q != nil {
			s.ProducedMoles = Number(at(q.ProducedMoles, j))
		}
		view.Species = append(view.Species, s)
	}

	if q != nil {
		view.LimitingRatio = Number(q.LimitingRatio)
		if q.LimitingIndex >= 0 && q.LimitingIndex < len(b.Reactants) {
			view.LimitingReactant = b.Reactants[q.LimitingIndex].Name
		}
	}
	return view
}

// NewFormulaView converts a parsed formula for JSON output.
func NewFormulaView(m domain.MoleculeFormula) FormulaView {
	view := FormulaView{Formula: m.Name, Elements: make(map[string]int, len(m.Counts))}
	for e, n := range m.Counts {
		view.Elements[string(e)] = n
		view.Atoms += n
	}
	return view
}

// NewErrorView converts an error for JSON output.
func NewErrorView(err error) ErrorView {
	return ErrorView{Kind: ErrorKind(err), Message: ErrorMessage(err)}
}
