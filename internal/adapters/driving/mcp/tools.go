package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/chemeq-cli/internal/adapters/driving/render"
	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
)

// BalanceInput is the input schema for the balance_equation tool.
type BalanceInput struct {
	Equation string    `json:"equation" jsonschema:"reaction such as H2 + O2 -> H2O; sides separated by ->, =>, = or →"`
	Moles    []float64 `json:"moles,omitempty" jsonschema:"initial moles of each reactant, in order; omit to balance only"`
	Format   string    `json:"format,omitempty" jsonschema:"rendering of the equation field: plain, unicode or latex (default plain)"`
}

// BalanceOutput is the output schema for the balance_equation tool.
type BalanceOutput struct {
	Result render.CalculationView `json:"result"`

	// Rendered is the equation in the requested format.
	Rendered string `json:"rendered"`
}

// ParseFormulaInput is the input schema for the parse_formula tool.
type ParseFormulaInput struct {
	Formula string `json:"formula" jsonschema:"chemical formula such as Ca3(PO4)2"`
}

// ListExamplesInput is the input schema for the list_examples tool.
type ListExamplesInput struct{}

// ListExamplesOutput is the output schema for the list_examples tool.
type ListExamplesOutput struct {
	Examples []ExampleOutput `json:"examples"`
	Count    int             `json:"count"`
}

// ExampleOutput represents a single example reaction.
type ExampleOutput struct {
	Name     string `json:"name"`
	Equation string `json:"equation"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "balance_equation",
		Description: "Balance a chemical equation and optionally compute limiting-reagent stoichiometry",
	}, s.handleBalance)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "parse_formula",
		Description: "Count the atoms of each element in a chemical formula",
	}, s.handleParseFormula)

	if s.ports.Catalog != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "list_examples",
			Description: "List the built-in example reactions",
		}, s.handleListExamples)
	}
}

// handleBalance handles the balance_equation tool invocation.
func (s *Server) handleBalance(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input BalanceInput,
) (*mcp.CallToolResult, BalanceOutput, error) {
	if err := s.throttle(ctx); err != nil {
		return nil, BalanceOutput{}, err
	}

	format := domain.DisplayFormatPlain
	if input.Format != "" {
		format = domain.DisplayFormat(input.Format)
		if !format.IsValid() {
			return nil, BalanceOutput{}, toolError(fmt.Errorf("%w: unknown format %q", domain.ErrInvalidInput, input.Format))
		}
	}

	calc, err := s.ports.Calculator.Calculate(ctx, input.Equation, input.Moles)
	if err != nil {
		return nil, BalanceOutput{}, toolError(err)
	}

	return nil, BalanceOutput{
		Result:   render.NewCalculationView(calc),
		Rendered: render.Equation(calc.Balanced, format),
	}, nil
}

// handleParseFormula handles the parse_formula tool invocation.
func (s *Server) handleParseFormula(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ParseFormulaInput,
) (*mcp.CallToolResult, render.FormulaView, error) {
	if err := s.throttle(ctx); err != nil {
		return nil, render.FormulaView{}, err
	}

	m, err := s.ports.Calculator.ParseFormula(ctx, input.Formula)
	if err != nil {
		return nil, render.FormulaView{}, toolError(err)
	}
	return nil, render.NewFormulaView(*m), nil
}

// handleListExamples handles the list_examples tool invocation.
func (s *Server) handleListExamples(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListExamplesInput,
) (*mcp.CallToolResult, ListExamplesOutput, error) {
	if err := s.throttle(ctx); err != nil {
		return nil, ListExamplesOutput{}, err
	}

	examples := s.ports.Catalog.Examples()
	output := ListExamplesOutput{
		Examples: make([]ExampleOutput, len(examples)),
		Count:    len(examples),
	}
	for i, ex := range examples {
		output.Examples[i] = ExampleOutput{Name: ex.Name, Equation: ex.Equation}
	}
	return nil, output, nil
}

// toolError keeps the domain error for errors.Is while giving the client
// the user-facing message.
func toolError(err error) error {
	return &userFacingError{err: err}
}

type userFacingError struct {
	err error
}

func (e *userFacingError) Error() string { return render.ErrorMessage(e.err) }
func (e *userFacingError) Unwrap() error { return e.err }
