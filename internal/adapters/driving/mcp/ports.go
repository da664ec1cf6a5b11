package mcp

import (
	"github.com/custodia-labs/chemeq-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Calculator balances equations and parses formulas.
	Calculator driving.CalculatorService

	// Catalog provides examples and the reaction library.
	Catalog driving.CatalogService

	// Settings supplies the rate limit; defaults apply when nil.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Calculator == nil {
		return ErrMissingCalculatorService
	}
	// Catalog and Settings are optional
	return nil
}
