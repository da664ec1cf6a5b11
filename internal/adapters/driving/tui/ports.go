// Package tui provides an interactive terminal user interface for chemeq.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/chemeq-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Calculator balances equations and computes amounts.
	Calculator driving.CalculatorService

	// Catalog provides examples and the reaction library.
	Catalog driving.CatalogService

	// Settings manages application settings.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	calculator driving.CalculatorService,
	catalog driving.CatalogService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Calculator: calculator,
		Catalog:    catalog,
		Settings:   settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Calculator == nil {
		return ErrMissingCalculatorService
	}
	// Catalog and Settings are optional
	return nil
}
