// Package mcp provides an MCP (Model Context Protocol) server adapter for chemeq.
// It lets AI assistants balance equations, parse formulas and read the
// example and library reactions.
package mcp

import "errors"

// ErrMissingCalculatorService is returned when the calculator service is not provided.
var ErrMissingCalculatorService = errors.New("mcp: calculator service is required")
