package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/chemeq-cli/internal/adapters/driving/render"
	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
)

const (
	// URIScheme is the custom URI scheme for chemeq resources.
	uriScheme = "chemeq://"
)

// libraryEntry is the JSON shape of a saved reaction.
type libraryEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Equation  string    `json:"equation"`
	Notes     string    `json:"notes,omitempty"`
	Balanced  string    `json:"balanced,omitempty"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	if s.ports.Catalog == nil {
		return
	}

	// Static resource for the built-in examples.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "examples",
		Name:        "examples",
		Description: "Built-in example reactions",
		MIMEType:    "application/json",
	}, s.handleExamplesResource)

	// Static resource for the library.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "library",
		Name:        "library",
		Description: "Reactions saved in the user's library",
		MIMEType:    "application/json",
	}, s.handleLibraryResource)

	// Template for one saved reaction.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "library/{id}",
		Name:        "library-reaction",
		Description: "A saved reaction with its balanced equation",
		MIMEType:    "application/json",
	}, s.handleLibraryReactionResource)
}

// handleExamplesResource returns the built-in example reactions.
func (s *Server) handleExamplesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	examples := s.ports.Catalog.Examples()
	out := make([]ExampleOutput, len(examples))
	for i, ex := range examples {
		out[i] = ExampleOutput{Name: ex.Name, Equation: ex.Equation}
	}
	return jsonResource(req.Params.URI, out)
}

// handleLibraryResource returns every saved reaction.
func (s *Server) handleLibraryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	reactions, err := s.ports.Catalog.List(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			// Library disabled: present it as empty.
			return jsonResource(req.Params.URI, []libraryEntry{})
		}
		return nil, fmt.Errorf("listing library: %w", err)
	}

	entries := make([]libraryEntry, len(reactions))
	for i := range reactions {
		entries[i] = newLibraryEntry(reactions[i])
	}
	return jsonResource(req.Params.URI, entries)
}

// handleLibraryReactionResource returns one saved reaction, balanced.
func (s *Server) handleLibraryReactionResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract id from URI: chemeq://library/{id}
	id := extractLibraryID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	r, err := s.ports.Catalog.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("getting reaction: %w", err)
	}

	entry := newLibraryEntry(*r)
	if balanced, err := s.ports.Calculator.Balance(ctx, r.Equation); err != nil {
		entry.Error = render.ErrorMessage(err)
	} else {
		entry.Balanced = render.Equation(*balanced, domain.DisplayFormatPlain)
	}
	return jsonResource(req.Params.URI, entry)
}

func newLibraryEntry(r domain.SavedReaction) libraryEntry {
	return libraryEntry{
		ID:        r.ID,
		Name:      r.Name,
		Equation:  r.Equation,
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
	}
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractLibraryID extracts the reaction ID from a URI like chemeq://library/{id}.
func extractLibraryID(uri string) string {
	const prefix = uriScheme + "library/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
