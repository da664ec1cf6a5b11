package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
	"github.com/custodia-labs/chemeq-cli/internal/core/parser"
	"github.com/custodia-labs/chemeq-cli/internal/core/ports/driven"
	"github.com/custodia-labs/chemeq-cli/internal/core/ports/driving"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService serves the built-in examples and the reaction library.
type CatalogService struct {
	store driven.ReactionStore
	now   func() time.Time
}

// NewCatalogService creates a new catalog service.
// A nil store leaves the examples available and the library disabled.
func NewCatalogService(store driven.ReactionStore) *CatalogService {
	return &CatalogService{store: store, now: time.Now}
}

// Examples returns the built-in example reactions.
func (s *CatalogService) Examples() []domain.ExampleReaction {
	out := make([]domain.ExampleReaction, len(exampleReactions))
	copy(out, exampleReactions)
	return out
}

// Save validates the equation and adds it to the library under name.
func (s *CatalogService) Save(ctx context.Context, name, equation, notes string) (*domain.SavedReaction, error) {
	if s.store == nil {
		return nil, errLibraryDisabled
	}
	name = strings.TrimSpace(name)
	equation = strings.TrimSpace(equation)
	if name == "" {
		return nil, fmt.Errorf("%w: reaction name is required", domain.ErrInvalidInput)
	}
	if _, err := parser.ParseReaction(equation); err != nil {
		return nil, err
	}

	if existing, err := s.store.GetByName(ctx, name); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: reaction %q", domain.ErrAlreadyExists, name)
	}

	now := s.now().UTC()
	r := domain.SavedReaction{
		ID:        uuid.New().String(),
		Name:      name,
		Equation:  equation,
		Notes:     strings.TrimSpace(notes),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Save(ctx, r); err != nil {
		return nil, fmt.Errorf("save reaction: %w", err)
	}
	return &r, nil
}

// List returns the library ordered by name.
func (s *CatalogService) List(ctx context.Context) ([]domain.SavedReaction, error) {
	if s.store == nil {
		return nil, errLibraryDisabled
	}
	return s.store.List(ctx)
}

// Get finds a reaction by ID, then by name.
func (s *CatalogService) Get(ctx context.Context, ref string) (*domain.SavedReaction, error) {
	if s.store == nil {
		return nil, errLibraryDisabled
	}
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("%w: reaction id or name is required", domain.ErrInvalidInput)
	}

	r, err := s.store.Get(ctx, ref)
	if err == nil {
		return r, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	r, err = s.store.GetByName(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("reaction %q: %w", ref, err)
	}
	return r, nil
}

// Remove deletes a reaction by ID or name.
func (s *CatalogService) Remove(ctx context.Context, ref string) error {
	r, err := s.Get(ctx, ref)
	if err != nil {
		return err
	}
	return s.store.Delete(ctx, r.ID)
}

var errLibraryDisabled = fmt.Errorf("%w: reaction library is not configured", domain.ErrInvalidInput)
