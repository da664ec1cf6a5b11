package driving

import (
	"context"

	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
)

// CatalogService offers built-in example reactions and the user's library.
type CatalogService interface {
	// Examples returns the built-in example reactions.
	Examples() []domain.ExampleReaction

	// Save validates and adds a reaction to the library.
	Save(ctx context.Context, name, equation, notes string) (*domain.SavedReaction, error)

	// List returns the library ordered by name.
	List(ctx context.Context) ([]domain.SavedReaction, error)

	// Get finds a library reaction by ID or name.
	Get(ctx context.Context, ref string) (*domain.SavedReaction, error)

	// Remove deletes a library reaction by ID or name.
	Remove(ctx context.Context, ref string) error
}
