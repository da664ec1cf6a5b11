package driven

import (
	"context"

	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
)

// ReactionStore persists the user's reaction library.
type ReactionStore interface {
	// Save stores or updates a reaction by ID.
	// Returns domain.ErrAlreadyExists if another reaction has the same name.
	Save(ctx context.Context, reaction domain.SavedReaction) error

	// Get retrieves a reaction by ID.
	Get(ctx context.Context, id string) (*domain.SavedReaction, error)

	// GetByName retrieves a reaction by its unique name.
	GetByName(ctx context.Context, name string) (*domain.SavedReaction, error)

	// Delete removes a reaction.
	Delete(ctx context.Context, id string) error

	// List returns all reactions ordered by name.
	List(ctx context.Context) ([]domain.SavedReaction, error)
}
