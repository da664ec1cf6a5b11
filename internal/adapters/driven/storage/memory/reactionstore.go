package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
	"github.com/custodia-labs/chemeq-cli/internal/core/ports/driven"
)

// Ensure ReactionStore implements the interface.
var _ driven.ReactionStore = (*ReactionStore)(nil)

// ReactionStore is an in-memory implementation of driven.ReactionStore.
type ReactionStore struct {
	mu        sync.RWMutex
	reactions map[string]domain.SavedReaction
}

// NewReactionStore creates a new in-memory reaction store.
func NewReactionStore() *ReactionStore {
	return &ReactionStore{
		reactions: make(map[string]domain.SavedReaction),
	}
}

// Save stores or updates a reaction. Names are unique across IDs.
func (s *ReactionStore) Save(_ context.Context, reaction domain.SavedReaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, r := range s.reactions {
		if id != reaction.ID && r.Name == reaction.Name {
			return domain.ErrAlreadyExists
		}
	}
	s.reactions[reaction.ID] = reaction
	return nil
}

// Get retrieves a reaction by ID.
func (s *ReactionStore) Get(_ context.Context, id string) (*domain.SavedReaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reactions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &r, nil
}

// GetByName retrieves a reaction by name.
func (s *ReactionStore) GetByName(_ context.Context, name string) (*domain.SavedReaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.reactions {
		if r.Name == name {
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Delete removes a reaction.
func (s *ReactionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reactions[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.reactions, id)
	return nil
}

// List returns all reactions ordered by name.
func (s *ReactionStore) List(_ context.Context) ([]domain.SavedReaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.SavedReaction, 0, len(s.reactions))
	for _, r := range s.reactions {
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}
