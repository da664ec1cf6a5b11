package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
	"github.com/custodia-labs/chemeq-cli/internal/core/ports/driven"
)

// reactionStore implements driven.ReactionStore.
type reactionStore struct {
	store *Store
}

var _ driven.ReactionStore = (*reactionStore)(nil)

const reactionColumns = "id, name, equation, notes, created_at, updated_at"

// Save stores or updates a reaction.
func (s *reactionStore) Save(ctx context.Context, r domain.SavedReaction) error {
	now := time.Now().UTC()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO reactions (`+reactionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			equation = excluded.equation,
			notes = excluded.notes,
			updated_at = excluded.updated_at
	`, r.ID, r.Name, r.Equation, r.Notes, r.CreatedAt, r.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("reaction %q: %w", r.Name, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("saving reaction: %w", err)
	}
	return nil
}

// Get retrieves a reaction by ID.
func (s *reactionStore) Get(ctx context.Context, id string) (*domain.SavedReaction, error) {
	row := s.store.db.QueryRowContext(ctx, "SELECT "+reactionColumns+" FROM reactions WHERE id = ?", id)
	return scanReaction(row)
}

// GetByName retrieves a reaction by name.
func (s *reactionStore) GetByName(ctx context.Context, name string) (*domain.SavedReaction, error) {
	row := s.store.db.QueryRowContext(ctx, "SELECT "+reactionColumns+" FROM reactions WHERE name = ?", name)
	return scanReaction(row)
}

// Delete removes a reaction.
func (s *reactionStore) Delete(ctx context.Context, id string) error {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM reactions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting reaction: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting reaction: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns all reactions ordered by name.
func (s *reactionStore) List(ctx context.Context) ([]domain.SavedReaction, error) {
	rows, err := s.store.db.QueryContext(ctx, "SELECT "+reactionColumns+" FROM reactions ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("querying reactions: %w", err)
	}
	defer rows.Close()

	var reactions []domain.SavedReaction //nolint:prealloc // size unknown from query
	for rows.Next() {
		r, err := scanReaction(rows)
		if err != nil {
			return nil, err
		}
		reactions = append(reactions, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reactions: %w", err)
	}
	return reactions, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReaction(row scanner) (*domain.SavedReaction, error) {
	var r domain.SavedReaction
	var createdAt, updatedAt sql.NullTime
	if err := row.Scan(&r.ID, &r.Name, &r.Equation, &r.Notes, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning reaction: %w", err)
	}
	if createdAt.Valid {
		r.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		r.UpdatedAt = updatedAt.Time
	}
	return &r, nil
}

func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
