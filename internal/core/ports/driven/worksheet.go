package driven

import (
	"context"

	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
)

// WorksheetLoader reads a batch of reactions from a file.
type WorksheetLoader interface {
	// Load parses the worksheet at path.
	Load(ctx context.Context, path string) (*domain.Worksheet, error)
}
