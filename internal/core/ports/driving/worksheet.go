package driving

import (
	"context"

	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
)

// WorksheetService runs batches of reactions from a file.
type WorksheetService interface {
	// Run loads the worksheet at path and calculates every entry.
	// A failing entry does not stop the others; its error is kept in the
	// result. The returned error is only for failures to load the file.
	Run(ctx context.Context, path string) ([]domain.WorksheetResult, error)

	// Watch runs the worksheet once and again after every change to the
	// file, passing each outcome to onRun. It returns when ctx is done.
	Watch(ctx context.Context, path string, onRun func([]domain.WorksheetResult, error)) error
}
