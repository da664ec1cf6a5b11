package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
	"github.com/custodia-labs/chemeq-cli/internal/core/ports/driven"
	"github.com/custodia-labs/chemeq-cli/internal/core/ports/driving"
	"github.com/custodia-labs/chemeq-cli/internal/logger"
)

// Ensure WorksheetService implements the interface.
var _ driving.WorksheetService = (*WorksheetService)(nil)

// WorksheetService runs every reaction of a worksheet file.
type WorksheetService struct {
	loader     driven.WorksheetLoader
	calculator driving.CalculatorService
	watcher    driven.FileWatcher
}

// NewWorksheetService creates a new worksheet service.
func NewWorksheetService(loader driven.WorksheetLoader, calculator driving.CalculatorService) *WorksheetService {
	return &WorksheetService{loader: loader, calculator: calculator}
}

// WithWatcher enables Watch using the given file watcher.
func (s *WorksheetService) WithWatcher(w driven.FileWatcher) *WorksheetService {
	s.watcher = w
	return s
}

// Run loads the worksheet and calculates each entry independently.
func (s *WorksheetService) Run(ctx context.Context, path string) ([]domain.WorksheetResult, error) {
	if s.loader == nil || s.calculator == nil {
		return nil, fmt.Errorf("%w: worksheet service not configured", domain.ErrInvalidInput)
	}
	logger.Section("Worksheet")

	ws, err := s.loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load worksheet: %w", err)
	}
	logger.Debug("%s: %d reactions", ws.Path, len(ws.Entries))

	results := make([]domain.WorksheetResult, 0, len(ws.Entries))
	for _, entry := range ws.Entries {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		calc, err := s.calculator.Calculate(ctx, entry.Equation, entry.Moles)
		if err != nil {
			logger.Debug("%s: %v", entry.Name, err)
		}
		results = append(results, domain.WorksheetResult{Entry: entry, Calculation: calc, Err: err})
	}
	return results, nil
}

// Watch runs the worksheet now and after every change until ctx is done.
// Load failures are reported through onRun so a half-saved file does not
// end the session.
func (s *WorksheetService) Watch(
	ctx context.Context,
	path string,
	onRun func([]domain.WorksheetResult, error),
) error {
	if s.watcher == nil {
		return fmt.Errorf("%w: file watching not configured", domain.ErrInvalidInput)
	}

	changes, err := s.watcher.Watch(ctx, path)
	if err != nil {
		return err
	}

	onRun(s.Run(ctx, path))
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			logger.Info("re-running %s", path)
			onRun(s.Run(ctx, path))
		}
	}
}
