package mcp

import (
	"context"

	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
)

// mockCatalogService is a mock implementation of driving.CatalogService.
type mockCatalogService struct {
	examples  []domain.ExampleReaction
	reactions []domain.SavedReaction
	reaction  *domain.SavedReaction
	err       error
}

func (m *mockCatalogService) Examples() []domain.ExampleReaction {
	return m.examples
}

func (m *mockCatalogService) Save(_ context.Context, _, _, _ string) (*domain.SavedReaction, error) {
	return m.reaction, m.err
}

func (m *mockCatalogService) List(_ context.Context) ([]domain.SavedReaction, error) {
	return m.reactions, m.err
}

func (m *mockCatalogService) Get(_ context.Context, _ string) (*domain.SavedReaction, error) {
	return m.reaction, m.err
}

func (m *mockCatalogService) Remove(_ context.Context, _ string) error {
	return m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error              { return m.err }
func (m *mockSettingsService) Set(_, _ string) error                         { return m.err }
func (m *mockSettingsService) Keys() []string                                { return nil }
func (m *mockSettingsService) SetSolver(_ domain.SolverSettings) error       { return m.err }
func (m *mockSettingsService) SetDisplayFormat(_ domain.DisplayFormat) error { return m.err }
func (m *mockSettingsService) SetPrecision(_ int) error                      { return m.err }
func (m *mockSettingsService) Validate() error                               { return m.err }
func (m *mockSettingsService) GetDefaults() domain.AppSettings               { return domain.DefaultAppSettings() }

func (m *mockSettingsService) SetStorageBackend(_ domain.StorageBackend, _ string) error {
	return m.err
}
