// Command chemeq balances chemical equations and computes stoichiometry.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/custodia-labs/chemeq-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/chemeq-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/chemeq-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/chemeq-cli/internal/adapters/driven/worksheet"
	"github.com/custodia-labs/chemeq-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
	"github.com/custodia-labs/chemeq-cli/internal/core/ports/driven"
	"github.com/custodia-labs/chemeq-cli/internal/core/services"
	"github.com/custodia-labs/chemeq-cli/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetServiceFactory(wire)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// wire builds the services from the config file named in opts.
func wire(opts cli.Options) (*cli.Services, func() error, error) {
	var (
		configStore *file.ConfigStore
		err         error
	)
	if opts.ConfigPath != "" {
		configStore, err = file.NewConfigStoreAt(opts.ConfigPath)
	} else {
		configStore, err = file.NewConfigStore("")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("reading settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		logger.Warn("%v; run 'chemeq settings' to review", err)
	}

	reactions, closeStore := openLibrary(settings.Storage, opts.ConfigPath)

	calculatorService := services.NewCalculatorService(settingsService)
	worksheetService := services.NewWorksheetService(worksheet.NewLoader(), calculatorService).
		WithWatcher(worksheet.NewWatcher())

	return &cli.Services{
		Calculator: calculatorService,
		Catalog:    services.NewCatalogService(reactions),
		Settings:   settingsService,
		Worksheet:  worksheetService,
	}, closeStore, nil
}

// openLibrary opens the configured reaction store. A SQLite store that
// cannot be opened falls back to memory so balancing still works.
func openLibrary(cfg domain.StorageSettings, configPath string) (driven.ReactionStore, func() error) {
	noop := func() error { return nil }
	if cfg.Backend == domain.StorageBackendMemory {
		return memory.NewReactionStore(), noop
	}

	path := cfg.Path
	if path == "" && configPath != "" {
		path = filepath.Join(filepath.Dir(configPath), sqlite.DefaultFileName)
	}

	store, err := sqlite.NewStore(path)
	if err != nil {
		logger.Warn("reaction library unavailable, using memory: %v", err)
		return memory.NewReactionStore(), noop
	}
	return store.ReactionStore(), store.Close
}
