// Package cli provides the chemeq command line interface built on cobra.
package cli

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/chemeq-cli/internal/core/ports/driving"
	"github.com/custodia-labs/chemeq-cli/internal/logger"
)

// ConfigEnvVar overrides the config file location when --config is not given.
const ConfigEnvVar = "CHEMEQ_CONFIG"

// version is set at build time with -ldflags.
var version = "dev"

var (
	verboseFlag bool
	traceFlag   bool
	configFlag  string
)

// Services wired into the commands.
var (
	calculatorService driving.CalculatorService
	catalogService    driving.CatalogService
	settingsService   driving.SettingsService
	worksheetService  driving.WorksheetService
)

// Services groups the driving ports the commands use.
type Services struct {
	Calculator driving.CalculatorService
	Catalog    driving.CatalogService
	Settings   driving.SettingsService
	Worksheet  driving.WorksheetService
}

// Options are the global flags needed to build services.
type Options struct {
	// ConfigPath is the config file to use, empty for the default.
	ConfigPath string
}

// ServiceFactory builds the services for a run. The returned cleanup is
// called after the command completes.
type ServiceFactory func(opts Options) (*Services, func() error, error)

var (
	serviceFactory ServiceFactory
	cleanupFunc    func() error
)

var rootCmd = &cobra.Command{
	Use:   "chemeq",
	Short: "Balance chemical equations and compute stoichiometry",
	Long: `chemeq balances chemical equations by solving the null space of the
element composition matrix, and computes limiting-reagent stoichiometry
from initial reactant amounts.

Examples:
  chemeq balance "H2 + O2 -> H2O"
  chemeq balance "H2 + O2 -> H2O" --moles "2 1"
  chemeq parse "Ca3(PO4)2"
  chemeq worksheet run lab.hcl --watch`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "print debug output to stderr")
	rootCmd.PersistentFlags().BoolVar(&traceFlag, "trace", false, "print every elimination step (implies --verbose)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "",
		"config file (default ~/.chemeq/config.toml, or $"+ConfigEnvVar+")")
}

// Execute runs the root command with a background context.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command and releases anything the service
// factory opened. Cancelling ctx stops long-running commands such as
// worksheet watch and mcp serve.
func ExecuteContext(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if cerr := teardown(); err == nil {
		err = cerr
	}
	return err
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServiceFactory registers how services are built on first use.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

// SetServices wires services directly, bypassing the factory.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	calculatorService = s.Calculator
	catalogService = s.Catalog
	settingsService = s.Settings
	worksheetService = s.Worksheet
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)
	logger.SetTrace(traceFlag)

	if calculatorService != nil || serviceFactory == nil {
		return nil
	}

	opts := Options{ConfigPath: resolveConfigPath()}
	logger.Debug("config path: %q", opts.ConfigPath)

	services, cleanup, err := serviceFactory(opts)
	if err != nil {
		return err
	}
	SetServices(services)
	cleanupFunc = cleanup
	return nil
}

func teardown() error {
	if cleanupFunc == nil {
		return nil
	}
	err := cleanupFunc()
	cleanupFunc = nil
	return err
}

// resolveConfigPath returns the --config flag, then $CHEMEQ_CONFIG, then "".
func resolveConfigPath() string {
	if configFlag != "" {
		return configFlag
	}
	return os.Getenv(ConfigEnvVar)
}

// isTerminal reports whether stream (stdin or stdout) is a terminal.
func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

var errNotConfigured = errors.New("service not configured")
