package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change solver tolerances, display format, storage and MCP limits.

Settings are stored in ~/.chemeq/config.toml.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> [value]",
	Short: "Change a setting",
	Long: `Change a setting by its dotted key.

Available keys:
  solver.pivot_tolerance  relative threshold below which a pivot counts as zero
  solver.tolerance        how close scaled coefficients must be to integers
  solver.max_denominator  largest scale tried when recovering integers
  display.format          plain, unicode or latex
  display.precision       significant digits for amounts (1-17)
  storage.backend         sqlite or memory
  storage.path            sqlite database file
  mcp.rate_limit          MCP tool calls per second (0 = unlimited)
  mcp.burst               MCP burst size

When the value is omitted in a terminal you are prompted for it.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Current Settings")
	fmt.Fprintln(out, "================")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Solver]")
	fmt.Fprintf(out, "  Pivot tolerance: %g\n", settings.Solver.PivotTolerance)
	fmt.Fprintf(out, "  Tolerance: %g\n", settings.Solver.Tolerance)
	fmt.Fprintf(out, "  Max denominator: %d\n", settings.Solver.MaxDenominator)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Display]")
	fmt.Fprintf(out, "  Format: %s\n", settings.Display.Format.Description())
	fmt.Fprintf(out, "  Precision: %d significant digits\n", settings.Display.Precision)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Storage]")
	fmt.Fprintf(out, "  Backend: %s\n", settings.Storage.Backend.Description())
	if settings.Storage.Backend == domain.StorageBackendSQLite {
		path := settings.Storage.Path
		if path == "" {
			path = "~/.chemeq/library.db"
		}
		fmt.Fprintf(out, "  Path: %s\n", path)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[MCP]")
	if settings.MCP.RateLimit > 0 {
		fmt.Fprintf(out, "  Rate limit: %g calls/s (burst %d)\n", settings.MCP.RateLimit, settings.MCP.Burst)
	} else {
		fmt.Fprintln(out, "  Rate limit: unlimited")
	}
	fmt.Fprintln(out)

	if err := settingsService.Validate(); err != nil {
		fmt.Fprintf(out, "Warning: %v\n", err)
		fmt.Fprintln(out, "Run 'chemeq settings set <key> <value>' to fix configuration issues.")
	} else {
		fmt.Fprintln(out, "Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key := args[0]
	if !isKnownKey(key) {
		return fmt.Errorf("%w: unknown key %q; run 'chemeq settings set --help' for the list",
			domain.ErrInvalidSettings, key)
	}

	var value string
	if len(args) == 2 {
		value = args[1]
	} else {
		if !isTerminal(cmd.InOrStdin()) {
			return fmt.Errorf("%w: a value is required for %s", domain.ErrInvalidSettings, key)
		}
		value = promptValue(cmd, bufio.NewReader(cmd.InOrStdin()), key)
	}

	if err := settingsService.Set(key, value); err != nil {
		return userError(err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s set to %s\n", key, value)
	return nil
}

func isKnownKey(key string) bool {
	for _, k := range settingsService.Keys() {
		if k == key {
			return true
		}
	}
	return false
}

// promptValue asks for a value, offering a numbered choice for enums.
func promptValue(cmd *cobra.Command, reader *bufio.Reader, key string) string {
	out := cmd.OutOrStdout()

	var choices []string
	switch key {
	case "display.format":
		for _, f := range domain.AllDisplayFormats() {
			choices = append(choices, f.String())
			fmt.Fprintf(out, "  %d. %s\n", len(choices), f.Description())
		}
	case "storage.backend":
		for _, b := range domain.AllStorageBackends() {
			choices = append(choices, b.String())
			fmt.Fprintf(out, "  %d. %s\n", len(choices), b.Description())
		}
	}

	if len(choices) > 0 {
		fmt.Fprint(out, "\nEnter choice [1]: ")
		return choices[parseChoice(readLine(reader), len(choices), 1)-1]
	}

	fmt.Fprintf(out, "Enter value for %s: ", key)
	return readLine(reader)
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}
