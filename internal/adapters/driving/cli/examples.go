package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
)

var (
	examplesJSON  bool
	examplesMoles string
)

var examplesCmd = &cobra.Command{
	Use:   "examples [number|name]",
	Short: "List or balance built-in example reactions",
	Long: `Without arguments, list the built-in example reactions.

With a number or name, balance that example. --moles works as for the
balance command.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExamples,
}

func init() {
	examplesCmd.Flags().BoolVar(&examplesJSON, "json", false, "output as JSON")
	examplesCmd.Flags().StringVarP(&examplesMoles, "moles", "m", "", "initial moles of each reactant")
	rootCmd.AddCommand(examplesCmd)
}

func runExamples(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return fmt.Errorf("catalog %w", errNotConfigured)
	}
	examples := catalogService.Examples()

	if len(args) == 0 {
		if examplesJSON {
			return printJSON(cmd, examples)
		}
		out := cmd.OutOrStdout()
		for i, ex := range examples {
			fmt.Fprintf(out, "%3d. %-34s %s\n", i+1, ex.Name, ex.Equation)
		}
		return nil
	}

	ex, err := findExample(examples, args[0])
	if err != nil {
		return err
	}
	if calculatorService == nil {
		return fmt.Errorf("calculator %w", errNotConfigured)
	}
	return calculate(cmd, ex.Equation, examplesMoles, examplesJSON, "")
}

// findExample resolves a 1-based index or a case-insensitive name.
func findExample(examples []domain.ExampleReaction, ref string) (domain.ExampleReaction, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(examples) {
			return domain.ExampleReaction{}, fmt.Errorf("%w: example %d (1-%d)", domain.ErrNotFound, n, len(examples))
		}
		return examples[n-1], nil
	}
	for _, ex := range examples {
		if strings.EqualFold(ex.Name, ref) {
			return ex, nil
		}
	}
	return domain.ExampleReaction{}, fmt.Errorf("%w: example %q", domain.ErrNotFound, ref)
}
