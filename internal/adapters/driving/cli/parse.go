package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/chemeq-cli/internal/adapters/driving/render"
	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse <formula>...",
	Short: "Count the atoms in chemical formulas",
	Long: `Parse one or more chemical formulas and print the number of atoms of
each element. Parenthesised groups may be nested and carry a count.

Example:
  chemeq parse "Ca3(PO4)2" "Fe2(SO4)3"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "output the counts as JSON")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if calculatorService == nil {
		return fmt.Errorf("calculator %w", errNotConfigured)
	}

	molecules := make([]domain.MoleculeFormula, 0, len(args))
	for _, arg := range args {
		m, err := calculatorService.ParseFormula(cmd.Context(), arg)
		if err != nil {
			return userError(err)
		}
		molecules = append(molecules, *m)
	}

	if parseJSON {
		views := make([]render.FormulaView, len(molecules))
		for i, m := range molecules {
			views[i] = render.NewFormulaView(m)
		}
		return printJSON(cmd, views)
	}

	out := cmd.OutOrStdout()
	for _, m := range molecules {
		fmt.Fprintf(out, "%s: %s\n", m.Name, render.Counts(m.Counts))
	}
	return nil
}
