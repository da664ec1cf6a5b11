package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/chemeq-cli/internal/adapters/driving/render"
)

var (
	balanceMoles  string
	balanceJSON   bool
	balanceFormat string
)

var balanceCmd = &cobra.Command{
	Use:   "balance <equation>",
	Short: "Balance a chemical equation",
	Long: `Balance a chemical equation and optionally compute the amounts produced
from initial reactant amounts.

Reactants and products are separated by one of →, ->, => or =, and
formulas on each side by +. Quote the equation so the shell does not
treat > as a redirect.

With --moles, give one amount per reactant separated by spaces or
commas. The limiting reactant, the amount of every product, and the
amount left over of every reactant are printed.

Examples:
  chemeq balance "H2 + O2 -> H2O"
  chemeq balance "KMnO4 + HCl = KCl + MnCl2 + H2O + Cl2" --format latex
  chemeq balance "H2 + O2 -> H2O" --moles "2, 1" --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBalance,
}

func init() {
	balanceCmd.Flags().StringVarP(&balanceMoles, "moles", "m", "", "initial moles of each reactant")
	balanceCmd.Flags().BoolVar(&balanceJSON, "json", false, "output the result as JSON")
	balanceCmd.Flags().StringVarP(&balanceFormat, "format", "f", "", "display format: plain, unicode or latex")
	rootCmd.AddCommand(balanceCmd)
}

func runBalance(cmd *cobra.Command, args []string) error {
	if calculatorService == nil {
		return fmt.Errorf("calculator %w", errNotConfigured)
	}

	equation := strings.Join(args, " ")
	return calculate(cmd, equation, balanceMoles, balanceJSON, balanceFormat)
}

// calculate runs one equation through the calculator and prints the result.
func calculate(cmd *cobra.Command, equation, moles string, asJSON bool, format string) error {
	opts, err := displayOptions(cmd, format)
	if err != nil {
		return err
	}

	calc, err := calculatorService.CalculateText(cmd.Context(), equation, moles)
	if err != nil {
		return userError(err)
	}

	if asJSON {
		return printJSON(cmd, render.NewCalculationView(calc))
	}
	fmt.Fprint(cmd.OutOrStdout(), render.Calculation(calc, opts))
	return nil
}
