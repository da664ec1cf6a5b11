package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/chemeq-cli/internal/adapters/driving/render"
	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
)

var (
	worksheetWatch  bool
	worksheetJSON   bool
	worksheetFormat string
)

var worksheetCmd = &cobra.Command{
	Use:   "worksheet",
	Short: "Run batches of reactions from a file",
	Long: `Worksheets are HCL files listing named reactions:

  reaction "water" {
    equation = "H2 + O2 -> H2O"
    moles    = [2, 1]
  }

Each reaction is balanced independently; one failing entry does not stop
the others.`,
}

var worksheetRunCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Balance every reaction in a worksheet",
	Long: `Balance every reaction in a worksheet.

With --watch, the worksheet is run again every time the file is saved
until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWorksheet,
}

func init() {
	worksheetRunCmd.Flags().BoolVarP(&worksheetWatch, "watch", "w", false, "re-run when the file changes")
	worksheetRunCmd.Flags().BoolVar(&worksheetJSON, "json", false, "output results as JSON")
	worksheetRunCmd.Flags().StringVarP(&worksheetFormat, "format", "f", "", "display format: plain, unicode or latex")
	worksheetCmd.AddCommand(worksheetRunCmd)
	rootCmd.AddCommand(worksheetCmd)
}

// worksheetEntryView is the JSON shape of one worksheet result.
type worksheetEntryView struct {
	Name     string                  `json:"name"`
	Equation string                  `json:"equation"`
	Result   *render.CalculationView `json:"result,omitempty"`
	Error    *render.ErrorView       `json:"error,omitempty"`
}

func runWorksheet(cmd *cobra.Command, args []string) error {
	if worksheetService == nil {
		return fmt.Errorf("worksheet %w", errNotConfigured)
	}
	opts, err := displayOptions(cmd, worksheetFormat)
	if err != nil {
		return err
	}
	path := args[0]

	if !worksheetWatch {
		results, err := worksheetService.Run(cmd.Context(), path)
		if err != nil {
			return userError(err)
		}
		return printWorksheet(cmd, results, opts)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Watching %s (Ctrl+C to stop)\n", path)
	return worksheetService.Watch(cmd.Context(), path, func(results []domain.WorksheetResult, err error) {
		fmt.Fprintf(out, "\n--- %s ---\n", time.Now().Format("15:04:05"))
		if err != nil {
			fmt.Fprintln(out, "Error:", render.ErrorMessage(err))
			return
		}
		if perr := printWorksheet(cmd, results, opts); perr != nil {
			fmt.Fprintln(out, "Error:", perr)
		}
	})
}

func printWorksheet(cmd *cobra.Command, results []domain.WorksheetResult, opts render.Options) error {
	if worksheetJSON {
		views := make([]worksheetEntryView, len(results))
		for i, r := range results {
			views[i] = worksheetEntryView{Name: r.Entry.Name, Equation: r.Entry.Equation}
			if r.Err != nil {
				ev := render.NewErrorView(r.Err)
				views[i].Error = &ev
			} else {
				cv := render.NewCalculationView(r.Calculation)
				views[i].Result = &cv
			}
		}
		return printJSON(cmd, views)
	}

	out := cmd.OutOrStdout()
	if len(results) == 0 {
		fmt.Fprintln(out, "No reactions in worksheet.")
		return nil
	}
	failed := 0
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(out)
		}
		printWorksheetEntry(out, r, opts)
		if r.Err != nil {
			failed++
		}
	}
	fmt.Fprintf(out, "\n%d reactions, %d failed\n", len(results), failed)
	return nil
}

func printWorksheetEntry(out io.Writer, r domain.WorksheetResult, opts render.Options) {
	fmt.Fprintf(out, "[%s]\n", r.Entry.Name)
	if r.Err != nil {
		fmt.Fprintf(out, "  %s\n  Error: %s\n", r.Entry.Equation, render.ErrorMessage(r.Err))
		return
	}
	fmt.Fprint(out, render.Calculation(r.Calculation, opts))
}
