package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	libraryNotes  string
	libraryJSON   bool
	libraryMoles  string
	libraryFormat string
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage saved reactions",
	Long: `Save reactions you use often and balance them by name.

The library is stored in ~/.chemeq/library.db unless storage.backend is
set to memory.`,
}

var libraryAddCmd = &cobra.Command{
	Use:   "add <name> <equation>",
	Short: "Save a reaction",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runLibraryAdd,
}

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved reactions",
	Args:  cobra.NoArgs,
	RunE:  runLibraryList,
}

var libraryShowCmd = &cobra.Command{
	Use:   "show <id|name>",
	Short: "Show a saved reaction",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibraryShow,
}

var libraryRemoveCmd = &cobra.Command{
	Use:     "remove <id|name>",
	Aliases: []string{"rm"},
	Short:   "Remove a saved reaction",
	Args:    cobra.ExactArgs(1),
	RunE:    runLibraryRemove,
}

var libraryRunCmd = &cobra.Command{
	Use:   "run <id|name>",
	Short: "Balance a saved reaction",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibraryRun,
}

func init() {
	libraryAddCmd.Flags().StringVar(&libraryNotes, "notes", "", "free text notes")
	libraryListCmd.Flags().BoolVar(&libraryJSON, "json", false, "output as JSON")
	libraryRunCmd.Flags().StringVarP(&libraryMoles, "moles", "m", "", "initial moles of each reactant")
	libraryRunCmd.Flags().StringVarP(&libraryFormat, "format", "f", "", "display format: plain, unicode or latex")

	libraryCmd.AddCommand(libraryAddCmd)
	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(libraryShowCmd)
	libraryCmd.AddCommand(libraryRemoveCmd)
	libraryCmd.AddCommand(libraryRunCmd)
	rootCmd.AddCommand(libraryCmd)
}

func runLibraryAdd(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return fmt.Errorf("catalog %w", errNotConfigured)
	}

	r, err := catalogService.Save(cmd.Context(), args[0], strings.Join(args[1:], " "), libraryNotes)
	if err != nil {
		return userError(err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %q (%s)\n", r.Name, r.ID)
	return nil
}

func runLibraryList(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return fmt.Errorf("catalog %w", errNotConfigured)
	}

	reactions, err := catalogService.List(cmd.Context())
	if err != nil {
		return userError(err)
	}
	if libraryJSON {
		return printJSON(cmd, reactions)
	}

	out := cmd.OutOrStdout()
	if len(reactions) == 0 {
		fmt.Fprintln(out, "No saved reactions. Add one with 'chemeq library add <name> <equation>'.")
		return nil
	}
	for _, r := range reactions {
		fmt.Fprintf(out, "  %-24s %s\n", r.Name, r.Equation)
	}
	return nil
}

func runLibraryShow(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return fmt.Errorf("catalog %w", errNotConfigured)
	}

	r, err := catalogService.Get(cmd.Context(), args[0])
	if err != nil {
		return userError(err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Name:     %s\n", r.Name)
	fmt.Fprintf(out, "ID:       %s\n", r.ID)
	fmt.Fprintf(out, "Equation: %s\n", r.Equation)
	if r.Notes != "" {
		fmt.Fprintf(out, "Notes:    %s\n", r.Notes)
	}
	fmt.Fprintf(out, "Saved:    %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04"))
	return nil
}

func runLibraryRemove(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return fmt.Errorf("catalog %w", errNotConfigured)
	}

	if err := catalogService.Remove(cmd.Context(), args[0]); err != nil {
		return userError(err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %q\n", args[0])
	return nil
}

func runLibraryRun(cmd *cobra.Command, args []string) error {
	if catalogService == nil || calculatorService == nil {
		return fmt.Errorf("library %w", errNotConfigured)
	}

	r, err := catalogService.Get(cmd.Context(), args[0])
	if err != nil {
		return userError(err)
	}
	return calculate(cmd, r.Equation, libraryMoles, false, libraryFormat)
}
