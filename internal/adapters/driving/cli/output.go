package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/chemeq-cli/internal/adapters/driving/render"
	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
)

// displayOptions resolves rendering options from the settings and an
// optional --format override. Unicode output falls back to plain text
// when stdout is not a terminal.
func displayOptions(cmd *cobra.Command, formatFlag string) (render.Options, error) {
	opts := render.DefaultOptions()
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			opts = render.OptionsFrom(settings.Display)
		}
	}

	if formatFlag != "" {
		f := domain.DisplayFormat(formatFlag)
		if !f.IsValid() {
			return opts, fmt.Errorf("%w: unknown format %q (plain, unicode or latex)", domain.ErrInvalidInput, formatFlag)
		}
		opts.Format = f
		return opts, nil
	}

	if opts.Format == domain.DisplayFormatUnicode && !isTerminal(cmd.OutOrStdout()) {
		opts.Format = domain.DisplayFormatPlain
	}
	return opts, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// userError wraps err so the message printed by cobra carries the hint
// for its kind.
func userError(err error) error {
	if err == nil {
		return nil
	}
	return &hintedError{err: err}
}

type hintedError struct {
	err error
}

func (e *hintedError) Error() string { return render.ErrorMessage(e.err) }
func (e *hintedError) Unwrap() error { return e.err }
