// Package balance provides the equation balancing view for the TUI.
package balance

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/chemeq-cli/internal/adapters/driving/render"
	"github.com/custodia-labs/chemeq-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/chemeq-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/chemeq-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/chemeq-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/chemeq-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
	"github.com/custodia-labs/chemeq-cli/internal/core/ports/driving"
)

// Field indices.
const (
	fieldEquation = iota
	fieldMoles
)

// View is the balance view: an equation input, an optional moles input,
// and the rendered result.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	equation  *input.Field
	moles     *input.Field
	statusbar *status.Bar

	calculator driving.CalculatorService
	catalog    driving.CatalogService
	settings   driving.SettingsService
	ctx        context.Context

	focused int
	opts    render.Options

	// result is the last successful calculation; cleared on error.
	result         *domain.Calculation
	resultEquation string
	err            error

	width  int
	height int
	ready  bool
}

// NewView creates a new balance view. Catalog and settings may be nil.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	calculator driving.CalculatorService,
	catalog driving.CatalogService,
	settings driving.SettingsService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:     s,
		keymap:     km,
		equation:   input.NewField(s, "Equation", "Fe + O2 = Fe2O3"),
		moles:      input.NewField(s, "Moles", "optional, e.g. 4 3"),
		statusbar:  status.NewBar(s, km),
		calculator: calculator,
		catalog:    catalog,
		settings:   settings,
		ctx:        context.Background(),
		opts:       render.DefaultOptions(),
		width:      80,
		height:     24,
	}
	v.statusbar.SetHints(km.BalanceHelp())
	v.equation.Focus()
	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init refreshes display options and starts the cursor blinking.
func (v *View) Init() tea.Cmd {
	v.loadDisplayOptions()
	return v.equation.Init()
}

// loadDisplayOptions reads display settings. LaTeX is unreadable in a
// terminal so it is shown as unicode.
func (v *View) loadDisplayOptions() {
	v.opts = render.DefaultOptions()
	if v.settings != nil {
		if s, err := v.settings.Get(); err == nil && s != nil {
			v.opts = render.OptionsFrom(s.Display)
		}
	}
	if v.opts.Format == domain.DisplayFormatLaTeX {
		v.opts.Format = domain.DisplayFormatUnicode
	}
}

// Update handles messages for the balance view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.CalculationCompleted:
		v.handleCalculationCompleted(msg)
		return v, nil

	case messages.ReactionSaved:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.statusbar.SetState(status.StateBalanced)
		v.statusbar.SetMessage("Saved as " + msg.Reaction.Name)
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	if v.focused == fieldEquation {
		v.equation, cmd = v.equation.Update(msg)
	} else {
		v.moles, cmd = v.moles.Update(msg)
	}
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case keymap.Matches(msg.String(), v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case keymap.Matches(msg.String(), v.keymap.NextField):
		v.toggleFocus()
		return v, nil

	case keymap.Matches(msg.String(), v.keymap.Save):
		return v, v.save()

	case keymap.Matches(msg.String(), v.keymap.Balance):
		equation := strings.TrimSpace(v.equation.Value())
		if equation == "" {
			return v, nil
		}
		v.statusbar.SetState(status.StateBalancing)
		v.statusbar.SetMessage("")
		return v, v.calculate(equation, v.moles.Value())
	}

	var cmd tea.Cmd
	if v.focused == fieldEquation {
		v.equation, cmd = v.equation.Update(msg)
	} else {
		v.moles, cmd = v.moles.Update(msg)
	}
	return v, cmd
}

func (v *View) toggleFocus() {
	if v.focused == fieldEquation {
		v.focused = fieldMoles
		v.equation.Blur()
		v.moles.Focus()
		return
	}
	v.focused = fieldEquation
	v.moles.Blur()
	v.equation.Focus()
}

// calculate runs the request off the update loop.
func (v *View) calculate(equation, moles string) tea.Cmd {
	return func() tea.Msg {
		if v.calculator == nil {
			return messages.CalculationCompleted{Equation: equation, Err: ErrNoCalculatorService}
		}
		calc, err := v.calculator.CalculateText(v.ctx, equation, moles)
		return messages.CalculationCompleted{Equation: equation, Calculation: calc, Err: err}
	}
}

// save stores the last balanced equation, named by its plain rendering.
func (v *View) save() tea.Cmd {
	if v.result == nil {
		v.setError(ErrNothingToSave)
		return nil
	}
	if v.catalog == nil {
		v.setError(ErrNoCatalogService)
		return nil
	}

	name := render.Equation(v.result.Balanced, domain.DisplayFormatPlain)
	equation := v.resultEquation
	return func() tea.Msg {
		saved, err := v.catalog.Save(v.ctx, name, equation, "")
		return messages.ReactionSaved{Reaction: saved, Err: err}
	}
}

func (v *View) handleCalculationCompleted(msg messages.CalculationCompleted) {
	if msg.Err != nil {
		v.result = nil
		v.resultEquation = ""
		v.setError(msg.Err)
		return
	}

	v.err = nil
	v.result = msg.Calculation
	v.resultEquation = msg.Equation
	v.statusbar.SetState(status.StateBalanced)
	v.statusbar.SetMessage("")
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(render.ErrorMessage(err))
}

// Load replaces the inputs with an equation and balances it.
func (v *View) Load(equation string) tea.Cmd {
	v.equation.SetValue(equation)
	v.moles.SetValue("")
	v.result = nil
	v.resultEquation = ""
	v.err = nil
	if v.focused != fieldEquation {
		v.toggleFocus()
	}
	v.statusbar.SetState(status.StateBalancing)
	return v.calculate(equation, "")
}

// View renders the balance view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)
	sections = append(sections,
		v.styles.Title.Render("Balance"), "",
		v.equation.View(),
		v.moles.View(), "",
	)

	switch {
	case v.err != nil:
		sections = append(sections, v.styles.Error.Render(render.ErrorMessage(v.err)), "")
	case v.result != nil:
		body := strings.TrimRight(render.Calculation(v.result, v.opts), "\n")
		sections = append(sections, v.styles.Result.Render(body), "")
	default:
		sections = append(sections,
			v.styles.Muted.Render("Write species with + and separate sides with = or ->"), "")
	}

	sections = append(sections, v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.equation.SetWidth(width)
	v.moles.SetWidth(width)
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Equation returns the equation input value.
func (v *View) Equation() string {
	return v.equation.Value()
}

// Moles returns the moles input value.
func (v *View) Moles() string {
	return v.moles.Value()
}

// MolesFocused reports whether the moles input has focus.
func (v *View) MolesFocused() bool {
	return v.focused == fieldMoles
}

// Result returns the last successful calculation.
func (v *View) Result() *domain.Calculation {
	return v.result
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Status returns the status bar state.
func (v *View) Status() status.State {
	return v.statusbar.State()
}

// Reset clears inputs and results and focuses the equation.
func (v *View) Reset() {
	v.equation.Reset()
	v.moles.Reset()
	v.result = nil
	v.resultEquation = ""
	v.err = nil
	if v.focused != fieldEquation {
		v.toggleFocus()
	}
	v.statusbar.Clear()
}
