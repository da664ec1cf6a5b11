package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/chemeq-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/chemeq-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/chemeq-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/chemeq-cli/internal/adapters/driving/tui/views/balance"
	"github.com/custodia-labs/chemeq-cli/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/chemeq-cli/internal/adapters/driving/tui/views/reactions"
	"github.com/custodia-labs/chemeq-cli/internal/adapters/driving/tui/views/settings"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	menuView      *menu.View
	balanceView   *balance.View
	reactionsView *reactions.View
	settingsView  *settings.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		keymap:        km,
		menuView:      menu.NewView(s),
		balanceView:   balance.NewView(s, km, ports.Calculator, ports.Catalog, ports.Settings),
		reactionsView: reactions.NewView(s, km, ports.Catalog),
		settingsView:  settings.NewView(s, ports.Settings),
		currentView:   messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.balanceView.WithContext(ctx)
	a.reactionsView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("chemeq - Chemical Equation Balancer"),
	)
}

// Update implements tea.Model.
//
//nolint:gocognit,gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
		case messages.ViewBalance:
			a.balanceView, cmd = a.balanceView.Update(msg)
			a.err = a.balanceView.Err()
		case messages.ViewReactions:
			a.reactionsView, cmd = a.reactionsView.Update(msg)
		case messages.ViewSettings:
			a.settingsView, cmd = a.settingsView.Update(msg)
		case messages.ViewHelp:
			if msg.Type == tea.KeyEsc || msg.String() == "?" {
				a.currentView = messages.ViewMenu
			}
		}
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewBalance:
			return a, a.balanceView.Init()
		case messages.ViewReactions:
			a.reactionsView.Reset()
			return a, a.reactionsView.Init()
		case messages.ViewSettings:
			a.settingsView.Reset()
			return a, a.settingsView.Init()
		case messages.ViewMenu, messages.ViewHelp:
			// No initialisation needed
		}
		return a, nil

	case messages.ReactionSelected:
		// Picking a reaction opens it in the balance view.
		a.currentView = messages.ViewBalance
		a.balanceView.Init()
		return a, a.balanceView.Load(msg.Equation)

	case messages.CalculationCompleted, messages.ReactionSaved:
		a.balanceView, cmd = a.balanceView.Update(msg)
		a.err = a.balanceView.Err()
		return a, cmd

	case messages.ReactionsLoaded, messages.ReactionRemoved:
		a.reactionsView, cmd = a.reactionsView.Update(msg)
		return a, cmd

	case messages.SettingsLoaded, messages.SettingsSaved:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		switch a.currentView {
		case messages.ViewBalance:
			a.balanceView, cmd = a.balanceView.Update(msg)
		case messages.ViewReactions:
			a.reactionsView, cmd = a.reactionsView.Update(msg)
		case messages.ViewMenu, messages.ViewHelp, messages.ViewSettings:
			// Other views don't handle error messages
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages, such as cursor blinks, to the active view.
	switch a.currentView {
	case messages.ViewBalance:
		a.balanceView, cmd = a.balanceView.Update(msg)
	case messages.ViewReactions:
		a.reactionsView, cmd = a.reactionsView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewMenu, messages.ViewHelp:
	}
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewBalance:
		return a.balanceView.View()
	case messages.ViewReactions:
		return a.reactionsView.View()
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view from the keymap.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")

	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-10s %s\n", h.Key, h.Desc))
		}
		b.WriteString("\n")
	}

	b.WriteString(a.styles.Muted.Render(`Equations: species joined by "+", sides split by "=" or "->".
Formulas: element symbols with counts, groups in parentheses, e.g. Ca3(PO4)2.
Moles: one amount per reactant separated by spaces, e.g. "4 1".`))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Help.Render("[esc] back to menu"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// BalanceView returns the balance view.
func (a *App) BalanceView() *balance.View {
	return a.balanceView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.balanceView.SetDimensions(width, height)
	a.reactionsView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
