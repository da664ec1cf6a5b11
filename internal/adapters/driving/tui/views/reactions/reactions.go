// Package reactions provides the examples and library browser for the TUI.
package reactions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/chemeq-cli/internal/adapters/driving/render"
	"github.com/custodia-labs/chemeq-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/chemeq-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/chemeq-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/chemeq-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/chemeq-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
	"github.com/custodia-labs/chemeq-cli/internal/core/ports/driving"
)

// ErrNoCatalogService indicates that no catalog service was provided.
var ErrNoCatalogService = errors.New("catalog service is required")

// Tab selects which list is shown.
type Tab int

const (
	TabExamples Tab = iota
	TabLibrary
)

// View lists built-in examples and saved reactions.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	examples  *list.ReactionList
	library   *list.ReactionList
	statusbar *status.Bar

	catalog driving.CatalogService
	ctx     context.Context

	tab    Tab
	err    error
	width  int
	height int
	ready  bool
}

// NewView creates a new reactions view.
func NewView(s *styles.Styles, km *keymap.KeyMap, catalog driving.CatalogService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:    s,
		keymap:    km,
		examples:  list.NewReactionList(s, "Examples"),
		library:   list.NewReactionList(s, "Library"),
		statusbar: status.NewBar(s, km),
		catalog:   catalog,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
	v.statusbar.SetHints(km.BrowseHelp())
	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads examples and the library.
func (v *View) Init() tea.Cmd {
	return v.load()
}

func (v *View) load() tea.Cmd {
	return func() tea.Msg {
		if v.catalog == nil {
			return messages.ReactionsLoaded{Err: ErrNoCatalogService}
		}
		examples := v.catalog.Examples()
		saved, err := v.catalog.List(v.ctx)
		if err != nil && !errors.Is(err, domain.ErrInvalidInput) {
			return messages.ReactionsLoaded{Examples: examples, Err: err}
		}
		// A disabled library lists as empty.
		return messages.ReactionsLoaded{Examples: examples, Saved: saved}
	}
}

// Update handles messages for the reactions view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ReactionsLoaded:
		v.handleLoaded(msg)
		return v, nil

	case messages.ReactionRemoved:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.statusbar.SetState(status.StateReady)
		v.statusbar.SetMessage("Removed")
		return v, v.load()

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleLoaded(msg messages.ReactionsLoaded) {
	items := make([]list.Item, 0, len(msg.Examples))
	for _, e := range msg.Examples {
		items = append(items, list.Item{Name: e.Name, Equation: e.Equation})
	}
	v.examples.SetItems(items)

	saved := make([]list.Item, 0, len(msg.Saved))
	for _, r := range msg.Saved {
		saved = append(saved, list.Item{ID: r.ID, Name: r.Name, Equation: r.Equation})
	}
	v.library.SetItems(saved)

	if msg.Err != nil {
		v.setError(msg.Err)
		return
	}
	v.err = nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case keymap.Matches(key, v.keymap.SwitchTab):
		if v.tab == TabExamples {
			v.tab = TabLibrary
		} else {
			v.tab = TabExamples
		}
		return v, nil

	case keymap.Matches(key, v.keymap.Select):
		item := v.active().SelectedItem()
		if item == nil {
			return v, nil
		}
		selected := messages.ReactionSelected{Name: item.Name, Equation: item.Equation}
		return v, func() tea.Msg { return selected }

	case keymap.Matches(key, v.keymap.Delete):
		if v.tab != TabLibrary {
			return v, nil
		}
		item := v.library.SelectedItem()
		if item == nil {
			return v, nil
		}
		return v, v.remove(item.ID)
	}

	var cmd tea.Cmd
	if v.tab == TabExamples {
		v.examples, cmd = v.examples.Update(msg)
	} else {
		v.library, cmd = v.library.Update(msg)
	}
	return v, cmd
}

func (v *View) remove(id string) tea.Cmd {
	return func() tea.Msg {
		if v.catalog == nil {
			return messages.ReactionRemoved{ID: id, Err: ErrNoCatalogService}
		}
		return messages.ReactionRemoved{ID: id, Err: v.catalog.Remove(v.ctx, id)}
	}
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(render.ErrorMessage(err))
}

func (v *View) active() *list.ReactionList {
	if v.tab == TabLibrary {
		return v.library
	}
	return v.examples
}

// View renders the reactions view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)
	sections = append(sections, v.styles.Title.Render("Reactions"), "", v.renderTabs(), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+render.ErrorMessage(v.err)), "")
	}

	sections = append(sections, v.active().View(), "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderTabs() string {
	labels := []string{
		fmt.Sprintf("Examples (%d)", v.examples.Count()),
		fmt.Sprintf("Library (%d)", v.library.Count()),
	}
	parts := make([]string, len(labels))
	for i, l := range labels {
		if Tab(i) == v.tab {
			parts[i] = v.styles.Selected.Render("[" + l + "]")
		} else {
			parts[i] = v.styles.Muted.Render(" " + l + " ")
		}
	}
	return strings.Join(parts, "  ")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.examples.SetDimensions(width, height-8)
	v.library.SetDimensions(width, height-8)
	v.statusbar.SetWidth(width)
}

// Tab returns the active tab.
func (v *View) Tab() Tab {
	return v.tab
}

// Examples returns the example items.
func (v *View) Examples() []list.Item {
	return v.examples.Items()
}

// Library returns the saved items.
func (v *View) Library() []list.Item {
	return v.library.Items()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Reset returns to the examples tab and clears errors.
func (v *View) Reset() {
	v.tab = TabExamples
	v.err = nil
	v.statusbar.Clear()
}
