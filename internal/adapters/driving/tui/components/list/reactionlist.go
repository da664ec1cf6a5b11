// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/chemeq-cli/internal/adapters/driving/tui/styles"
)

// Item is one row of the list.
type Item struct {
	// ID identifies a saved reaction. Empty for built-in examples.
	ID string

	// Name is the label shown on the first line.
	Name string

	// Equation is shown muted below the name.
	Equation string
}

// ReactionList displays reactions in a navigable list.
type ReactionList struct {
	title    string
	items    []Item
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewReactionList creates a new reaction list component.
func NewReactionList(s *styles.Styles, title string) *ReactionList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ReactionList{
		title:  title,
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the list.
func (r *ReactionList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ReactionList) Update(msg tea.Msg) (*ReactionList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the list.
func (r *ReactionList) View() string {
	if len(r.items) == 0 {
		return r.styles.Muted.Render("No reactions")
	}

	lines := make([]string, 0, len(r.items)+2)
	lines = append(lines, r.styles.Subtitle.Render(fmt.Sprintf("%s (%d)", r.title, len(r.items))), "")

	// Each item takes two lines.
	visibleCount := (r.height - 4) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.items) {
		end = len(r.items)
	}

	for i := start; i < end; i++ {
		lines = append(lines, r.renderItem(i, &r.items[i]))
	}

	return strings.Join(lines, "\n")
}

func (r *ReactionList) renderItem(index int, item *Item) string {
	indicator := "  "
	style := r.styles.Normal
	if index == r.selected {
		indicator = "> "
		style = r.styles.Selected
	}

	name := truncate(item.Name, r.width-4)
	equation := truncate(item.Equation, r.width-6)

	return style.Render(indicator+name) + "\n" + r.styles.Equation.Render("    "+equation)
}

func truncate(s string, limit int) string {
	if limit < 10 {
		limit = 10
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}

// SetItems replaces the list contents and resets the selection.
func (r *ReactionList) SetItems(items []Item) {
	r.items = items
	r.selected = 0
}

// Items returns the current items.
func (r *ReactionList) Items() []Item {
	return r.items
}

// Selected returns the index of the selected item.
func (r *ReactionList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *ReactionList) SetSelected(index int) {
	if index >= 0 && index < len(r.items) {
		r.selected = index
	}
}

// SelectedItem returns the selected item, or nil if the list is empty.
func (r *ReactionList) SelectedItem() *Item {
	if r.selected < 0 || r.selected >= len(r.items) {
		return nil
	}
	return &r.items[r.selected]
}

// MoveUp moves selection up.
func (r *ReactionList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ReactionList) MoveDown() {
	if r.selected < len(r.items)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *ReactionList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of items.
func (r *ReactionList) Count() int {
	return len(r.items)
}
