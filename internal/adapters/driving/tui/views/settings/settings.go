// Package settings provides the settings configuration view for the TUI.
package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/chemeq-cli/internal/adapters/driving/render"
	"github.com/custodia-labs/chemeq-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/chemeq-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
	"github.com/custodia-labs/chemeq-cli/internal/core/ports/driving"
	"github.com/custodia-labs/chemeq-cli/internal/core/services"
)

// Section tracks which settings section is active.
type Section int

const (
	SectionOverview Section = iota
	SectionFormat
	SectionBackend
	SectionEdit
)

// Key constants for key handling.
const (
	keyDown  = "down"
	keyEnter = "enter"
)

type rowKind int

const (
	kindFormat rowKind = iota
	kindBackend
	kindNumber
)

// row is one editable line of the overview.
type row struct {
	label string
	key   string
	kind  rowKind
	value func(*domain.AppSettings) string
}

var rows = []row{
	{"Display format", services.KeyDisplayFormat, kindFormat, func(s *domain.AppSettings) string {
		return s.Display.Format.Description()
	}},
	{"Precision", services.KeyPrecision, kindNumber, func(s *domain.AppSettings) string {
		return strconv.Itoa(s.Display.Precision)
	}},
	{"Storage backend", services.KeyStorageBackend, kindBackend, func(s *domain.AppSettings) string {
		return s.Storage.Backend.Description()
	}},
	{"Pivot tolerance", services.KeyPivotTolerance, kindNumber, func(s *domain.AppSettings) string {
		return strconv.FormatFloat(s.Solver.PivotTolerance, 'g', -1, 64)
	}},
	{"Tolerance", services.KeyTolerance, kindNumber, func(s *domain.AppSettings) string {
		return strconv.FormatFloat(s.Solver.Tolerance, 'g', -1, 64)
	}},
	{"Max denominator", services.KeyMaxDenominator, kindNumber, func(s *domain.AppSettings) string {
		return strconv.Itoa(s.Solver.MaxDenominator)
	}},
	{"MCP rate limit", services.KeyMCPRateLimit, kindNumber, func(s *domain.AppSettings) string {
		return strconv.FormatFloat(s.MCP.RateLimit, 'g', -1, 64)
	}},
	{"MCP burst", services.KeyMCPBurst, kindNumber, func(s *domain.AppSettings) string {
		return strconv.Itoa(s.MCP.Burst)
	}},
}

// View is the settings configuration view.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	settings *domain.AppSettings
	err      error

	section  Section
	selected int // selection within current section
	editing  int // row being edited in SectionEdit

	valueInput textinput.Model

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	valueInput := textinput.New()
	valueInput.CharLimit = 64

	return &View{
		styles:          s,
		settingsService: settingsService,
		section:         SectionOverview,
		valueInput:      valueInput,
	}
}

// Init initialises the view and loads settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

func (v *View) loadSettings() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsLoaded{Err: fmt.Errorf("settings service not available")}
		}
		settings, err := v.settingsService.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.settings = msg.Settings
			v.err = nil
		}
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.backToOverview()
		return v, v.loadSettings()

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.String() == "esc" {
		if v.section == SectionOverview {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
		v.backToOverview()
		return v, nil
	}

	switch v.section {
	case SectionOverview:
		return v.handleOverviewKeys(msg)
	case SectionFormat:
		return v.handleChoiceKeys(msg, len(domain.AllDisplayFormats()), v.setFormat)
	case SectionBackend:
		return v.handleChoiceKeys(msg, len(domain.AllStorageBackends()), v.setBackend)
	case SectionEdit:
		return v.handleEditKeys(msg)
	}
	return v, nil
}

func (v *View) handleOverviewKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case keyDown, "j":
		if v.selected < len(rows)-1 {
			v.selected++
		}
	case keyEnter:
		if v.settings == nil {
			return v, nil
		}
		r := rows[v.selected]
		v.editing = v.selected
		switch r.kind {
		case kindFormat:
			v.section = SectionFormat
			v.selected = v.formatIndex()
		case kindBackend:
			v.section = SectionBackend
			v.selected = v.backendIndex()
		case kindNumber:
			v.section = SectionEdit
			v.valueInput.SetValue(r.value(v.settings))
			return v, v.valueInput.Focus()
		}
	}
	return v, nil
}

func (v *View) handleChoiceKeys(msg tea.KeyMsg, count int, choose func(int) tea.Cmd) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case keyDown, "j":
		if v.selected < count-1 {
			v.selected++
		}
	case keyEnter:
		if v.selected >= 0 && v.selected < count {
			return v, choose(v.selected)
		}
	}
	return v, nil
}

func (v *View) handleEditKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.String() == keyEnter {
		return v, v.setValue(rows[v.editing].key, v.valueInput.Value())
	}
	var cmd tea.Cmd
	v.valueInput, cmd = v.valueInput.Update(msg)
	return v, cmd
}

func (v *View) backToOverview() {
	if v.section != SectionOverview {
		v.selected = v.editing
	}
	v.section = SectionOverview
	v.valueInput.Blur()
	v.valueInput.SetValue("")
}

// Commands to update settings.

func (v *View) setFormat(i int) tea.Cmd {
	format := domain.AllDisplayFormats()[i]
	return v.save(func(s driving.SettingsService) error {
		return s.SetDisplayFormat(format)
	})
}

func (v *View) setBackend(i int) tea.Cmd {
	backend := domain.AllStorageBackends()[i]
	path := ""
	if v.settings != nil {
		path = v.settings.Storage.Path
	}
	return v.save(func(s driving.SettingsService) error {
		return s.SetStorageBackend(backend, path)
	})
}

func (v *View) setValue(key, value string) tea.Cmd {
	return v.save(func(s driving.SettingsService) error {
		return s.Set(key, value)
	})
}

func (v *View) save(apply func(driving.SettingsService) error) tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsSaved{Err: fmt.Errorf("settings service not available")}
		}
		return messages.SettingsSaved{Err: apply(v.settingsService)}
	}
}

func (v *View) formatIndex() int {
	for i, f := range domain.AllDisplayFormats() {
		if v.settings != nil && f == v.settings.Display.Format {
			return i
		}
	}
	return 0
}

func (v *View) backendIndex() int {
	for i, b := range domain.AllStorageBackends() {
		if v.settings != nil && b == v.settings.Storage.Backend {
			return i
		}
	}
	return 0
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + render.ErrorMessage(v.err)))
		b.WriteString("\n\n")
	}

	if v.settings == nil {
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
		return b.String()
	}

	switch v.section {
	case SectionOverview:
		b.WriteString(v.renderOverview())
	case SectionFormat:
		b.WriteString(v.renderFormatSelect())
	case SectionBackend:
		b.WriteString(v.renderBackendSelect())
	case SectionEdit:
		b.WriteString(v.renderEdit())
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())
	return b.String()
}

func (v *View) renderOverview() string {
	var b strings.Builder

	for i, r := range rows {
		v.writeLine(&b, i == v.selected, fmt.Sprintf("%s: %s", r.label, r.value(v.settings)))
	}

	b.WriteString("\n")
	if v.settingsService != nil {
		if err := v.settingsService.Validate(); err != nil {
			b.WriteString(v.styles.Warning.Render(fmt.Sprintf("Warning: %s", err.Error())))
		} else {
			b.WriteString(v.styles.Success.Render("Configuration is valid"))
		}
	}
	b.WriteString("\n")
	return b.String()
}

func (v *View) renderFormatSelect() string {
	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("Select Display Format"))
	b.WriteString("\n\n")

	for i, f := range domain.AllDisplayFormats() {
		current := ""
		if f == v.settings.Display.Format {
			current = v.styles.Success.Render(" (current)")
		}
		v.writeLine(&b, i == v.selected, f.Description()+current)
	}
	return b.String()
}

func (v *View) renderBackendSelect() string {
	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("Select Storage Backend"))
	b.WriteString("\n\n")

	for i, be := range domain.AllStorageBackends() {
		current := ""
		if be == v.settings.Storage.Backend {
			current = v.styles.Success.Render(" (current)")
		}
		v.writeLine(&b, i == v.selected, be.Description()+current)
	}
	b.WriteString(v.styles.Muted.Render("    Takes effect on next start"))
	b.WriteString("\n")
	return b.String()
}

func (v *View) renderEdit() string {
	var b strings.Builder
	r := rows[v.editing]
	b.WriteString(v.styles.Subtitle.Render("Edit " + r.label))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render(r.key))
	b.WriteString("\n")
	b.WriteString(v.valueInput.View())
	b.WriteString("\n")
	return b.String()
}

func (v *View) writeLine(b *strings.Builder, selected bool, text string) {
	if selected {
		b.WriteString(v.styles.Selected.Render("> " + text))
	} else {
		b.WriteString(v.styles.Normal.Render("  " + text))
	}
	b.WriteString("\n")
}

func (v *View) renderHelp() string {
	switch v.section {
	case SectionOverview:
		return v.styles.Help.Render("[j/k] navigate  [enter] edit  [esc] back")
	case SectionFormat, SectionBackend:
		return v.styles.Help.Render("[j/k] navigate  [enter] select  [esc] back")
	case SectionEdit:
		return v.styles.Help.Render("[enter] save  [esc] cancel")
	default:
		return ""
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Section returns the active section.
func (v *View) Section() Section {
	return v.section
}

// Settings returns the loaded settings.
func (v *View) Settings() *domain.AppSettings {
	return v.settings
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Reset resets the view to initial state.
func (v *View) Reset() {
	v.section = SectionOverview
	v.selected = 0
	v.editing = 0
	v.err = nil
	v.valueInput.SetValue("")
	v.valueInput.Blur()
}
