// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewBalance is the equation input and result view.
	ViewBalance
	// ViewReactions browses built-in examples and the library.
	ViewReactions
	// ViewHelp is the help/keybindings view.
	ViewHelp
	// ViewSettings is the settings configuration view.
	ViewSettings
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewBalance:
		return "balance"
	case ViewReactions:
		return "reactions"
	case ViewHelp:
		return "help"
	case ViewSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// CalculationCompleted carries a balance result back to the model.
type CalculationCompleted struct {
	Equation    string
	Calculation *domain.Calculation
	Err         error
}

// ReactionsLoaded carries the examples and saved reactions.
type ReactionsLoaded struct {
	Examples []domain.ExampleReaction
	Saved    []domain.SavedReaction
	Err      error
}

// ReactionSelected asks the balance view to load an equation.
type ReactionSelected struct {
	Name     string
	Equation string
}

// ReactionSaved signals a reaction was stored in the library.
type ReactionSaved struct {
	Reaction *domain.SavedReaction
	Err      error
}

// ReactionRemoved signals a library entry was deleted.
type ReactionRemoved struct {
	ID  string
	Err error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsSaved signals settings were saved.
type SettingsSaved struct {
	Err error
}
