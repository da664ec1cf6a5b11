package domain

import "time"

// SavedReaction is a reaction kept in the user's library.
type SavedReaction struct {
	// ID is a unique identifier.
	ID string

	// Name is a unique, human-friendly label.
	Name string

	// Equation is the reaction text as entered.
	Equation string

	// Notes is free text.
	Notes string

	// CreatedAt is when the reaction was first saved.
	CreatedAt time.Time

	// UpdatedAt is when the reaction was last changed.
	UpdatedAt time.Time
}

// ExampleReaction is a built-in reaction shown in the examples list.
type ExampleReaction struct {
	Name     string
	Equation string
}
