package balance

import "errors"

// Error definitions for the balance view.
var (
	// ErrNoCalculatorService indicates that no calculator service was provided.
	ErrNoCalculatorService = errors.New("calculator service is required")

	// ErrNoCatalogService indicates that the library is not available.
	ErrNoCatalogService = errors.New("library is not available")

	// ErrNothingToSave indicates save was requested before a successful balance.
	ErrNothingToSave = errors.New("balance an equation before saving")
)
