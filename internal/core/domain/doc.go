// Package domain defines the core business entities for chemeq.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - MoleculeFormula: A formula string with its element counts
//   - Reaction: Ordered reactants and products
//   - CoefficientVector: The balanced integer coefficients
//   - QuantitativeResult: Limiting-reagent stoichiometry output
//   - SavedReaction: A reaction kept in the user's library
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
