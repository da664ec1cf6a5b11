// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The balancing pipeline is MatrixBuilder -> NullSpaceSolver ->
// RationalReconstructor, composed by Balance; Compute adds limiting-reagent
// stoichiometry. Both are pure functions; the service types wrap them with
// settings, parsing and persistence.
package services
