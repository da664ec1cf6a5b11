// Package linalg holds the numeric half of balancing: a dense float64
// matrix, a null space solver based on Gauss-Jordan elimination with
// partial pivoting, and rational reconstruction of a float basis vector
// into minimal integers.
//
// Everything here is pure and safe for concurrent use on distinct values.
package linalg
