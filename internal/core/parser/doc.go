// Package parser turns user text into domain values: chemical formulas,
// reactions and lists of initial amounts.
//
// Formulas are read by a small recursive-descent parser over the grammar
//
//	segment       := token*
//	token         := element_token | group_token
//	element_token := UPPER LOWER? DIGIT*
//	group_token   := '(' segment ')' DIGIT*
//
// Any character outside the grammar is rejected rather than skipped.
package parser
