// Package render turns balanced reactions and stoichiometry results into
// text for the CLI, TUI and MCP adapters.
//
// Three display formats are supported:
//
//	plain    2H2 + O2 -> 2H2O
//	unicode  2H₂ + O₂ → 2H₂O
//	latex    2H_{2} + O_{2} \rightarrow 2H_{2}O
//
// Coefficients of 1 are omitted. Amounts that are not finite (a zero
// initial amount yields a NaN conversion rate) print as "undefined" or "∞"
// and become null in JSON views.
package render
