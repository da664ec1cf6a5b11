package domain

import (
	"sort"
	"strconv"
	"strings"
)

// ElementSymbol identifies an element in a formula, such as "Fe" or "D".
// Symbols are opaque keys compared by exact string match.
type ElementSymbol string

// FormulaCounts maps each element to its atom count. Counts are always >= 1.
type FormulaCounts map[ElementSymbol]int

// Add merges n atoms of e into the counts. Non-positive n is ignored.
func (c FormulaCounts) Add(e ElementSymbol, n int) {
	if n <= 0 {
		return
	}
	c[e] += n
}

// Merge adds every count of other, multiplied by factor.
func (c FormulaCounts) Merge(other FormulaCounts, factor int) {
	for e, n := range other {
		c.Add(e, n*factor)
	}
}

// Count returns the number of atoms of e, or 0 when absent.
func (c FormulaCounts) Count(e ElementSymbol) int {
	return c[e]
}

// Elements returns the element symbols in sorted order.
func (c FormulaCounts) Elements() []ElementSymbol {
	out := make([]ElementSymbol, 0, len(c))
	for e := range c {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Equal reports whether both maps hold the same elements and counts.
func (c FormulaCounts) Equal(other FormulaCounts) bool {
	if len(c) != len(other) {
		return false
	}
	for e, n := range c {
		if other[e] != n {
			return false
		}
	}
	return true
}

// String renders the counts in sorted element order, e.g. "Ca3O8P2".
func (c FormulaCounts) String() string {
	var sb strings.Builder
	for _, e := range c.Elements() {
		sb.WriteString(string(e))
		if n := c[e]; n != 1 {
			sb.WriteString(strconv.Itoa(n))
		}
	}
	return sb.String()
}

// MoleculeFormula is a formula as written by the user together with its
// parsed element counts.
type MoleculeFormula struct {
	// Name is the formula text, trimmed, e.g. "Ca3(PO4)2".
	Name string

	// Counts holds the atoms per element.
	Counts FormulaCounts
}
