package domain

// CoefficientVector holds one integer coefficient per species, aligned with
// Reaction.Species.
type CoefficientVector []int

// GCD returns the greatest common divisor of the absolute values of the
// nonzero entries, or 0 when every entry is zero.
func (v CoefficientVector) GCD() int {
	g := 0
	for _, c := range v {
		if c != 0 {
			g = GCD(g, c)
		}
	}
	return g
}

// AllPositive reports whether every entry is >= 1.
func (v CoefficientVector) AllPositive() bool {
	if len(v) == 0 {
		return false
	}
	for _, c := range v {
		if c < 1 {
			return false
		}
	}
	return true
}

// GCD returns the greatest common divisor of |a| and |b|.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
