package linalg

import (
	"math"

	"github.com/custodia-labs/chemeq-cli/internal/logger"
)

// DefaultPivotTolerance is the relative threshold under which a pivot
// candidate is treated as zero.
const DefaultPivotTolerance = 1e-9

// Elimination is the reduced row-echelon form of a matrix together with
// the columns that received a pivot.
type Elimination struct {
	// RREF is the reduced matrix. Rows past Rank are zero.
	RREF *Matrix

	// PivotCols lists the pivot column of each of the first Rank rows.
	PivotCols []int

	// Threshold is the absolute zero threshold that was applied.
	Threshold float64
}

// Rank returns the number of pivots.
func (e *Elimination) Rank() int { return len(e.PivotCols) }

// FreeCols returns the non-pivot columns in ascending order.
func (e *Elimination) FreeCols() []int {
	pivot := make(map[int]bool, len(e.PivotCols))
	for _, c := range e.PivotCols {
		pivot[c] = true
	}
	var free []int
	for c := 0; c < e.RREF.Cols(); c++ {
		if !pivot[c] {
			free = append(free, c)
		}
	}
	return free
}

// Reduce runs Gauss-Jordan elimination with partial pivoting on a copy of
// m. In each column the remaining row with the largest absolute entry is
// chosen as pivot; candidates at or below
// pivotTolerance * max(1, max|m_ij|) count as zero. A non-positive
// tolerance selects DefaultPivotTolerance.
func Reduce(m *Matrix, pivotTolerance float64) *Elimination {
	if pivotTolerance <= 0 {
		pivotTolerance = DefaultPivotTolerance
	}
	a := m.Clone()
	threshold := pivotTolerance * math.Max(1, a.MaxAbs())
	logger.Debug("elimination on %dx%d matrix, zero threshold %g", a.Rows(), a.Cols(), threshold)

	var pivots []int
	row := 0
	for col := 0; col < a.Cols() && row < a.Rows(); col++ {
		best, bestAbs := row, math.Abs(a.At(row, col))
		for i := row + 1; i < a.Rows(); i++ {
			if v := math.Abs(a.At(i, col)); v > bestAbs {
				best, bestAbs = i, v
			}
		}
		if bestAbs <= threshold {
			for i := row; i < a.Rows(); i++ {
				a.Set(i, col, 0)
			}
			logger.Trace("column %d has no pivot", col)
			continue
		}

		a.swapRows(row, best)
		if best != row {
			logger.Trace("column %d: swap rows %d and %d", col, row, best)
		}

		pv := a.At(row, col)
		for k := col; k < a.Cols(); k++ {
			a.Set(row, k, a.At(row, k)/pv)
		}
		a.Set(row, col, 1)

		for i := 0; i < a.Rows(); i++ {
			if i == row {
				continue
			}
			f := a.At(i, col)
			if f == 0 {
				continue
			}
			for k := col; k < a.Cols(); k++ {
				v := a.At(i, k) - f*a.At(row, k)
				if math.Abs(v) <= threshold {
					v = 0
				}
				a.Set(i, k, v)
			}
			a.Set(i, col, 0)
		}

		pivots = append(pivots, col)
		row++
		logger.Trace("after pivot on column %d:\n%s", col, a)
	}

	return &Elimination{RREF: a, PivotCols: pivots, Threshold: threshold}
}

// Kernel returns a basis of the null space of m: one vector per free
// column, with that free variable set to 1, the other free variables 0 and
// the pivot variables back-substituted from the reduced form. An empty
// result means the only solution of m·x = 0 is x = 0.
func Kernel(m *Matrix, pivotTolerance float64) [][]float64 {
	e := Reduce(m, pivotTolerance)
	free := e.FreeCols()
	logger.Debug("rank %d, nullity %d", e.Rank(), len(free))

	basis := make([][]float64, 0, len(free))
	for _, f := range free {
		x := make([]float64, m.Cols())
		x[f] = 1
		for i, pc := range e.PivotCols {
			x[pc] = -e.RREF.At(i, f)
		}
		basis = append(basis, x)
	}
	return basis
}
