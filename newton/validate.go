package newton

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// validateInputs rejects impossible solve requests before any evaluation
// of f takes place.
//
// Checked, in order:
//  1. f non-nil (ErrNilFunction).
//  2. At least one unknown (ErrEmptyGuess).
//  3. Finite guess throughout (ErrNonFinite).
func validateInputs(f System, x0 []float64) error {
	if f == nil {
		return ErrNilFunction
	}
	if len(x0) == 0 {
		return ErrEmptyGuess
	}
	if !allFinite(x0) {
		return fmt.Errorf("%w: initial guess", ErrNonFinite)
	}

	return nil
}

// allFinite reports whether every component is neither NaN nor ±Inf.
func allFinite(v []float64) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}

	return true
}

// finiteMatrix reports whether every matrix entry is neither NaN nor ±Inf.
func finiteMatrix(m *mat.Dense) bool {
	rows, cols := m.Dims()
	var (
		i, j int     // entry under inspection
		c    float64 // its value
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			c = m.At(i, j)
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return false
			}
		}
	}

	return true
}
