// Package numdiff - forward-difference derivative and Jacobian estimators.
//
// This file implements the three entry points:
//
//   - Derivative:  scalar d/dx estimate, two evaluations.
//   - Jacobian:    N×N estimate, N+1 evaluations (base value computed here).
//   - JacobianAt:  N×N estimate, N evaluations (base value supplied).
//
// Design:
//   - The difference quotient is computed as (perturbed - base) / dx,
//     componentwise, in exactly that order.
//   - One scratch point is reused across columns: slot i is bumped by dx,
//     then restored to the original x[i] (no cumulative drift).
//   - The caller's x is never modified; f is assumed pure and must return a
//     slice of len(x) on every call (checked, ErrShapeMismatch otherwise).
//   - Non-finite values produced by f pass through unchanged; range policy
//     belongs to the consumer (the Newton solver polices divergence).
//
// Complexity: O(N) evaluations of f, O(N²) arithmetic and result storage.
package numdiff

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Derivative estimates d/dx f at x by a single forward difference:
// (f(x+dx) - f(x)) / dx.
//
// Contract:
//   - f must be non-nil (ErrNilFunction otherwise).
//   - Exactly two evaluations of f are performed.
//
// Complexity: O(1) beyond the two evaluations.
func Derivative(f func(float64) float64, x float64, opts ...Option) (float64, error) {
	if f == nil {
		return 0, ErrNilFunction
	}
	cfg := gatherOptions(opts...)

	fx := f(x)

	return (f(x+cfg.Step) - fx) / cfg.Step, nil
}

// Jacobian estimates the N×N Jacobian of f at x. Column i holds the forward
// difference (f(x + dx·e_i) - f(x)) / dx, where e_i is the i-th standard
// basis vector. The base value f(x) is evaluated once here and reused for
// all N columns: N+1 evaluations of f in total.
//
// Contract:
//   - f must be non-nil (ErrNilFunction) and x non-empty (ErrEmptyPoint).
//   - f must return len(x) components on every call (ErrShapeMismatch).
//   - x is not modified.
//
// Complexity: N+1 evaluations of f, O(N²) arithmetic.
func Jacobian(f func([]float64) []float64, x []float64, opts ...Option) (*mat.Dense, error) {
	if f == nil {
		return nil, ErrNilFunction
	}
	if len(x) == 0 {
		return nil, ErrEmptyPoint
	}

	// Base value, computed once and reused for every column.
	fx := f(x)
	if len(fx) != len(x) {
		return nil, fmt.Errorf("%w: got %d components, want %d", ErrShapeMismatch, len(fx), len(x))
	}

	return JacobianAt(f, x, fx, opts...)
}

// JacobianAt is Jacobian with a caller-precomputed base value fx = f(x),
// saving one evaluation: exactly N evaluations of f are performed. The
// Newton iteration uses this to let its residual double as the base value.
//
// Contract:
//   - f must be non-nil (ErrNilFunction) and x non-empty (ErrEmptyPoint).
//   - len(fx) must equal len(x) (ErrShapeMismatch), as must every
//     perturbed result of f.
//   - x and fx are not modified.
//
// Complexity: N evaluations of f, O(N²) arithmetic.
func JacobianAt(f func([]float64) []float64, x, fx []float64, opts ...Option) (*mat.Dense, error) {
	if f == nil {
		return nil, ErrNilFunction
	}
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyPoint
	}
	if len(fx) != n {
		return nil, fmt.Errorf("%w: base value has %d components, want %d", ErrShapeMismatch, len(fx), n)
	}
	cfg := gatherOptions(opts...)

	jac := mat.NewDense(n, n, nil)

	// One scratch point shared by all columns; slot i is bumped then
	// restored to the exact original value.
	xp := make([]float64, n)
	copy(xp, x)

	var (
		i  int       // column under construction
		k  int       // row within the column
		fp []float64 // f evaluated at the perturbed point
		dx = cfg.Step
	)
	for i = 0; i < n; i++ {
		xp[i] = x[i] + dx

		fp = f(xp)
		if len(fp) != n {
			return nil, fmt.Errorf("%w: perturbed value has %d components, want %d", ErrShapeMismatch, len(fp), n)
		}

		// Column i: difference quotient per output component.
		for k = 0; k < n; k++ {
			jac.Set(k, i, (fp[k]-fx[k])/dx)
		}

		xp[i] = x[i]
	}

	return jac, nil
}
