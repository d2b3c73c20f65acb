// SPDX-License-Identifier: MIT
// Package: nlsolve/problems
//
// catalog.go - the fixture constructors themselves.
//
// Design contract:
//   - One constructor per fixture; parameters only where the fixture is a
//     family (Line slope/intercept, Broyden dimension).
//   - Exact Jacobians are cataloged for every smooth fixture, so both the
//     forward-difference and the exact-source solver paths can be driven
//     from the same Problem.
//   - Nonsensical parameters are programmer error and panic with a stable
//     message, mirroring the solver's option constructors.
package problems

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Stable messages for panics raised on nonsensical catalog parameters.
const (
	panicBroydenDim = "problems: BroydenTridiagonal: dimension must be at least 1"
)

// Line returns the one-dimensional affine residual f(x) = slope·x +
// intercept. Its root is -intercept/slope; a zero slope has no root and a
// Jacobian that is singular everywhere, which makes it a handy fixture for
// the failure path too.
func Line(slope, intercept float64) Problem {
	p := Problem{
		Name: fmt.Sprintf("line %g·x%+g", slope, intercept),
		Dim:  1,
		F: func(x []float64) []float64 {
			return []float64{slope*x[0] + intercept}
		},
		Jacobian: func(x []float64) *mat.Dense {
			return mat.NewDense(1, 1, []float64{slope})
		},
		Start: []float64{2},
	}
	if slope != 0 {
		p.Roots = [][]float64{{-intercept / slope}}
	}

	return p
}

// Intersection returns the unit circle x² + y² = 1 intersected with the
// line y = x, as the residual f(x, y) = (x² + y² - 1, y - x). The two
// intersections sit at ±(√2/2, √2/2); the start leans into the positive
// one.
func Intersection() Problem {
	half := []float64{0.7071067811865476, 0.7071067811865476}

	return Problem{
		Name: "circle-line intersection",
		Dim:  2,
		F: func(x []float64) []float64 {
			return []float64{
				x[0]*x[0] + x[1]*x[1] - 1.0,
				x[1] - x[0],
			}
		},
		Jacobian: func(x []float64) *mat.Dense {
			return mat.NewDense(2, 2, []float64{
				2 * x[0], 2 * x[1],
				-1, 1,
			})
		},
		Start: []float64{1, 0.5},
		Roots: [][]float64{
			half,
			{-half[0], -half[1]},
		},
	}
}

// Himmelblau returns the gradient system of Himmelblau's function
// (x² + y - 11)² + (x + y² - 7)². Zeroing the gradient locates its four
// minima; the suggested start sits in the basin of (3, 2).
func Himmelblau() Problem {
	return Problem{
		Name: "himmelblau gradient",
		Dim:  2,
		F: func(x []float64) []float64 {
			a := x[0]*x[0] + x[1] - 11.0
			c := x[0] + x[1]*x[1] - 7.0

			return []float64{
				4.0*x[0]*a + 2.0*c,
				2.0*a + 4.0*x[1]*c,
			}
		},
		Jacobian: func(x []float64) *mat.Dense {
			return mat.NewDense(2, 2, []float64{
				12.0*x[0]*x[0] + 4.0*x[1] - 42.0, 4.0 * (x[0] + x[1]),
				4.0 * (x[0] + x[1]), 12.0*x[1]*x[1] + 4.0*x[0] - 26.0,
			})
		},
		Start: []float64{3.5, 2.5},
		Roots: [][]float64{
			{3.0, 2.0},
			{-2.805118086952745, 3.131312518250573},
			{-3.779310253377747, -3.283185991286170},
			{3.584428340330492, -1.848126526964404},
		},
	}
}

// Rosenbrock returns the stationarity system (1 - x, 10(y - x²)) of the
// Rosenbrock valley. Its unique root (1, 1) sits at the bottom of the
// banana; the classic start (-1.2, 1) approaches it across the bend.
func Rosenbrock() Problem {
	return Problem{
		Name: "rosenbrock valley",
		Dim:  2,
		F: func(x []float64) []float64 {
			return []float64{
				1.0 - x[0],
				10.0 * (x[1] - x[0]*x[0]),
			}
		},
		Jacobian: func(x []float64) *mat.Dense {
			return mat.NewDense(2, 2, []float64{
				-1, 0,
				-20.0 * x[0], 10,
			})
		},
		Start: []float64{-1.2, 1},
		Roots: [][]float64{{1, 1}},
	}
}

// BroydenTridiagonal returns the n-dimensional Broyden tridiagonal system
// fᵢ = (3 - 2xᵢ)xᵢ - xᵢ₋₁ - 2xᵢ₊₁ + 1, with out-of-range neighbors read as
// zero. No closed-form root is cataloged; Newton settles it in a handful
// of iterations from -1·ones. Panics when n is below 1.
func BroydenTridiagonal(n int) Problem {
	if n < 1 {
		panic(panicBroydenDim)
	}

	start := make([]float64, n)
	for i := range start {
		start[i] = -1.0
	}

	return Problem{
		Name: fmt.Sprintf("broyden tridiagonal n=%d", n),
		Dim:  n,
		F: func(x []float64) []float64 {
			out := make([]float64, n)
			var v float64
			for i := 0; i < n; i++ {
				v = (3.0-2.0*x[i])*x[i] + 1.0
				if i > 0 {
					v -= x[i-1]
				}
				if i < n-1 {
					v -= 2.0 * x[i+1]
				}
				out[i] = v
			}

			return out
		},
		Jacobian: func(x []float64) *mat.Dense {
			jac := mat.NewDense(n, n, nil)
			for i := 0; i < n; i++ {
				jac.Set(i, i, 3.0-4.0*x[i])
				if i > 0 {
					jac.Set(i, i-1, -1.0)
				}
				if i < n-1 {
					jac.Set(i, i+1, -2.0)
				}
			}

			return jac
		},
		Start: start,
	}
}

// RankDeficient returns a system whose two components describe the same
// plane x + y = 0: the Jacobian is rank one everywhere, so any Newton step
// fails with a singular factorization. A fixture for the failure path.
func RankDeficient() Problem {
	return Problem{
		Name: "rank-deficient plane",
		Dim:  2,
		F: func(x []float64) []float64 {
			s := x[0] + x[1]

			return []float64{s, s}
		},
		Jacobian: func(x []float64) *mat.Dense {
			return mat.NewDense(2, 2, []float64{
				1, 1,
				1, 1,
			})
		},
		Start: []float64{1, 2},
	}
}
