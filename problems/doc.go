// Package problems catalogs ready-made nonlinear systems with known
// structure: residual, exact Jacobian, a starting guess inside a charted
// basin, and the roots themselves where closed forms exist.
//
// 🚀 What is problems?
//
//	The fixture shelf of nlsolve: deterministic, self-contained systems
//	for exercising the newton and multistart solvers. Useful whenever:
//	  • A solver change needs a regression bed with known answers
//	  • A benchmark needs a system family that scales in dimension
//	  • A demo needs something more interesting than a straight line
//
// ✨ Key features:
//   - Each Problem carries residual and exact Jacobian together, so the
//     forward-difference and exact-source solver paths run off one fixture
//   - Known roots included where they exist; NearestRoot resolves which
//     basin an iterate landed in
//   - Failure-path fixtures too: a rank-deficient plane and a zero-slope
//     line for driving the singular-Jacobian error
//   - Constructors are deterministic and return fresh slices on every call
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/nlsolve/newton"
//	  "github.com/katalvlaran/nlsolve/problems"
//	)
//
//	p := problems.Himmelblau()
//	res, err := newton.Solve(p.F, p.Start, newton.WithJacobian(p.Jacobian))
//	// res.Root ≈ (3, 2); p.NearestRoot(res.Root) names the basin.
//
// The catalog:
//
//   - Line(slope, intercept):  1D affine residual; root -intercept/slope.
//   - Intersection():          unit circle ∩ the line y = x; roots ±(√2/2, √2/2).
//   - Himmelblau():            gradient of Himmelblau's function; four roots.
//   - Rosenbrock():            stationarity system of the Rosenbrock valley; root (1, 1).
//   - BroydenTridiagonal(n):   classic sparse n-dimensional system; no closed-form root.
//   - RankDeficient():         rank-one Jacobian everywhere; exercises failure handling.
//
// See also:
//
//   - newton: the solver these fixtures are built for.
//   - multistart: drives Himmelblau's four basins concurrently.
package problems
