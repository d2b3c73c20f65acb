// Package numdiff approximates derivatives and Jacobians of black-box
// functions by forward differences with a fixed absolute step.
//
// 🚀 What is numdiff?
//
//	The finite-difference engine behind the Newton solver: given any
//	f: ℝᴺ → ℝᴺ and a point x, it estimates the N×N Jacobian Df(x)
//	without any knowledge of f's internals. Useful whenever:
//	  • No analytic derivative is available (simulation output, legacy code)
//	  • A quick slope estimate beats deriving one by hand
//	  • An exact Jacobian needs an independent cross-check
//
// ✨ Key features:
//   - Forward differences only: (f(x+dx·eᵢ) - f(x)) / dx per column
//   - Frugal evaluation: base value f(x) computed once — N+1 calls total,
//     or exactly N with JacobianAt when the caller already holds f(x)
//   - Constant absolute step (never scaled by |xᵢ|), configurable via WithStep
//   - Scalar fast path: Derivative for f: ℝ → ℝ in two evaluations
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/nlsolve/numdiff"
//
//	f := func(x []float64) []float64 {
//	  return []float64{x[0] + 2*x[1], 3*x[0] + 4*x[1]}
//	}
//
//	J, err := numdiff.Jacobian(f, []float64{5, 6})            // step 1e-6
//	J2, err := numdiff.Jacobian(f, x, numdiff.WithStep(1e-3)) // custom step
//
// Accuracy:
//
//	First-order approximation: truncation error O(dx), round-off error
//	O(1/dx). The default step 1e-6 sits near sqrt(machine epsilon), the
//	practical optimum for inputs of magnitude ~1. Callers needing relative
//	stepping must fold |x| into their own choice of dx.
//
// Performance:
//
//   - Time:   N+1 evaluations of f plus O(N²) arithmetic (Jacobian)
//   - Memory: O(N²) for the result, O(N) scratch
//
// See examples in example_test.go.
package numdiff
