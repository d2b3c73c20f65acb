// Package polynomial evaluates real polynomials in one variable via
// Horner's method, with coefficients ordered by ascending degree.
//
// 🚀 What is polynomial?
//
//	A tiny, allocation-light evaluator for p(x) = c0 + c1·x + … + cn·xⁿ.
//	Its main job in this module is manufacturing smooth test functions
//	for the root-finding core, but it stands on its own for:
//	  • Evaluating fitted curves at scalar points or whole grids
//	  • Producing exact derivatives for Newton-style solvers
//	  • Readable round-trip rendering of coefficient sets
//
// ✨ Key features:
//   - Horner evaluation: one multiply and one add per coefficient
//   - EvalSlice: elementwise evaluation over a grid in a single call
//   - Derivative: analytic d/dx as a new Polynomial (no differencing error)
//   - Func: adapter returning a plain func(float64) float64 closure
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/nlsolve/polynomial"
//
//	// p(x) = x² + 5x + 6
//	p, err := polynomial.New(6, 5, 1)
//	if err != nil { ... }
//
//	y := p.Eval(3)        // 30
//	dp := p.Derivative()  // 2x + 5
//	f := p.Func()         // feed into newton.SolveScalar
//
// Performance:
//
//   - Time:   O(n) per evaluation, n = number of coefficients
//   - Memory: O(1) per Eval, O(len(xs)) for EvalSlice
//
// See examples in example_test.go.
package polynomial
