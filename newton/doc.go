// Package newton solves square systems of nonlinear equations f(x) = 0 by
// the Newton–Raphson method, with scalar and vector entry points.
//
// 🚀 What is newton?
//
//	The root-finding core of nlsolve: given a residual f: ℝᴺ → ℝᴺ and a
//	starting guess, it iterates x_{k+1} = x_k − J(x_k)⁻¹·f(x_k) until the
//	residual (or the step) drops below tolerance. Useful whenever:
//	  • A nonlinear model must be driven to a balance point (circuits,
//	    kinetics, equilibria, implicit time steps)
//	  • Two curves or surfaces need intersecting
//	  • A gradient must be zeroed to locate a stationary point
//
// ✨ Key features:
//   - Derivative-free by default: the Jacobian is estimated by forward
//     differences (numdiff), reusing the residual in hand so each estimate
//     costs exactly N evaluations of f
//   - Exact sources when you have them: WithJacobian (vector) and
//     WithDerivative (scalar) swap the estimate out entirely, fixed once
//     per call, never re-examined in the hot loop
//   - Convergence judged after the update: a returned root always reflects
//     its final Newton step, and an exact guess costs zero iterations
//   - Two stopping rules: ResidualNorm (default) certifies ‖f(x)‖₂,
//     StepNorm certifies ‖δ‖₂ — pick with WithCriterion
//   - Full diagnostics: Result carries the final iterate, residual, both
//     norms, the iteration count, and the convergence verdict — even
//     alongside ErrMaxIterations
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/nlsolve/newton"
//
//	// Scalar: root of 3x + 6.
//	res, err := newton.SolveScalar(func(x float64) float64 { return 3*x + 6 }, 2)
//	// res.Root == -2, res.Converged == true
//
//	// Vector: intersection of the unit circle with the line y = x.
//	f := func(x []float64) []float64 {
//	  return []float64{x[0]*x[0] + x[1]*x[1] - 1, x[1] - x[0]}
//	}
//	res2, err := newton.Solve(f, []float64{1, 0.5},
//	  newton.WithTolerance(1e-10),
//	  newton.WithMaxIterations(50),
//	)
//
// Error handling (sentinel errors):
//
//   - ErrNilFunction:      the residual function is nil.
//   - ErrEmptyGuess:       the initial guess has no components.
//   - ErrShapeMismatch:    f returned a slice whose length differs from the
//     number of unknowns.
//   - ErrBadJacobianShape: an exact Jacobian source returned nil or a
//     matrix that is not N×N.
//   - ErrSingularJacobian: the Jacobian at some iterate is singular or too
//     ill-conditioned for a meaningful step (detected by the LU solve).
//   - ErrNonFinite:        NaN or ±Inf surfaced in the guess, an iterate,
//     a residual, or a Jacobian entry; divergence fails fast.
//   - ErrMaxIterations:    the iteration budget ran out; the Result still
//     carries the last iterate and its diagnostics.
//
// Convergence:
//
//	Near a simple root with an exact Jacobian the iteration is quadratic:
//	the error roughly squares every step. Forward differences reduce that
//	to superlinear in practice but rarely add more than an iteration or
//	two. No damping or line search is performed; a poor starting guess can
//	diverge, which surfaces as ErrNonFinite or ErrMaxIterations rather
//	than a silent wrong answer. The multistart package layers a retry
//	strategy on top for exactly that case.
//
// Performance:
//
//   - Time:  per iteration, N evaluations of f (forward differences) or
//     one Jacobian call (exact source), plus O(N³) for the LU solve.
//   - Space: O(N²) for the Jacobian, O(N) for iterate, residual, and step.
//
// Thread safety:
//
//   - Solve and SolveScalar share no state between calls; concurrent calls
//     with pure residual functions are safe.
//   - A residual or Jacobian source that closes over mutable state must be
//     synchronized by the caller.
//
// See also:
//
//   - numdiff: the forward-difference estimator behind the default source.
//   - multistart: concurrent root hunting from many starting guesses.
//   - problems: ready-made benchmark systems with known roots.
package newton
