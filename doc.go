// Package nlsolve is your in-process toolkit for finding roots of
// nonlinear equations and systems — from forward-difference Jacobians
// to Newton–Raphson iteration and concurrent restarts.
//
// 🚀 What is nlsolve?
//
//	A small, deterministic numerics library that brings together:
//		• Forward differences: scalar derivatives & dense N×N Jacobians (numdiff)
//		• Newton–Raphson: scalar & vector solves, exact or approximated Jacobians (newton)
//		• Linear algebra: LU with partial pivoting via gonum/mat, singularity surfaced as a sentinel
//		• Polynomials: Horner evaluation, analytic derivatives, test-function factories (polynomial)
//		• Restarts: concurrent multi-start search over many initial guesses (multistart)
//		• Benchmarks: a catalog of classic nonlinear systems — Rosenbrock, Himmelblau & co (problems)
//
// ✨ Why choose nlsolve?
//
//   - Predictable failure modes – singular Jacobians, divergence, and iteration
//     exhaustion are distinct sentinel errors, never a plausible-looking wrong root
//   - Diagnostics included – every solve reports the iterate, residual, and norms
//     it ended on, converged or not
//   - Reentrant by construction – no globals, no shared state; solves parallelize freely
//   - Double precision throughout – one numeric policy, no dynamic dispatch
//
// Everything is organized under focused subpackages:
//
//	newton/     — the Newton–Raphson solver: Solve, SolveScalar, options, sentinels
//	numdiff/    — forward-difference Derivative, Jacobian, JacobianAt
//	polynomial/ — Horner polynomials: Eval, EvalSlice, Derivative, Func
//	multistart/ — errgroup-powered search from many starting points
//	problems/   — ready-made nonlinear systems for tests, benches, and demos
//
// Quick sketch:
//
//	f(x) = 3x + 6        x₀ = 2
//	         │
//	         ▼
//	x₁ = x₀ − f(x₀)/f′(x₀) = −2   ← the root, one linearization away
//
// Dive into the per-package doc.go files for contracts, complexity notes,
// and runnable examples.
//
//	go get github.com/katalvlaran/nlsolve
package nlsolve
