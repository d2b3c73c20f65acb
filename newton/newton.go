// Package newton - the Newton–Raphson iteration itself.
//
// This file implements the vector entry point Solve and the runner that
// carries one call's mutable state. The method is the classic undamped
// update x_{k+1} = x_k − J(x_k)⁻¹·f(x_k):
//
//   - J comes from a fixed per-call source: the exact provider installed by
//     WithJacobian, or the forward-difference estimate from numdiff, which
//     reuses the residual already in hand as its base value (N evaluations
//     of f per Jacobian, never N+1).
//   - The linear system J·δ = f(x) is solved by LU with partial pivoting;
//     gonum reports singular and near-singular factorizations through a
//     mat.Condition error, which surfaces here as ErrSingularJacobian.
//   - Convergence is judged strictly after the iterate update, on the
//     freshly evaluated residual (ResidualNorm) or on the step just taken
//     (StepNorm). A guess that already satisfies the tolerance short-circuits
//     before any Jacobian work: Iterations == 0.
//
// Notes on implementation choices:
//
//   - The Jacobian source is resolved once, at runner construction; the hot
//     loop never re-inspects the configuration.
//   - The LU solution vector is backed by the runner's step buffer, so the
//     step norm survives for diagnostics without an extra copy.
//   - Residuals, iterates and Jacobian entries are policed for NaN/±Inf
//     every iteration; divergence fails fast as ErrNonFinite instead of
//     silently propagating.
package newton

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/nlsolve/numdiff"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Solve drives the Newton–Raphson iteration for the square system
// f: ℝᴺ → ℝᴺ, starting from the guess x0. It accepts functional options to
// customize behavior (WithTolerance, WithMaxIterations, WithJacobian, etc.).
//
// Returns:
//
//   - Result: the converged root with its diagnostics; alongside
//     ErrMaxIterations, the last iterate reached instead.
//   - err: nil on convergence, otherwise one of the sentinel errors
//     (ErrNilFunction, ErrEmptyGuess, ErrShapeMismatch, ErrBadJacobianShape,
//     ErrSingularJacobian, ErrNonFinite, ErrMaxIterations).
//
// Preconditions and validation (in order):
//  1. f must be non-nil (ErrNilFunction).
//  2. x0 must have at least one component (ErrEmptyGuess).
//  3. x0 must be finite throughout (ErrNonFinite).
//
// The starting residual f(x0) is evaluated before any Jacobian work; when
// its Euclidean norm is already below Tolerance, x0 is returned unchanged
// with Iterations == 0. Otherwise each iteration forms the Jacobian, solves
// J·δ = f(x), applies x ← x − δ, re-evaluates the residual, and only then
// tests the stopping rule, so a reported root always reflects its final
// Newton step.
//
// Complexity per iteration: N evaluations of f (forward differences) or one
// Jacobian call (exact source), plus O(N³) for the LU solve.
func Solve(f System, x0 []float64, opts ...Option) (Result, error) {
	// 1) Resolve options over the documented defaults.
	cfg := gatherOptions(opts...)

	// 2) Validate the request before evaluating anything.
	if err := validateInputs(f, x0); err != nil {
		return Result{}, err
	}

	// 3) Seed the iteration state. The Jacobian source is fixed here, once.
	run := newRunner(f, x0, cfg)

	// 4) Starting residual. An exact guess costs zero iterations.
	if err := run.evaluate(0); err != nil {
		return Result{}, err
	}
	if run.resNorm < cfg.Tolerance {
		return run.result(0, true), nil
	}

	// 5) Main loop: one advance == one Jacobian, one linear solve, one
	//    iterate update, one residual refresh.
	var k int
	for k = 1; k <= cfg.MaxIterations; k++ {
		if err := run.advance(k); err != nil {
			return Result{}, err
		}
		if run.converged() {
			return run.result(k, true), nil
		}
	}

	// 6) Budget exhausted: hand back the last iterate with full diagnostics
	//    so the caller can judge how close the iteration got.
	return run.result(cfg.MaxIterations, false),
		fmt.Errorf("%w: %d iterations, residual norm %.3e", ErrMaxIterations, cfg.MaxIterations, run.resNorm)
}

// jacobianProvider produces the N×N Jacobian at x, given the residual fx
// already evaluated there.
type jacobianProvider func(x, fx []float64) (*mat.Dense, error)

// runner holds the mutable state for a single Solve execution.
type runner struct {
	f        System           // Residual function; treated as pure.
	cfg      Options          // Resolved configuration for this call.
	jacobian jacobianProvider // Fixed Jacobian source (exact or forward-difference).
	x        []float64        // Current iterate; an owned copy of the caller's guess.
	res      []float64        // Residual f(x) at the current iterate.
	step     []float64        // Last Newton step δ; backs the LU solution vector.
	resNorm  float64          // ‖res‖₂ of the current residual.
	stepNorm float64          // ‖step‖₂ of the last step; zero before the first solve.
	n        int              // System dimension.
}

// newRunner copies the guess, sizes the buffers, and binds the Jacobian
// source for the whole call.
func newRunner(f System, x0 []float64, cfg Options) *runner {
	n := len(x0)
	run := &runner{
		f:    f,
		cfg:  cfg,
		x:    make([]float64, n),
		step: make([]float64, n),
		n:    n,
	}
	copy(run.x, x0)

	if cfg.Jacobian != nil {
		run.jacobian = exactProvider(cfg.Jacobian, n)
	} else {
		run.jacobian = forwardProvider(f, cfg.Step)
	}

	return run
}

// evaluate refreshes res and resNorm at the current iterate, policing the
// shape and finiteness contracts. k names the iteration in error context,
// with 0 standing for the starting point.
func (run *runner) evaluate(k int) error {
	run.res = run.f(run.x)
	if len(run.res) != run.n {
		return fmt.Errorf("%w: got %d components, want %d at iteration %d", ErrShapeMismatch, len(run.res), run.n, k)
	}
	if !allFinite(run.res) {
		return fmt.Errorf("%w: residual at iteration %d", ErrNonFinite, k)
	}
	run.resNorm = floats.Norm(run.res, 2)

	return nil
}

// advance performs one full Newton iteration.
func (run *runner) advance(k int) error {
	// a) Jacobian at the current iterate; res doubles as the base value for
	//    the forward-difference source.
	jac, err := run.jacobian(run.x, run.res)
	if err != nil {
		return err
	}
	if !finiteMatrix(jac) {
		return fmt.Errorf("%w: jacobian at iteration %d", ErrNonFinite, k)
	}

	// b) Solve J·δ = f(x) by LU with partial pivoting. The solution vector
	//    is backed by run.step, so the step survives for diagnostics.
	var lu mat.LU
	lu.Factorize(jac)
	delta := mat.NewVecDense(run.n, run.step)
	if err = lu.SolveVecTo(delta, false, mat.NewVecDense(run.n, run.res)); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return fmt.Errorf("%w: condition number %.3e at iteration %d", ErrSingularJacobian, float64(cond), k)
		}

		return fmt.Errorf("%w: %v", ErrSingularJacobian, err)
	}
	run.stepNorm = floats.Norm(run.step, 2)

	// c) Update x ← x − δ and police the new iterate before handing it to f.
	floats.Sub(run.x, run.step)
	if !allFinite(run.x) {
		return fmt.Errorf("%w: iterate at iteration %d", ErrNonFinite, k)
	}

	// d) Residual at the new iterate; the stopping rule inspects this
	//    post-update state.
	return run.evaluate(k)
}

// converged applies the configured stopping rule to the freshest state.
func (run *runner) converged() bool {
	switch run.cfg.Criterion {
	case StepNorm:
		return run.stepNorm < run.cfg.Tolerance
	default:
		return run.resNorm < run.cfg.Tolerance
	}
}

// result snapshots the iteration state into a Result. Slices are copied so
// the caller never aliases solver internals.
func (run *runner) result(iterations int, converged bool) Result {
	root := make([]float64, run.n)
	copy(root, run.x)
	residual := make([]float64, run.n)
	copy(residual, run.res)

	return Result{
		Root:         root,
		Residual:     residual,
		ResidualNorm: run.resNorm,
		StepNorm:     run.stepNorm,
		Iterations:   iterations,
		Converged:    converged,
	}
}

// exactProvider adapts a user-supplied Jacobian source, enforcing the N×N
// shape contract on every call.
func exactProvider(j Jacobian, n int) jacobianProvider {
	return func(x, _ []float64) (*mat.Dense, error) {
		jac := j(x)
		if jac == nil {
			return nil, fmt.Errorf("%w: source returned nil", ErrBadJacobianShape)
		}
		rows, cols := jac.Dims()
		if rows != n || cols != n {
			return nil, fmt.Errorf("%w: got %d×%d, want %d×%d", ErrBadJacobianShape, rows, cols, n, n)
		}

		return jac, nil
	}
}

// forwardProvider estimates the Jacobian by forward differences. The
// residual already in hand doubles as the base value, so each Jacobian
// costs exactly N evaluations of f.
func forwardProvider(f System, dx float64) jacobianProvider {
	opt := numdiff.WithStep(dx)

	return func(x, fx []float64) (*mat.Dense, error) {
		jac, err := numdiff.JacobianAt(f, x, fx, opt)
		if err != nil {
			// The only reachable failure here is f changing its output
			// length mid-differencing; re-express it in this package's
			// taxonomy.
			return nil, fmt.Errorf("%w: %v", ErrShapeMismatch, err)
		}

		return jac, nil
	}
}
