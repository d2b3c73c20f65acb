package newton

import (
	"errors"
	"math"

	"github.com/katalvlaran/nlsolve/numdiff"
	"gonum.org/v1/gonum/mat"
)

// Func is a scalar residual f: ℝ → ℝ whose root SolveScalar hunts.
type Func func(x float64) float64

// System is a square vector residual f: ℝᴺ → ℝᴺ. It must return exactly
// len(x) components on every call and is treated as pure: the solver may
// evaluate it at perturbed points in any order.
type System func(x []float64) []float64

// Derivative is an exact scalar derivative f′: ℝ → ℝ, supplied via
// WithDerivative to spare SolveScalar the forward-difference estimate.
type Derivative func(x float64) float64

// Jacobian is an exact Jacobian source J: ℝᴺ → ℝᴺˣᴺ, supplied via
// WithJacobian to spare Solve the N extra evaluations per iteration.
type Jacobian func(x []float64) *mat.Dense

// Defaults applied by DefaultOptions.
const (
	// DefaultTolerance is the convergence threshold compared against the
	// Euclidean norm chosen by the Criterion.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations bounds the Newton loop; linear and mildly
	// nonlinear systems settle well inside this budget.
	DefaultMaxIterations = 20

	// DefaultStep is the forward-difference perturbation handed to the
	// numdiff estimator when no exact Jacobian is supplied.
	DefaultStep = numdiff.DefaultStep
)

// Stable messages for panics raised by Option constructors on programmer
// error (not runtime conditions).
const (
	panicToleranceInvalid = "newton: WithTolerance: tolerance must be positive and finite"
	panicMaxIterInvalid   = "newton: WithMaxIterations: limit must be at least 1"
	panicStepInvalid      = "newton: WithStep: step must be positive and finite"
	panicCriterionInvalid = "newton: WithCriterion: unknown criterion"
	panicNilJacobian      = "newton: WithJacobian: source is nil"
	panicNilDerivative    = "newton: WithDerivative: derivative is nil"
)

// Sentinel errors returned by Solve and SolveScalar.
var (
	// ErrNilFunction indicates that the residual function is nil.
	ErrNilFunction = errors.New("newton: residual function is nil")

	// ErrEmptyGuess indicates that the initial guess has no components.
	ErrEmptyGuess = errors.New("newton: initial guess is empty")

	// ErrShapeMismatch indicates that the residual function returned a
	// slice whose length differs from the number of unknowns.
	ErrShapeMismatch = errors.New("newton: residual length does not match unknowns")

	// ErrBadJacobianShape indicates that an exact Jacobian source returned
	// nil or a matrix that is not N×N for an N-dimensional system.
	ErrBadJacobianShape = errors.New("newton: jacobian shape does not match system size")

	// ErrSingularJacobian indicates that the Jacobian at some iterate is
	// singular or so ill-conditioned that the Newton step is meaningless.
	ErrSingularJacobian = errors.New("newton: jacobian is singular or ill-conditioned")

	// ErrMaxIterations indicates that the iteration budget ran out before
	// the convergence criterion was met. The accompanying Result still
	// carries the last iterate and its diagnostics.
	ErrMaxIterations = errors.New("newton: maximum iterations exceeded")

	// ErrNonFinite indicates that a NaN or ±Inf surfaced in the guess, an
	// iterate, a residual, or a Jacobian entry.
	ErrNonFinite = errors.New("newton: non-finite value encountered")
)

// Criterion selects the quantity that the convergence test compares
// against Tolerance. Either way the test runs after the iterate update, so
// a reported root always reflects the final Newton step.
type Criterion int

const (
	// ResidualNorm stops once ‖f(x)‖₂ < Tolerance: the root is certified by
	// how small the residual actually is.
	ResidualNorm Criterion = iota

	// StepNorm stops once ‖δ‖₂ < Tolerance: the iteration is certified by
	// how little the iterate still moves.
	StepNorm
)

// Options configures a single Solve or SolveScalar call.
//
// Tolerance     – convergence threshold for the criterion norm (must be > 0).
// MaxIterations – hard cap on Newton iterations (must be ≥ 1).
// Step          – forward-difference perturbation when no exact source is set.
// Criterion     – ResidualNorm (default) or StepNorm.
// Jacobian      – optional exact Jacobian source; nil selects forward differences.
// Derivative    – optional exact scalar derivative; SolveScalar only.
type Options struct {
	Tolerance     float64    // Convergence threshold, compared strictly (norm < Tolerance)
	MaxIterations int        // Iteration budget; exhaustion yields ErrMaxIterations
	Step          float64    // Perturbation dx for the forward-difference Jacobian
	Criterion     Criterion  // Which norm the stopping rule inspects
	Jacobian      Jacobian   // Exact Jacobian source, or nil for forward differences
	Derivative    Derivative // Exact scalar derivative, folded in by SolveScalar; Solve ignores it
}

// Option represents a functional option for configuring the solver.
type Option func(*Options)

// WithTolerance sets the convergence threshold.
// Panics when tol is zero, negative, NaN, or infinite.
func WithTolerance(tol float64) Option {
	if tol <= 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxIterations caps the number of Newton iterations.
// Panics when limit is below 1.
func WithMaxIterations(limit int) Option {
	if limit < 1 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.MaxIterations = limit }
}

// WithStep sets the forward-difference perturbation used when no exact
// Jacobian or derivative is supplied.
// Panics when dx is zero, negative, NaN, or infinite.
func WithStep(dx float64) Option {
	if dx <= 0 || math.IsNaN(dx) || math.IsInf(dx, 0) {
		panic(panicStepInvalid)
	}

	return func(o *Options) { o.Step = dx }
}

// WithCriterion selects the stopping rule.
// Panics when c is neither ResidualNorm nor StepNorm.
func WithCriterion(c Criterion) Option {
	if c != ResidualNorm && c != StepNorm {
		panic(panicCriterionInvalid)
	}

	return func(o *Options) { o.Criterion = c }
}

// WithJacobian installs an exact Jacobian source, replacing the
// forward-difference estimate entirely.
// Panics when j is nil.
func WithJacobian(j Jacobian) Option {
	if j == nil {
		panic(panicNilJacobian)
	}

	return func(o *Options) { o.Jacobian = j }
}

// WithDerivative installs an exact scalar derivative for SolveScalar,
// replacing the forward-difference estimate entirely. Solve ignores it, and
// it takes precedence over WithJacobian inside SolveScalar.
// Panics when d is nil.
func WithDerivative(d Derivative) Option {
	if d == nil {
		panic(panicNilDerivative)
	}

	return func(o *Options) { o.Derivative = d }
}

// DefaultOptions returns an Options struct initialized with the documented
// defaults. Use this as the starting point for functional-option overrides.
//
// Defaults:
//   - Tolerance:     DefaultTolerance (1e-6).
//   - MaxIterations: DefaultMaxIterations (20).
//   - Step:          DefaultStep (1e-6).
//   - Criterion:     ResidualNorm.
//   - Jacobian:      nil (forward differences).
//   - Derivative:    nil (forward differences).
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		Step:          DefaultStep,
		Criterion:     ResidualNorm,
	}
}

// gatherOptions resolves functional options over the defaults,
// last-writer-wins.
func gatherOptions(opts ...Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Result reports the outcome of a Solve call. On success it describes the
// converged root; alongside ErrMaxIterations it describes the last iterate
// reached, so callers can judge how close the iteration got.
type Result struct {
	Root         []float64 // Final iterate (the root when Converged)
	Residual     []float64 // f(Root)
	ResidualNorm float64   // ‖Residual‖₂
	StepNorm     float64   // ‖δ‖₂ of the last Newton step; zero when Iterations == 0
	Iterations   int       // Newton iterations actually performed
	Converged    bool      // Whether the stopping rule was satisfied
}

// ScalarResult is Result for the one-dimensional SolveScalar.
type ScalarResult struct {
	Root         float64 // Final iterate (the root when Converged)
	Residual     float64 // f(Root)
	ResidualNorm float64 // |Residual|
	StepNorm     float64 // |δ| of the last Newton step; zero when Iterations == 0
	Iterations   int     // Newton iterations actually performed
	Converged    bool    // Whether the stopping rule was satisfied
}
