package newton_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nlsolve/newton"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// linear2 is the fixture system A·x = b with A = [[1,2],[3,4]], b = (5,6);
// its unique root is (-4, 4.5).
func linear2(x []float64) []float64 {
	return []float64{
		x[0] + 2*x[1] - 5.0,
		3*x[0] + 4*x[1] - 6.0,
	}
}

// TestSolve_NilFunction verifies that a nil residual is rejected before any
// evaluation happens.
func TestSolve_NilFunction(t *testing.T) {
	_, err := newton.Solve(nil, []float64{1})
	assert.ErrorIs(t, err, newton.ErrNilFunction, "nil residual must error ErrNilFunction")
}

// TestSolve_EmptyGuess verifies that a guess with no components is rejected.
func TestSolve_EmptyGuess(t *testing.T) {
	f := func(x []float64) []float64 { return x }

	_, err := newton.Solve(f, nil)
	assert.ErrorIs(t, err, newton.ErrEmptyGuess, "nil guess must error ErrEmptyGuess")

	_, err = newton.Solve(f, []float64{})
	assert.ErrorIs(t, err, newton.ErrEmptyGuess, "empty guess must error ErrEmptyGuess")
}

// TestSolve_NonFiniteGuess verifies that NaN and ±Inf components in the
// guess are rejected up front, not discovered mid-iteration.
func TestSolve_NonFiniteGuess(t *testing.T) {
	evals := 0
	f := func(x []float64) []float64 {
		evals++
		return x
	}

	_, err := newton.Solve(f, []float64{1, math.NaN()})
	assert.ErrorIs(t, err, newton.ErrNonFinite, "NaN in guess must error ErrNonFinite")

	_, err = newton.Solve(f, []float64{math.Inf(1), 0})
	assert.ErrorIs(t, err, newton.ErrNonFinite, "+Inf in guess must error ErrNonFinite")

	assert.Zero(t, evals, "validation must reject the guess before evaluating f")
}

// TestSolve_ZeroIterationsAtExactRoot verifies the short-circuit: a guess
// that already satisfies the tolerance returns unchanged after a single
// evaluation, with no Jacobian work at all.
func TestSolve_ZeroIterationsAtExactRoot(t *testing.T) {
	evals := 0
	f := func(x []float64) []float64 {
		evals++
		return linear2(x)
	}

	res, err := newton.Solve(f, []float64{-4, 4.5})
	require.NoError(t, err, "exact root must not error")

	assert.True(t, res.Converged, "exact root must report convergence")
	assert.Zero(t, res.Iterations, "exact root must cost zero iterations")
	assert.Equal(t, []float64{-4, 4.5}, res.Root, "root must be the guess, unchanged")
	assert.Zero(t, res.ResidualNorm, "residual at the exact root is zero")
	assert.Zero(t, res.StepNorm, "no step was ever taken")
	assert.Equal(t, 1, evals, "short-circuit costs exactly one evaluation")
}

// TestSolve_LinearSystem verifies one-shot convergence on an affine system:
// the first Newton step of A·x - b lands on the root regardless of guess.
func TestSolve_LinearSystem(t *testing.T) {
	res, err := newton.Solve(linear2, []float64{0, 0})
	require.NoError(t, err, "affine system must converge")

	assert.True(t, res.Converged, "affine system must report convergence")
	assert.Equal(t, 1, res.Iterations, "one Newton step suffices on an affine system")
	assert.InDelta(t, -4.0, res.Root[0], 1e-6, "first root component")
	assert.InDelta(t, 4.5, res.Root[1], 1e-6, "second root component")
	assert.Less(t, res.ResidualNorm, 1e-6, "residual norm must satisfy the tolerance")
}

// TestSolve_ExactJacobian verifies that WithJacobian replaces the
// forward-difference estimate: the affine root comes out at machine
// precision and f is evaluated only for residuals, never for differencing.
func TestSolve_ExactJacobian(t *testing.T) {
	evals := 0
	f := func(x []float64) []float64 {
		evals++
		return linear2(x)
	}
	jac := func(x []float64) *mat.Dense {
		return mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	}

	res, err := newton.Solve(f, []float64{0, 0}, newton.WithJacobian(jac))
	require.NoError(t, err, "affine system with exact Jacobian must converge")

	assert.Equal(t, 1, res.Iterations, "one exact Newton step suffices")
	assert.InDelta(t, -4.0, res.Root[0], 1e-12, "exact Jacobian pins the root to machine precision")
	assert.InDelta(t, 4.5, res.Root[1], 1e-12, "exact Jacobian pins the root to machine precision")
	assert.Equal(t, 2, evals, "guess residual plus one refresh; no differencing evaluations")
}

// TestSolve_EvaluationBudget pins the evaluation count of the
// forward-difference path: the residual in hand doubles as the difference
// base, so each iteration costs N+1 evaluations (N columns + 1 refresh),
// plus the single guard evaluation up front.
func TestSolve_EvaluationBudget(t *testing.T) {
	evals := 0
	f := func(x []float64) []float64 {
		evals++
		return linear2(x)
	}

	res, err := newton.Solve(f, []float64{0, 0})
	require.NoError(t, err, "affine system must converge")
	require.Equal(t, 1, res.Iterations, "affine system converges in one step")

	// 1 guard + (2 columns + 1 refresh) × 1 iteration.
	assert.Equal(t, 4, evals, "base-value reuse keeps the budget at N+1 per iteration")
}

// TestSolve_CircleLineIntersection drives a genuinely nonlinear 2D system:
// the unit circle intersected with the line y = x, converging to
// (√2/2, √2/2) from an off-curve guess.
func TestSolve_CircleLineIntersection(t *testing.T) {
	f := func(x []float64) []float64 {
		return []float64{
			x[0]*x[0] + x[1]*x[1] - 1.0,
			x[1] - x[0],
		}
	}

	res, err := newton.Solve(f, []float64{1, 0.5})
	require.NoError(t, err, "intersection must converge from (1, 0.5)")

	want := math.Sqrt(0.5)
	assert.True(t, res.Converged, "intersection must report convergence")
	assert.Equal(t, 4, res.Iterations, "quadratic convergence settles in four iterations here")
	assert.InDelta(t, want, res.Root[0], 1e-8, "x component of the intersection")
	assert.InDelta(t, want, res.Root[1], 1e-8, "y component of the intersection")
}

// TestSolve_DecoupledExactRoots verifies the headline arithmetic contract
// on a decoupled system: both components follow 3x + 6, and with a tight
// tolerance and a two-iteration budget the second step cancels the
// first-order error exactly, landing on -2 in every component.
func TestSolve_DecoupledExactRoots(t *testing.T) {
	f := func(x []float64) []float64 {
		return []float64{3.0*x[0] + 6.0, 3.0*x[1] + 6.0}
	}

	res, err := newton.Solve(f, []float64{2, 2},
		newton.WithTolerance(1e-15),
		newton.WithMaxIterations(2),
	)
	require.NoError(t, err, "two iterations must reach the root exactly")

	assert.True(t, res.Converged, "must report convergence")
	assert.Equal(t, 2, res.Iterations, "the exact hit lands on the second iteration")
	assert.Equal(t, -2.0, res.Root[0], "first component lands exactly on -2")
	assert.Equal(t, -2.0, res.Root[1], "second component lands exactly on -2")
	assert.Zero(t, res.ResidualNorm, "residual vanishes at the exact root")
}

// TestSolve_StepNormCriterion verifies the alternative stopping rule: on
// the decoupled affine system the step collapses below tolerance on the
// second iteration, certifying the same exact roots.
func TestSolve_StepNormCriterion(t *testing.T) {
	f := func(x []float64) []float64 {
		return []float64{3.0*x[0] + 6.0, 3.0*x[1] + 6.0}
	}

	res, err := newton.Solve(f, []float64{2, 2}, newton.WithCriterion(newton.StepNorm))
	require.NoError(t, err, "step-norm run must converge")

	assert.Equal(t, 2, res.Iterations, "step norm collapses on the second iteration")
	assert.Equal(t, -2.0, res.Root[0], "first component lands exactly on -2")
	assert.Equal(t, -2.0, res.Root[1], "second component lands exactly on -2")
	assert.Less(t, res.StepNorm, newton.DefaultTolerance, "final step is below tolerance")
}

// TestSolve_SingularJacobian verifies that a rank-deficient system is
// reported as ErrSingularJacobian, not as a bogus root or a NaN cascade.
func TestSolve_SingularJacobian(t *testing.T) {
	// Both components are the same plane; the Jacobian is rank one everywhere.
	f := func(x []float64) []float64 {
		s := x[0] + x[1]
		return []float64{s, s}
	}

	_, err := newton.Solve(f, []float64{1, 2})
	assert.ErrorIs(t, err, newton.ErrSingularJacobian, "rank-deficient Jacobian must error ErrSingularJacobian")
}

// TestSolve_MaxIterationsDiagnostics verifies the exhausted-budget path:
// the error wraps ErrMaxIterations and the Result still carries the last
// iterate with its residual diagnostics.
func TestSolve_MaxIterationsDiagnostics(t *testing.T) {
	f := func(x []float64) []float64 {
		return []float64{x[0]*x[0]*x[0] - 8.0}
	}

	res, err := newton.Solve(f, []float64{3},
		newton.WithTolerance(1e-12),
		newton.WithMaxIterations(1),
	)
	require.ErrorIs(t, err, newton.ErrMaxIterations, "one iteration cannot finish a cubic")

	assert.False(t, res.Converged, "exhausted budget must not report convergence")
	assert.Equal(t, 1, res.Iterations, "the whole budget was spent")
	assert.InDelta(t, 2.2962965310064836, res.Root[0], 1e-9, "last iterate after one step from 3")
	assert.InDelta(t, 4.108320534487131, res.ResidualNorm, 1e-6, "residual norm at the last iterate")
	assert.Positive(t, res.StepNorm, "the step actually taken is reported")
}

// TestSolve_NonFiniteResidual verifies that a residual leaving its domain
// surfaces as ErrNonFinite instead of propagating NaN into the Jacobian.
func TestSolve_NonFiniteResidual(t *testing.T) {
	f := func(x []float64) []float64 {
		return []float64{math.Sqrt(x[0])}
	}

	// The first step from 0.25 overshoots into negative territory.
	_, err := newton.Solve(f, []float64{0.25})
	assert.ErrorIs(t, err, newton.ErrNonFinite, "NaN residual must error ErrNonFinite")
}

// TestSolve_ShapeMismatch verifies both mismatch flavors: a residual that
// is wrong from the start, and one that changes length only on a perturbed
// evaluation inside the differencing loop.
func TestSolve_ShapeMismatch(t *testing.T) {
	short := func(x []float64) []float64 { return []float64{x[0]} }
	_, err := newton.Solve(short, []float64{1, 2})
	assert.ErrorIs(t, err, newton.ErrShapeMismatch, "short residual must error ErrShapeMismatch")

	// Correct on the first call, wrong afterwards: only the differencing
	// loop can see this one.
	calls := 0
	flaky := func(x []float64) []float64 {
		calls++
		if calls == 1 {
			return []float64{x[0] + 1, x[1] + 1}
		}
		return []float64{x[0]}
	}
	_, err = newton.Solve(flaky, []float64{1, 2})
	assert.ErrorIs(t, err, newton.ErrShapeMismatch, "mid-differencing shape change must error ErrShapeMismatch")
}

// TestSolve_BadJacobianShape verifies that an exact source returning nil or
// a non-square matrix is rejected with ErrBadJacobianShape.
func TestSolve_BadJacobianShape(t *testing.T) {
	f := func(x []float64) []float64 { return []float64{x[0] - 1, x[1] - 2} }

	wide := func(x []float64) *mat.Dense { return mat.NewDense(1, 2, nil) }
	_, err := newton.Solve(f, []float64{0, 0}, newton.WithJacobian(wide))
	assert.ErrorIs(t, err, newton.ErrBadJacobianShape, "1×2 Jacobian for a 2D system must error")

	nilSource := func(x []float64) *mat.Dense { return nil }
	_, err = newton.Solve(f, []float64{0, 0}, newton.WithJacobian(nilSource))
	assert.ErrorIs(t, err, newton.ErrBadJacobianShape, "nil Jacobian must error")
}

// TestSolve_GuessNotMutated verifies that the caller's slice stays intact:
// the solver iterates on its own copy.
func TestSolve_GuessNotMutated(t *testing.T) {
	guess := []float64{0, 0}

	_, err := newton.Solve(linear2, guess)
	require.NoError(t, err, "affine system must converge")

	assert.Equal(t, []float64{0, 0}, guess, "the guess slice must not be modified")
}

// TestSolve_ResultIsDetached verifies that mutating a returned Result does
// not leak into anything the solver handed out elsewhere.
func TestSolve_ResultIsDetached(t *testing.T) {
	res, err := newton.Solve(linear2, []float64{0, 0})
	require.NoError(t, err, "affine system must converge")

	res.Root[0] = 999
	res.Residual[0] = 999

	again, err := newton.Solve(linear2, []float64{0, 0})
	require.NoError(t, err, "second solve must converge identically")
	assert.InDelta(t, -4.0, again.Root[0], 1e-6, "previous mutation must not bleed across calls")
}

// TestOptions_PanicOnNonsense verifies that every Option constructor rejects
// nonsensical values at construction time with a panic.
func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { newton.WithTolerance(0) }, "zero tolerance must panic")
	assert.Panics(t, func() { newton.WithTolerance(-1) }, "negative tolerance must panic")
	assert.Panics(t, func() { newton.WithTolerance(math.NaN()) }, "NaN tolerance must panic")
	assert.Panics(t, func() { newton.WithMaxIterations(0) }, "zero iteration budget must panic")
	assert.Panics(t, func() { newton.WithStep(0) }, "zero step must panic")
	assert.Panics(t, func() { newton.WithStep(math.Inf(1)) }, "infinite step must panic")
	assert.Panics(t, func() { newton.WithCriterion(newton.Criterion(42)) }, "unknown criterion must panic")
	assert.Panics(t, func() { newton.WithJacobian(nil) }, "nil Jacobian source must panic")
	assert.Panics(t, func() { newton.WithDerivative(nil) }, "nil derivative must panic")
}

// TestDefaultOptions pins the documented defaults.
func TestDefaultOptions(t *testing.T) {
	cfg := newton.DefaultOptions()

	assert.Equal(t, 1e-6, cfg.Tolerance, "default tolerance")
	assert.Equal(t, 20, cfg.MaxIterations, "default iteration budget")
	assert.Equal(t, 1e-6, cfg.Step, "default forward-difference step")
	assert.Equal(t, newton.ResidualNorm, cfg.Criterion, "default stopping rule")
	assert.Nil(t, cfg.Jacobian, "no exact Jacobian by default")
	assert.Nil(t, cfg.Derivative, "no exact derivative by default")
}
