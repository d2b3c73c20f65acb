package polynomial_test

import (
	"testing"

	"github.com/katalvlaran/nlsolve/polynomial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_NoCoefficients verifies that an empty coefficient list is rejected
// with ErrNoCoefficients.
func TestNew_NoCoefficients(t *testing.T) {
	_, err := polynomial.New()
	assert.ErrorIs(t, err, polynomial.ErrNoCoefficients, "empty construction must error")
}

// TestMustNew_PanicsOnEmpty verifies the fixture constructor panics where
// New would return an error.
func TestMustNew_PanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { polynomial.MustNew() }, "MustNew() must panic on empty input")
}

// TestEval_HornerMatchesPowerForm checks Horner evaluation of
// p(x) = x² + 5x + 4 against the expanded power form on an evenly spaced
// grid over [-2, 2].
func TestEval_HornerMatchesPowerForm(t *testing.T) {
	p, err := polynomial.New(4, 5, 1)
	require.NoError(t, err)

	// 11 equally spaced points from -2 to 2 inclusive.
	for i := 0; i < 11; i++ {
		x := -2.0 + 0.4*float64(i)
		want := 4 + 5*x + x*x
		assert.InDelta(t, want, p.Eval(x), 1e-12, "p(%v)", x)
	}
}

// TestEval_ExactValue pins one exact evaluation: for p(x) = x² + 5x + 6,
// p(3) = 30 with no rounding at all.
func TestEval_ExactValue(t *testing.T) {
	p := polynomial.MustNew(6, 5, 1)
	assert.Equal(t, 30.0, p.Eval(3), "integer-coefficient evaluation is exact")
}

// TestEvalSlice_Elementwise verifies grid evaluation returns a fresh slice
// of matching length with per-point Horner results.
func TestEvalSlice_Elementwise(t *testing.T) {
	p := polynomial.MustNew(4, 5, 1)
	xs := []float64{-2, -1, 0, 1, 2}

	ys := p.EvalSlice(xs)
	require.Len(t, ys, len(xs))
	for i, x := range xs {
		assert.InDelta(t, 4+5*x+x*x, ys[i], 1e-12, "ys[%d]", i)
	}
	// Input grid must be untouched.
	assert.Equal(t, []float64{-2, -1, 0, 1, 2}, xs, "EvalSlice must not mutate xs")
}

// TestDegreeAndCoeffs verifies degree accounting and that Coeffs returns a
// defensive copy.
func TestDegreeAndCoeffs(t *testing.T) {
	p := polynomial.MustNew(4, 5, 1)
	assert.Equal(t, 2, p.Degree())

	c := p.Coeffs()
	assert.Equal(t, []float64{4, 5, 1}, c)
	c[0] = 99
	assert.Equal(t, 4.0, p.Eval(0), "mutating the Coeffs copy must not alter p")
}

// TestDerivative_Analytic checks d/dx(x² + 5x + 4) = 2x + 5 and the
// constant-polynomial edge case.
func TestDerivative_Analytic(t *testing.T) {
	p := polynomial.MustNew(4, 5, 1)
	dp := p.Derivative()

	assert.Equal(t, []float64{5, 2}, dp.Coeffs(), "derivative coefficients")
	assert.InDelta(t, 5.0, dp.Eval(0), 1e-15)
	assert.InDelta(t, 9.0, dp.Eval(2), 1e-15)

	c := polynomial.MustNew(7)
	assert.Equal(t, []float64{0}, c.Derivative().Coeffs(), "d/dx const = 0")
}

// TestConstructorCopiesInput verifies New snapshots the coefficients at
// construction time.
func TestConstructorCopiesInput(t *testing.T) {
	coeffs := []float64{1, 2}
	p, err := polynomial.New(coeffs...)
	require.NoError(t, err)

	coeffs[1] = 100
	assert.InDelta(t, 3.0, p.Eval(1), 1e-15, "p must keep the original coefficients")
}

// TestString_RendersConstructionOrder verifies the round-trip rendering
// format Polynomial([c0,c1,...]).
func TestString_RendersConstructionOrder(t *testing.T) {
	assert.Equal(t, "Polynomial([6,5,1])", polynomial.MustNew(6, 5, 1).String())
	assert.Equal(t, "Polynomial([0.5,-2])", polynomial.MustNew(0.5, -2).String())
}

// TestFunc_ClosureEvaluates verifies the Func adapter matches Eval.
func TestFunc_ClosureEvaluates(t *testing.T) {
	p := polynomial.MustNew(6, 5, 1)
	f := p.Func()
	assert.Equal(t, p.Eval(3), f(3))
	assert.Equal(t, p.Eval(-2), f(-2))
}
