// Package polynomial - Horner evaluation of real polynomials.
//
// This file defines the Polynomial value type, its constructors, and the
// evaluation/derivative operations. Coefficients are indexed by degree:
// coeffs[i] multiplies xⁱ.
//
// Design:
//   - Value semantics: constructors copy the coefficient slice; a Polynomial
//     never aliases caller memory and is safe to share between goroutines.
//   - Strict sentinels from this file on invalid input; panics confined to
//     MustNew (programmer error in fixtures).
//   - Evaluation order is fixed (highest degree first) so results are
//     bit-for-bit reproducible across calls and platforms.
package polynomial

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNoCoefficients is returned when a polynomial is constructed from an
// empty coefficient sequence; even the zero polynomial needs one term.
var ErrNoCoefficients = errors.New("polynomial: at least one coefficient required")

// Polynomial represents p(x) = coeffs[0] + coeffs[1]·x + … + coeffs[n]·xⁿ.
// The zero value is unusable; construct with New or MustNew.
type Polynomial struct {
	coeffs []float64
}

// New builds a Polynomial from coefficients ordered by ascending degree,
// so New(6, 5, 1) is x² + 5x + 6. The input values are copied.
//
// Returns ErrNoCoefficients when called with no arguments.
//
// Complexity: O(n) time and space.
func New(coeffs ...float64) (Polynomial, error) {
	if len(coeffs) == 0 {
		return Polynomial{}, ErrNoCoefficients
	}

	// Copy so later mutation of the caller's slice cannot alter p.
	c := make([]float64, len(coeffs))
	copy(c, coeffs)

	return Polynomial{coeffs: c}, nil
}

// MustNew is New for fixtures and examples: it panics instead of returning
// an error. Use only where an empty coefficient list is a programmer bug.
func MustNew(coeffs ...float64) Polynomial {
	p, err := New(coeffs...)
	if err != nil {
		panic(err.Error())
	}

	return p
}

// Eval computes p(x) by Horner's method, iterating coefficients from the
// highest degree down: acc = acc·x + c[i]. One multiply and one add per
// coefficient, no intermediate powers.
//
// Complexity: O(n) time, O(1) space.
func (p Polynomial) Eval(x float64) float64 {
	var acc float64
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = acc*x + p.coeffs[i]
	}

	return acc
}

// EvalSlice evaluates p elementwise over xs and returns a fresh slice of
// the same length. The input slice is not modified.
//
// Complexity: O(n·len(xs)) time, O(len(xs)) space.
func (p Polynomial) EvalSlice(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = p.Eval(x)
	}

	return out
}

// Degree reports the degree of p as constructed: len(coeffs)-1. Trailing
// zero coefficients count toward the degree (no normalization is applied).
func (p Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Coeffs returns a copy of the coefficient slice, index = degree.
func (p Polynomial) Coeffs() []float64 {
	c := make([]float64, len(p.coeffs))
	copy(c, p.coeffs)

	return c
}

// Derivative returns d/dx p as a new Polynomial: coefficient i of the
// result is (i+1)·coeffs[i+1]. The derivative of a constant is the zero
// polynomial (single coefficient 0).
//
// Complexity: O(n) time and space.
func (p Polynomial) Derivative() Polynomial {
	if len(p.coeffs) <= 1 {
		return Polynomial{coeffs: []float64{0}}
	}

	d := make([]float64, len(p.coeffs)-1)
	for i := range d {
		d[i] = p.coeffs[i+1] * float64(i+1)
	}

	return Polynomial{coeffs: d}
}

// Func returns a plain closure computing p(x), suitable for any API that
// consumes func(float64) float64 — in particular newton.SolveScalar.
func (p Polynomial) Func() func(float64) float64 {
	return p.Eval
}

// String renders the coefficient list in construction order, e.g.
// "Polynomial([6,5,1])" for x² + 5x + 6. Coefficients use the shortest
// decimal form that round-trips (%g semantics).
func (p Polynomial) String() string {
	var b strings.Builder
	b.WriteString("Polynomial([")
	for i, c := range p.coeffs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
	}
	b.WriteString("])")

	return b.String()
}
