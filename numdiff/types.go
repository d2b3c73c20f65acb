package numdiff

import (
	"errors"
	"math"
)

// DefaultStep is the forward-difference perturbation used when WithStep is
// not supplied. It sits near sqrt(machine epsilon), balancing O(dx)
// truncation error against O(1/dx) round-off for inputs of magnitude ~1.
const DefaultStep = 1e-6

// panicStepInvalid is the stable message used when WithStep receives a
// nonsensical value (programmer error, not a runtime condition).
const panicStepInvalid = "numdiff: WithStep: step must be positive and finite"

var (
	// ErrNilFunction is returned when the function to differentiate is nil.
	ErrNilFunction = errors.New("numdiff: nil function")

	// ErrEmptyPoint is returned when the evaluation point has no components.
	ErrEmptyPoint = errors.New("numdiff: empty evaluation point")

	// ErrShapeMismatch is returned when the function's output length differs
	// from its input length; the Jacobian here is square by contract.
	ErrShapeMismatch = errors.New("numdiff: function output length mismatch")
)

// Options holds the effective differentiation configuration.
type Options struct {
	// Step is the absolute forward-difference perturbation dx. It is applied
	// unscaled to every component. Must be positive and finite.
	Step float64
}

// Option mutates Options. Constructors panic on nonsensical values.
type Option func(*Options)

// WithStep sets the perturbation dx used for every component.
// Panics when dx is zero, negative, NaN, or infinite.
func WithStep(dx float64) Option {
	if dx <= 0 || math.IsNaN(dx) || math.IsInf(dx, 0) {
		panic(panicStepInvalid)
	}

	return func(o *Options) { o.Step = dx }
}

// DefaultOptions returns the documented defaults: Step = DefaultStep.
func DefaultOptions() Options {
	return Options{Step: DefaultStep}
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
