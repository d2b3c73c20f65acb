package multistart

import (
	"errors"
	"runtime"

	"github.com/katalvlaran/nlsolve/newton"
)

// Stable messages for panics raised on programmer error.
const (
	panicWorkersInvalid   = "multistart: WithWorkers: count must be at least 1"
	panicToleranceInvalid = "multistart: Distinct: tolerance must be positive"
)

// Sentinel errors returned by Solve and First.
var (
	// ErrNoStarts indicates that the starting-point list is empty.
	ErrNoStarts = errors.New("multistart: no starting points")

	// ErrNoRoot indicates that every start failed to converge. The outcome
	// slice still carries each start's individual verdict.
	ErrNoRoot = errors.New("multistart: no start converged")
)

// errFirstHit cancels the remaining probes once First has its answer. It
// never escapes the package.
var errFirstHit = errors.New("multistart: first root found")

// Outcome pairs one starting guess with whatever its solve produced. Err
// is nil exactly when the start converged; Result is populated on success
// and, with diagnostics, alongside newton.ErrMaxIterations.
type Outcome struct {
	Start  []float64     // The guess this probe ran from (owned copy)
	Result newton.Result // The solver's verdict for this start
	Err    error         // nil on convergence, the solver's error otherwise
}

// Options configures a multistart run.
//
// Workers – upper bound on concurrently running solves (must be ≥ 1).
// Solver  – options forwarded verbatim to every newton.Solve probe.
type Options struct {
	Workers int             // Concurrency limit for the probe pool
	Solver  []newton.Option // Forwarded to each underlying solve
}

// Option represents a functional option for configuring a multistart run.
type Option func(*Options)

// WithWorkers bounds the number of solves running at once.
// Panics when limit is below 1.
func WithWorkers(limit int) Option {
	if limit < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.Workers = limit }
}

// WithSolverOptions appends options forwarded to every underlying
// newton.Solve call. Repeated use accumulates; within one solve the usual
// last-writer-wins rule of the solver applies.
func WithSolverOptions(opts ...newton.Option) Option {
	return func(o *Options) { o.Solver = append(o.Solver, opts...) }
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults: one worker per available CPU and no solver overrides.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
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
