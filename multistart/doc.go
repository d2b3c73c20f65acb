// Package multistart hunts roots from many starting points concurrently,
// layering a retry strategy over the single-shot newton solver.
//
// 🚀 What is multistart?
//
//	Newton iteration is local: it converges fast near a root and can fail
//	entirely from a poor guess. Because newton.Solve is stateless and
//	reentrant, the classic remedy parallelizes trivially — probe many
//	starts at once and harvest whatever converges. Useful whenever:
//	  • A system has several roots and you want all the basins covered
//	  • A single guess keeps diverging and any root will do
//	  • A parameter sweep leaves you with a bag of candidate starts
//
// ✨ Key features:
//   - Solve: every start runs to completion; outcomes come back
//     index-aligned, failures included as data rather than aborts
//   - First: the starts race; the first converged root wins and the rest
//     are canceled through the group context
//   - Distinct: collapses harvested roots onto distinct representatives,
//     so four basins landing on two roots report exactly two
//   - Bounded concurrency via WithWorkers, solver pass-through via
//     WithSolverOptions; defaults probe one start per CPU
//
// ⚙️ Usage:
//
//	import (
//	  "context"
//
//	  "github.com/katalvlaran/nlsolve/multistart"
//	  "github.com/katalvlaran/nlsolve/newton"
//	  "github.com/katalvlaran/nlsolve/problems"
//	)
//
//	p := problems.Himmelblau()
//	starts := [][]float64{{3.5, 2.5}, {-3, 3}, {-3.5, -3.5}, {3.5, -2}}
//
//	outcomes, err := multistart.Solve(context.Background(), p.F, starts,
//	  multistart.WithWorkers(4),
//	  multistart.WithSolverOptions(newton.WithTolerance(1e-9)),
//	)
//	roots := multistart.Distinct(outcomes, 1e-6) // the four minima
//
// Error handling (sentinel errors):
//
//   - ErrNoStarts: the starting-point list is empty.
//   - ErrNoRoot:   every probe failed; inspect the outcome slice for the
//     per-start verdicts.
//   - Context errors pass through when the run is canceled mid-flight.
//
// Concurrency and cancellation:
//
//   - One goroutine per start, at most Workers running at once
//     (errgroup.SetLimit); outcome slots are written without locking
//     because each goroutine owns its index.
//   - The solver core is context-free, so cancellation takes effect
//     between probes: a solve already running completes, then its worker
//     exits. First cancels pending probes as soon as a root lands.
//   - Determinism: with a pure residual, concurrent probes produce exactly
//     the outcomes sequential probing would, in the same slice order.
//
// Thread safety:
//
//   - Solve and First share no state across calls; the residual and any
//     exact Jacobian source must be safe for concurrent evaluation.
//
// See also:
//
//   - newton: the single-shot solver each probe runs.
//   - problems: fixtures whose cataloged basins make good start sets.
package multistart
