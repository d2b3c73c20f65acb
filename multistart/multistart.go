// Package multistart - concurrent fan-out over starting points.
//
// This file implements the two drivers and the root filter:
//
//   - Solve: run every start to completion, collect index-aligned outcomes.
//   - First: race the starts, keep the first converged root, cancel the rest.
//   - Distinct: collapse converged outcomes onto distinct roots.
//
// Design:
//   - One errgroup per call, bounded by Options.Workers via SetLimit; the
//     group context is the only cancellation surface. The solver core stays
//     context-free, so cancellation is honored between probes: a solve
//     already running completes before its worker exits.
//   - A failed start is data, not an error: Solve records it in the outcome
//     slice and keeps going. Only cancellation aborts the run early.
//   - Outcome slots are written at distinct indices, one goroutine each, so
//     the collection needs no locking.
package multistart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/nlsolve/newton"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// Solve runs one newton.Solve probe per starting point, at most
// Options.Workers at a time, and returns the outcomes index-aligned with
// starts. Because the solver is stateless and reentrant, concurrent probes
// with a pure residual produce exactly the roots sequential probing would.
//
// Returns:
//
//   - outcomes: one Outcome per start, in the order given.
//   - err: nil when at least one start converged; ErrNoRoot when every
//     probe failed; ErrNoStarts for an empty list; the context error when
//     ctx was canceled before all probes ran (the partial outcomes are
//     still returned, un-run slots carrying the context error).
//
// Complexity: the cost of the underlying solves, Workers at a time.
func Solve(ctx context.Context, f newton.System, starts [][]float64, opts ...Option) ([]Outcome, error) {
	// 1) Resolve options over the documented defaults.
	cfg := gatherOptions(opts...)

	// 2) An empty probe list is a request for nothing.
	if len(starts) == 0 {
		return nil, ErrNoStarts
	}

	// 3) Fan out, bounded by the worker limit.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	outcomes := make([]Outcome, len(starts))
	for i, start := range starts {
		g.Go(func() error {
			outcomes[i].Start = append([]float64(nil), start...)

			// Honor cancellation between probes; a running solve finishes.
			select {
			case <-gctx.Done():
				outcomes[i].Err = gctx.Err()

				return gctx.Err()
			default:
			}

			outcomes[i].Result, outcomes[i].Err = newton.Solve(f, start, cfg.Solver...)

			return nil
		})
	}

	// 4) Wait for the pool; the only group error is cancellation.
	if err := g.Wait(); err != nil {
		return outcomes, err
	}

	// 5) At least one converged start makes the run a success.
	for i := range outcomes {
		if outcomes[i].Err == nil {
			return outcomes, nil
		}
	}

	return outcomes, fmt.Errorf("%w: %d starts attempted", ErrNoRoot, len(starts))
}

// First races one probe per starting point and returns the first converged
// root, canceling the probes still pending. Starts that fail to converge
// are skipped silently; a probe already running when the winner lands is
// left to finish and discarded.
//
// Returns ErrNoStarts for an empty list, ErrNoRoot when every probe failed,
// and the context error when ctx was canceled before any root was found.
//
// Complexity: the cost of the solves actually run, Workers at a time.
func First(ctx context.Context, f newton.System, starts [][]float64, opts ...Option) (newton.Result, error) {
	// 1) Resolve options over the documented defaults.
	cfg := gatherOptions(opts...)

	// 2) An empty probe list is a request for nothing.
	if len(starts) == 0 {
		return newton.Result{}, ErrNoStarts
	}

	// 3) Race the probes; the first converged result wins and cancels the
	//    group through errFirstHit.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	var (
		mu     sync.Mutex    // guards winner/found
		winner newton.Result // the first converged result
		found  bool          // whether winner is set
	)
	for _, start := range starts {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			res, err := newton.Solve(f, start, cfg.Solver...)
			if err != nil {
				// This probe found nothing; the race goes on.
				return nil
			}

			mu.Lock()
			if !found {
				winner, found = res, true
			}
			mu.Unlock()

			return errFirstHit
		})
	}

	// 4) Sort out how the race ended.
	err := g.Wait()
	mu.Lock()
	res, ok := winner, found
	mu.Unlock()
	if ok {
		return res, nil
	}
	if err != nil && !errors.Is(err, errFirstHit) {
		return newton.Result{}, err
	}

	return newton.Result{}, fmt.Errorf("%w: %d starts attempted", ErrNoRoot, len(starts))
}

// Distinct collapses the converged outcomes onto distinct roots, reading
// two roots within tol of each other (Euclidean) as the same and keeping
// the first representative of each, in outcome order.
// Panics when tol is not positive.
func Distinct(outcomes []Outcome, tol float64) [][]float64 {
	if tol <= 0 {
		panic(panicToleranceInvalid)
	}

	var (
		roots [][]float64 // representatives found so far
		known bool        // whether the candidate matches one of them
	)
	for i := range outcomes {
		if outcomes[i].Err != nil {
			continue
		}
		candidate := outcomes[i].Result.Root

		known = false
		for _, root := range roots {
			if len(root) == len(candidate) && floats.Distance(root, candidate, 2) < tol {
				known = true

				break
			}
		}
		if !known {
			roots = append(roots, candidate)
		}
	}

	return roots
}
