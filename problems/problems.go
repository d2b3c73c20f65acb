// SPDX-License-Identifier: MIT
// Package: nlsolve/problems
//
// problems.go - the Problem bundle and its lookup helpers.
//
// Design contract:
//   - A Problem is a self-contained fixture: residual, exact Jacobian,
//     suggested start, and known roots travel together.
//   - Every catalog constructor returns fresh slices; callers may mutate a
//     Problem without poisoning later calls.
//   - Determinism: the same constructor call always yields the same fixture.
package problems

import (
	"math"

	"github.com/katalvlaran/nlsolve/newton"
	"gonum.org/v1/gonum/floats"
)

// Problem bundles a residual system with everything needed to exercise a
// root finder against it: the exact Jacobian when one is cataloged, a
// starting guess inside a known basin, and the roots themselves when
// closed forms exist.
type Problem struct {
	Name     string          // Human-readable identifier
	Dim      int             // Number of unknowns
	F        newton.System   // Residual whose root is sought
	Jacobian newton.Jacobian // Exact Jacobian source; nil when none is cataloged
	Start    []float64       // Suggested starting guess, len Dim
	Roots    [][]float64     // Known roots; nil when no closed form exists
}

// NearestRoot returns the cataloged root closest to x in the Euclidean
// sense, or nil when the Problem records no roots. x must have Dim
// components.
func (p Problem) NearestRoot(x []float64) []float64 {
	var (
		best []float64            // closest root seen so far
		dist = math.Inf(1)        // its distance to x
		d    float64              // distance under inspection
	)
	for _, root := range p.Roots {
		if d = floats.Distance(root, x, 2); d < dist {
			best, dist = root, d
		}
	}

	return best
}
