package newton

import "gonum.org/v1/gonum/mat"

// SolveScalar finds a root of the one-dimensional residual f by lifting it
// into a 1-vector system and running the same iteration as Solve. The 1×1
// LU solve reduces to a plain division, so the scalar path inherits the
// vector path's arithmetic bit for bit, including its diagnostics and
// error taxonomy.
//
// A derivative supplied via WithDerivative is folded into a 1×1 exact
// Jacobian; otherwise the slope comes from the same forward difference the
// vector path uses.
//
// Complexity per iteration: one evaluation of f (exact derivative) or two
// (forward difference), plus O(1) arithmetic.
func SolveScalar(f Func, x0 float64, opts ...Option) (ScalarResult, error) {
	// 1) Reject a nil residual before gathering options on its behalf.
	if f == nil {
		return ScalarResult{}, ErrNilFunction
	}

	// 2) Peek at the resolved configuration to see whether an exact
	//    derivative was supplied; if so, lift it into a Jacobian source.
	//    Appending after the caller's options makes the lift authoritative.
	cfg := gatherOptions(opts...)
	lifted := append([]Option(nil), opts...)
	if cfg.Derivative != nil {
		d := cfg.Derivative
		lifted = append(lifted, WithJacobian(func(x []float64) *mat.Dense {
			return mat.NewDense(1, 1, []float64{d(x[0])})
		}))
	}

	// 3) Lift the residual itself and delegate to the vector solver.
	system := func(x []float64) []float64 { return []float64{f(x[0])} }
	res, err := Solve(system, []float64{x0}, lifted...)

	return scalarize(res), err
}

// scalarize projects a 1-dimensional Result onto ScalarResult. Zero-value
// Results (validation failures) project onto the zero ScalarResult.
func scalarize(res Result) ScalarResult {
	sr := ScalarResult{
		ResidualNorm: res.ResidualNorm,
		StepNorm:     res.StepNorm,
		Iterations:   res.Iterations,
		Converged:    res.Converged,
	}
	if len(res.Root) == 1 {
		sr.Root = res.Root[0]
	}
	if len(res.Residual) == 1 {
		sr.Residual = res.Residual[0]
	}

	return sr
}
