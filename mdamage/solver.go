// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdamage

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// Solvable defines a dense nonlinear system R(x)=0 with analytic Jacobian,
// evaluated over a fixed trial state
type Solvable interface {
	Nparams() int                                                    // number of unknowns
	InitX(x []float64, ts *TrialState) error                         // seeds the iterate
	RJ(R []float64, J *la.Matrix, x []float64, ts *TrialState) error // computes residual and Jacobian
}

// Solve drives a bounded Newton iteration on sol until ‖R‖ < tol. It returns
// an error, not a best-effort x, when miter iterations are exceeded.
func Solve(sol Solvable, x []float64, ts *TrialState, tol float64, miter int, verbose bool) (err error) {
	n := sol.Nparams()
	R := make([]float64, n)
	δx := make([]float64, n)
	J := la.NewMatrix(n, n)
	var nR float64
	for it := 0; it < miter; it++ {
		err = sol.RJ(R, J, x, ts)
		if err != nil {
			return
		}
		nR = la.Vector(R).Norm()
		if verbose {
			io.Pf("it=%2d  x=%23.15e  ‖R‖=%13.6e\n", it, x[0], nR)
		}
		if nR < tol {
			return nil
		}
		if math.Abs(J.Det()) < 1e-13 {
			return chk.Err("damage solver: cannot invert Jacobian: matrix is singular")
		}
		la.DenSolve(δx, J, R, true)
		for i := 0; i < n; i++ {
			x[i] -= δx[i]
		}
	}
	return chk.Err("damage solver did not converge after %d iterations: ‖R‖=%g, tol=%g", miter, nR, tol)
}
