// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// Result holds information about one inversion
type Result struct {
	Converged bool       // residuals are within tolerances
	It        int        // number of iterations
	Res       [2]float64 // last residuals
}

// ConvergenceError is returned in strict mode when an inversion hits the iteration cap
type ConvergenceError struct {
	Solver string     // name of solver; e.g. "PT"
	It     int        // number of iterations
	Res    [2]float64 // last residuals
}

// Error returns the error message
func (o *ConvergenceError) Error() string {
	return io.Sf("%s inversion did not converge after %d iterations. residuals = %g, %g", o.Solver, o.It, o.Res[0], o.Res[1])
}

// target defines a quantity to be matched by the Newton solver
type target struct {
	val  float64                // target value
	tol  float64                // absolute tolerance
	get  func(s *State) float64 // current value
	dRho func(s *State) float64 // ∂/∂ρ at constant e
	dE   func(s *State) float64 // ∂/∂e at constant ρ
}

// solve2 finds (ρ,e) matching two targets. The 2×2 Newton system
//
//   [∂a/∂ρ  ∂a/∂e] [δρ]   [ra]
//   [∂b/∂ρ  ∂b/∂e] [δe] = [rb]
//
// is solved by Cramer's rule. The determinant is not checked; a singular Jacobian yields
// non-finite values
func (o *Model) solve2(a, b *target) (res Result) {
	rho, e := o.Rho0, o.E0
	var ra, rb, aρ, ae, bρ, be, det, δρ, δe float64
	if o.ShowR {
		io.Pfyel("%6s%23s%23s%23s%23s\n", "it", "ρ", "e", "ra", "rb")
	}
	for !res.Converged && res.It < o.NmaxIt {
		o.SetRhoE(rho, e)
		ra = a.get(&o.State) - a.val
		rb = b.get(&o.State) - b.val
		if o.ShowR {
			io.Pfyel("%6d%23.15e%23.15e%23.15e%23.15e\n", res.It, rho, e, ra, rb)
		}
		if math.Abs(ra) < a.tol && math.Abs(rb) < b.tol {
			res.Converged = true
		} else {
			aρ, ae = a.dRho(&o.State), a.dE(&o.State)
			bρ, be = b.dRho(&o.State), b.dE(&o.State)
			det = aρ*be - ae*bρ
			δρ = (be*ra - ae*rb) / det
			δe = (-bρ*ra + aρ*rb) / det
			rho -= o.Relax * δρ
			e -= o.Relax * δe
		}
		res.It++
	}
	res.Res = [2]float64{ra, rb}
	o.SetRhoE(rho, e)
	return
}

// solve1 finds e matching one target at fixed density
//  Note: the state is left at the last evaluated iterate, which may differ from the returned energy
func (o *Model) solve1(rho float64, a *target) (e float64, res Result) {
	e = o.E0
	var r float64
	if o.ShowR {
		io.Pfyel("%6s%23s%23s\n", "it", "e", "r")
	}
	for !res.Converged && res.It < o.NmaxIt {
		o.SetRhoE(rho, e)
		r = a.get(&o.State) - a.val
		if o.ShowR {
			io.Pfyel("%6d%23.15e%23.15e\n", res.It, e, r)
		}
		if math.Abs(r) < a.tol {
			res.Converged = true
		} else {
			e -= o.Relax * (r / a.dE(&o.State))
		}
		res.It++
	}
	res.Res[0] = r
	return
}

// finish records the outcome of an inversion
func (o *Model) finish(solver string, res Result) error {
	o.Mon.Inversion(solver, res.Converged, res.It)
	if o.ShowR {
		io.Pfgrey("  %s: converged=%v with %d iterations\n", solver, res.Converged, res.It)
	}
	if res.Converged {
		return nil
	}
	o.Log.Warn().Str("solver", solver).Int("it", res.It).Float64("ra", res.Res[0]).Float64("rb", res.Res[1]).
		Float64("rho", o.State.Rho).Float64("e", o.State.E).Msg("inversion did not converge")
	if o.Strict {
		return &ConvergenceError{Solver: solver, It: res.It, Res: res.Res}
	}
	return nil
}
