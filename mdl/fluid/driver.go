// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Record holds the outcome of one round trip: (ρ,e) → targets → (ρ,e)
type Record struct {
	Pair   Pair    // pair of targets
	Rho    float64 // reference density
	E      float64 // reference energy
	RhoErr float64 // relative error on density
	EErr   float64 // relative error on energy
	Res    Result  // inversion result
}

// Ok tells whether the inversion converged and errors are within tol
func (o *Record) Ok(tol float64) bool {
	return o.Res.Converged && o.RhoErr <= tol && o.EErr <= tol
}

// Driver runs round trips with a data-driven fluid model
type Driver struct {

	// input
	Mdl *Model // fluid model

	// settings
	Pairs   []Pair  // pairs to be tested; default = all
	Tol     float64 // tolerance on relative errors
	Verbose bool    // show records

	// results
	Res []*Record // results
}

// Init initialises driver
func (o *Driver) Init(mdl *Model) (err error) {
	if mdl == nil {
		return chk.Err("driver: model must not be nil")
	}
	o.Mdl = mdl
	o.Pairs = []Pair{PT, PRho, RhoT, HS, PS}
	o.Tol = 1e-2
	o.Verbose = chk.Verbose
	return
}

// Run computes the reference state at each (ρ,e) and inverts it with every pair
func (o *Driver) Run(rho, e []float64) (err error) {
	if len(rho) != len(e) {
		return chk.Err("driver: sizes of rho and e must be equal. %d != %d", len(rho), len(e))
	}
	o.Res = make([]*Record, 0, len(rho)*len(o.Pairs))
	if o.Verbose {
		io.Pf("%6s%15s%15s%12s%12s%6s%10s\n", "pair", "ρ", "e", "errρ", "erre", "it", "converged")
	}
	var ref State
	var a, b float64
	for i := 0; i < len(rho); i++ {
		o.Mdl.SetRhoE(rho[i], e[i])
		ref = o.Mdl.State
		for _, p := range o.Pairs {
			switch p {
			case PT:
				a, b = ref.P, ref.T
			case PRho:
				a, b = ref.P, ref.Rho
			case RhoT:
				a, b = ref.Rho, ref.T
			case HS:
				a, b = ref.H(), ref.S
			case PS:
				a, b = ref.P, ref.S
			}
			rec := &Record{Pair: p, Rho: ref.Rho, E: ref.E}
			rec.Res, err = o.Mdl.Invert(p, a, b)
			if err != nil {
				return
			}
			rec.RhoErr = math.Abs(o.Mdl.State.Rho-ref.Rho) / math.Abs(ref.Rho)
			rec.EErr = math.Abs(o.Mdl.State.E-ref.E) / math.Abs(ref.E)
			o.Res = append(o.Res, rec)
			if o.Verbose {
				io.Pf("%6s%15.6e%15.6e%12.3e%12.3e%6d%10v\n", p, rec.Rho, rec.E, rec.RhoErr, rec.EErr, rec.Res.It, rec.Res.Converged)
			}
		}
	}
	return
}

// Failed returns the records that did not pass
func (o *Driver) Failed() (res []*Record) {
	for _, r := range o.Res {
		if !r.Ok(o.Tol) {
			res = append(res, r)
		}
	}
	return
}
