// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements tables of fluid properties
package out

import (
	"bytes"

	"github.com/cpmech/dfluid/mdl/flamelet"
	"github.com/cpmech/dfluid/mdl/fluid"
	"github.com/cpmech/gosl/io"
)

// Sweep evaluates a data-driven model on the grid rho × e and returns a table with one
// row per point; e varies fastest
func Sweep(mdl *fluid.Model, rho, e []float64) (buf *bytes.Buffer) {
	buf = new(bytes.Buffer)
	io.Ff(buf, "%14s%14s%14s%14s%14s%14s%14s%14s%14s%14s%7s\n", "rho", "e", "T", "P", "c2", "Cp", "Cv", "gamma", "s", "h", "extrap")
	for _, r := range rho {
		for _, en := range e {
			mdl.SetRhoE(r, en)
			s := &mdl.State
			io.Ff(buf, "%14.6e%14.6e%14.6e%14.6e%14.6e%14.6e%14.6e%14.6e%14.6e%14.6e%7v\n",
				s.Rho, s.E, s.T, s.P, s.C2, s.Cp, s.Cv, s.Gamma, s.S, s.H(), s.Extrap)
		}
	}
	return
}

// FlameletSweep evaluates a flamelet model on the grid pv × h; the mixture fraction, if
// any, is fixed at z. Source terms and look-ups are appended after the transport columns
func FlameletSweep(mdl *flamelet.Model, pv, h []float64, z float64) (buf *bytes.Buffer, err error) {
	buf = new(bytes.Buffer)
	io.Ff(buf, "%14s%14s%14s%14s%14s%14s%14s%14s%14s", "pv", "h", "T", "rho", "Cp", "Cv", "mu", "kt", "D")
	for _, names := range [][]string{mdl.SourceNames, mdl.LookupNames} {
		for _, n := range names {
			io.Ff(buf, "%24s", n)
		}
	}
	io.Ff(buf, "%7s\n", "extrap")
	scalars := make([]float64, mdl.NumScalars())
	for _, c := range pv {
		for _, en := range h {
			scalars[flamelet.IProgVar], scalars[flamelet.IEnth] = c, en
			if mdl.NctrlVars == 3 {
				scalars[flamelet.IMixFrac] = z
			}
			if err = mdl.SetTDStateT(0, scalars); err != nil {
				return
			}
			if err = mdl.SetSources(scalars); err != nil {
				return
			}
			if err = mdl.SetLookups(scalars); err != nil {
				return
			}
			io.Ff(buf, "%14.6e%14.6e%14.6e%14.6e%14.6e%14.6e%14.6e%14.6e%14.6e", c, en, mdl.T, mdl.Rho, mdl.Cp, mdl.Cv, mdl.Mu, mdl.Kt, mdl.Diff)
			for _, vals := range [][]float64{mdl.Src, mdl.Look} {
				for _, v := range vals {
					io.Ff(buf, "%24.15e", v)
				}
			}
			io.Ff(buf, "%7v\n", mdl.Extrap)
		}
	}
	return
}
