// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements a data-driven fluid model whose equation of state is given by
// a manifold returning the entropy s(ρ,e) and its first and second derivatives
//  References:
//   [1] Bunschoten E, Cappiello A, Pini M (2023) Data-driven regression of thermodynamic
//       models in entropy-based formulation, in: Proceedings of the 4th International
//       Seminar on Non-Ideal Compressible Fluid Dynamics for Propulsion and Power
package fluid

import (
	"strings"

	"github.com/cpmech/dfluid/inp"
	"github.com/cpmech/dfluid/mdl/manifold"
	"github.com/cpmech/dfluid/mdl/monitor"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/rs/zerolog"
)

// default constants of the Newton solvers
const (
	NmaxIt = 1000 // maximum number of iterations
	TolP   = 10.0 // absolute tolerance on pressure
	TolT   = 1.0  // absolute tolerance on temperature
	TolH   = 10.0 // absolute tolerance on enthalpy
	TolS   = 1.0  // absolute tolerance on entropy
)

// Model implements a data-driven fluid
//  Note: a Model keeps the state of the last evaluation; thus it must not be shared by goroutines
type Model struct {

	// constants
	NmaxIt int     // max number of iterations of inversions
	TolP   float64 // tolerance on pressure
	TolT   float64 // tolerance on temperature
	TolH   float64 // tolerance on enthalpy
	TolS   float64 // tolerance on entropy
	Strict bool    // return an error when an inversion does not converge
	ShowR  bool    // show residuals of inversions

	// parameters
	Relax float64 // relaxation factor of Newton steps
	Rho0  float64 // initial guess of density
	E0    float64 // initial guess of energy

	// state
	State State // state of last evaluation

	// diagnostics
	Log zerolog.Logger   // logger; defaults to no-op
	Mon *monitor.Metrics // metrics; may be nil

	// auxiliary
	omap *manifold.Map // maps (ρ,e) to entropy and derivatives
	raw  [nRaw]float64 // workspace: raw manifold outputs
}

// symbolic names of manifold variables and their default native names
var symbols = []struct{ key, native string }{
	{"entropy", manifold.Entropy},
	{"ds/de", manifold.DsDe},
	{"ds/drho", manifold.DsDrho},
	{"d2s/de2", manifold.D2sDe2},
	{"d2s/dedrho", manifold.D2sDeDrho},
	{"d2s/drho2", manifold.D2sDrho2},
}

// New allocates and initialises a model described by dat
func New(dat *inp.FluidData) (o *Model, err error) {
	if dat.Type != inp.DataDriven {
		return nil, chk.Err("fluid %q: type must be %q; %q is invalid", dat.Name, inp.DataDriven, dat.Type)
	}
	mfd, err := manifold.New(dat.Method, dat.ManifoldPath())
	if err != nil {
		return nil, chk.Err("fluid %q:\n%v", dat.Name, err)
	}
	o = new(Model)
	err = o.Init(dat.Prms, mfd, dat)
	if err != nil {
		return nil, chk.Err("fluid %q:\n%v", dat.Name, err)
	}
	return
}

// Init initialises this structure
//  names -- renames manifold variables; may be nil
func (o *Model) Init(prms dbf.Params, mfd manifold.Manifold, names *inp.FluidData) (err error) {

	// constants
	o.NmaxIt = NmaxIt
	o.TolP, o.TolT, o.TolH, o.TolS = TolP, TolT, TolH, TolS
	o.Relax = 1.0
	o.Log = zerolog.Nop()

	// parameters
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "relax":
			o.Relax = p.V
		case "rho0":
			o.Rho0 = p.V
		case "e0":
			o.E0 = p.V
		case "nmaxit":
			o.NmaxIt = int(p.V)
		case "tolp":
			o.TolP = p.V
		case "tolt":
			o.TolT = p.V
		case "tolh":
			o.TolH = p.V
		case "tols":
			o.TolS = p.V
		case "strict":
			o.Strict = p.V > 0
		case "showr":
			o.ShowR = p.V > 0
		default:
			return chk.Err("data-driven fluid: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.NmaxIt < 1 {
		return chk.Err("data-driven fluid: nmaxit = %d is invalid", o.NmaxIt)
	}

	// manifold
	controls := []string{names.Native("density", manifold.Density), names.Native("energy", manifold.Energy)}
	entries := make([]manifold.Entry, len(symbols))
	for i, sym := range symbols {
		entries[i] = manifold.Entry{Key: sym.key, Native: names.Native(sym.key, sym.native), Slot: i}
	}
	o.omap, err = manifold.NewMap(mfd, controls, entries)
	return
}

// GetPrms gets (an example) of parameters
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "relax", V: 1.0}, // [-]
			&dbf.P{N: "rho0", V: 1.2},  // [kg/m³]
			&dbf.P{N: "e0", V: 2.0e5},  // [J/kg]
		}
	}
	return dbf.Params{
		&dbf.P{N: "relax", V: o.Relax},
		&dbf.P{N: "rho0", V: o.Rho0},
		&dbf.P{N: "e0", V: o.E0},
		&dbf.P{N: "nmaxit", V: float64(o.NmaxIt)},
		&dbf.P{N: "tolP", V: o.TolP},
		&dbf.P{N: "tolT", V: o.TolT},
		&dbf.P{N: "tolH", V: o.TolH},
		&dbf.P{N: "tolS", V: o.TolS},
	}
}

// SetRhoE computes the state at given density and energy
func (o *Model) SetRhoE(rho, e float64) {
	extrap, err := o.omap.Eval(o.raw[:], rho, e)
	if err != nil {
		chk.Panic("%v", err) // sizes are fixed by Init
	}
	o.State = derive(rho, e, &o.raw, extrap)
	if extrap {
		o.Mon.Extrapolated("rhoe")
		o.Log.Debug().Float64("rho", rho).Float64("e", e).Msg("manifold extrapolated")
	}
}
