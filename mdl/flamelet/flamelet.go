// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package flamelet implements a fluid model whose thermodynamic and transport properties
// are looked up from a flamelet manifold
package flamelet

import (
	"strings"

	"github.com/cpmech/dfluid/inp"
	"github.com/cpmech/dfluid/mdl/manifold"
	"github.com/cpmech/dfluid/mdl/monitor"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/rs/zerolog"
)

// Ru is the universal gas constant [J/(mol・K)]
const Ru = 8.3144598

// indices of control variables in the scalars vector
const (
	IProgVar = 0 // progress variable
	IEnth    = 1 // total enthalpy
	IMixFrac = 2 // mixture fraction; only if NctrlVars == 3
)

// Op defines a group of variables looked up together
type Op int

// groups of variables
const (
	TD      Op = iota // thermodynamic state and transport coefficients
	Sources           // source terms
	Lookup            // passive look-up variables
)

// String returns the name of group
func (o Op) String() string {
	switch o {
	case TD:
		return "td"
	case Sources:
		return "sources"
	case Lookup:
		return "lookup"
	}
	return "invalid"
}

// native names of thermodynamic variables
var tdnames = []string{"Temperature", "Cp", "ViscosityDyn", "Conductivity", "DiffusionCoefficient", "MolarWeightMix"}

// indices of thermodynamic variables
const (
	iT = iota
	iCp
	iMu
	iKt
	iDiff
	iMw
	nTD
)

// SourcePVName is the native name of the source term of the progress variable
const SourcePVName = "ProdRateTot_PV"

// Model implements a flamelet fluid
//  Note: a Model keeps the state of the last evaluation; thus it must not be shared by goroutines
type Model struct {

	// parameters
	NctrlVars int     // number of control variables: 2 or 3
	Pop       float64 // operating pressure

	// names
	ScalarNames []string // names of user-defined scalars
	SourceNames []string // names of source terms: ProdRateTot_PV, then production and consumption of each user scalar
	LookupNames []string // names of passive look-up variables

	// state
	T    float64   // temperature
	Cp   float64   // specific heat at constant pressure
	Cv   float64   // specific heat at constant volume
	Mu   float64   // dynamic viscosity
	Kt   float64   // thermal conductivity
	Diff float64   // mass diffusivity
	Mw   float64   // molar weight of mixture
	Rho  float64   // density
	Src  []float64 // source terms; same order as SourceNames
	Look []float64 // passive look-up values; same order as LookupNames

	// flags
	Extrap bool // any group evaluated since the last SetTDStateT was extrapolated

	// diagnostics
	Log zerolog.Logger   // logger; defaults to no-op
	Mon *monitor.Metrics // metrics; may be nil

	// auxiliary
	maps [3]*manifold.Map // maps of TD, Sources and Lookup groups
	td   []float64        // workspace: thermodynamic variables
	ctrl []float64        // workspace: control variables
}

// New allocates and initialises a model described by dat
func New(dat *inp.FluidData) (o *Model, err error) {
	if dat.Type != inp.Flamelet {
		return nil, chk.Err("fluid %q: type must be %q; %q is invalid", dat.Name, inp.Flamelet, dat.Type)
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
//  dat -- user scalars, source and look-up names, and renamed manifold variables; may be nil
func (o *Model) Init(prms dbf.Params, mfd manifold.Manifold, dat *inp.FluidData) (err error) {

	// parameters
	o.NctrlVars = 2
	o.Pop = 101325.0
	o.Log = zerolog.Nop()
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "pop":
			o.Pop = p.V
		case "nctrl":
			o.NctrlVars = int(p.V)
		default:
			return chk.Err("flamelet: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.NctrlVars != 2 && o.NctrlVars != 3 {
		return chk.Err("flamelet: number of control variables must be 2 or 3; nctrl = %d is invalid", o.NctrlVars)
	}

	// names
	o.ScalarNames, o.LookupNames = nil, nil
	o.SourceNames = []string{dat.Native("source/pv", SourcePVName)}
	if dat != nil {
		if len(dat.Sources) != 2*len(dat.Scalars) {
			return chk.Err("flamelet: %d source names are required for %d user scalars; %d were given", 2*len(dat.Scalars), len(dat.Scalars), len(dat.Sources))
		}
		o.ScalarNames = dat.Scalars
		o.SourceNames = append(o.SourceNames, dat.Sources...)
		o.LookupNames = dat.Lookups
	}

	// control variables
	controls := []string{dat.Native("progvar", manifold.ProgressVariable), dat.Native("enthalpy", manifold.EnthalpyTot)}
	if o.NctrlVars == 3 {
		controls = append(controls, dat.Native("mixfrac", manifold.MixtureFraction))
	}
	o.ctrl = make([]float64, o.NctrlVars)

	// groups
	natives := make([]string, nTD)
	for i, n := range tdnames {
		natives[i] = dat.Native(n, n)
	}
	for op, names := range [][]string{natives, o.SourceNames, o.LookupNames} {
		o.maps[op], err = manifold.NewGroup(mfd, controls, names)
		if err != nil {
			return chk.Err("flamelet: cannot build group %q:\n%v", Op(op), err)
		}
	}
	o.td = make([]float64, nTD)
	o.Src = make([]float64, len(o.SourceNames))
	o.Look = make([]float64, len(o.LookupNames))
	return
}

// GetPrms gets (an example) of parameters
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "pop", V: 101325}, // [Pa]
			&dbf.P{N: "nctrl", V: 2},    // [-]
		}
	}
	return dbf.Params{
		&dbf.P{N: "pop", V: o.Pop},
		&dbf.P{N: "nctrl", V: float64(o.NctrlVars)},
	}
}

// NumScalars returns the number of transported scalars: control variables and user scalars
func (o *Model) NumScalars() int {
	return o.NctrlVars + len(o.ScalarNames)
}

// Evaluate looks up a group of variables
//  scalars -- control variables followed by user scalars; the latter are not used
//  out     -- output values; len(out) must equal the size of the group
func (o *Model) Evaluate(op Op, scalars, out []float64) (extrap bool, err error) {
	if op < TD || op > Lookup {
		return false, chk.Err("flamelet: group %d is invalid", op)
	}
	if len(scalars) < o.NctrlVars {
		return false, chk.Err("flamelet: %d control variables are required; %d scalars were given", o.NctrlVars, len(scalars))
	}
	copy(o.ctrl, scalars[:o.NctrlVars])
	extrap, err = o.maps[op].Eval(out, o.ctrl...)
	if err != nil {
		return false, chk.Err("flamelet: cannot evaluate group %q:\n%v", op, err)
	}
	if extrap {
		o.Mon.Extrapolated(op.String())
		o.Log.Debug().Str("group", op.String()).Floats64("controls", o.ctrl).Msg("manifold extrapolated")
	}
	return
}

// SetTDStateT computes temperature, transport coefficients and density from the scalars
//  Note: T is not used; the temperature is looked up. The extrapolation flag is reset
func (o *Model) SetTDStateT(T float64, scalars []float64) (err error) {
	o.Extrap, err = o.Evaluate(TD, scalars, o.td)
	if err != nil {
		return
	}
	o.T = o.td[iT]
	o.Cp = o.td[iCp]
	o.Mu = o.td[iMu]
	o.Kt = o.td[iKt]
	o.Diff = o.td[iDiff]
	o.Mw = o.td[iMw]
	o.Rho = o.Pop / (o.Mw * Ru * o.T)
	o.Cv = o.Cp - Ru/o.Mw
	return
}

// SetSources looks up the source terms
func (o *Model) SetSources(scalars []float64) (err error) {
	extrap, err := o.Evaluate(Sources, scalars, o.Src)
	o.Extrap = o.Extrap || extrap
	return
}

// SetLookups looks up the passive variables
func (o *Model) SetLookups(scalars []float64) (err error) {
	extrap, err := o.Evaluate(Lookup, scalars, o.Look)
	o.Extrap = o.Extrap || extrap
	return
}

// SourcePV returns the source term of the progress variable
func (o *Model) SourcePV() float64 {
	return o.Src[0]
}

// UserSource returns the net source term of user scalar i
//
//   S = S_prod + S_cons・Y
//
func (o *Model) UserSource(i int, Y float64) float64 {
	return o.Src[1+2*i] + o.Src[2+2*i]*Y
}
