// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Pair defines a pair of thermodynamic variables used as targets of inversions
type Pair int

// pairs of targets
const (
	PT   Pair = iota // pressure and temperature
	PRho             // pressure and density
	RhoT             // density and temperature
	HS               // enthalpy and entropy
	PS               // pressure and entropy
)

// pairnames holds the names of pairs
var pairnames = []string{"PT", "Prho", "rhoT", "hs", "Ps"}

// String returns the name of pair
func (o Pair) String() string {
	if o < 0 || int(o) >= len(pairnames) {
		return "invalid"
	}
	return pairnames[o]
}

// ParsePair returns the pair corresponding to name (case insensitive)
func ParsePair(name string) (Pair, error) {
	for i, n := range pairnames {
		if strings.EqualFold(n, name) {
			return Pair(i), nil
		}
	}
	return -1, chk.Err("fluid: pair %q is invalid; options are %v", name, pairnames)
}

// Invert computes the state from the pair of targets (a,b)
//  Note: for PRho, a is the pressure and b the density; for RhoT, a is the density
func (o *Model) Invert(p Pair, a, b float64) (Result, error) {
	switch p {
	case PT:
		return o.SetPT(a, b)
	case PRho:
		return o.SetPRho(a, b)
	case RhoT:
		return o.SetRhoT(a, b)
	case HS:
		return o.SetHS(a, b)
	case PS:
		return o.SetPS(a, b)
	}
	return Result{}, chk.Err("fluid: pair %d is invalid", p)
}

// SetPT computes the state with given pressure and temperature
func (o *Model) SetPT(P, T float64) (Result, error) {
	res := o.solve2(pressure(P, o.TolP), temperature(T, o.TolT))
	return res, o.finish("PT", res)
}

// SetPRho computes the state with given pressure and density
func (o *Model) SetPRho(P, rho float64) (Result, error) {
	e, res := o.solve1(rho, pressure(P, o.TolP))
	o.SetRhoE(rho, e)
	return res, o.finish("Prho", res)
}

// SetEnergyPRho computes the energy corresponding to given pressure and density
//  Note: State is not modified
func (o *Model) SetEnergyPRho(P, rho float64) (e float64, res Result, err error) {
	prev := o.State
	e, res = o.solve1(rho, pressure(P, o.TolP))
	o.State = prev
	err = o.finish("Prho", res)
	return
}

// SetRhoT computes the state with given density and temperature
func (o *Model) SetRhoT(rho, T float64) (Result, error) {
	e, res := o.solve1(rho, temperature(T, o.TolT))
	o.SetRhoE(rho, e)
	return res, o.finish("rhoT", res)
}

// SetHS computes the state with given enthalpy and entropy
func (o *Model) SetHS(h, s float64) (Result, error) {
	res := o.solve2(enthalpy(h, o.TolH), entropy(s, o.TolS))
	return res, o.finish("hs", res)
}

// SetPS computes the state with given pressure and entropy
func (o *Model) SetPS(P, s float64) (Result, error) {
	res := o.solve2(pressure(P, o.TolP), entropy(s, o.TolS))
	return res, o.finish("Ps", res)
}

// targets ////////////////////////////////////////////////////////////////////////////////////////

func pressure(val, tol float64) *target {
	return &target{val, tol, getP, dPdRho, dPdE}
}

func temperature(val, tol float64) *target {
	return &target{val, tol, getT, dTdRho, dTdE}
}

func enthalpy(val, tol float64) *target {
	return &target{val, tol, getH, dHdRho, dHdE}
}

func entropy(val, tol float64) *target {
	return &target{val, tol, getS, dSdRho, dSdE}
}

func getP(s *State) float64   { return s.P }
func dPdRho(s *State) float64 { return s.DPDrho }
func dPdE(s *State) float64   { return s.DPDe }

func getT(s *State) float64   { return s.T }
func dTdRho(s *State) float64 { return s.DTDrho }
func dTdE(s *State) float64   { return s.DTDe }

// h = e + P/ρ
func getH(s *State) float64   { return s.H() }
func dHdRho(s *State) float64 { return -s.P*(1.0/(s.Rho*s.Rho)) + s.DPDrho/s.Rho }
func dHdE(s *State) float64   { return 1.0 + s.DPDe/s.Rho }

func getS(s *State) float64   { return s.S }
func dSdRho(s *State) float64 { return s.DsDrho }
func dSdE(s *State) float64   { return s.DsDe }
