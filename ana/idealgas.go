// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions used to verify and to generate manifolds
package ana

import (
	"math"

	"github.com/cpmech/dfluid/mdl/manifold"
)

// IdealGas implements the entropy potential of a calorically perfect gas
//
//   s(ρ,e) = S0 + Cv ln(e/E0) - R ln(ρ/Rho0)
//
//   thus   T = e/Cv   and   P = ρ R T
//
type IdealGas struct {
	R    float64 // specific gas constant
	Cv   float64 // specific heat at constant volume
	Rho0 float64 // reference density
	E0   float64 // reference energy
	S0   float64 // entropy at reference state
	Emin float64 // domain: minimum energy
	Emax float64 // domain: maximum energy
	Rmin float64 // domain: minimum density
	Rmax float64 // domain: maximum density
}

// Init initialises data with dry air properties
func (o *IdealGas) Init() {
	o.R = 287.058        // [J/(kg・K)]
	o.Cv = 717.645       // [J/(kg・K)]
	o.Rho0 = 1.2         // [kg/m³]
	o.E0 = o.Cv * 288.15 // [J/kg]  15°C
	o.S0 = 0             // [J/(kg・K)]
	o.Rmin, o.Rmax = 0.1, 20.0
	o.Emin, o.Emax = o.Cv*150, o.Cv*1500
}

// Cp returns the specific heat at constant pressure
func (o IdealGas) Cp() float64 { return o.Cv + o.R }

// Gamma returns the ratio of specific heats
func (o IdealGas) Gamma() float64 { return o.Cp() / o.Cv }

// Entropy computes s and its first and second derivatives
func (o IdealGas) Entropy(rho, e float64) (s, dsde, dsdrho, d2sde2, d2sdedrho, d2sdrho2 float64) {
	s = o.S0 + o.Cv*math.Log(e/o.E0) - o.R*math.Log(rho/o.Rho0)
	dsde = o.Cv / e
	dsdrho = -o.R / rho
	d2sde2 = -o.Cv / (e * e)
	d2sdrho2 = o.R / (rho * rho)
	return
}

// T returns the temperature
func (o IdealGas) T(e float64) float64 { return e / o.Cv }

// P returns the pressure
func (o IdealGas) P(rho, e float64) float64 { return rho * o.R * e / o.Cv }

// C2 returns the squared speed of sound
func (o IdealGas) C2(e float64) float64 { return o.Gamma() * o.R * o.T(e) }

// RhoE returns density and energy corresponding to pressure and temperature
func (o IdealGas) RhoE(P, T float64) (rho, e float64) {
	return P / (o.R * T), o.Cv * T
}

// Inputs returns the names of control variables
func (o IdealGas) Inputs() []string {
	return []string{manifold.Density, manifold.Energy}
}

// Outputs returns the names of entropy and its derivatives
func (o IdealGas) Outputs() []string {
	return []string{manifold.Entropy, manifold.DsDe, manifold.DsDrho, manifold.D2sDe2, manifold.D2sDeDrho, manifold.D2sDrho2}
}

// Predict evaluates the potential at x = {ρ, e}
//  Note: extrap is true if x falls outside [Rmin,Rmax]×[Emin,Emax]
func (o IdealGas) Predict(y, x []float64, idx []int) (extrap bool) {
	rho, e := x[0], x[1]
	var v [6]float64
	v[0], v[1], v[2], v[3], v[4], v[5] = o.Entropy(rho, e)
	for k, j := range idx {
		y[k] = v[j]
	}
	return rho < o.Rmin || rho > o.Rmax || e < o.Emin || e > o.Emax
}

// Table tabulates the potential on a grid
func (o IdealGas) Table(rho, e []float64) (dat *manifold.LutData) {
	names := o.Outputs()
	dat = &manifold.LutData{
		Axes: []manifold.AxisData{{Name: manifold.Density, Values: rho}, {Name: manifold.Energy, Values: e}},
		Data: make(map[string][]float64),
	}
	for _, n := range names {
		dat.Data[n] = make([]float64, len(rho)*len(e))
	}
	var v [6]float64
	for j, ej := range e {
		for i, ri := range rho {
			v[0], v[1], v[2], v[3], v[4], v[5] = o.Entropy(ri, ej)
			for k, n := range names {
				dat.Data[n][i+len(rho)*j] = v[k]
			}
		}
	}
	return
}
