// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

// indices of raw manifold outputs
const (
	iS         = iota // s
	iDsDe             // ∂s/∂e at constant ρ
	iDsDrho           // ∂s/∂ρ at constant e
	iD2sDe2           // ∂²s/∂e²
	iD2sDeDrho        // ∂²s/∂e∂ρ
	iD2sDrho2         // ∂²s/∂ρ²
	nRaw
)

// State holds the thermodynamic state computed from one manifold evaluation
type State struct {

	// control variables
	Rho float64 // density
	E   float64 // static (internal) energy

	// raw manifold outputs
	S         float64 // entropy
	DsDe      float64 // ∂s/∂e at constant ρ
	DsDrho    float64 // ∂s/∂ρ at constant e
	D2sDe2    float64 // ∂²s/∂e²
	D2sDeDrho float64 // ∂²s/∂e∂ρ
	D2sDrho2  float64 // ∂²s/∂ρ²

	// derived
	T      float64 // temperature
	P      float64 // pressure
	C2     float64 // squared speed of sound
	Cp     float64 // specific heat at constant pressure
	Cv     float64 // specific heat at constant volume
	Gamma  float64 // ratio of specific heats
	R      float64 // gas constant Cp - Cv
	DTDe   float64 // ∂T/∂e at constant ρ
	DTDrho float64 // ∂T/∂ρ at constant e; always zero (see derive)
	DPDe   float64 // ∂P/∂e at constant ρ
	DPDrho float64 // ∂P/∂ρ at constant e

	// flags
	Extrap bool // manifold was evaluated outside its domain
}

// H returns the enthalpy h = e + P/ρ
func (o *State) H() float64 {
	return o.E + o.P/o.Rho
}

// derive computes the state from the entropy potential and its derivatives
//
//   T = 1/sₑ
//   P = -ρ² T s_ρ
//   ∂T/∂e = -sₑₑ/sₑ²
//   ∂P/∂e = -ρ² ∂T/∂e s_ρ
//   ∂P/∂ρ = -2ρ T s_ρ - ρ² T s_ρρ
//
//  Note: ∂T/∂ρ is taken as zero. This is a simplification of the manifold-derivative
//        scheme, not a thermodynamic identity; it enters the P-T Jacobian as is
//  Note: the grouping of terms of c² must not be changed since its terms nearly cancel
func derive(rho, e float64, raw *[nRaw]float64, extrap bool) (o State) {

	// raw
	s, sE, sRho := raw[iS], raw[iDsDe], raw[iDsDrho]
	sEE, sERho, sRhoRho := raw[iD2sDe2], raw[iD2sDeDrho], raw[iD2sDrho2]

	// speed of sound
	blue := sRho*(2-rho*(1/sE)*sERho) + rho*sRhoRho
	green := -(1/sE)*sEE*sRho + sERho
	o.C2 = -rho * (1 / sE) * (blue - rho*green*(sRho/sE))

	// primary
	o.T = 1.0 / sE
	o.P = -(rho * rho) * o.T * sRho

	// derivatives
	o.DTDe = -(1 / (sE * sE)) * sEE
	o.DTDrho = 0.0
	o.DPDe = -(rho * rho) * o.DTDe * sRho
	o.DPDrho = -2*rho*o.T*sRho - (rho*rho)*o.T*sRhoRho

	// secondary
	o.Cp = (1 / o.DTDe) * (1 + (1/rho)*o.DPDe)
	o.Cv = 1 / o.DTDe
	o.Gamma = o.Cp / o.Cv
	o.R = o.Cp - o.Cv

	// control variables and raw outputs
	o.Rho, o.E = rho, e
	o.S, o.DsDe, o.DsDrho = s, sE, sRho
	o.D2sDe2, o.D2sDeDrho, o.D2sDrho2 = sEE, sERho, sRhoRho
	o.Extrap = extrap
	return
}
