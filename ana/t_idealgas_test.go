// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/dfluid/mdl/manifold"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_idealgas01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("idealgas01. derivatives of entropy")

	var gas IdealGas
	gas.Init()
	s := func(rho, e float64) float64 { v, _, _, _, _, _ := gas.Entropy(rho, e); return v }
	sE := func(rho, e float64) float64 { _, v, _, _, _, _ := gas.Entropy(rho, e); return v }
	sR := func(rho, e float64) float64 { _, _, v, _, _, _ := gas.Entropy(rho, e); return v }
	for _, x := range [][]float64{{1.2, 2e5}, {0.3, 1.2e5}, {15, 9e5}} {
		rho, e := x[0], x[1]
		_, dsde, dsdrho, d2sde2, d2sdedrho, d2sdrho2 := gas.Entropy(rho, e)
		io.Pforan("ρ=%g e=%g: sₑ=%g s_ρ=%g\n", rho, e, dsde, dsdrho)
		chk.DerivScaSca(tst, "sₑ", 1e-8, dsde, e, 1e-1, chk.Verbose, func(t float64) float64 { return s(rho, t) })
		chk.DerivScaSca(tst, "s_ρ", 1e-6, dsdrho, rho, 1e-4, chk.Verbose, func(t float64) float64 { return s(t, e) })
		chk.DerivScaSca(tst, "sₑₑ", 1e-12, d2sde2, e, 1e-1, chk.Verbose, func(t float64) float64 { return sE(rho, t) })
		chk.DerivScaSca(tst, "sₑρ", 1e-12, d2sdedrho, rho, 1e-4, chk.Verbose, func(t float64) float64 { return sE(t, e) })
		chk.DerivScaSca(tst, "s_ρρ", 1e-4, d2sdrho2, rho, 1e-4, chk.Verbose, func(t float64) float64 { return sR(t, e) })
	}

	// state functions
	chk.Float64(tst, "T", 1e-12, gas.T(gas.E0), 288.15)
	rho, e := gas.RhoE(gas.P(1.2, 2e5), gas.T(2e5))
	chk.Float64(tst, "ρ", 1e-14, rho, 1.2)
	chk.Float64(tst, "e", 1e-9, e, 2e5)
	chk.Float64(tst, "γ", 1e-15, gas.Gamma(), gas.Cp()/gas.Cv)
}

func Test_idealgas02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("idealgas02. manifold and table")

	var gas IdealGas
	gas.Init()
	m := manifold.Manifold(gas)
	chk.Strings(tst, "inputs", m.Inputs(), []string{manifold.Density, manifold.Energy})
	y := make([]float64, 2)
	extrap := m.Predict(y, []float64{1.2, 2e5}, []int{2, 0})
	chk.Float64(tst, "s_ρ", 1e-15, y[0], -gas.R/1.2)
	chk.Float64(tst, "s", 1e-12, y[1], gas.Cv*math.Log(2e5/gas.E0))
	if extrap {
		tst.Errorf("point is inside domain\n")
	}
	if !m.Predict(y, []float64{25, 2e5}, []int{0}) {
		tst.Errorf("point is outside domain\n")
	}

	rho := utl.LinSpace(0.5, 2, 4)
	e := utl.LinSpace(1e5, 3e5, 3)
	dat := gas.Table(rho, e)
	var lut manifold.LUT
	if err := lut.Init(dat); err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	y = make([]float64, 6)
	names := lut.Outputs()
	idx := make([]int, len(names))
	for i := range idx {
		idx[i] = i
	}
	lut.Predict(y, []float64{rho[2], e[1]}, idx)
	var v [6]float64
	v[0], v[1], v[2], v[3], v[4], v[5] = gas.Entropy(rho[2], e[1])
	for i, n := range names {
		j := -1
		for k, m := range gas.Outputs() {
			if m == n {
				j = k
			}
		}
		chk.Float64(tst, n, 1e-15, y[i], v[j])
	}
}
