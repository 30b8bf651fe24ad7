// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"
	"testing"

	"github.com/cpmech/dfluid/ana"
	"github.com/cpmech/dfluid/inp"
	"github.com/cpmech/dfluid/mdl/flamelet"
	"github.com/cpmech/dfluid/mdl/fluid"
	"github.com/cpmech/dfluid/mdl/manifold"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_sweep01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sweep01. data-driven table")

	var gas ana.IdealGas
	gas.Init()
	var mdl fluid.Model
	err := mdl.Init(mdl.GetPrms(true), gas, nil)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	buf := Sweep(&mdl, utl.LinSpace(1, 2, 3), []float64{2e5, 3e5})
	io.Pf("%v", buf.String())
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	chk.Int(tst, "number of lines", len(lines), 7)
	chk.Strings(tst, "header", strings.Fields(lines[0])[:4], []string{"rho", "e", "T", "P"})
	cols := strings.Fields(lines[2])
	chk.Int(tst, "number of columns", len(cols), 11)
	chk.String(tst, cols[1], "3.000000e+05")
	chk.String(tst, cols[2], io.Sf("%.6e", gas.T(3e5)))
	chk.String(tst, cols[10], "false")
}

func Test_sweep02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sweep02. flamelet table")

	dat := &manifold.LutData{
		Axes: []manifold.AxisData{
			{Name: manifold.ProgressVariable, Values: []float64{0, 1}},
			{Name: manifold.EnthalpyTot, Values: []float64{-1, 1}},
		},
		Data: map[string][]float64{
			"Temperature":          {300, 2000, 300, 2000},
			"Cp":                   {1000, 1200, 1000, 1200},
			"ViscosityDyn":         {2e-5, 5e-5, 2e-5, 5e-5},
			"Conductivity":         {0.02, 0.1, 0.02, 0.1},
			"DiffusionCoefficient": {2e-5, 1e-4, 2e-5, 1e-4},
			"MolarWeightMix":       {0.029, 0.028, 0.029, 0.028},
			"ProdRateTot_PV":       {0, 0, 10, 10},
			"HeatRelease":          {0, 1, 2, 3},
		},
	}
	var lut manifold.LUT
	if err := lut.Init(dat); err != nil {
		tst.Errorf("LUT Init failed:\n%v", err)
		return
	}
	var mdl flamelet.Model
	if err := mdl.Init(nil, &lut, &inp.FluidData{Lookups: []string{"HeatRelease"}}); err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	buf, err := FlameletSweep(&mdl, []float64{0, 0.5, 1}, []float64{0, 2}, 0)
	if err != nil {
		tst.Errorf("FlameletSweep failed:\n%v", err)
		return
	}
	io.Pf("%v", buf.String())
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	chk.Int(tst, "number of lines", len(lines), 7)
	header := strings.Fields(lines[0])
	chk.Strings(tst, "header", header[9:], []string{"ProdRateTot_PV", "HeatRelease", "extrap"})
	chk.String(tst, strings.Fields(lines[1])[11], "false")
	chk.String(tst, strings.Fields(lines[2])[11], "true")
}
