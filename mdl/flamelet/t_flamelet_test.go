// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flamelet

import (
	"testing"

	"github.com/cpmech/dfluid/inp"
	"github.com/cpmech/dfluid/mdl/manifold"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// linear variables of the test manifold: f(c,h,z) = a + b・c + d・h + g・z
var linear = map[string][4]float64{
	"Temperature":          {300, 1500, 1e-3, 50},
	"Cp":                   {1000, 200, 1e-4, 10},
	"ViscosityDyn":         {1.8e-5, 2e-5, 1e-11, 1e-6},
	"Conductivity":         {0.025, 0.05, 1e-8, 1e-3},
	"DiffusionCoefficient": {2e-5, 1e-5, 1e-11, 1e-6},
	"MolarWeightMix":       {0.029, -0.002, 0, 0.001},
	"ProdRateTot_PV":       {0, 100, 1e-4, 5},
	"Prod_CO":              {1, 2, 0, 0},
	"Cons_CO":              {-3, -1, 0, 0},
	"HeatRelease":          {0, 1e6, 0, 0},
}

func value(name string, c, h, z float64) float64 {
	k := linear[name]
	return k[0] + k[1]*c + k[2]*h + k[3]*z
}

// table returns a table with 2 or 3 control variables
func table(nctrl int) *manifold.LutData {
	C := utl.LinSpace(0, 1, 5)
	H := utl.LinSpace(-2e5, 2e5, 4)
	Z := []float64{0}
	dat := &manifold.LutData{
		Axes: []manifold.AxisData{{Name: manifold.ProgressVariable, Values: C}, {Name: manifold.EnthalpyTot, Values: H}},
		Data: make(map[string][]float64),
	}
	if nctrl == 3 {
		Z = utl.LinSpace(0, 1, 3)
		dat.Axes = append(dat.Axes, manifold.AxisData{Name: manifold.MixtureFraction, Values: Z})
	}
	for name := range linear {
		v := make([]float64, len(C)*len(H)*len(Z))
		for k, z := range Z {
			for j, h := range H {
				for i, c := range C {
					v[i+len(C)*(j+len(H)*k)] = value(name, c, h, z)
				}
			}
		}
		dat.Data[name] = v
	}
	return dat
}

func newModel(tst *testing.T, nctrl int, dat *inp.FluidData) *Model {
	var lut manifold.LUT
	err := lut.Init(table(nctrl))
	if err != nil {
		tst.Fatalf("LUT Init failed:\n%v", err)
	}
	var mdl Model
	prms := dbf.Params{&dbf.P{N: "pop", V: 2e5}, &dbf.P{N: "nctrl", V: float64(nctrl)}}
	err = mdl.Init(prms, &lut, dat)
	if err != nil {
		tst.Fatalf("Init failed:\n%v", err)
	}
	return &mdl
}

func Test_flamelet01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flamelet01. thermodynamic state")

	mdl := newModel(tst, 2, nil)
	chk.Int(tst, "number of scalars", mdl.NumScalars(), 2)
	c, h := 0.4, 5e4
	err := mdl.SetTDStateT(0, []float64{c, h})
	if err != nil {
		tst.Errorf("SetTDStateT failed:\n%v", err)
		return
	}
	io.Pforan("T = %v  ρ = %v  Cp = %v  Cv = %v\n", mdl.T, mdl.Rho, mdl.Cp, mdl.Cv)
	T := value("Temperature", c, h, 0)
	M := value("MolarWeightMix", c, h, 0)
	chk.Float64(tst, "T", 1e-10, mdl.T, T)
	chk.Float64(tst, "Cp", 1e-10, mdl.Cp, value("Cp", c, h, 0))
	chk.Float64(tst, "μ", 1e-15, mdl.Mu, value("ViscosityDyn", c, h, 0))
	chk.Float64(tst, "k", 1e-15, mdl.Kt, value("Conductivity", c, h, 0))
	chk.Float64(tst, "D", 1e-15, mdl.Diff, value("DiffusionCoefficient", c, h, 0))
	chk.Float64(tst, "M", 1e-15, mdl.Mw, M)

	// ideal gas closure
	chk.Float64(tst, "ρ", 1e-12, mdl.Rho, 2e5/(M*Ru*T))
	chk.Float64(tst, "P", 1e-6, mdl.Rho*Ru/mdl.Mw*mdl.T, mdl.Pop)
	chk.Float64(tst, "Cp - Cv", 1e-10, mdl.Cp-mdl.Cv, Ru/M)
	if mdl.Extrap {
		tst.Errorf("state is inside table\n")
	}
}

func Test_flamelet02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flamelet02. sources and look-ups")

	dat := &inp.FluidData{
		Scalars: []string{"Y_CO"},
		Sources: []string{"Prod_CO", "Cons_CO"},
		Lookups: []string{"HeatRelease"},
	}
	mdl := newModel(tst, 2, dat)
	chk.Int(tst, "number of scalars", mdl.NumScalars(), 3)
	chk.Strings(tst, "source names", mdl.SourceNames, []string{"ProdRateTot_PV", "Prod_CO", "Cons_CO"})

	c, h, Y := 0.5, -1e5, 0.2
	scalars := []float64{c, h, Y}
	err := mdl.SetTDStateT(0, scalars)
	if err == nil {
		err = mdl.SetSources(scalars)
	}
	if err == nil {
		err = mdl.SetLookups(scalars)
	}
	if err != nil {
		tst.Errorf("evaluation failed:\n%v", err)
		return
	}
	chk.Float64(tst, "S_pv", 1e-10, mdl.SourcePV(), value("ProdRateTot_PV", c, h, 0))
	chk.Float64(tst, "S_CO", 1e-12, mdl.UserSource(0, Y), value("Prod_CO", c, h, 0)+value("Cons_CO", c, h, 0)*Y)
	chk.Float64(tst, "heat release", 1e-8, mdl.Look[0], value("HeatRelease", c, h, 0))

	// size mismatch
	if _, err = mdl.Evaluate(Sources, scalars, make([]float64, 2)); err == nil {
		tst.Errorf("Evaluate should have failed with wrong output size\n")
	}
	if _, err = mdl.Evaluate(TD, []float64{c}, make([]float64, nTD)); err == nil {
		tst.Errorf("Evaluate should have failed with missing control variable\n")
	}
	if _, err = mdl.Evaluate(Op(5), scalars, nil); err == nil {
		tst.Errorf("Evaluate should have failed with invalid group\n")
	}
}

func Test_flamelet03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flamelet03. mixture fraction and extrapolation")

	mdl := newModel(tst, 3, nil)
	c, h, z := 0.3, 1e5, 0.7
	err := mdl.SetTDStateT(0, []float64{c, h, z})
	if err != nil {
		tst.Errorf("SetTDStateT failed:\n%v", err)
		return
	}
	chk.Float64(tst, "T", 1e-10, mdl.T, value("Temperature", c, h, z))
	chk.Float64(tst, "M", 1e-15, mdl.Mw, value("MolarWeightMix", c, h, z))
	if mdl.Extrap {
		tst.Errorf("state is inside table\n")
	}

	// TD inside, sources outside: flag is aggregated
	err = mdl.SetSources([]float64{1.5, h, z})
	if err != nil {
		tst.Errorf("SetSources failed:\n%v", err)
		return
	}
	if !mdl.Extrap {
		tst.Errorf("sources were extrapolated\n")
	}
	err = mdl.SetLookups([]float64{c, h, z})
	if err != nil {
		tst.Errorf("SetLookups failed:\n%v", err)
		return
	}
	if !mdl.Extrap {
		tst.Errorf("flag must remain raised until the next thermodynamic evaluation\n")
	}

	// reset
	err = mdl.SetTDStateT(0, []float64{c, h, z})
	if err != nil {
		tst.Errorf("SetTDStateT failed:\n%v", err)
		return
	}
	if mdl.Extrap {
		tst.Errorf("flag must be reset\n")
	}
	err = mdl.SetTDStateT(0, []float64{c, 3e5, z})
	if err != nil {
		tst.Errorf("SetTDStateT failed:\n%v", err)
		return
	}
	if !mdl.Extrap {
		tst.Errorf("enthalpy is outside table\n")
	}
	chk.Float64(tst, "T (extrapolated)", 1e-9, mdl.T, value("Temperature", c, 3e5, z))
}

func Test_flamelet04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flamelet04. configuration errors")

	var lut manifold.LUT
	if err := lut.Init(table(2)); err != nil {
		tst.Errorf("LUT Init failed:\n%v", err)
		return
	}
	var mdl Model
	for i, prms := range []dbf.Params{
		{&dbf.P{N: "nctrl", V: 4}},
		{&dbf.P{N: "nctrl", V: 3}},
		{&dbf.P{N: "pressure", V: 1}},
	} {
		if err := mdl.Init(prms, &lut, nil); err == nil {
			tst.Errorf("test %d: Init should have failed\n", i)
		} else {
			io.Pfgrey("%v\n", err)
		}
	}
	for i, dat := range []*inp.FluidData{
		{Scalars: []string{"Y"}, Sources: []string{"Prod_CO"}},
		{Scalars: []string{"Y"}, Sources: []string{"Prod_CO", "Cons_NO"}},
		{Lookups: []string{"Missing"}},
		{Names: map[string]string{"Temperature": "T"}},
	} {
		if err := mdl.Init(nil, &lut, dat); err == nil {
			tst.Errorf("test %d: Init should have failed\n", i)
		}
	}

	// renamed variables
	err := mdl.Init(nil, &lut, &inp.FluidData{Names: map[string]string{"Cp": "Cp", "progvar": manifold.ProgressVariable}})
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
	}
	chk.Float64(tst, "pop", 1e-15, mdl.Pop, 101325)

	// wrong type
	if _, err = New(&inp.FluidData{Type: inp.DataDriven}); err == nil {
		tst.Errorf("New should have failed with data-driven type\n")
	}
}
