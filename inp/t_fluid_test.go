// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_fluid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fluid01. json and yaml descriptions")

	dat, err := ReadFluid("data/air.json")
	if err != nil {
		tst.Errorf("ReadFluid failed:\n%v", err)
		return
	}
	io.Pforan("%+v\n", dat)
	chk.String(tst, dat.Name, "air")
	chk.String(tst, dat.Type, DataDriven)
	chk.String(tst, dat.Method, "mlp")
	chk.String(tst, dat.ManifoldPath(), filepath.Join("data", "air-mlp.json"))
	chk.Int(tst, "number of prms", len(dat.Prms), 4)
	chk.String(tst, dat.Prms[2].N, "e0")
	chk.Float64(tst, "e0", 1e-15, dat.Prms[2].V, 2e5)
	chk.String(tst, dat.Native("d2s/drho2", "d2sdrho2"), "d2s_drho2")
	chk.String(tst, dat.Native("d2s/de2", "d2sde2"), "d2sde2")

	dat, err = ReadFluid("data/air.yaml")
	if err != nil {
		tst.Errorf("ReadFluid failed:\n%v", err)
		return
	}
	chk.String(tst, dat.Type, DataDriven)
	chk.String(tst, dat.Method, "lut")
	chk.String(tst, dat.ManifoldPath(), "/tmp/dfluid/air.yaml")
	chk.Float64(tst, "relax", 1e-15, dat.Prms[0].V, 0.8)

	var nilData *FluidData
	chk.String(tst, nilData.Native("entropy", "s"), "s")
}

func Test_fluid02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fluid02. flamelet description in toml")

	dat, err := ReadFluid("data/flame.toml")
	if err != nil {
		tst.Errorf("ReadFluid failed:\n%v", err)
		return
	}
	chk.String(tst, dat.Type, Flamelet)
	chk.Strings(tst, "scalars", dat.Scalars, []string{"Y_CO", "Y_NOx"})
	chk.Strings(tst, "sources", dat.Sources, []string{"ProdRateTot_CO", "ConsRateTot_CO", "ProdRateTot_NOx", "ConsRateTot_NOx"})
	chk.Strings(tst, "lookups", dat.Lookups, []string{"HeatRelease"})
	chk.Int(tst, "number of prms", len(dat.Prms), 2)
	chk.Float64(tst, "nctrl", 1e-15, dat.Prms[1].V, 3)

	_, err = ReadFluid("data/badflame.yaml")
	if err == nil {
		tst.Errorf("ReadFluid should have failed with missing source name\n")
	}
}

func Test_fluid03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fluid03. errors and round trips")

	for _, dat := range []*FluidData{
		{Name: "a", Type: "solid", File: "a.json"},
		{Name: "b"},
	} {
		if err := dat.PostProcess(); err == nil {
			tst.Errorf("PostProcess of %q should have failed\n", dat.Name)
		}
	}
	if _, err := ReadFluid("data/missing.json"); err == nil {
		tst.Errorf("ReadFluid should have failed with missing file\n")
	}

	dir := tst.TempDir()
	if err := WriteData(filepath.Join(dir, "x.csv"), 1); err == nil {
		tst.Errorf("WriteData should have failed with unknown extension\n")
	}
	if err := ReadData("data/air.json.bak", new(FluidData)); err == nil {
		tst.Errorf("ReadData should have failed\n")
	}

	type table struct {
		Name   string    `json:"name" yaml:"name" toml:"name"`
		Values []float64 `json:"values" yaml:"values" toml:"values"`
	}
	for _, ext := range []string{".json", ".yaml", ".toml"} {
		fn := filepath.Join(dir, "sub", "table"+ext)
		a := table{Name: "t", Values: []float64{0.1, 1.0 / 3.0, 2e5}}
		if err := WriteData(fn, &a); err != nil {
			tst.Errorf("WriteData failed:\n%v", err)
			return
		}
		var b table
		if err := ReadData(fn, &b); err != nil {
			tst.Errorf("ReadData failed:\n%v", err)
			return
		}
		chk.String(tst, b.Name, a.Name)
		chk.Array(tst, "values"+ext, 1e-15, b.Values, a.Values)
	}
}
