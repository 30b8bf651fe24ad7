// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// kinds of fluid models
const (
	DataDriven = "datadriven" // equation of state from an entropy manifold
	Flamelet   = "flamelet"   // flamelet manifold with transport and source terms
)

// FluidData holds the description of a fluid model
type FluidData struct {

	// input
	Name    string            `json:"name" yaml:"name" toml:"name"`          // name of fluid
	Type    string            `json:"type" yaml:"type" toml:"type"`          // "datadriven" or "flamelet"
	Method  string            `json:"method" yaml:"method" toml:"method"`    // manifold backend: "mlp" or "lut"
	File    string            `json:"file" yaml:"file" toml:"file"`          // manifold file; relative to the directory of the description file
	Prms    dbf.Params        `json:"prms" yaml:"prms" toml:"prms"`          // model parameters
	Scalars []string          `json:"scalars" yaml:"scalars" toml:"scalars"` // names of user-defined scalars (flamelet)
	Sources []string          `json:"sources" yaml:"sources" toml:"sources"` // production and consumption terms; two per user scalar (flamelet)
	Lookups []string          `json:"lookups" yaml:"lookups" toml:"lookups"` // passive look-up quantities (flamelet)
	Names   map[string]string `json:"names" yaml:"names" toml:"names"`       // native names of manifold variables keyed by symbolic name

	// derived
	Dir string `json:"-" yaml:"-" toml:"-"` // directory of description file
}

// ReadFluid reads a fluid description file
func ReadFluid(fn string) (o *FluidData, err error) {
	o = new(FluidData)
	err = ReadData(fn, o)
	if err != nil {
		return nil, err
	}
	o.Dir = filepath.Dir(fn)
	err = o.PostProcess()
	if err != nil {
		return nil, err
	}
	return
}

// PostProcess checks and normalises data
func (o *FluidData) PostProcess() (err error) {
	o.Type = strings.ToLower(o.Type)
	o.Method = strings.ToLower(o.Method)
	switch o.Type {
	case DataDriven, Flamelet:
	case "":
		o.Type = DataDriven
	default:
		return chk.Err("fluid %q: type %q is incorrect; options are %q and %q", o.Name, o.Type, DataDriven, Flamelet)
	}
	if o.File == "" {
		return chk.Err("fluid %q: manifold file must be given", o.Name)
	}
	if o.Type == Flamelet && len(o.Sources) != 2*len(o.Scalars) {
		return chk.Err("fluid %q: %d source names are required for %d user scalars (production and consumption); %d were given",
			o.Name, 2*len(o.Scalars), len(o.Scalars), len(o.Sources))
	}
	return
}

// ManifoldPath returns the full path to the manifold file
func (o *FluidData) ManifoldPath() string {
	if filepath.IsAbs(o.File) || o.Dir == "" {
		return o.File
	}
	return filepath.Join(o.Dir, o.File)
}

// Native returns the native name of a manifold variable, or def if it was not renamed
func (o *FluidData) Native(key, def string) string {
	if o == nil {
		return def
	}
	if n, ok := o.Names[key]; ok && n != "" {
		return n
	}
	return def
}
