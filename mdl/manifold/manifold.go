// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package manifold implements black-box manifolds (trained networks or look-up tables)
// returning thermodynamic, transport and source quantities from a few control variables
package manifold

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Manifold defines a surrogate mapping control variables onto named outputs
//  Note: implementations keep workspaces; thus a Manifold must not be shared by goroutines
type Manifold interface {
	Inputs() []string                                // names of control variables in native order
	Outputs() []string                               // names of available outputs
	Predict(y, x []float64, idx []int) (extrap bool) // y[k] = output idx[k] at x; extrap indicates x outside domain
}

// native names of the density-energy convention
const (
	Density   = "Density"
	Energy    = "Energy"
	Entropy   = "s"
	DsDe      = "dsde_rho"
	DsDrho    = "dsdrho_e"
	D2sDe2    = "d2sde2"
	D2sDeDrho = "d2sdedrho"
	D2sDrho2  = "d2sdrho2"
)

// native names of the progress-variable-enthalpy convention
const (
	ProgressVariable = "ProgressVariable"
	EnthalpyTot      = "EnthalpyTot"
	MixtureFraction  = "MixtureFraction"
)

// backend kinds
const (
	KindMLP = "mlp" // multilayer perceptron
	KindLUT = "lut" // look-up table
)

// New reads a manifold of given kind from file
func New(kind, fn string) (mfd Manifold, err error) {
	allocator, ok := allocators[strings.ToLower(kind)]
	if !ok {
		return nil, chk.Err("manifold kind %q is not available; options are %q and %q", kind, KindMLP, KindLUT)
	}
	return allocator(fn)
}

// allocators holds all available backends
var allocators = map[string]func(fn string) (Manifold, error){}

// index returns the position of name in names or -1
func index(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
