// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manifold

import (
	"math"
	"strings"

	"github.com/cpmech/dfluid/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// VarData holds the name and the normalisation range of a network variable
type VarData struct {
	Name string  `json:"name" yaml:"name" toml:"name"`
	Min  float64 `json:"min" yaml:"min" toml:"min"`
	Max  float64 `json:"max" yaml:"max" toml:"max"`
}

// LayerData holds the trained parameters of one dense layer
type LayerData struct {
	Activation string      `json:"activation" yaml:"activation" toml:"activation"` // e.g. "tanh", "elu", "linear"
	Weights    [][]float64 `json:"weights" yaml:"weights" toml:"weights"`          // [nneurons][ninputs]
	Biases     []float64   `json:"biases" yaml:"biases" toml:"biases"`             // [nneurons]
}

// MlpData holds the parameters of a trained multilayer perceptron
type MlpData struct {
	Inputs  []VarData   `json:"inputs" yaml:"inputs" toml:"inputs"`
	Outputs []VarData   `json:"outputs" yaml:"outputs" toml:"outputs"`
	Layers  []LayerData `json:"layers" yaml:"layers" toml:"layers"`
}

// MLP implements a multilayer perceptron with min-max normalised inputs and outputs
//
//   x̄ = (x - xmin) / (xmax - xmin)
//   a⁰ = x̄,  aˡ = σˡ(Wˡ aˡ⁻¹ + bˡ)
//   y = ymin + aᴸ (ymax - ymin)
//
type MLP struct {
	inputs  []string     // names of inputs
	outputs []string     // names of outputs
	xmin    []float64    // minimum of inputs (training range)
	xmax    []float64    // maximum of inputs
	ymin    []float64    // minimum of outputs
	ymax    []float64    // maximum of outputs
	W       []*la.Matrix // weights
	B       []la.Vector  // biases
	σ       []activation // activation functions
	a       []la.Vector  // workspace: activations of each layer
}

// add backend to factory
func init() {
	allocators[KindMLP] = func(fn string) (Manifold, error) { return ReadMLP(fn) }
}

// ReadMLP reads network parameters from file
func ReadMLP(fn string) (o *MLP, err error) {
	var dat MlpData
	err = inp.ReadData(fn, &dat)
	if err != nil {
		return
	}
	o = new(MLP)
	err = o.Init(&dat)
	if err != nil {
		return nil, chk.Err("cannot load network %q:\n%v", fn, err)
	}
	return
}

// Init initialises network
func (o *MLP) Init(dat *MlpData) (err error) {

	// variables
	nx, ny, nl := len(dat.Inputs), len(dat.Outputs), len(dat.Layers)
	if nx < 1 || ny < 1 || nl < 1 {
		return chk.Err("mlp: at least one input, one output and one layer are required. nx=%d ny=%d nlayers=%d", nx, ny, nl)
	}
	o.inputs, o.xmin, o.xmax, err = readVars(dat.Inputs)
	if err != nil {
		return
	}
	o.outputs, o.ymin, o.ymax, err = readVars(dat.Outputs)
	if err != nil {
		return
	}

	// layers
	o.W = make([]*la.Matrix, nl)
	o.B = make([]la.Vector, nl)
	o.σ = make([]activation, nl)
	o.a = make([]la.Vector, nl+1)
	o.a[0] = la.NewVector(nx)
	nprev := nx
	for l, lay := range dat.Layers {
		n := len(lay.Biases)
		if n != len(lay.Weights) {
			return chk.Err("mlp: layer %d has %d biases but %d rows of weights", l, n, len(lay.Weights))
		}
		for i, row := range lay.Weights {
			if len(row) != nprev {
				return chk.Err("mlp: row %d of weights of layer %d has %d columns; %d are required", i, l, len(row), nprev)
			}
		}
		o.σ[l], err = newActivation(lay.Activation)
		if err != nil {
			return chk.Err("mlp: layer %d:\n%v", l, err)
		}
		o.W[l] = la.NewMatrixDeep2(lay.Weights)
		o.B[l] = la.NewVector(n)
		copy(o.B[l], lay.Biases)
		o.a[l+1] = la.NewVector(n)
		nprev = n
	}
	if nprev != ny {
		return chk.Err("mlp: last layer has %d neurons but %d outputs are named", nprev, ny)
	}
	return
}

// Inputs returns the names of inputs
func (o *MLP) Inputs() []string { return o.inputs }

// Outputs returns the names of outputs
func (o *MLP) Outputs() []string { return o.outputs }

// Predict runs the forward pass
//  Note: extrap is true if any input falls outside the training range
func (o *MLP) Predict(y, x []float64, idx []int) (extrap bool) {
	for i, v := range x {
		if v < o.xmin[i] || v > o.xmax[i] {
			extrap = true
		}
		o.a[0][i] = (v - o.xmin[i]) / (o.xmax[i] - o.xmin[i])
	}
	for l, W := range o.W {
		la.MatVecMul(o.a[l+1], 1, W, o.a[l])
		for j, b := range o.B[l] {
			o.a[l+1][j] = o.σ[l](o.a[l+1][j] + b)
		}
	}
	last := o.a[len(o.W)]
	for k, j := range idx {
		y[k] = o.ymin[j] + last[j]*(o.ymax[j]-o.ymin[j])
	}
	return
}

// readVars returns names and ranges of variables
func readVars(vars []VarData) (names []string, vmin, vmax []float64, err error) {
	names = make([]string, len(vars))
	vmin = make([]float64, len(vars))
	vmax = make([]float64, len(vars))
	for i, v := range vars {
		if v.Name == "" {
			return nil, nil, nil, chk.Err("mlp: variable %d has no name", i)
		}
		if index(names[:i], v.Name) >= 0 {
			return nil, nil, nil, chk.Err("mlp: variable %q is repeated", v.Name)
		}
		if !(v.Max > v.Min) {
			return nil, nil, nil, chk.Err("mlp: range of %q is invalid: min=%g max=%g", v.Name, v.Min, v.Max)
		}
		names[i], vmin[i], vmax[i] = v.Name, v.Min, v.Max
	}
	return
}

// activation defines activation functions
type activation func(x float64) float64

// newActivation returns activation function by name
func newActivation(name string) (σ activation, err error) {
	switch strings.ToLower(name) {
	case "linear", "":
		return func(x float64) float64 { return x }, nil
	case "relu":
		return func(x float64) float64 { return math.Max(0, x) }, nil
	case "elu":
		return func(x float64) float64 {
			if x > 0 {
				return x
			}
			return math.Exp(x) - 1
		}, nil
	case "selu":
		const α, λ = 1.67326324, 1.05070098
		return func(x float64) float64 {
			if x > 0 {
				return λ * x
			}
			return λ * α * (math.Exp(x) - 1)
		}, nil
	case "gelu":
		c := math.Sqrt(2 / math.Pi)
		return func(x float64) float64 { return 0.5 * x * (1 + math.Tanh(c*(x+0.044715*x*x*x))) }, nil
	case "tanh":
		return math.Tanh, nil
	case "sigmoid":
		return func(x float64) float64 { return 1 / (1 + math.Exp(-x)) }, nil
	case "swish":
		return func(x float64) float64 { return x / (1 + math.Exp(-x)) }, nil
	case "exponential":
		return math.Exp, nil
	}
	return nil, chk.Err("activation function %q is not available", name)
}
