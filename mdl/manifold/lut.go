// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manifold

import (
	"sort"

	"github.com/cpmech/dfluid/inp"
	"github.com/cpmech/gosl/chk"
)

// AxisData holds the grid values of one control variable
type AxisData struct {
	Name   string    `json:"name" yaml:"name" toml:"name"`
	Values []float64 `json:"values" yaml:"values" toml:"values"` // strictly increasing
}

// LutData holds a table defined on a rectilinear grid
//  Note: the value at grid point (i,j,k) is stored at i + n0*(j + n1*k)
type LutData struct {
	Axes []AxisData           `json:"axes" yaml:"axes" toml:"axes"` // 2 or 3 axes
	Data map[string][]float64 `json:"data" yaml:"data" toml:"data"` // tabulated variables
}

// LUT implements a look-up table with multilinear interpolation. Points outside the grid
// are linearly extrapolated from the nearest cell
type LUT struct {
	inputs  []string    // names of axes
	outputs []string    // names of tabulated variables
	axes    [][]float64 // grid values
	stride  []int       // strides of flattened data
	data    [][]float64 // data[output][point]
	cell    []int       // workspace: lower corner of cell
	t       []float64   // workspace: local coordinates in cell
}

// add backend to factory
func init() {
	allocators[KindLUT] = func(fn string) (Manifold, error) { return ReadLUT(fn) }
}

// ReadLUT reads table from file
func ReadLUT(fn string) (o *LUT, err error) {
	var dat LutData
	err = inp.ReadData(fn, &dat)
	if err != nil {
		return
	}
	o = new(LUT)
	err = o.Init(&dat)
	if err != nil {
		return nil, chk.Err("cannot load table %q:\n%v", fn, err)
	}
	return
}

// Init initialises table
func (o *LUT) Init(dat *LutData) (err error) {

	// axes
	nd := len(dat.Axes)
	if nd < 2 || nd > 3 {
		return chk.Err("lut: number of axes must be 2 or 3; %d is invalid", nd)
	}
	o.inputs = make([]string, nd)
	o.axes = make([][]float64, nd)
	o.stride = make([]int, nd)
	o.cell = make([]int, nd)
	o.t = make([]float64, nd)
	npts := 1
	for d, ax := range dat.Axes {
		if ax.Name == "" || index(o.inputs[:d], ax.Name) >= 0 {
			return chk.Err("lut: name of axis %d is empty or repeated: %q", d, ax.Name)
		}
		if len(ax.Values) < 2 {
			return chk.Err("lut: axis %q must have at least 2 values", ax.Name)
		}
		for i := 1; i < len(ax.Values); i++ {
			if !(ax.Values[i] > ax.Values[i-1]) {
				return chk.Err("lut: values of axis %q must be strictly increasing", ax.Name)
			}
		}
		o.inputs[d] = ax.Name
		o.axes[d] = append([]float64{}, ax.Values...)
		o.stride[d] = npts
		npts *= len(ax.Values)
	}

	// data
	if len(dat.Data) == 0 {
		return chk.Err("lut: table has no data")
	}
	o.outputs = make([]string, 0, len(dat.Data))
	for name := range dat.Data {
		o.outputs = append(o.outputs, name)
	}
	sort.Strings(o.outputs)
	o.data = make([][]float64, len(o.outputs))
	for i, name := range o.outputs {
		if len(dat.Data[name]) != npts {
			return chk.Err("lut: variable %q has %d values; %d are required", name, len(dat.Data[name]), npts)
		}
		o.data[i] = append([]float64{}, dat.Data[name]...)
	}
	return
}

// Inputs returns the names of axes
func (o *LUT) Inputs() []string { return o.inputs }

// Outputs returns the names of tabulated variables
func (o *LUT) Outputs() []string { return o.outputs }

// Predict interpolates the table
//  Note: extrap is true if any coordinate falls outside the grid
func (o *LUT) Predict(y, x []float64, idx []int) (extrap bool) {

	// locate cell
	for d, v := range x {
		ax := o.axes[d]
		n := len(ax)
		if v < ax[0] || v > ax[n-1] {
			extrap = true
		}
		i := sort.SearchFloat64s(ax, v) - 1
		if i < 0 {
			i = 0
		}
		if i > n-2 {
			i = n - 2
		}
		o.cell[d] = i
		o.t[d] = (v - ax[i]) / (ax[i+1] - ax[i])
	}

	// sum over corners
	nd := len(x)
	for k, j := range idx {
		y[k] = 0
		for c := 0; c < 1<<nd; c++ {
			w, p := 1.0, 0
			for d := 0; d < nd; d++ {
				if c&(1<<d) != 0 {
					w *= o.t[d]
					p += (o.cell[d] + 1) * o.stride[d]
				} else {
					w *= 1 - o.t[d]
					p += o.cell[d] * o.stride[d]
				}
			}
			y[k] += w * o.data[j][p]
		}
	}
	return
}
