// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manifold

import "github.com/cpmech/gosl/chk"

// Entry binds a symbolic output name to the native name in the manifold and to a slot
// in the caller's output vector
type Entry struct {
	Key    string // symbolic name; e.g. "d2s/drho2"
	Native string // name of variable in manifold; e.g. "d2sdrho2"
	Slot   int    // position in output vector
}

// Map holds the bindings between a caller and a manifold. The bindings are fixed at
// construction
//  Note: Eval uses an internal buffer; thus a Map must not be shared by goroutines
type Map struct {
	mfd     Manifold  // manifold
	entries []Entry   // bindings
	xidx    []int     // xidx[i] = native position of control variable i
	yidx    []int     // yidx[k] = native output of slot k
	x       []float64 // control variables in native order
}

// NewMap checks that the manifold can supply the requested outputs for the given control
// variables and returns the map
func NewMap(mfd Manifold, controls []string, entries []Entry) (o *Map, err error) {
	if mfd == nil {
		return nil, chk.Err("manifold map: manifold must not be nil")
	}
	inputs := mfd.Inputs()
	outputs := mfd.Outputs()
	if len(controls) != len(inputs) {
		return nil, chk.Err("manifold map: manifold has %d inputs %v but %d control variables %v were given", len(inputs), inputs, len(controls), controls)
	}
	o = &Map{mfd: mfd, entries: entries}
	o.xidx = make([]int, len(controls))
	o.x = make([]float64, len(controls))
	used := make([]bool, len(controls))
	for i, name := range controls {
		j := index(inputs, name)
		if j < 0 {
			return nil, chk.Err("manifold map: control variable %q is not an input of manifold; inputs = %v", name, inputs)
		}
		if used[j] {
			return nil, chk.Err("manifold map: control variable %q is repeated", name)
		}
		used[j] = true
		o.xidx[i] = j
	}
	o.yidx = make([]int, len(entries))
	filled := make([]bool, len(entries))
	for _, e := range entries {
		if e.Slot < 0 || e.Slot >= len(entries) || filled[e.Slot] {
			return nil, chk.Err("manifold map: slot %d of %q is invalid or repeated", e.Slot, e.Key)
		}
		j := index(outputs, e.Native)
		if j < 0 {
			return nil, chk.Err("manifold map: manifold cannot supply %q (native name %q)", e.Key, e.Native)
		}
		filled[e.Slot] = true
		o.yidx[e.Slot] = j
	}
	return
}

// NewGroup returns a map whose slots follow the order of the native names
func NewGroup(mfd Manifold, controls, natives []string) (o *Map, err error) {
	entries := make([]Entry, len(natives))
	for i, n := range natives {
		entries[i] = Entry{Key: n, Native: n, Slot: i}
	}
	return NewMap(mfd, controls, entries)
}

// Size returns the number of outputs
func (o *Map) Size() int {
	return len(o.entries)
}

// Keys returns the symbolic names ordered by slot
func (o *Map) Keys() (keys []string) {
	keys = make([]string, len(o.entries))
	for _, e := range o.entries {
		keys[e.Slot] = e.Key
	}
	return
}

// Eval evaluates the manifold at the control variables x (in caller order) and writes
// the outputs into out
//  Note: len(out) must be equal to the number of entries
func (o *Map) Eval(out []float64, x ...float64) (extrap bool, err error) {
	if len(out) != len(o.entries) {
		return false, chk.Err("manifold map: output vector has size %d but %d outputs %v were requested", len(out), len(o.entries), o.Keys())
	}
	if len(x) != len(o.xidx) {
		return false, chk.Err("manifold map: %d control variables are required; %d were given", len(o.xidx), len(x))
	}
	for i, j := range o.xidx {
		o.x[j] = x[i]
	}
	extrap = o.mfd.Predict(out, o.x, o.yidx)
	return
}
