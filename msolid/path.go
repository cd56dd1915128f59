// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Path holds data for a strain-driven stress path with time and temperature stations
type Path struct {

	// from json
	Nincs int         // number of increments between stations
	Eps   [][]float64 // [nsta][nsig] strain stations
	Times []float64   // [nsta] time stations
	Temps []float64   // [nsta] temperature stations

	// derived
	ndim int // space dimension
	nsig int // number of stress components
}

// SetStrains sets a strain-driven path
//  εsta  -- strain stations [nsta][nsig]
//  times -- time at each station; may be nil => 0,1,2,...
//  temps -- temperature at each station; may be nil => 0
func (o *Path) SetStrains(ndim, nincs int, εsta [][]float64, times, temps []float64) (err error) {
	o.ndim, o.nsig = ndim, 2*ndim
	o.Nincs = nincs
	o.Eps = εsta
	o.Times = times
	o.Temps = temps
	return o.validate()
}

// ReadJson reads a path from a json file. Panics if the file cannot be read.
func (o *Path) ReadJson(ndim int, fname string) (err error) {
	b := io.ReadFile(fname)
	err = json.Unmarshal(b, o)
	if err != nil {
		return chk.Err("path: cannot parse file %q: %v", fname, err)
	}
	o.ndim, o.nsig = ndim, 2*ndim
	return o.validate()
}

// Nsta returns the number of stations
func (o Path) Nsta() int { return len(o.Eps) }

// validate checks sizes and fills missing time/temperature stations
func (o *Path) validate() (err error) {
	nsta := len(o.Eps)
	if nsta < 2 {
		return chk.Err("path: at least two strain stations are required; nsta=%d", nsta)
	}
	if o.Nincs < 1 {
		o.Nincs = 1
	}
	for i, ε := range o.Eps {
		if len(ε) != o.nsig {
			return chk.Err("path: station %d has %d strain components; want %d", i, len(ε), o.nsig)
		}
	}
	if o.Times == nil {
		o.Times = make([]float64, nsta)
		for i := 0; i < nsta; i++ {
			o.Times[i] = float64(i)
		}
	}
	if o.Temps == nil {
		o.Temps = make([]float64, nsta)
	}
	if len(o.Times) != nsta || len(o.Temps) != nsta {
		return chk.Err("path: times and temps must have %d stations; len(times)=%d len(temps)=%d", nsta, len(o.Times), len(o.Temps))
	}
	for i := 1; i < nsta; i++ {
		if o.Times[i] <= o.Times[i-1] {
			return chk.Err("path: times must be increasing; times[%d]=%g times[%d]=%g", i-1, o.Times[i-1], i, o.Times[i])
		}
	}
	return
}
