// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"
)

// Driver runs simulations with constitutive models at one material point
type Driver struct {

	// input
	nsig  int   // number of stress components
	model Solid // solid model

	// settings
	Silent bool    // do not show error messages
	CheckD bool    // do check consistent matrix
	TolD   float64 // tolerance to check consistent matrix
	VerD   bool    // verbose check of D
	Hfd    float64 // step size for finite-difference check of D

	// results
	Res   []*State    // stress/ivs results
	Eps   [][]float64 // strains
	Times []float64   // times
	Temps []float64   // temperatures
}

// Init initialises driver and allocates model by name
func (o *Driver) Init(modelname string, ndim int, pstress bool, prms dbf.Params) (err error) {
	model, err := New(modelname)
	if err != nil {
		return
	}
	err = model.Init(ndim, pstress, prms)
	if err != nil {
		return
	}
	return o.InitWithModel(ndim, model)
}

// InitWithModel initialises driver with a pre-initialised model
func (o *Driver) InitWithModel(ndim int, model Model) (err error) {
	o.nsig = 2 * ndim
	sm, ok := model.(Solid)
	if !ok {
		return chk.Err("driver: model does not implement the Small update interface")
	}
	o.model = sm
	if o.TolD < 1e-14 {
		o.TolD = 1e-3
	}
	if o.Hfd < 1e-14 {
		o.Hfd = 1e-6
	}
	return
}

// Model returns the wrapped model
func (o *Driver) Model() Solid { return o.model }

// Run runs the strain path
func (o *Driver) Run(pth *Path) (err error) {

	// initial state
	s, err := o.model.InitIntVars(nil)
	if err != nil {
		return
	}

	// current strain, time and temperature
	ε := make([]float64, o.nsig)
	copy(ε, pth.Eps[0])
	t, T := pth.Times[0], pth.Temps[0]

	// allocate results and workspaces
	o.Res = []*State{s.GetCopy()}
	o.Eps = [][]float64{utl.GetCopy(ε)}
	o.Times = []float64{t}
	o.Temps = []float64{T}
	Δε := make([]float64, o.nsig)
	εnew := make([]float64, o.nsig)
	εtmp := make([]float64, o.nsig)
	Δεtmp := make([]float64, o.nsig)
	D := la.NewMatrix(o.nsig, o.nsig)
	scp := s.GetCopy()
	stmp := s.GetCopy()

	// update along path
	for k := 1; k < pth.Nsta(); k++ {
		Δt := (pth.Times[k] - t) / float64(pth.Nincs)
		ΔT := (pth.Temps[k] - T) / float64(pth.Nincs)
		for j := 0; j < o.nsig; j++ {
			Δε[j] = (pth.Eps[k][j] - ε[j]) / float64(pth.Nincs)
		}
		for i := 0; i < pth.Nincs; i++ {

			// update
			tnew, Tnew := t+Δt, T+ΔT
			for j := 0; j < o.nsig; j++ {
				εnew[j] = ε[j] + Δε[j]
			}
			scp.Set(s)
			err = o.model.Update(s, εnew, Δε, Tnew, T, tnew, t)
			if err != nil {
				if !o.Silent {
					io.Pfred("driver: Update failed: %v\n", err)
				}
				return
			}

			// check consistent matrix
			if o.CheckD {
				err = o.model.CalcD(D, s, false)
				if err != nil {
					return chk.Err("driver: CalcD failed: %v", err)
				}
				var dnum float64
				for a := 0; a < o.nsig; a++ {
					for b := 0; b < o.nsig; b++ {
						dnum = num.DerivCen5(εnew[b], o.Hfd, func(x float64) float64 {
							stmp.Set(scp)
							copy(εtmp, εnew)
							copy(Δεtmp, Δε)
							εtmp[b] = x
							Δεtmp[b] += x - εnew[b]
							o.model.Update(stmp, εtmp, Δεtmp, Tnew, T, tnew, t)
							return stmp.Sig[a]
						})
						err = chk.PrintAnaNum(io.Sf("D[%d][%d]", a, b), o.TolD, D.Get(a, b), dnum, o.VerD)
						if err != nil {
							return chk.Err("driver: consistent tangent is incorrect: %v", err)
						}
					}
				}
			}

			// results
			o.Res = append(o.Res, s.GetCopy())
			o.Eps = append(o.Eps, utl.GetCopy(εnew))
			o.Times = append(o.Times, tnew)
			o.Temps = append(o.Temps, Tnew)
			copy(ε, εnew)
			t, T = tnew, Tnew
		}
	}
	return
}
