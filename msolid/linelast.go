// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"
)

// LinElast implements a linear elastic model
type LinElast struct {
	Elast Elastic // elastic stiffness
	Nsig  int     // number of stress components

	// auxiliary
	de  *la.Matrix // elastic stiffness matrix
	σ0  []float64  // copy of stress at beginning of step
	Δσw []float64  // stress increment workspace
}

// add model to factory
func init() {
	allocators["lin-elast"] = func() Model { return new(LinElast) }
}

// Init initialises model
func (o *LinElast) Init(ndim int, pstress bool, prms dbf.Params) (err error) {
	o.Nsig = 2 * ndim
	if o.Elast == nil {
		o.Elast = new(SmallElasticity)
	}
	err = o.Elast.Init(ndim, pstress, prms)
	if err != nil {
		return
	}
	o.de = la.NewMatrix(o.Nsig, o.Nsig)
	o.σ0 = make([]float64, o.Nsig)
	o.Δσw = make([]float64, o.Nsig)
	return
}

// GetPrms gets (an example) of parameters
func (o LinElast) GetPrms() dbf.Params {
	return o.Elast.GetPrms()
}

// SetElastic rebinds the elastic stiffness
func (o *LinElast) SetElastic(e Elastic) {
	o.Elast = e
}

// Nhist returns the number of history variables
func (o LinElast) Nhist() int { return 0 }

// InitHist initialises history variables
func (o LinElast) InitHist(h []float64) error { return nil }

// InitIntVars initialises internal (secondary) variables
func (o LinElast) InitIntVars(σ []float64) (s *State, err error) {
	s = NewState(o.Nsig, 0)
	if σ != nil {
		copy(s.Sig, σ)
	}
	return
}

// Update updates stresses for given strains
func (o *LinElast) Update(s *State, ε, Δε []float64, T, T0, t, t0 float64) (err error) {
	err = o.Elast.Stiffness(o.de, T)
	if err != nil {
		return
	}
	σ := s.Sig
	copy(o.σ0, σ)
	la.MatVecMul(o.Δσw, 1, o.de, Δε)
	for i := 0; i < o.Nsig; i++ {
		σ[i] += o.Δσw[i]
	}
	for i := 0; i < o.Nsig; i++ {
		o.Δσw[i] = (o.σ0[i] + σ[i]) / 2.0
	}
	s.U += la.VecDot(o.Δσw, Δε)
	s.T = T
	return
}

// CalcD computes D = dσ_new/dε_new consistent with Update
func (o *LinElast) CalcD(D *la.Matrix, s *State, firstIt bool) (err error) {
	return o.Elast.Stiffness(D, s.T)
}
