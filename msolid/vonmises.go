// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"
)

// VonMises implements J2 plasticity with linear isotropic hardening
type VonMises struct {
	Elast Elastic // elastic stiffness
	Nsig  int     // number of stress components
	qy0   float64 // initial yield stress (in terms of q)
	H     float64 // hardening modulus

	// auxiliary
	ten []float64  // auxiliary tensor
	σ0  []float64  // copy of stress at beginning of step
	Δσ  []float64  // stress increment
	Δεe []float64  // elastic strain increment
	sc  *la.Matrix // compliance matrix
}

// add model to factory
func init() {
	allocators["von-mises"] = func() Model { return new(VonMises) }
}

// Init initialises model
func (o *VonMises) Init(ndim int, pstress bool, prms dbf.Params) (err error) {
	if pstress {
		return chk.Err("von-mises: plane-stress analyses are not available")
	}
	o.Nsig = 2 * ndim
	if o.Elast == nil {
		o.Elast = new(SmallElasticity)
	}
	err = o.Elast.Init(ndim, pstress, prms)
	if err != nil {
		return
	}
	for _, p := range prms {
		switch p.N {
		case "qy0":
			o.qy0 = p.V
		case "H":
			o.H = p.V
		case "E", "nu", "G", "K", "rho":
		default:
			return chk.Err("von-mises: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.qy0 < 1e-14 {
		return chk.Err("von-mises: qy0=%g is invalid", o.qy0)
	}
	o.ten = make([]float64, o.Nsig)
	o.σ0 = make([]float64, o.Nsig)
	o.Δσ = make([]float64, o.Nsig)
	o.Δεe = make([]float64, o.Nsig)
	o.sc = la.NewMatrix(o.Nsig, o.Nsig)
	return
}

// GetPrms gets (an example) of parameters
func (o VonMises) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 10000},
		&dbf.P{N: "nu", V: 0.25},
		&dbf.P{N: "qy0", V: 1},
		&dbf.P{N: "H", V: 0},
	}
}

// SetElastic rebinds the elastic stiffness
func (o *VonMises) SetElastic(e Elastic) {
	o.Elast = e
}

// Nhist returns the number of history variables
func (o VonMises) Nhist() int { return 1 }

// InitHist initialises history variables
func (o VonMises) InitHist(h []float64) error {
	h[0] = 0 // α: accumulated plastic strain
	return nil
}

// InitIntVars initialises internal (secondary) variables
func (o VonMises) InitIntVars(σ []float64) (s *State, err error) {
	s = NewState(o.Nsig, o.Nhist())
	if σ != nil {
		copy(s.Sig, σ)
	}
	return
}

// Update updates stresses for given strains
func (o *VonMises) Update(s *State, ε, Δε []float64, T, T0, t, t0 float64) (err error) {

	// set flags
	s.Loading = false // => not elastoplastic
	s.Dgam = 0        // Δγ := 0

	// accessors
	σ := s.Sig
	α0 := &s.Alp[0]
	copy(o.σ0, σ)

	// elastic moduli
	K, G := o.Elast.Moduli(T)

	// trial stress
	var devΔε_i float64
	trΔε := Δε[0] + Δε[1] + Δε[2]
	for i := 0; i < o.Nsig; i++ {
		devΔε_i = Δε[i] - trΔε*Im[i]/3.0
		o.ten[i] = σ[i] + K*trΔε*Im[i] + 2.0*G*devΔε_i // ten := σtr
	}
	ptr, qtr := M_p(o.ten), M_q(o.ten)

	// trial yield function
	ftr := qtr - o.qy0 - o.H*(*α0)

	// elastic update
	if ftr <= 0.0 {
		copy(σ, o.ten) // σ := ten = σtr
		return o.accumulate(s, Δε, T)
	}

	// elastoplastic update: radial return
	var str_i float64
	s.Dgam = ftr / (3.0*G + o.H)
	*α0 += s.Dgam
	m := 1.0 - s.Dgam*3.0*G/qtr
	for i := 0; i < o.Nsig; i++ {
		str_i = o.ten[i] + ptr*Im[i]
		σ[i] = m*str_i - ptr*Im[i]
	}
	s.Loading = true
	return o.accumulate(s, Δε, T)
}

// accumulate integrates the strain energy and plastic work with the trapezoidal rule
func (o *VonMises) accumulate(s *State, Δε []float64, T float64) (err error) {
	for i := 0; i < o.Nsig; i++ {
		o.Δσ[i] = s.Sig[i] - o.σ0[i]
		o.ten[i] = (o.σ0[i] + s.Sig[i]) / 2.0 // ten := σmean
	}
	s.U += la.VecDot(o.ten, Δε)
	if s.Loading {
		err = o.Elast.Compliance(o.sc, T)
		if err != nil {
			return chk.Err("von-mises: plastic work accumulation failed: %v", err)
		}
		la.MatVecMul(o.Δεe, 1, o.sc, o.Δσ)
		for i := 0; i < o.Nsig; i++ {
			s.Pw += o.ten[i] * (Δε[i] - o.Δεe[i])
		}
	}
	s.T = T
	return
}

// CalcD computes D = dσ_new/dε_new consistent with Update
func (o *VonMises) CalcD(D *la.Matrix, s *State, firstIt bool) (err error) {

	// set first Δγ
	if firstIt {
		s.Dgam = 0
	}

	// elastic
	if !s.Loading {
		return o.Elast.Stiffness(D, s.T)
	}

	// elastoplastic => consistent stiffness
	K, G := o.Elast.Moduli(s.T)
	σ := s.Sig
	Δγ := s.Dgam
	p, q := M_p(σ), M_q(σ)
	qtr := q + Δγ*3.0*G
	m := 1.0 - Δγ*3.0*G/qtr
	nstr := SQ2by3 * qtr // norm(str)
	for i := 0; i < o.Nsig; i++ {
		o.ten[i] = (σ[i] + p*Im[i]) / (m * nstr) // ten := unit(str)
	}
	b2 := 6.0 * G * G * (Δγ/qtr - 1.0/(3.0*G+o.H))
	for i := 0; i < o.Nsig; i++ {
		for j := 0; j < o.Nsig; j++ {
			D.Set(i, j, 2.0*G*m*Psd[i][j]+
				K*Im[i]*Im[j]+
				b2*o.ten[i]*o.ten[j])
		}
	}
	return
}
