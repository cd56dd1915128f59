// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"
)

// SmallElasticity implements linear isotropic elasticity for small strain analyses.
// The Young modulus and Poisson coefficient may be given either as constants
// ("E" and "nu" parameters) or as functions of temperature (Efcn and Nufcn).
type SmallElasticity struct {
	Nsig  int     // number of stress components
	E     float64 // Young modulus
	Nu    float64 // Poisson coefficient
	Efcn  dbf.T   // E(T); optional temperature dependence
	Nufcn dbf.T   // ν(T); optional temperature dependence
	Pse   bool    // is plane-stress?
}

// Init initialises this structure
func (o *SmallElasticity) Init(ndim int, pstress bool, prms dbf.Params) (err error) {
	o.Nsig = 2 * ndim
	o.Pse = pstress
	var has_E, has_ν, has_K, has_G bool
	var K, G float64
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E, has_E = p.V, true
		case "nu":
			o.Nu, has_ν = p.V, true
		case "K":
			K, has_K = p.V, true
		case "G":
			G, has_G = p.V, true
		}
	}
	switch {
	case has_E && has_ν:
		// ok
	case has_K && has_G:
		o.E = Calc_E_from_KG(K, G)
		o.Nu = Calc_nu_from_KG(K, G)
	default:
		return chk.Err("elast: either {E, nu} or {K, G} must be provided")
	}
	return
}

// GetPrms gets (an example) of parameters
func (o SmallElasticity) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 10000},
		&dbf.P{N: "nu", V: 0.25},
	}
}

// EandNu returns E and ν, possibly temperature dependent
func (o SmallElasticity) EandNu(T float64) (E, ν float64) {
	E, ν = o.E, o.Nu
	if o.Efcn != nil {
		E = o.Efcn.F(T, nil)
	}
	if o.Nufcn != nil {
		ν = o.Nufcn.F(T, nil)
	}
	return
}

// Moduli returns the bulk and shear moduli at temperature T
func (o SmallElasticity) Moduli(T float64) (K, G float64) {
	E, ν := o.EandNu(T)
	return Calc_K_from_Enu(E, ν), Calc_G_from_Enu(E, ν)
}

// Stiffness computes De = dσ/dε at temperature T
func (o SmallElasticity) Stiffness(D *la.Matrix, T float64) (err error) {
	if o.Pse {
		return chk.Err("elast: plane-stress analyses are not available")
	}
	K, G := o.Moduli(T)
	for i := 0; i < o.Nsig; i++ {
		for j := 0; j < o.Nsig; j++ {
			D.Set(i, j, K*Im[i]*Im[j]+2.0*G*Psd[i][j])
		}
	}
	return
}

// Compliance computes Se = inv(De) at temperature T
func (o SmallElasticity) Compliance(S *la.Matrix, T float64) (err error) {
	if o.Pse {
		return chk.Err("elast: plane-stress analyses are not available")
	}
	K, G := o.Moduli(T)
	if K < 1e-14 || G < 1e-14 {
		return chk.Err("elast: K=%g and G=%g must be non-zero", K, G)
	}
	for i := 0; i < o.Nsig; i++ {
		for j := 0; j < o.Nsig; j++ {
			S.Set(i, j, Im[i]*Im[j]/(9.0*K)+Psd[i][j]/(2.0*G))
		}
	}
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// Calc_K_from_Enu returns the bulk modulus
func Calc_K_from_Enu(E, ν float64) float64 { return E / (3.0 * (1.0 - 2.0*ν)) }

// Calc_G_from_Enu returns the shear modulus
func Calc_G_from_Enu(E, ν float64) float64 { return E / (2.0 * (1.0 + ν)) }

// Calc_E_from_KG returns the Young modulus
func Calc_E_from_KG(K, G float64) float64 { return 9.0 * K * G / (3.0*K + G) }

// Calc_nu_from_KG returns the Poisson coefficient
func Calc_nu_from_KG(K, G float64) float64 { return (3.0*K - 2.0*G) / (6.0*K + 2.0*G) }
