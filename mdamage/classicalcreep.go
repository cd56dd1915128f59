// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdamage

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/khhsu0724/neml/msolid"
)

// ClassicalCreep implements the classical Hayhurst-Leckie-Rabotnov-Kachanov
// creep-rupture damage law
//  ω = (σeq/A)^ξ · (1-d)^(-φ) · Δt
// where σeq is the von Mises stress of the damaged stress tensor and A, ξ
// and φ are functions of temperature
type ClassicalCreep struct {
	A    dbf.T // A(T)
	Xi   dbf.T // ξ(T)
	Phi  dbf.T // φ(T)
	Nsig int      // number of stress components

	// auxiliary
	dev []float64 // deviator of σ
}

// add model to factory
func init() {
	allocators["cls-creep"] = func() RateModel { return new(ClassicalCreep) }
}

// Init initialises model. Constant parameters may be given via prms;
// temperature interpolations may be assigned to A, Xi and Phi directly.
func (o *ClassicalCreep) Init(ndim int, prms dbf.Params) (err error) {
	o.Nsig = 2 * ndim
	for _, p := range prms {
		switch p.N {
		case "A":
			o.A = &dbf.Cte{C: p.V}
		case "xi":
			o.Xi = &dbf.Cte{C: p.V}
		case "phi":
			o.Phi = &dbf.Cte{C: p.V}
		default:
			return chk.Err("cls-creep: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.A == nil || o.Xi == nil || o.Phi == nil {
		return chk.Err("cls-creep: parameters A, xi and phi must be provided")
	}
	o.dev = make([]float64, o.Nsig)
	return
}

// GetPrms gets (an example) of parameters
func (o ClassicalCreep) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "A", V: 1000},
		&dbf.P{N: "xi", V: 2},
		&dbf.P{N: "phi", V: 1.7},
	}
}

// InitDamage returns the starting value of the damage variable
func (o ClassicalCreep) InitDamage() float64 { return 0 }

// Damage returns the damage increment over the step
func (o *ClassicalCreep) Damage(d, dn float64, ε1, ε0, σ1, σ0 []float64, T, T0, t, t0 float64) (ω float64, err error) {
	if 1.0-d < 1e-14 {
		return 0, chk.Err("cls-creep: rate is unbounded for d=%g", d)
	}
	A, ξ, φ := o.A.F(T, nil), o.Xi.F(T, nil), o.Phi.F(T, nil)
	σeq := msolid.M_q(σ1)
	ω = math.Pow(σeq/A, ξ) * math.Pow(1.0-d, -φ) * (t - t0)
	return
}

// DdamageDd returns ∂ω/∂d
func (o *ClassicalCreep) DdamageDd(d, dn float64, ε1, ε0, σ1, σ0 []float64, T, T0, t, t0 float64) (res float64, err error) {
	if 1.0-d < 1e-14 {
		return 0, chk.Err("cls-creep: rate is unbounded for d=%g", d)
	}
	A, ξ, φ := o.A.F(T, nil), o.Xi.F(T, nil), o.Phi.F(T, nil)
	σeq := msolid.M_q(σ1)
	res = φ * math.Pow(σeq/A, ξ) * math.Pow(1.0-d, -(φ+1.0)) * (t - t0)
	return
}

// DdamageDe computes ∂ω/∂ε: zero, the law is driven by stress and time only
func (o *ClassicalCreep) DdamageDe(dde []float64, d, dn float64, ε1, ε0, σ1, σ0 []float64, T, T0, t, t0 float64) error {
	for i := 0; i < o.Nsig; i++ {
		dde[i] = 0
	}
	return nil
}

// DdamageDs computes ∂ω/∂σ
func (o *ClassicalCreep) DdamageDs(dds []float64, d, dn float64, ε1, ε0, σ1, σ0 []float64, T, T0, t, t0 float64) (err error) {
	if 1.0-d < 1e-14 {
		return chk.Err("cls-creep: rate is unbounded for d=%g", d)
	}
	A, ξ, φ := o.A.F(T, nil), o.Xi.F(T, nil), o.Phi.F(T, nil)
	σeq := msolid.M_q(σ1)
	if σeq < 1e-14 {
		for i := 0; i < o.Nsig; i++ {
			dds[i] = 0
		}
		return
	}
	msolid.M_devσ(o.dev, σ1)
	c := ξ / A * math.Pow(σeq/A, ξ-1.0) * math.Pow(1.0-d, -φ) * (t - t0)
	for i := 0; i < o.Nsig; i++ {
		dds[i] = c * 1.5 * o.dev[i] / σeq // dσeq/dσ = (3/2) dev(σ)/σeq
	}
	return
}
