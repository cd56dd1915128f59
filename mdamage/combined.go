// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdamage

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/khhsu0724/neml/msolid"
)

// Combined superposes several scalar damage rate laws evaluated at the same
// trial point. The combination rule is a weighted superposition of increments
// and partials with unit weights by default; Weights makes the rule a
// configurable policy. Combined is itself a RateModel, so compositions nest.
type Combined struct {
	Laws    []RateModel // constituent laws; must be initialised by the caller
	Weights []float64   // superposition weights; nil => 1 for every law

	// auxiliary
	Nsig int       // number of stress components
	dw   []float64 // workspace for constituent partials
}

// add model to factory
func init() {
	allocators["combined"] = func() RateModel { return new(Combined) }
}

// Init initialises model. The constituent laws must be set (and initialised)
// beforehand.
func (o *Combined) Init(ndim int, prms dbf.Params) (err error) {
	if len(prms) > 0 {
		return chk.Err("combined: parameter named %q is incorrect\n", prms[0].N)
	}
	if len(o.Laws) < 1 {
		return chk.Err("combined: at least one constituent law must be set before Init")
	}
	if o.Weights == nil {
		o.Weights = make([]float64, len(o.Laws))
		for i := range o.Weights {
			o.Weights[i] = 1
		}
	}
	if len(o.Weights) != len(o.Laws) {
		return chk.Err("combined: %d weights given for %d laws", len(o.Weights), len(o.Laws))
	}
	o.Nsig = 2 * ndim
	o.dw = make([]float64, o.Nsig)
	return
}

// GetPrms gets (an example) of parameters
func (o Combined) GetPrms() dbf.Params { return nil }

// InitDamage returns the starting value of the damage variable
func (o Combined) InitDamage() float64 { return 0 }

// SetElastic rebinds the elastic model in every constituent law that holds one
func (o *Combined) SetElastic(e msolid.Elastic) {
	for _, law := range o.Laws {
		if m, ok := law.(msolid.ElasticSetter); ok {
			m.SetElastic(e)
		}
	}
}

// Damage returns the superposed damage increment over the step
func (o *Combined) Damage(d, dn float64, ε1, ε0, σ1, σ0 []float64, T, T0, t, t0 float64) (ω float64, err error) {
	var ωi float64
	for i, law := range o.Laws {
		ωi, err = law.Damage(d, dn, ε1, ε0, σ1, σ0, T, T0, t, t0)
		if err != nil {
			return
		}
		ω += o.Weights[i] * ωi
	}
	return
}

// DdamageDd returns the superposed ∂ω/∂d
func (o *Combined) DdamageDd(d, dn float64, ε1, ε0, σ1, σ0 []float64, T, T0, t, t0 float64) (res float64, err error) {
	var ri float64
	for i, law := range o.Laws {
		ri, err = law.DdamageDd(d, dn, ε1, ε0, σ1, σ0, T, T0, t, t0)
		if err != nil {
			return
		}
		res += o.Weights[i] * ri
	}
	return
}

// DdamageDe computes the superposed ∂ω/∂ε
func (o *Combined) DdamageDe(dde []float64, d, dn float64, ε1, ε0, σ1, σ0 []float64, T, T0, t, t0 float64) (err error) {
	for j := 0; j < o.Nsig; j++ {
		dde[j] = 0
	}
	for i, law := range o.Laws {
		err = law.DdamageDe(o.dw, d, dn, ε1, ε0, σ1, σ0, T, T0, t, t0)
		if err != nil {
			return
		}
		for j := 0; j < o.Nsig; j++ {
			dde[j] += o.Weights[i] * o.dw[j]
		}
	}
	return
}

// DdamageDs computes the superposed ∂ω/∂σ
func (o *Combined) DdamageDs(dds []float64, d, dn float64, ε1, ε0, σ1, σ0 []float64, T, T0, t, t0 float64) (err error) {
	for j := 0; j < o.Nsig; j++ {
		dds[j] = 0
	}
	for i, law := range o.Laws {
		err = law.DdamageDs(o.dw, d, dn, ε1, ε0, σ1, σ0, T, T0, t, t0)
		if err != nil {
			return
		}
		for j := 0; j < o.Nsig; j++ {
			dds[j] += o.Weights[i] * o.dw[j]
		}
	}
	return
}
