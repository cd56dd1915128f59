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

// ExpWork implements the strain-driven exponential-work damage law
//  ω = (d + k0)^af / W0 · σeq · Δεp
type ExpWork struct {
	StandardScalar
	W0 dbf.T // W0(T): reference work
	K0 dbf.T // k0(T): offset regularising the rate at d=0
	Af dbf.T // af(T): exponent

	// auxiliary
	dev []float64 // deviator of σ
}

// add model to factory
func init() {
	allocators["exp-work"] = func() RateModel { return new(ExpWork) }
}

// Init initialises model
func (o *ExpWork) Init(ndim int, prms dbf.Params) (err error) {
	o.initStandard(ndim)
	for _, p := range prms {
		switch p.N {
		case "W0":
			o.W0 = &dbf.Cte{C: p.V}
		case "k0":
			if p.V <= 0 {
				return chk.Err("exp-work: k0=%g must be positive", p.V)
			}
			o.K0 = &dbf.Cte{C: p.V}
		case "af":
			o.Af = &dbf.Cte{C: p.V}
		default:
			return chk.Err("exp-work: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.W0 == nil || o.K0 == nil || o.Af == nil {
		return chk.Err("exp-work: parameters W0, k0 and af must be provided")
	}
	o.dev = make([]float64, o.Nsig)
	o.Fcn = o
	return
}

// GetPrms gets (an example) of parameters
func (o ExpWork) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "W0", V: 10},
		&dbf.P{N: "k0", V: 0.0001},
		&dbf.P{N: "af", V: 1.5},
	}
}

// F returns the rate function f = (d+k0)^af / W0 · σeq
func (o *ExpWork) F(σ []float64, d, T float64) (f float64, err error) {
	W0, k0, af := o.W0.F(T, nil), o.K0.F(T, nil), o.Af.F(T, nil)
	if d+k0 <= 0 {
		return 0, chk.Err("exp-work: rate is undefined for d+k0=%g <= 0", d+k0)
	}
	σeq := msolid.M_q(σ)
	return math.Pow(d+k0, af) / W0 * σeq, nil
}

// DfDs computes ∂f/∂σ
func (o *ExpWork) DfDs(df []float64, σ []float64, d, T float64) (err error) {
	W0, k0, af := o.W0.F(T, nil), o.K0.F(T, nil), o.Af.F(T, nil)
	if d+k0 <= 0 {
		return chk.Err("exp-work: rate is undefined for d+k0=%g <= 0", d+k0)
	}
	σeq := msolid.M_q(σ)
	if σeq < 1e-14 {
		for i := 0; i < o.Nsig; i++ {
			df[i] = 0
		}
		return
	}
	msolid.M_devσ(o.dev, σ)
	c := math.Pow(d+k0, af) / W0
	for i := 0; i < o.Nsig; i++ {
		df[i] = c * 1.5 * o.dev[i] / σeq
	}
	return
}

// DfDd returns ∂f/∂d. The guard also rejects d+k0=0, where the derivative
// blows up for af < 1
func (o *ExpWork) DfDd(σ []float64, d, T float64) (res float64, err error) {
	W0, k0, af := o.W0.F(T, nil), o.K0.F(T, nil), o.Af.F(T, nil)
	if d+k0 <= 0 {
		return 0, chk.Err("exp-work: rate is undefined for d+k0=%g <= 0", d+k0)
	}
	σeq := msolid.M_q(σ)
	return af * math.Pow(d+k0, af-1.0) / W0 * σeq, nil
}
