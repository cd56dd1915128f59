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

// PowerLaw implements the strain-driven power-law damage law
//  ω = A · σeq^a · Δεp
type PowerLaw struct {
	StandardScalar
	A    dbf.T // A(T)
	Aexp dbf.T // exponent a(T)

	// auxiliary
	dev []float64 // deviator of σ
}

// add model to factory
func init() {
	allocators["pow-law"] = func() RateModel { return new(PowerLaw) }
}

// Init initialises model
func (o *PowerLaw) Init(ndim int, prms dbf.Params) (err error) {
	o.initStandard(ndim)
	for _, p := range prms {
		switch p.N {
		case "A":
			o.A = &dbf.Cte{C: p.V}
		case "a":
			o.Aexp = &dbf.Cte{C: p.V}
		default:
			return chk.Err("pow-law: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.A == nil || o.Aexp == nil {
		return chk.Err("pow-law: parameters A and a must be provided")
	}
	o.dev = make([]float64, o.Nsig)
	o.Fcn = o
	return
}

// GetPrms gets (an example) of parameters
func (o PowerLaw) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "A", V: 100},
		&dbf.P{N: "a", V: 2},
	}
}

// F returns the rate function f = A·σeq^a
func (o *PowerLaw) F(σ []float64, d, T float64) (f float64, err error) {
	A, a := o.A.F(T, nil), o.Aexp.F(T, nil)
	σeq := msolid.M_q(σ)
	return A * math.Pow(σeq, a), nil
}

// DfDs computes ∂f/∂σ
func (o *PowerLaw) DfDs(df []float64, σ []float64, d, T float64) (err error) {
	A, a := o.A.F(T, nil), o.Aexp.F(T, nil)
	σeq := msolid.M_q(σ)
	if σeq < 1e-14 {
		for i := 0; i < o.Nsig; i++ {
			df[i] = 0
		}
		return
	}
	msolid.M_devσ(o.dev, σ)
	c := A * a * math.Pow(σeq, a-1.0)
	for i := 0; i < o.Nsig; i++ {
		df[i] = c * 1.5 * o.dev[i] / σeq
	}
	return
}

// DfDd returns ∂f/∂d: zero, the power law does not depend on damage
func (o *PowerLaw) DfDd(σ []float64, d, T float64) (float64, error) {
	return 0, nil
}
