// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdamage

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/khhsu0724/neml/msolid"
)

// Dep computes the equivalent inelastic strain increment
//  Δεp = sqrt( 2/3 ‖(ε1-ε0) - S:(σ1-σ0)‖² )
// with S the elastic compliance. The inelastic strain increment itself is
// written into dp.
func Dep(dp []float64, S *la.Matrix, ε1, ε0, σ1, σ0 []float64) (dep float64) {
	n := len(dp)
	for i := 0; i < n; i++ {
		dee := 0.0
		for j := 0; j < n; j++ {
			dee += S.Get(i, j) * (σ1[j] - σ0[j])
		}
		dp[i] = (ε1[i] - ε0[i]) - dee
	}
	v := 2.0 / 3.0 * la.VecDot(dp, dp)
	if v > 0 {
		dep = math.Sqrt(v)
	}
	return
}

// RateFunc is the part of a strain-driven damage rate that multiplies the
// inelastic strain increment
type RateFunc interface {
	F(σ []float64, d, T float64) (float64, error)       // rate function f(σ,d,T)
	DfDs(df []float64, σ []float64, d, T float64) error // ∂f/∂σ
	DfDd(σ []float64, d, T float64) (float64, error)    // ∂f/∂d
}

// StandardScalar is the shared base of strain-driven damage laws:
//  ω = f(σ,d,T) · Δεp
// Concrete laws provide only the rate function f and its two partials; the
// inelastic strain increment extraction is common to all of them.
type StandardScalar struct {
	Fcn   RateFunc       // the concrete rate function
	Elast msolid.Elastic // elastic compliance used to split the strain increment
	Nsig  int            // number of stress components

	// auxiliary
	sc  *la.Matrix // compliance matrix
	dp  []float64  // inelastic strain increment
	dfs []float64  // ∂f/∂σ
}

// initStandard allocates workspaces
func (o *StandardScalar) initStandard(ndim int) {
	o.Nsig = 2 * ndim
	o.sc = la.NewMatrix(o.Nsig, o.Nsig)
	o.dp = make([]float64, o.Nsig)
	o.dfs = make([]float64, o.Nsig)
}

// SetElastic rebinds the elastic compliance
func (o *StandardScalar) SetElastic(e msolid.Elastic) {
	o.Elast = e
}

// InitDamage returns the starting value of the damage variable
func (o StandardScalar) InitDamage() float64 { return 0 }

// dep computes the equivalent inelastic strain increment at temperature T
func (o *StandardScalar) dep(ε1, ε0, σ1, σ0 []float64, T float64) (dep float64, err error) {
	if o.Elast == nil {
		return 0, chk.Err("strain-driven damage law requires an elastic model")
	}
	err = o.Elast.Compliance(o.sc, T)
	if err != nil {
		return
	}
	dep = Dep(o.dp, o.sc, ε1, ε0, σ1, σ0)
	return
}

// Damage returns the damage increment over the step
func (o *StandardScalar) Damage(d, dn float64, ε1, ε0, σ1, σ0 []float64, T, T0, t, t0 float64) (ω float64, err error) {
	dep, err := o.dep(ε1, ε0, σ1, σ0, T)
	if err != nil {
		return
	}
	f, err := o.Fcn.F(σ1, d, T)
	if err != nil {
		return
	}
	return f * dep, nil
}

// DdamageDd returns ∂ω/∂d
func (o *StandardScalar) DdamageDd(d, dn float64, ε1, ε0, σ1, σ0 []float64, T, T0, t, t0 float64) (res float64, err error) {
	dep, err := o.dep(ε1, ε0, σ1, σ0, T)
	if err != nil {
		return
	}
	dfd, err := o.Fcn.DfDd(σ1, d, T)
	if err != nil {
		return
	}
	return dfd * dep, nil
}

// DdamageDe computes ∂ω/∂ε = f · ∂Δεp/∂ε
func (o *StandardScalar) DdamageDe(dde []float64, d, dn float64, ε1, ε0, σ1, σ0 []float64, T, T0, t, t0 float64) (err error) {
	dep, err := o.dep(ε1, ε0, σ1, σ0, T)
	if err != nil {
		return
	}
	if dep < 1e-16 {
		for i := 0; i < o.Nsig; i++ {
			dde[i] = 0
		}
		return
	}
	f, err := o.Fcn.F(σ1, d, T)
	if err != nil {
		return
	}
	for i := 0; i < o.Nsig; i++ {
		dde[i] = f * 2.0 / 3.0 * o.dp[i] / dep
	}
	return
}

// DdamageDs computes ∂ω/∂σ = ∂f/∂σ · Δεp + f · ∂Δεp/∂σ
func (o *StandardScalar) DdamageDs(dds []float64, d, dn float64, ε1, ε0, σ1, σ0 []float64, T, T0, t, t0 float64) (err error) {
	dep, err := o.dep(ε1, ε0, σ1, σ0, T)
	if err != nil {
		return
	}
	err = o.Fcn.DfDs(o.dfs, σ1, d, T)
	if err != nil {
		return
	}
	for i := 0; i < o.Nsig; i++ {
		dds[i] = o.dfs[i] * dep
	}
	if dep < 1e-16 {
		return
	}
	f, err := o.Fcn.F(σ1, d, T)
	if err != nil {
		return
	}
	for i := 0; i < o.Nsig; i++ {
		sum := 0.0
		for j := 0; j < o.Nsig; j++ {
			sum += o.sc.Get(j, i) * o.dp[j] // ∂Δεp/∂σ = -(2/3) Sᵀ dp / Δεp
		}
		dds[i] -= f * 2.0 / 3.0 * sum / dep
	}
	return
}
