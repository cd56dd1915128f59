// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdamage

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"
	"github.com/khhsu0724/neml/msolid"
)

// ScalarDamage couples a scalar damage variable to an undamaged base solid
// model. It exposes the same update contract as any msolid model, so damaged
// and undamaged models are interchangeable to the caller, and implements the
// Solvable contract so the generic Newton driver can be reused.
//
// The damage variable d lives in [0,1): d=0 means undamaged and d→1 means
// failure. The effective stress carried by the undamaged material fraction is
// σ' = σ/(1-d); the base model is integrated on σ' and the damaged stress is
// recovered as σ = (1-d)σ'. A value of d outside its range, a non-finite
// stress, or a non-converged solve are reported as errors, never clamped.
//
// History layout: [base history (nbase values)] ++ [damage (1 value)]
type ScalarDamage struct {

	// configuration
	Base  msolid.Solid   // undamaged base model (may be shared)
	Elast msolid.Elastic // elastic stiffness (shared; swappable via SetElastic)
	Law   RateModel      // damage rate law
	Alpha dbf.T          // thermal expansion coefficient α(T); consumed by the outer processing
	Trues bool           // Truesdell objective rate correction flag; consumed by the outer processing
	Tol   float64        // Newton tolerance
	Miter int            // Newton iteration cap
	Verb  bool           // verbose Newton iterations

	// derived
	Nsig  int // number of stress components
	nbase int // number of base history variables

	// workspaces
	bsta *msolid.State // base model scratch state
	σ1   []float64     // damaged stress at end of step
	Δεw  []float64     // strain increment
	ωs   []float64     // ∂ω/∂σ
	ωe   []float64     // ∂ω/∂ε
	atw  []float64     // A'ᵀ · ∂ω/∂σ
	ddε  []float64     // dd/dε: total damage sensitivity
	aprm *la.Matrix    // A': base consistent tangent
	dcon *la.Matrix    // consistent tangent of the damaged response
	x    []float64     // Newton unknowns

	// control
	nupd int // number of successful updates
}

// Init initialises model. Base, Elast and Law must be configured beforehand.
func (o *ScalarDamage) Init(ndim int, pstress bool, prms dbf.Params) (err error) {
	if pstress {
		return chk.Err("scalar-damage: plane-stress analyses are not available")
	}
	if o.Base == nil || o.Elast == nil || o.Law == nil {
		return chk.Err("scalar-damage: base model, elastic model and rate law must be set before Init")
	}
	o.Nsig = 2 * ndim
	o.nbase = o.Base.Nhist()
	o.Tol, o.Miter = 1e-10, 50
	for _, p := range prms {
		switch p.N {
		case "tol":
			o.Tol = p.V
		case "miter":
			o.Miter = int(p.V)
		case "verb":
			o.Verb = p.V > 0
		case "trues":
			o.Trues = p.V > 0
		default:
			return chk.Err("scalar-damage: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Tol < 1e-15 || o.Miter < 1 {
		return chk.Err("scalar-damage: tol=%g and miter=%d are invalid", o.Tol, o.Miter)
	}
	o.bsta = msolid.NewState(o.Nsig, o.nbase)
	o.σ1 = make([]float64, o.Nsig)
	o.Δεw = make([]float64, o.Nsig)
	o.ωs = make([]float64, o.Nsig)
	o.ωe = make([]float64, o.Nsig)
	o.atw = make([]float64, o.Nsig)
	o.ddε = make([]float64, o.Nsig)
	o.aprm = la.NewMatrix(o.Nsig, o.Nsig)
	o.dcon = la.NewMatrix(o.Nsig, o.Nsig)
	o.x = make([]float64, o.Nparams())
	o.SetElastic(o.Elast)
	return
}

// GetPrms gets (an example) of parameters
func (o ScalarDamage) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "tol", V: 1e-10},
		&dbf.P{N: "miter", V: 50},
	}
}

// SetElastic rebinds the elastic stiffness here, in the wrapped base model and
// in the rate law. Outer models wrapping this one use it to propagate a shared
// elastic model to all inner layers. Must not be called concurrently with Update.
func (o *ScalarDamage) SetElastic(e msolid.Elastic) {
	o.Elast = e
	if m, ok := o.Base.(msolid.ElasticSetter); ok {
		m.SetElastic(e)
	}
	if m, ok := o.Law.(msolid.ElasticSetter); ok {
		m.SetElastic(e)
	}
}

// Ndamage returns the number of damage variables
func (o ScalarDamage) Ndamage() int { return 1 }

// InitDamage initialises the damage portion of the history vector
func (o ScalarDamage) InitDamage(dmg []float64) error {
	dmg[0] = o.Law.InitDamage()
	return nil
}

// Nhist returns the number of history variables
func (o ScalarDamage) Nhist() int { return o.nbase + o.Ndamage() }

// InitHist initialises history variables: base portion first, damage last
func (o ScalarDamage) InitHist(h []float64) (err error) {
	if len(h) != o.Nhist() {
		return chk.Err("scalar-damage: history vector has %d values; want %d", len(h), o.Nhist())
	}
	err = o.Base.InitHist(h[:o.nbase])
	if err != nil {
		return
	}
	return o.InitDamage(h[o.nbase:])
}

// InitIntVars initialises internal (secondary) variables
func (o ScalarDamage) InitIntVars(σ []float64) (s *msolid.State, err error) {
	s = msolid.NewState(o.Nsig, o.Nhist())
	if σ != nil {
		copy(s.Sig, σ)
	}
	err = o.InitHist(s.Alp)
	return
}

// MakeTrialState builds the immutable snapshot for one step's solve.
// It does not mutate the model or the given state.
func (o *ScalarDamage) MakeTrialState(s *msolid.State, ε, Δε []float64, T, T0, t, t0 float64) (ts *TrialState, err error) {
	if len(s.Alp) != o.Nhist() {
		return nil, chk.Err("scalar-damage: state has %d history values; want %d", len(s.Alp), o.Nhist())
	}
	ts = &TrialState{
		Eps1: make([]float64, o.Nsig),
		Eps0: make([]float64, o.Nsig),
		Sig0: make([]float64, o.Nsig),
		Hst0: make([]float64, o.nbase),
		T1:   T, T0: T0, Tm1: t, Tm0: t0,
		D0: s.Alp[o.nbase],
		U0: s.U, Pw0: s.Pw,
	}
	copy(ts.Eps1, ε)
	copy(ts.Sig0, s.Sig)
	copy(ts.Hst0, s.Alp[:o.nbase])
	for i := 0; i < o.Nsig; i++ {
		ts.Eps0[i] = ε[i] - Δε[i]
	}
	return
}

// Nparams returns the number of Newton unknowns: the updated damage value
func (o ScalarDamage) Nparams() int { return 1 }

// InitX seeds the iterate with the damage at the beginning of the step.
// Damage is monotonically non-decreasing in all supported laws, so the
// zero-rate assumption is the best available initial guess.
func (o ScalarDamage) InitX(x []float64, ts *TrialState) error {
	x[0] = ts.D0
	return nil
}

// RJ computes the coupled residual R = d - d_n - ω and its Jacobian for a
// candidate damage value d = x[0]. The Jacobian carries both the direct
// dependence of ω on d and the indirect one through the damaged stress.
func (o *ScalarDamage) RJ(R []float64, J *la.Matrix, x []float64, ts *TrialState) (err error) {
	d := x[0]
	σp, err := o.effUpdate(ts)
	if err != nil {
		return
	}
	for i := 0; i < o.Nsig; i++ {
		o.σ1[i] = (1.0 - d) * σp[i]
	}
	ω, err := o.Law.Damage(d, ts.D0, ts.Eps1, ts.Eps0, o.σ1, ts.Sig0, ts.T1, ts.T0, ts.Tm1, ts.Tm0)
	if err != nil {
		return
	}
	R[0] = d - ts.D0 - ω
	ωd, err := o.Law.DdamageDd(d, ts.D0, ts.Eps1, ts.Eps0, o.σ1, ts.Sig0, ts.T1, ts.T0, ts.Tm1, ts.Tm0)
	if err != nil {
		return
	}
	err = o.Law.DdamageDs(o.ωs, d, ts.D0, ts.Eps1, ts.Eps0, o.σ1, ts.Sig0, ts.T1, ts.T0, ts.Tm1, ts.Tm0)
	if err != nil {
		return
	}
	J.Set(0, 0, 1.0-ωd+la.VecDot(o.ωs, σp)) // dσ/dd = -σ'
	return
}

// Update updates stresses for given strains
func (o *ScalarDamage) Update(s *msolid.State, ε, Δε []float64, T, T0, t, t0 float64) (err error) {

	// trial state
	ts, err := o.MakeTrialState(s, ε, Δε, T, T0, t, t0)
	if err != nil {
		return
	}

	// solve for the damage at the end of the step
	err = o.InitX(o.x, ts)
	if err != nil {
		return
	}
	err = Solve(o, o.x, ts, o.Tol, o.Miter, o.Verb)
	if err != nil {
		return
	}
	d := o.x[0]
	if d < 0 || d >= 1 {
		return chk.Err("scalar-damage: non-physical damage value d=%g", d)
	}

	// final base update at the converged damage
	σp, err := o.effUpdate(ts)
	if err != nil {
		return
	}
	for i := 0; i < o.Nsig; i++ {
		o.σ1[i] = (1.0 - d) * σp[i]
		if math.IsNaN(o.σ1[i]) || math.IsInf(o.σ1[i], 0) {
			return chk.Err("scalar-damage: non-finite stress component σ[%d]=%v", i, o.σ1[i])
		}
	}

	// consistent tangent of the damaged response
	err = o.Base.CalcD(o.aprm, o.bsta, false)
	if err != nil {
		return
	}
	err = o.tangent(d, ts, σp)
	if err != nil {
		return
	}

	// set new state
	copy(s.Sig, o.σ1)
	copy(s.Alp[:o.nbase], o.bsta.Alp)
	s.Alp[o.nbase] = d
	s.U, s.Pw = o.bsta.U, o.bsta.Pw
	s.Dgam, s.Loading = o.bsta.Dgam, o.bsta.Loading
	s.T = T
	o.nupd++
	return
}

// CalcD computes D = dσ_new/dε_new consistent with Update. Before the first
// update the response is the damage-scaled elastic stiffness.
func (o *ScalarDamage) CalcD(D *la.Matrix, s *msolid.State, firstIt bool) (err error) {
	if o.nupd == 0 {
		d := s.Alp[o.nbase]
		err = o.Elast.Stiffness(D, s.T)
		if err != nil {
			return
		}
		for i := 0; i < o.Nsig; i++ {
			for j := 0; j < o.Nsig; j++ {
				D.Set(i, j, (1.0-d)*D.Get(i, j))
			}
		}
		return
	}
	o.dcon.CopyInto(D, 1)
	return
}

// effUpdate rebuilds the base scratch state from the trial snapshot, scales
// the starting stress to its effective value and runs the base update. It
// returns the undamaged effective stress σ'_np1.
func (o *ScalarDamage) effUpdate(ts *TrialState) (σp []float64, err error) {
	den := 1.0 - ts.D0
	if den < 1e-14 {
		return nil, chk.Err("scalar-damage: damage d=%g at beginning of step is too close to one", ts.D0)
	}
	for i := 0; i < o.Nsig; i++ {
		o.bsta.Sig[i] = ts.Sig0[i] / den
		o.Δεw[i] = ts.Eps1[i] - ts.Eps0[i]
	}
	copy(o.bsta.Alp, ts.Hst0)
	o.bsta.U, o.bsta.Pw = ts.U0, ts.Pw0
	o.bsta.Dgam, o.bsta.Loading = 0, false
	err = o.Base.Update(o.bsta, ts.Eps1, o.Δεw, ts.T1, ts.T0, ts.Tm1, ts.Tm0)
	if err != nil {
		return
	}
	return o.bsta.Sig, nil
}

// tangent assembles the algorithmic tangent by implicit differentiation of
// the coupled residual: the converged (d, σ) pair is an implicit function of
// the strain, so
//  dd/dε = (∂ω/∂ε + (1-d)·A'ᵀ·∂ω/∂σ) / (1 - ∂ω/∂d + ∂ω/∂σ·σ')
//  D     = (1-d)·A' - σ' ⊗ dd/dε
// where A' is the base model's own consistent tangent
func (o *ScalarDamage) tangent(d float64, ts *TrialState, σp []float64) (err error) {
	ωd, err := o.Law.DdamageDd(d, ts.D0, ts.Eps1, ts.Eps0, o.σ1, ts.Sig0, ts.T1, ts.T0, ts.Tm1, ts.Tm0)
	if err != nil {
		return
	}
	err = o.Law.DdamageDs(o.ωs, d, ts.D0, ts.Eps1, ts.Eps0, o.σ1, ts.Sig0, ts.T1, ts.T0, ts.Tm1, ts.Tm0)
	if err != nil {
		return
	}
	err = o.Law.DdamageDe(o.ωe, d, ts.D0, ts.Eps1, ts.Eps0, o.σ1, ts.Sig0, ts.T1, ts.T0, ts.Tm1, ts.Tm0)
	if err != nil {
		return
	}
	k1 := 1.0 - ωd + la.VecDot(o.ωs, σp)
	if math.Abs(k1) < 1e-14 {
		return chk.Err("scalar-damage: singular coupling factor k1=%g in tangent assembly", k1)
	}
	la.MatTrVecMul(o.atw, 1, o.aprm, o.ωs)
	for j := 0; j < o.Nsig; j++ {
		o.ddε[j] = (o.ωe[j] + (1.0-d)*o.atw[j]) / k1
	}
	for i := 0; i < o.Nsig; i++ {
		for j := 0; j < o.Nsig; j++ {
			o.dcon.Set(i, j, (1.0-d)*o.aprm.Get(i, j)-σp[i]*o.ddε[j])
		}
	}
	return
}
