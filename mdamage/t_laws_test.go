// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdamage

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"
	"github.com/khhsu0724/neml/msolid"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// newTestElastic returns an elastic model for strain-driven laws
func newTestElastic(tst *testing.T, ndim int) msolid.Elastic {
	ec := new(msolid.SmallElasticity)
	err := ec.Init(ndim, false, []*dbf.P{
		&dbf.P{N: "E", V: 1000},
		&dbf.P{N: "nu", V: 0.25},
	})
	if err != nil {
		tst.Fatalf("cannot initialise elastic model: %v", err)
	}
	return ec
}

// checkPartials compares the analytic partials of a law against central
// finite differences at the given evaluation point
func checkPartials(tst *testing.T, law RateModel, d, dn float64, ε1, ε0, σ1, σ0 []float64, T, T0, t, t0, hd, hs, tol float64) {

	nsig := len(σ1)

	// ∂ω/∂d
	ana, err := law.DdamageDd(d, dn, ε1, ε0, σ1, σ0, T, T0, t, t0)
	if err != nil {
		tst.Errorf("DdamageDd failed: %v\n", err)
		return
	}
	dnum := num.DerivCen5(d, hd, func(x float64) (res float64) {
		res, _ = law.Damage(x, dn, ε1, ε0, σ1, σ0, T, T0, t, t0)
		return
	})
	chk.AnaNum(tst, "∂ω/∂d   ", tol, ana, dnum, chk.Verbose)

	// ∂ω/∂σ
	dds := make([]float64, nsig)
	err = law.DdamageDs(dds, d, dn, ε1, ε0, σ1, σ0, T, T0, t, t0)
	if err != nil {
		tst.Errorf("DdamageDs failed: %v\n", err)
		return
	}
	σtmp := make([]float64, nsig)
	for j := 0; j < nsig; j++ {
		jj := j
		dnum = num.DerivCen5(σ1[jj], hs, func(x float64) (res float64) {
			copy(σtmp, σ1)
			σtmp[jj] = x
			res, _ = law.Damage(d, dn, ε1, ε0, σtmp, σ0, T, T0, t, t0)
			return
		})
		chk.AnaNum(tst, io.Sf("∂ω/∂σ[%d]", j), tol, dds[j], dnum, chk.Verbose)
	}

	// ∂ω/∂ε
	dde := make([]float64, nsig)
	err = law.DdamageDe(dde, d, dn, ε1, ε0, σ1, σ0, T, T0, t, t0)
	if err != nil {
		tst.Errorf("DdamageDe failed: %v\n", err)
		return
	}
	εtmp := make([]float64, nsig)
	for j := 0; j < nsig; j++ {
		jj := j
		dnum = num.DerivCen5(ε1[jj], hd, func(x float64) (res float64) {
			copy(εtmp, ε1)
			εtmp[jj] = x
			res, _ = law.Damage(d, dn, εtmp, ε0, σ1, σ0, T, T0, t, t0)
			return
		})
		chk.AnaNum(tst, io.Sf("∂ω/∂ε[%d]", j), tol, dde[j], dnum, chk.Verbose)
	}
}

func Test_creep01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("creep01. classical creep law: partials and monotonicity")

	ndim := 3
	law, err := New("cls-creep")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = law.Init(ndim, []*dbf.P{
		&dbf.P{N: "A", V: 100},
		&dbf.P{N: "xi", V: 2},
		&dbf.P{N: "phi", V: 1.7},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// evaluation point
	σ1 := []float64{50, -10, 5, 8, -3, 2}
	σ0 := []float64{40, -8, 4, 6, -2, 1}
	ε1 := []float64{0.002, -0.001, -0.001, 0.0005, 0, 0}
	ε0 := make([]float64, 6)
	T, T0, t, t0 := 500.0, 490.0, 2.5, 2.0

	// partials vs finite differences over a range of damage values
	for _, d := range []float64{0, 0.1, 0.35, 0.7} {
		checkPartials(tst, law, d, 0, ε1, ε0, σ1, σ0, T, T0, t, t0, 1e-6, 1e-4, 1e-6)
	}

	// monotonic: increment is non-negative for valid inputs
	for _, d := range utl.LinSpace(0, 0.9, 10) {
		ω, err := law.Damage(d, 0, ε1, ε0, σ1, σ0, T, T0, t, t0)
		if err != nil {
			tst.Errorf("Damage failed: %v\n", err)
			return
		}
		if ω < 0 {
			tst.Errorf("damage increment must be non-negative: ω=%g at d=%g\n", ω, d)
			return
		}
	}

	// no spontaneous damage at zero loading
	zero := make([]float64, 6)
	ω, err := law.Damage(0, 0, zero, zero, zero, zero, T, T0, t, t0)
	if err != nil {
		tst.Errorf("Damage failed: %v\n", err)
		return
	}
	chk.Float64(tst, "ω(0)", 1e-17, ω, 0)
}

func Test_powlaw01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("powlaw01. power law: closed-form scenario and partials")

	ndim := 3
	law, err := New("pow-law")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = law.Init(ndim, []*dbf.P{
		&dbf.P{N: "A", V: 100},
		&dbf.P{N: "a", V: 2},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	law.(*PowerLaw).SetElastic(newTestElastic(tst, ndim))

	// closed-form scenario: σeq=50 and Δεp=0.001 => ω = 100·50²·0.001
	σ1 := []float64{50, 0, 0, 0, 0, 0} // uniaxial: σeq = 50
	σ0 := []float64{50, 0, 0, 0, 0, 0} // Δσ = 0 => Δεp comes from Δε alone
	ε0 := make([]float64, 6)
	ε1 := []float64{0.001, -0.0005, -0.0005, 0, 0, 0} // deviatoric: Δεp = 0.001
	T, T0, t, t0 := 300.0, 300.0, 1.0, 0.0
	ω, err := law.Damage(0, 0, ε1, ε0, σ1, σ0, T, T0, t, t0)
	if err != nil {
		tst.Errorf("Damage failed: %v\n", err)
		return
	}
	io.Pforan("ω = %v\n", ω)
	chk.Float64(tst, "ω", 1e-10, ω, 100.0*50.0*50.0*0.001)

	// partials vs finite differences at a general point
	σ1 = []float64{45, -12, 6, 9, -4, 3}
	σ0 = []float64{30, -8, 4, 6, -2, 1}
	ε1 = []float64{0.003, -0.001, -0.0015, 0.0008, 0.0002, 0}
	for _, d := range []float64{0, 0.2, 0.5} {
		checkPartials(tst, law, d, 0, ε1, ε0, σ1, σ0, T, T0, t, t0, 1e-6, 1e-4, 1e-5)
	}

	// no spontaneous damage at zero loading
	zero := make([]float64, 6)
	ω, err = law.Damage(0, 0, zero, zero, zero, zero, T, T0, t, t0)
	if err != nil {
		tst.Errorf("Damage failed: %v\n", err)
		return
	}
	chk.Float64(tst, "ω(0)", 1e-17, ω, 0)
}

func Test_expwork01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("expwork01. exponential work law: partials")

	ndim := 3
	law, err := New("exp-work")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = law.Init(ndim, []*dbf.P{
		&dbf.P{N: "W0", V: 10},
		&dbf.P{N: "k0", V: 0.001},
		&dbf.P{N: "af", V: 1.5},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	law.(*ExpWork).SetElastic(newTestElastic(tst, ndim))

	σ1 := []float64{45, -12, 6, 9, -4, 3}
	σ0 := []float64{30, -8, 4, 6, -2, 1}
	ε1 := []float64{0.003, -0.001, -0.0015, 0.0008, 0.0002, 0}
	ε0 := make([]float64, 6)
	T, T0, t, t0 := 300.0, 300.0, 1.0, 0.0
	for _, d := range []float64{0.05, 0.3, 0.6} {
		checkPartials(tst, law, d, 0, ε1, ε0, σ1, σ0, T, T0, t, t0, 1e-6, 1e-4, 1e-5)
	}

	// the rate function grows with damage (∂f/∂d > 0)
	ew := law.(*ExpWork)
	f0, _ := ew.F(σ1, 0.1, T)
	f1, _ := ew.F(σ1, 0.5, T)
	io.Pforan("f(0.1)=%v  f(0.5)=%v\n", f0, f1)
	if f1 <= f0 {
		tst.Errorf("exp-work rate must grow with damage: f(0.5)=%g <= f(0.1)=%g\n", f1, f0)
	}
}

func Test_expwork02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("expwork02. degenerate offset")

	// k0 must be positive: with af<1 the derivative blows up at d+k0=0
	ndim := 3
	law, _ := New("exp-work")
	err := law.Init(ndim, []*dbf.P{
		&dbf.P{N: "W0", V: 10},
		&dbf.P{N: "k0", V: 0},
		&dbf.P{N: "af", V: 0.5},
	})
	if err == nil {
		tst.Errorf("Init must fail for k0=0\n")
		return
	}
	io.Pforan("err = %v\n", err)

	law, _ = New("exp-work")
	err = law.Init(ndim, []*dbf.P{
		&dbf.P{N: "W0", V: 10},
		&dbf.P{N: "k0", V: -0.001},
		&dbf.P{N: "af", V: 1.5},
	})
	if err == nil {
		tst.Errorf("Init must fail for negative k0\n")
		return
	}
	io.Pforan("err = %v\n", err)

	// an interpolated k0(T) may still reach zero at run time; the partials
	// must report the degeneracy instead of returning Inf or NaN
	ew := new(ExpWork)
	err = ew.Init(ndim, []*dbf.P{
		&dbf.P{N: "W0", V: 10},
		&dbf.P{N: "k0", V: 0.001},
		&dbf.P{N: "af", V: 0.5},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	ew.SetElastic(newTestElastic(tst, ndim))
	ew.K0 = &dbf.Cte{C: 0}
	σ1 := []float64{50, 0, 0, 0, 0, 0}
	_, err = ew.DfDd(σ1, 0, 300)
	if err == nil {
		tst.Errorf("DfDd must fail at d+k0=0\n")
		return
	}
	io.Pforan("err = %v\n", err)

	ε1 := []float64{0.001, -0.0005, -0.0005, 0, 0, 0}
	zero := make([]float64, 6)
	_, err = ew.DdamageDd(0, 0, ε1, zero, σ1, σ1, 300, 300, 1, 0)
	if err == nil {
		tst.Errorf("DdamageDd must fail at d+k0=0\n")
		return
	}
	io.Pforan("err = %v\n", err)
}

func Test_laws02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("laws02. configuration errors")

	ndim := 3
	law, _ := New("cls-creep")
	err := law.Init(ndim, []*dbf.P{&dbf.P{N: "A", V: 100}})
	if err == nil {
		tst.Errorf("Init must fail when xi and phi are missing\n")
		return
	}
	io.Pforan("err = %v\n", err)

	law, _ = New("pow-law")
	err = law.Init(ndim, []*dbf.P{&dbf.P{N: "wrong", V: 1}})
	if err == nil {
		tst.Errorf("Init must fail for unknown parameter\n")
		return
	}
	io.Pforan("err = %v\n", err)

	_, err = New("unknown-law")
	if err == nil {
		tst.Errorf("New must fail for unknown law\n")
	}
	io.Pforan("err = %v\n", err)
}
