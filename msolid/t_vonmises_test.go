// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

func Test_vm01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vm01. radial return and consistent tangent")

	// allocate driver
	ndim := 3
	nsig := 2 * ndim
	var drv Driver
	drv.CheckD = true
	drv.TolD = 1e-2 // elastoplastic transition increment is checked with a larger tolerance
	err := drv.Init("von-mises", ndim, false, []*dbf.P{
		&dbf.P{N: "E", V: 1000},
		&dbf.P{N: "nu", V: 0.25},
		&dbf.P{N: "qy0", V: 2},
		&dbf.P{N: "H", V: 100},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// deviatoric strain path crossing the yield surface
	a := 0.008
	ε1 := []float64{a, -a / 2.0, -a / 2.0, 0, 0, 0}
	ε2 := []float64{2 * a, -a, -a, 0, 0, 0}
	var pth Path
	err = pth.SetStrains(ndim, 10, [][]float64{make([]float64, nsig), ε1, ε2}, nil, nil)
	if err != nil {
		tst.Errorf("SetStrains failed: %v\n", err)
		return
	}

	// run
	err = drv.Run(&pth)
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}

	// during loading, the stress must sit on the hardened yield surface
	nplastic := 0
	for _, res := range drv.Res {
		if res.Loading {
			q := M_q(res.Sig)
			chk.Float64(tst, "f(σ,α)=0", 1e-8, q, 2.0+100.0*res.Alp[0])
			nplastic++
		}
	}
	io.Pforan("nplastic = %v\n", nplastic)
	if nplastic == 0 {
		tst.Errorf("path did not cause plastic loading\n")
		return
	}

	// plastic work is positive and accumulated plastic strain grows
	last := drv.Res[len(drv.Res)-1]
	io.Pforan("α = %v  pw = %v  u = %v\n", last.Alp[0], last.Pw, last.U)
	if last.Alp[0] <= 0 {
		tst.Errorf("accumulated plastic strain must be positive: α=%g\n", last.Alp[0])
	}
	if last.Pw <= 0 {
		tst.Errorf("plastic work must be positive: pw=%g\n", last.Pw)
	}
}

// noCompliance fails on Compliance calls; the stiffness side keeps working
type noCompliance struct {
	SmallElasticity
}

func (o noCompliance) Compliance(S *la.Matrix, T float64) error {
	return chk.Err("compliance is not available")
}

func Test_vm02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vm02. compliance failure aborts plastic update")

	ndim := 3
	prms := []*dbf.P{
		&dbf.P{N: "E", V: 1000},
		&dbf.P{N: "nu", V: 0.25},
		&dbf.P{N: "qy0", V: 2},
		&dbf.P{N: "H", V: 100},
	}
	mdl, err := New("von-mises")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(ndim, false, prms)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	vm := mdl.(*VonMises)
	s, err := vm.InitIntVars(nil)
	if err != nil {
		tst.Errorf("InitIntVars failed: %v\n", err)
		return
	}

	// rebind an elastic component with a broken compliance
	bad := new(noCompliance)
	err = bad.Init(ndim, false, prms)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	vm.SetElastic(bad)

	// elastic steps do not need the compliance
	a := 0.0001
	Δεe := []float64{a, -a / 2.0, -a / 2.0, 0, 0, 0}
	err = vm.Update(s, Δεe, Δεe, 0, 0, 1, 0)
	if err != nil {
		tst.Errorf("elastic Update must not fail: %v\n", err)
		return
	}
	if s.Loading {
		tst.Errorf("small step must remain elastic\n")
		return
	}

	// a plastic step accumulates plastic work and must report the failure
	b := 0.01
	Δεp := []float64{b, -b / 2.0, -b / 2.0, 0, 0, 0}
	err = vm.Update(s, Δεp, Δεp, 0, 0, 2, 1)
	if err == nil {
		tst.Errorf("plastic Update must fail when the compliance is unavailable\n")
		return
	}
	io.Pforan("err = %v\n", err)
}
