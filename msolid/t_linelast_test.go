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

func Test_linelast01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linelast01. driver run and closed-form check")

	// allocate driver
	ndim := 3
	nsig := 2 * ndim
	var drv Driver
	drv.CheckD = true
	drv.TolD = 1e-7
	err := drv.Init("lin-elast", ndim, false, []*dbf.P{
		&dbf.P{N: "E", V: 1000},
		&dbf.P{N: "nu", V: 0.25},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// path
	εend := []float64{0.001, -0.0005, -0.0005, 0, 0, 0}
	var pth Path
	err = pth.SetStrains(ndim, 4, [][]float64{make([]float64, nsig), εend}, nil, nil)
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

	// closed-form stress
	mdl := drv.Model().(*LinElast)
	D := la.NewMatrix(nsig, nsig)
	mdl.Elast.Stiffness(D, 0)
	σana := make([]float64, nsig)
	la.MatVecMul(σana, 1, D, εend)
	res := drv.Res[len(drv.Res)-1]
	io.Pforan("σ    = %v\n", res.Sig)
	io.Pforan("σana = %v\n", σana)
	chk.Array(tst, "σ", 1e-10, res.Sig, σana)

	// strain energy: u = σ·ε/2 for a proportional linear-elastic path
	chk.Float64(tst, "u", 1e-12, res.U, la.VecDot(σana, εend)/2.0)
	chk.Float64(tst, "pw", 1e-17, res.Pw, 0)
}
