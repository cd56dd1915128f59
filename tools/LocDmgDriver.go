// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"encoding/json"
	"flag"
	"path"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/khhsu0724/neml/mdamage"
	"github.com/khhsu0724/neml/msolid"
)

// Material holds the description of one damaged material
type Material struct {
	Name     string   // material name
	Base     string   // base model name; e.g. "von-mises"
	BasePrms dbf.Params // base model parameters, including elasticity
	Law      string   // damage rate law name; e.g. "cls-creep"
	LawPrms  dbf.Params // rate law parameters
	Prms     dbf.Params // damage solver settings; e.g. tol, miter
}

// MatDb holds a database of materials
type MatDb struct {
	Materials []*Material
}

// Get returns a material by name; nil if not found
func (o MatDb) Get(name string) *Material {
	for _, m := range o.Materials {
		if m.Name == name {
			return m
		}
	}
	return nil
}

type Input struct {
	Dir     string   // directory with .mat and .pat files
	MatFn   string   // material database filename
	MatName string   // material name
	PathFn  string   // path filename
	PlotSet []string // plot keys
	Eps     bool     // generate .eps instead of .png
	CheckD  bool     // check consistent tangent along the path
}

func (o *Input) PostProcess() {
	if len(o.PlotSet) == 0 {
		o.PlotSet = msolid.PlotSet6
	}
}

func (o Input) String() (l string) {
	l += "\nInput data\n"
	l += "==========\n"
	l += io.Sf("directory with .mat and .pat files : Dir     = %v\n", o.Dir)
	l += io.Sf("material database filename         : MatFn   = %v\n", o.MatFn)
	l += io.Sf("material name                      : MatName = %v\n", o.MatName)
	l += io.Sf("path filename                      : PathFn  = %v\n", o.PathFn)
	l += io.Sf("plot set                           : PlotSet = %q\n", o.PlotSet)
	l += io.Sf("generate .eps instead of .png      : Eps     = %v\n", o.Eps)
	l += io.Sf("check consistent tangent           : CheckD  = %v\n", o.CheckD)
	l += "\n"
	return
}

func main() {

	// input data file
	inpfn := "data/locdmgdrv1.inp"
	flag.Parse()
	if len(flag.Args()) > 0 {
		inpfn = flag.Arg(0)
	}
	if io.FnExt(inpfn) == "" {
		inpfn += ".inp"
	}

	// read and parse input data
	var in Input
	b := io.ReadFile(inpfn)
	err := json.Unmarshal(b, &in)
	if err != nil {
		io.PfRed("cannot parse %s\n", inpfn)
		return
	}
	in.PostProcess()

	// print input data
	io.Pf("%v\n", in)

	// read material database
	var mdb MatDb
	b = io.ReadFile(path.Join(in.Dir, in.MatFn))
	err = json.Unmarshal(b, &mdb)
	if err != nil {
		io.PfRed("cannot parse material database %s\n", in.MatFn)
		return
	}
	mat := mdb.Get(in.MatName)
	if mat == nil {
		io.PfRed("cannot get material %q\n", in.MatName)
		return
	}

	// base model
	ndim := 3
	pstress := false
	base, err := msolid.New(mat.Base)
	if err != nil {
		io.PfRed("cannot allocate base model: %v\n", err)
		return
	}
	err = base.Init(ndim, pstress, mat.BasePrms)
	if err != nil {
		io.PfRed("cannot initialise base model: %v\n", err)
		return
	}

	// elastic model
	elast := new(msolid.SmallElasticity)
	err = elast.Init(ndim, pstress, mat.BasePrms)
	if err != nil {
		io.PfRed("cannot initialise elastic model: %v\n", err)
		return
	}

	// rate law
	law, err := mdamage.New(mat.Law)
	if err != nil {
		io.PfRed("cannot allocate rate law: %v\n", err)
		return
	}
	err = law.Init(ndim, mat.LawPrms)
	if err != nil {
		io.PfRed("cannot initialise rate law: %v\n", err)
		return
	}

	// damage model
	mdl := &mdamage.ScalarDamage{Base: base.(msolid.Solid), Elast: elast, Law: law}
	err = mdl.Init(ndim, pstress, mat.Prms)
	if err != nil {
		io.PfRed("cannot initialise damage model: %v\n", err)
		return
	}

	// load path
	var pth msolid.Path
	err = pth.ReadJson(ndim, path.Join(in.Dir, in.PathFn))
	if err != nil {
		io.PfRed("cannot read path file %v\n", err)
		return
	}

	// driver
	var drv msolid.Driver
	drv.CheckD = in.CheckD
	err = drv.InitWithModel(ndim, mdl)
	if err != nil {
		io.PfRed("driver: Init failed: %v\n", err)
		return
	}

	// run
	err = drv.Run(&pth)
	if err != nil {
		io.PfRed("driver: Run failed: %v\n", err)
		return
	}

	// report final state
	last := drv.Res[len(drv.Res)-1]
	io.Pforan("σ = %v\n", last.Sig)
	io.Pforan("α = %v\n", last.Alp)

	// plot
	var plr msolid.Plotter
	plr.Idmg = base.Nhist()
	plr.SetFig(false, in.Eps, 1.0, 400, "/tmp", "dmg_"+io.FnKey(in.PathFn))
	plr.Plot(in.PlotSet, drv.Res, drv.Eps, drv.Times, true, true)
}
