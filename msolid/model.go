// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements models for solids at material (integration) points
package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"
)

// Model defines the interface for solid models
type Model interface {
	Init(ndim int, pstress bool, prms dbf.Params) error // initialises model
	GetPrms() dbf.Params                                // gets (an example) of parameters
	Nhist() int                                         // number of history (internal) variables
	InitHist(h []float64) error                         // initialises history variables
	InitIntVars(σ []float64) (*State, error)            // initialises AND allocates internal (secondary) variables
}

// Small defines rate type solid models for small strain analyses
//  Note: T, T0, t and t0 are the temperatures and times at the end
//        and beginning of the (pseudo) time step
type Small interface {
	Update(s *State, ε, Δε []float64, T, T0, t, t0 float64) error // updates stresses for given strains
	CalcD(D *la.Matrix, s *State, firstIt bool) error             // computes D = dσ_new/dε_new consistent with Update
}

// Solid combines Model and Small
type Solid interface {
	Model
	Small
}

// Elastic defines the linear elastic stiffness/compliance contract
type Elastic interface {
	Init(ndim int, pstress bool, prms dbf.Params) error // initialises model
	GetPrms() dbf.Params                                // gets (an example) of parameters
	Stiffness(D *la.Matrix, T float64) error            // computes De = dσ/dε
	Compliance(S *la.Matrix, T float64) error           // computes Se = inv(De)
	Moduli(T float64) (K, G float64)                    // returns bulk and shear moduli
}

// ElasticSetter defines models that can have their elastic component rebound
// after construction. Rebinding must not run concurrently with Update.
type ElasticSetter interface {
	SetElastic(e Elastic)
}

// New returns new solid model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in msolid database", name)
	}
	return allocator(), nil
}

// allocators holds all available solid models; modelname => allocator
var allocators = map[string]func() Model{}
