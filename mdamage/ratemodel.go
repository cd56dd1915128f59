// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mdamage implements scalar damage models coupled to solid models
// at material (integration) points
package mdamage

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// RateModel defines the contract of scalar damage rate laws. Implementations
// are pure evaluators: they hold parameters and workspaces only, never state,
// so the same law may be called repeatedly and out of order.
//
// All methods are evaluated at the same arguments:
//  d, dn    -- damage at the end and beginning of the (pseudo) time step
//  ε1, ε0   -- strains at the end and beginning of the step
//  σ1, σ0   -- damaged stresses at the end and beginning of the step
//  T, T0    -- temperatures
//  t, t0    -- times
type RateModel interface {
	Init(ndim int, prms dbf.Params) error // initialises model
	GetPrms() dbf.Params                  // gets (an example) of parameters
	InitDamage() float64                  // starting value of the damage variable

	// Damage returns the damage increment ω over the step
	Damage(d, dn float64, ε1, ε0, σ1, σ0 []float64, T, T0, t, t0 float64) (ω float64, err error)

	// DdamageDd returns ∂ω/∂d
	DdamageDd(d, dn float64, ε1, ε0, σ1, σ0 []float64, T, T0, t, t0 float64) (res float64, err error)

	// DdamageDe computes ∂ω/∂ε into dde
	DdamageDe(dde []float64, d, dn float64, ε1, ε0, σ1, σ0 []float64, T, T0, t, t0 float64) error

	// DdamageDs computes ∂ω/∂σ into dds
	DdamageDs(dds []float64, d, dn float64, ε1, ε0, σ1, σ0 []float64, T, T0, t, t0 float64) error
}

// New returns new rate model
func New(name string) (model RateModel, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("rate model %q is not available in mdamage database", name)
	}
	return allocator(), nil
}

// allocators holds all available rate models; name => allocator
var allocators = map[string]func() RateModel{}
