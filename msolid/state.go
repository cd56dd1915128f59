// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

// State holds all continuum mechanics data, including for updating the state
type State struct {

	// essential
	Sig []float64 // σ: current Cauchy stress tensor [nsig]
	Alp []float64 // α: internal (history) variables [nalp]

	// accumulated quantities
	U  float64 // strain energy density
	Pw float64 // plastic (dissipated) work density

	// auxiliary
	T       float64 // temperature of the last update
	Dgam    float64 // Δγ: increment of Lagrange multiplier (for plasticity only)
	Loading bool    // elastoplastic loading flag (for plasticity only)
}

// NewState allocates state structure
//  nsig -- number of stress components
//  nalp -- number of internal variables
func NewState(nsig, nalp int) *State {
	var state State
	state.Sig = make([]float64, nsig)
	if nalp > 0 {
		state.Alp = make([]float64, nalp)
	}
	return &state
}

// Set copies states
//  Note: 1) this and other states must have been pre-allocated with the same sizes
//        2) this method does not check for errors
func (o *State) Set(other *State) {
	copy(o.Sig, other.Sig)
	copy(o.Alp, other.Alp)
	o.U = other.U
	o.Pw = other.Pw
	o.T = other.T
	o.Dgam = other.Dgam
	o.Loading = other.Loading
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	other := NewState(len(o.Sig), len(o.Alp))
	other.Set(o)
	return other
}
