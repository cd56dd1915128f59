// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdamage

// TrialState is an immutable snapshot of all quantities needed to evaluate
// the coupled damage residual during one Newton solve. It is built once per
// step, never mutated, and discarded after the step.
type TrialState struct {
	Eps1 []float64 // strain at end of step
	Eps0 []float64 // strain at beginning of step
	T1   float64   // temperature at end of step
	T0   float64   // temperature at beginning of step
	Tm1  float64   // time at end of step
	Tm0  float64   // time at beginning of step
	Sig0 []float64 // (damaged) stress at beginning of step
	Hst0 []float64 // base model history at beginning of step
	D0   float64   // damage at beginning of step
	U0   float64   // strain energy at beginning of step
	Pw0  float64   // plastic work at beginning of step
}
