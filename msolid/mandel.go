// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "math"

// Second order symmetric tensors are stored as Mandel vectors with
// nsig = 2*ndim components:
//   σ = {σ00, σ11, σ22, σ01*√2}              (2D)
//   σ = {σ00, σ11, σ22, σ01*√2, σ12*√2, σ02*√2}  (3D)
// In this basis the double contraction of two tensors is the plain
// dot product of their vectors.

// constants
var (
	SQ2    = math.Sqrt(2.0)       // √2
	SQ2by3 = math.Sqrt(2.0 / 3.0) // √(2/3)
	SQ3by2 = math.Sqrt(3.0 / 2.0) // √(3/2)
)

// Im is the Mandel vector of the second order identity tensor
var Im = []float64{1, 1, 1, 0, 0, 0}

// Psd is the Mandel matrix of the symmetric-deviatoric projector
//  Psd = IIsym - (Im dyad Im) / 3
var Psd = [][]float64{
	{2.0 / 3.0, -1.0 / 3.0, -1.0 / 3.0, 0, 0, 0},
	{-1.0 / 3.0, 2.0 / 3.0, -1.0 / 3.0, 0, 0, 0},
	{-1.0 / 3.0, -1.0 / 3.0, 2.0 / 3.0, 0, 0, 0},
	{0, 0, 0, 1, 0, 0},
	{0, 0, 0, 0, 1, 0},
	{0, 0, 0, 0, 0, 1},
}

// M_p returns the mean pressure invariant (positive in compression)
//  p = -tr(σ) / 3
func M_p(σ []float64) float64 {
	return -(σ[0] + σ[1] + σ[2]) / 3.0
}

// M_q returns the von Mises deviatoric stress invariant
//  q = √(3 J2) = √(3/2) * norm(dev(σ))
func M_q(σ []float64) float64 {
	p := M_p(σ)
	sno2 := 0.0
	for i := 0; i < len(σ); i++ {
		s := σ[i] + p*Im[i]
		sno2 += s * s
	}
	return SQ3by2 * math.Sqrt(sno2)
}

// M_devσ computes the deviator of a stress tensor and returns its norm
// and the p, q invariants
func M_devσ(s, σ []float64) (sno, p, q float64) {
	p = M_p(σ)
	sno2 := 0.0
	for i := 0; i < len(σ); i++ {
		s[i] = σ[i] + p*Im[i]
		sno2 += s[i] * s[i]
	}
	sno = math.Sqrt(sno2)
	q = SQ3by2 * sno
	return
}

// M_devε computes the deviator of a strain tensor and returns its norm
// and the volumetric and deviatoric strain invariants
//  εv = tr(ε)   εd = √(2/3) * norm(dev(ε))
func M_devε(devε, ε []float64) (eno, εv, εd float64) {
	εv = ε[0] + ε[1] + ε[2]
	eno2 := 0.0
	for i := 0; i < len(ε); i++ {
		devε[i] = ε[i] - εv*Im[i]/3.0
		eno2 += devε[i] * devε[i]
	}
	eno = math.Sqrt(eno2)
	εd = SQ2by3 * eno
	return
}
