// Copyright 2026 The EOSSolved Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import "math"

// SRK implements the Soave-Redlich-Kwong equation of state:
//   m = 0.480 + 1.574ω - 0.176ω²
//   α = (1 + m・(1 - √Tr))²
//   A = 0.42748・α・Pr/Tr²    B = 0.08664・Pr/Tr
//   Z³ - Z² + (A - B - B²)・Z - A・B = 0
type SRK struct {
	Fluid
}

// add model to factory
func init() {
	allocators["srk"] = func() Model { return new(SRK) }
}

// coefficients builds the compressibility cubic
func (o *SRK) coefficients(Tr, Pr float64) (c1, c2, c3 float64) {
	m := 0.480 + 1.574*o.Omega - 0.176*o.Omega*o.Omega
	alpha := 1.0 + m*(1.0-math.Sqrt(Tr))
	alpha *= alpha
	A := 0.42748 * alpha * Pr / (Tr * Tr)
	B := 0.08664 * Pr / Tr
	return -1.0, A - B - B*B, -A * B
}

// Calc computes compressibility factor and molar volume
func (o *SRK) Calc(P, T float64) (Z, v float64, err error) {
	Z, v = o.calcZ(o, P, T)
	return
}
