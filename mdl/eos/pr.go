// Copyright 2026 The EOSSolved Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import "math"

// PR implements the Peng-Robinson equation of state:
//   m = 0.37464 + 1.54226ω - 0.26992ω²
//   α = (1 + m・(1 - √Tr))²
//   A = 0.45724・α・Pr/Tr²    B = 0.07780・Pr/Tr
//   Z³ + (B-1)・Z² + (A - 3B² - 2B)・Z + (B³ + B² - A・B) = 0
type PR struct {
	Fluid
}

// add model to factory
func init() {
	allocators["pr"] = func() Model { return new(PR) }
}

// coefficients builds the compressibility cubic
func (o *PR) coefficients(Tr, Pr float64) (c1, c2, c3 float64) {
	m := 0.37464 + 1.54226*o.Omega - 0.26992*o.Omega*o.Omega
	alpha := 1.0 + m*(1.0-math.Sqrt(Tr))
	alpha *= alpha
	A := 0.45724 * alpha * Pr / (Tr * Tr)
	B := 0.07780 * Pr / Tr
	return B - 1.0, A - 3.0*B*B - 2.0*B, B*B*B + B*B - A*B
}

// Calc computes compressibility factor and molar volume
func (o *PR) Calc(P, T float64) (Z, v float64, err error) {
	Z, v = o.calcZ(o, P, T)
	return
}
