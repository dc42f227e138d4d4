// Copyright 2026 The EOSSolved Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import "math"

// RK implements the Redlich-Kwong equation of state:
//   A = 0.42748・Tr^(-1/2)・Pr/Tr²    B = 0.08664・Pr/Tr
//   Z³ - Z² + (A - B - B²)・Z - A・B = 0
type RK struct {
	Fluid
}

// add model to factory
func init() {
	allocators["rk"] = func() Model { return new(RK) }
}

// coefficients builds the compressibility cubic
func (o *RK) coefficients(Tr, Pr float64) (c1, c2, c3 float64) {
	alpha := math.Pow(Tr, -0.5)
	A := 0.42748 * alpha * Pr / (Tr * Tr)
	B := 0.08664 * Pr / Tr
	return -1.0, A - B - B*B, -A * B
}

// Calc computes compressibility factor and molar volume
func (o *RK) Calc(P, T float64) (Z, v float64, err error) {
	Z, v = o.calcZ(o, P, T)
	return
}
