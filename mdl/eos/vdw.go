// Copyright 2026 The EOSSolved Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

// VdW implements the van der Waals equation of state. In reduced variables
//   A = (27/64)・Pr/Tr²    B = (1/8)・Pr/Tr
// the compressibility cubic is
//   Z³ - (1+B)・Z² + A・Z - A・B = 0
type VdW struct {
	Fluid
}

// add model to factory
func init() {
	allocators["vdw"] = func() Model { return new(VdW) }
}

// coefficients builds the compressibility cubic
func (o *VdW) coefficients(Tr, Pr float64) (c1, c2, c3 float64) {
	A := (27.0 / 64.0) * Pr / (Tr * Tr)
	B := (1.0 / 8.0) * Pr / Tr
	return -(1.0 + B), A, -A * B
}

// Calc computes compressibility factor and molar volume
func (o *VdW) Calc(P, T float64) (Z, v float64, err error) {
	Z, v = o.calcZ(o, P, T)
	return
}
