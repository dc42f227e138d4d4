// Copyright 2026 The EOSSolved Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import "math"

// Pitzer implements the Pitzer correlation for the second virial
// coefficient (truncated virial EoS):
//   Z = 1 + (B0 + ω・B1)・Pr/Tr
//   B0 = 0.083 - 0.422/Tr^1.6
//   B1 = 0.139 - 0.172/Tr^4.2
// Closed form; no cubic solve
type Pitzer struct {
	Fluid
}

// add model to factory
func init() {
	allocators["pitzer"] = func() Model { return new(Pitzer) }
}

// Calc computes compressibility factor and molar volume
func (o *Pitzer) Calc(P, T float64) (Z, v float64, err error) {
	Tr, Pr := o.reduced(P, T)
	B0 := 0.083 - 0.422/math.Pow(Tr, 1.6)
	B1 := 0.139 - 0.172/math.Pow(Tr, 4.2)
	Z = 1.0 + (B0+o.Omega*B1)*Pr/Tr
	v = Z * o.Rgas * T / P
	return
}
