// Copyright 2026 The EOSSolved Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Rackett implements the Rackett correlation for saturated-liquid molar
// volume, with the Rackett parameter estimated by Yamada-Gunn:
//   Z_ra = 0.29056 - 0.08775ω
//   Vc   = R・Tc・Z_ra/Pc
//   v    = Vc・Z_ra^((1-Tr)^(2/7))
// Liquid only: states with Tr ≥ 1 are infeasible and produce an error.
// Z is back-computed from v for reporting
type Rackett struct {
	Fluid
}

// add model to factory
func init() {
	allocators["rackett"] = func() Model { return new(Rackett) }
}

// Calc computes compressibility factor and saturated-liquid molar volume
func (o *Rackett) Calc(P, T float64) (Z, v float64, err error) {
	Tr := T / o.Tc
	if Tr >= 1.0 {
		return 0, 0, chk.Err("T > Tc (Not Liquid)")
	}
	Zra := 0.29056 - 0.08775*o.Omega
	Vc := o.Rgas * o.Tc * Zra / o.Pc
	v = Vc * math.Pow(Zra, math.Pow(1.0-Tr, 2.0/7.0))
	Z = P * v / (o.Rgas * T)
	return
}
