// Copyright 2026 The EOSSolved Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Result holds the outcome of a mass inventory calculation.
// Z and MassKg are each rounded to 4 decimal places; nothing else in the
// calculation pipeline is rounded
type Result struct {
	Z      float64 // compressibility factor
	MassKg float64 // mass of fluid occupying the given total volume [kg]
}

// CalcMass computes the compressibility factor and the mass of fluid that
// occupies the total volume Vtotal [m³] at pressure P [Pa] and temperature
// T [K]:
//   moles = Vtotal/v    mass = moles・MW/1000
// with the molar volume v given by the model. P, T and Vtotal must be
// positive; liquid-only models return an error for supercritical states
func CalcMass(mdl Model, P, T, Vtotal float64) (res Result, err error) {
	if P <= 0 || T <= 0 || Vtotal <= 0 {
		err = chk.Err("eos: P, T and Vtotal must be positive: P=%g, T=%g, Vtotal=%g", P, T, Vtotal)
		return
	}
	Z, v, err := mdl.Calc(P, T)
	if err != nil {
		return
	}
	moles := Vtotal / v
	res.Z = round4(Z)
	res.MassKg = round4(moles * mdl.Data().MW / 1000.0)
	return
}

// round4 rounds x to 4 decimal places
func round4(x float64) float64 {
	return math.Round(x*1e4) / 1e4
}
