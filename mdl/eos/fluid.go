// Copyright 2026 The EOSSolved Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/dallinnd/EOSSolved/cubic"
)

// Fluid holds the critical-point and molecular data shared by all models.
// Units: Tc [K], Pc [Pa], MW [g/mol], Rgas [J/(mol・K)]
type Fluid struct {
	Tc    float64 // critical temperature
	Pc    float64 // critical pressure
	Omega float64 // acentric factor
	MW    float64 // molecular weight
	Rgas  float64 // universal gas constant
}

// Init initialises fluid data. Accepted parameters are
// "Tc", "Pc", "omega", "MW" and "R"; R defaults to 8.314
func (o *Fluid) Init(prms dbf.Params) (err error) {
	o.Rgas = 8.314
	for _, p := range prms {
		switch p.N {
		case "Tc":
			o.Tc = p.V
		case "Pc":
			o.Pc = p.V
		case "omega":
			o.Omega = p.V
		case "MW":
			o.MW = p.V
		case "R":
			o.Rgas = p.V
		default:
			return chk.Err("eos: parameter named %q is incorrect", p.N)
		}
	}
	if o.Tc <= 0 || o.Pc <= 0 || o.MW <= 0 || o.Rgas <= 0 {
		return chk.Err("eos: Tc, Pc, MW and R must be positive: Tc=%g, Pc=%g, MW=%g, R=%g", o.Tc, o.Pc, o.MW, o.Rgas)
	}
	return
}

// GetPrms gets (an example of) parameters
//  Note: example values correspond to n-butane
func (o Fluid) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "Tc", V: 425.12},     // [K]
			&dbf.P{N: "Pc", V: 3.796e6},    // [Pa]
			&dbf.P{N: "omega", V: 0.200},   // [-]
			&dbf.P{N: "MW", V: 58.122},     // [g/mol]
			&dbf.P{N: "R", V: 8.314},       // [J/(mol・K)]
		}
	}
	return dbf.Params{
		&dbf.P{N: "Tc", V: o.Tc},
		&dbf.P{N: "Pc", V: o.Pc},
		&dbf.P{N: "omega", V: o.Omega},
		&dbf.P{N: "MW", V: o.MW},
		&dbf.P{N: "R", V: o.Rgas},
	}
}

// Data returns fluid data
func (o *Fluid) Data() *Fluid {
	return o
}

// reduced computes the reduced state Tr = T/Tc and Pr = P/Pc
func (o *Fluid) reduced(P, T float64) (Tr, Pr float64) {
	return T / o.Tc, P / o.Pc
}

// calcZ solves the compressibility cubic of model m at (P, T) and converts
// the selected root into a molar volume via v = Z・R・T/P
func (o *Fluid) calcZ(m cubicEos, P, T float64) (Z, v float64) {
	Tr, Pr := o.reduced(P, T)
	c1, c2, c3 := m.coefficients(Tr, Pr)
	Z = cubic.PositiveRoot(c1, c2, c3)
	v = Z * o.Rgas * T / P
	return
}
