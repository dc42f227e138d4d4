// Copyright 2026 The EOSSolved Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eos implements equation-of-state models to compute the
// compressibility factor (Z) and molar volume of a fluid at a given
// pressure and temperature
//  References:
//   [1] Smith JM, Van Ness HC and Abbott MM (2005) Introduction to Chemical
//       Engineering Thermodynamics, 7th ed, McGraw-Hill
//   [2] Poling BE, Prausnitz JM and O'Connell JP (2001) The Properties of
//       Gases and Liquids, 5th ed, McGraw-Hill
package eos

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines equation-of-state models
//  Calc computes the compressibility factor Z and the molar volume
//  v [m³/mol] at pressure P [Pa] and temperature T [K]
type Model interface {
	Init(prms dbf.Params) error      // initialises model with fluid data
	GetPrms(example bool) dbf.Params // gets (an example of) parameters
	Data() *Fluid                    // returns fluid data
	Calc(P, T float64) (Z, v float64, err error)
}

// cubicEos is implemented by models whose compressibility factor is a root
// of a monic cubic Z³ + c1・Z² + c2・Z + c3 = 0 in reduced variables
type cubicEos interface {
	coefficients(Tr, Pr float64) (c1, c2, c3 float64)
}

// New returns new equation-of-state model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'eos' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
