// Copyright 2026 The EOSSolved Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_fluids01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fluids01")

	var butane Butane
	butane.Init()
	chk.Float64(tst, "Tc", 1e-15, butane.Tc, 425.12)
	chk.Float64(tst, "Pc", 1e-15, butane.Pc, 3.796e6)
	chk.Float64(tst, "omega", 1e-15, butane.Omega, 0.200)
	chk.Float64(tst, "MW", 1e-15, butane.MW, 58.122)

	prms := butane.Params()
	chk.IntAssert(len(prms), 4)
	chk.Float64(tst, "prm Tc", 1e-15, prms.Find("Tc").V, 425.12)

	fld := GetFluid("co2")
	if fld == nil {
		tst.Errorf("co2 must be available\n")
		return
	}
	chk.Float64(tst, "co2 MW", 1e-15, fld.MW, 44.010)

	if GetFluid("unobtainium") != nil {
		tst.Errorf("unknown fluid must return nil\n")
	}
}
