// Copyright 2026 The EOSSolved Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func Test_rackett01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rackett01. saturated liquid")

	mdl, err := New("rackett")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// n-butane liquid at ambient temperature
	P, T := 2.0e5, 300.0
	Z, v, err := mdl.Calc(P, T)
	if err != nil {
		tst.Errorf("Calc failed: %v\n", err)
		return
	}
	io.Pforan("Z=%v v=%v\n", Z, v)

	// correlation recomputed directly
	fld := mdl.Data()
	Zra := 0.29056 - 0.08775*fld.Omega
	Vc := fld.Rgas * fld.Tc * Zra / fld.Pc
	vRef := Vc * math.Pow(Zra, math.Pow(1.0-T/fld.Tc, 2.0/7.0))
	chk.Float64(tst, "v", 1e-15, v, vRef)
	chk.Float64(tst, "Z = P・v/(R・T)", 1e-15, Z, P*vRef/(fld.Rgas*T))

	// the back-computed Z of a liquid must be far below unity
	if Z <= 0 || Z > 0.1 {
		tst.Errorf("liquid Z=%g is out of the expected range\n", Z)
		return
	}

	// inventory: one m³ of liquid butane weighs a few hundred kg
	res, err := CalcMass(mdl, P, T, 1.0)
	if err != nil {
		tst.Errorf("CalcMass failed: %v\n", err)
		return
	}
	io.Pforan("mass = %v kg\n", res.MassKg)
	if res.MassKg < 100 || res.MassKg > 1000 {
		tst.Errorf("mass=%g kg is out of the expected liquid range\n", res.MassKg)
	}
}

func Test_rackett02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rackett02. supercritical state is not liquid")

	mdl, err := New("rackett")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(dbf.Params{
		&dbf.P{N: "Tc", V: 500.0},
		&dbf.P{N: "Pc", V: 4.0e6},
		&dbf.P{N: "omega", V: 0.2},
		&dbf.P{N: "MW", V: 58.1},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	res, err := CalcMass(mdl, 1.0e6, 600.0, 1.0)
	if err == nil {
		tst.Errorf("CalcMass should have failed for T > Tc\n")
		return
	}
	chk.String(tst, err.Error(), "T > Tc (Not Liquid)")
	chk.Float64(tst, "Z", 1e-17, res.Z, 0)
	chk.Float64(tst, "mass", 1e-17, res.MassKg, 0)

	// boundary: Tr = 1 exactly is already infeasible
	_, _, err = mdl.Calc(1.0e6, 500.0)
	if err == nil {
		tst.Errorf("Calc should have failed for T = Tc\n")
	}
}
