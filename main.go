// Copyright 2026 The EOSSolved Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/dallinnd/EOSSolved/ana"
	"github.com/dallinnd/EOSSolved/mdl/eos"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	eosname := io.ArgToString(0, "pr")
	fldname := io.ArgToString(1, "butane")
	P := io.ArgToFloat(2, 2.0e5)
	T := io.ArgToFloat(3, 350.0)
	V := io.ArgToFloat(4, 1.0)

	// message
	io.PfWhite("\nEOSSolved -- PVT mass inventory calculator\n")

	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"equation of state: pitzer, vdw, rk, srk, pr, lee-kesler, rackett", "eosname", eosname,
		"fluid: methane, propane, butane, co2", "fldname", fldname,
		"pressure [Pa]", "P", P,
		"temperature [K]", "T", T,
		"total volume [m³]", "V", V,
	))

	// fluid data
	fld := ana.GetFluid(fldname)
	if fld == nil {
		chk.Panic("fluid %q is not available", fldname)
	}

	// model
	mdl, err := eos.New(eosname)
	if err != nil {
		chk.Panic("cannot allocate model: %v", err)
	}
	err = mdl.Init(fld.Params())
	if err != nil {
		chk.Panic("cannot initialise model: %v", err)
	}

	// compute and report
	res, err := eos.CalcMass(mdl, P, T, V)
	if err != nil {
		io.PfRed("calculation failed: %v\n", err)
		return
	}
	io.Pf("\n")
	io.Pfgreen("Z    = %.4f\n", res.Z)
	io.Pfgreen("mass = %.4f kg\n", res.MassKg)
}
