// Copyright 2026 The EOSSolved Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana provides reference critical-point data of common fluids
package ana

import "github.com/cpmech/gosl/fun/dbf"

// Fluid holds the critical-point properties of a pure substance
type Fluid struct {
	Tc    float64 // critical temperature [K]
	Pc    float64 // critical pressure [Pa]
	Omega float64 // acentric factor [-]
	MW    float64 // molecular weight [g/mol]
}

// Methane handles the properties of methane
type Methane struct {
	Fluid
}

// Propane handles the properties of propane
type Propane struct {
	Fluid
}

// Butane handles the properties of n-butane
type Butane struct {
	Fluid
}

// CarbonDioxide handles the properties of carbon dioxide
type CarbonDioxide struct {
	Fluid
}

// Init initialises data
func (o *Methane) Init() {
	o.Tc = 190.56   // [K]
	o.Pc = 4.599e6  // [Pa]
	o.Omega = 0.011 // [-]
	o.MW = 16.043   // [g/mol]
}

// Init initialises data
func (o *Propane) Init() {
	o.Tc = 369.83   // [K]
	o.Pc = 4.248e6  // [Pa]
	o.Omega = 0.152 // [-]
	o.MW = 44.096   // [g/mol]
}

// Init initialises data
func (o *Butane) Init() {
	o.Tc = 425.12   // [K]
	o.Pc = 3.796e6  // [Pa]
	o.Omega = 0.200 // [-]
	o.MW = 58.122   // [g/mol]
}

// Init initialises data
func (o *CarbonDioxide) Init() {
	o.Tc = 304.13   // [K]
	o.Pc = 7.377e6  // [Pa]
	o.Omega = 0.224 // [-]
	o.MW = 44.010   // [g/mol]
}

// Params converts fluid data into model parameters
func (o Fluid) Params() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "Tc", V: o.Tc},
		&dbf.P{N: "Pc", V: o.Pc},
		&dbf.P{N: "omega", V: o.Omega},
		&dbf.P{N: "MW", V: o.MW},
	}
}

// GetFluid returns the properties of a named fluid, or nil if unknown.
// Available names: "methane", "propane", "butane", "co2"
func GetFluid(name string) *Fluid {
	switch name {
	case "methane":
		var f Methane
		f.Init()
		return &f.Fluid
	case "propane":
		var f Propane
		f.Init()
		return &f.Fluid
	case "butane":
		var f Butane
		f.Init()
		return &f.Fluid
	case "co2":
		var f CarbonDioxide
		f.Init()
		return &f.Fluid
	}
	return nil
}
