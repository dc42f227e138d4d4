// Copyright 2026 The EOSSolved Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Check performs standard consistency checks on a model at state (P, T):
// the computed Z must reproduce the molar volume via v = Z・R・T/P, cubic
// models must return a Z that satisfies their own cubic within tolRes, and
// repeating the calculation must give identical results (pure function)
func Check(tst *testing.T, mdl Model, P, T, tolRes float64, verbose bool) {

	// first evaluation
	Z, v, err := mdl.Calc(P, T)
	if err != nil {
		tst.Errorf("Calc failed: %v\n", err)
		return
	}
	if verbose {
		io.Pforan("P=%g T=%g  ⇒  Z=%g v=%g\n", P, T, Z, v)
	}

	// volume consistency
	fld := mdl.Data()
	chk.Float64(tst, "v = Z・R・T/P", 1e-14, v, Z*fld.Rgas*T/P)

	// residual of the compressibility cubic
	if m, ok := mdl.(cubicEos); ok {
		Tr, Pr := T/fld.Tc, P/fld.Pc
		c1, c2, c3 := m.coefficients(Tr, Pr)
		res := ((Z+c1)*Z+c2)*Z + c3
		chk.Float64(tst, "cubic residual", tolRes, res, 0)
	}

	// idempotence
	Z2, v2, err := mdl.Calc(P, T)
	if err != nil {
		tst.Errorf("Calc failed: %v\n", err)
		return
	}
	if Z2 != Z || v2 != v {
		tst.Errorf("repeated evaluation changed results: Z: %v → %v, v: %v → %v\n", Z, Z2, v, v2)
	}
}
