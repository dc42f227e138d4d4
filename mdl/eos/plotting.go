// Copyright 2026 The EOSSolved Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Plot plots the compressibility factor of a model versus reduced pressure
// at fixed temperature
//  args -- plot arguments; e.g. &plt.A{C: "b", L: "pr"}
//          if args == nil, plot is skiped
func Plot(mdl Model, T, prMin, prMax float64, npts int, args *plt.A) (Pr, Z []float64, err error) {
	if args == nil {
		return
	}
	Pc := mdl.Data().Pc
	Pr = utl.LinSpace(prMin, prMax, npts)
	Z = make([]float64, npts)
	for i, pr := range Pr {
		Z[i], _, err = mdl.Calc(pr*Pc, T)
		if err != nil {
			return
		}
	}
	plt.Plot(Pr, Z, args)
	return
}

// PlotEnd ends plot and show figure, if show==true
func PlotEnd(show bool) {
	plt.Gll("$P_r$", "$Z$", nil)
	if show {
		plt.Show()
	}
}
