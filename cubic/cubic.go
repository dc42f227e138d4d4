// Copyright 2026 The EOSSolved Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cubic solves monic cubic polynomials with real coefficients and
// selects the physically meaningful compressibility root
package cubic

import "math"

// IdealGasZ is the fallback returned by PositiveRoot when the cubic has no
// positive real root. Cubic equations of state can lose their physical root
// for extreme reduced states; the ideal-gas value is returned instead of an
// error (intentional policy).
const IdealGasZ = 1.0

// Roots computes all real roots of
//   z³ + a・z² + b・z + c = 0
// using Cardano's method on the depressed cubic t³ + p・t + q = 0 with
// t = z + a/3. The sign of delta = q²/4 + p³/27 decides the cases:
//   delta > 0  ⇒  one real root
//   delta = 0  ⇒  repeated roots (exact float comparison; rarely hit)
//   delta < 0  ⇒  three distinct real roots, via the trigonometric identity
// The last case requires p < 0; this holds whenever delta < 0 and is a
// precondition, not a guarded check.
func Roots(a, b, c float64) []float64 {
	p := (3.0*b - a*a) / 3.0
	q := (2.0*a*a*a - 9.0*a*b + 27.0*c) / 27.0
	delta := q*q/4.0 + p*p*p/27.0
	switch {

	// one real root. math.Cbrt takes the real (sign-preserving) cube root,
	// which is essential since either radicand may be negative
	case delta > 0:
		s := math.Sqrt(delta)
		return []float64{math.Cbrt(-q/2.0+s) + math.Cbrt(-q/2.0-s) - a/3.0}

	// repeated roots
	case delta == 0:
		u := math.Cbrt(q / 2.0)
		return []float64{-2.0*u - a/3.0, u - a/3.0}
	}

	// three real roots (casus irreducibilis)
	k := math.Acos(-q / 2.0 * math.Sqrt(-27.0/(p*p*p)))
	m := 2.0 * math.Sqrt(-p/3.0)
	return []float64{
		m*math.Cos(k/3.0) - a/3.0,
		m*math.Cos((k+2.0*math.Pi)/3.0) - a/3.0,
		m*math.Cos((k+4.0*math.Pi)/3.0) - a/3.0,
	}
}

// PositiveRoot returns the largest positive real root of z³+a・z²+b・z+c=0.
// Only positive roots are physically meaningful compressibility factors and
// the largest one is the stable vapour root. Returns IdealGasZ when no root
// is positive.
func PositiveRoot(a, b, c float64) float64 {
	zmax, found := 0.0, false
	for _, z := range Roots(a, b, c) {
		if z <= 0 {
			continue
		}
		if !found || z > zmax {
			zmax, found = z, true
		}
	}
	if !found {
		return IdealGasZ
	}
	return zmax
}
