// Copyright 2026 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniaxial

import "github.com/cpmech/gosl/chk"

// State holds the stress and internal values of a uniaxial model
type State struct {
	Sig     float64   // σ: current stress
	Alp     []float64 // α: internal variables of rate type [nalp]
	Loading bool      // plastic loading flag
}

// NewState allocates state structure with nalp internal values
func NewState(nalp int) *State {
	var state State
	if nalp > 0 {
		state.Alp = make([]float64, nalp)
	}
	return &state
}

// Set copies states
//  Note: 1) this and other states must have been pre-allocated with the same sizes
//        2) this method does not check for errors
func (o *State) Set(other *State) {
	o.Sig = other.Sig
	o.Loading = other.Loading
	chk.IntAssert(len(o.Alp), len(other.Alp))
	copy(o.Alp, other.Alp)
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	other := NewState(len(o.Alp))
	other.Set(o)
	return other
}
