// Copyright 2026 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniaxial

import "github.com/cpmech/gosl/fun"

// LinElast implements a linear elastic uniaxial model
type LinElast struct {
	E float64 // Young's modulus
}

// add model to factory
func init() {
	allocators["lin-elast"] = func() Model { return new(LinElast) }
}

// Init initialises model
func (o *LinElast) Init(prms fun.Prms) (err error) {
	prms.Connect(&o.E, "E", "lin-elast model")
	return
}

// GetPrms gets (an example) of parameters
func (o LinElast) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "E", V: 2.0000e+08},
	}
}

// InitIntVars initialises internal (secondary) variables
func (o LinElast) InitIntVars() (s *State, err error) {
	s = NewState(0)
	return
}

// Update updates stress for given strain increment
func (o LinElast) Update(s *State, ε, Δε float64) (err error) {
	s.Sig += o.E * Δε
	return
}

// CalcD computes D = dσ_new/dε_new consistent with Update
func (o LinElast) CalcD(s *State, firstIt bool) (float64, error) {
	return o.E, nil
}
