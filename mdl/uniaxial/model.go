// Copyright 2026 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package uniaxial implements one-dimensional stress-strain models and a
// displacement-controlled driver to test them
package uniaxial

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Model defines the interface for uniaxial stress-strain models
type Model interface {
	Init(prms fun.Prms) error                      // initialises model
	GetPrms() fun.Prms                             // gets (an example) of parameters
	InitIntVars() (*State, error)                  // initialises AND allocates internal (secondary) variables
	Update(s *State, ε, Δε float64) error          // updates stress for given strain increment
	CalcD(s *State, firstIt bool) (float64, error) // computes D = dσ_new/dε_new consistent with Update
}

// New returns new uniaxial model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'uniaxial' database", name)
	}
	return allocator(), nil
}

// allocators holds all available uniaxial models; modelname => allocator
var allocators = map[string]func() Model{}
