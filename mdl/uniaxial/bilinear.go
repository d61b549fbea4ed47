// Copyright 2026 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniaxial

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Bilin implements a bilinear elastoplastic uniaxial model with kinematic
// hardening. H = 0 recovers the elastic perfectly-plastic case
type Bilin struct {
	E    float64 // Young's modulus
	A_σy float64 // yield stress
	A_H  float64 // kinematic hardening modulus
}

// add model to factory
func init() {
	allocators["bilin"] = func() Model { return new(Bilin) }
}

// Init initialises model
func (o *Bilin) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "sigy":
			o.A_σy = p.V
		case "H":
			o.A_H = p.V
		default:
			return chk.Err("bilin: parameter named %q is incorrect", p.N)
		}
	}
	if o.E < 1e-13 {
		return chk.Err("bilin: Young's modulus E must be positive. E=%v is invalid", o.E)
	}
	if o.A_σy <= 0 {
		return chk.Err("bilin: yield stress sigy must be positive. sigy=%v is invalid", o.A_σy)
	}
	if o.A_H < 0 {
		return chk.Err("bilin: hardening modulus H must be non-negative. H=%v is invalid", o.A_H)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Bilin) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "E", V: 2.0000e+08},
		&fun.Prm{N: "sigy", V: 2.5000e+05},
		&fun.Prm{N: "H", V: 2.0000e+06},
	}
}

// InitIntVars initialises internal (secondary) variables
func (o Bilin) InitIntVars() (s *State, err error) {
	s = NewState(1) // 1:{q} back stress
	return
}

// Update updates stress for given strain increment
func (o *Bilin) Update(s *State, ε, Δε float64) (err error) {

	// internal values
	σ := &s.Sig
	q := &s.Alp[0]

	// trial stress
	σtr := (*σ) + o.E*Δε
	ξtr := σtr - (*q)
	ftr := math.Abs(ξtr) - o.A_σy

	// elastic update
	if ftr <= 0.0 {
		*σ = σtr
		s.Loading = false
		return
	}

	// plastic update
	Δγ := ftr / (o.E + o.A_H)
	*σ = σtr - o.E*Δγ*fun.Sign(ξtr)
	*q += o.A_H * Δγ * fun.Sign(ξtr)
	s.Loading = true
	return
}

// CalcD computes D = dσ_new/dε_new consistent with Update
func (o *Bilin) CalcD(s *State, firstIt bool) (float64, error) {

	// elastic
	if !s.Loading {
		return o.E, nil
	}

	// plastic
	return o.E * o.A_H / (o.E + o.A_H), nil
}
