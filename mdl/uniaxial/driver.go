// Copyright 2026 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniaxial

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// RateKind specifies how the driver interpolates between peak strain points
type RateKind int

const (
	// RateNone jumps from peak to peak with a single increment
	RateNone RateKind = iota + 1

	// RateStrain subdivides each excursion into increments no larger than
	// RateValue
	RateStrain

	// RateSteps subdivides each excursion into RateValue increments
	RateSteps
)

// Driver runs displacement-controlled tests with uniaxial models
type Driver struct {

	// input
	Mdl Model // uniaxial model

	// settings
	Rate      RateKind // interpolation between peak points
	RateValue float64  // strain increment (RateStrain) or number of steps (RateSteps)
	CmpPos    bool     // consider compression positive when recording results
	Silent    bool     // do not show messages
	TolD      float64  // tolerance to check D
	VerD      bool     // verbose check of D

	// check D
	TstD *testing.T // if != nil, check consistent tangent

	// results
	Eps []float64 // recorded strains
	Sig []float64 // recorded stresses
	Res []*State  // states after each increment
}

// Init initialises driver
func (o *Driver) Init(mdl Model) (err error) {
	o.Mdl = mdl
	o.Rate = RateNone
	o.TolD = 1e-7
	o.VerD = chk.Verbose
	return
}

// Run drives the model through the peak strain history, recording strain and
// stress after every increment. The first increment goes from the virgin
// state to peaks[0]
func (o *Driver) Run(peaks []float64) (err error) {

	// check
	if o.Mdl == nil {
		return chk.Err("driver: Init must be called before Run")
	}
	if len(peaks) < 1 {
		return chk.Err("driver: at least one peak strain point is required")
	}

	// initial state
	s, err := o.Mdl.InitIntVars()
	if err != nil {
		return
	}

	// recorded signs
	sign := 1.0
	if o.CmpPos {
		sign = -1.0
	}

	// results
	o.Eps = make([]float64, 0, len(peaks))
	o.Sig = make([]float64, 0, len(peaks))
	o.Res = make([]*State, 0, len(peaks))

	// step performs one increment Δε and records the response
	ε := 0.0
	step := func(Δε float64) (e error) {
		εold := ε
		sold := s.GetCopy()
		ε += Δε
		if e = o.Mdl.Update(s, ε, Δε); e != nil {
			return
		}
		o.Eps = append(o.Eps, sign*ε)
		o.Sig = append(o.Sig, sign*s.Sig)
		o.Res = append(o.Res, s.GetCopy())

		// check consistent tangent
		if o.TstD != nil {
			var D float64
			if D, e = o.Mdl.CalcD(s, false); e != nil {
				return
			}
			chk.DerivScaSca(o.TstD, io.Sf("D @ ε=%.5f", ε), o.TolD, D, ε, 1e-4, o.VerD, func(x float64) (float64, error) {
				stmp := sold.GetCopy()
				e := o.Mdl.Update(stmp, x, x-εold)
				return stmp.Sig, e
			})
		}
		return
	}

	// first point
	if err = step(peaks[0]); err != nil {
		return
	}

	// remaining excursions
	for i := 0; i < len(peaks)-1; i++ {
		var n int
		if n, err = o.nsteps(peaks[i], peaks[i+1]); err != nil {
			return
		}
		Δε := (peaks[i+1] - peaks[i]) / float64(n)
		for j := 0; j < n; j++ {
			if err = step(Δε); err != nil {
				return
			}
		}
	}
	return
}

// nsteps returns the number of increments to go from εa to εb
func (o *Driver) nsteps(εa, εb float64) (n int, err error) {
	switch o.Rate {
	case RateNone:
		return 1, nil
	case RateStrain:
		if o.RateValue <= 0 {
			return 0, chk.Err("driver: rate value must be positive for strain-rate interpolation. RateValue=%v is invalid", o.RateValue)
		}
		n = int(math.Ceil(math.Abs(εb-εa) / o.RateValue))
		if n < 1 {
			n = 1
		}
		return n, nil
	case RateSteps:
		n = int(o.RateValue)
		if n < 1 {
			return 0, chk.Err("driver: rate value must be a positive number of steps. RateValue=%v is invalid", o.RateValue)
		}
		return n, nil
	}
	return 0, chk.Err("driver: rate kind %d is invalid", o.Rate)
}
