// Copyright 2026 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package stab implements column stability calculations
//  References:
//   [1] AISC (2016) Commentary on the Specification for Structural Steel
//       Buildings, Appendix 7: equations C-A-7-1 and C-A-7-2
package stab

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
)

// Sidesway specifies whether frame bracing prevents relative lateral
// displacement between the ends of a column
type Sidesway int

const (
	// SideswayInhibited corresponds to braced frames
	SideswayInhibited Sidesway = iota + 1

	// SideswayUninhibited corresponds to moment frames
	SideswayUninhibited
)

// String returns the name of the sidesway condition
func (o Sidesway) String() string {
	switch o {
	case SideswayInhibited:
		return "inhibited"
	case SideswayUninhibited:
		return "uninhibited"
	}
	return io.Sf("invalid(%d)", int(o))
}

// GINF is the large value substituted for an infinite stiffness ratio so that
// the nomogram equations stay finite inside the root finder
const GINF = 1e10

// EffectiveLengthFactor computes the effective length factor K of a column
// from the AISC alignment chart (nomogram) equations [1]
//  sway   -- sidesway condition
//  GA, GB -- ratios of column-to-girder flexural stiffness at ends A and B of
//            the member; must be non-negative; may be +Inf
// The nomogram equations assume purely elastic behaviour, constant cross
// sections, rigid joints, negligible girder axial force and simultaneous
// buckling of all columns.
func EffectiveLengthFactor(sway Sidesway, GA, GB float64) (K float64, err error) {

	// tabulated corner values, bracket and nomogram equations per condition
	var kInf, kInfZero, kZero float64 // K at GA,GB = ∞,∞ / ∞,0 / 0,0
	var kmin, kmax float64            // bracket with a guaranteed sign change
	var fcn func(k, ga, gb float64) float64
	var fcnOneZero func(k, g float64) float64
	switch sway {
	case SideswayInhibited:
		kInf, kInfZero, kZero = 1.0, 0.7, 0.5
		// the inhibited equation divides by zero at K = 1; stop just short
		kmin, kmax = 0.5, math.Nextafter(1.0, 0)
		fcn, fcnOneZero = inhibited, inhibitedOneZero
	case SideswayUninhibited:
		kInf, kInfZero, kZero = math.Inf(1), 2.0, 1.0
		kmin, kmax = 1.0, GINF
		fcn, fcnOneZero = uninhibited, uninhibitedOneZero
	default:
		return 0, chk.Err("unknown sidesway condition %q", sway)
	}

	// check stiffness ratios
	if GA < 0 || GB < 0 {
		return 0, chk.Err("stiffness ratios must be non-negative. GA=%v, GB=%v is invalid", GA, GB)
	}

	// corners of the chart have exact answers
	ainf := math.IsInf(GA, 1)
	binf := math.IsInf(GB, 1)
	switch {
	case ainf && binf:
		return kInf, nil
	case (ainf && GB == 0) || (GA == 0 && binf):
		return kInfZero, nil
	case GA == 0 && GB == 0:
		return kZero, nil
	}

	// remaining infinities become a large finite surrogate
	if ainf {
		GA = GINF
	}
	if binf {
		GB = GINF
	}

	// nomogram equation as a function of K alone. When one ratio is zero the
	// reduced equation must be used; the full one is singular there
	var ffcn num.Cb_yxe
	switch {
	case GA == 0:
		ffcn = func(k float64) (float64, error) { return fcnOneZero(k, GB), nil }
	case GB == 0:
		ffcn = func(k float64) (float64, error) { return fcnOneZero(k, GA), nil }
	default:
		ffcn = func(k float64) (float64, error) { return fcn(k, GA, GB), nil }
	}

	// solve with Brent's method: no derivatives needed and convergence is
	// guaranteed for the sign-changing bracket
	var sol num.Brent
	sol.Init(ffcn)
	return sol.Solve(kmin, kmax, true)
}

// InhibitedK computes the effective length factor for sidesway inhibited
// frames (e.g. braced frames)
func InhibitedK(GA, GB float64) (K float64, err error) {
	return EffectiveLengthFactor(SideswayInhibited, GA, GB)
}

// UninhibitedK computes the effective length factor for sidesway uninhibited
// frames (e.g. moment frames)
func UninhibitedK(GA, GB float64) (K float64, err error) {
	return EffectiveLengthFactor(SideswayUninhibited, GA, GB)
}

// nomogram equations ////////////////////////////////////////////////////////

// uninhibited computes the residual of equation C-A-7-2 [1]
func uninhibited(k, ga, gb float64) float64 {
	pk := math.Pi / k
	return (ga*gb*pk*pk-36.0)/(6.0*(ga+gb)) - pk/math.Tan(pk)
}

// uninhibitedOneZero computes the residual of equation C-A-7-2 reduced for
// one zero stiffness ratio; g is the non-zero ratio
func uninhibitedOneZero(k, g float64) float64 {
	pk := math.Pi / k
	return -6.0/g - pk/math.Tan(pk)
}

// inhibited computes the residual of equation C-A-7-1 [1]
func inhibited(k, ga, gb float64) float64 {
	pk := math.Pi / k
	return 0.25*ga*gb*pk*pk + 0.5*(ga+gb)*(1.0-pk/math.Tan(pk)) + 2.0*math.Tan(0.5*pk)/pk - 1.0
}

// inhibitedOneZero computes the residual of equation C-A-7-1 reduced for one
// zero stiffness ratio; g is the non-zero ratio
func inhibitedOneZero(k, g float64) float64 {
	pk := math.Pi / k
	return 0.5*g*(1.0-pk/math.Tan(pk)) + 2.0*math.Tan(0.5*pk)/pk - 1.0
}
