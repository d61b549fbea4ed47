// Copyright 2026 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stab

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PlotChart plots curves of effective length factor K versus GB, one curve
// per value in Gavals
//  args -- plot arguments; e.g. "'b-'". if args == "", a default is used
func PlotChart(sway Sidesway, Gavals []float64, gbmin, gbmax float64, npts int, args string) (err error) {
	if args == "" {
		args = "'b-'"
	}
	Gb := utl.LinSpace(gbmin, gbmax, npts)
	K := make([]float64, npts)
	for _, ga := range Gavals {
		for i, gb := range Gb {
			K[i], err = EffectiveLengthFactor(sway, ga, gb)
			if err != nil {
				return
			}
		}
		plt.Plot(Gb, K, io.Sf("%s, label='$G_A=%g$', clip_on=0", args, ga))
	}
	return
}

// PlotEnd ends chart and shows figure, if show==true
func PlotEnd(show bool) {
	plt.Gll("$G_B$", "$K$", "")
	if show {
		plt.Show()
	}
}
