// Copyright 2026 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniaxial

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// PlotSigEps plots the stress-strain response recorded by a driver
//  args -- plot arguments; e.g. "'b.-'". if args == "", a default is used
func PlotSigEps(drv *Driver, args, label string) {
	if args == "" {
		args = "'b.-'"
	}
	plt.Plot(drv.Eps, drv.Sig, io.Sf("%s, label='%s', clip_on=0", args, label))
}

// PlotEnd ends plot and shows figure, if show==true
func PlotEnd(show bool) {
	plt.Cross("")
	plt.Gll("$\\varepsilon$", "$\\sigma$", "")
	if show {
		plt.Show()
	}
}
