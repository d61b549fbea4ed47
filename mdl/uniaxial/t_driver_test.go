// Copyright 2026 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniaxial

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/plt"
)

func Test_drv01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("drv01. elastic model, fixed number of steps")

	mdl, err := New("lin-elast")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init([]*fun.Prm{
		&fun.Prm{N: "E", V: 1000},
	})
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}

	var drv Driver
	err = drv.Init(mdl)
	if err != nil {
		tst.Errorf("cannot initialise driver: %v\n", err)
		return
	}
	drv.Rate = RateSteps
	drv.RateValue = 2
	drv.TstD = tst

	err = drv.Run([]float64{0.001, -0.001, 0.002})
	if err != nil {
		tst.Errorf("driver failed: %v\n", err)
		return
	}

	chk.Vector(tst, "eps", 1e-15, drv.Eps, []float64{0.001, 0, -0.001, 0.0005, 0.002})
	chk.Vector(tst, "sig", 1e-12, drv.Sig, []float64{1, 0, -1, 0.5, 2})
}

func Test_drv02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("drv02. elastic model, fixed strain rate")

	mdl, err := New("lin-elast")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init([]*fun.Prm{
		&fun.Prm{N: "E", V: 1000},
	})
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}

	// |Δε| = 0.008 at a rate of 0.003 needs ceil(0.008/0.003) = 3 increments
	var drv Driver
	drv.Init(mdl)
	drv.Rate = RateStrain
	drv.RateValue = 0.003

	err = drv.Run([]float64{0.004, -0.004})
	if err != nil {
		tst.Errorf("driver failed: %v\n", err)
		return
	}

	chk.Vector(tst, "eps", 1e-12, drv.Eps, []float64{0.004, 0.004 / 3.0, -0.004 / 3.0, -0.004})
	chk.Vector(tst, "sig", 1e-9, drv.Sig, []float64{4, 4.0 / 3.0, -4.0 / 3.0, -4})
}

func Test_drv03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("drv03. bilinear model, compression positive")

	mdl, err := New("bilin")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init([]*fun.Prm{
		&fun.Prm{N: "E", V: 1000},
		&fun.Prm{N: "sigy", V: 10},
		&fun.Prm{N: "H", V: 100},
	})
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}

	var drv Driver
	drv.Init(mdl)
	drv.CmpPos = true

	err = drv.Run([]float64{-0.02})
	if err != nil {
		tst.Errorf("driver failed: %v\n", err)
		return
	}

	// compressive response recorded with positive signs
	chk.Vector(tst, "eps", 1e-15, drv.Eps, []float64{0.02})
	chk.Vector(tst, "sig", 1e-13, drv.Sig, []float64{120.0 / 11.0})
	if !drv.Res[0].Loading {
		tst.Errorf("final state should be plastically loading\n")
		return
	}
}

func Test_drv04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("drv04. invalid input")

	// run without init
	var bad Driver
	err := bad.Run([]float64{0.001})
	if err == nil {
		tst.Errorf("error should be returned when Init is skipped\n")
		return
	}

	mdl, _ := New("lin-elast")
	mdl.Init([]*fun.Prm{&fun.Prm{N: "E", V: 1000}})

	// empty peak history
	var drv Driver
	drv.Init(mdl)
	err = drv.Run(nil)
	if err == nil {
		tst.Errorf("error should be returned for empty peak history\n")
		return
	}

	// zero rate value with strain-rate interpolation
	drv.Init(mdl)
	drv.Rate = RateStrain
	err = drv.Run([]float64{0.001, 0.002})
	if err == nil {
		tst.Errorf("error should be returned for zero rate value\n")
		return
	}

	// unknown rate kind
	drv.Init(mdl)
	drv.Rate = RateKind(99)
	err = drv.Run([]float64{0.001, 0.002})
	if err == nil {
		tst.Errorf("error should be returned for unknown rate kind\n")
		return
	}
}

func Test_drv05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("drv05. cyclic test and hysteresis plot")

	mdl, err := New("bilin")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init([]*fun.Prm{
		&fun.Prm{N: "E", V: 29000},
		&fun.Prm{N: "sigy", V: 50},
		&fun.Prm{N: "H", V: 1000},
	})
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}

	var drv Driver
	drv.Init(mdl)
	drv.Rate = RateStrain
	drv.RateValue = 0.0005

	err = drv.Run([]float64{0.005, -0.005, 0.0075, -0.0075, 0.01})
	if err != nil {
		tst.Errorf("driver failed: %v\n", err)
		return
	}

	// hysteresis loops keep the response bounded by the shifted yield surface
	σmax := mdl.(*Bilin).A_σy + mdl.(*Bilin).A_H*0.01
	for i, σ := range drv.Sig {
		if σ > σmax || σ < -σmax {
			tst.Errorf("stress %v at point %d escapes the hardening bound %v\n", σ, i, σmax)
			return
		}
	}

	if chk.Verbose {
		plt.SetForEps(1.2, 350)
		PlotSigEps(&drv, "", "bilin cyclic")
		PlotEnd(false)
		plt.SaveD("/tmp/gosteel", "fig_drv05.eps")
	}
}
