// Copyright 2016 The Goflex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flexure

import (
	"testing"

	"github.com/cpmech/goflex/grid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

func Test_flex01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flex01. construction")

	g, err := grid.NewRaster(5, 4, 10e3, 10e3)
	if err != nil {
		tst.Errorf("NewRaster failed: %v\n", err)
		return
	}

	// unknown method fails before any grid field is touched
	_, err = New(g, "bogus", nil)
	if err == nil {
		tst.Errorf("method \"bogus\" should have failed\n")
		return
	}
	io.Pf("OK. error = %v\n", err)
	if _, err = g.GetField(DeflectionField); err == nil {
		tst.Errorf("no field must be registered after a failed construction\n")
		return
	}

	// non-physical plate fails too
	_, err = New(g, "flexure", fun.Prms{&fun.Prm{N: "eet", V: -1}})
	if err == nil {
		tst.Errorf("eet=-1 should have failed\n")
		return
	}
	io.Pf("OK. error = %v\n", err)

	// defaults
	flex, err := New(g, "airy", nil)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	chk.StrAssert(flex.Method(), "airy")
	chk.Scalar(tst, "eet    ", 1e-17, flex.Eet(), 65000.0)
	chk.Scalar(tst, "youngs ", 1e-17, flex.Youngs(), 7e10)
	chk.Scalar(tst, "rhom   ", 1e-17, flex.RhoMantle(), 3300.0)
	chk.Scalar(tst, "gravity", 1e-17, flex.Gravity(), 9.80665)
	chk.Scalar(tst, "gamma  ", 1e-11, flex.GammaMantle(), 32361.945)
	chk.Scalar(tst, "alpha  ", 1e-9, flex.Alpha(), 120552.92184274067)

	// output field registered with zeros
	deflection, err := g.GetField(DeflectionField)
	if err != nil {
		tst.Errorf("output field is not registered: %v\n", err)
		return
	}
	chk.Vector(tst, "deflection", 1e-17, deflection, make([]float64, 20))
}

func Test_flex02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flex02. airy: point load on 5×4 grid")

	g, _ := grid.NewRaster(5, 4, 10e3, 10e3)
	load := g.AddField(LoadField)
	flex, err := New(g, "airy", nil)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}

	load[4] = 1e9
	if err = flex.Update(); err != nil {
		tst.Errorf("Update failed: %v\n", err)
		return
	}

	deflection, _ := g.GetField(DeflectionField)
	correct := make([]float64, 20)
	correct[4] = 1e9 / flex.GammaMantle()
	chk.Vector(tst, "deflection", 1e-17, deflection, correct)
	chk.Scalar(tst, "w[4]", 1e-9, deflection[4], 30900.491302361461)

	// load field is read-only to the component
	chk.Scalar(tst, "load[4]", 1e-17, load[4], 1e9)
}

func Test_flex03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flex03. airy: uniform interior load equal to γ")

	g, _ := grid.NewRaster(5, 4, 10e3, 10e3)
	load := g.AddField(LoadField)
	flex, err := New(g, "airy", nil)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}

	// interior nodes carry γ; boundary nodes carry nothing
	for i := 1; i < 4; i++ {
		for j := 1; j < 3; j++ {
			load[i*4+j] = flex.GammaMantle()
		}
	}
	if err = flex.Update(); err != nil {
		tst.Errorf("Update failed: %v\n", err)
		return
	}

	deflection, _ := g.GetField(DeflectionField)
	chk.Matrix(tst, "deflection", 1e-15, reshape(deflection, 5, 4), [][]float64{
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 1, 1, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
	})
}

func Test_flex04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flex04. zero load gives zero deflection")

	for _, method := range []string{"airy", "flexure"} {
		g, _ := grid.NewRaster(4, 6, 5e3, 5e3)
		g.AddField(LoadField)
		flex, err := New(g, method, nil)
		if err != nil {
			tst.Errorf("New failed: %v\n", err)
			return
		}
		if err = flex.Update(); err != nil {
			tst.Errorf("Update failed: %v\n", err)
			return
		}
		deflection, _ := g.GetField(DeflectionField)
		chk.Vector(tst, io.Sf("deflection (%s)", method), 1e-17, deflection, make([]float64, 24))
	}
}

func Test_flex05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flex05. eet mutation rebuilds the kernel table")

	newGrid := func() (*grid.Raster, []float64) {
		g, _ := grid.NewRaster(5, 5, 10e3, 10e3)
		load := g.AddField(LoadField)
		load[12] = 1e9
		return g, load
	}

	// solve with the default thickness, then with a thinner plate
	g, _ := newGrid()
	flex, err := New(g, "flexure", nil)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	if err = flex.Update(); err != nil {
		tst.Errorf("Update failed: %v\n", err)
		return
	}
	deflection, _ := g.GetField(DeflectionField)
	wThick := make([]float64, len(deflection))
	copy(wThick, deflection)

	if err = flex.SetEet(30000.0); err != nil {
		tst.Errorf("SetEet failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "alpha after SetEet", 1e-9, flex.Alpha(), 67504.646041811211)
	if err = flex.Update(); err != nil {
		tst.Errorf("Update failed: %v\n", err)
		return
	}
	if deflection[12] == wThick[12] {
		tst.Errorf("deflections must change after SetEet\n")
		return
	}

	// a fresh component built with the new thickness must agree exactly
	g2, _ := newGrid()
	flex2, err := New(g2, "flexure", fun.Prms{&fun.Prm{N: "eet", V: 30000.0}})
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	if err = flex2.Update(); err != nil {
		tst.Errorf("Update failed: %v\n", err)
		return
	}
	deflection2, _ := g2.GetField(DeflectionField)
	chk.Vector(tst, "rebuilt kernel", 1e-17, deflection, deflection2)

	// invalid thickness is rejected and nothing is mutated
	if err = flex.SetEet(0); err == nil {
		tst.Errorf("eet=0 should have failed\n")
		return
	}
	io.Pf("OK. error = %v\n", err)
	chk.Scalar(tst, "eet unchanged", 1e-17, flex.Eet(), 30000.0)
}

// reshape copies a flat node vector into a nrow×ncol matrix
func reshape(v []float64, nrow, ncol int) (m [][]float64) {
	m = make([][]float64, nrow)
	for i := 0; i < nrow; i++ {
		m[i] = make([]float64, ncol)
		copy(m[i], v[i*ncol:(i+1)*ncol])
	}
	return
}
