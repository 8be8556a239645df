// Copyright 2016 The Goflex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/goflex/flexure"
	"github.com/cpmech/goflex/grid"
	"github.com/cpmech/goflex/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("see location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	simfn, _ := io.ArgToFilename(0, "inp/data/flex01", ".sim", true)
	verbose := io.ArgToBool(1, true)

	// message
	if verbose {
		io.PfWhite("\nGoflex -- lithospheric flexure on a raster grid\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"simulation filename", "simfn", simfn,
			"show messages", "verbose", verbose,
		))
	}

	// simulation data
	sim := inp.ReadSim(simfn, verbose)
	if sim == nil {
		chk.Panic("cannot read simulation file %q", simfn)
	}

	// grid and applied loads
	g, err := grid.NewRaster(sim.Grid.Nrow, sim.Grid.Ncol, sim.Grid.Dy, sim.Grid.Dx)
	if err != nil {
		chk.Panic("cannot allocate grid: %v", err)
	}
	load := g.AddField(flexure.LoadField)
	for _, l := range sim.Loads {
		load[l.Node] = l.Value
	}

	// flexure component
	flex, err := flexure.New(g, sim.Method, sim.Prms())
	if err != nil {
		chk.Panic("cannot allocate flexure component: %v", err)
	}

	// solve one loading step
	if err = flex.Update(); err != nil {
		chk.Panic("solve failed: %v", err)
	}

	// results
	deflection, err := g.GetField(flexure.DeflectionField)
	if err != nil {
		chk.Panic("cannot access deflection field: %v", err)
	}
	wmin, wmax := deflection[0], deflection[0]
	for _, w := range deflection {
		if w < wmin {
			wmin = w
		}
		if w > wmax {
			wmax = w
		}
	}
	io.Pf("\nmethod = %q  α = %g [m]  γ = %g [N/m³]\n", flex.Method(), flex.Alpha(), flex.GammaMantle())
	io.Pforan("deflection: min = %g [m]  max = %g [m]\n", wmin, wmax)
}
