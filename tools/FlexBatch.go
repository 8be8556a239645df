// Copyright 2016 The Goflex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// FlexBatch solves a batch of flexure simulation (.sim) files concurrently and
// prints one summary line per file
package main

import (
	"context"
	"os"

	"github.com/cpmech/goflex/flexure"
	"github.com/cpmech/goflex/grid"
	"github.com/cpmech/goflex/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"golang.org/x/sync/errgroup"
)

// result holds the outcome of one simulation file
type result struct {
	desc   string  // description from the .sim file
	method string  // method used
	nnodes int     // number of grid nodes
	wmin   float64 // smallest deflection [m]
	wmax   float64 // largest deflection [m]
}

func main() {

	if len(os.Args) < 2 {
		io.Pf("usage: FlexBatch file1.sim file2.sim ...\n")
		return
	}
	fns := os.Args[1:]

	// one goroutine per file; results land in disjoint slots
	results := make([]result, len(fns))
	g, _ := errgroup.WithContext(context.Background())
	for i, fn := range fns {
		i, fn := i, fn
		g.Go(func() error {
			return runOne(fn, &results[i])
		})
	}
	if err := g.Wait(); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}

	for i, r := range results {
		io.Pf("%-30s %-30s method=%-8s n=%-6d wmin=%13.6e wmax=%13.6e\n",
			fns[i], r.desc, r.method, r.nnodes, r.wmin, r.wmax)
	}
}

// runOne solves a single simulation file
func runOne(fn string, r *result) error {
	sim := inp.ReadSim(fn, false)
	if sim == nil {
		return chk.Err("cannot read simulation file %q", fn)
	}
	g, err := grid.NewRaster(sim.Grid.Nrow, sim.Grid.Ncol, sim.Grid.Dy, sim.Grid.Dx)
	if err != nil {
		return err
	}
	load := g.AddField(flexure.LoadField)
	for _, l := range sim.Loads {
		load[l.Node] = l.Value
	}
	flex, err := flexure.New(g, sim.Method, sim.Prms())
	if err != nil {
		return err
	}
	if err = flex.Update(); err != nil {
		return err
	}
	deflection, err := g.GetField(flexure.DeflectionField)
	if err != nil {
		return err
	}
	r.desc = sim.Desc
	r.method = flex.Method()
	r.nnodes = g.NumNodes()
	r.wmin, r.wmax = deflection[0], deflection[0]
	for _, w := range deflection {
		if w < r.wmin {
			r.wmin = w
		}
		if w > r.wmax {
			r.wmax = w
		}
	}
	return nil
}
