// Copyright 2016 The Goflex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements a uniform rectangular raster grid with named node fields
package grid

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Raster holds a uniform rectangular grid of nodes and a registry of named node
// fields. Nodes are ordered row-major: node n sits at row n/Ncol and column n%Ncol.
// Shape and spacing are fixed for the lifetime of the grid
type Raster struct {
	// essential
	Nrow int     // number of node rows
	Ncol int     // number of node columns
	Dy   float64 // physical distance between node rows [m]
	Dx   float64 // physical distance between node columns [m]

	// node fields
	fields map[string][]float64 // named fields; one value per node
}

// NewRaster returns a new raster grid
func NewRaster(nrow, ncol int, dy, dx float64) (o *Raster, err error) {
	if nrow < 1 || ncol < 1 {
		err = chk.Err("grid shape must be positive. nrow=%d, ncol=%d is invalid", nrow, ncol)
		return
	}
	if dy <= 0 || dx <= 0 {
		err = chk.Err("grid spacing must be positive. dy=%g, dx=%g is invalid", dy, dx)
		return
	}
	o = new(Raster)
	o.Nrow, o.Ncol = nrow, ncol
	o.Dy, o.Dx = dy, dx
	o.fields = make(map[string][]float64)
	return
}

// Shape returns the number of node rows and columns
func (o *Raster) Shape() (nrow, ncol int) {
	return o.Nrow, o.Ncol
}

// Spacing returns the physical distance between node rows and columns
func (o *Raster) Spacing() (dy, dx float64) {
	return o.Dy, o.Dx
}

// NumNodes returns the total number of nodes
func (o *Raster) NumNodes() int {
	return o.Nrow * o.Ncol
}

// AddField registers a new node field initialised with zeros and returns it.
// If the field exists already, the existing storage is returned unchanged
func (o *Raster) AddField(name string) []float64 {
	if f, ok := o.fields[name]; ok {
		return f
	}
	f := make([]float64, o.NumNodes())
	o.fields[name] = f
	return f
}

// GetField returns the storage of a registered node field
func (o *Raster) GetField(name string) ([]float64, error) {
	f, ok := o.fields[name]
	if !ok {
		return nil, chk.Err("field named %q is not registered in grid", name)
	}
	return f, nil
}

// NodeDistance returns the physical distance between nodes p and q
func (o *Raster) NodeDistance(p, q int) float64 {
	dy := float64(p/o.Ncol-q/o.Ncol) * o.Dy
	dx := float64(p%o.Ncol-q%o.Ncol) * o.Dx
	return math.Sqrt(dx*dx + dy*dy)
}
