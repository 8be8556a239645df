// Copyright 2016 The Goflex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flexure

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
)

// names of the grid fields read and written by this component
const (
	LoadField       = "lithosphere__overlying_pressure_increment" // applied pressure over a step [Pa]
	DeflectionField = "lithosphere_surface__elevation_increment"  // change of surface elevation over a step [m]
)

// Grid is the raster grid collaborator: shape, spacing and named node fields.
// Fields are flat node vectors in row-major order
type Grid interface {
	Shape() (nrow, ncol int)
	Spacing() (dy, dx float64)
	GetField(name string) ([]float64, error)
	AddField(name string) []float64
}

// Flexure deforms the lithosphere with 2D flexure. Two methods are available:
//  "airy"    -- local isostasy: deflection = load/γ at each node independently
//  "flexure" -- elastic plate: deflection at each node superposes the kei
//               Green's function response to every loaded node
// Material constants and the method are fixed at construction; only the
// effective elastic thickness may change afterwards, via SetEet, which
// rebuilds the kernel table before the component is used again
type Flexure struct {
	// input
	eet       float64 // effective elastic thickness [m]
	youngs    float64 // Young's modulus [Pa]
	rhoMantle float64 // mantle density [kg/m³]
	gravity   float64 // acceleration due to gravity [m/s²]
	method    string  // "airy" or "flexure"
	nprocs    int     // number of workers for the flexure method

	// access
	grid Grid // raster grid (not owned)

	// derived
	alpha  float64     // flexure parameter [m]
	kernel [][]float64 // kei kernel table anchored at the grid origin
}

// New returns a new Flexure component acting on the given grid and registers
// the deflection output field. Nothing is touched on the grid if the input
// is invalid.
//  method -- "airy" or "flexure"
//  prms   -- optional parameters:
//   "eet"       -- effective elastic thickness [m] (65000)
//   "youngs"    -- Young's modulus [Pa] (7e10)
//   "rhomantle" -- mantle density [kg/m³] (3300)
//   "gravity"   -- acceleration due to gravity [m/s²] (9.80665)
//   "nprocs"    -- number of workers (1)
func New(g Grid, method string, prms fun.Prms) (o *Flexure, err error) {

	// method
	if method != "airy" && method != "flexure" {
		err = chk.Err("unsupported method: %q is not understood. methods are \"airy\" or \"flexure\"", method)
		return
	}

	// default values
	o = new(Flexure)
	o.grid = g
	o.method = method
	o.eet = DefaultEet
	o.youngs = DefaultYoungs
	o.rhoMantle = DefaultRhoMantle
	o.gravity = DefaultGravity
	o.nprocs = 1

	// parameters
	for _, p := range prms {
		switch p.N {
		case "eet":
			o.eet = p.V
		case "youngs":
			o.youngs = p.V
		case "rhomantle":
			o.rhoMantle = p.V
		case "gravity":
			o.gravity = p.V
		case "nprocs":
			o.nprocs = int(p.V)
		}
	}

	// derived
	err = o.rebuild()
	if err != nil {
		o = nil
		return
	}
	o.grid.AddField(DeflectionField)
	return
}

// Eet returns the effective elastic thickness [m]
func (o *Flexure) Eet() float64 { return o.eet }

// Youngs returns the Young's modulus [Pa]
func (o *Flexure) Youngs() float64 { return o.youngs }

// RhoMantle returns the mantle density [kg/m³]
func (o *Flexure) RhoMantle() float64 { return o.rhoMantle }

// Gravity returns the acceleration due to gravity [m/s²]
func (o *Flexure) Gravity() float64 { return o.gravity }

// Method returns the name of the method used to compute deflections
func (o *Flexure) Method() string { return o.method }

// GammaMantle returns the restoring force density of the mantle [N/m³]
func (o *Flexure) GammaMantle() float64 { return o.rhoMantle * o.gravity }

// Alpha returns the current flexure parameter [m]
func (o *Flexure) Alpha() float64 { return o.alpha }

// SetEet sets a new effective elastic thickness [m] and synchronously rebuilds
// the kernel table; the component must not be used after a failed call
func (o *Flexure) SetEet(eet float64) (err error) {
	if eet <= 0 {
		return chk.Err("invalid parameter: effective elastic thickness must be positive. eet=%g is invalid", eet)
	}
	o.eet = eet
	return o.rebuild()
}

// rebuild recomputes alpha and the kernel table from the current constants
func (o *Flexure) rebuild() (err error) {
	o.alpha, err = GetFlexureParameter(o.eet, o.youngs, 2, o.GammaMantle())
	if err != nil {
		return
	}
	nrow, ncol := o.grid.Shape()
	dy, dx := o.grid.Spacing()
	o.kernel = NewKernelTable(nrow, ncol, dy, dx, o.alpha)
	return
}

// Update reads the current load field and overwrites the deflection field
// with the response to it. The load field is left unmodified
func (o *Flexure) Update() (err error) {
	load, err := o.grid.GetField(LoadField)
	if err != nil {
		return
	}
	deflection, err := o.grid.GetField(DeflectionField)
	if err != nil {
		return
	}
	la.VecFill(deflection, 0)
	if o.method == "airy" {
		gamma := o.GammaMantle()
		for i := 0; i < len(load); i++ {
			deflection[i] = load[i] / gamma
		}
		return
	}
	_, err = o.SubsideLoads(load, deflection)
	return
}

// SubsideLoads subsides the surface due to the given loads using the elastic
// plate response, independently of the grid's named fields.
//  loads -- applied pressure at each node [Pa]; read-only
//  out   -- optional buffer for the deflections [m]; allocated when nil.
//           Deflections are accumulated onto the existing values of out
func (o *Flexure) SubsideLoads(loads, out []float64) ([]float64, error) {
	nrow, ncol := o.grid.Shape()
	nn := nrow * ncol
	if len(loads) != nn {
		return nil, chk.Err("loads vector has wrong dimension. %d != %d", len(loads), nn)
	}
	if out == nil {
		out = make([]float64, nn)
	}
	if len(out) != nn {
		return nil, chk.Err("output vector has wrong dimension. %d != %d", len(out), nn)
	}

	// work on a copy so that loads stays intact even if it aliases out
	newLoad := make([]float64, nn)
	la.VecCopy(newLoad, 1, loads)

	dy, dx := o.grid.Spacing()
	subsideGrid(out, newLoad, o.kernel, nrow, ncol, dy, dx, o.alpha, o.GammaMantle(), o.nprocs)
	return out, nil
}
