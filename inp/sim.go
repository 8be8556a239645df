// Copyright 2016 The Goflex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// GridData holds the raster grid definition
type GridData struct {
	Nrow int     `json:"nrow"` // number of node rows
	Ncol int     `json:"ncol"` // number of node columns
	Dy   float64 `json:"dy"`   // row spacing [m]
	Dx   float64 `json:"dx"`   // column spacing [m]
}

// MatData holds the material constants of plate and mantle
type MatData struct {
	Eet       float64 `json:"eet"`       // effective elastic thickness [m]
	Youngs    float64 `json:"youngs"`    // Young's modulus [Pa]
	RhoMantle float64 `json:"rhomantle"` // mantle density [kg/m³]
	Gravity   float64 `json:"gravity"`   // acceleration due to gravity [m/s²]
}

// LoadData holds one applied point load
type LoadData struct {
	Node  int     `json:"node"`  // node index, row-major
	Value float64 `json:"value"` // applied pressure [Pa]
}

// Simulation holds all data for a flexure simulation read from a .sim file
type Simulation struct {
	Desc   string     `json:"desc"`     // description of simulation
	Grid   GridData   `json:"grid"`     // raster grid definition
	Mat    MatData    `json:"material"` // material constants
	Method string     `json:"method"`   // "airy" or "flexure"
	Nprocs int        `json:"nprocs"`   // number of workers
	Loads  []LoadData `json:"loads"`    // applied point loads
}

// SetDefaults fills zero values with default constants
func (o *Simulation) SetDefaults() {
	if o.Method == "" {
		o.Method = "airy"
	}
	if o.Nprocs == 0 {
		o.Nprocs = 1
	}
	if o.Mat.Eet == 0 {
		o.Mat.Eet = 65000.0
	}
	if o.Mat.Youngs == 0 {
		o.Mat.Youngs = 7e10
	}
	if o.Mat.RhoMantle == 0 {
		o.Mat.RhoMantle = 3300.0
	}
	if o.Mat.Gravity == 0 {
		o.Mat.Gravity = 9.80665
	}
}

// Prms returns the material constants and worker count as a list of parameters
// suitable for flexure.New
func (o Simulation) Prms() fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "eet", V: o.Mat.Eet},
		&fun.Prm{N: "youngs", V: o.Mat.Youngs},
		&fun.Prm{N: "rhomantle", V: o.Mat.RhoMantle},
		&fun.Prm{N: "gravity", V: o.Mat.Gravity},
		&fun.Prm{N: "nprocs", V: float64(o.Nprocs)},
	}
}

// String prints the simulation data in JSON format
func (o Simulation) String() string {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		chk.Panic("cannot marshal Simulation data")
	}
	return string(b)
}

// ReadSim reads a simulation file and fills defaults; returns nil on failure
func ReadSim(simfilepath string, verbose bool) *Simulation {
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		io.PfRed("sim: cannot read simulation file %q\n%v\n", simfilepath, err)
		return nil
	}
	var o Simulation
	if err = json.Unmarshal(b, &o); err != nil {
		io.PfRed("sim: cannot parse simulation file %q\n%v\n", simfilepath, err)
		return nil
	}
	o.SetDefaults()
	if verbose {
		io.Pf("%v\n", o)
	}
	return &o
}
