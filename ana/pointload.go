// Copyright 2016 The Goflex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions for checking the flexure solver
package ana

import (
	"math"

	"github.com/cpmech/goflex/kelvin"
	"github.com/cpmech/gosl/fun"
)

// PlatePointLoad computes the deflection of an infinite elastic plate floating
// on an inviscid fluid mantle, caused by a single vertical point force
//
//                 ↓ P
//  ───────────────────────────────  plate: E, h, ν=1/4
//       ~    ~    ~    ~    ~       mantle: γ = ρ·g
//
//  w(r) = P·α²/(2·π·D) · kei(r/α)
type PlatePointLoad struct {
	// input
	P    float64 // point force [N]
	Eet  float64 // effective elastic thickness [m]
	E    float64 // Young's modulus [Pa]
	RhoM float64 // mantle density [kg/m³]
	Grav float64 // acceleration due to gravity [m/s²]

	// derived
	Gamma float64 // restoring force density of the mantle [N/m³]
	D     float64 // flexural rigidity [N·m]
	Alpha float64 // flexure parameter [m]
}

// Init initialises this structure
func (o *PlatePointLoad) Init(prms fun.Prms) {

	// default values
	o.P = 1e9
	o.Eet = 65000.0
	o.E = 7e10
	o.RhoM = 3300.0
	o.Grav = 9.80665

	// parameters
	for _, p := range prms {
		switch p.N {
		case "P":
			o.P = p.V
		case "eet":
			o.Eet = p.V
		case "youngs":
			o.E = p.V
		case "rhomantle":
			o.RhoM = p.V
		case "gravity":
			o.Grav = p.V
		}
	}

	// derived
	ν := 0.25
	o.Gamma = o.RhoM * o.Grav
	o.D = o.E * math.Pow(o.Eet, 3.0) / (12.0 * (1.0 - ν*ν))
	o.Alpha = math.Pow(4.0*o.D/o.Gamma, 0.25)
}

// Deflection computes the vertical deflection [m] at distance r [m] from the load
func (o PlatePointLoad) Deflection(r float64) float64 {
	return o.P * 2.0 / (math.Pi * o.Gamma * o.Alpha * o.Alpha) * kelvin.Kei(r/o.Alpha)
}

// Airy computes the local isostatic deflection [m] under pressure q [Pa],
// the degenerate response of a plate with vanishing elastic thickness
func (o PlatePointLoad) Airy(q float64) float64 {
	return q / o.Gamma
}
