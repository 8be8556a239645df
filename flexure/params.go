// Copyright 2016 The Goflex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package flexure implements the deflection of an elastic lithospheric plate
// floating on a fluid mantle under surface loads, over a uniform raster grid
package flexure

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// default material constants
const (
	DefaultEet       = 65000.0 // effective elastic thickness [m]
	DefaultYoungs    = 7e10    // Young's modulus [Pa]
	DefaultRhoMantle = 3300.0  // mantle density [kg/m³]
	DefaultGravity   = 9.80665 // acceleration due to gravity [m/s²]
)

// poisson is the Poisson's ratio of the plate
const poisson = 0.25

// GetFlexureParameter computes the flexure parameter alpha [m], the length scale
// over which the deflection caused by a point load decays, derived from
//  D = E·h³ / (12·(1-ν²))   flexural rigidity of the plate [N·m]
//  α = (4·D/γ)^(1/4)        with γ = gammaMantle [N/m³]
// Only the two dimensional case (ndim=2) is available
func GetFlexureParameter(eet, youngs float64, ndim int, gammaMantle float64) (alpha float64, err error) {
	if eet <= 0 {
		err = chk.Err("invalid parameter: effective elastic thickness must be positive. eet=%g is invalid", eet)
		return
	}
	if youngs <= 0 {
		err = chk.Err("invalid parameter: Young's modulus must be positive. youngs=%g is invalid", youngs)
		return
	}
	if ndim != 2 {
		err = chk.Err("invalid parameter: only ndim=2 is available. ndim=%d is invalid", ndim)
		return
	}
	rigidity := youngs * math.Pow(eet, 3.0) / (12.0 * (1.0 - poisson*poisson))
	alpha = math.Pow(4.0*rigidity/gammaMantle, 0.25)
	return
}
