// Copyright 2016 The Goflex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flexure

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_params01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("params01. flexure parameter")

	gamma := DefaultRhoMantle * DefaultGravity
	chk.Scalar(tst, "gamma", 1e-11, gamma, 32361.945)

	alpha, err := GetFlexureParameter(DefaultEet, DefaultYoungs, 2, gamma)
	if err != nil {
		tst.Errorf("GetFlexureParameter failed: %v\n", err)
		return
	}
	io.Pforan("α(h=65km) = %v [m]\n", alpha)
	chk.Scalar(tst, "alpha h=65km", 1e-9, alpha, 120552.92184274067)

	// a thinner plate has a shorter decay length
	alpha, err = GetFlexureParameter(30000.0, DefaultYoungs, 2, gamma)
	if err != nil {
		tst.Errorf("GetFlexureParameter failed: %v\n", err)
		return
	}
	io.Pforan("α(h=30km) = %v [m]\n", alpha)
	chk.Scalar(tst, "alpha h=30km", 1e-9, alpha, 67504.646041811211)
}

func Test_params02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("params02. non-physical plates")

	gamma := DefaultRhoMantle * DefaultGravity
	if _, err := GetFlexureParameter(0, DefaultYoungs, 2, gamma); err == nil {
		tst.Errorf("eet=0 should have failed\n")
		return
	}
	if _, err := GetFlexureParameter(-1, DefaultYoungs, 2, gamma); err == nil {
		tst.Errorf("eet<0 should have failed\n")
		return
	}
	if _, err := GetFlexureParameter(DefaultEet, 0, 2, gamma); err == nil {
		tst.Errorf("youngs=0 should have failed\n")
		return
	}
	if _, err := GetFlexureParameter(DefaultEet, DefaultYoungs, 1, gamma); err == nil {
		tst.Errorf("ndim=1 should have failed\n")
		return
	}
}
