// Copyright 2016 The Goflex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package kelvin implements the zero order Kelvin function kei
package kelvin

import (
	"math"
	"math/cmplx"
)

// eulerGamma is the Euler-Mascheroni constant
const eulerGamma = 0.57721566490153286060

// serCutoff is the argument above which the asymptotic expansion takes over from the
// power series. At the cutoff both branches agree to about 2e-9
const serCutoff = 8.0

// coefficients of the Hankel asymptotic expansion of K0(z) for large |z|
var asyCoef = []float64{
	1.0,
	-1.0 / 8.0,
	9.0 / 128.0,
	-75.0 / 1024.0,
	3675.0 / 32768.0,
	-59535.0 / 262144.0,
}

// Kei computes the zero order Kelvin function kei(x) = Im{K0(x·exp(i·π/4))}
//  kei is finite everywhere: kei(0) = -π/4, and for growing x it decays towards zero
//  with damped oscillations; the first zero sits at x ≈ 3.9146676
func Kei(x float64) float64 {
	x = math.Abs(x)
	if x == 0 {
		return -math.Pi / 4.0
	}
	if x <= serCutoff {
		return keiSeries(x)
	}
	return keiAsymptotic(x)
}

// KeiVec computes kei at each component of x, writing results into dst
func KeiVec(dst, x []float64) {
	for i := 0; i < len(x); i++ {
		dst[i] = Kei(x[i])
	}
}

// keiSeries evaluates the power series
//  kei(x) = -(ln(x/2)+γE)·bei(x) - (π/4)·ber(x) + Σ (-1)^k H(2k+1) (x/2)^(4k+2) / ((2k+1)!)²
// with H(n) the n-th harmonic number. Terms are carried iteratively to avoid factorials
func keiSeries(x float64) float64 {
	t2 := x * x / 4.0 // (x/2)²
	u := t2 * t2      // (x/2)⁴

	// k = 0 terms
	ber, bei, ser := 1.0, t2, t2
	termb, termi, h := 1.0, t2, 1.0

	for k := 1; k <= 30; k++ {
		fk := float64(k)
		termb *= -u / ((2*fk - 1) * (2*fk - 1) * (2 * fk) * (2 * fk))
		termi *= -u / ((2 * fk) * (2 * fk) * (2*fk + 1) * (2*fk + 1))
		h += 1.0/(2.0*fk) + 1.0/(2.0*fk+1.0)
		ber += termb
		bei += termi
		ser += termi * h
		if math.Abs(termb) < 1e-18 && math.Abs(termi) < 1e-18 {
			break
		}
	}
	return -(math.Log(x/2.0)+eulerGamma)*bei - math.Pi/4.0*ber + ser
}

// keiAsymptotic evaluates the imaginary part of the Hankel expansion
//  K0(z) ~ sqrt(π/(2z))·exp(-z)·Σ aₖ/zᵏ   with   z = x·exp(i·π/4)
func keiAsymptotic(x float64) float64 {
	z := complex(x/math.Sqrt2, x/math.Sqrt2)
	sum := complex(0, 0)
	zk := complex(1, 0)
	for _, a := range asyCoef {
		sum += complex(a, 0) / zk
		zk *= z
	}
	k0 := cmplx.Sqrt(complex(math.Pi, 0)/(2.0*z)) * cmplx.Exp(-z) * sum
	return imag(k0)
}
