// Copyright 2016 The Goflex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flexure

import (
	"math"

	"github.com/cpmech/goflex/kelvin"
	"github.com/cpmech/gosl/la"
)

// NewKernelTable builds the kei kernel lookup table for a grid with the given
// shape and spacing. Entry (i,j) holds kei(r/alpha) where r is the physical
// distance from the grid origin to node (i,j). The grid is uniform, hence the
// response between any two nodes depends only on their offset and this single
// origin-anchored table serves all pairs via |Δrow|,|Δcol| indexing
func NewKernelTable(nrow, ncol int, dy, dx, alpha float64) (kern [][]float64) {
	kern = la.MatAlloc(nrow, ncol)
	for i := 0; i < nrow; i++ {
		y := float64(i) * dy
		for j := 0; j < ncol; j++ {
			x := float64(j) * dx
			kern[i][j] = kelvin.Kei(math.Sqrt(x*x+y*y) / alpha)
		}
	}
	return
}
