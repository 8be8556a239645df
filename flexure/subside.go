// Copyright 2016 The Goflex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flexure

import (
	"math"
	"sync"
)

// source is one loaded node with its integrated vertical force
type source struct {
	row, col int
	force    float64 // pressure times cell area [N]
}

// subsideGrid superposes the kei Green's function response of every loaded node
// onto every target node:
//  out[q] += Σ_p load[p]·dx·dy · 2/(π·α²·γ) · kernel[|qi-pi|][|qj-pj|]
// Target rows are split into nprocs contiguous blocks computed by independent
// workers. All inputs are read-only and each worker writes a disjoint block of
// out, so no synchronisation is needed beyond joining the workers. Since every
// worker accumulates the sources in the same order, the result is identical
// for any number of workers
func subsideGrid(out, loads []float64, kernel [][]float64, nrow, ncol int, dy, dx, alpha, gammaMantle float64, nprocs int) {
	nn := nrow * ncol
	if nn == 0 {
		return
	}

	// gather loaded nodes; zero loads contribute nothing
	area := dx * dy
	sources := make([]source, 0, nn)
	for n := 0; n < nn; n++ {
		if loads[n] != 0 {
			sources = append(sources, source{n / ncol, n % ncol, loads[n] * area})
		}
	}
	if len(sources) == 0 {
		return
	}

	// partition target rows
	if nprocs < 1 {
		nprocs = 1
	}
	if nprocs > nrow {
		nprocs = nrow
	}
	c := 2.0 / (math.Pi * alpha * alpha * gammaMantle)
	var wg sync.WaitGroup
	wg.Add(nprocs)
	for w := 0; w < nprocs; w++ {
		r0 := w * nrow / nprocs
		r1 := (w + 1) * nrow / nprocs
		go func(r0, r1 int) {
			defer wg.Done()
			subsideRows(out, sources, kernel, r0, r1, ncol, c)
		}(r0, r1)
	}
	wg.Wait()
}

// subsideRows accumulates deflections for target rows r0 ≤ qi < r1
func subsideRows(out []float64, sources []source, kernel [][]float64, r0, r1, ncol int, c float64) {
	for qi := r0; qi < r1; qi++ {
		for qj := 0; qj < ncol; qj++ {
			sum := 0.0
			for _, s := range sources {
				di := qi - s.row
				if di < 0 {
					di = -di
				}
				dj := qj - s.col
				if dj < 0 {
					dj = -dj
				}
				sum += s.force * kernel[di][dj]
			}
			out[qi*ncol+qj] += c * sum
		}
	}
}
