// SPDX-License-Identifier: MIT

package rebin

import "sort"

// CentersToEdges converts bin centres into bin edges: interior edges are
// midpoints of neighbouring centres, the outer edges are extrapolated by half
// of the first and last spacing.
//
// Errors: ErrTooFewPoints for fewer than two centres.
func CentersToEdges(centers []float64) ([]float64, error) {
	n := len(centers)
	if n < 2 {
		return nil, rebinErrorf(opCenters, ErrTooFewPoints)
	}

	edges := make([]float64, n+1)
	for i := 1; i < n; i++ {
		edges[i] = 0.5 * (centers[i-1] + centers[i])
	}
	edges[0] = centers[0] - 0.5*(centers[1]-centers[0])
	edges[n] = centers[n-1] + 0.5*(centers[n-1]-centers[n-2])

	return edges, nil
}

// ToGrid rebins y(x) onto the bins centred at centers.
//
// centers may come in any order: they are sorted, rebinned and the result is
// scattered back so out[k] always belongs to centers[k].
//
// Complexity: O(M log M) for the sort plus O(N+M) for the rebin.
func ToGrid(x, y, centers []float64) ([]float64, error) {
	if len(centers) < 2 {
		return nil, rebinErrorf(opToGrid, ErrTooFewPoints)
	}

	// Stage 1: argsort when the caller's grid is not already increasing.
	order := make([]int, len(centers))
	for i := range order {
		order[i] = i
	}
	sorted := centers
	if !strictlyIncreasing(centers) {
		sort.SliceStable(order, func(a, b int) bool { return centers[order[a]] < centers[order[b]] })
		sorted = make([]float64, len(centers))
		for k, idx := range order {
			sorted[k] = centers[idx]
		}
	}

	// Stage 2: rebin on the increasing grid.
	edges, err := CentersToEdges(sorted)
	if err != nil {
		return nil, rebinErrorf(opToGrid, err)
	}
	if err = validate(x, y, edges); err != nil {
		return nil, rebinErrorf(opToGrid, err)
	}
	binned := make([]float64, len(sorted))
	trapz(x, y, edges, binned)

	// Stage 3: restore caller order.
	out := make([]float64, len(centers))
	for k, idx := range order {
		out[idx] = binned[k]
	}

	return out, nil
}
