// SPDX-License-Identifier: MIT

package rebin

const (
	opTrapz   = "Trapz"
	opToGrid  = "ToGrid"
	opCenters = "CentersToEdges"
)

// Trapz rebins the density y(x) onto the bins delimited by edges.
//
// Implementation:
//   - Stage 1: validate shapes, monotonicity and that edges lie inside [x0, xN].
//   - Stage 2: for every bin i, advance j to the first sample with x[j] > edges[i];
//     interpolate y at edges[i] and either
//     (a) integrate the partial trapezoid up to x[j], every whole interior
//     trapezoid, and the partial one closing at edges[i+1], or
//     (b) when no sample falls inside the bin, integrate the straight segment
//     between both interpolated edge values.
//   - Stage 3: divide each accumulated area by its bin width.
//
// Inputs:
//   - x: strictly increasing sample positions, len ≥ 2.
//   - y: density values at x, len(y) == len(x).
//   - edges: strictly increasing bin edges, len ≥ 2, within [x[0], x[len-1]].
//
// Returns:
//   - []float64 of length len(edges)-1 with the mean density in every bin.
//
// Errors:
//   - ErrLengthMismatch, ErrTooFewPoints, ErrNotIncreasing, ErrEdgesOutOfRange.
//
// Complexity:
//   - Time O(len(x)+len(edges)), Space O(len(edges)).
func Trapz(x, y, edges []float64) ([]float64, error) {
	if err := validate(x, y, edges); err != nil {
		return nil, rebinErrorf(opTrapz, err)
	}

	out := make([]float64, len(edges)-1)
	trapz(x, y, edges, out)

	return out, nil
}

// trapz is the unchecked kernel behind Trapz; out must be zeroed.
func trapz(x, y, edges, out []float64) {
	nbin := len(edges) - 1
	var (
		i, j      int
		yedge     float64
		ylo, yhi  float64
		slope     float64
		lo, hi    float64
		lastInput = len(x) - 1
	)

	for i = 0; i < nbin; i++ {
		lo, hi = edges[i], edges[i+1]

		// Seek the first sample strictly beyond the lower edge.
		for x[j] <= lo {
			j++
		}

		// Sample j lies inside this bin.
		if x[j] < hi {
			yedge = y[j-1] + (lo-x[j-1])*(y[j]-y[j-1])/(x[j]-x[j-1])
			out[i] += 0.5 * (y[j] + yedge) * (x[j] - lo)

			// Whole trapezoids strictly inside the bin.
			for j < lastInput && x[j+1] < hi {
				j++
				out[i] += 0.5 * (y[j] + y[j-1]) * (x[j] - x[j-1])
			}

			// Partial trapezoid closing at the upper edge.
			yedge = y[j] + (hi-x[j])*(y[j+1]-y[j])/(x[j+1]-x[j])
			out[i] += 0.5 * (yedge + y[j]) * (hi - x[j])
			continue
		}

		// The bin sits between samples j-1 and j.
		slope = (y[j] - y[j-1]) / (x[j] - x[j-1])
		ylo = y[j] + (lo-x[j])*slope
		yhi = y[j] + (hi-x[j])*slope
		out[i] += 0.5 * (ylo + yhi) * (hi - lo)
	}

	for i = 0; i < nbin; i++ {
		out[i] /= edges[i+1] - edges[i]
	}
}

func validate(x, y, edges []float64) error {
	if len(x) != len(y) {
		return ErrLengthMismatch
	}
	if len(x) < 2 || len(edges) < 2 {
		return ErrTooFewPoints
	}
	if !strictlyIncreasing(x) || !strictlyIncreasing(edges) {
		return ErrNotIncreasing
	}
	if edges[0] < x[0] || x[len(x)-1] < edges[len(edges)-1] {
		return ErrEdgesOutOfRange
	}

	return nil
}

func strictlyIncreasing(v []float64) bool {
	for k := 1; k < len(v); k++ {
		if !(v[k] > v[k-1]) {
			return false
		}
	}

	return true
}
