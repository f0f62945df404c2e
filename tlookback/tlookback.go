// SPDX-License-Identifier: MIT

package tlookback

import (
	"fmt"
	"math"
	"sort"
)

const (
	// DefaultFirstLogEdge is log10(t/yr) of the first non-zero edge.
	DefaultFirstLogEdge = 6.05

	// DefaultLogStep is the spacing of the logarithmic edges in dex.
	DefaultLogStep = 0.1

	// DefaultLogEdges is the number of logarithmic edges.
	DefaultLogEdges = 41

	// DefaultMaxAge closes the default grid, in Gyr.
	DefaultMaxAge = 13.8
)

// DefaultEdges returns a fresh copy of the 43 default lookback-time edges in Gyr.
func DefaultEdges() []float64 {
	edges := make([]float64, 0, DefaultLogEdges+2)
	edges = append(edges, 0)
	for k := 0; k < DefaultLogEdges; k++ {
		edges = append(edges, math.Pow(10, DefaultFirstLogEdge+DefaultLogStep*float64(k)-9))
	}

	return append(edges, DefaultMaxAge)
}

// Edges returns the default edges strictly below tage followed by tage.
//
// Errors: ErrNonPositiveAge when tage <= 0.
func Edges(tage float64) ([]float64, error) {
	if !(tage > 0) {
		return nil, fmt.Errorf("Edges(%g): %w", tage, ErrNonPositiveAge)
	}

	def := DefaultEdges()
	out := make([]float64, 0, len(def)+1)
	for _, e := range def {
		if e < tage {
			out = append(out, e)
		}
	}

	return append(out, tage), nil
}

// Centers returns the arithmetic midpoints of consecutive edges.
func Centers(edges []float64) []float64 {
	if len(edges) < 2 {
		return nil
	}
	out := make([]float64, len(edges)-1)
	for i := range out {
		out[i] = 0.5 * (edges[i] + edges[i+1])
	}

	return out
}

// Widths returns the width of every bin in Gyr.
func Widths(edges []float64) []float64 {
	if len(edges) < 2 {
		return nil
	}
	out := make([]float64, len(edges)-1)
	for i := range out {
		out[i] = edges[i+1] - edges[i]
	}

	return out
}

// Digitize returns the index i of the bin with edges[i] <= x < edges[i+1].
// It returns -1 when x < edges[0] and len(edges)-1 when x >= the last edge.
//
// Complexity: O(log n).
func Digitize(x float64, edges []float64) int {
	return sort.Search(len(edges), func(k int) bool { return edges[k] > x }) - 1
}

// Bin returns the bin holding x with the last bin closed on the right, so
// x == edges[len-1] maps to the last bin. It returns -1 when x lies outside
// [edges[0], edges[len-1]].
func Bin(x float64, edges []float64) int {
	n := len(edges)
	if n < 2 || x < edges[0] || x > edges[n-1] {
		return -1
	}
	if x == edges[n-1] {
		return n - 2
	}

	return Digitize(x, edges)
}
