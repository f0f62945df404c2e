// SPDX-License-Identifier: MIT

package rebin_test

import (
	"fmt"

	"github.com/katalvlaran/popsed/rebin"
)

// ExampleTrapz shows that a constant density stays constant under rebinning.
func ExampleTrapz() {
	x := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	y := []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}

	out, err := rebin.Trapz(x, y, []float64{0, 2, 4, 6, 8})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out)
	// Output: [1 1 1 1]
}

// ExampleCentersToEdges converts a centre grid into edges.
func ExampleCentersToEdges() {
	edges, _ := rebin.CentersToEdges([]float64{10, 20, 30})
	fmt.Println(edges)
	// Output: [5 15 25 35]
}
