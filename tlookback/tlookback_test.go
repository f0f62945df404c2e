// SPDX-License-Identifier: MIT

package tlookback_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/popsed/tlookback"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultEdges(t *testing.T) {
	edges := tlookback.DefaultEdges()
	require.Len(t, edges, 43)
	assert.Equal(t, 0.0, edges[0])
	assert.InDelta(t, math.Pow(10, 6.05-9), edges[1], 1e-15)
	assert.InDelta(t, math.Pow(10, 10.05-9), edges[41], 1e-12)
	assert.Equal(t, 13.8, edges[42])
	for i := 1; i < len(edges); i++ {
		assert.Greater(t, edges[i], edges[i-1])
	}
}

func TestEdges_Tage137(t *testing.T) {
	edges, err := tlookback.Edges(13.7)
	require.NoError(t, err)

	// 10^(10.05-9) ≈ 11.22 < 13.7, only the closing 13.8 is dropped.
	require.Len(t, edges, 43)
	assert.Equal(t, 0.0, edges[0])
	assert.Equal(t, 13.7, edges[len(edges)-1])

	def := tlookback.DefaultEdges()
	assert.Equal(t, def[:42], edges[:42])

	var sum float64
	for _, w := range tlookback.Widths(edges) {
		assert.Greater(t, w, 0.0)
		sum += w
	}
	assert.InDelta(t, 13.7, sum, 1e-12)
}

func TestEdges_YoungGalaxy(t *testing.T) {
	edges, err := tlookback.Edges(0.002)
	require.NoError(t, err)
	// 0, 10^-2.95 ≈ 0.00112, 10^-2.85 ≈ 0.00141, 10^-2.75 ≈ 0.00178, then tage.
	require.Len(t, edges, 5)
	assert.Equal(t, 0.002, edges[4])
}

func TestEdges_NonPositive(t *testing.T) {
	for _, tage := range []float64{0, -1, math.NaN()} {
		_, err := tlookback.Edges(tage)
		assert.ErrorIs(t, err, tlookback.ErrNonPositiveAge)
	}
}

func TestCentersWidths(t *testing.T) {
	edges := []float64{0, 1, 3}
	assert.Equal(t, []float64{0.5, 2}, tlookback.Centers(edges))
	assert.Equal(t, []float64{1, 2}, tlookback.Widths(edges))
	assert.Nil(t, tlookback.Centers([]float64{1}))
}

func TestDigitize(t *testing.T) {
	edges := []float64{0, 1, 2, 5}
	cases := []struct {
		x    float64
		want int
	}{
		{-0.5, -1},
		{0, 0},
		{0.99, 0},
		{1, 1},
		{4.999, 2},
		{5, 3},
		{7, 3},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tlookback.Digitize(tc.x, edges), "x=%g", tc.x)
	}
}

func TestBin_ClosesLastEdge(t *testing.T) {
	edges := []float64{0, 1, 2, 5}
	assert.Equal(t, 2, tlookback.Bin(5, edges), "oldest edge belongs to the last bin")
	assert.Equal(t, 1, tlookback.Bin(1, edges))
	assert.Equal(t, 0, tlookback.Bin(0, edges))
	assert.Equal(t, -1, tlookback.Bin(5.0001, edges))
	assert.Equal(t, -1, tlookback.Bin(-1, edges))
}
