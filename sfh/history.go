// SPDX-License-Identifier: MIT

package sfh

import "github.com/katalvlaran/popsed/tlookback"

// History is a binned star-formation history.
// SFR[i] is the mean rate in Msun/yr over [Edges[i], Edges[i+1]) Gyr lookback.
type History struct {
	Edges []float64
	SFR   []float64
}

// Centers returns the bin centres in Gyr.
func (h History) Centers() []float64 { return tlookback.Centers(h.Edges) }

// Widths returns the bin widths in Gyr.
func (h History) Widths() []float64 { return tlookback.Widths(h.Edges) }

// MassFormed returns the mass formed per bin, 1e9·dt_i·SFR_i, in Msun.
func (h History) MassFormed() []float64 {
	out := make([]float64, len(h.SFR))
	for i := range out {
		out[i] = 1e9 * (h.Edges[i+1] - h.Edges[i]) * h.SFR[i]
	}

	return out
}

// TotalMass returns the total mass formed in Msun.
func (h History) TotalMass() float64 {
	var sum float64
	for _, m := range h.MassFormed() {
		sum += m
	}

	return sum
}

// Metallicity is the absolute metallicity Z at every lookback-time bin centre.
type Metallicity struct {
	Edges []float64
	Z     []float64
}
