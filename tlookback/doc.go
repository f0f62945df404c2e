// Package tlookback defines the lookback-time grid on which star-formation
// and metallicity histories are expressed.
//
// The grid is fixed and logarithmic: one edge at 0, then 41 edges at
// log10(t/yr) = 6.05, 6.15, ..., 10.05, and a closing edge at 13.8 Gyr. All
// times are in Gyr. For a galaxy observed at age tage the grid is truncated
// to the edges strictly younger than tage, and tage itself closes the last
// bin, so bins never extend past the age of the galaxy.
//
// Bins are half-open [lo, hi): Digitize reports the bin that contains x.
// Bin additionally closes the last bin on the right so the galaxy age itself
// falls inside the grid.
package tlookback
