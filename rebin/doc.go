// Package rebin resamples tabulated densities onto new bin edges while
// conserving their integral.
//
// 🚀 What is flux-conserving rebinning?
//
//	A spectrum f(λ) sampled at points x is a density: what is physically
//	meaningful is ∫ f dλ over a pixel, not f at the pixel centre. Rebinning
//	treats the samples as a piecewise-linear function, integrates it exactly
//	over every target bin with the trapezoid rule, and divides by the bin
//	width. The result is a density again, so a constant input stays constant:
//
//	  x = 0..9, y = 1          → Trapz(x, y, [0 2 4 6 8]) = [1 1 1 1]
//
// ✨ Key features:
//   - two monotone pointers walk input samples and target edges in lock-step: O(N+M)
//   - identical answers whatever the relative resolution of input and target grids
//   - ToGrid accepts target bin centres in any order and restores caller order
//
// ⚙️ Usage:
//
//	flux, err := rebin.Trapz(wave, lum, edges)
//	if errors.Is(err, rebin.ErrEdgesOutOfRange) {
//	    // the requested grid is wider than the tabulated spectrum
//	}
//
// The same primitive is used for wavelength grids (spectra) and for
// lookback-time grids (star-formation-history bases).
package rebin
