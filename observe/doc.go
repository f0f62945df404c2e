// Package observe carries a rest-frame model spectrum into the observer's
// frame and through an instrument.
//
// Stages, each optional and applied in this order by Pipeline.Apply:
//
//  1. Redshift: λ → λ(1+z), L_λ → L_λ·Lsun / (4π d_L²) / (1+z), reported in
//     1e-17 erg/s/cm²/Å. At z = 0 the spectrum is returned unchanged.
//  2. Smooth: velocity dispersion. The spectrum is rebinned onto a uniform
//     log-λ grid with 10 km/s pixels and convolved with a Gaussian of
//     vdisp/10 pixels (reflected boundaries, kernel truncated at 4σ).
//  3. Resample: flux-conserving rebin onto a caller grid, which may be
//     unsorted.
//  4. ApplyResolution: banded instrument response, one matrix per
//     contiguous spectral segment.
//  5. Photometry: AB nanomaggies of the redshifted spectrum through a
//     filter.Set.
package observe
