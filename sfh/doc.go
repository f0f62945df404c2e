// Package sfh turns a parsed parameter vector into binned star-formation and
// metallicity histories on the lookback-time grid.
//
// 🚀 Pipeline (SFH):
//
//	tage ──► tlookback.Edges ──► rebin every high-resolution NMF component
//	     ──► Σ β_k·B_k ──► normalise to 1 Msun formed ──► optional burst
//	     ──► × 10^logmstar
//
// The SFH components are sampled once, at construction, on a uniform
// 50 000-point lookback-time grid spanning the age of the universe; every
// call then only rebins those curves onto the galaxy's own edges, so the
// binned history conserves the mass of the smooth basis.
//
// Epochs. Every history needs the galaxy age. Callers pass exactly one
// Epoch: Age(t) in Gyr, or Redshift(z) resolved through the AgeResolver the
// Synthesizer was built with (normally a *cosmo.Interpolators). Passing none
// or both fails with ErrEpoch.
//
// Bursts. With a burst variant a fraction fburst of the mass forms in a
// single pulse at lookback time tburst. The pulse fills the one bin holding
// tburst; the last bin is closed on the right so tburst == tage is valid. A
// burst older than the galaxy (tburst > tage) is dropped entirely: the
// continuous history keeps all the mass.
//
// Metallicity. ZH is either the clipped combination of the 2-component NMF
// metallicity basis, or for single-metallicity models the constant
// ZSun·10^logzsol. Values are clipped to the range the SSP grids cover; a
// clip is logged at warn level, never returned as an error.
package sfh
