// Package basis holds the non-negative matrix factorisation (NMF) bases that
// compress star-formation and metallicity histories into a handful of
// coefficients.
//
// A Basis is a set of components tabulated on a shared lookback-time axis
// (Gyr). Each component is evaluated as a piecewise-linear function of
// lookback time, extrapolated linearly beyond the table. A history is the
// coefficient-weighted sum of the components:
//
//	SFH(t) = Σ_k β_k · B_k(t)       (4 components)
//	Z(t)   = Σ_k γ_k · G_k(t)       (2 components)
//
// Library bundles the SFH basis with the optional ZH basis. LoadDir reads the
// packaged Tojeiro tables; NewLibrary accepts in-memory bases.
package basis
