// Package cosmo provides the flat ΛCDM quantities the forward model needs:
// the age of the universe at redshift z and the luminosity distance to z.
//
// Cosmology evaluates them directly by Gauss-Legendre quadrature
// (gonum/integrate/quad). Interpolators tabulates them once on a redshift
// grid (1000 points over z ∈ [0, 5] by default) and answers queries with
// monotone cubic splines (gonum/interp.FritschButland), including the
// inverse map age → redshift.
//
// Queries outside the tabulated range fail with ErrRedshiftRange or
// ErrAgeRange instead of extrapolating.
//
//	ip, err := cosmo.NewInterpolators(cosmo.Planck15())
//	tage, err := ip.AgeAt(0.1)          // Gyr
//	dL, err := ip.LuminosityDistanceAt(0.1) // cm
package cosmo
