// Package filter turns spectra into synthetic broadband photometry.
//
// A Bandpass is a transmission curve R(λ). For an observed flux density
// f_λ the AB flux in maggies is
//
//	maggies = ∫ f_λ R λ dλ / ∫ (3631 Jy · c/λ²) R λ dλ
//
// where the denominator (the AB zero-point count) is computed once per
// bandpass on its own grid. A Set groups bandpasses, interpolates their
// transmissions onto the working wavelength grid of the spectra it is asked
// to integrate and caches the result per grid, so a batch of spectra on the
// same grid pays for interpolation once.
//
// Set is safe for concurrent use.
package filter
