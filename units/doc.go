// Package units is the single home of the physical constants and flux
// conversions shared by the SPS packages.
//
// Constants are referenced by value; nothing here is recomputed at call time
// except the derived ToCGSAt10pc factor, which is a package-level constant
// expression.
//
// Flux helpers follow the SDSS nanomaggy convention (22.5 zero point):
//
//	mag := units.FluxToMag(12.3)   // nanomaggies → AB magnitude
//	f   := units.MagToFlux(mag)    // and back
//
// SurvivingFraction exposes the DSPS fitting function for the fraction of a
// stellar population's formed mass that is still locked in stars at a given
// age; the IMF-specific calibrations are exported as SurvivalParams values.
package units
