package units

import "math"

// FluxToMag converts a flux in nanomaggies into an AB magnitude.
// Non-positive fluxes yield +Inf or NaN exactly like log10 does.
func FluxToMag(nmgy float64) float64 {
	return NanomaggyZeroPoint - 2.5*math.Log10(nmgy)
}

// MagToFlux converts an AB magnitude into nanomaggies.
func MagToFlux(mag float64) float64 {
	return math.Pow(10, 0.4*(NanomaggyZeroPoint-mag))
}

// SigmaFluxToMag propagates a flux uncertainty (nanomaggies) into magnitudes.
func SigmaFluxToMag(sigmaFlux, flux float64) float64 {
	return math.Abs(-2.5 * sigmaFlux / flux / Ln10)
}

// SigmaMagToFlux propagates a magnitude uncertainty into nanomaggies.
func SigmaMagToFlux(sigmaMag, mag float64) float64 {
	flux := MagToFlux(mag)
	return math.Abs(flux) * math.Abs(-0.4*Ln10*sigmaMag)
}

// MaggiesToNanomaggies scales linear AB maggies into nanomaggies.
func MaggiesToNanomaggies(maggies float64) float64 { return maggies * 1e9 }
