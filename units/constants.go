// SPDX-License-Identifier: MIT

package units

import "math"

// Physical constants in CGS / Angstrom units.
const (
	// Lsun is the solar luminosity in erg/s.
	Lsun = 3.846e33

	// Parsec in cm.
	Parsec = 3.085677581467192e18

	// Mpc is one megaparsec in cm.
	Mpc = 1e6 * Parsec

	// LightSpeed in Angstrom/s.
	LightSpeed = 2.998e18

	// LightSpeedKms in km/s.
	LightSpeedKms = 2.998e5

	// JanskyCGS is one Jansky in erg/s/cm^2/Hz.
	JanskyCGS = 1e-23

	// JanskyMKS is one Jansky in W/m^2/Hz.
	JanskyMKS = 1e-26

	// ABZeroPointJy is the AB magnitude system zero point in Jansky.
	ABZeroPointJy = 3631.0

	// ZSun is the solar metallicity used to convert absolute metallicity
	// into log(Z/Zsun).
	ZSun = 0.0190

	// FluxScale converts erg/s/cm^2/A into the 1e-17 erg/s/cm^2/A unit that
	// observed spectra are reported in.
	FluxScale = 1e17

	// NanomaggyZeroPoint is the AB magnitude of one nanomaggy.
	NanomaggyZeroPoint = 22.5
)

// ToCGSAt10pc converts Lsun/A into erg/s/cm^2/A at a distance of 10 pc.
const ToCGSAt10pc = Lsun / (4.0 * math.Pi * (10 * Parsec) * (10 * Parsec))

// Ln10 is the natural log of 10, kept here so error propagation helpers do
// not recompute it.
const Ln10 = math.Ln10
