// SPDX-License-Identifier: MIT

package observe

import (
	"fmt"
	"math"

	"github.com/katalvlaran/popsed/spectrum"
	"github.com/katalvlaran/popsed/units"
)

// Redshift moves a rest-frame luminosity spectrum (Lsun/Å) to redshift z at
// luminosity distance dL (cm). The result is in 1e-17 erg/s/cm²/Å.
// z == 0 returns a copy of sp untouched.
//
// Errors: ErrNegativeRedshift, ErrDistance.
func Redshift(sp spectrum.Spectrum, z, dL float64) (spectrum.Spectrum, error) {
	const op = "Redshift"
	if z < 0 || math.IsNaN(z) {
		return spectrum.Spectrum{}, observeErrorf(op, fmt.Errorf("z=%g: %w", z, ErrNegativeRedshift))
	}
	if z == 0 {
		return sp.Clone(), nil
	}
	if !(dL > 0) {
		return spectrum.Spectrum{}, observeErrorf(op, fmt.Errorf("dL=%g: %w", dL, ErrDistance))
	}

	out := sp.Clone()
	stretch := 1 + z
	for i := range out.Wave {
		out.Wave[i] *= stretch
	}
	out.Scale(units.Lsun / (4 * math.Pi * dL * dL) / stretch * units.FluxScale)

	return out, nil
}
