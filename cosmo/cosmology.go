// SPDX-License-Identifier: MIT

package cosmo

import (
	"math"

	"github.com/katalvlaran/popsed/units"
	"gonum.org/v1/gonum/integrate/quad"
)

// Planck 2015 (TT,TE,EE+lowP+lensing+ext) parameters.
const (
	planck15H0    = 67.74
	planck15Om0   = 0.3075
	planck15OmNu  = 0.0014 // massive neutrinos, counted as matter
	planck15Tcmb  = 2.7255
	planck15Neff  = 3.046
	hubbleTimeGyr = 977.7922216807891 // 1/(1 km/s/Mpc) in Gyr
)

// DefaultQuadNodes is the Gauss-Legendre order used per integral.
const DefaultQuadNodes = 128

// Cosmology is a flat FLRW model. OmegaL closes the budget.
type Cosmology struct {
	H0     float64 // km/s/Mpc
	OmegaM float64
	OmegaR float64
	OmegaL float64
}

// Planck15 returns the Planck 2015 cosmology with photons and neutrinos
// folded into OmegaR and a flat dark-energy term.
func Planck15() Cosmology {
	h := planck15H0 / 100
	og := 2.472e-5 * math.Pow(planck15Tcmb/2.725, 4) / (h * h)
	or := og * (1 + 0.2271*planck15Neff)
	om := planck15Om0 + planck15OmNu

	return Cosmology{H0: planck15H0, OmegaM: om, OmegaR: or, OmegaL: 1 - om - or}
}

// Validate reports ErrNotFlat when the density parameters do not close.
func (c Cosmology) Validate() error {
	if math.Abs(c.OmegaM+c.OmegaR+c.OmegaL-1) > 1e-6 || !(c.H0 > 0) {
		return cosmoErrorf("Validate", ErrNotFlat)
	}

	return nil
}

// E returns H(z)/H0.
func (c Cosmology) E(z float64) float64 {
	zp := 1 + z
	return math.Sqrt(c.OmegaR*zp*zp*zp*zp + c.OmegaM*zp*zp*zp + c.OmegaL)
}

// Age returns the age of the universe at redshift z in Gyr:
//
//	t(a) = (1/H0) ∫₀ᵃ a' da' / sqrt(Ωr + Ωm a' + ΩΛ a'⁴),  a = 1/(1+z).
func (c Cosmology) Age(z float64) float64 {
	a := 1 / (1 + z)
	f := func(x float64) float64 {
		return x / math.Sqrt(c.OmegaR+c.OmegaM*x+c.OmegaL*x*x*x*x)
	}

	return hubbleTimeGyr / c.H0 * quad.Fixed(f, 0, a, DefaultQuadNodes, nil, 0)
}

// ComovingDistance returns the line-of-sight comoving distance to z in Mpc.
func (c Cosmology) ComovingDistance(z float64) float64 {
	if z == 0 {
		return 0
	}
	f := func(x float64) float64 { return 1 / c.E(x) }

	return units.LightSpeedKms / c.H0 * quad.Fixed(f, 0, z, DefaultQuadNodes, nil, 0)
}

// LuminosityDistance returns (1+z)·D_C in cm.
func (c Cosmology) LuminosityDistance(z float64) float64 {
	return (1 + z) * c.ComovingDistance(z) * units.Mpc
}
