// SPDX-License-Identifier: MIT

package cosmo

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

const (
	// DefaultGridSize is the number of redshift nodes.
	DefaultGridSize = 1000

	// DefaultMaxRedshift closes the tabulated range [0, DefaultMaxRedshift].
	DefaultMaxRedshift = 5.0
)

const (
	panicGridSizeInvalid = "cosmo: WithGridSize: n must be >= 4"
	panicMaxZInvalid     = "cosmo: WithMaxRedshift: zmax must be finite and > 0"
)

// Option configures NewInterpolators.
type Option func(*options)

type options struct {
	n    int
	zmax float64
}

// WithGridSize sets the number of redshift nodes. Panics if n < 4.
func WithGridSize(n int) Option {
	if n < 4 {
		panic(panicGridSizeInvalid)
	}
	return func(o *options) { o.n = n }
}

// WithMaxRedshift sets the upper end of the tabulated redshift range.
func WithMaxRedshift(zmax float64) Option {
	if !(zmax > 0) || zmax > 1e4 {
		panic(panicMaxZInvalid)
	}
	return func(o *options) { o.zmax = zmax }
}

// Interpolators answers age and distance queries from a precomputed grid.
// It is immutable after construction and safe for concurrent use.
type Interpolators struct {
	cosmo       Cosmology
	zmin, zmax  float64
	tmin, tmax  float64
	ageOfZ      interp.FritschButland
	zOfAge      interp.FritschButland
	distOfZ     interp.FritschButland
	universeAge float64
}

// NewInterpolators tabulates c on an evenly spaced redshift grid.
//
// Implementation:
//   - Stage 1: z_k = k·zmax/(n-1); age and luminosity distance by quadrature.
//   - Stage 2: fit age(z) and D_L(z) on increasing z; fit z(age) on the
//     reversed (increasing) age column.
//
// Complexity: O(n·q) with q = DefaultQuadNodes.
func NewInterpolators(c Cosmology, opts ...Option) (*Interpolators, error) {
	const op = "NewInterpolators"
	if err := c.Validate(); err != nil {
		return nil, cosmoErrorf(op, err)
	}

	o := options{n: DefaultGridSize, zmax: DefaultMaxRedshift}
	for _, opt := range opts {
		opt(&o)
	}

	zs := make([]float64, o.n)
	ages := make([]float64, o.n)
	dists := make([]float64, o.n)
	for k := range zs {
		zs[k] = o.zmax * float64(k) / float64(o.n-1)
		ages[k] = c.Age(zs[k])
		dists[k] = c.LuminosityDistance(zs[k])
	}

	ip := &Interpolators{cosmo: c, zmin: 0, zmax: o.zmax, universeAge: ages[0]}
	if err := ip.ageOfZ.Fit(zs, ages); err != nil {
		return nil, cosmoErrorf(op, err)
	}
	if err := ip.distOfZ.Fit(zs, dists); err != nil {
		return nil, cosmoErrorf(op, err)
	}

	// Age decreases with z; the inverse needs increasing abscissae.
	rages := make([]float64, o.n)
	rzs := make([]float64, o.n)
	for k := range zs {
		rages[k] = ages[o.n-1-k]
		rzs[k] = zs[o.n-1-k]
	}
	if err := ip.zOfAge.Fit(rages, rzs); err != nil {
		return nil, cosmoErrorf(op, err)
	}
	ip.tmin, ip.tmax = rages[0], rages[o.n-1]

	return ip, nil
}

// Cosmology returns the model the grid was built from.
func (ip *Interpolators) Cosmology() Cosmology { return ip.cosmo }

// UniverseAge returns the age of the universe today (z = 0) in Gyr.
func (ip *Interpolators) UniverseAge() float64 { return ip.universeAge }

// AgeAt returns the age of the universe at z in Gyr.
func (ip *Interpolators) AgeAt(z float64) (float64, error) {
	if z < ip.zmin || z > ip.zmax {
		return 0, fmt.Errorf("AgeAt(%g): %w", z, ErrRedshiftRange)
	}

	return ip.ageOfZ.Predict(z), nil
}

// RedshiftAt inverts AgeAt.
func (ip *Interpolators) RedshiftAt(age float64) (float64, error) {
	if age < ip.tmin || age > ip.tmax {
		return 0, fmt.Errorf("RedshiftAt(%g): %w", age, ErrAgeRange)
	}
	z := ip.zOfAge.Predict(age)
	if z < 0 {
		z = 0
	}

	return z, nil
}

// LuminosityDistanceAt returns the luminosity distance to z in cm.
func (ip *Interpolators) LuminosityDistanceAt(z float64) (float64, error) {
	if z < ip.zmin || z > ip.zmax {
		return 0, fmt.Errorf("LuminosityDistanceAt(%g): %w", z, ErrRedshiftRange)
	}

	return ip.distOfZ.Predict(z), nil
}
