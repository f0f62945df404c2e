// SPDX-License-Identifier: MIT

package sfh

import (
	"log/slog"
	"math"
)

// Defaults.
const (
	// DefaultResolution is the number of samples of the high-resolution grid.
	DefaultResolution = 50000

	// DefaultZMin and DefaultZMax bound absolute metallicity.
	DefaultZMin = 4.49043431e-5
	DefaultZMax = 4.49043431e-2
)

const (
	panicResolution = "sfh: WithResolution: n must be >= 2"
	panicZRange     = "sfh: WithMetallicityRange: need 0 < zmin < zmax, finite"
	panicNilLogger  = "sfh: WithLogger: logger must be non-nil"
)

// AgeResolver maps a redshift onto the age of the universe in Gyr.
type AgeResolver interface {
	AgeAt(z float64) (float64, error)
}

// Option configures New.
type Option func(*options)

type options struct {
	resolution int
	zmin, zmax float64
	ages       AgeResolver
	logger     *slog.Logger
}

func defaultOptions() options {
	return options{
		resolution: DefaultResolution,
		zmin:       DefaultZMin,
		zmax:       DefaultZMax,
		logger:     slog.Default(),
	}
}

// WithResolution sets the number of high-resolution samples per component.
func WithResolution(n int) Option {
	if n < 2 {
		panic(panicResolution)
	}
	return func(o *options) { o.resolution = n }
}

// WithMetallicityRange overrides the metallicity clip range.
func WithMetallicityRange(zmin, zmax float64) Option {
	if !(zmin > 0) || !(zmax > zmin) || math.IsInf(zmax, 0) {
		panic(panicZRange)
	}
	return func(o *options) { o.zmin, o.zmax = zmin, zmax }
}

// WithAgeResolver enables Redshift epochs.
func WithAgeResolver(r AgeResolver) Option {
	return func(o *options) { o.ages = r }
}

// WithLogger sets the logger used for clipping warnings.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(o *options) { o.logger = l }
}
