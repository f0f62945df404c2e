// SPDX-License-Identifier: MIT

package sps

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/popsed/cosmo"
	"github.com/katalvlaran/popsed/emulator"
	"github.com/katalvlaran/popsed/params"
	"github.com/katalvlaran/popsed/ssp"
)

// DefaultWorkers is the SED fan-out when WithWorkers is not given.
const DefaultWorkers = 1

// DefaultVariant is the NMF history with a burst and one metallicity.
var DefaultVariant = params.Variant{Burst: true}

const (
	panicWorkers   = "sps: WithWorkers: n must be >= 1"
	panicNilLogger = "sps: WithLogger: logger must be non-nil"
	panicZRange    = "sps: WithMetallicityRange: need 0 < zmin < zmax, finite"
	panicNilSim    = "sps: WithPhysics: simulator must be non-nil"
	panicNilNMF    = "sps: WithEmulator: nmf bundle must be non-nil"
)

// Option configures New.
type Option func(*options)

type options struct {
	variant    params.Variant
	cosmology  cosmo.Cosmology
	sim        ssp.Simulator
	nmf, burst *emulator.Bundle
	perAA      bool
	workers    int
	logger     *slog.Logger
	zmin, zmax float64
}

func defaultOptions() options {
	return options{
		variant:   DefaultVariant,
		cosmology: cosmo.Planck15(),
		perAA:     true,
		workers:   DefaultWorkers,
		logger:    slog.Default(),
	}
}

// WithVariant selects the parameterisation (burst, metallicity history).
func WithVariant(v params.Variant) Option {
	return func(o *options) { o.variant = v }
}

// WithCosmology replaces the default Planck15 cosmology.
func WithCosmology(c cosmo.Cosmology) Option {
	return func(o *options) { o.cosmology = c }
}

// WithPhysics evaluates spectra with a stellar-population simulator.
// sim must be safe for concurrent use when WithWorkers > 1.
func WithPhysics(sim ssp.Simulator) Option {
	if sim == nil {
		panic(panicNilSim)
	}
	return func(o *options) { o.sim = sim }
}

// WithEmulator evaluates spectra with the NMF emulator and, for burst
// variants, the burst emulator. burst may be nil for burst-free variants.
func WithEmulator(nmf, burst *emulator.Bundle) Option {
	if nmf == nil {
		panic(panicNilNMF)
	}
	return func(o *options) { o.nmf, o.burst = nmf, burst }
}

// WithPerAA selects Lsun/Å (default) or Lsun/Hz from the physics backend.
func WithPerAA(perAA bool) Option {
	return func(o *options) { o.perAA = perAA }
}

// WithWorkers sets the number of goroutines SED uses.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkers)
	}
	return func(o *options) { o.workers = n }
}

// WithLogger sets the logger handed to every component.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(o *options) { o.logger = l }
}

// WithMetallicityRange overrides the absolute metallicity clip range.
func WithMetallicityRange(zmin, zmax float64) Option {
	if !(zmin > 0) || !(zmax > zmin) || math.IsInf(zmax, 0) {
		panic(panicZRange)
	}
	return func(o *options) { o.zmin, o.zmax = zmin, zmax }
}
