// SPDX-License-Identifier: MIT

package sps

import (
	"log/slog"

	"github.com/katalvlaran/popsed/basis"
	"github.com/katalvlaran/popsed/cosmo"
	"github.com/katalvlaran/popsed/emulator"
	"github.com/katalvlaran/popsed/params"
	"github.com/katalvlaran/popsed/sfh"
	"github.com/katalvlaran/popsed/spectrum"
	"github.com/katalvlaran/popsed/ssp"
)

// Backend turns parameters at a galaxy age into a rest-frame spectrum in
// Lsun/Å (or Lsun/Hz for a physics backend built WithPerAA(false)).
type Backend interface {
	Spectrum(p params.Params, tage float64) (spectrum.Spectrum, error)
}

var (
	_ Backend = (*ssp.Backend)(nil)
	_ Backend = (*emulator.Backend)(nil)
)

// Model is a configured forward model. It is safe for concurrent use when
// its backend is.
type Model struct {
	variant params.Variant
	cosmo   *cosmo.Interpolators
	synth   *sfh.Synthesizer
	backend Backend
	workers int
	logger  *slog.Logger
}

// New builds the cosmology grid, the history synthesizer and the selected
// backend. Without WithPhysics or WithEmulator the model serves histories
// and derived quantities only; Spectrum and SED then fail with ErrNoBackend.
//
// Errors: ErrNilLibrary, ErrBackendConflict, and construction
// errors of cosmo, sfh, ssp or emulator.
func New(lib *basis.Library, opts ...Option) (*Model, error) {
	const op = "New"
	if lib == nil {
		return nil, spsErrorf(op, ErrNilLibrary)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.sim != nil && o.nmf != nil {
		return nil, spsErrorf(op, ErrBackendConflict)
	}

	ip, err := cosmo.NewInterpolators(o.cosmology)
	if err != nil {
		return nil, spsErrorf(op, err)
	}

	sopts := []sfh.Option{sfh.WithAgeResolver(ip), sfh.WithLogger(o.logger)}
	if o.zmax > 0 {
		sopts = append(sopts, sfh.WithMetallicityRange(o.zmin, o.zmax))
	}
	synth, err := sfh.New(lib, ip.UniverseAge(), o.variant, sopts...)
	if err != nil {
		return nil, spsErrorf(op, err)
	}

	m := &Model{variant: o.variant, cosmo: ip, synth: synth, workers: o.workers, logger: o.logger}
	switch {
	case o.sim != nil:
		m.backend, err = ssp.NewBackend(o.sim, synth, ssp.WithPerAA(o.perAA))
	case o.nmf != nil:
		m.backend, err = emulator.NewBackend(o.nmf, o.burst, synth, emulator.WithLogger(o.logger))
	}
	if err != nil {
		return nil, spsErrorf(op, err)
	}

	m.logger.Debug("sps model ready",
		"variant", o.variant.String(),
		"params", o.variant.Names(),
		"universe_age_gyr", ip.UniverseAge(),
		"workers", o.workers,
		"spectra", m.backend != nil)

	return m, nil
}

// Variant returns the parameterisation.
func (m *Model) Variant() params.Variant { return m.variant }

// ParameterNames returns the names of the parameter vector entries in order.
func (m *Model) ParameterNames() []string { return m.variant.Names() }

// Cosmology returns the redshift interpolators.
func (m *Model) Cosmology() *cosmo.Interpolators { return m.cosmo }

// Synthesizer returns the history synthesizer.
func (m *Model) Synthesizer() *sfh.Synthesizer { return m.synth }

// Spectrum returns the rest-frame spectrum of vec at galaxy age tage (Gyr).
func (m *Model) Spectrum(vec []float64, tage float64) (spectrum.Spectrum, error) {
	if m.backend == nil {
		return spectrum.Spectrum{}, spsErrorf("Spectrum", ErrNoBackend)
	}
	p, err := params.Parse(m.variant, vec)
	if err != nil {
		return spectrum.Spectrum{}, spsErrorf("Spectrum", err)
	}
	sp, err := m.backend.Spectrum(p, tage)
	if err != nil {
		return spectrum.Spectrum{}, spsErrorf("Spectrum", err)
	}

	return sp, nil
}
