// SPDX-License-Identifier: MIT

package ssp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/popsed/params"
	"github.com/katalvlaran/popsed/sfh"
	"github.com/katalvlaran/popsed/spectrum"
	"github.com/katalvlaran/popsed/units"
)

// DefaultMinBurstAge is the youngest supported burst, in Gyr.
const DefaultMinBurstAge = 1e-2

const panicMinBurstAge = "ssp: WithMinBurstAge: age must be >= 0"

// Option configures NewBackend.
type Option func(*Backend)

// WithPerAA selects Lsun/A (true, default) or Lsun/Hz output.
func WithPerAA(perAA bool) Option {
	return func(b *Backend) { b.perAA = perAA }
}

// WithMinBurstAge overrides DefaultMinBurstAge.
func WithMinBurstAge(age float64) Option {
	if !(age >= 0) {
		panic(panicMinBurstAge)
	}
	return func(b *Backend) { b.minBurstAge = age }
}

// Backend evaluates composite spectra with a Simulator.
type Backend struct {
	sim         Simulator
	synth       *sfh.Synthesizer
	perAA       bool
	minBurstAge float64
}

// NewBackend binds a simulator to the histories of synth.
func NewBackend(sim Simulator, synth *sfh.Synthesizer, opts ...Option) (*Backend, error) {
	if sim == nil || synth == nil {
		return nil, sspErrorf("NewBackend", ErrNilSimulator)
	}
	b := &Backend{sim: sim, synth: synth, perAA: true, minBurstAge: DefaultMinBurstAge}
	for _, opt := range opts {
		opt(b)
	}

	return b, nil
}

// Spectrum returns the rest-frame spectrum of p observed at age tage.
//
// Implementation:
//   - Stage 1: unit-mass continuous history on the lookback-time bins.
//   - Stage 2: for every bin with mass (and always bin 0) request the SSP at
//     the bin centre with the bin metallicity; accumulate m_i·L_i.
//   - Stage 3: burst (dust1 = 0, metallicity at tburst); blend (1-f)·cont + f·burst.
//   - Stage 4: scale by 10^logmstar.
//
// Errors: ErrBurstTooYoung, ErrGridChanged, simulator and history errors.
func (b *Backend) Spectrum(p params.Params, tage float64) (spectrum.Spectrum, error) {
	const op = "Spectrum"

	h, err := b.synth.Continuous(p, tage)
	if err != nil {
		return spectrum.Spectrum{}, sspErrorf(op, err)
	}

	logZ, err := b.binLogZSol(p, tage, len(h.Centers()))
	if err != nil {
		return spectrum.Spectrum{}, sspErrorf(op, err)
	}

	var out spectrum.Spectrum
	centers := h.Centers()
	for i, m := range h.MassFormed() {
		if m == 0 && i != 0 {
			continue
		}
		wave, lum, err := b.sim.Spectrum(b.request(p, centers[i], logZ[i], p.Dust1))
		if err != nil {
			return spectrum.Spectrum{}, sspErrorf(op, fmt.Errorf("bin %d: %w", i, err))
		}
		if i == 0 {
			out = spectrum.New(wave)
		}
		if err = out.AddScaled(m, lum); err != nil {
			return spectrum.Spectrum{}, sspErrorf(op, ErrGridChanged)
		}
	}

	if f := sfh.BurstFraction(p, tage); f > 0 {
		lum, err := b.burst(p)
		if err != nil {
			return spectrum.Spectrum{}, sspErrorf(op, err)
		}
		out.Scale(1 - f)
		if err = out.AddScaled(f, lum); err != nil {
			return spectrum.Spectrum{}, sspErrorf(op, ErrGridChanged)
		}
	}

	out.Scale(p.Mass())

	return out, nil
}

// burst returns the spectrum of one solar mass formed at tburst.
func (b *Backend) burst(p params.Params) ([]float64, error) {
	if p.TBurst <= b.minBurstAge {
		return nil, fmt.Errorf("tburst = %g Gyr: %w", p.TBurst, ErrBurstTooYoung)
	}
	_, lum, err := b.sim.Spectrum(b.request(p, p.TBurst, b.synth.LogZSolAt(p, p.TBurst), 0))

	return lum, err
}

// binLogZSol returns log10(Z/ZSun) per lookback bin; clipping is reported once.
func (b *Backend) binLogZSol(p params.Params, tage float64, nbins int) ([]float64, error) {
	out := make([]float64, nbins)
	if !p.Variant.MetallicityHistory {
		for i := range out {
			out[i] = p.LogZSol
		}
		return out, nil
	}

	zh, err := b.synth.ZH(p, sfh.Age(tage))
	if err != nil {
		return nil, err
	}
	if len(zh.Z) != nbins {
		return nil, fmt.Errorf("metallicity bins = %d, want %d", len(zh.Z), nbins)
	}
	for i, z := range zh.Z {
		out[i] = math.Log10(z / units.ZSun)
	}

	return out, nil
}

func (b *Backend) request(p params.Params, age, logZSol, dust1 float64) Request {
	return Request{
		Age:       age,
		LogZSol:   logZSol,
		Dust1:     dust1,
		Dust2:     p.Dust2,
		DustIndex: p.DustIndex,
		PerAA:     b.perAA,
	}
}
