// SPDX-License-Identifier: MIT

package emulator

import (
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/katalvlaran/popsed/params"
	"github.com/katalvlaran/popsed/sfh"
	"github.com/katalvlaran/popsed/spectrum"
)

const (
	// DefaultMinBurstAge is the youngest burst the burst emulator supports, in Gyr.
	DefaultMinBurstAge = 1e-2

	// DefaultMaxBurstAge is the oldest burst the burst emulator was trained on, in Gyr.
	DefaultMaxBurstAge = 13.27

	// StickFloor bounds stick-breaking fractions and their products from below.
	StickFloor = 1e-8

	// BurstInputs is the input length of the burst emulator.
	BurstInputs = 4
)

const (
	panicNilLogger  = "emulator: WithLogger: logger must be non-nil"
	panicBurstRange = "emulator: WithBurstAgeRange: need 0 <= min < max"
)

// Option configures NewBackend.
type Option func(*Backend)

// WithLogger sets the logger used for burst-range warnings.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(b *Backend) { b.logger = l }
}

// WithBurstAgeRange overrides the burst emulator validity range.
func WithBurstAgeRange(minAge, maxAge float64) Option {
	if !(minAge >= 0) || !(maxAge > minAge) {
		panic(panicBurstRange)
	}
	return func(b *Backend) { b.minBurst, b.maxBurst = minAge, maxAge }
}

// Backend evaluates composite spectra with emulators.
type Backend struct {
	nmf      *Bundle
	burst    *Bundle
	synth    *sfh.Synthesizer
	minBurst float64
	maxBurst float64
	logger   *slog.Logger
}

// NewBackend binds the NMF emulator (and the burst emulator for burst
// variants) to the histories of synth.
//
// Errors: ErrNilSynthesizer, ErrEmptyBundle, ErrNoBurstEmulator, ErrInputSize,
// ErrShape (burst grid differs from the NMF grid).
func NewBackend(nmf, burst *Bundle, synth *sfh.Synthesizer, opts ...Option) (*Backend, error) {
	const op = "NewBackend"
	if synth == nil {
		return nil, emulatorErrorf(op, ErrNilSynthesizer)
	}
	if nmf == nil {
		return nil, emulatorErrorf(op, ErrEmptyBundle)
	}
	v := synth.Variant()
	if want := NumInputs(v); nmf.NumInputs() != want {
		return nil, emulatorErrorf(op, fmt.Errorf("nmf bundle takes %d inputs, want %d: %w", nmf.NumInputs(), want, ErrInputSize))
	}
	if v.Burst {
		if burst == nil {
			return nil, emulatorErrorf(op, ErrNoBurstEmulator)
		}
		if burst.NumInputs() != BurstInputs {
			return nil, emulatorErrorf(op, fmt.Errorf("burst bundle takes %d inputs: %w", burst.NumInputs(), ErrInputSize))
		}
		if !slices.Equal(burst.wave, nmf.wave) {
			return nil, emulatorErrorf(op, fmt.Errorf("burst grid: %w", ErrShape))
		}
	}

	b := &Backend{
		nmf:      nmf,
		burst:    burst,
		synth:    synth,
		minBurst: DefaultMinBurstAge,
		maxBurst: DefaultMaxBurstAge,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b, nil
}

// Wave returns the emulator wavelength grid.
func (b *Backend) Wave() []float64 { return b.nmf.Wave() }

// NumInputs returns the NMF emulator input length for variant v.
func NumInputs(v params.Variant) int {
	n := params.NumSFHCoefficients - 1 + 3 + 1
	if v.MetallicityHistory {
		return n + params.NumZHCoefficients
	}

	return n + 1
}

// StickBreaking maps simplex coefficients β (Σβ = 1) onto the len(β)-1
// stick-breaking fractions the emulators were trained on:
//
//	t₀ = max(1 − β₀, StickFloor),  tᵢ = 1 − βᵢ / max(Π_{j<i} tⱼ, StickFloor).
func StickBreaking(beta []float64) []float64 {
	if len(beta) < 2 {
		return nil
	}
	out := make([]float64, len(beta)-1)
	out[0] = math.Max(1-beta[0], StickFloor)
	prod := out[0]
	for i := 1; i < len(out); i++ {
		out[i] = 1 - beta[i]/math.Max(prod, StickFloor)
		prod *= out[i]
	}

	return out
}

// Inputs returns the NMF emulator input vector:
// [sticks(3), logzsol | gamma1, gamma2, dust1, dust2, dust_index, tage].
func Inputs(p params.Params, tage float64) []float64 {
	x := StickBreaking(p.Beta[:])
	if p.Variant.MetallicityHistory {
		x = append(x, p.Gamma[:]...)
	} else {
		x = append(x, p.LogZSol)
	}

	return append(x, p.Dust1, p.Dust2, p.DustIndex, tage)
}

// Spectrum returns the rest-frame spectrum of p observed at age tage, in
// Lsun/A.
//
// Implementation:
//   - Stage 1: exp(NMF emulator) for one solar mass formed.
//   - Stage 2: burst emulator when the burst carries mass; blend.
//   - Stage 3: scale by 10^logmstar.
func (b *Backend) Spectrum(p params.Params, tage float64) (spectrum.Spectrum, error) {
	const op = "Spectrum"
	if p.Variant != b.synth.Variant() {
		return spectrum.Spectrum{}, emulatorErrorf(op, sfh.ErrVariant)
	}

	lum, err := b.nmf.Spectrum(Inputs(p, tage))
	if err != nil {
		return spectrum.Spectrum{}, emulatorErrorf(op, err)
	}
	out := spectrum.Spectrum{Wave: b.nmf.Wave(), Flux: lum}

	if f := sfh.BurstFraction(p, tage); f > 0 {
		burst, err := b.burstSpectrum(p)
		if err != nil {
			return spectrum.Spectrum{}, emulatorErrorf(op, err)
		}
		out.Scale(1 - f)
		if burst != nil {
			if err = out.AddScaled(f, burst); err != nil {
				return spectrum.Spectrum{}, emulatorErrorf(op, err)
			}
		}
	}

	out.Scale(p.Mass())

	return out, nil
}

// burstSpectrum returns the burst emulator spectrum for one solar mass, or
// nil when tburst lies beyond the emulator's calibration.
func (b *Backend) burstSpectrum(p params.Params) ([]float64, error) {
	if p.TBurst > b.maxBurst {
		b.logger.Warn("burst older than emulator range contributes no light",
			slog.Float64("tburst", p.TBurst), slog.Float64("max", b.maxBurst))
		return nil, nil
	}
	if p.TBurst <= b.minBurst {
		return nil, fmt.Errorf("tburst = %g Gyr: %w", p.TBurst, ErrBurstTooYoung)
	}

	x := []float64{p.TBurst, b.synth.MetallicityAt(p, p.TBurst), p.Dust2, p.DustIndex}

	return b.burst.Spectrum(x)
}
