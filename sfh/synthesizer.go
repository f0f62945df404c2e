// SPDX-License-Identifier: MIT

package sfh

import (
	"log/slog"

	"github.com/katalvlaran/popsed/basis"
	"github.com/katalvlaran/popsed/params"
	"github.com/katalvlaran/popsed/rebin"
	"github.com/katalvlaran/popsed/tlookback"
	"gonum.org/v1/gonum/floats"
)

// Synthesizer builds binned histories for one model variant.
// It is immutable after New and safe for concurrent use.
type Synthesizer struct {
	lib         *basis.Library
	variant     params.Variant
	universeAge float64

	tHR   []float64   // uniform lookback-time grid on [0, universeAge]
	sfhHR [][]float64 // SFH components sampled on tHR

	zmin, zmax float64
	ages       AgeResolver
	logger     *slog.Logger
}

// New samples every SFH component of lib on the high-resolution grid.
//
// Errors: ErrUniverseAge, ErrNoZHBasis, ErrComponentCount, basis.ErrMissingSFH.
func New(lib *basis.Library, universeAge float64, variant params.Variant, opts ...Option) (*Synthesizer, error) {
	const op = "New"
	if lib == nil || lib.SFH == nil {
		return nil, sfhErrorf(op, basis.ErrMissingSFH)
	}
	if !(universeAge > 0) {
		return nil, sfhErrorf(op, ErrUniverseAge)
	}
	if lib.SFH.Len() != params.NumSFHCoefficients {
		return nil, sfhErrorf(op, ErrComponentCount)
	}
	if variant.MetallicityHistory {
		if lib.ZH == nil {
			return nil, sfhErrorf(op, ErrNoZHBasis)
		}
		if lib.ZH.Len() != params.NumZHCoefficients {
			return nil, sfhErrorf(op, ErrComponentCount)
		}
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	tHR := make([]float64, o.resolution)
	floats.Span(tHR, 0, universeAge)

	return &Synthesizer{
		lib:         lib,
		variant:     variant,
		universeAge: universeAge,
		tHR:         tHR,
		sfhHR:       lib.SFH.Sample(tHR),
		zmin:        o.zmin,
		zmax:        o.zmax,
		ages:        o.ages,
		logger:      o.logger,
	}, nil
}

// Variant returns the model variant.
func (s *Synthesizer) Variant() params.Variant { return s.variant }

// UniverseAge returns the age of the universe the grid spans, in Gyr.
func (s *Synthesizer) UniverseAge() float64 { return s.universeAge }

// MetallicityRange returns the clip range for absolute metallicity.
func (s *Synthesizer) MetallicityRange() (zmin, zmax float64) { return s.zmin, s.zmax }

// GalaxyAge resolves a single epoch into the galaxy age in Gyr.
func (s *Synthesizer) GalaxyAge(epochs ...Epoch) (float64, error) {
	tage, err := s.resolve(epochs)
	if err != nil {
		return 0, sfhErrorf("GalaxyAge", err)
	}

	return tage, nil
}

// Continuous returns the burst-free history normalised to one solar mass
// formed: Σ 1e9·dt_i·SFR_i = 1. LogMStar and the burst fields are ignored.
//
// Implementation:
//   - Stage 1: edges for tage.
//   - Stage 2: rebin each high-resolution component onto the edges.
//   - Stage 3: combine with β and normalise.
//
// Complexity: O(K·(R+B)) for K components, R high-resolution samples, B bins.
func (s *Synthesizer) Continuous(p params.Params, tage float64) (History, error) {
	const op = "Continuous"
	if p.Variant != s.variant {
		return History{}, sfhErrorf(op, ErrVariant)
	}

	edges, err := tlookback.Edges(tage)
	if err != nil {
		return History{}, sfhErrorf(op, err)
	}

	nbin := len(edges) - 1
	sfr := make([]float64, nbin)
	for k, comp := range s.sfhHR {
		binned, err := rebin.Trapz(s.tHR, comp, edges)
		if err != nil {
			return History{}, sfhErrorf(op, err)
		}
		floats.AddScaled(sfr, p.Beta[k], binned)
	}

	var norm float64
	for i := range sfr {
		norm += 1e9 * (edges[i+1] - edges[i]) * sfr[i]
	}
	if !(norm > 0) {
		return History{}, sfhErrorf(op, ErrDegenerateSFH)
	}
	floats.Scale(1/norm, sfr)

	return History{Edges: edges, SFR: sfr}, nil
}

// BurstFraction returns the burst mass fraction that applies at age tage:
// p.FBurst, or 0 for non-burst variants and bursts older than the galaxy.
func BurstFraction(p params.Params, tage float64) float64 {
	if !p.Variant.Burst || p.TBurst > tage {
		return 0
	}

	return p.FBurst
}

// SFH returns the star-formation history in Msun/yr at the given epoch.
//
// Implementation:
//   - Stage 1: resolve the galaxy age and build the unit-mass continuous history.
//   - Stage 2: blend (1-f)·continuous + f·pulse, the pulse holding 1 Msun in
//     the bin that contains tburst.
//   - Stage 3: scale by 10^logmstar.
func (s *Synthesizer) SFH(p params.Params, epochs ...Epoch) (History, error) {
	const op = "SFH"
	tage, err := s.resolve(epochs)
	if err != nil {
		return History{}, sfhErrorf(op, err)
	}

	h, err := s.Continuous(p, tage)
	if err != nil {
		return History{}, sfhErrorf(op, err)
	}

	if f := BurstFraction(p, tage); f > 0 {
		floats.Scale(1-f, h.SFR)
		if i := tlookback.Bin(p.TBurst, h.Edges); i >= 0 {
			h.SFR[i] += f / (1e9 * (h.Edges[i+1] - h.Edges[i]))
		}
	}

	floats.Scale(p.Mass(), h.SFR)

	return h, nil
}
