// SPDX-License-Identifier: MIT

package sfh

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/popsed/params"
	"github.com/katalvlaran/popsed/tlookback"
	"github.com/katalvlaran/popsed/units"
)

// ZH returns the metallicity history at the given epoch.
func (s *Synthesizer) ZH(p params.Params, epochs ...Epoch) (Metallicity, error) {
	const op = "ZH"
	if p.Variant != s.variant {
		return Metallicity{}, sfhErrorf(op, ErrVariant)
	}
	tage, err := s.resolve(epochs)
	if err != nil {
		return Metallicity{}, sfhErrorf(op, err)
	}
	edges, err := tlookback.Edges(tage)
	if err != nil {
		return Metallicity{}, sfhErrorf(op, err)
	}

	centers := tlookback.Centers(edges)
	z := make([]float64, len(centers))
	clipped := 0
	for i, t := range centers {
		var c bool
		z[i], c = s.metallicity(p, t)
		if c {
			clipped++
		}
	}
	if clipped > 0 {
		s.logger.Warn("metallicity clipped",
			slog.Int("bins", clipped), slog.Float64("zmin", s.zmin), slog.Float64("zmax", s.zmax))
	}

	return Metallicity{Edges: edges, Z: z}, nil
}

// MetallicityAt returns the clipped absolute metallicity at lookback time t.
func (s *Synthesizer) MetallicityAt(p params.Params, t float64) float64 {
	z, c := s.metallicity(p, t)
	if c {
		s.logger.Warn("metallicity clipped", slog.Float64("tlookback", t), slog.Float64("z", z))
	}

	return z
}

// LogZSolAt returns log10(Z/ZSun) at lookback time t.
func (s *Synthesizer) LogZSolAt(p params.Params, t float64) float64 {
	if !s.variant.MetallicityHistory {
		return p.LogZSol
	}

	return math.Log10(s.MetallicityAt(p, t) / units.ZSun)
}

func (s *Synthesizer) metallicity(p params.Params, t float64) (z float64, clipped bool) {
	if s.variant.MetallicityHistory {
		z, _ = s.lib.ZH.Combine(p.Gamma[:], t)
	} else {
		z = units.ZSun * math.Pow(10, p.LogZSol)
	}

	switch {
	case z < s.zmin:
		return s.zmin, true
	case z > s.zmax:
		return s.zmax, true
	}

	return z, false
}
