// SPDX-License-Identifier: MIT

package sfh

import (
	"math"

	"github.com/katalvlaran/popsed/params"
	"github.com/katalvlaran/popsed/tlookback"
	"github.com/katalvlaran/popsed/units"
)

// AvgSFR returns the star-formation rate in Msun/yr averaged over the most
// recent dt Gyr of lookback time.
//
// Implementation:
//   - Stage 1: unit-mass continuous history (Σ dt·SFR = 1 in Gyr units).
//   - Stage 2: mass formed over [0, dt): whole bins below the bin holding dt
//     plus the partial share of that bin.
//   - Stage 3: burst: (1-f)·M, plus f when tburst < dt.
//
// Errors: ErrAveragingWindow when dt <= 0 or dt >= tage.
func (s *Synthesizer) AvgSFR(p params.Params, dt float64, epochs ...Epoch) (float64, error) {
	const op = "AvgSFR"
	tage, err := s.resolve(epochs)
	if err != nil {
		return 0, sfhErrorf(op, err)
	}
	if !(dt > 0) || !(dt < tage) {
		return 0, sfhErrorf(op, ErrAveragingWindow)
	}

	h, err := s.Continuous(p, tage)
	if err != nil {
		return 0, sfhErrorf(op, err)
	}

	idt := tlookback.Digitize(dt, h.Edges)
	var mform float64
	for i := 0; i < idt; i++ {
		mform += 1e9 * (h.Edges[i+1] - h.Edges[i]) * h.SFR[i]
	}
	mform += 1e9 * (dt - h.Edges[idt]) * h.SFR[idt]

	if f := BurstFraction(p, tage); f > 0 {
		mform *= 1 - f
		if p.TBurst < dt {
			mform += f
		}
	}

	return mform * p.Mass() / dt / 1e9, nil
}

// MassWeightedAge returns Σ m_i·t_i / M in Gyr, t_i the bin centres.
func (s *Synthesizer) MassWeightedAge(p params.Params, epochs ...Epoch) (float64, error) {
	h, err := s.SFH(p, epochs...)
	if err != nil {
		return 0, sfhErrorf("MassWeightedAge", err)
	}

	return weightedMean(h.MassFormed(), h.Centers(), p.Mass()), nil
}

// MassWeightedMetallicity returns Σ m_i·Z_i / M.
func (s *Synthesizer) MassWeightedMetallicity(p params.Params, epochs ...Epoch) (float64, error) {
	const op = "MassWeightedMetallicity"
	h, err := s.SFH(p, epochs...)
	if err != nil {
		return 0, sfhErrorf(op, err)
	}
	zh, err := s.ZH(p, epochs...)
	if err != nil {
		return 0, sfhErrorf(op, err)
	}

	return weightedMean(h.MassFormed(), zh.Z, p.Mass()), nil
}

// SurvivingMass returns log10 of the stellar mass still in stars today,
// using the Chabrier surviving fraction at every bin centre.
func (s *Synthesizer) SurvivingMass(p params.Params, epochs ...Epoch) (float64, error) {
	h, err := s.SFH(p, epochs...)
	if err != nil {
		return 0, sfhErrorf("SurvivingMass", err)
	}

	var surv float64
	centers := h.Centers()
	for i, m := range h.MassFormed() {
		if m == 0 && i != 0 {
			continue
		}
		surv += m * units.SurvivingFraction(math.Log10(centers[i]*1e9))
	}

	return math.Log10(surv), nil
}

func weightedMean(m, v []float64, total float64) float64 {
	var sum float64
	for i := range m {
		sum += m[i] * v[i]
	}

	return sum / total
}
