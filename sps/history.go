// SPDX-License-Identifier: MIT

package sps

import (
	"math"

	"github.com/katalvlaran/popsed/params"
	"github.com/katalvlaran/popsed/sfh"
	"github.com/katalvlaran/popsed/units"
)

// DefaultSFRWindow is the averaging window of Observables.SFR, in Gyr.
const DefaultSFRWindow = 0.1

// SFH returns the star-formation history of vec at epoch.
func (m *Model) SFH(vec []float64, epoch sfh.Epoch) (sfh.History, error) {
	p, err := params.Parse(m.variant, vec)
	if err != nil {
		return sfh.History{}, spsErrorf("SFH", err)
	}

	return m.synth.SFH(p, epoch)
}

// ZH returns the per-bin absolute metallicity of vec at epoch.
func (m *Model) ZH(vec []float64, epoch sfh.Epoch) (sfh.Metallicity, error) {
	p, err := params.Parse(m.variant, vec)
	if err != nil {
		return sfh.Metallicity{}, spsErrorf("ZH", err)
	}

	return m.synth.ZH(p, epoch)
}

// AvgSFR returns the SFR in Msun/yr averaged over the last dt Gyr.
func (m *Model) AvgSFR(vec []float64, dt float64, epoch sfh.Epoch) (float64, error) {
	p, err := params.Parse(m.variant, vec)
	if err != nil {
		return 0, spsErrorf("AvgSFR", err)
	}

	return m.synth.AvgSFR(p, dt, epoch)
}

// MassWeightedAge returns the mass-weighted lookback age in Gyr.
func (m *Model) MassWeightedAge(vec []float64, epoch sfh.Epoch) (float64, error) {
	p, err := params.Parse(m.variant, vec)
	if err != nil {
		return 0, spsErrorf("MassWeightedAge", err)
	}

	return m.synth.MassWeightedAge(p, epoch)
}

// MassWeightedMetallicity returns the mass-weighted absolute metallicity.
func (m *Model) MassWeightedMetallicity(vec []float64, epoch sfh.Epoch) (float64, error) {
	p, err := params.Parse(m.variant, vec)
	if err != nil {
		return 0, spsErrorf("MassWeightedMetallicity", err)
	}

	return m.synth.MassWeightedMetallicity(p, epoch)
}

// SurvivingMass returns log10 of the surviving stellar mass in Msun.
func (m *Model) SurvivingMass(vec []float64, epoch sfh.Epoch) (float64, error) {
	p, err := params.Parse(m.variant, vec)
	if err != nil {
		return 0, spsErrorf("SurvivingMass", err)
	}

	return m.synth.SurvivingMass(p, epoch)
}

// Observables are the derived physical properties of one galaxy.
type Observables struct {
	LogMStar float64 `json:"logmstar"`
	LogMSurv float64 `json:"logmsurv"`
	LogZSol  float64 `json:"logzsol"`
	SFR      float64 `json:"sfr"`
	Age      float64 `json:"age"`
	Redshift float64 `json:"redshift"`
}

// Observables derives stellar mass, surviving mass, metallicity, recent SFR
// (averaged over dt Gyr) and mass-weighted age of vec at redshift z.
// LogZSol is log10(Z_MW/Zsun) for metallicity-history variants and the
// logzsol parameter otherwise.
func (m *Model) Observables(vec []float64, z, dt float64) (Observables, error) {
	const op = "Observables"
	p, err := params.Parse(m.variant, vec)
	if err != nil {
		return Observables{}, spsErrorf(op, err)
	}
	epoch := sfh.Redshift(z)

	obs := Observables{LogMStar: p.LogMStar, LogZSol: p.LogZSol, Redshift: z}
	if obs.SFR, err = m.synth.AvgSFR(p, dt, epoch); err != nil {
		return Observables{}, spsErrorf(op, err)
	}
	if obs.Age, err = m.synth.MassWeightedAge(p, epoch); err != nil {
		return Observables{}, spsErrorf(op, err)
	}
	if obs.LogMSurv, err = m.synth.SurvivingMass(p, epoch); err != nil {
		return Observables{}, spsErrorf(op, err)
	}
	if m.variant.MetallicityHistory {
		zmw, err := m.synth.MassWeightedMetallicity(p, epoch)
		if err != nil {
			return Observables{}, spsErrorf(op, err)
		}
		obs.LogZSol = math.Log10(zmw / units.ZSun)
	}

	return obs, nil
}
