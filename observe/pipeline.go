// SPDX-License-Identifier: MIT

package observe

import (
	"github.com/katalvlaran/popsed/filter"
	"github.com/katalvlaran/popsed/matrix"
	"github.com/katalvlaran/popsed/spectrum"
)

// Pipeline is one instrument configuration. Zero fields skip their stage.
type Pipeline struct {
	// VDisp is the velocity dispersion in km/s.
	VDisp float64
	// Wave is the output grid; nil keeps the model (or smoothed) grid.
	Wave []float64
	// Resolution segments; require Wave.
	Resolution []*matrix.Resolution
	// Filters produce photometry from the redshifted spectrum. They need
	// z > 0: a z = 0 spectrum stays in Lsun/Å, not an observed flux.
	Filters *filter.Set
}

// Observation is the result of one Pipeline run.
type Observation struct {
	Spectrum spectrum.Spectrum
	// Maggies is nil unless the pipeline has Filters.
	Maggies []float64
}

// Apply runs every configured stage on a rest-frame spectrum at redshift z
// and luminosity distance dL (cm).
//
// Errors: ErrNoGrid, ErrRestFrame, and the errors of each stage.
func (p Pipeline) Apply(rest spectrum.Spectrum, z, dL float64) (Observation, error) {
	const op = "Pipeline.Apply"
	if len(p.Resolution) > 0 && p.Wave == nil {
		return Observation{}, observeErrorf(op, ErrNoGrid)
	}
	if p.Filters != nil && z == 0 {
		return Observation{}, observeErrorf(op, ErrRestFrame)
	}

	red, err := Redshift(rest, z, dL)
	if err != nil {
		return Observation{}, observeErrorf(op, err)
	}

	var obs Observation
	if p.Filters != nil {
		if obs.Maggies, err = Photometry(red, p.Filters); err != nil {
			return Observation{}, observeErrorf(op, err)
		}
	}

	sp := red
	if p.VDisp > 0 {
		if sp, err = Smooth(red, p.VDisp); err != nil {
			return Observation{}, observeErrorf(op, smoothErr(p.VDisp, err))
		}
	}
	if p.Wave != nil {
		if sp, err = Resample(sp, p.Wave); err != nil {
			return Observation{}, observeErrorf(op, err)
		}
		if len(p.Resolution) > 0 {
			if sp.Flux, err = ApplyResolution(sp.Flux, p.Resolution...); err != nil {
				return Observation{}, observeErrorf(op, err)
			}
		}
	}
	obs.Spectrum = sp

	return obs, nil
}
