// SPDX-License-Identifier: MIT

package observe

import (
	"fmt"

	"github.com/katalvlaran/popsed/filter"
	"github.com/katalvlaran/popsed/matrix"
	"github.com/katalvlaran/popsed/rebin"
	"github.com/katalvlaran/popsed/spectrum"
)

// Resample rebins sp onto wave in a flux-conserving way. wave may be in any
// order; Flux[k] always belongs to wave[k].
func Resample(sp spectrum.Spectrum, wave []float64) (spectrum.Spectrum, error) {
	flux, err := rebin.ToGrid(sp.Wave, sp.Flux, wave)
	if err != nil {
		return spectrum.Spectrum{}, observeErrorf("Resample", err)
	}

	return spectrum.Spectrum{Wave: append([]float64(nil), wave...), Flux: flux}, nil
}

// ApplyResolution multiplies consecutive segments of flux by the given
// resolution matrices. The matrix sizes must add up to len(flux).
//
// Errors: ErrResolutionSize, matrix.ErrNilMatrix.
func ApplyResolution(flux []float64, res ...*matrix.Resolution) ([]float64, error) {
	const op = "ApplyResolution"
	total := 0
	for i, r := range res {
		if r == nil {
			return nil, observeErrorf(op, fmt.Errorf("segment %d: %w", i, matrix.ErrNilMatrix))
		}
		total += r.Size()
	}
	if total != len(flux) {
		return nil, observeErrorf(op, fmt.Errorf("%d pixels, matrices cover %d: %w", len(flux), total, ErrResolutionSize))
	}

	out := make([]float64, 0, len(flux))
	at := 0
	for _, r := range res {
		seg, err := r.Dot(flux[at : at+r.Size()])
		if err != nil {
			return nil, observeErrorf(op, err)
		}
		out = append(out, seg...)
		at += r.Size()
	}

	return out, nil
}

// Photometry returns AB nanomaggies of sp through every bandpass of set.
func Photometry(sp spectrum.Spectrum, set *filter.Set) ([]float64, error) {
	m, err := set.Maggies(sp.Wave, sp.Flux)
	if err != nil {
		return nil, observeErrorf("Photometry", err)
	}

	return m, nil
}
