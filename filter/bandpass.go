// SPDX-License-Identifier: MIT

package filter

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/interp"

	"github.com/katalvlaran/popsed/basis"
	"github.com/katalvlaran/popsed/units"
)

// Bandpass is a named transmission curve sampled in Angstrom.
type Bandpass struct {
	Name     string
	Wave     []float64
	Response []float64

	zeroPoint float64
	curve     interp.PiecewiseLinear
}

// NewBandpass validates and copies a transmission curve.
//
// Errors: ErrBadCurve.
func NewBandpass(name string, wave, response []float64) (*Bandpass, error) {
	const op = "NewBandpass"
	if len(wave) < 2 || len(wave) != len(response) {
		return nil, filterErrorf(op, fmt.Errorf("%s: %w", name, ErrBadCurve))
	}
	for i := range wave {
		if response[i] < 0 || (i > 0 && !(wave[i] > wave[i-1])) || !(wave[i] > 0) {
			return nil, filterErrorf(op, fmt.Errorf("%s: sample %d: %w", name, i, ErrBadCurve))
		}
	}

	b := &Bandpass{
		Name:     name,
		Wave:     append([]float64(nil), wave...),
		Response: append([]float64(nil), response...),
	}
	if err := b.curve.Fit(b.Wave, b.Response); err != nil {
		return nil, filterErrorf(op, err)
	}

	// AB reference spectrum f_λ = 3631 Jy · c / λ², weighted by R·λ.
	integrand := make([]float64, len(b.Wave))
	for i, w := range b.Wave {
		integrand[i] = units.ABZeroPointJy * units.JanskyCGS * units.LightSpeed / (w * w) * b.Response[i] * w
	}
	b.zeroPoint = integrate.Trapezoidal(b.Wave, integrand)
	if !(b.zeroPoint > 0) {
		return nil, filterErrorf(op, fmt.Errorf("%s: zero transmission: %w", name, ErrBadCurve))
	}

	return b, nil
}

// ReadBandpass parses a two-column (wavelength, response) table.
func ReadBandpass(name string, r io.Reader) (*Bandpass, error) {
	rows, err := basis.ReadTable(r)
	if err != nil {
		return nil, filterErrorf("ReadBandpass", fmt.Errorf("%s: %w", name, err))
	}
	wave := make([]float64, len(rows))
	resp := make([]float64, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			return nil, filterErrorf("ReadBandpass", fmt.Errorf("%s: %w", name, ErrBadCurve))
		}
		wave[i], resp[i] = row[0], row[1]
	}

	return NewBandpass(name, wave, resp)
}

// ZeroPointCounts returns ∫ (3631 Jy · c/λ²) R λ dλ in erg/s/cm².
func (b *Bandpass) ZeroPointCounts() float64 { return b.zeroPoint }

// Range returns the first and last tabulated wavelength.
func (b *Bandpass) Range() (lo, hi float64) { return b.Wave[0], b.Wave[len(b.Wave)-1] }

// Transmission evaluates R at wavelength w, zero outside the curve.
func (b *Bandpass) Transmission(w float64) float64 {
	lo, hi := b.Range()
	if w < lo || w > hi {
		return 0
	}

	return b.curve.Predict(w)
}
