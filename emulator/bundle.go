// SPDX-License-Identifier: MIT

package emulator

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Bundle is an ordered set of segments sharing one input vector.
// It is immutable after NewBundle and safe for concurrent use.
type Bundle struct {
	segments []*Segment
	wave     []float64
	inputs   int
}

// NewBundle validates segs and concatenates their wavelength grids.
//
// Errors: ErrEmptyBundle, ErrShape (segment shapes, differing input counts,
// or a concatenated grid that is not strictly increasing).
func NewBundle(segs ...*Segment) (*Bundle, error) {
	const op = "NewBundle"
	if len(segs) == 0 {
		return nil, emulatorErrorf(op, ErrEmptyBundle)
	}

	b := &Bundle{segments: segs, inputs: segs[0].NumInputs()}
	for _, s := range segs {
		if err := s.Validate(); err != nil {
			return nil, emulatorErrorf(op, err)
		}
		if s.NumInputs() != b.inputs {
			return nil, emulatorErrorf(op, fmt.Errorf("segment %q takes %d inputs, want %d: %w",
				s.Name, s.NumInputs(), b.inputs, ErrShape))
		}
		b.wave = append(b.wave, s.Wave...)
	}
	for i := 1; i < len(b.wave); i++ {
		if !(b.wave[i] > b.wave[i-1]) {
			return nil, emulatorErrorf(op, fmt.Errorf("wavelength %d not increasing: %w", i, ErrShape))
		}
	}

	return b, nil
}

// Segments returns the segments in wavelength order.
func (b *Bundle) Segments() []*Segment { return b.segments }

// Wave returns a copy of the concatenated wavelength grid.
func (b *Bundle) Wave() []float64 { return append([]float64(nil), b.wave...) }

// NumInputs returns the input length shared by every segment.
func (b *Bundle) NumInputs() int { return b.inputs }

// LogSpectrum returns ln L over the whole grid.
func (b *Bundle) LogSpectrum(x []float64) ([]float64, error) {
	if len(x) != b.inputs {
		return nil, emulatorErrorf("LogSpectrum", fmt.Errorf("got %d, want %d: %w", len(x), b.inputs, ErrInputSize))
	}

	out := make([]float64, 0, len(b.wave))
	for _, s := range b.segments {
		part, err := s.LogSpectrum(x)
		if err != nil {
			return nil, err
		}
		out = append(out, part...)
	}

	return out, nil
}

// Spectrum returns exp(LogSpectrum(x)).
func (b *Bundle) Spectrum(x []float64) ([]float64, error) {
	out, err := b.LogSpectrum(x)
	if err != nil {
		return nil, err
	}
	for i, v := range out {
		out[i] = math.Exp(v)
	}

	return out, nil
}

// Jacobian stacks the segment Jacobians into a (len(Wave) × NumInputs) matrix.
func (b *Bundle) Jacobian(x []float64) (*mat.Dense, error) {
	if len(x) != b.inputs {
		return nil, emulatorErrorf("Jacobian", ErrInputSize)
	}

	out := mat.NewDense(len(b.wave), b.inputs, nil)
	row := 0
	for _, s := range b.segments {
		j, err := s.Jacobian(x)
		if err != nil {
			return nil, err
		}
		r, _ := j.Dims()
		out.Slice(row, row+r, 0, b.inputs).(*mat.Dense).Copy(j)
		row += r
	}

	return out, nil
}
