// SPDX-License-Identifier: MIT

// Package spectrum defines the wavelength/flux pair every stage of the
// forward model passes along.
package spectrum

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrLengthMismatch indicates len(Wave) != len(Flux).
	ErrLengthMismatch = errors.New("spectrum: wave and flux lengths differ")

	// ErrEmpty indicates a spectrum without samples.
	ErrEmpty = errors.New("spectrum: no samples")

	// ErrNotIncreasing indicates a wavelength grid that is not strictly increasing.
	ErrNotIncreasing = errors.New("spectrum: wavelengths must be strictly increasing")

	// ErrGridMismatch indicates two spectra on different wavelength grids.
	ErrGridMismatch = errors.New("spectrum: wavelength grids differ")
)

// Spectrum is a sampled SED. Wave is in Angstrom; the flux unit depends on
// the stage (Lsun/A rest frame, 1e-17 erg/s/cm^2/A observed).
type Spectrum struct {
	Wave []float64
	Flux []float64
}

// New allocates a zero-flux spectrum on a copy of wave.
func New(wave []float64) Spectrum {
	return Spectrum{Wave: append([]float64(nil), wave...), Flux: make([]float64, len(wave))}
}

// Len returns the number of samples.
func (s Spectrum) Len() int { return len(s.Wave) }

// Clone returns a deep copy.
func (s Spectrum) Clone() Spectrum {
	return Spectrum{
		Wave: append([]float64(nil), s.Wave...),
		Flux: append([]float64(nil), s.Flux...),
	}
}

// Scale multiplies the flux in place by c.
func (s Spectrum) Scale(c float64) { floats.Scale(c, s.Flux) }

// AddScaled adds c·flux to s in place. flux must be sampled on s.Wave.
func (s Spectrum) AddScaled(c float64, flux []float64) error {
	if len(flux) != len(s.Flux) {
		return fmt.Errorf("AddScaled: %w", ErrGridMismatch)
	}
	floats.AddScaled(s.Flux, c, flux)

	return nil
}

// Validate checks shapes and that Wave is strictly increasing.
func (s Spectrum) Validate() error {
	if len(s.Wave) == 0 {
		return ErrEmpty
	}
	if len(s.Wave) != len(s.Flux) {
		return ErrLengthMismatch
	}
	for i := 1; i < len(s.Wave); i++ {
		if !(s.Wave[i] > s.Wave[i-1]) {
			return fmt.Errorf("index %d: %w", i, ErrNotIncreasing)
		}
	}

	return nil
}
