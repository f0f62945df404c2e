// SPDX-License-Identifier: MIT

package spectrum_test

import (
	"testing"

	"github.com/katalvlaran/popsed/spectrum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpectrum_Arithmetic(t *testing.T) {
	s := spectrum.New([]float64{1, 2, 3})
	require.NoError(t, s.Validate())
	require.NoError(t, s.AddScaled(2, []float64{1, 2, 3}))
	s.Scale(0.5)
	assert.Equal(t, []float64{1, 2, 3}, s.Flux)

	c := s.Clone()
	c.Flux[0] = 99
	assert.Equal(t, 1.0, s.Flux[0])

	assert.ErrorIs(t, s.AddScaled(1, []float64{1}), spectrum.ErrGridMismatch)
}

func TestSpectrum_Validate(t *testing.T) {
	assert.ErrorIs(t, spectrum.Spectrum{}.Validate(), spectrum.ErrEmpty)
	assert.ErrorIs(t, spectrum.Spectrum{Wave: []float64{1, 2}, Flux: []float64{1}}.Validate(), spectrum.ErrLengthMismatch)
	assert.ErrorIs(t, spectrum.Spectrum{Wave: []float64{1, 1}, Flux: []float64{1, 1}}.Validate(), spectrum.ErrNotIncreasing)
}
