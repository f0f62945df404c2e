// SPDX-License-Identifier: MIT

package filter_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/popsed/filter"
	"github.com/katalvlaran/popsed/units"
)

// box returns a top-hat over [lo, hi] that falls to zero at both ends.
func box(t *testing.T, name string, lo, hi float64) *filter.Bandpass {
	t.Helper()
	var wave, resp []float64
	for w := lo; w <= hi+1e-9; w += 10 {
		wave = append(wave, w)
		r := 1.0
		if w == lo || w+10 > hi+1e-9 {
			r = 0
		}
		resp = append(resp, r)
	}
	b, err := filter.NewBandpass(name, wave, resp)
	require.NoError(t, err)

	return b
}

// abSpectrum is a flat 3631 Jy source in 1e-17 erg/s/cm²/Å.
func abSpectrum(lo, hi float64) (wave, flux []float64) {
	for w := lo; w <= hi+1e-9; w += 10 {
		wave = append(wave, w)
		flux = append(flux, units.ABZeroPointJy*units.JanskyCGS*units.LightSpeed/(w*w)*units.FluxScale)
	}

	return wave, flux
}

func TestNewBandpass_Validation(t *testing.T) {
	_, err := filter.NewBandpass("x", []float64{1}, []float64{1})
	assert.ErrorIs(t, err, filter.ErrBadCurve)
	_, err = filter.NewBandpass("x", []float64{2, 1}, []float64{1, 1})
	assert.ErrorIs(t, err, filter.ErrBadCurve)
	_, err = filter.NewBandpass("x", []float64{1, 2}, []float64{1, -1})
	assert.ErrorIs(t, err, filter.ErrBadCurve)
	_, err = filter.NewBandpass("x", []float64{1, 2}, []float64{0, 0})
	assert.ErrorIs(t, err, filter.ErrBadCurve)
}

func TestReadBandpass(t *testing.T) {
	src := "# lambda R\n4000 0\n4500 1\n5000 0\n"
	b, err := filter.ReadBandpass("g", strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "g", b.Name)
	assert.InDelta(t, 0.5, b.Transmission(4250), 1e-12)
	assert.Zero(t, b.Transmission(3999))
	assert.Zero(t, b.Transmission(5001))
	assert.Greater(t, b.ZeroPointCounts(), 0.0)

	_, err = filter.ReadBandpass("bad", strings.NewReader("4000\n5000\n"))
	assert.ErrorIs(t, err, filter.ErrBadCurve)
}

func TestMaggies_ABSourceIsZeroMagnitude(t *testing.T) {
	set, err := filter.NewSet(box(t, "blue", 4000, 5000), box(t, "red", 6000, 7000))
	require.NoError(t, err)
	assert.Equal(t, []string{"blue", "red"}, set.Names())

	wave, flux := abSpectrum(3000, 8000)
	nmgy, err := set.Maggies(wave, flux)
	require.NoError(t, err)
	for _, v := range nmgy {
		assert.InEpsilon(t, 1e9, v, 1e-9)
	}

	mags, err := set.Magnitudes(wave, flux)
	require.NoError(t, err)
	for _, m := range mags {
		assert.InDelta(t, 0, m, 1e-9)
	}
}

func TestMaggies_Errors(t *testing.T) {
	set, err := filter.NewSet(box(t, "blue", 4000, 5000))
	require.NoError(t, err)

	_, err = set.Maggies([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, filter.ErrLengthMismatch)
	wave, flux := abSpectrum(8000, 9000)
	_, err = set.Maggies(wave, flux)
	assert.ErrorIs(t, err, filter.ErrNoOverlap)

	_, err = filter.NewSet()
	assert.ErrorIs(t, err, filter.ErrEmptySet)
	_, err = filter.NewSet(box(t, "a", 4000, 5000), box(t, "a", 6000, 7000))
	assert.ErrorIs(t, err, filter.ErrDuplicateName)
}

func TestTransmission_Cached(t *testing.T) {
	set, err := filter.NewSet(box(t, "blue", 4000, 5000))
	require.NoError(t, err)
	wave, _ := abSpectrum(3000, 6000)

	a := set.Transmission(wave)
	b := set.Transmission(append([]float64(nil), wave...))
	assert.Same(t, &a[0][0], &b[0][0])

	other, _ := abSpectrum(3005, 6005)
	c := set.Transmission(other)
	assert.NotSame(t, &a[0][0], &c[0][0])
}

func TestMaggies_Concurrent(t *testing.T) {
	set, err := filter.NewSet(box(t, "blue", 4000, 5000))
	require.NoError(t, err)
	wave, flux := abSpectrum(3000, 6000)

	var wg sync.WaitGroup
	results := make([]float64, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := set.Maggies(wave, flux)
			if err == nil {
				results[i] = v[0]
			}
		}(i)
	}
	wg.Wait()
	for _, v := range results {
		assert.InEpsilon(t, 1e9, v, 1e-9)
	}
}
