// SPDX-License-Identifier: MIT

package observe_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/popsed/filter"
	"github.com/katalvlaran/popsed/matrix"
	"github.com/katalvlaran/popsed/observe"
	"github.com/katalvlaran/popsed/spectrum"
	"github.com/katalvlaran/popsed/units"
)

func flat(lo, hi, step, v float64) spectrum.Spectrum {
	var sp spectrum.Spectrum
	for w := lo; w <= hi+1e-9; w += step {
		sp.Wave = append(sp.Wave, w)
		sp.Flux = append(sp.Flux, v)
	}

	return sp
}

func TestRedshift_ZeroIsIdentity(t *testing.T) {
	sp := flat(3000, 9000, 10, 2.5)
	out, err := observe.Redshift(sp, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, sp.Wave, out.Wave)
	assert.Equal(t, sp.Flux, out.Flux)

	out.Flux[0] = -1
	assert.Equal(t, 2.5, sp.Flux[0])
}

func TestRedshift_InverseSquareAndDimming(t *testing.T) {
	sp := flat(3000, 3020, 10, 1)
	dL := 100 * units.Mpc
	out, err := observe.Redshift(sp, 0.5, dL)
	require.NoError(t, err)

	assert.Equal(t, []float64{4500, 4515, 4530}, out.Wave)
	want := units.Lsun / (4 * math.Pi * dL * dL) / 1.5 * 1e17
	for _, f := range out.Flux {
		assert.InEpsilon(t, want, f, 1e-12)
	}
}

func TestRedshift_Errors(t *testing.T) {
	sp := flat(3000, 3020, 10, 1)
	_, err := observe.Redshift(sp, -0.1, units.Mpc)
	assert.ErrorIs(t, err, observe.ErrNegativeRedshift)
	_, err = observe.Redshift(sp, 0.1, 0)
	assert.ErrorIs(t, err, observe.ErrDistance)
}

func TestGaussianKernel(t *testing.T) {
	k := observe.GaussianKernel(2)
	require.Len(t, k, 17)
	var sum float64
	for i := range k {
		sum += k[i]
		assert.InDelta(t, k[i], k[len(k)-1-i], 1e-15)
	}
	assert.InDelta(t, 1, sum, 1e-12)
	assert.Len(t, observe.GaussianKernel(0.1), 1)
}

// directFilter is the O(n·r) reference convolution with reflected ends.
func directFilter(x []float64, sigma float64) []float64 {
	k := observe.GaussianKernel(sigma)
	r := len(k) / 2
	n := len(x)
	idx := func(i int) int {
		for i < 0 || i >= n {
			if i < 0 {
				i = -i - 1
			}
			if i >= n {
				i = 2*n - 1 - i
			}
		}
		return i
	}
	out := make([]float64, n)
	for i := range out {
		for m := -r; m <= r; m++ {
			out[i] += k[m+r] * x[idx(i+m)]
		}
	}

	return out
}

func TestGaussianFilter_MatchesDirect(t *testing.T) {
	x := make([]float64, 200)
	for i := range x {
		x[i] = math.Sin(float64(i)/7) + 0.01*float64(i)
	}
	for _, sigma := range []float64{0.7, 3, 12.5} {
		assert.InDeltaSlice(t, directFilter(x, sigma), observe.GaussianFilter(x, sigma), 1e-10, "sigma=%g", sigma)
	}

	// kernel wider than the signal still reflects correctly
	short := []float64{1, 2, 3}
	assert.InDeltaSlice(t, directFilter(short, 2), observe.GaussianFilter(short, 2), 1e-12)
}

func TestGaussianFilter_ConstantAndMass(t *testing.T) {
	c := make([]float64, 64)
	for i := range c {
		c[i] = 3
	}
	for _, v := range observe.GaussianFilter(c, 4) {
		assert.InDelta(t, 3, v, 1e-12)
	}

	delta := make([]float64, 101)
	delta[50] = 1
	var sum float64
	for _, v := range observe.GaussianFilter(delta, 5) {
		sum += v
	}
	assert.InDelta(t, 1, sum, 1e-12)
}

func TestSmooth(t *testing.T) {
	sp := flat(3000, 9000, 1, 4)

	same, err := observe.Smooth(sp, 0)
	require.NoError(t, err)
	assert.Equal(t, sp.Wave, same.Wave)

	out, err := observe.Smooth(sp, 150)
	require.NoError(t, err)
	require.Greater(t, out.Len(), 2)
	assert.InDelta(t, 3010, out.Wave[0], 1e-6)
	assert.Less(t, out.Wave[out.Len()-1], 8990.0)
	ratio := out.Wave[1] / out.Wave[0]
	assert.InDelta(t, 1+observe.PixelKms/units.LightSpeedKms, ratio, 1e-8)
	for _, f := range out.Flux {
		assert.InDelta(t, 4, f, 1e-9)
	}

	_, err = observe.Smooth(flat(3000, 3015, 5, 1), 100)
	assert.ErrorIs(t, err, observe.ErrTooNarrow)
}

func TestResample_Unsorted(t *testing.T) {
	sp := flat(1000, 2000, 1, 0)
	for i, w := range sp.Wave {
		sp.Flux[i] = w
	}
	grid := []float64{1500, 1200, 1400, 1300}
	out, err := observe.Resample(sp, grid)
	require.NoError(t, err)
	assert.Equal(t, grid, out.Wave)
	assert.InDeltaSlice(t, grid, out.Flux, 1e-9)
}

func TestApplyResolution(t *testing.T) {
	id, err := matrix.FromDiagonals([][]float64{{1, 1, 1}})
	require.NoError(t, err)
	blur, err := matrix.FromDiagonals([][]float64{
		{0, 0.5},
		{0.5, 0.5},
		{0.5, 0},
	})
	require.NoError(t, err)

	out, err := observe.ApplyResolution([]float64{1, 2, 3, 4, 0}, id, blur)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 2, 2}, out)

	_, err = observe.ApplyResolution([]float64{1, 2}, id)
	assert.ErrorIs(t, err, observe.ErrResolutionSize)

	_, err = observe.ApplyResolution([]float64{1, 2, 3}, id, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestPipeline(t *testing.T) {
	rest := flat(3000, 9000, 2, 1)
	var wave, resp []float64
	for w := 5000.0; w <= 6000; w += 10 {
		wave = append(wave, w)
		resp = append(resp, 1)
	}
	bp, err := filter.NewBandpass("v", wave, resp)
	require.NoError(t, err)
	set, err := filter.NewSet(bp)
	require.NoError(t, err)

	grid := []float64{5000, 5100, 5200, 5300}
	res, err := matrix.FromSigmas([]float64{1, 1, 1, 1}, 3)
	require.NoError(t, err)

	p := observe.Pipeline{VDisp: 100, Wave: grid, Resolution: []*matrix.Resolution{res}, Filters: set}
	obs, err := p.Apply(rest, 0.2, 900*units.Mpc)
	require.NoError(t, err)
	assert.Equal(t, grid, obs.Spectrum.Wave)
	require.Len(t, obs.Maggies, 1)
	assert.Greater(t, obs.Maggies[0], 0.0)

	_, err = observe.Pipeline{Resolution: []*matrix.Resolution{res}}.Apply(rest, 0, 0)
	assert.ErrorIs(t, err, observe.ErrNoGrid)

	_, err = observe.Pipeline{Filters: set}.Apply(rest, 0, 0)
	assert.ErrorIs(t, err, observe.ErrRestFrame)

	_, err = observe.Pipeline{Wave: grid, Resolution: []*matrix.Resolution{nil}}.Apply(rest, 0.2, 900*units.Mpc)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	plain, err := observe.Pipeline{}.Apply(rest, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, rest.Flux, plain.Spectrum.Flux)
	assert.Nil(t, plain.Maggies)
}
