// SPDX-License-Identifier: MIT

package params_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/popsed/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariant_Names(t *testing.T) {
	cases := []struct {
		v    params.Variant
		want []string
	}{
		{params.Variant{}, []string{"logmstar", "beta1_sfh", "beta2_sfh", "beta3_sfh", "beta4_sfh", "logzsol", "dust1", "dust2", "dust_index"}},
		{params.Variant{Burst: true}, []string{"logmstar", "beta1_sfh", "beta2_sfh", "beta3_sfh", "beta4_sfh", "fburst", "tburst", "logzsol", "dust1", "dust2", "dust_index"}},
		{params.Variant{MetallicityHistory: true}, []string{"logmstar", "beta1_sfh", "beta2_sfh", "beta3_sfh", "beta4_sfh", "gamma1_zh", "gamma2_zh", "dust1", "dust2", "dust_index"}},
		{params.Variant{Burst: true, MetallicityHistory: true}, []string{"logmstar", "beta1_sfh", "beta2_sfh", "beta3_sfh", "beta4_sfh", "fburst", "tburst", "gamma1_zh", "gamma2_zh", "dust1", "dust2", "dust_index"}},
	}
	for _, tc := range cases {
		t.Run(tc.v.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.v.Names())
			assert.Equal(t, len(tc.want), tc.v.Len())
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	v := params.Variant{Burst: true, MetallicityHistory: true}
	vec := []float64{10.5, 0.1, 0.2, 0.3, 0.4, 0.2, 3.5, 1e-3, 5e-3, 0.3, 0.8, -0.4}

	p, err := params.Parse(v, vec)
	require.NoError(t, err)
	assert.Equal(t, 10.5, p.LogMStar)
	assert.Equal(t, [4]float64{0.1, 0.2, 0.3, 0.4}, p.Beta)
	assert.Equal(t, 0.2, p.FBurst)
	assert.Equal(t, 3.5, p.TBurst)
	assert.Equal(t, [2]float64{1e-3, 5e-3}, p.Gamma)
	assert.Equal(t, -0.4, p.DustIndex)
	assert.Equal(t, vec, p.Vector())

	vec[0] = 0
	assert.Equal(t, 10.5, p.LogMStar, "Params must not alias the input")
	assert.Equal(t, 0.0, p.Unit().LogMStar)
	assert.InDelta(t, math.Pow(10, 10.5), p.Mass(), 1)
}

func TestParse_Errors(t *testing.T) {
	v := params.Variant{Burst: true}
	good := []float64{10, 0.25, 0.25, 0.25, 0.25, 0.1, 1, 0, 0.3, 0.5, -0.5}

	_, err := params.Parse(v, good[:10])
	assert.ErrorIs(t, err, params.ErrParamCount)

	bad := append([]float64(nil), good...)
	bad[1] = 0.3
	_, err = params.Parse(v, bad)
	assert.ErrorIs(t, err, params.ErrCoefficientSum)

	// Within SumTolerance.
	near := append([]float64(nil), good...)
	near[1] += 5e-6
	_, err = params.Parse(v, near)
	assert.NoError(t, err)

	bad = append([]float64(nil), good...)
	bad[5] = 1.5
	_, err = params.Parse(v, bad)
	assert.ErrorIs(t, err, params.ErrBurstFraction)

	bad = append([]float64(nil), good...)
	bad[6] = math.NaN()
	_, err = params.Parse(v, bad)
	assert.ErrorIs(t, err, params.ErrBurstTime)
}
