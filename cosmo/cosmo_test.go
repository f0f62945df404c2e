// SPDX-License-Identifier: MIT

package cosmo_test

import (
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/popsed/cosmo"
	"github.com/katalvlaran/popsed/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ipOnce sync.Once
	ipVal  *cosmo.Interpolators
	ipErr  error
)

func planck(t *testing.T) *cosmo.Interpolators {
	t.Helper()
	ipOnce.Do(func() { ipVal, ipErr = cosmo.NewInterpolators(cosmo.Planck15()) })
	require.NoError(t, ipErr)

	return ipVal
}

func TestPlanck15_IsFlat(t *testing.T) {
	c := cosmo.Planck15()
	require.NoError(t, c.Validate())
	assert.InDelta(t, 1.0, c.E(0), 1e-12)
	assert.InDelta(t, 9.1e-5, c.OmegaR, 0.2e-5)
}

func TestAge_Today(t *testing.T) {
	c := cosmo.Planck15()
	assert.InDelta(t, 13.797, c.Age(0), 0.01)
	assert.InDelta(t, 1.173, c.Age(5), 0.01)
}

func TestLuminosityDistance(t *testing.T) {
	c := cosmo.Planck15()
	assert.Equal(t, 0.0, c.LuminosityDistance(0))
	// ≈ 475 Mpc at z = 0.1 for Planck15.
	assert.InDelta(t, 475.3, c.LuminosityDistance(0.1)/units.Mpc, 1.0)
}

func TestInterpolators_Monotonic(t *testing.T) {
	ip := planck(t)
	prevAge, prevDist := math.Inf(1), -1.0
	for k := 0; k <= 500; k++ {
		z := float64(k) / 100
		age, err := ip.AgeAt(z)
		require.NoError(t, err)
		dist, err := ip.LuminosityDistanceAt(z)
		require.NoError(t, err)

		assert.Less(t, age, prevAge, "age must decrease at z=%g", z)
		assert.Greater(t, dist, prevDist, "distance must increase at z=%g", z)
		prevAge, prevDist = age, dist
	}
}

func TestInterpolators_RoundTrip(t *testing.T) {
	ip := planck(t)
	for _, z := range []float64{0.01, 0.1, 0.5, 1, 2.3, 4.9} {
		age, err := ip.AgeAt(z)
		require.NoError(t, err)
		back, err := ip.RedshiftAt(age)
		require.NoError(t, err)
		assert.InDelta(t, z, back, 1e-4*(1+z), "z=%g", z)
	}
}

func TestInterpolators_MatchDirect(t *testing.T) {
	ip := planck(t)
	c := ip.Cosmology()
	for _, z := range []float64{0.0123, 0.77, 3.3} {
		age, err := ip.AgeAt(z)
		require.NoError(t, err)
		assert.InDelta(t, c.Age(z), age, 1e-6)
	}
	assert.InDelta(t, c.Age(0), ip.UniverseAge(), 1e-12)
}

func TestInterpolators_OutOfRange(t *testing.T) {
	ip := planck(t)

	_, err := ip.AgeAt(-0.1)
	assert.ErrorIs(t, err, cosmo.ErrRedshiftRange)
	_, err = ip.AgeAt(5.01)
	assert.ErrorIs(t, err, cosmo.ErrRedshiftRange)
	_, err = ip.LuminosityDistanceAt(7)
	assert.ErrorIs(t, err, cosmo.ErrRedshiftRange)
	_, err = ip.RedshiftAt(20)
	assert.ErrorIs(t, err, cosmo.ErrAgeRange)
	_, err = ip.RedshiftAt(0.5)
	assert.ErrorIs(t, err, cosmo.ErrAgeRange)
}

func TestNewInterpolators_Options(t *testing.T) {
	ip, err := cosmo.NewInterpolators(cosmo.Planck15(), cosmo.WithGridSize(50), cosmo.WithMaxRedshift(1))
	require.NoError(t, err)
	_, err = ip.AgeAt(1.5)
	assert.ErrorIs(t, err, cosmo.ErrRedshiftRange)

	assert.Panics(t, func() { cosmo.WithGridSize(2) })
	assert.Panics(t, func() { cosmo.WithMaxRedshift(-1) })

	_, err = cosmo.NewInterpolators(cosmo.Cosmology{H0: 70, OmegaM: 0.5, OmegaL: 0.1})
	assert.ErrorIs(t, err, cosmo.ErrNotFlat)
}
