// SPDX-License-Identifier: MIT

package sfh_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/katalvlaran/popsed/cosmo"
	"github.com/katalvlaran/popsed/internal/fixture"
	"github.com/katalvlaran/popsed/params"
	"github.com/katalvlaran/popsed/sfh"
	"github.com/katalvlaran/popsed/tlookback"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	plain = params.Variant{}
	burst = params.Variant{Burst: true}
	zhist = params.Variant{MetallicityHistory: true}
)

func newSynth(t *testing.T, v params.Variant, opts ...sfh.Option) *sfh.Synthesizer {
	t.Helper()
	s, err := sfh.New(fixture.Library(), fixture.UniverseAge, v, append([]sfh.Option{sfh.WithResolution(20000)}, opts...)...)
	require.NoError(t, err)

	return s
}

func mustParse(t *testing.T, v params.Variant, vec ...float64) params.Params {
	t.Helper()
	p, err := params.Parse(v, vec)
	require.NoError(t, err)

	return p
}

func TestSFH_Normalisation(t *testing.T) {
	s := newSynth(t, plain)
	betas := [][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0.1, 0.2, 0.3, 0.4},
		{0, 0, 0, 1},
	}
	for _, b := range betas {
		for _, tage := range []float64{0.05, 1, 7.3, 13.7} {
			p := mustParse(t, plain, 10.3, b[0], b[1], b[2], b[3], 0, 0.1, 0.2, -0.3)
			h, err := s.SFH(p, sfh.Age(tage))
			require.NoError(t, err)

			assert.Equal(t, tage, h.Edges[len(h.Edges)-1])
			assert.InDelta(t, 1.0, h.TotalMass()/p.Mass(), 1e-9, "β=%v tage=%g", b, tage)
			for _, v := range h.SFR {
				assert.GreaterOrEqual(t, v, 0.0)
			}
		}
	}
}

func TestSFH_ConstantComponentIsFlat(t *testing.T) {
	s := newSynth(t, plain)
	p := mustParse(t, plain, 0, 1, 0, 0, 0, 0, 0, 0, 0)

	h, err := s.SFH(p, sfh.Age(10))
	require.NoError(t, err)
	for _, v := range h.SFR {
		assert.InDelta(t, 1/(10*1e9), v, 1e-20)
	}
}

func TestSFH_BurstBeyondAgeIsDropped(t *testing.T) {
	s := newSynth(t, burst)
	with := mustParse(t, burst, 9, 0.25, 0.25, 0.25, 0.25, 0.4, 6, 0, 0, 0, 0)

	h, err := s.SFH(with, sfh.Age(5))
	require.NoError(t, err)
	ref, err := s.SFH(with.WithoutBurst(), sfh.Age(5))
	require.NoError(t, err)

	assert.Equal(t, ref.SFR, h.SFR)
	assert.InDelta(t, 1.0, h.TotalMass()/with.Mass(), 1e-9)
}

func TestSFH_BurstLandsInOneBin(t *testing.T) {
	s := newSynth(t, burst)
	edges, err := tlookback.Edges(8)
	require.NoError(t, err)

	cases := []struct {
		name   string
		tburst float64
		bin    int
	}{
		{"interior", 0.5 * (edges[20] + edges[21]), 20},
		{"on an edge", edges[20], 20},
		{"oldest edge", 8, len(edges) - 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			const f = 0.3
			p := mustParse(t, burst, 0, 0.25, 0.25, 0.25, 0.25, f, tc.tburst, 0, 0, 0, 0)
			h, err := s.SFH(p, sfh.Age(8))
			require.NoError(t, err)
			ref, err := s.SFH(p.WithoutBurst(), sfh.Age(8))
			require.NoError(t, err)

			m, mref := h.MassFormed(), ref.MassFormed()
			for i := range m {
				want := (1 - f) * mref[i]
				if i == tc.bin {
					want += f
				}
				assert.InDelta(t, want, m[i], 1e-12, "bin %d", i)
			}
			assert.InDelta(t, 1.0, h.TotalMass(), 1e-9)
		})
	}
}

func TestZH_HistoryAndClipping(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	s := newSynth(t, zhist, sfh.WithLogger(logger))

	p := mustParse(t, zhist, 0, 0.25, 0.25, 0.25, 0.25, 0.01, 0.014, 0, 0, 0)
	zh, err := s.ZH(p, sfh.Age(7))
	require.NoError(t, err)
	for i, c := range tlookback.Centers(zh.Edges) {
		assert.InDelta(t, 0.01+0.014*c/14, zh.Z[i], 1e-12)
	}
	assert.Empty(t, buf.String())

	high := mustParse(t, zhist, 0, 0.25, 0.25, 0.25, 0.25, 1, 1, 0, 0, 0)
	zh, err = s.ZH(high, sfh.Age(7))
	require.NoError(t, err)
	zmin, zmax := s.MetallicityRange()
	for _, z := range zh.Z {
		assert.Equal(t, zmax, z)
	}
	assert.Contains(t, buf.String(), "metallicity clipped")

	low := mustParse(t, zhist, 0, 0.25, 0.25, 0.25, 0.25, 0, 0, 0, 0, 0)
	assert.Equal(t, zmin, s.MetallicityAt(low, 3))

	negative := mustParse(t, zhist, 0, 0.25, 0.25, 0.25, 0.25, -1, -5, 0, 0, 0)
	zh, err = s.ZH(negative, sfh.Age(7))
	require.NoError(t, err)
	require.NotEmpty(t, zh.Z)
	for _, z := range zh.Z {
		assert.Equal(t, zmin, z)
	}
}

func TestZH_SingleMetallicity(t *testing.T) {
	s := newSynth(t, plain)
	p := mustParse(t, plain, 0, 0.25, 0.25, 0.25, 0.25, -0.5, 0, 0, 0)

	zh, err := s.ZH(p, sfh.Age(3))
	require.NoError(t, err)
	for _, z := range zh.Z {
		assert.InDelta(t, 0.019*math.Pow(10, -0.5), z, 1e-15)
	}
	assert.Equal(t, -0.5, s.LogZSolAt(p, 1))
}

func TestEpochs(t *testing.T) {
	s := newSynth(t, plain)
	p := mustParse(t, plain, 0, 0.25, 0.25, 0.25, 0.25, 0, 0, 0, 0)

	_, err := s.SFH(p)
	assert.ErrorIs(t, err, sfh.ErrEpoch)
	_, err = s.SFH(p, sfh.Age(3), sfh.Redshift(0.1))
	assert.ErrorIs(t, err, sfh.ErrEpoch)
	_, err = s.SFH(p, sfh.Redshift(0.1))
	assert.ErrorIs(t, err, sfh.ErrNoResolver)
	_, err = s.SFH(p, sfh.Age(-1))
	assert.ErrorIs(t, err, tlookback.ErrNonPositiveAge)

	ip, err := cosmo.NewInterpolators(cosmo.Planck15(), cosmo.WithGridSize(200), cosmo.WithMaxRedshift(2))
	require.NoError(t, err)
	withZ := newSynth(t, plain, sfh.WithAgeResolver(ip))

	h, err := withZ.SFH(p, sfh.Redshift(0.5))
	require.NoError(t, err)
	tage, err := ip.AgeAt(0.5)
	require.NoError(t, err)
	assert.Equal(t, tage, h.Edges[len(h.Edges)-1])

	_, err = withZ.SFH(p, sfh.Redshift(3))
	assert.ErrorIs(t, err, cosmo.ErrRedshiftRange)
}

func TestAvgSFR_ConstantHistory(t *testing.T) {
	s := newSynth(t, burst)
	const tage, logm = 10.0, 10.0

	p := mustParse(t, burst, logm, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	for _, dt := range []float64{0.1, 1, 3.3} {
		got, err := s.AvgSFR(p, dt, sfh.Age(tage))
		require.NoError(t, err)
		assert.InDelta(t, 1.0, got/(math.Pow(10, logm)/tage/1e9), 1e-9, "dt=%g", dt)
	}

	// A young burst adds its whole mass to the window.
	pb := mustParse(t, burst, logm, 1, 0, 0, 0, 0.2, 0.05, 0, 0, 0, 0)
	got, err := s.AvgSFR(pb, 1, sfh.Age(tage))
	require.NoError(t, err)
	want := (0.8*1/tage + 0.2) * math.Pow(10, logm) / 1 / 1e9
	assert.InDelta(t, 1.0, got/want, 1e-9)

	_, err = s.AvgSFR(p, tage, sfh.Age(tage))
	assert.ErrorIs(t, err, sfh.ErrAveragingWindow)
	_, err = s.AvgSFR(p, 0, sfh.Age(tage))
	assert.ErrorIs(t, err, sfh.ErrAveragingWindow)
}

func TestMassWeightedQuantities(t *testing.T) {
	s := newSynth(t, zhist)
	p := mustParse(t, zhist, 11, 1, 0, 0, 0, 0.01, 0, 0, 0, 0)

	age, err := s.MassWeightedAge(p, sfh.Age(12))
	require.NoError(t, err)
	assert.InDelta(t, 6.0, age, 1e-9)

	z, err := s.MassWeightedMetallicity(p, sfh.Age(12))
	require.NoError(t, err)
	assert.InDelta(t, 0.01, z, 1e-12)

	surv, err := s.SurvivingMass(p, sfh.Age(12))
	require.NoError(t, err)
	assert.Less(t, surv, 11.0)
	assert.Greater(t, surv, 11+math.Log10(0.5))
}

func TestNew_Errors(t *testing.T) {
	_, err := sfh.New(fixture.Library(), 0, plain)
	assert.ErrorIs(t, err, sfh.ErrUniverseAge)

	lib := fixture.Library()
	lib.ZH = nil
	_, err = sfh.New(lib, fixture.UniverseAge, zhist)
	assert.ErrorIs(t, err, sfh.ErrNoZHBasis)

	s := newSynth(t, plain)
	p := mustParse(t, burst, 0, 0.25, 0.25, 0.25, 0.25, 0, 0, 0, 0, 0, 0)
	_, err = s.SFH(p, sfh.Age(1))
	assert.ErrorIs(t, err, sfh.ErrVariant)

	assert.Panics(t, func() { sfh.WithMetallicityRange(1, 0.5) })
	assert.Panics(t, func() { sfh.WithResolution(1) })
}
