// SPDX-License-Identifier: MIT

package filter

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"

	"github.com/katalvlaran/popsed/units"
)

// DefaultCacheSize bounds the number of working grids a Set remembers.
const DefaultCacheSize = 64

// Set is an ordered collection of bandpasses with a transmission cache.
type Set struct {
	bands []*Bandpass

	mu    sync.Mutex
	cache map[uint64][]cachedGrid
	size  int
}

type cachedGrid struct {
	wave  []float64
	trans [][]float64
}

// NewSet groups bandpasses; names must be unique.
//
// Errors: ErrEmptySet, ErrDuplicateName.
func NewSet(bands ...*Bandpass) (*Set, error) {
	if len(bands) == 0 {
		return nil, filterErrorf("NewSet", ErrEmptySet)
	}
	seen := make(map[string]bool, len(bands))
	for _, b := range bands {
		if seen[b.Name] {
			return nil, filterErrorf("NewSet", fmt.Errorf("%q: %w", b.Name, ErrDuplicateName))
		}
		seen[b.Name] = true
	}

	return &Set{bands: append([]*Bandpass(nil), bands...), cache: make(map[uint64][]cachedGrid)}, nil
}

// Len returns the number of bandpasses.
func (s *Set) Len() int { return len(s.bands) }

// Names returns the bandpass names in order.
func (s *Set) Names() []string {
	out := make([]string, len(s.bands))
	for i, b := range s.bands {
		out[i] = b.Name
	}

	return out
}

// Bandpasses returns the members in order.
func (s *Set) Bandpasses() []*Bandpass { return append([]*Bandpass(nil), s.bands...) }

// Transmission returns every bandpass interpolated onto wave, one row per
// bandpass. Rows are shared with the cache and must not be modified.
func (s *Set) Transmission(wave []float64) [][]float64 {
	key := gridKey(wave)

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.cache[key] {
		if floats.Equal(c.wave, wave) {
			return c.trans
		}
	}

	trans := make([][]float64, len(s.bands))
	for i, b := range s.bands {
		row := make([]float64, len(wave))
		for k, w := range wave {
			row[k] = b.Transmission(w)
		}
		trans[i] = row
	}

	if s.size >= DefaultCacheSize {
		s.cache = make(map[uint64][]cachedGrid)
		s.size = 0
	}
	s.cache[key] = append(s.cache[key], cachedGrid{wave: append([]float64(nil), wave...), trans: trans})
	s.size++

	return trans
}

// Maggies integrates a spectrum against every bandpass and returns AB fluxes
// in nanomaggies. wave is in Angstrom (increasing) and flux in
// 1e-17 erg/s/cm²/Å. The spectrum is taken as zero outside its range.
//
// Errors: ErrLengthMismatch, ErrNoOverlap.
func (s *Set) Maggies(wave, flux []float64) ([]float64, error) {
	const op = "Maggies"
	if len(wave) != len(flux) || len(wave) < 2 {
		return nil, filterErrorf(op, ErrLengthMismatch)
	}

	trans := s.Transmission(wave)
	integrand := make([]float64, len(wave))
	out := make([]float64, len(s.bands))
	for i, b := range s.bands {
		lo, hi := b.Range()
		if hi < wave[0] || lo > wave[len(wave)-1] {
			return nil, filterErrorf(op, fmt.Errorf("%s: %w", b.Name, ErrNoOverlap))
		}
		for k, w := range wave {
			integrand[k] = flux[k] / units.FluxScale * trans[i][k] * w
		}
		maggies := integrate.Trapezoidal(wave, integrand) / b.ZeroPointCounts()
		out[i] = units.MaggiesToNanomaggies(maggies)
	}

	return out, nil
}

// Magnitudes is Maggies converted to AB magnitudes.
func (s *Set) Magnitudes(wave, flux []float64) ([]float64, error) {
	nmgy, err := s.Maggies(wave, flux)
	if err != nil {
		return nil, err
	}
	for i, f := range nmgy {
		nmgy[i] = units.FluxToMag(f)
	}

	return nmgy, nil
}

func gridKey(wave []float64) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, w := range wave {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(w))
		_, _ = h.Write(buf[:])
	}

	return h.Sum64()
}
