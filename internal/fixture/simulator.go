// SPDX-License-Identifier: MIT

package fixture

import (
	"sync"

	"github.com/katalvlaran/popsed/ssp"
)

// FlatLuminosity is the flux density, in Lsun/A per solar mass formed, that
// the Flat simulator returns at every wavelength.
const FlatLuminosity = 2e-4

// Wave returns the rest-frame grid of the fixture simulator: 2000-10000 A in
// 5 A steps.
func Wave() []float64 {
	w := make([]float64, 1601)
	for i := range w {
		w[i] = 2000 + 5*float64(i)
	}

	return w
}

// Recorder is a Simulator that logs every request and answers with Lum.
type Recorder struct {
	mu       sync.Mutex
	requests []ssp.Request

	// Lum returns the spectrum for a request; nil means FlatLuminosity.
	Lum func(r ssp.Request, wave []float64) []float64
}

// Flat returns a Recorder whose spectra are FlatLuminosity everywhere.
func Flat() *Recorder { return &Recorder{} }

// Spectrum implements ssp.Simulator.
func (r *Recorder) Spectrum(req ssp.Request) ([]float64, []float64, error) {
	r.mu.Lock()
	r.requests = append(r.requests, req)
	r.mu.Unlock()

	wave := Wave()
	if r.Lum != nil {
		return wave, r.Lum(req, wave), nil
	}
	lum := make([]float64, len(wave))
	for i := range lum {
		lum[i] = FlatLuminosity
	}

	return wave, lum, nil
}

// Requests returns a copy of the recorded requests in arrival order.
func (r *Recorder) Requests() []ssp.Request {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]ssp.Request(nil), r.requests...)
}
