// SPDX-License-Identifier: MIT

package ssp

import (
	"context"
	"sync"
)

// Request is one simple-stellar-population evaluation.
type Request struct {
	Age       float64 // Gyr
	LogZSol   float64 // log10(Z/ZSun)
	Dust1     float64 // birth-cloud optical depth
	Dust2     float64 // diffuse optical depth
	DustIndex float64 // attenuation curve slope offset
	PerAA     bool    // Lsun/A when true, Lsun/Hz otherwise
}

// Simulator returns the spectrum of one solar mass formed at r.Age ago.
// Implementations must be safe for concurrent use.
type Simulator interface {
	Spectrum(r Request) (wave, lum []float64, err error)
}

// SimulatorFunc adapts a function to Simulator.
type SimulatorFunc func(r Request) (wave, lum []float64, err error)

// Spectrum calls f(r).
func (f SimulatorFunc) Spectrum(r Request) ([]float64, []float64, error) { return f(r) }

// Parameter names understood by LegacySimulator.SetParam.
const (
	ParamLogZSol   = "logzsol"
	ParamDust1     = "dust1"
	ParamDust2     = "dust2"
	ParamDustIndex = "dust_index"
)

// LegacySimulator is a stateful handle: parameters are set first, then a
// spectrum is requested at an age. It is not safe for concurrent use.
type LegacySimulator interface {
	SetParam(name string, value float64) error
	GetSpectrum(age float64, perAA bool) (wave, lum []float64, err error)
}

// Serialized guards one LegacySimulator with a mutex.
type Serialized struct {
	mu  sync.Mutex
	sim LegacySimulator
}

// Serialize wraps sim so each Request sets all parameters and reads the
// spectrum under one lock.
func Serialize(sim LegacySimulator) *Serialized {
	return &Serialized{sim: sim}
}

// Spectrum implements Simulator.
func (s *Serialized) Spectrum(r Request) ([]float64, []float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, kv := range []struct {
		name  string
		value float64
	}{
		{ParamLogZSol, r.LogZSol},
		{ParamDust1, r.Dust1},
		{ParamDust2, r.Dust2},
		{ParamDustIndex, r.DustIndex},
	} {
		if err := s.sim.SetParam(kv.name, kv.value); err != nil {
			return nil, nil, sspErrorf("Spectrum", err)
		}
	}

	return s.sim.GetSpectrum(r.Age, r.PerAA)
}

// Pool hands every request to one of several independent simulators.
type Pool struct {
	free chan Simulator
}

// NewPool builds a pool over handles. Each handle serves one request at a time.
func NewPool(handles ...Simulator) (*Pool, error) {
	if len(handles) == 0 {
		return nil, sspErrorf("NewPool", ErrEmptyPool)
	}
	p := &Pool{free: make(chan Simulator, len(handles))}
	for _, h := range handles {
		p.free <- h
	}

	return p, nil
}

// Size returns the number of handles.
func (p *Pool) Size() int { return cap(p.free) }

// Spectrum implements Simulator, blocking until a handle is free.
func (p *Pool) Spectrum(r Request) ([]float64, []float64, error) {
	return p.SpectrumContext(context.Background(), r)
}

// SpectrumContext is Spectrum with cancellation while waiting for a handle.
func (p *Pool) SpectrumContext(ctx context.Context, r Request) ([]float64, []float64, error) {
	var h Simulator
	select {
	case h = <-p.free:
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	}
	defer func() { p.free <- h }()

	return h.Spectrum(r)
}
