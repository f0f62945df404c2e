// Package sps is the entry point of the forward model: parameter vectors in,
// observed spectra and photometry out.
//
// A Model ties together
//   - cosmo.Interpolators (age and luminosity distance at a redshift),
//   - an sfh.Synthesizer (star-formation and metallicity histories),
//   - a Backend that turns a history into a rest-frame spectrum, either the
//     physics accumulator (ssp) or the neural emulator (emulator),
//   - an observe.Pipeline per sample (redshift, smoothing, resampling,
//     resolution, photometry).
//
// Basic usage:
//
//	m, err := sps.New(lib, sps.WithEmulator(nmf, burst), sps.WithWorkers(8))
//	res, err := m.SED(sps.Request{Params: thetas, Redshift: zs, Filters: set})
//
// Parameter vectors follow Model.ParameterNames. Evaluating one sample is
// synchronous; SED fans a batch out to WithWorkers goroutines and returns
// results in input order. The Model itself is read-only after New, so a
// physics Simulator is the only shared mutable state: wrap it with
// ssp.Serialize or ssp.NewPool.
package sps
