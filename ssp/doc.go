// Package ssp accumulates simple-stellar-population spectra from an external
// population-synthesis code into the spectrum of a composite population.
//
// The external code is a black box behind Simulator: given an age, a
// metallicity and three dust parameters it returns a rest-frame spectrum for
// one solar mass formed. Backend walks the lookback-time bins of the
// continuous star-formation history, asks the simulator for every bin that
// formed mass (bin 0 is always evaluated so the wavelength grid is known),
// adds the optional burst and scales the sum to the stellar mass.
//
// Many synthesis codes are stateful: parameters are set on a handle and a
// spectrum is then requested. LegacySimulator describes that shape; Serialize
// turns one such handle into a Simulator guarded by a mutex, and Pool spreads
// requests over several independent handles.
package ssp
