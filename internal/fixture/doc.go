// Package fixture provides small synthetic inputs shared by the package
// tests: an analytic NMF basis library, a flat-spectrum SSP simulator and an
// emulator bundle that reproduces that simulator exactly.
//
// Nothing here is physically calibrated; the values only need to be smooth,
// positive and cheap.
package fixture
