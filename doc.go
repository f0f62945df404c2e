// Package popsed is a stellar-population-synthesis forward model: it turns a
// handful of physical parameters (stellar mass, star-formation history
// coefficients, metallicity, dust) into the spectrum and photometry a
// telescope would record for that galaxy.
//
// 🚀 What does the forward model do?
//
//	θ ──► star-formation history ──► rest-frame spectrum ──► observed SED
//	       (NMF basis, burst)        (SSP physics or         (redshift, vdisp,
//	                                  neural emulator)        resolution, filters)
//
// ✨ Key features:
//   - Flux-conserving rebinning that is exact regardless of grid resolution
//   - Non-parametric SFH from 4 NMF components plus an optional burst
//   - Constant or two-component metallicity history with clipping
//   - Physics backend over any SSP simulator, or a PCA neural emulator with
//     analytic Jacobians
//   - Planck15 cosmology interpolators, velocity-dispersion smoothing,
//     banded resolution matrices and AB photometry
//   - Concurrent batch evaluation with results in input order
//
// Packages:
//
//	units/        physical constants, magnitude/nanomaggy conversions, surviving mass
//	rebin/        flux-conserving trapezoidal rebinning
//	tlookback/    lookback-time bin edges
//	cosmo/        age(z), z(age), luminosity distance
//	basis/        NMF basis tables
//	params/       parameter vectors and variants
//	sfh/          star-formation and metallicity histories, derived quantities
//	spectrum/     wavelength/flux pairs
//	ssp/          physics backend over an SSP simulator
//	emulator/     PCA + MLP emulator backend
//	matrix/       dense and banded (resolution) matrices
//	filter/       bandpasses and synthetic photometry
//	observe/      redshift and instrument stages
//	sps/          the Model façade and batch SED evaluation
//
// Quick example:
//
//	lib, _ := basis.LoadDir("data/", false)
//	nmf, _ := emulator.LoadFile("nmf.json")
//	burst, _ := emulator.LoadFile("burst.json")
//	m, _ := sps.New(lib, sps.WithEmulator(nmf, burst))
//	res, _ := m.SED(sps.Request{
//		Params:   [][]float64{{10.5, 0.4, 0.3, 0.2, 0.1, 0.05, 1.2, -0.2, 0.3, 0.5, -0.1}},
//		Redshift: []float64{0.1},
//	})
//	fmt.Println(res.Wave[0][0], res.Flux[0][0])
//
// The popsedctl command (cmd/popsedctl) wraps the same model for CSV batches.
package popsed
