// Package emulator evaluates PCA neural-network emulators of a stellar
// population synthesis code.
//
// 🚀 Forward pass of one Segment (one wavelength range):
//
//	h₀ = (x − paramShift) / paramScale
//	hₗ₊₁ = a(Wₗᵀ·hₗ + bₗ),   a(u) = (β + (1−β)·σ(α·u))·u   (per neuron α, β)
//	c   = W_Lᵀ·h_L + b_L                                   (linear output)
//	s   = (c·pcaScale + pcaShift)·PCABasis
//	ln L = s·spectrumScale + spectrumShift
//
// A Bundle concatenates segments covering consecutive wavelength ranges.
// Jacobian returns ∂ln L/∂x analytically so the emulator can sit inside
// gradient-based fitting without an autodiff framework.
//
// Backend maps model parameters onto emulator inputs: the Dirichlet SFH
// coefficients are converted to stick-breaking fractions, followed by the
// metallicity inputs, the dust parameters and the galaxy age. A second,
// smaller bundle emulates the single-age burst on (tburst, Z(tburst), dust2,
// dust_index); bursts older than its calibration range contribute zero and
// are logged.
//
// Bundles are read from JSON (see Decode for the document layout); all
// matrices use gonum/mat.
package emulator
