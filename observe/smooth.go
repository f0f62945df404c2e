// SPDX-License-Identifier: MIT

package observe

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/katalvlaran/popsed/rebin"
	"github.com/katalvlaran/popsed/spectrum"
	"github.com/katalvlaran/popsed/units"
)

const (
	// PixelKms is the log-λ pixel size used for smoothing, in km/s.
	PixelKms = 10.0

	// EdgeMargin is trimmed from both ends of the input before the log-λ grid
	// is laid out, in Å.
	EdgeMargin = 10.0

	// KernelTruncate is the kernel half-width in units of σ.
	KernelTruncate = 4.0
)

// LogGrid returns 10^(a + k·Δ) for k = 0.. while below 10^b, with
// a = log10(lo+EdgeMargin), b = log10(hi-EdgeMargin), Δ = PixelKms/c/ln10.
func LogGrid(lo, hi float64) []float64 {
	start := math.Log10(lo + EdgeMargin)
	stop := math.Log10(hi - EdgeMargin)
	step := PixelKms / units.LightSpeedKms / units.Ln10
	if !(stop > start) {
		return nil
	}

	n := int(math.Ceil((stop - start) / step))
	out := make([]float64, n)
	for k := range out {
		out[k] = math.Pow(10, start+float64(k)*step)
	}

	return out
}

// Smooth broadens sp by a velocity dispersion vdisp (km/s). The result lives
// on the LogGrid of sp. vdisp <= 0 returns a copy of sp.
//
// Errors: ErrTooNarrow, rebin errors.
func Smooth(sp spectrum.Spectrum, vdisp float64) (spectrum.Spectrum, error) {
	const op = "Smooth"
	if !(vdisp > 0) {
		return sp.Clone(), nil
	}
	if sp.Len() < 2 {
		return spectrum.Spectrum{}, observeErrorf(op, ErrTooNarrow)
	}

	wlog := LogGrid(sp.Wave[0], sp.Wave[sp.Len()-1])
	if len(wlog) < 2 {
		return spectrum.Spectrum{}, observeErrorf(op, ErrTooNarrow)
	}
	flux, err := rebin.ToGrid(sp.Wave, sp.Flux, wlog)
	if err != nil {
		return spectrum.Spectrum{}, observeErrorf(op, err)
	}

	return spectrum.Spectrum{Wave: wlog, Flux: GaussianFilter(flux, vdisp/PixelKms)}, nil
}

// GaussianKernel returns normalised Gaussian weights for offsets -r..r,
// r = int(KernelTruncate·σ + ½).
func GaussianKernel(sigma float64) []float64 {
	r := int(KernelTruncate*sigma + 0.5)
	k := make([]float64, 2*r+1)
	var sum float64
	for i := range k {
		x := float64(i - r)
		k[i] = math.Exp(-0.5 * x * x / (sigma * sigma))
		sum += k[i]
	}
	for i := range k {
		k[i] /= sum
	}

	return k
}

// GaussianFilter convolves x with GaussianKernel(sigma), reflecting the
// signal about its ends (d c b a | a b c d | d c b a).
//
// Implementation:
//   - Stage 1: pad x by r reflected samples on both sides.
//   - Stage 2: zero-pad signal and kernel to n+4r so the circular product
//     equals the linear convolution; multiply spectra.
//   - Stage 3: inverse transform, rescale by 1/N and read the centred window.
//
// Complexity: O(N log N), N = len(x)+4r.
func GaussianFilter(x []float64, sigma float64) []float64 {
	kern := GaussianKernel(sigma)
	r := len(kern) / 2
	n := len(x)
	if r == 0 || n == 0 {
		return append([]float64(nil), x...)
	}

	size := n + 4*r
	sig := make([]float64, size)
	for i := 0; i < n+2*r; i++ {
		sig[i] = x[reflect(i-r, n)]
	}
	ker := make([]float64, size)
	copy(ker, kern)

	fft := fourier.NewFFT(size)
	a := fft.Coefficients(nil, sig)
	b := fft.Coefficients(nil, ker)
	for i := range a {
		a[i] *= b[i]
	}
	conv := fft.Sequence(nil, a)

	out := make([]float64, n)
	scale := 1 / float64(size)
	for i := range out {
		out[i] = conv[2*r+i] * scale
	}

	return out
}

// reflect maps any index onto [0, n) with half-sample symmetric reflection.
func reflect(i, n int) int {
	period := 2 * n
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - 1 - i
	}

	return i
}

// smoothErr keeps the stage tag consistent for Pipeline.
func smoothErr(vdisp float64, err error) error {
	return fmt.Errorf("vdisp=%g: %w", vdisp, err)
}
