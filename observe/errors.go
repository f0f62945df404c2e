// SPDX-License-Identifier: MIT

package observe

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeRedshift indicates z < 0.
	ErrNegativeRedshift = errors.New("observe: redshift must be >= 0")

	// ErrDistance indicates a non-positive luminosity distance at z > 0.
	ErrDistance = errors.New("observe: luminosity distance must be > 0")

	// ErrResolutionSize indicates resolution segments that do not tile the spectrum.
	ErrResolutionSize = errors.New("observe: resolution matrix sizes do not match spectrum length")

	// ErrTooNarrow indicates a spectrum too short to resample for smoothing.
	ErrTooNarrow = errors.New("observe: spectrum too narrow to smooth")

	// ErrNoGrid indicates a resolution matrix given without an output grid.
	ErrNoGrid = errors.New("observe: resolution requires an output wavelength grid")

	// ErrRestFrame indicates photometry requested on a z = 0 (Lsun/Å) spectrum.
	ErrRestFrame = errors.New("observe: photometry requires redshift > 0")
)

func observeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
