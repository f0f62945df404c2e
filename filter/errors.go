// SPDX-License-Identifier: MIT

package filter

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySet indicates a Set without bandpasses.
	ErrEmptySet = errors.New("filter: no bandpasses")

	// ErrDuplicateName indicates two bandpasses with the same name in one Set.
	ErrDuplicateName = errors.New("filter: duplicate bandpass name")

	// ErrBadCurve indicates a malformed transmission curve.
	ErrBadCurve = errors.New("filter: transmission curve needs >= 2 increasing samples with non-negative response")

	// ErrLengthMismatch indicates wavelength and flux slices of different length.
	ErrLengthMismatch = errors.New("filter: wave and flux lengths differ")

	// ErrNoOverlap indicates a bandpass that does not overlap the spectrum.
	ErrNoOverlap = errors.New("filter: bandpass does not overlap spectrum")
)

func filterErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
