// SPDX-License-Identifier: MIT

package rebin

import (
	"errors"
	"fmt"
)

var (
	// ErrEdgesOutOfRange is returned when target edges leave [x[0], x[len-1]].
	ErrEdgesOutOfRange = errors.New("rebin: edges must be within input x range")

	// ErrLengthMismatch indicates len(x) != len(y).
	ErrLengthMismatch = errors.New("rebin: x and y must have the same length")

	// ErrTooFewPoints indicates fewer than two samples, edges or centres.
	ErrTooFewPoints = errors.New("rebin: at least two points are required")

	// ErrNotIncreasing indicates x or edges are not strictly increasing.
	ErrNotIncreasing = errors.New("rebin: values must be strictly increasing")
)

// rebinErrorf tags err with the public entry point that detected it.
func rebinErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
