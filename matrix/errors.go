// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix or vector was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrEvenDiagonals indicates a banded matrix with an even number of diagonals.
	ErrEvenDiagonals = errors.New("matrix: number of diagonals must be odd")

	// ErrNonPositiveSigma indicates a Gaussian width <= 0.
	ErrNonPositiveSigma = errors.New("matrix: sigma must be positive")
)

// matrixErrorf wraps err with the public operation that detected it.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
