// SPDX-License-Identifier: MIT

package basis

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTable indicates a table without numeric rows.
	ErrEmptyTable = errors.New("basis: table has no rows")

	// ErrRaggedTable indicates rows of different widths.
	ErrRaggedTable = errors.New("basis: table rows differ in length")

	// ErrShape indicates a component whose length differs from the time axis.
	ErrShape = errors.New("basis: component length does not match time axis")

	// ErrNotMonotonic indicates a time axis that is neither increasing nor decreasing.
	ErrNotMonotonic = errors.New("basis: time axis must be strictly monotonic")

	// ErrCoefficientCount indicates len(coeffs) != number of components.
	ErrCoefficientCount = errors.New("basis: coefficient count does not match components")

	// ErrMissingSFH indicates a library without an SFH basis.
	ErrMissingSFH = errors.New("basis: SFH basis is required")
)

func basisErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
