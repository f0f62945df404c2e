// SPDX-License-Identifier: MIT

package cosmo

import (
	"errors"
	"fmt"
)

var (
	// ErrRedshiftRange is returned for redshifts outside the tabulated grid.
	ErrRedshiftRange = errors.New("cosmo: redshift outside interpolation range")

	// ErrAgeRange is returned for ages outside the tabulated grid.
	ErrAgeRange = errors.New("cosmo: age outside interpolation range")

	// ErrNotFlat is returned when the density parameters do not sum to one.
	ErrNotFlat = errors.New("cosmo: density parameters must sum to 1")
)

func cosmoErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
