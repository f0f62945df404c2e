// SPDX-License-Identifier: MIT

package sfh

import (
	"errors"
	"fmt"
)

var (
	// ErrEpoch indicates that neither or both of redshift and age were given.
	ErrEpoch = errors.New("sfh: specify exactly one of redshift or age")

	// ErrNoResolver indicates a redshift epoch without an AgeResolver.
	ErrNoResolver = errors.New("sfh: redshift given but no age resolver configured")

	// ErrNoZHBasis indicates a metallicity-history variant without a ZH basis.
	ErrNoZHBasis = errors.New("sfh: metallicity-history variant requires a ZH basis")

	// ErrComponentCount indicates a basis whose size does not match the parameters.
	ErrComponentCount = errors.New("sfh: basis component count does not match parameters")

	// ErrVariant indicates parameters parsed for a different model variant.
	ErrVariant = errors.New("sfh: parameter variant does not match synthesizer")

	// ErrDegenerateSFH indicates a continuous history with no mass to normalise.
	ErrDegenerateSFH = errors.New("sfh: star-formation history integrates to zero")

	// ErrAveragingWindow indicates an AvgSFR window outside (0, tage).
	ErrAveragingWindow = errors.New("sfh: averaging window must be within (0, tage)")

	// ErrUniverseAge indicates a non-positive age of the universe.
	ErrUniverseAge = errors.New("sfh: age of the universe must be positive")
)

func sfhErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
