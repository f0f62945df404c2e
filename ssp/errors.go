// SPDX-License-Identifier: MIT

package ssp

import (
	"errors"
	"fmt"
)

var (
	// ErrBurstTooYoung indicates a burst younger than the simulator supports.
	ErrBurstTooYoung = errors.New("ssp: burst lookback time below minimum supported age")

	// ErrGridChanged indicates the simulator returned a different wavelength grid.
	ErrGridChanged = errors.New("ssp: simulator wavelength grid changed between calls")

	// ErrNilSimulator indicates a missing simulator or synthesizer.
	ErrNilSimulator = errors.New("ssp: simulator and synthesizer are required")

	// ErrEmptyPool indicates NewPool without handles.
	ErrEmptyPool = errors.New("ssp: pool needs at least one handle")
)

func sspErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
