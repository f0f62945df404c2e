// SPDX-License-Identifier: MIT

package emulator

import (
	"errors"
	"fmt"
)

var (
	// ErrShape indicates inconsistent segment or bundle dimensions.
	ErrShape = errors.New("emulator: inconsistent dimensions")

	// ErrInputSize indicates an input vector of the wrong length.
	ErrInputSize = errors.New("emulator: wrong number of inputs")

	// ErrEmptyBundle indicates a bundle without segments.
	ErrEmptyBundle = errors.New("emulator: bundle has no segments")

	// ErrSchemaVersion indicates an unsupported bundle document version.
	ErrSchemaVersion = errors.New("emulator: unsupported bundle schema version")

	// ErrBurstTooYoung indicates a burst younger than the burst emulator supports.
	ErrBurstTooYoung = errors.New("emulator: burst lookback time below minimum supported age")

	// ErrNoBurstEmulator indicates a burst variant without a burst bundle.
	ErrNoBurstEmulator = errors.New("emulator: burst variant requires a burst bundle")

	// ErrNilSynthesizer indicates NewBackend without a synthesizer.
	ErrNilSynthesizer = errors.New("emulator: synthesizer is required")
)

func emulatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
