// SPDX-License-Identifier: MIT

package sps

import (
	"errors"
	"fmt"
)

var (
	// ErrNoBackend indicates a spectrum request on a model built without
	// WithPhysics or WithEmulator.
	ErrNoBackend = errors.New("sps: no spectral backend configured")

	// ErrBackendConflict indicates both WithPhysics and WithEmulator were given.
	ErrBackendConflict = errors.New("sps: physics and emulator backends are exclusive")

	// ErrBatchSize indicates inconsistent batch lengths in a Request.
	ErrBatchSize = errors.New("sps: batch sizes do not match")

	// ErrEmptyBatch indicates a Request without parameter vectors.
	ErrEmptyBatch = errors.New("sps: empty batch")

	// ErrNilLibrary indicates New was called without a basis library.
	ErrNilLibrary = errors.New("sps: nil basis library")
)

func spsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
