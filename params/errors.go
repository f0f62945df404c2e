// SPDX-License-Identifier: MIT

package params

import "errors"

var (
	// ErrParamCount indicates a vector whose length does not match the variant.
	ErrParamCount = errors.New("params: wrong number of parameters")

	// ErrCoefficientSum indicates SFH coefficients that do not sum to 1.
	ErrCoefficientSum = errors.New("params: SFH basis coefficients must sum to 1")

	// ErrBurstTime indicates a negative or non-finite burst time.
	ErrBurstTime = errors.New("params: burst lookback time must be finite and >= 0")

	// ErrBurstFraction indicates fburst outside [0, 1].
	ErrBurstFraction = errors.New("params: burst fraction must be within [0, 1]")
)
