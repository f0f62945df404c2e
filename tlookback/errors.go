// SPDX-License-Identifier: MIT

package tlookback

import "errors"

// ErrNonPositiveAge is returned by Edges when tage <= 0.
var ErrNonPositiveAge = errors.New("tlookback: galaxy age must be positive")
