// SPDX-License-Identifier: MIT

package sfh

import "fmt"

type epochKind uint8

const (
	epochRedshift epochKind = iota + 1
	epochAge
)

// Epoch fixes when a galaxy is observed.
type Epoch struct {
	kind  epochKind
	value float64
}

// Redshift observes the galaxy at redshift z.
func Redshift(z float64) Epoch { return Epoch{kind: epochRedshift, value: z} }

// Age observes the galaxy at age t in Gyr.
func Age(t float64) Epoch { return Epoch{kind: epochAge, value: t} }

// resolve returns the galaxy age for exactly one epoch.
func (s *Synthesizer) resolve(epochs []Epoch) (float64, error) {
	if len(epochs) != 1 || epochs[0].kind == 0 {
		return 0, fmt.Errorf("got %d epochs: %w", len(epochs), ErrEpoch)
	}

	e := epochs[0]
	if e.kind == epochAge {
		return e.value, nil
	}
	if s.ages == nil {
		return 0, ErrNoResolver
	}

	return s.ages.AgeAt(e.value)
}
