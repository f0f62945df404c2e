// SPDX-License-Identifier: MIT

package basis

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// Basis is an immutable set of components on a common lookback-time axis.
// It is safe for concurrent use.
type Basis struct {
	t     []float64
	comps [][]float64
	fits  []interp.PiecewiseLinear
}

// New builds a Basis from a time axis and its components.
// A decreasing axis is flipped together with every component.
//
// Errors: ErrEmptyTable, ErrShape, ErrNotMonotonic.
func New(t []float64, comps [][]float64) (*Basis, error) {
	const op = "New"
	if len(t) < 2 || len(comps) == 0 {
		return nil, basisErrorf(op, ErrEmptyTable)
	}
	for k, c := range comps {
		if len(c) != len(t) {
			return nil, basisErrorf(op, fmt.Errorf("component %d: %w", k, ErrShape))
		}
	}

	b := &Basis{t: append([]float64(nil), t...), comps: make([][]float64, len(comps))}
	for k, c := range comps {
		b.comps[k] = append([]float64(nil), c...)
	}

	switch {
	case increasing(b.t):
	case increasing(reversed(b.t)):
		b.t = reversed(b.t)
		for k := range b.comps {
			b.comps[k] = reversed(b.comps[k])
		}
	default:
		return nil, basisErrorf(op, ErrNotMonotonic)
	}

	b.fits = make([]interp.PiecewiseLinear, len(b.comps))
	for k := range b.comps {
		if err := b.fits[k].Fit(b.t, b.comps[k]); err != nil {
			return nil, basisErrorf(op, err)
		}
	}

	return b, nil
}

// Len returns the number of components.
func (b *Basis) Len() int { return len(b.comps) }

// Times returns a copy of the increasing time axis.
func (b *Basis) Times() []float64 { return append([]float64(nil), b.t...) }

// Eval evaluates component k at lookback time t. Outside the tabulated range
// the first or last segment is extended linearly.
func (b *Basis) Eval(k int, t float64) float64 {
	n := len(b.t)
	switch {
	case t < b.t[0]:
		return extrapolate(b.t[0], b.t[1], b.comps[k][0], b.comps[k][1], t)
	case t > b.t[n-1]:
		return extrapolate(b.t[n-2], b.t[n-1], b.comps[k][n-2], b.comps[k][n-1], t)
	}

	return b.fits[k].Predict(t)
}

// Combine returns Σ_k coeffs[k]·Eval(k, t).
//
// Errors: ErrCoefficientCount.
func (b *Basis) Combine(coeffs []float64, t float64) (float64, error) {
	if len(coeffs) != len(b.comps) {
		return 0, basisErrorf("Combine", ErrCoefficientCount)
	}

	var sum float64
	for k, c := range coeffs {
		sum += c * b.Eval(k, t)
	}

	return sum, nil
}

// Sample evaluates every component on ts; out[k][i] = Eval(k, ts[i]).
//
// Complexity: O(K·N·log T).
func (b *Basis) Sample(ts []float64) [][]float64 {
	out := make([][]float64, len(b.comps))
	for k := range b.comps {
		row := make([]float64, len(ts))
		for i, t := range ts {
			row[i] = b.Eval(k, t)
		}
		out[k] = row
	}

	return out
}

func extrapolate(x0, x1, y0, y1, x float64) float64 {
	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}

func increasing(v []float64) bool {
	for i := 1; i < len(v); i++ {
		if !(v[i] > v[i-1]) {
			return false
		}
	}

	return true
}

func reversed(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[len(v)-1-i] = x
	}

	return out
}
