// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// DefaultNumDiagonals is the band width used when none is given.
const DefaultNumDiagonals = 11

const (
	opFromDiagonals = "FromDiagonals"
	opFromDense     = "FromDense"
	opFromSigmas    = "FromSigmas"
	opDot           = "Resolution.Dot"
)

// Resolution is a square banded matrix in DIA storage.
// Offsets run from +ndiag/2 down to -ndiag/2; Data[d] has one entry per column.
type Resolution struct {
	n       int
	offsets []int
	data    [][]float64
}

// Offsets returns the diagonal offsets for an odd ndiag, descending.
func Offsets(ndiag int) []int {
	half := ndiag / 2
	out := make([]int, ndiag)
	for d := range out {
		out[d] = half - d
	}

	return out
}

// FromDiagonals wraps ndiag×n diagonal data (copied).
//
// Errors: ErrInvalidDimensions, ErrEvenDiagonals, ErrDimensionMismatch (ragged rows).
func FromDiagonals(data [][]float64) (*Resolution, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, matrixErrorf(opFromDiagonals, ErrInvalidDimensions)
	}
	if len(data)%2 == 0 {
		return nil, matrixErrorf(opFromDiagonals, ErrEvenDiagonals)
	}
	n := len(data[0])
	r := &Resolution{n: n, offsets: Offsets(len(data)), data: make([][]float64, len(data))}
	for d, row := range data {
		if len(row) != n {
			return nil, matrixErrorf(opFromDiagonals, fmt.Errorf("diagonal %d: %w", d, ErrDimensionMismatch))
		}
		r.data[d] = append([]float64(nil), row...)
	}

	return r, nil
}

// FromDense keeps the ndiag central diagonals of a square matrix; entries
// outside the band are dropped. ndiag <= 0 selects DefaultNumDiagonals.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square), ErrEvenDiagonals.
func FromDense(m Matrix, ndiag int) (*Resolution, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opFromDense, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opFromDense, err)
	}
	if ndiag <= 0 {
		ndiag = DefaultNumDiagonals
	}
	if ndiag%2 == 0 {
		return nil, matrixErrorf(opFromDense, ErrEvenDiagonals)
	}

	n := m.Rows()
	r := &Resolution{n: n, offsets: Offsets(ndiag), data: make([][]float64, ndiag)}
	for d, off := range r.offsets {
		r.data[d] = make([]float64, n)
		for j := 0; j < n; j++ {
			i := j - off
			if i < 0 || i >= n {
				continue
			}
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opFromDense, err)
			}
			r.data[d][j] = v
		}
	}

	return r, nil
}

// FromSigmas builds a Gaussian line-spread resolution matrix: column j holds
// a pixel-integrated Gaussian of width sigmas[j] pixels, normalised to unit
// sum over the band.
//
//	w(o) = |erf((o+½)/(σ√2)) − erf((o−½)/(σ√2))| / 2
//
// Errors: ErrInvalidDimensions, ErrEvenDiagonals, ErrNonPositiveSigma.
func FromSigmas(sigmas []float64, ndiag int) (*Resolution, error) {
	if len(sigmas) == 0 {
		return nil, matrixErrorf(opFromSigmas, ErrInvalidDimensions)
	}
	if ndiag <= 0 {
		ndiag = DefaultNumDiagonals
	}
	if ndiag%2 == 0 {
		return nil, matrixErrorf(opFromSigmas, ErrEvenDiagonals)
	}

	n := len(sigmas)
	r := &Resolution{n: n, offsets: Offsets(ndiag), data: make([][]float64, ndiag)}
	for d := range r.data {
		r.data[d] = make([]float64, n)
	}
	for j, sigma := range sigmas {
		if !(sigma > 0) || math.IsInf(sigma, 0) {
			return nil, matrixErrorf(opFromSigmas, fmt.Errorf("pixel %d: %w", j, ErrNonPositiveSigma))
		}
		var sum float64
		for d, off := range r.offsets {
			o := float64(off)
			w := 0.5 * math.Abs(math.Erf((o+0.5)/(sigma*math.Sqrt2))-math.Erf((o-0.5)/(sigma*math.Sqrt2)))
			r.data[d][j] = w
			sum += w
		}
		for d := range r.data {
			r.data[d][j] /= sum
		}
	}

	return r, nil
}

// Size returns n for the n×n matrix.
func (r *Resolution) Size() int { return r.n }

// NumDiagonals returns the band width.
func (r *Resolution) NumDiagonals() int { return len(r.offsets) }

// Dot returns A·x.
//
// Complexity: O(n·ndiag).
func (r *Resolution) Dot(x []float64) ([]float64, error) {
	if err := ValidateVecLen(x, r.n); err != nil {
		return nil, matrixErrorf(opDot, err)
	}

	y := make([]float64, r.n)
	for d, off := range r.offsets {
		row := r.data[d]
		lo, hi := 0, r.n
		if off > 0 {
			hi = r.n - off
		} else {
			lo = -off
		}
		for i := lo; i < hi; i++ {
			j := i + off
			y[i] += row[j] * x[j]
		}
	}

	return y, nil
}

// ToDense materialises the band into an n×n Dense matrix.
func (r *Resolution) ToDense() *Dense {
	m := &Dense{r: r.n, c: r.n, data: make([]float64, r.n*r.n)}
	for d, off := range r.offsets {
		for j := 0; j < r.n; j++ {
			i := j - off
			if i >= 0 && i < r.n {
				m.data[i*r.n+j] = r.data[d][j]
			}
		}
	}

	return m
}
