// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/popsed/matrix"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(2, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 4.5))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

func TestDense_CloneIsDeep(t *testing.T) {
	m, _ := matrix.NewDense(2, 2)
	require.NoError(t, m.Set(0, 0, 1))
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))

	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, "[1, 0]\n[0, 0]\n", m.String())
}

func TestMatVec(t *testing.T) {
	m, _ := matrix.NewDense(2, 3)
	vals := [][]float64{{1, 2, 3}, {4, 5, 6}}
	for i, row := range vals {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	y, err := matrix.MatVec(m, []float64{1, 0, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, y)

	_, err = matrix.MatVec(m, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(m, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.MatVec(nil, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
