// SPDX-License-Identifier: MIT

package matrix

// ValidateNotNil returns ErrNilMatrix for a nil matrix.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return matrixErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return matrixErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare returns ErrDimensionMismatch unless Rows == Cols.
// Assumes m is non-nil.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return matrixErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures x is non-nil and has length n.
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return matrixErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return matrixErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}
