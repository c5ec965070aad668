// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep constructors minimal by delegating nil/shape/finite checks here.
//   - Return sentinel errors tagged with the validator name so call sites can
//     wrap uniformly and callers can match with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrDimensionMismatch if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMinRows checks that m is non-nil, has exactly cols columns and at
// least minRows rows. This is the shape contract of a half-space normal matrix.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMinRows(m Matrix, minRows, cols int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() < minRows {
		return validatorErrorf(fmt.Sprintf("ValidateMinRows: %d rows < %d", m.Rows(), minRows), ErrDimensionMismatch)
	}
	if m.Cols() != cols {
		return validatorErrorf(fmt.Sprintf("ValidateMinRows: %d cols != %d", m.Cols(), cols), ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen checks that len(x) == n.
//
// Errors: ErrDimensionMismatch.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen: len %d != %d", len(x), n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateFiniteVec checks that every entry of x is finite.
//
// Errors: ErrNaNInf with the offending index.
// Complexity: O(n).
func ValidateFiniteVec(x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("ValidateFiniteVec: index %d", i), ErrNaNInf)
		}
	}

	return nil
}
