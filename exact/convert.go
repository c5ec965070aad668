// SPDX-License-Identifier: MIT

package exact

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/paratope/matrix"
	"gonum.org/v1/gonum/mat"
)

const (
	opFromMatrix = "FromMatrix"
	opFromGonum  = "FromGonum"
	opFromFloats = "FromFloatRows"
)

// FromMatrix converts a numeric matrix into its exact rational counterpart.
// Each entry goes through RatFromFloat, so the result equals the input
// bit-for-bit; no precision is lost and no rounding to "nice" fractions occurs.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrNonFinite, and any At error.
// Complexity: O(r*c).
func FromMatrix(m matrix.Matrix) (*RatDense, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", opFromMatrix, ErrNilMatrix)
	}

	return fromAt(opFromMatrix, m.Rows(), m.Cols(), m.At)
}

// FromGonum converts any gonum matrix (mat.Dense, mat.SymDense, views, ...)
// into a RatDense with the same exactness guarantee as FromMatrix.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrNonFinite.
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) (*RatDense, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()

	return fromAt(opFromGonum, r, c, func(i, j int) (float64, error) {
		return g.At(i, j), nil
	})
}

// FromFloatRows converts row slices of float64 directly.
// Errors: ErrInvalidDimensions, ErrDimensionMismatch (ragged), ErrNonFinite.
func FromFloatRows(rows [][]float64) (*RatDense, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", opFromFloats, ErrInvalidDimensions)
	}
	c := len(rows[0])
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", opFromFloats, i, len(row), c, ErrDimensionMismatch)
		}
	}

	return fromAt(opFromFloats, len(rows), c, func(i, j int) (float64, error) {
		return rows[i][j], nil
	})
}

// FromStringRows parses row slices of textual numbers ("1", "-0.5", "2/3").
// Errors: ErrInvalidDimensions, ErrDimensionMismatch (ragged), ErrParse.
func FromStringRows(rows [][]string) (*RatDense, error) {
	rr := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		v, err := VecFromStrings(row)
		if err != nil {
			return nil, fmt.Errorf("FromStringRows: row %d: %w", i, err)
		}
		rr[i] = v
	}

	return NewRatDenseFromRows(rr)
}

// fromAt is the shared conversion loop behind every numeric adapter.
func fromAt(op string, rows, cols int, at func(i, j int) (float64, error)) (*RatDense, error) {
	out, err := NewRatDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = at(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			r, err := RatFromFloat(v)
			if err != nil {
				return nil, fmt.Errorf("%s: (%d,%d): %w", op, i, j, err)
			}
			out.data[i*cols+j] = r
		}
	}

	return out, nil
}
