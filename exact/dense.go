// SPDX-License-Identifier: MIT

// Package exact - RatDense storage (row-major) of exact rationals.
//
// Purpose:
//   - Mirror matrix.Dense (flat row-major buffer, offset i*c + j) with *big.Rat cells.
//   - Own every cell: Set stores a copy and At returns a copy, so no caller can
//     alias and mutate the internal state through a returned pointer.
//
// Complexity quicksheet:
//   - NewRatDense: O(r*c); At/Set: O(1) plus the copy of one rational;
//     Clone/Head: O(r*c); MulVec: O(r*c).

package exact

import (
	"fmt"
	"math/big"
	"strings"
)

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxHead   = "Head"
	ctxMulVec = "MulVec"
	ctxRows   = "NewRatDenseFromRows"
)

// ratErrorf wraps an error with a uniform RatDense context and callsite indices.
func ratErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("RatDense.%s(%d,%d): %w", method, row, col, err)
}

// RatDense is a dense row-major matrix of exact rationals.
type RatDense struct {
	r, c int
	data []*big.Rat // len == r*c, never nil entries
}

var _ fmt.Stringer = (*RatDense)(nil)

// NewRatDense creates an r×c zero matrix.
// Errors: ErrInvalidDimensions.
func NewRatDense(rows, cols int) (*RatDense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	data := make([]*big.Rat, rows*cols)
	for i := range data {
		data[i] = new(big.Rat)
	}

	return &RatDense{r: rows, c: cols, data: data}, nil
}

// NewRatDenseFromRows builds a RatDense from equally sized rows, copying every value.
// Errors: ErrInvalidDimensions, ErrDimensionMismatch (ragged rows), ErrNilValue.
func NewRatDenseFromRows(rows [][]*big.Rat) (*RatDense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxRows, ErrInvalidDimensions)
	}
	m, err := NewRatDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxRows, err)
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxRows, i, len(row), m.c, ErrDimensionMismatch)
		}
		for j, v := range row {
			if err = m.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("%s: %w", ctxRows, err)
			}
		}
	}

	return m, nil
}

// NewRatDenseFromInts is a literal-friendly constructor for integer matrices.
func NewRatDenseFromInts(rows [][]int64) (*RatDense, error) {
	rr := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		rr[i] = VecFromInts(row...)
	}

	return NewRatDenseFromRows(rr)
}

// Rows returns the row count.
func (m *RatDense) Rows() int { return m.r }

// Cols returns the column count.
func (m *RatDense) Cols() int { return m.c }

func (m *RatDense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns a copy of the value at (row, col).
// Errors: ErrOutOfRange.
func (m *RatDense) At(row, col int) (*big.Rat, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, ratErrorf(ctxAt, row, col, err)
	}

	return new(big.Rat).Set(m.data[off]), nil
}

// Set stores a copy of v at (row, col).
// Errors: ErrOutOfRange, ErrNilValue.
func (m *RatDense) Set(row, col int, v *big.Rat) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return ratErrorf(ctxSet, row, col, err)
	}
	if v == nil {
		return ratErrorf(ctxSet, row, col, ErrNilValue)
	}
	m.data[off].Set(v)

	return nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange.
func (m *RatDense) Row(i int) ([]*big.Rat, error) {
	if i < 0 || i >= m.r {
		return nil, ratErrorf("Row", i, 0, ErrOutOfRange)
	}

	return CloneVec(m.data[i*m.c : (i+1)*m.c]), nil
}

// Clone returns an independent deep copy.
func (m *RatDense) Clone() *RatDense {
	return &RatDense{r: m.r, c: m.c, data: CloneVec(m.data)}
}

// Head returns a copy of the first n rows.
// Errors: ErrInvalidDimensions (n<=0), ErrOutOfRange (n>Rows).
func (m *RatDense) Head(n int) (*RatDense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("RatDense.%s(%d): %w", ctxHead, n, ErrInvalidDimensions)
	}
	if n > m.r {
		return nil, fmt.Errorf("RatDense.%s(%d): %d rows: %w", ctxHead, n, m.r, ErrOutOfRange)
	}

	return &RatDense{r: n, c: m.c, data: CloneVec(m.data[:n*m.c])}, nil
}

// MulVec computes y = M·x.
// Errors: ErrDimensionMismatch, ErrNilValue.
func (m *RatDense) MulVec(x []*big.Rat) ([]*big.Rat, error) {
	if len(x) != m.c {
		return nil, fmt.Errorf("RatDense.%s: len(x)=%d, cols=%d: %w", ctxMulVec, len(x), m.c, ErrDimensionMismatch)
	}
	if err := CheckVec(x); err != nil {
		return nil, fmt.Errorf("RatDense.%s: %w", ctxMulVec, err)
	}

	var (
		i, j int
		tmp  big.Rat
	)
	y := make([]*big.Rat, m.r)
	for i = 0; i < m.r; i++ {
		acc := new(big.Rat)
		for j = 0; j < m.c; j++ {
			tmp.Mul(m.data[i*m.c+j], x[j])
			acc.Add(acc, &tmp)
		}
		y[i] = acc
	}

	return y, nil
}

// Equal reports whether m and o have the same shape and entries.
func (m *RatDense) Equal(o *RatDense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}

	return VecEqual(m.data, o.data)
}

// String renders rows as lines of comma-separated rationals ("[1, 1/2]\n").
func (m *RatDense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteString("[")
		for j = 0; j < m.c; j++ {
			b.WriteString(m.data[i*m.c+j].RatString())
			if j+1 < m.c {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
