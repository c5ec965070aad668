// SPDX-License-Identifier: MIT

package exact

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

const (
	opParse    = "ParseRat"
	opFromF64  = "RatFromFloat"
	opVecSub   = "VecSub"
	opVecCheck = "vector"
)

// ParseRat parses an integer ("3"), a decimal ("-0.25", "1e-3") or a
// fraction ("1/3") into an exact rational. Surrounding blanks are ignored.
func ParseRat(s string) (*big.Rat, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil, fmt.Errorf("%s(%q): %w", opParse, s, ErrParse)
	}
	r, ok := new(big.Rat).SetString(t)
	if !ok {
		return nil, fmt.Errorf("%s(%q): %w", opParse, s, ErrParse)
	}

	return r, nil
}

// RatFromFloat returns the exact rational value of f.
// Every finite float64 is a dyadic rational, so the conversion never rounds:
// 0.1 becomes 3602879701896397/36028797018963968, not 1/10.
// Errors: ErrNonFinite for NaN and ±Inf.
func RatFromFloat(f float64) (*big.Rat, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%s(%v): %w", opFromF64, f, ErrNonFinite)
	}

	return new(big.Rat).SetFloat64(f), nil
}

// VecFromFloats converts a float64 vector entry-wise with RatFromFloat.
func VecFromFloats(xs []float64) ([]*big.Rat, error) {
	out := make([]*big.Rat, len(xs))
	for i, f := range xs {
		r, err := RatFromFloat(f)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = r
	}

	return out, nil
}

// VecFromStrings converts a vector of textual numbers with ParseRat.
func VecFromStrings(xs []string) ([]*big.Rat, error) {
	out := make([]*big.Rat, len(xs))
	for i, s := range xs {
		r, err := ParseRat(s)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = r
	}

	return out, nil
}

// VecFromInts converts integers to rationals. Handy for literals in tests and examples.
func VecFromInts(xs ...int64) []*big.Rat {
	out := make([]*big.Rat, len(xs))
	for i, v := range xs {
		out[i] = new(big.Rat).SetInt64(v)
	}

	return out
}

// CheckVec returns ErrNilValue if any entry of x is nil.
func CheckVec(x []*big.Rat) error {
	for i, v := range x {
		if v == nil {
			return fmt.Errorf("%s: index %d: %w", opVecCheck, i, ErrNilValue)
		}
	}

	return nil
}

// CloneVec deep-copies a rational vector. nil entries stay nil.
func CloneVec(x []*big.Rat) []*big.Rat {
	if x == nil {
		return nil
	}
	out := make([]*big.Rat, len(x))
	for i, v := range x {
		if v != nil {
			out[i] = new(big.Rat).Set(v)
		}
	}

	return out
}

// VecSub returns a - b component-wise as a fresh vector.
// Errors: ErrDimensionMismatch, ErrNilValue.
func VecSub(a, b []*big.Rat) ([]*big.Rat, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%s: len %d != %d: %w", opVecSub, len(a), len(b), ErrDimensionMismatch)
	}
	if err := CheckVec(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opVecSub, err)
	}
	if err := CheckVec(b); err != nil {
		return nil, fmt.Errorf("%s: %w", opVecSub, err)
	}
	out := make([]*big.Rat, len(a))
	for i := range a {
		out[i] = new(big.Rat).Sub(a[i], b[i])
	}

	return out, nil
}

// VecEqual reports whether a and b have the same length and equal entries.
// nil entries compare equal only to nil.
func VecEqual(a, b []*big.Rat) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		switch {
		case a[i] == nil || b[i] == nil:
			if a[i] != b[i] {
				return false
			}
		case a[i].Cmp(b[i]) != 0:
			return false
		}
	}

	return true
}

// FormatVec renders a vector as "(2, 3, 1/2)".
func FormatVec(x []*big.Rat) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range x {
		if i > 0 {
			b.WriteString(", ")
		}
		if v == nil {
			b.WriteString("<nil>")
			continue
		}
		b.WriteString(v.RatString())
	}
	b.WriteByte(')')

	return b.String()
}
