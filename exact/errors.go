// SPDX-License-Identifier: MIT
// Package exact: sentinel error set.
// Every message is prefixed with "exact: ..."; context is attached at the
// detection site with fmt.Errorf("%s: %w", op, ErrX) and callers match with
// errors.Is.

package exact

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("exact: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("exact: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. a
	// right-hand side whose length differs from the row count.
	ErrDimensionMismatch = errors.New("exact: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix was passed in.
	ErrNilMatrix = errors.New("exact: nil matrix")

	// ErrNilValue indicates a nil *big.Rat where a number is required.
	ErrNilValue = errors.New("exact: nil value")

	// ErrNonFinite is returned when a NaN or ±Inf float has no rational form.
	ErrNonFinite = errors.New("exact: value is not finite")

	// ErrParse is returned when a string is neither an integer, a decimal nor a fraction.
	ErrParse = errors.New("exact: cannot parse number")

	// ErrInconsistent reports a linear system with an empty solution set.
	ErrInconsistent = errors.New("exact: system has no solution")

	// ErrUnderdetermined reports a linear system whose solution set is not a single point.
	ErrUnderdetermined = errors.New("exact: system has infinitely many solutions")
)
