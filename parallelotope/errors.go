// SPDX-License-Identifier: MIT
// Package parallelotope: sentinel error set.
// Errors are wrapped with an operation tag ("BaseVertex: ...") and, where a
// lower layer detected the cause, with that cause too, so both
// errors.Is(err, ErrNoUniqueSolution) and errors.Is(err, exact.ErrInconsistent)
// hold for the same failure.

package parallelotope

import "errors"

var (
	// ErrNoUniqueSolution: the upper-facet system, or one of its facet-flipped
	// variants, is singular, inconsistent or underdetermined. There is no
	// recovery; the input is not a well-posed parallelotope.
	ErrNoUniqueSolution = errors.New("parallelotope: no unique solution")

	// ErrMalformedInput: the matrix has fewer than dim rows or not dim columns,
	// the offset vector is not 2·dim long, the variable list is invalid, or a
	// value is missing or non-finite.
	ErrMalformedInput = errors.New("parallelotope: malformed input")

	// ErrDegenerate: returned only under WithTopologyCheck when the half-spaces
	// do not bound a closed full-dimensional parallelotope.
	ErrDegenerate = errors.New("parallelotope: degenerate or unbounded shape")

	// ErrAxisOutOfRange: an axis index outside [0, dim).
	ErrAxisOutOfRange = errors.New("parallelotope: axis out of range")

	// ErrBadPoint: a unit-box point of the wrong length or outside [0,1]^dim.
	ErrBadPoint = errors.New("parallelotope: point outside the unit box")

	// ErrTooManyCorners: Corners was asked to enumerate more than 2^MaxCornerDim vertices.
	ErrTooManyCorners = errors.New("parallelotope: too many corners to enumerate")
)
