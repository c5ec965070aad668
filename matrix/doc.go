// Package matrix offers the numeric (float64) matrix used to describe
// half-space systems before they are converted to exact rationals.
//
// The matrix package provides:
//
//   - Matrix, a minimal interface (Rows, Cols, At, Set, Clone).
//   - Dense, a row-major implementation with bounds-checked accessors that
//     rejects NaN/±Inf, so every stored value has an exact rational form.
//   - Validators (ValidateNotNil, ValidateSquare, ValidateMinRows,
//     ValidateVecLen, ValidateFiniteVec) shared by higher-level packages.
//   - StackNegated, which builds the [U; -U] facet-normal layout of a
//     parallelotope from its upper normals.
//
// All errors are package sentinels; match them with errors.Is.
//
// See the exact package for the lossless conversion into rational matrices.
package matrix
