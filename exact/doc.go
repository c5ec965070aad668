// Package exact is the exact rational backend: matrices of *big.Rat,
// lossless conversion from numeric inputs, and a linear-system solver whose
// result distinguishes a unique point from an empty or infinite solution set.
//
// Conversions:
//
//	FromMatrix(matrix.Matrix)   // numeric Dense from the matrix package
//	FromGonum(mat.Matrix)       // any gonum matrix
//	FromFloatRows / FromStringRows / VecFromFloats / VecFromStrings
//
// Every finite float64 is a dyadic rational, so conversion is exact: what
// the caller stored is exactly what the solver sees.
//
// Solving:
//
//	sol, err := exact.Solve(M, c)  // err only for structural misuse
//	switch sol.Kind {
//	case exact.Unique:     // sol.X is the point
//	case exact.NoSolution: // inconsistent
//	case exact.Infinite:   // rank-deficient
//	}
//
// Solution.Unique extracts the point or returns ErrInconsistent /
// ErrUnderdetermined; it never picks an arbitrary member of a larger set.
package exact
