// Package paratope turns half-space descriptions of parallelotopes into
// generator representations, exactly.
//
// 🚀 What is paratope?
//
//	A small, deterministic library that brings together:
//		• matrix:        float64 Dense matrix, validators, [U; -U] stacking
//		• exact:         big.Rat matrices and a Gauss–Jordan solver that
//		                 reports unique / none / infinite instead of guessing
//		• symbolic:      named variables and immutable affine expressions
//		• parallelotope: base vertex, facet flips, generators, GeneratorRep
//
// ✨ Why choose paratope?
//
//   - Exact: floats are converted to rationals without rounding; no epsilon
//   - Loud failures: singular systems return ErrNoUniqueSolution, never a vertex
//   - Concurrent: per-axis solves can run on an errgroup (WithParallelAxes)
//   - Pluggable input: matrix.Dense, gonum mat.Matrix or rationals directly
//
// Layout:
//
//	matrix/        numeric input matrix + shape/finite validators
//	exact/         rational matrices, conversions, exact linear solve
//	symbolic/      Var, Affine (constant + Σ coeff·var)
//	parallelotope/ the half-space → generator transformation
//	cmd/genrep/    CLI: YAML/JSON in, text/YAML out
//
// Quick ASCII example:
//
//	      y
//	    3 ┼───────┐        A = I,  b = [2, 3, 0, 0]
//	      │       │
//	      │       │        x = 2 - 2·a
//	    0 ┼───────┼── x    y = 3 - 3·b        a, b ∈ [0, 1]
//	      0       2
//
//	go get github.com/katalvlaran/paratope/parallelotope
package paratope
