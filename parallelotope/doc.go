// Package parallelotope computes the generator representation of a
// parallelotope given by half-spaces.
//
// A dim-dimensional parallelotope is described by a matrix A whose first dim
// rows are the upper facet normals, and 2·dim offsets b:
//
//	A_i · x ≤  b[i]        i = 0..dim-1   (upper facets)
//	A_i · x ≥ -b[i+dim]                   (lower facets)
//
// The generator representation maps the unit box [0,1]^dim onto the shape:
//
//	x = q + Σ_j a_j · g_j
//
// where q (the base vertex) solves A·q = b[0:dim] and g_j = v_j - q, with v_j
// solving the same system after facet j is pushed to its lower offset.
// All solves are exact over the rationals (see package exact); a singular or
// inconsistent system fails with ErrNoUniqueSolution instead of producing a
// guessed vertex.
//
// Quick start:
//
//	A, _ := matrix.NewDenseFromRows([][]float64{{1, 0}, {0, 1}})
//	p, _ := parallelotope.New(A, []float64{2, 3, 0, 0}, symbolic.MustVars("x", "y"))
//	exprs, _ := p.GeneratorRep()
//	// exprs[0] = 2 - 2*x, exprs[1] = 3 - 3*y
//
// Options:
//
//	WithTopologyCheck()  // reject empty, flat or non-parallel descriptions
//	WithParallelAxes()   // solve the per-axis systems concurrently
//	WithLogger(l)        // slog debug records for every solve
//
// Complexity: GeneratorRep performs dim+1 exact solves of a dim×dim system,
// O(dim^4) rational operations overall.
package parallelotope
