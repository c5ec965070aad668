// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const ctxStack = "StackNegated"

// StackNegated returns the 2n×c matrix [U; -U] for an n×c matrix U.
// Row i and row i+n are the outward normals of the two parallel facets of
// axis i, which is the layout expected by parallelotope constructors.
//
// Errors: ErrNilMatrix, plus any At/Set error of the source.
// Complexity: O(n*c).
func StackNegated(upper Matrix) (*Dense, error) {
	if err := ValidateNotNil(upper); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxStack, err)
	}
	n, c := upper.Rows(), upper.Cols()
	out, err := NewDense(2*n, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxStack, err)
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < c; j++ {
			if v, err = upper.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", ctxStack, err)
			}
			out.data[i*c+j] = v
			// 0 - v keeps +0 for zero entries instead of -0.
			out.data[(i+n)*c+j] = 0 - v
		}
	}

	return out, nil
}
