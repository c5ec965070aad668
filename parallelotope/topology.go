// SPDX-License-Identifier: MIT

package parallelotope

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/paratope/exact"
)

// checkTopology verifies that the half-spaces bound a closed parallelotope.
// full is the caller's matrix before truncation.
//
// The slab of axis i is -b[i+dim] ≤ A_i·x ≤ b[i]; it is non-empty with
// positive width iff b[i] + b[i+dim] > 0. With a non-singular upper matrix
// the dim slabs then intersect in a bounded full-dimensional parallelotope.
func (p *Parallelotope) checkTopology(full *exact.RatDense) error {
	var width big.Rat
	for i := 0; i < p.dim; i++ {
		width.Add(p.b[i], p.b[i+p.dim])
		if width.Sign() <= 0 {
			return fmt.Errorf("%s: axis %d: upper %s, lower %s: %w",
				opTopology, i, p.b[i].RatString(), p.b[i+p.dim].RatString(), ErrDegenerate)
		}
	}

	if full.Rows() >= 2*p.dim {
		var neg big.Rat
		for i := 0; i < p.dim; i++ {
			up, err := full.Row(i)
			if err != nil {
				return fmt.Errorf("%s: %w", opTopology, err)
			}
			lo, err := full.Row(i + p.dim)
			if err != nil {
				return fmt.Errorf("%s: %w", opTopology, err)
			}
			for j := range up {
				if neg.Neg(up[j]).Cmp(lo[j]) != 0 {
					return fmt.Errorf("%s: row %d is not the negation of row %d: %w",
						opTopology, i+p.dim, i, ErrDegenerate)
				}
			}
		}
	}

	if _, err := p.BaseVertex(); err != nil {
		return fmt.Errorf("%s: %w", opTopology, err)
	}

	return nil
}
