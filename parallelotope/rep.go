// SPDX-License-Identifier: MIT

package parallelotope

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/paratope/exact"
	"github.com/katalvlaran/paratope/symbolic"
)

// GeneratorRep returns the affine map from the unit box onto the shape:
//
//	expr[i] = base[i] + Σ_j gen[j][i] · vars[j],   vars[j] ∈ [0,1]
//
// one expression per coordinate axis, in variable order.
//
// Errors: ErrNoUniqueSolution.
func (p *Parallelotope) GeneratorRep() ([]symbolic.Affine, error) {
	base, err := p.BaseVertex()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRep, err)
	}
	gens, err := p.Generators(base)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRep, err)
	}

	exprs, err := assemble(p.vars, base, gens)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRep, err)
	}

	return exprs, nil
}

// assemble builds expr[i] with constant base[i] and coefficient gens[j][i] on vars[j].
func assemble(vars []symbolic.Var, base []*big.Rat, gens [][]*big.Rat) ([]symbolic.Affine, error) {
	dim := len(vars)
	exprs := make([]symbolic.Affine, dim)
	coeffs := make([]*big.Rat, dim)

	var (
		i, j int
		err  error
	)
	for i = 0; i < dim; i++ {
		for j = 0; j < dim; j++ {
			coeffs[j] = gens[j][i]
		}
		// NewAffineFrom copies, so coeffs can be reused across rows.
		if exprs[i], err = symbolic.NewAffineFrom(vars, base[i], coeffs); err != nil {
			return nil, err
		}
	}

	return exprs, nil
}

// Point evaluates the generator map at a unit-box point alpha ∈ [0,1]^dim:
// base + Σ_j alpha[j]·gen[j].
//
// Errors: ErrBadPoint, ErrNoUniqueSolution.
func (p *Parallelotope) Point(alpha []*big.Rat) ([]*big.Rat, error) {
	if len(alpha) != p.dim {
		return nil, fmt.Errorf("%s: %d coordinates for dim %d: %w", opPoint, len(alpha), p.dim, ErrBadPoint)
	}
	one := big.NewRat(1, 1)
	for j, a := range alpha {
		if a == nil || a.Sign() < 0 || a.Cmp(one) > 0 {
			return nil, fmt.Errorf("%s: coordinate %d: %w", opPoint, j, ErrBadPoint)
		}
	}

	base, err := p.BaseVertex()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPoint, err)
	}
	gens, err := p.Generators(base)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPoint, err)
	}

	return combine(base, gens, alpha), nil
}

// Corners enumerates all 2^dim vertices. Corner k takes alpha[j] = bit j of k,
// so Corners()[0] is the base vertex and Corners()[1<<i] is Vertex(i).
//
// Errors: ErrTooManyCorners (dim > MaxCornerDim), ErrNoUniqueSolution.
func (p *Parallelotope) Corners() ([][]*big.Rat, error) {
	if p.dim > MaxCornerDim {
		return nil, fmt.Errorf("%s: dim %d > %d: %w", opCorners, p.dim, MaxCornerDim, ErrTooManyCorners)
	}
	base, err := p.BaseVertex()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCorners, err)
	}
	gens, err := p.Generators(base)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCorners, err)
	}

	n := 1 << p.dim
	out := make([][]*big.Rat, n)
	alpha := make([]*big.Rat, p.dim)
	zero, one := new(big.Rat), big.NewRat(1, 1)
	for k := 0; k < n; k++ {
		for j := 0; j < p.dim; j++ {
			if k&(1<<j) != 0 {
				alpha[j] = one
			} else {
				alpha[j] = zero
			}
		}
		out[k] = combine(base, gens, alpha)
	}

	return out, nil
}

// combine returns base + Σ_j alpha[j]·gens[j] as a fresh vector.
func combine(base []*big.Rat, gens [][]*big.Rat, alpha []*big.Rat) []*big.Rat {
	out := exact.CloneVec(base)
	var tmp big.Rat
	for j, g := range gens {
		if alpha[j].Sign() == 0 {
			continue
		}
		for i := range out {
			tmp.Mul(alpha[j], g[i])
			out[i].Add(out[i], &tmp)
		}
	}

	return out
}
