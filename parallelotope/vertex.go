// SPDX-License-Identifier: MIT

package parallelotope

import (
	"fmt"
	"math/big"
	"runtime"

	"github.com/katalvlaran/paratope/exact"
	"golang.org/x/sync/errgroup"
)

// BaseVertex returns the unique solution of A_upper · x = b[0:dim], the
// vertex where all upper facets meet, in variable order.
//
// Errors:
//   - ErrNoUniqueSolution wrapping exact.ErrInconsistent or exact.ErrUnderdetermined.
func (p *Parallelotope) BaseVertex() ([]*big.Rat, error) {
	return p.solve(opBaseVertex, p.upperOffsets())
}

// FlipOffset returns a copy of upper with position axis replaced by -lower.
// It encodes "push facet axis to its opposite side": solving the same
// coefficient matrix against the result yields the vertex adjacent to the
// base vertex along that axis.
//
// Errors: ErrAxisOutOfRange, ErrMalformedInput (nil entries).
func FlipOffset(upper []*big.Rat, axis int, lower *big.Rat) ([]*big.Rat, error) {
	if axis < 0 || axis >= len(upper) {
		return nil, fmt.Errorf("%s: axis %d of %d: %w", opFlip, axis, len(upper), ErrAxisOutOfRange)
	}
	if err := exact.CheckVec(upper); err != nil {
		return nil, malformed(opFlip, err)
	}
	if lower == nil {
		return nil, malformed(opFlip, exact.ErrNilValue)
	}
	out := exact.CloneVec(upper)
	out[axis] = new(big.Rat).Neg(lower)

	return out, nil
}

// Vertex returns the vertex obtained by flipping facet axis to its lower
// offset while keeping every other upper facet.
//
// Errors: ErrAxisOutOfRange, ErrNoUniqueSolution.
func (p *Parallelotope) Vertex(axis int) ([]*big.Rat, error) {
	if axis < 0 || axis >= p.dim {
		return nil, fmt.Errorf("%s(%d): %w", opVertex, axis, ErrAxisOutOfRange)
	}
	rhs, err := FlipOffset(p.upperOffsets(), axis, p.b[axis+p.dim])
	if err != nil {
		return nil, fmt.Errorf("%s(%d): %w", opVertex, axis, err)
	}

	return p.solve(fmt.Sprintf("%s(%d)", opVertex, axis), rhs)
}

// Generators returns, for every axis j, vertex_j - base. Generator j is the
// edge leaving base along facet j; it is generally not axis-aligned.
//
// Errors:
//   - ErrMalformedInput if base is not a dim-vector.
//   - ErrNoUniqueSolution from any per-axis solve.
func (p *Parallelotope) Generators(base []*big.Rat) ([][]*big.Rat, error) {
	if len(base) != p.dim {
		return nil, malformed(opGenerators, fmt.Errorf("base has %d entries, want %d: %w", len(base), p.dim, exact.ErrDimensionMismatch))
	}
	if err := exact.CheckVec(base); err != nil {
		return nil, malformed(opGenerators, err)
	}

	vertices, err := p.vertices()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opGenerators, err)
	}

	gens := make([][]*big.Rat, p.dim)
	for i, v := range vertices {
		if gens[i], err = exact.VecSub(v, base); err != nil {
			return nil, fmt.Errorf("%s: %w", opGenerators, err)
		}
	}

	return gens, nil
}

// vertices computes Vertex(i) for every axis, sequentially or concurrently.
func (p *Parallelotope) vertices() ([][]*big.Rat, error) {
	out := make([][]*big.Rat, p.dim)

	if !p.opts.parallelAxes {
		var err error
		for i := 0; i < p.dim; i++ {
			if out[i], err = p.Vertex(i); err != nil {
				return nil, err
			}
		}

		return out, nil
	}

	// Each goroutine owns out[i]; the shared matrix and offsets are only read.
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < p.dim; i++ {
		i := i
		g.Go(func() error {
			v, err := p.Vertex(i)
			if err != nil {
				return err
			}
			out[i] = v

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// solve runs the exact solver on the upper matrix and extracts the unique point.
func (p *Parallelotope) solve(op string, rhs []*big.Rat) ([]*big.Rat, error) {
	sol, err := exact.Solve(p.upper, rhs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	x, err := sol.Unique()
	if err != nil {
		p.opts.logger.Debug("no unique vertex",
			"op", op,
			"kind", sol.Kind.String(),
			"rank", sol.Rank,
			"dim", p.dim)

		return nil, fmt.Errorf("%s: %w: %w", op, ErrNoUniqueSolution, err)
	}
	p.opts.logger.Debug("vertex solved", "op", op, "vertex", exact.FormatVec(x))

	return x, nil
}
