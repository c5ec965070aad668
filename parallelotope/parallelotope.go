// SPDX-License-Identifier: MIT

package parallelotope

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/paratope/exact"
	"github.com/katalvlaran/paratope/matrix"
	"github.com/katalvlaran/paratope/symbolic"
	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping.
const (
	opNew        = "New"
	opNewExact   = "NewExact"
	opNewGonum   = "NewFromGonum"
	opBaseVertex = "BaseVertex"
	opVertex     = "Vertex"
	opGenerators = "Generators"
	opRep        = "GeneratorRep"
	opFlip       = "FlipOffset"
	opPoint      = "Point"
	opCorners    = "Corners"
	opTopology   = "topology"
)

// Parallelotope holds a half-space description of a parallelotope:
//
//	A_i · x ≤  b[i]        (upper facet of axis i)
//	A_i · x ≥ -b[i+dim]    (lower facet of axis i)
//
// together with one variable per axis. Only the first dim rows of A are kept.
// The value is immutable; derived quantities are recomputed on every call and
// methods are safe for concurrent use.
type Parallelotope struct {
	vars  []symbolic.Var
	dim   int
	upper *exact.RatDense // dim×dim upper-facet normals
	b     []*big.Rat      // 2·dim offsets: upper then lower
	opts  options
}

// New builds a Parallelotope from a numeric matrix and offset vector.
// Values are converted to exact rationals without loss before any solving.
//
// Inputs:
//   - A: at least dim rows, exactly dim columns; rows beyond dim are ignored
//     (unless WithTopologyCheck inspects them).
//   - b: exactly 2·dim finite offsets.
//   - vars: dim distinct variables; their order fixes column, generator and
//     output order.
//
// Errors:
//   - ErrMalformedInput (wrapping the matrix/symbolic cause).
//   - ErrDegenerate, ErrNoUniqueSolution (only with WithTopologyCheck).
func New(A matrix.Matrix, b []float64, vars []symbolic.Var, opts ...Option) (*Parallelotope, error) {
	dim := len(vars)
	if err := symbolic.ValidateVars(vars); err != nil {
		return nil, malformed(opNew, err)
	}
	if err := matrix.ValidateMinRows(A, dim, dim); err != nil {
		return nil, malformed(opNew, err)
	}
	if err := matrix.ValidateVecLen(b, 2*dim); err != nil {
		return nil, malformed(opNew, err)
	}
	if err := matrix.ValidateFiniteVec(b); err != nil {
		return nil, malformed(opNew, err)
	}

	ra, err := exact.FromMatrix(A)
	if err != nil {
		return nil, malformed(opNew, err)
	}
	rb, err := exact.VecFromFloats(b)
	if err != nil {
		return nil, malformed(opNew, err)
	}

	return NewExact(ra, rb, vars, opts...)
}

// NewFromGonum is New for a gonum matrix.
func NewFromGonum(A mat.Matrix, b []float64, vars []symbolic.Var, opts ...Option) (*Parallelotope, error) {
	if A == nil {
		return nil, malformed(opNewGonum, exact.ErrNilMatrix)
	}
	ra, err := exact.FromGonum(A)
	if err != nil {
		return nil, malformed(opNewGonum, err)
	}
	if err = matrix.ValidateFiniteVec(b); err != nil {
		return nil, malformed(opNewGonum, err)
	}
	rb, err := exact.VecFromFloats(b)
	if err != nil {
		return nil, malformed(opNewGonum, err)
	}

	return NewExact(ra, rb, vars, opts...)
}

// NewExact builds a Parallelotope from exact inputs. A and b are copied.
//
// Implementation:
//   - Stage 1: validate vars, shape of A (rows ≥ dim, cols == dim), len(b) == 2·dim.
//   - Stage 2: truncate A to its first dim rows; copy b.
//   - Stage 3: with WithTopologyCheck, verify slab widths, lower normals and
//     the upper system.
//
// Errors:
//   - ErrMalformedInput, plus ErrDegenerate / ErrNoUniqueSolution under WithTopologyCheck.
func NewExact(A *exact.RatDense, b []*big.Rat, vars []symbolic.Var, opts ...Option) (*Parallelotope, error) {
	// Stage 1: validate.
	if err := symbolic.ValidateVars(vars); err != nil {
		return nil, malformed(opNewExact, err)
	}
	dim := len(vars)
	if A == nil {
		return nil, malformed(opNewExact, exact.ErrNilMatrix)
	}
	if A.Rows() < dim {
		return nil, malformed(opNewExact, fmt.Errorf("A has %d rows, need at least %d: %w", A.Rows(), dim, exact.ErrDimensionMismatch))
	}
	if A.Cols() != dim {
		return nil, malformed(opNewExact, fmt.Errorf("A has %d columns for %d variables: %w", A.Cols(), dim, exact.ErrDimensionMismatch))
	}
	if len(b) != 2*dim {
		return nil, malformed(opNewExact, fmt.Errorf("b has %d offsets, want %d: %w", len(b), 2*dim, exact.ErrDimensionMismatch))
	}
	if err := exact.CheckVec(b); err != nil {
		return nil, malformed(opNewExact, err)
	}

	// Stage 2: store.
	upper, err := A.Head(dim)
	if err != nil {
		return nil, malformed(opNewExact, err)
	}
	p := &Parallelotope{
		vars:  append([]symbolic.Var(nil), vars...),
		dim:   dim,
		upper: upper,
		b:     exact.CloneVec(b),
		opts:  gatherOptions(opts...),
	}

	// Stage 3: optional topology check.
	if p.opts.topologyCheck {
		if err = p.checkTopology(A); err != nil {
			return nil, err
		}
	}
	p.opts.logger.Debug("parallelotope built",
		"dim", dim,
		"parallel", p.opts.parallelAxes,
		"topology_check", p.opts.topologyCheck)

	return p, nil
}

// malformed tags err with op and ErrMalformedInput, keeping the cause matchable.
func malformed(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrMalformedInput, err)
}

// Dim returns the number of axes.
func (p *Parallelotope) Dim() int { return p.dim }

// Vars returns a copy of the variable list.
func (p *Parallelotope) Vars() []symbolic.Var { return append([]symbolic.Var(nil), p.vars...) }

// Upper returns a copy of the dim×dim upper-facet matrix.
func (p *Parallelotope) Upper() *exact.RatDense { return p.upper.Clone() }

// Offsets returns a copy of the 2·dim offset vector.
func (p *Parallelotope) Offsets() []*big.Rat { return exact.CloneVec(p.b) }

// upperOffsets returns a fresh copy of b[0:dim].
func (p *Parallelotope) upperOffsets() []*big.Rat { return exact.CloneVec(p.b[:p.dim]) }
