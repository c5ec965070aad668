// SPDX-License-Identifier: MIT

package exact

import (
	"fmt"
	"math/big"
)

const (
	opSolve  = "Solve"
	opUnique = "Unique"
)

// Kind classifies the solution set of a linear system.
type Kind int

const (
	// NoSolution: the system is inconsistent; the solution set is empty.
	NoSolution Kind = iota

	// Unique: the solution set is exactly one point.
	Unique

	// Infinite: the system is consistent but rank-deficient.
	Infinite
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case NoSolution:
		return "none"
	case Unique:
		return "unique"
	case Infinite:
		return "infinite"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Solution is the outcome of Solve.
//   - Kind tells which of the three cases occurred.
//   - X holds the point when Kind == Unique, nil otherwise.
//   - Rank is the rank of the coefficient matrix.
type Solution struct {
	Kind Kind
	X    []*big.Rat
	Rank int
}

// Unique extracts the single solution point.
// It returns a fresh copy for Kind == Unique and fails loudly otherwise:
// ErrInconsistent for an empty solution set, ErrUnderdetermined when the
// set is not a single point. It never yields an arbitrary member.
func (s Solution) Unique() ([]*big.Rat, error) {
	switch s.Kind {
	case Unique:
		return CloneVec(s.X), nil
	case NoSolution:
		return nil, fmt.Errorf("%s: %w", opUnique, ErrInconsistent)
	case Infinite:
		return nil, fmt.Errorf("%s: rank %d: %w", opUnique, s.Rank, ErrUnderdetermined)
	default:
		return nil, fmt.Errorf("%s: unknown kind %v: %w", opUnique, s.Kind, ErrInconsistent)
	}
}

// Solve solves M·x = c exactly by Gauss–Jordan elimination over the rationals.
//
// Implementation:
//   - Stage 1: Validate M non-nil, len(c) == Rows(M), no nil entries.
//   - Stage 2: Build the augmented matrix [M | c] as private copies.
//   - Stage 3: For each column left→right, pick the first row at or below the
//     current one with a non-zero entry (exact arithmetic needs no magnitude
//     pivoting), swap it up, scale the pivot to 1 and clear the column in
//     every other row.
//   - Stage 4: Classify: a zero coefficient row with non-zero right-hand side
//     means NoSolution; rank < Cols(M) means Infinite; otherwise read X off
//     the reduced rows.
//
// Behavior highlights:
//   - Inputs are never mutated.
//   - Works for any m×n shape; square non-singular systems yield Unique.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNilValue (structural only; an
//     inconsistent or singular system is reported through Solution.Kind).
//
// Determinism:
//   - Fixed column-then-row traversal; identical inputs give identical results.
//
// Complexity:
//   - O(m·n·min(m,n)) rational operations, O(m·n) space.
func Solve(m *RatDense, c []*big.Rat) (Solution, error) {
	// Stage 1: validate.
	if m == nil {
		return Solution{}, fmt.Errorf("%s: %w", opSolve, ErrNilMatrix)
	}
	if len(c) != m.r {
		return Solution{}, fmt.Errorf("%s: len(c)=%d, rows=%d: %w", opSolve, len(c), m.r, ErrDimensionMismatch)
	}
	if err := CheckVec(c); err != nil {
		return Solution{}, fmt.Errorf("%s: %w", opSolve, err)
	}

	// Stage 2: augmented copy.
	rows, cols := m.r, m.c
	aug := make([][]*big.Rat, rows)
	for i := 0; i < rows; i++ {
		row := make([]*big.Rat, cols+1)
		for j := 0; j < cols; j++ {
			row[j] = new(big.Rat).Set(m.data[i*cols+j])
		}
		row[cols] = new(big.Rat).Set(c[i])
		aug[i] = row
	}

	// Stage 3: reduce to row echelon form.
	var (
		i, j, p  int
		tmp      big.Rat
		pivotCol = make([]int, 0, cols) // pivotCol[k] = column of the k-th pivot row
		rank     int
	)
	for col := 0; col < cols && rank < rows; col++ {
		p = -1
		for i = rank; i < rows; i++ {
			if aug[i][col].Sign() != 0 {
				p = i
				break
			}
		}
		if p < 0 {
			continue // free column
		}
		aug[rank], aug[p] = aug[p], aug[rank]

		inv := new(big.Rat).Inv(aug[rank][col])
		for j = col; j <= cols; j++ {
			aug[rank][j].Mul(aug[rank][j], inv)
		}

		for i = 0; i < rows; i++ {
			if i == rank || aug[i][col].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Set(aug[i][col])
			for j = col; j <= cols; j++ {
				tmp.Mul(f, aug[rank][j])
				aug[i][j].Sub(aug[i][j], &tmp)
			}
		}

		pivotCol = append(pivotCol, col)
		rank++
	}

	// Stage 4: classify. Rows at or below rank have all-zero coefficients.
	for i = rank; i < rows; i++ {
		if aug[i][cols].Sign() != 0 {
			return Solution{Kind: NoSolution, Rank: rank}, nil
		}
	}
	if rank < cols {
		return Solution{Kind: Infinite, Rank: rank}, nil
	}

	x := make([]*big.Rat, cols)
	for k, col := range pivotCol {
		x[col] = new(big.Rat).Set(aug[k][cols])
	}

	return Solution{Kind: Unique, X: x, Rank: rank}, nil
}

// SolveUnique is Solve followed by Solution.Unique.
func SolveUnique(m *RatDense, c []*big.Rat) ([]*big.Rat, error) {
	sol, err := Solve(m, c)
	if err != nil {
		return nil, err
	}

	return sol.Unique()
}
