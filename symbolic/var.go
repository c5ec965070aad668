// SPDX-License-Identifier: MIT

package symbolic

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyName is returned for a variable with an empty or blank name.
	ErrEmptyName = errors.New("symbolic: empty variable name")

	// ErrDuplicateVar is returned when a variable list names the same variable twice.
	ErrDuplicateVar = errors.New("symbolic: duplicate variable")

	// ErrNoVars is returned when an expression is built over an empty variable list.
	ErrNoVars = errors.New("symbolic: empty variable list")

	// ErrUnknownVar is returned when a variable is not part of an expression.
	ErrUnknownVar = errors.New("symbolic: unknown variable")

	// ErrUnboundVar is returned by Eval when a variable has no value.
	ErrUnboundVar = errors.New("symbolic: unbound variable")

	// ErrLength is returned when a positional slice does not match the variable count.
	ErrLength = errors.New("symbolic: length mismatch")

	// ErrNilValue is returned for a nil *big.Rat operand.
	ErrNilValue = errors.New("symbolic: nil value")
)

// Var is a symbolic variable handle. Two Vars are the same variable iff
// their names are equal.
type Var string

// Name returns the variable name.
func (v Var) Name() string { return string(v) }

// String implements fmt.Stringer.
func (v Var) String() string { return string(v) }

// NewVars builds an ordered, validated variable list from names.
// Errors: ErrNoVars, ErrEmptyName, ErrDuplicateVar.
func NewVars(names ...string) ([]Var, error) {
	vars := make([]Var, len(names))
	for i, n := range names {
		vars[i] = Var(n)
	}
	if err := ValidateVars(vars); err != nil {
		return nil, err
	}

	return vars, nil
}

// MustVars is NewVars that panics on error. Intended for literals in tests and examples.
func MustVars(names ...string) []Var {
	vars, err := NewVars(names...)
	if err != nil {
		panic(err)
	}

	return vars
}

// ValidateVars checks that vars is non-empty, names are non-blank and distinct.
func ValidateVars(vars []Var) error {
	if len(vars) == 0 {
		return ErrNoVars
	}
	seen := make(map[Var]int, len(vars))
	for i, v := range vars {
		if strings.TrimSpace(string(v)) == "" {
			return fmt.Errorf("vars[%d]: %w", i, ErrEmptyName)
		}
		if j, ok := seen[v]; ok {
			return fmt.Errorf("vars[%d] and vars[%d] are %q: %w", j, i, v, ErrDuplicateVar)
		}
		seen[v] = i
	}

	return nil
}

// IndexOf returns the position of v in vars, or -1.
func IndexOf(vars []Var, v Var) int {
	for i, w := range vars {
		if w == v {
			return i
		}
	}

	return -1
}
