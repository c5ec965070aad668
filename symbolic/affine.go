// SPDX-License-Identifier: MIT

package symbolic

import (
	"encoding"
	"fmt"
	"math/big"
	"strings"
)

// Affine is an exact affine form c0 + Σ c_j·v_j over a fixed, ordered
// variable list. Values are immutable: every operation returns a new
// Affine and accessors hand out copies.
//
// The zero Affine has no variables and evaluates to 0; build real
// expressions with NewAffine or NewAffineFrom.
type Affine struct {
	vars  []Var
	konst *big.Rat
	coef  []*big.Rat // len(coef) == len(vars)
}

var (
	_ fmt.Stringer           = Affine{}
	_ encoding.TextMarshaler = Affine{}
)

// NewAffine returns the zero expression over vars.
// Errors: those of ValidateVars.
func NewAffine(vars []Var) (Affine, error) {
	if err := ValidateVars(vars); err != nil {
		return Affine{}, err
	}
	coef := make([]*big.Rat, len(vars))
	for i := range coef {
		coef[i] = new(big.Rat)
	}

	return Affine{vars: append([]Var(nil), vars...), konst: new(big.Rat), coef: coef}, nil
}

// NewAffineFrom returns constant + Σ coeffs[j]·vars[j]. Inputs are copied.
// Errors: ValidateVars errors, ErrLength, ErrNilValue.
func NewAffineFrom(vars []Var, constant *big.Rat, coeffs []*big.Rat) (Affine, error) {
	e, err := NewAffine(vars)
	if err != nil {
		return Affine{}, err
	}
	if len(coeffs) != len(vars) {
		return Affine{}, fmt.Errorf("NewAffineFrom: %d coefficients for %d vars: %w", len(coeffs), len(vars), ErrLength)
	}
	if constant == nil {
		return Affine{}, fmt.Errorf("NewAffineFrom: constant: %w", ErrNilValue)
	}
	e.konst.Set(constant)
	for i, c := range coeffs {
		if c == nil {
			return Affine{}, fmt.Errorf("NewAffineFrom: coefficient %d: %w", i, ErrNilValue)
		}
		e.coef[i].Set(c)
	}

	return e, nil
}

// clone deep-copies e.
func (e Affine) clone() Affine {
	out := Affine{
		vars:  append([]Var(nil), e.vars...),
		konst: new(big.Rat),
		coef:  make([]*big.Rat, len(e.coef)),
	}
	if e.konst != nil {
		out.konst.Set(e.konst)
	}
	for i, c := range e.coef {
		out.coef[i] = new(big.Rat).Set(c)
	}

	return out
}

// Vars returns a copy of the variable list.
func (e Affine) Vars() []Var { return append([]Var(nil), e.vars...) }

// Constant returns a copy of the constant term.
func (e Affine) Constant() *big.Rat {
	if e.konst == nil {
		return new(big.Rat)
	}

	return new(big.Rat).Set(e.konst)
}

// Coeff returns a copy of the coefficient of v.
// Errors: ErrUnknownVar.
func (e Affine) Coeff(v Var) (*big.Rat, error) {
	i := IndexOf(e.vars, v)
	if i < 0 {
		return nil, fmt.Errorf("Coeff(%s): %w", v, ErrUnknownVar)
	}

	return new(big.Rat).Set(e.coef[i]), nil
}

// Coeffs returns copies of all coefficients in variable order.
func (e Affine) Coeffs() []*big.Rat {
	out := make([]*big.Rat, len(e.coef))
	for i, c := range e.coef {
		out[i] = new(big.Rat).Set(c)
	}

	return out
}

// AddTerm returns e + c·v.
// Errors: ErrUnknownVar, ErrNilValue.
func (e Affine) AddTerm(v Var, c *big.Rat) (Affine, error) {
	i := IndexOf(e.vars, v)
	if i < 0 {
		return Affine{}, fmt.Errorf("AddTerm(%s): %w", v, ErrUnknownVar)
	}
	if c == nil {
		return Affine{}, fmt.Errorf("AddTerm(%s): %w", v, ErrNilValue)
	}
	out := e.clone()
	out.coef[i].Add(out.coef[i], c)

	return out, nil
}

// AddConst returns e + c.
// Errors: ErrNilValue.
func (e Affine) AddConst(c *big.Rat) (Affine, error) {
	if c == nil {
		return Affine{}, fmt.Errorf("AddConst: %w", ErrNilValue)
	}
	out := e.clone()
	out.konst.Add(out.konst, c)

	return out, nil
}

// Substitute replaces the variables present in vals by their values and
// folds them into the constant. Variables not in vals are kept, so partial
// substitution yields another affine form over the same variable list
// (the substituted variables keep a zero coefficient).
// Errors: ErrUnknownVar (a key that is not a variable of e), ErrNilValue.
func (e Affine) Substitute(vals map[Var]*big.Rat) (Affine, error) {
	for v, x := range vals {
		if IndexOf(e.vars, v) < 0 {
			return Affine{}, fmt.Errorf("Substitute(%s): %w", v, ErrUnknownVar)
		}
		if x == nil {
			return Affine{}, fmt.Errorf("Substitute(%s): %w", v, ErrNilValue)
		}
	}

	out := e.clone()
	var tmp big.Rat
	for i, v := range out.vars {
		x, ok := vals[v]
		if !ok {
			continue
		}
		tmp.Mul(out.coef[i], x)
		out.konst.Add(out.konst, &tmp)
		out.coef[i].SetInt64(0)
	}

	return out, nil
}

// Eval evaluates e with every variable bound by vals.
// Errors: ErrUnboundVar, plus Substitute errors.
func (e Affine) Eval(vals map[Var]*big.Rat) (*big.Rat, error) {
	for _, v := range e.vars {
		if _, ok := vals[v]; !ok {
			return nil, fmt.Errorf("Eval: %s: %w", v, ErrUnboundVar)
		}
	}
	s, err := e.Substitute(vals)
	if err != nil {
		return nil, err
	}

	return s.Constant(), nil
}

// EvalAt evaluates e at a point given positionally in variable order.
// Errors: ErrLength, ErrNilValue.
func (e Affine) EvalAt(point []*big.Rat) (*big.Rat, error) {
	if len(point) != len(e.vars) {
		return nil, fmt.Errorf("EvalAt: %d values for %d vars: %w", len(point), len(e.vars), ErrLength)
	}
	acc := e.Constant()
	var tmp big.Rat
	for i, x := range point {
		if x == nil {
			return nil, fmt.Errorf("EvalAt: value %d: %w", i, ErrNilValue)
		}
		tmp.Mul(e.coef[i], x)
		acc.Add(acc, &tmp)
	}

	return acc, nil
}

// IsConstant reports whether every coefficient is zero.
func (e Affine) IsConstant() bool {
	for _, c := range e.coef {
		if c.Sign() != 0 {
			return false
		}
	}

	return true
}

// Equal reports structural equality: same variables in the same order,
// same constant and same coefficients.
func (e Affine) Equal(o Affine) bool {
	if len(e.vars) != len(o.vars) {
		return false
	}
	for i := range e.vars {
		if e.vars[i] != o.vars[i] || e.coef[i].Cmp(o.coef[i]) != 0 {
			return false
		}
	}

	return e.Constant().Cmp(o.Constant()) == 0
}

// String renders the canonical form: constant first, then terms in variable
// order, zero terms omitted, unit coefficients elided ("2 - 2*x", "1 - y",
// "1/2*x + z", "0").
func (e Affine) String() string {
	var b strings.Builder
	first := true
	write := func(neg bool, body string) {
		switch {
		case first && neg:
			b.WriteString("-")
		case !first && neg:
			b.WriteString(" - ")
		case !first:
			b.WriteString(" + ")
		}
		b.WriteString(body)
		first = false
	}

	k := e.Constant()
	if k.Sign() != 0 {
		write(k.Sign() < 0, new(big.Rat).Abs(k).RatString())
	}
	one := big.NewRat(1, 1)
	for i, c := range e.coef {
		if c.Sign() == 0 {
			continue
		}
		abs := new(big.Rat).Abs(c)
		body := e.vars[i].Name()
		if abs.Cmp(one) != 0 {
			body = abs.RatString() + "*" + body
		}
		write(c.Sign() < 0, body)
	}
	if first {
		return "0"
	}

	return b.String()
}

// MarshalText implements encoding.TextMarshaler with the String form.
func (e Affine) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}
