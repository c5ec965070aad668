package symbolic_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/paratope/symbolic"
	"github.com/stretchr/testify/require"
)

func r(p, q int64) *big.Rat { return big.NewRat(p, q) }

func TestNewVars(t *testing.T) {
	t.Parallel()

	vars, err := symbolic.NewVars("x", "y")
	require.NoError(t, err)
	require.Equal(t, []symbolic.Var{"x", "y"}, vars)
	require.Equal(t, "x", vars[0].Name())
	require.Equal(t, "y", vars[1].String())

	_, err = symbolic.NewVars()
	require.ErrorIs(t, err, symbolic.ErrNoVars)
	_, err = symbolic.NewVars("x", " ")
	require.ErrorIs(t, err, symbolic.ErrEmptyName)
	_, err = symbolic.NewVars("x", "y", "x")
	require.ErrorIs(t, err, symbolic.ErrDuplicateVar)

	require.Panics(t, func() { symbolic.MustVars("a", "a") })
	require.Equal(t, 1, symbolic.IndexOf(vars, "y"))
	require.Equal(t, -1, symbolic.IndexOf(vars, "z"))
}

func TestAffineString(t *testing.T) {
	t.Parallel()

	vars := symbolic.MustVars("x", "y", "z")
	tests := []struct {
		name   string
		konst  *big.Rat
		coeffs []*big.Rat
		want   string
	}{
		{"zero", r(0, 1), []*big.Rat{r(0, 1), r(0, 1), r(0, 1)}, "0"},
		{"constant", r(-3, 1), []*big.Rat{r(0, 1), r(0, 1), r(0, 1)}, "-3"},
		{"one minus x", r(1, 1), []*big.Rat{r(-1, 1), r(0, 1), r(0, 1)}, "1 - x"},
		{"two minus two x", r(2, 1), []*big.Rat{r(-2, 1), r(0, 1), r(0, 1)}, "2 - 2*x"},
		{"leading negative term", r(0, 1), []*big.Rat{r(0, 1), r(-3, 1), r(1, 1)}, "-3*y + z"},
		{"fractions", r(1, 2), []*big.Rat{r(1, 3), r(0, 1), r(-5, 2)}, "1/2 + 1/3*x - 5/2*z"},
		{"leading unit", r(0, 1), []*big.Rat{r(1, 1), r(1, 1), r(1, 1)}, "x + y + z"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			e, err := symbolic.NewAffineFrom(vars, tc.konst, tc.coeffs)
			require.NoError(t, err)
			require.Equal(t, tc.want, e.String())
			txt, err := e.MarshalText()
			require.NoError(t, err)
			require.Equal(t, tc.want, string(txt))
		})
	}

	require.Equal(t, "0", symbolic.Affine{}.String())
}

func TestNewAffineFromErrors(t *testing.T) {
	vars := symbolic.MustVars("x")
	_, err := symbolic.NewAffineFrom(vars, r(1, 1), nil)
	require.ErrorIs(t, err, symbolic.ErrLength)
	_, err = symbolic.NewAffineFrom(vars, nil, []*big.Rat{r(1, 1)})
	require.ErrorIs(t, err, symbolic.ErrNilValue)
	_, err = symbolic.NewAffineFrom(vars, r(1, 1), []*big.Rat{nil})
	require.ErrorIs(t, err, symbolic.ErrNilValue)
	_, err = symbolic.NewAffineFrom(nil, r(1, 1), nil)
	require.ErrorIs(t, err, symbolic.ErrNoVars)
}

func TestAffineImmutability(t *testing.T) {
	vars := symbolic.MustVars("x", "y")
	k := r(2, 1)
	coeffs := []*big.Rat{r(-2, 1), r(0, 1)}
	e, err := symbolic.NewAffineFrom(vars, k, coeffs)
	require.NoError(t, err)

	k.SetInt64(100)
	coeffs[0].SetInt64(100)
	require.Equal(t, "2 - 2*x", e.String())

	e.Constant().SetInt64(7)
	e.Coeffs()[0].SetInt64(7)
	e.Vars()[0] = "q"
	require.Equal(t, "2 - 2*x", e.String())

	f, err := e.AddTerm("y", r(1, 2))
	require.NoError(t, err)
	require.Equal(t, "2 - 2*x + 1/2*y", f.String())
	require.Equal(t, "2 - 2*x", e.String())

	g, err := e.AddConst(r(-2, 1))
	require.NoError(t, err)
	require.Equal(t, "-2*x", g.String())

	_, err = e.AddTerm("z", r(1, 1))
	require.ErrorIs(t, err, symbolic.ErrUnknownVar)
	_, err = e.AddTerm("x", nil)
	require.ErrorIs(t, err, symbolic.ErrNilValue)
	_, err = e.AddConst(nil)
	require.ErrorIs(t, err, symbolic.ErrNilValue)
}

func TestAffineSubstituteAndEval(t *testing.T) {
	t.Parallel()

	vars := symbolic.MustVars("x", "y")
	e, err := symbolic.NewAffineFrom(vars, r(3, 1), []*big.Rat{r(-2, 1), r(1, 2)})
	require.NoError(t, err)

	partial, err := e.Substitute(map[symbolic.Var]*big.Rat{"x": r(1, 1)})
	require.NoError(t, err)
	require.Equal(t, "1 + 1/2*y", partial.String())
	require.Equal(t, vars, partial.Vars())

	v, err := e.Eval(map[symbolic.Var]*big.Rat{"x": r(1, 2), "y": r(2, 1)})
	require.NoError(t, err)
	require.Zero(t, r(3, 1).Cmp(v)) // 3 - 1 + 1

	at, err := e.EvalAt([]*big.Rat{r(1, 2), r(2, 1)})
	require.NoError(t, err)
	require.Zero(t, v.Cmp(at))

	_, err = e.Eval(map[symbolic.Var]*big.Rat{"x": r(1, 1)})
	require.ErrorIs(t, err, symbolic.ErrUnboundVar)
	_, err = e.Substitute(map[symbolic.Var]*big.Rat{"z": r(1, 1)})
	require.ErrorIs(t, err, symbolic.ErrUnknownVar)
	_, err = e.Substitute(map[symbolic.Var]*big.Rat{"x": nil})
	require.ErrorIs(t, err, symbolic.ErrNilValue)
	_, err = e.EvalAt([]*big.Rat{r(1, 1)})
	require.ErrorIs(t, err, symbolic.ErrLength)
	_, err = e.EvalAt([]*big.Rat{r(1, 1), nil})
	require.ErrorIs(t, err, symbolic.ErrNilValue)
}

func TestAffineCoeffEqualConstant(t *testing.T) {
	vars := symbolic.MustVars("x", "y")
	a, err := symbolic.NewAffineFrom(vars, r(1, 1), []*big.Rat{r(0, 1), r(-1, 1)})
	require.NoError(t, err)
	b, err := symbolic.NewAffineFrom(vars, r(1, 1), []*big.Rat{r(0, 1), r(-1, 1)})
	require.NoError(t, err)
	c, err := symbolic.NewAffineFrom(symbolic.MustVars("y", "x"), r(1, 1), []*big.Rat{r(-1, 1), r(0, 1)})
	require.NoError(t, err)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c)) // same value, different variable order
	require.Equal(t, a.String(), "1 - y")

	cy, err := a.Coeff("y")
	require.NoError(t, err)
	require.Zero(t, r(-1, 1).Cmp(cy))
	_, err = a.Coeff("w")
	require.ErrorIs(t, err, symbolic.ErrUnknownVar)

	require.False(t, a.IsConstant())
	z, err := symbolic.NewAffine(vars)
	require.NoError(t, err)
	require.True(t, z.IsConstant())
	require.Zero(t, z.Constant().Sign())
}
