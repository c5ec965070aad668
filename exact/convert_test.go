package exact_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/paratope/exact"
	"github.com/katalvlaran/paratope/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestParseRat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want *big.Rat
	}{
		{"3", big.NewRat(3, 1)},
		{" -7 ", big.NewRat(-7, 1)},
		{"1/3", big.NewRat(1, 3)},
		{"-2/4", big.NewRat(-1, 2)},
		{"0.25", big.NewRat(1, 4)},
		{"1e-3", big.NewRat(1, 1000)},
	}
	for _, tc := range tests {
		got, err := exact.ParseRat(tc.in)
		require.NoError(t, err, tc.in)
		require.Zerof(t, tc.want.Cmp(got), "%q: got %s", tc.in, got.RatString())
	}

	for _, bad := range []string{"", "  ", "abc", "1/0", "1//2"} {
		_, err := exact.ParseRat(bad)
		require.ErrorIs(t, err, exact.ErrParse, bad)
	}
}

func TestRatFromFloat_IsExact(t *testing.T) {
	r, err := exact.RatFromFloat(0.1)
	require.NoError(t, err)
	// 0.1 is not 1/10 in binary; the conversion keeps the exact stored value.
	require.NotZero(t, big.NewRat(1, 10).Cmp(r))
	f, exactBack := r.Float64()
	require.True(t, exactBack)
	require.Equal(t, 0.1, f)

	r, err = exact.RatFromFloat(-2.5)
	require.NoError(t, err)
	require.Zero(t, big.NewRat(-5, 2).Cmp(r))

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err = exact.RatFromFloat(bad)
		require.ErrorIs(t, err, exact.ErrNonFinite)
	}
}

func TestVecHelpers(t *testing.T) {
	v, err := exact.VecFromFloats([]float64{1, 0.5})
	require.NoError(t, err)
	require.Equal(t, "(1, 1/2)", exact.FormatVec(v))

	_, err = exact.VecFromFloats([]float64{math.NaN()})
	require.ErrorIs(t, err, exact.ErrNonFinite)

	s, err := exact.VecFromStrings([]string{"2/3", "-1"})
	require.NoError(t, err)
	require.Equal(t, "(2/3, -1)", exact.FormatVec(s))

	_, err = exact.VecFromStrings([]string{"x"})
	require.ErrorIs(t, err, exact.ErrParse)

	d, err := exact.VecSub(exact.VecFromInts(3, 1), exact.VecFromInts(1, 4))
	require.NoError(t, err)
	require.True(t, exact.VecEqual(exact.VecFromInts(2, -3), d))

	_, err = exact.VecSub(exact.VecFromInts(1), exact.VecFromInts(1, 2))
	require.ErrorIs(t, err, exact.ErrDimensionMismatch)
	_, err = exact.VecSub([]*big.Rat{nil}, exact.VecFromInts(1))
	require.ErrorIs(t, err, exact.ErrNilValue)

	require.False(t, exact.VecEqual(exact.VecFromInts(1), exact.VecFromInts(1, 2)))
	require.False(t, exact.VecEqual([]*big.Rat{nil}, exact.VecFromInts(1)))
	require.True(t, exact.VecEqual([]*big.Rat{nil}, []*big.Rat{nil}))

	c := exact.CloneVec(v)
	c[0].SetInt64(9)
	require.Equal(t, "(1, 1/2)", exact.FormatVec(v))
	require.Nil(t, exact.CloneVec(nil))
	require.Equal(t, "(<nil>)", exact.FormatVec([]*big.Rat{nil}))
}

func TestFromMatrix(t *testing.T) {
	t.Parallel()

	d, err := matrix.NewDenseFromRows([][]float64{{1, 0.5}, {-0.25, 3}})
	require.NoError(t, err)

	r, err := exact.FromMatrix(d)
	require.NoError(t, err)
	require.Equal(t, "[1, 1/2]\n[-1/4, 3]\n", r.String())

	_, err = exact.FromMatrix(nil)
	require.ErrorIs(t, err, exact.ErrNilMatrix)
}

func TestFromGonum(t *testing.T) {
	t.Parallel()

	g := mat.NewDense(2, 2, []float64{2, 0, 0, 0.125})
	r, err := exact.FromGonum(g)
	require.NoError(t, err)
	require.Equal(t, "[2, 0]\n[0, 1/8]\n", r.String())

	// Transposed views work through the mat.Matrix interface.
	rt, err := exact.FromGonum(mat.NewDense(1, 2, []float64{1, 2}).T())
	require.NoError(t, err)
	require.Equal(t, 2, rt.Rows())
	require.Equal(t, 1, rt.Cols())

	_, err = exact.FromGonum(mat.NewDense(1, 1, []float64{math.Inf(1)}))
	require.ErrorIs(t, err, exact.ErrNonFinite)

	_, err = exact.FromGonum(nil)
	require.ErrorIs(t, err, exact.ErrNilMatrix)
}

func TestFromFloatAndStringRows(t *testing.T) {
	r, err := exact.FromFloatRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[3, 4]\n", r.String())

	_, err = exact.FromFloatRows(nil)
	require.ErrorIs(t, err, exact.ErrInvalidDimensions)
	_, err = exact.FromFloatRows([][]float64{{1}, {1, 2}})
	require.ErrorIs(t, err, exact.ErrDimensionMismatch)

	s, err := exact.FromStringRows([][]string{{"1/2", "0"}, {"0", "2"}})
	require.NoError(t, err)
	require.Equal(t, "[1/2, 0]\n[0, 2]\n", s.String())

	_, err = exact.FromStringRows([][]string{{"1"}, {"?"}})
	require.ErrorIs(t, err, exact.ErrParse)
	_, err = exact.FromStringRows([][]string{{"1"}, {"1", "2"}})
	require.ErrorIs(t, err, exact.ErrDimensionMismatch)
}
