package parallelotope_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/katalvlaran/paratope/exact"
	"github.com/katalvlaran/paratope/matrix"
	"github.com/katalvlaran/paratope/parallelotope"
	"github.com/katalvlaran/paratope/symbolic"
	"github.com/stretchr/testify/require"
)

func TestTopologyCheck(t *testing.T) {
	t.Parallel()

	vars := symbolic.MustVars("x", "y")
	check := parallelotope.WithTopologyCheck()

	tests := []struct {
		name    string
		rows    [][]float64
		b       []float64
		wantErr error
	}{
		{"unit square", [][]float64{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}, []float64{1, 1, 0, 0}, nil},
		{"upper rows only", [][]float64{{1, 0}, {0, 1}}, []float64{2, 3, 0, 0}, nil},
		{"skew slabs", [][]float64{{1, 1}, {1, -1}}, []float64{1, 1, 1, 1}, nil},
		{"zero width", [][]float64{{1, 0}, {0, 1}}, []float64{1, 1, -1, 0}, parallelotope.ErrDegenerate},
		{"empty slab", [][]float64{{1, 0}, {0, 1}}, []float64{1, 0, 0, -2}, parallelotope.ErrDegenerate},
		{"lower not negated", [][]float64{{1, 0}, {0, 1}, {-1, 0}, {0, -2}}, []float64{1, 1, 0, 0}, parallelotope.ErrDegenerate},
		{"parallel normals", [][]float64{{1, 0}, {2, 0}}, []float64{1, 1, 1, 1}, parallelotope.ErrNoUniqueSolution},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := parallelotope.New(mustDense(t, tc.rows), tc.b, vars, check)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)

			// Without the check the same input constructs fine.
			_, err = parallelotope.New(mustDense(t, tc.rows), tc.b, vars)
			require.NoError(t, err)
		})
	}
}

func TestTopologyCheck_Hypercube(t *testing.T) {
	for n := 1; n <= 4; n++ {
		p := hypercube(t, n, parallelotope.WithTopologyCheck())
		require.Equal(t, n, p.Dim())
	}
}

func TestTopologyCheck_StackedExact(t *testing.T) {
	upper, err := exact.NewRatDenseFromInts([][]int64{{2, 1}, {1, 3}, {-2, -1}, {-1, -3}})
	require.NoError(t, err)
	_, err = parallelotope.NewExact(upper, exact.VecFromInts(4, 5, 1, 2), symbolic.MustVars("x", "y"),
		parallelotope.WithTopologyCheck())
	require.NoError(t, err)

	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	stacked, err := matrix.StackNegated(id)
	require.NoError(t, err)
	_, err = parallelotope.New(stacked, []float64{0.5, 0.5, 0.5, 0.5}, symbolic.MustVars("x", "y"),
		parallelotope.WithTopologyCheck())
	require.NoError(t, err)
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p, err := parallelotope.New(mustDense(t, [][]float64{{1, 0}, {0, 1}}), []float64{2, 3, 0, 0},
		symbolic.MustVars("x", "y"), parallelotope.WithLogger(logger))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "parallelotope built")

	_, err = p.GeneratorRep()
	require.NoError(t, err)
	require.Contains(t, buf.String(), "vertex solved")
	require.Contains(t, buf.String(), "op=BaseVertex")
	require.Contains(t, buf.String(), `op=Vertex(1)`)

	buf.Reset()
	sing, err := parallelotope.New(mustDense(t, [][]float64{{1, 1}, {1, 1}}), []float64{1, 2, 0, 0},
		symbolic.MustVars("x", "y"), parallelotope.WithLogger(logger))
	require.NoError(t, err)
	_, err = sing.BaseVertex()
	require.Error(t, err)
	require.Contains(t, buf.String(), "no unique vertex")
	require.Contains(t, buf.String(), "kind=none")
}

func TestWithLogger_NilPanics(t *testing.T) {
	require.Panics(t, func() { parallelotope.WithLogger(nil) })
}

func TestNilOptionIgnored(t *testing.T) {
	_, err := parallelotope.New(mustDense(t, [][]float64{{1}}), []float64{1, 0}, symbolic.MustVars("x"), nil)
	require.NoError(t, err)
}
