package matrix_test

import (
	"testing"

	"github.com/katalvlaran/kernels/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type and force the generic path.
type hide struct{ matrix.Matrix }

func TestMulDenseAndGeneric(t *testing.T) {
	a, _ := matrix.NewDenseFrom([][]float64{{1, 2, 3}, {4, 5, 6}})
	b, _ := matrix.NewDenseFrom([][]float64{{7, 8}, {9, 10}, {11, 12}})
	want, _ := matrix.NewDenseFrom([][]float64{{58, 64}, {139, 154}})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.True(t, want.Equal(got), got.String())

	got, err = matrix.Mul(hide{a}, b)
	require.NoError(t, err)
	require.True(t, want.Equal(got), got.String())
}

func TestMulDimensionMismatch(t *testing.T) {
	a, _ := matrix.NewDense(2, 3)
	b, _ := matrix.NewDense(2, 3)

	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	var nilDense *matrix.Dense
	_, err = matrix.Mul(nilDense, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
