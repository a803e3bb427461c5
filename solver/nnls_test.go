package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestSolveNNLSClipsNegativeComponent(t *testing.T) {
	A := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	b := mat.NewVecDense(2, []float64{1, -1})

	nnls := NewNNLS()
	x, err := nnls.SolveNNLS(A, b)
	require.NoError(t, err)
	assert.InDelta(t, 1, x.AtVec(0), 1e-8)
	assert.InDelta(t, 0, x.AtVec(1), 1e-8)
}

func TestSolveNNLSRecoversNonnegativeTruth(t *testing.T) {
	n, c := 30, 3
	A := mat.NewDense(n, c, nil)
	for i := 0; i < n; i++ {
		A.Set(i, 0, math.Sin(float64(i)/5)+2)
		A.Set(i, 1, math.Cos(float64(i)/7))
		A.Set(i, 2, float64(i%6)/5)
	}
	want := mat.NewVecDense(c, []float64{1, 0, 2})
	b := mat.NewVecDense(n, nil)
	b.MulVec(A, want)

	nnls := NewNNLS()
	x, err := nnls.SolveNNLS(A, b)
	require.NoError(t, err)
	for i := 0; i < c; i++ {
		assert.InDelta(t, want.AtVec(i), x.AtVec(i), 1e-5, "component %d", i)
	}
	for i := 0; i < c; i++ {
		assert.GreaterOrEqual(t, x.AtVec(i), 0.0)
	}
}

func TestSolveNNLSInputValidation(t *testing.T) {
	nnls := NewNNLS()

	_, err := nnls.SolveNNLS(mat.NewDense(2, 2, nil), mat.NewVecDense(3, nil))
	require.Error(t, err)
}
