package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestSolveLSQTallConsistent(t *testing.T) {
	A := mat.NewDense(4, 2, []float64{
		1, 0,
		0, 1,
		1, 1,
		2, 1,
	})
	want := mat.NewVecDense(2, []float64{3, -2})
	b := mat.NewVecDense(4, nil)
	b.MulVec(A, want)

	lsq := NewLSQ()
	x, err := lsq.SolveLSQ(A, b)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		assert.InDelta(t, want.AtVec(i), x.AtVec(i), 1e-10)
	}
}

func TestSolveLSQOverdetermined(t *testing.T) {
	// Fit a line through (0,1), (1,3), (2,5), (3,7): slope 2, offset 1.
	A := mat.NewDense(4, 2, []float64{
		0, 1,
		1, 1,
		2, 1,
		3, 1,
	})
	b := mat.NewVecDense(4, []float64{1, 3, 5, 7})

	lsq := NewLSQ()
	x, err := lsq.SolveLSQ(A, b)
	require.NoError(t, err)
	assert.InDelta(t, 2, x.AtVec(0), 1e-10)
	assert.InDelta(t, 1, x.AtVec(1), 1e-10)
}

func TestSolveLSQWideMinNorm(t *testing.T) {
	// Underdetermined: x0 + x1 = 2 has minimum-norm solution (1, 1).
	A := mat.NewDense(1, 2, []float64{1, 1})
	b := mat.NewVecDense(1, []float64{2})

	lsq := NewLSQ()
	x, err := lsq.SolveLSQ(A, b)
	require.NoError(t, err)
	assert.InDelta(t, 1, x.AtVec(0), 1e-10)
	assert.InDelta(t, 1, x.AtVec(1), 1e-10)
	assert.InDelta(t, math.Sqrt2, mat.Norm(x, 2), 1e-10)
}
