package solver

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/partls/pkg/errors"
)

// RidgeLS solves the unconstrained half-step
//
//	min ‖A·x + t·1 − b‖² + eta·(‖x‖² + t²)
//
// by the normal equations on the intercept-augmented design. With eta = 0 and
// a singular system a small diagonal jitter is added before retrying.
func RidgeLS(A mat.Matrix, b *mat.VecDense, eta float64) (*mat.VecDense, float64, error) {
	r, c := A.Dims()
	if r == 0 || c == 0 {
		return nil, 0, errors.NewModelError("RidgeLS", "empty design", errors.ErrEmptyData)
	}
	if b.Len() != r {
		return nil, 0, errors.NewDimensionError("RidgeLS", r, b.Len(), 0)
	}

	// M = [A 1]
	m := mat.NewDense(r, c+1, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, A.At(i, j))
		}
		m.Set(i, c, 1)
	}

	var g mat.Dense
	g.Mul(m.T(), m)
	for i := 0; i < c+1; i++ {
		g.Set(i, i, g.At(i, i)+eta)
	}

	rhs := mat.NewVecDense(c+1, nil)
	rhs.MulVec(m.T(), b)

	var inv mat.Dense
	if err := inv.Inverse(&g); err != nil {
		// Singular normal matrix: retry with a ridge-like jitter.
		for i := 0; i < c+1; i++ {
			g.Set(i, i, g.At(i, i)+1e-10)
		}
		if err := inv.Inverse(&g); err != nil {
			return nil, 0, errors.NewModelError("RidgeLS", "singular normal matrix", errors.ErrSingularMatrix)
		}
	}

	z := mat.NewVecDense(c+1, nil)
	z.MulVec(&inv, rhs)

	x := mat.NewVecDense(c, nil)
	for j := 0; j < c; j++ {
		x.SetVec(j, z.AtVec(j))
	}
	return x, z.AtVec(c), nil
}
