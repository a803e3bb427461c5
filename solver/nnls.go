package solver

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/partls/pkg/errors"
)

// NNLS solves min ‖A·x − b‖² subject to x ≥ 0 by projected gradient descent
// with backtracking line search, following the projected-gradient scheme of
// Lin's NMF method.
type NNLS struct {
	// MaxIter is the iteration budget of the projected gradient loop.
	MaxIter int
	// Tol is the stopping tolerance on the projected gradient norm,
	// relative to the initial gradient norm.
	Tol float64
}

// NewNNLS creates the default nonnegative least-squares backend.
func NewNNLS() *NNLS {
	return &NNLS{MaxIter: 5000, Tol: 1e-10}
}

// SolveNNLS returns a nonnegative x minimizing ‖A·x − b‖². When the iteration
// budget runs out before the tolerance is met a ConvergenceWarning is raised
// and the current iterate is returned.
func (s *NNLS) SolveNNLS(A mat.Matrix, b *mat.VecDense) (*mat.VecDense, error) {
	r, c := A.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewModelError("NNLS.SolveNNLS", "empty design", errors.ErrEmptyData)
	}
	if b.Len() != r {
		return nil, errors.NewDimensionError("NNLS.SolveNNLS", r, b.Len(), 0)
	}

	// Work on the normal-equation form: f(x) = xᵀGx − 2hᵀx + const,
	// ∇f(x) = 2(Gx − h).
	var g mat.Dense
	g.Mul(A.T(), A)
	h := mat.NewVecDense(c, nil)
	h.MulVec(A.T(), b)

	x := mat.NewVecDense(c, nil)
	grad := mat.NewVecDense(c, nil)
	next := mat.NewVecDense(c, nil)

	objective := func(v *mat.VecDense) float64 {
		var gv mat.VecDense
		gv.MulVec(&g, v)
		return mat.Dot(v, &gv) - 2*mat.Dot(h, v)
	}

	const (
		shrink = 0.5
		sigma  = 0.01
	)

	fx := objective(x)
	gradTol := math.Inf(1)
	for iter := 0; iter < s.MaxIter; iter++ {
		var gx mat.VecDense
		gx.MulVec(&g, x)
		for i := 0; i < c; i++ {
			grad.SetVec(i, 2*(gx.AtVec(i)-h.AtVec(i)))
		}

		// Projected gradient: free coordinates use the full gradient, active
		// ones only its descent part.
		var pgNorm float64
		for i := 0; i < c; i++ {
			pg := grad.AtVec(i)
			if x.AtVec(i) <= 0 && pg > 0 {
				pg = 0
			}
			pgNorm += pg * pg
		}
		pgNorm = math.Sqrt(pgNorm)
		if iter == 0 {
			gradTol = s.Tol * math.Max(pgNorm, 1)
		}
		if pgNorm <= gradTol {
			return x, nil
		}

		step := 1.0
		for {
			var desc float64
			for i := 0; i < c; i++ {
				v := x.AtVec(i) - step*grad.AtVec(i)
				if v < 0 {
					v = 0
				}
				next.SetVec(i, v)
				desc += grad.AtVec(i) * (v - x.AtVec(i))
			}
			fn := objective(next)
			if fn <= fx+sigma*desc || step < 1e-20 {
				fx = fn
				break
			}
			step *= shrink
		}
		x.CopyVec(next)
	}

	errors.Warn(errors.NewConvergenceWarning("NNLS", s.MaxIter, ""))
	return x, nil
}
