package solver

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/partls/pkg/errors"
)

// Constrained solves the simplex-constrained half-step
//
//	min ‖A·x + t·1 − b‖² + ridgeT·t²   s.t.  x ≥ 0, Σ_{i∈group} x[i] = 1
//
// by projected gradient descent with backtracking line search. The iterate is
// projected onto the product of per-group probability simplices; coordinates
// outside every group are clipped at zero and t stays free.
type Constrained struct {
	MaxIter int
	Tol     float64
}

// NewConstrained creates the default constrained quadratic backend.
func NewConstrained() *Constrained {
	return &Constrained{MaxIter: 5000, Tol: 1e-10}
}

// Solve returns the optimal (x, t) of the constrained half-step. When the
// iteration budget runs out before the tolerance is met a ConvergenceWarning
// is raised and the current iterate is returned.
func (s *Constrained) Solve(A mat.Matrix, b *mat.VecDense, groups [][]int, ridgeT float64) (*mat.VecDense, float64, error) {
	r, c := A.Dims()
	if r == 0 || c == 0 {
		return nil, 0, errors.NewModelError("Constrained.Solve", "empty design", errors.ErrEmptyData)
	}
	if b.Len() != r {
		return nil, 0, errors.NewDimensionError("Constrained.Solve", r, b.Len(), 0)
	}

	grouped := make([]bool, c)
	for _, group := range groups {
		for _, i := range group {
			grouped[i] = true
		}
	}

	// Feasible start: uniform weight within each group.
	x := mat.NewVecDense(c, nil)
	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		w := 1 / float64(len(group))
		for _, i := range group {
			x.SetVec(i, w)
		}
	}
	t := 0.0

	project := func(v *mat.VecDense) {
		for i := 0; i < c; i++ {
			if !grouped[i] && v.AtVec(i) < 0 {
				v.SetVec(i, 0)
			}
		}
		for _, group := range groups {
			if len(group) == 0 {
				continue
			}
			sub := make([]float64, len(group))
			for j, i := range group {
				sub[j] = v.AtVec(i)
			}
			simplexProject(sub)
			for j, i := range group {
				v.SetVec(i, sub[j])
			}
		}
	}

	residual := mat.NewVecDense(r, nil)
	objective := func(v *mat.VecDense, tv float64) float64 {
		residual.MulVec(A, v)
		var sum float64
		for i := 0; i < r; i++ {
			d := residual.AtVec(i) + tv - b.AtVec(i)
			sum += d * d
		}
		return sum + ridgeT*tv*tv
	}

	gradX := mat.NewVecDense(c, nil)
	next := mat.NewVecDense(c, nil)
	trial := mat.NewVecDense(c, nil)

	const (
		shrink = 0.5
		sigma  = 0.01
	)

	fx := objective(x, t)
	for iter := 0; iter < s.MaxIter; iter++ {
		// r = Ax + t·1 − b; ∇x = 2Aᵀr; ∇t = 2Σr + 2·ridgeT·t
		residual.MulVec(A, x)
		var gradT float64
		for i := 0; i < r; i++ {
			residual.SetVec(i, residual.AtVec(i)+t-b.AtVec(i))
			gradT += residual.AtVec(i)
		}
		gradT = 2*gradT + 2*ridgeT*t
		gradX.MulVec(A.T(), residual)
		gradX.ScaleVec(2, gradX)

		// Stationarity check: distance to the projection of a unit
		// gradient step.
		trial.CopyVec(x)
		trial.AddScaledVec(trial, -1, gradX)
		project(trial)
		var move float64
		for i := 0; i < c; i++ {
			d := trial.AtVec(i) - x.AtVec(i)
			move += d * d
		}
		move += gradT * gradT
		if math.Sqrt(move) <= s.Tol {
			return x, t, nil
		}

		step := 1.0
		var tNext float64
		for {
			next.CopyVec(x)
			next.AddScaledVec(next, -step, gradX)
			project(next)
			tNext = t - step*gradT

			var desc float64
			for i := 0; i < c; i++ {
				desc += gradX.AtVec(i) * (next.AtVec(i) - x.AtVec(i))
			}
			desc += gradT * (tNext - t)

			fn := objective(next, tNext)
			if fn <= fx+sigma*desc || step < 1e-20 {
				fx = fn
				break
			}
			step *= shrink
		}
		x.CopyVec(next)
		t = tNext
	}

	errors.Warn(errors.NewConvergenceWarning("Constrained", s.MaxIter, ""))
	return x, t, nil
}

// simplexProject projects v in place onto the probability simplex
// {w : w ≥ 0, Σw = 1} using the sort-based algorithm of Duchi et al.
func simplexProject(v []float64) {
	n := len(v)
	if n == 1 {
		v[0] = 1
		return
	}

	u := make([]float64, n)
	copy(u, v)
	sort.Sort(sort.Reverse(sort.Float64Slice(u)))
	cum := make([]float64, n)
	floats.CumSum(cum, u)

	// The satisfying indices form a prefix of the sorted order, so the last
	// one wins; j = 0 always satisfies.
	var theta float64
	for j := 0; j < n; j++ {
		if u[j]-(cum[j]-1)/float64(j+1) > 0 {
			theta = (cum[j] - 1) / float64(j+1)
		}
	}
	for i := range v {
		w := v[i] - theta
		if w < 0 {
			w = 0
		}
		v[i] = w
	}
}
