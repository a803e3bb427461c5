package partls

import (
	"log/slog"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/partls/pkg/errors"
	pkglog "github.com/YuminosukeSato/partls/pkg/log"
)

// fitConvex runs the alternating loop of the convex variant: with β fixed,
// the injected solver optimizes α and t under the nonnegativity and
// sum-to-one constraints; with α fixed it optimizes β and t with the ridge
// term. Solver failures are returned to the caller unchanged; there is no
// retry.
func (r *Regression) fitConvex(X mat.Matrix, y *mat.VecDense) error {
	_, mAttrs := X.Dims()
	_, k := r.P.Dims()

	factory := r.factory
	if factory == nil {
		factory = DefaultSolverFactory
	}
	cs := factory()
	if cs == nil {
		return errors.WithStack(errors.ErrNoSolver)
	}

	prog := NewProgram(X, y, r.P, r.eta)

	rng := rand.New(rand.NewSource(r.seed))
	alpha := mat.NewVecDense(mAttrs, nil)
	for i := 0; i < mAttrs; i++ {
		alpha.SetVec(i, rng.Float64())
	}
	beta := mat.NewVecDense(k, nil)
	for j := 0; j < k; j++ {
		beta.SetVec(j, (rng.Float64()-0.5)*10)
	}
	t := rng.Float64()

	def := FitState{
		Iteration: 0,
		Alpha:     vecSlice(alpha),
		Beta:      vecSlice(beta),
		T:         t,
		Objective: math.Inf(1),
	}
	st, err := r.resume(def)
	if err != nil {
		return errors.Wrap(err, "resume source failed")
	}
	if len(st.Alpha) != mAttrs || len(st.Beta) != k {
		return errors.NewValidationError("resume", "state shape does not match the problem", st.Iteration)
	}
	alpha = mat.NewVecDense(mAttrs, append([]float64(nil), st.Alpha...))
	beta = mat.NewVecDense(k, append([]float64(nil), st.Beta...))
	t = st.T
	obj := st.Objective

	for i := st.Iteration + 1; i <= r.nIter; i++ {
		alpha, t, err = cs.Solve(prog.AlphaStep(beta))
		if err != nil {
			return errors.Wrap(err, "alpha half-step failed")
		}
		beta, t, err = cs.Solve(prog.BetaStep(alpha))
		if err != nil {
			return errors.Wrap(err, "beta half-step failed")
		}
		obj = prog.Objective(alpha, beta, t)
		if err := errors.CheckScalar("objective", obj, i); err != nil {
			errors.Warn(err)
		}

		slog.Debug("alternating iteration",
			pkglog.ComponentKey, "partls",
			pkglog.VariantKey, r.variant.String(),
			pkglog.IterationKey, i,
			pkglog.ObjectiveKey, obj,
		)
		if err := r.checkpoint(FitState{
			Iteration: i,
			Alpha:     vecSlice(alpha),
			Beta:      vecSlice(beta),
			T:         t,
			Objective: obj,
		}); err != nil {
			return errors.Wrap(err, "checkpoint sink failed")
		}
	}

	r.Alpha = alpha
	r.Beta = beta
	r.Intercept = t
	r.Objective = obj
	return nil
}
