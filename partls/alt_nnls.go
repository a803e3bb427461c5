package partls

import (
	"log/slog"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/partls/pkg/errors"
	pkglog "github.com/YuminosukeSato/partls/pkg/log"
)

// fitNNLS runs the alternating loop of the NNLS variant on the
// homogeneous-coordinate transform of (X, P), so the intercept is carried by
// the appended singleton partition and recovered as β[K+1]·α[M+1]. Each
// iteration solves the α half-step as a nonnegative least-squares problem on
// the β-scaled design, repairs and rescales α to keep the per-partition sums
// at exactly one, and solves the β half-step by ordinary least squares.
func (r *Regression) fitNNLS(X mat.Matrix, y *mat.VecDense) error {
	_, mAttrs := X.Dims()
	_, k := r.P.Dims()

	// The NNLS formulation carries no ridge term.
	if r.eta != 0 {
		errors.Warn(errors.NewRegularizationWarning(r.variant.String(), r.eta, 0))
	}

	Xo, Po := HomogeneousCoords(X, r.P)

	rng := rand.New(rand.NewSource(r.seed))
	alphaO := mat.NewVecDense(mAttrs+1, nil)
	for i := 0; i <= mAttrs; i++ {
		alphaO.SetVec(i, rng.Float64())
	}
	betaO := mat.NewVecDense(k+1, nil)
	for j := 0; j <= k; j++ {
		betaO.SetVec(j, (rng.Float64()-0.5)*10)
	}

	def := FitState{
		Iteration: 0,
		Alpha:     headSlice(alphaO, mAttrs),
		Beta:      headSlice(betaO, k),
		T:         betaO.AtVec(k) * alphaO.AtVec(mAttrs),
		Objective: math.Inf(1),
	}
	st, err := r.resume(def)
	if err != nil {
		return errors.Wrap(err, "resume source failed")
	}
	if len(st.Alpha) != mAttrs || len(st.Beta) != k {
		return errors.NewValidationError("resume", "state shape does not match the problem", st.Iteration)
	}

	// Rebuild the homogeneous vectors from the public state: the intercept
	// partition is a singleton, so its weight is exactly 1 and its
	// coefficient is t.
	for i := 0; i < mAttrs; i++ {
		alphaO.SetVec(i, st.Alpha[i])
	}
	alphaO.SetVec(mAttrs, 1)
	for j := 0; j < k; j++ {
		betaO.SetVec(j, st.Beta[j])
	}
	betaO.SetVec(k, st.T)
	obj := st.Objective

	pred := mat.NewVecDense(y.Len(), nil)
	for i := st.Iteration + 1; i <= r.nIter; i++ {
		// α half-step: collapse β onto the attributes and solve NNLS on the
		// scaled design.
		A := scaleColumns(Xo, attributeScales(Po, betaO))
		alphaO, err = r.nnls.SolveNNLS(A, y)
		if err != nil {
			return errors.Wrap(err, "nnls half-step failed")
		}

		Repair(alphaO, Po)

		// Rescale to restore the sum-to-one invariant exactly; β picks up
		// the sums so the products α·β and the fitted values are unchanged.
		sums := partitionSums(alphaO, Po)
		for idx := 0; idx <= mAttrs; idx++ {
			var f float64
			for j := 0; j <= k; j++ {
				f += Po.At(idx, j) * (1 / sums[j])
			}
			alphaO.SetVec(idx, alphaO.AtVec(idx)*f)
		}
		for j := 0; j <= k; j++ {
			betaO.SetVec(j, betaO.AtVec(j)*sums[j])
		}

		if !errors.AllFinite(vecSlice(alphaO)) {
			errors.Warn(errors.NewNumericalWarning("alpha half-step", i, errors.NonFinite(vecSlice(alphaO))))
		}

		// β half-step: ordinary least squares on the α-weighted grouped
		// design.
		B := groupedDesign(Xo, alphaO, Po)
		betaO, err = r.lsq.SolveLSQ(B, y)
		if err != nil {
			return errors.Wrap(err, "least-squares half-step failed")
		}

		pred.MulVec(B, betaO)
		var sum float64
		for i := 0; i < y.Len(); i++ {
			d := pred.AtVec(i) - y.AtVec(i)
			sum += d * d
		}
		obj = math.Sqrt(sum)

		slog.Debug("alternating iteration",
			pkglog.ComponentKey, "partls",
			pkglog.VariantKey, r.variant.String(),
			pkglog.IterationKey, i,
			pkglog.ObjectiveKey, obj,
		)
		if err := r.checkpoint(FitState{
			Iteration: i,
			Alpha:     headSlice(alphaO, mAttrs),
			Beta:      headSlice(betaO, k),
			T:         betaO.AtVec(k) * alphaO.AtVec(mAttrs),
			Objective: obj,
		}); err != nil {
			return errors.Wrap(err, "checkpoint sink failed")
		}
	}

	r.Alpha = mat.NewVecDense(mAttrs, headSlice(alphaO, mAttrs))
	r.Beta = mat.NewVecDense(k, headSlice(betaO, k))
	r.Intercept = betaO.AtVec(k) * alphaO.AtVec(mAttrs)
	r.Objective = obj
	return nil
}
