package partls

import (
	"fmt"
	"log/slog"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/partls/core/model"
	"github.com/YuminosukeSato/partls/metrics"
	"github.com/YuminosukeSato/partls/pkg/errors"
	pkglog "github.com/YuminosukeSato/partls/pkg/log"
	"github.com/YuminosukeSato/partls/solver"
)

// Variant selects the fitting algorithm of a Regression.
type Variant int

const (
	// VariantNNLS alternates a nonnegative least-squares α half-step with an
	// ordinary least-squares β half-step on the homogeneous-coordinate
	// transform of the problem. It does not support a ridge term.
	VariantNNLS Variant = iota

	// VariantConvex delegates both half-steps to an injected convex-solver
	// capability and supports ridge regularization on β and t.
	VariantConvex
)

// String returns the log-friendly name of the variant.
func (v Variant) String() string {
	switch v {
	case VariantNNLS:
		return "alt_nnls"
	case VariantConvex:
		return "alt_convex"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// Regression fits the partitioned least squares model
//
//	min ‖X·(P⊙α)·β + t − y‖² (+ η·(‖β‖² + t²))
//	s.t. α ≥ 0, Σ_m P[m,k]·α[m] = 1 for every partition k
//
// by alternating block-coordinate descent over a fixed iteration budget.
// The binary M×K partition matrix P assigns each attribute to a group; rows
// are expected to be one-hot but are not validated.
type Regression struct {
	state *model.StateManager

	// Configuration
	variant    Variant
	nIter      int
	eta        float64
	seed       int64
	fakeRun    bool
	factory    SolverFactory
	nnls       NNLSBackend
	lsq        LSQBackend
	checkpoint CheckpointFunc
	resume     ResumeFunc

	// P is the partition matrix the model was built with.
	P *mat.Dense

	// Fitted attributes
	Alpha     *mat.VecDense // per-attribute weights, length M
	Beta      *mat.VecDense // per-partition coefficients, length K
	Intercept float64
	Objective float64
}

var (
	_ model.Fitter    = (*Regression)(nil)
	_ model.Predictor = (*Regression)(nil)
	_ model.Scorer    = (*Regression)(nil)
)

// NewRegression creates a partitioned least squares model for the given
// partition matrix.
func NewRegression(P *mat.Dense, opts ...Option) *Regression {
	r := &Regression{
		state:      model.NewStateManager(),
		variant:    VariantNNLS,
		nIter:      20,
		seed:       1,
		nnls:       solver.NewNNLS(),
		lsq:        solver.NewLSQ(),
		factory:    DefaultSolverFactory,
		checkpoint: NopCheckpoint,
		resume:     IdentityResume,
		P:          P,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Fit estimates α, β and t on the given data. X is the N×M design matrix and
// y the N×1 target. With WithFakeRun(true) it returns immediately without
// touching anything.
func (r *Regression) Fit(X, y mat.Matrix) error {
	if r.fakeRun {
		return nil
	}

	n, mAttrs := X.Dims()
	yRows, yCols := y.Dims()

	if n == 0 || mAttrs == 0 {
		return errors.NewModelError("Regression.Fit", "empty data", errors.ErrEmptyData)
	}
	if yRows != n {
		return errors.NewDimensionError("Regression.Fit", n, yRows, 0)
	}
	if yCols != 1 {
		return errors.NewValueError("Regression.Fit", "y must be a column vector")
	}
	pRows, pCols := r.P.Dims()
	if pRows != mAttrs {
		return errors.NewDimensionError("Regression.Fit", mAttrs, pRows, 1)
	}
	if r.nIter <= 0 {
		return errors.NewValidationError("iterations", "must be positive", r.nIter)
	}

	yVec := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		yVec.SetVec(i, y.At(i, 0))
	}

	start := time.Now()
	slog.Debug("fit started",
		pkglog.ModelNameKey, "Regression",
		pkglog.OperationKey, "fit",
		pkglog.VariantKey, r.variant.String(),
		pkglog.SamplesKey, n,
		pkglog.AttributesKey, mAttrs,
		pkglog.PartitionsKey, pCols,
		pkglog.SeedKey, r.seed,
	)

	var err error
	switch r.variant {
	case VariantConvex:
		err = r.fitConvex(X, yVec)
	case VariantNNLS:
		err = r.fitNNLS(X, yVec)
	default:
		err = errors.NewValidationError("variant", "unknown fitting variant", r.variant)
	}
	if err != nil {
		return err
	}

	r.state.SetDimensions(n, mAttrs, pCols)
	r.state.SetFitted()

	slog.Debug("fit completed",
		pkglog.ModelNameKey, "Regression",
		pkglog.OperationKey, "fit",
		pkglog.ObjectiveKey, r.Objective,
		pkglog.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// Predict returns X·(P⊙α)·β + t for the given design matrix.
func (r *Regression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !r.state.IsFitted() {
		return nil, errors.NewNotFittedError("Regression", "Predict")
	}

	n, mAttrs := X.Dims()
	_, wantAttrs, _ := r.state.Dimensions()
	if mAttrs != wantAttrs {
		return nil, errors.NewDimensionError("Regression.Predict", wantAttrs, mAttrs, 1)
	}

	b := groupedDesign(X, r.Alpha, r.P)
	pred := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		v := r.Intercept
		for j := 0; j < r.Beta.Len(); j++ {
			v += b.At(i, j) * r.Beta.AtVec(j)
		}
		pred.Set(i, 0, v)
	}
	return pred, nil
}

// Score returns the coefficient of determination R² on the given data.
func (r *Regression) Score(X, y mat.Matrix) (float64, error) {
	if !r.state.IsFitted() {
		return 0, errors.NewNotFittedError("Regression", "Score")
	}

	pred, err := r.Predict(X)
	if err != nil {
		return 0, err
	}

	n, _ := y.Dims()
	yTrue := mat.NewVecDense(n, nil)
	yPred := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		yTrue.SetVec(i, y.At(i, 0))
		yPred.SetVec(i, pred.At(i, 0))
	}
	return metrics.R2(yTrue, yPred)
}

// IsFitted reports whether Fit completed successfully.
func (r *Regression) IsFitted() bool {
	return r.state.IsFitted()
}
