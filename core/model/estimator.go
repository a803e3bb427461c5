package model

import "gonum.org/v1/gonum/mat"

// Fitter is the interface of trainable estimators.
type Fitter interface {
	// Fit trains the estimator on the given design matrix and target.
	Fit(X, y mat.Matrix) error
}

// Predictor is the interface of estimators that produce predictions.
type Predictor interface {
	// Predict returns predictions for the given design matrix.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Scorer is the interface of estimators that compute a goodness-of-fit score.
type Scorer interface {
	// Score returns the coefficient of determination R² on the given data.
	Score(X, y mat.Matrix) (float64, error)
}
