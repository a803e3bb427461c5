package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestMSE(t *testing.T) {
	yTrue := mat.NewVecDense(4, []float64{1, 2, 3, 4})
	yPred := mat.NewVecDense(4, []float64{1, 2, 3, 4})

	mse, err := MSE(yTrue, yPred)
	require.NoError(t, err)
	assert.Equal(t, 0.0, mse)

	yPred = mat.NewVecDense(4, []float64{2, 3, 4, 5})
	mse, err = MSE(yTrue, yPred)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, mse, 1e-12)
}

func TestRMSE(t *testing.T) {
	yTrue := mat.NewVecDense(2, []float64{0, 0})
	yPred := mat.NewVecDense(2, []float64{3, 4})

	rmse, err := RMSE(yTrue, yPred)
	require.NoError(t, err)
	assert.InDelta(t, 3.5355339059327378, rmse, 1e-12)
}

func TestR2(t *testing.T) {
	yTrue := mat.NewVecDense(4, []float64{1, 2, 3, 4})

	r2, err := R2(yTrue, yTrue)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r2, 1e-12)

	// Predicting the mean gives R² = 0.
	mean := mat.NewVecDense(4, []float64{2.5, 2.5, 2.5, 2.5})
	r2, err = R2(yTrue, mean)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, r2, 1e-12)
}

func TestR2ZeroVariance(t *testing.T) {
	flat := mat.NewVecDense(3, []float64{2, 2, 2})
	_, err := R2(flat, flat)
	require.Error(t, err)
}

func TestResidualNorm(t *testing.T) {
	yTrue := mat.NewVecDense(2, []float64{0, 0})
	yPred := mat.NewVecDense(2, []float64{3, 4})

	norm, err := ResidualNorm(yTrue, yPred)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, norm, 1e-12)
}

func TestDimensionMismatch(t *testing.T) {
	a := mat.NewVecDense(3, nil)
	b := mat.NewVecDense(2, nil)

	_, err := MSE(a, b)
	require.Error(t, err)
	_, err = R2(a, b)
	require.Error(t, err)
	_, err = ResidualNorm(a, b)
	require.Error(t, err)
}
