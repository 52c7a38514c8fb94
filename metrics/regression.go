// Package metrics provides regression error metrics for fitted models.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/daliboussaidi/rshdmr/pkg/errors"
)

// MSE computes the mean squared error between two vectors.
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("MSE", "empty vector")
	}

	if yPred.Len() != n {
		return 0, errors.NewDimensionError("MSE", n, yPred.Len(), 0)
	}

	// MSE = (1/n) * Σ(yTrue - yPred)²
	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += diff * diff
	}

	return sum / float64(n), nil
}

// RMSE computes the root mean squared error between two vectors.
// RMSE(a, b) equals RMSE(b, a), and RMSE(x, x) is zero.
func RMSE(yTrue, yPred *mat.VecDense) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// ScaledRMSE computes the RMSE after multiplying both vectors by scale.
// The fitter works on targets normalized to [0,1]; scale restores the
// original target range at reporting time.
func ScaledRMSE(yTrue, yPred *mat.VecDense, scale float64) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("ScaledRMSE", "empty vector")
	}

	if yPred.Len() != n {
		return 0, errors.NewDimensionError("ScaledRMSE", n, yPred.Len(), 0)
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := (yTrue.AtVec(i) - yPred.AtVec(i)) * scale
		sum += diff * diff
	}

	return math.Sqrt(sum / float64(n)), nil
}
