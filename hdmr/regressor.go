package hdmr

import (
	"gonum.org/v1/gonum/mat"
)

// Regressor is the narrow capability the cycle loop and evaluator need
// from the underlying regression primitive. Keeping it this small lets
// the fitter be tested against a deterministic stub without running real
// kernel computations.
type Regressor interface {
	// Fit trains the regressor on X (n×d) and targets y (n).
	Fit(X mat.Matrix, y *mat.VecDense) error

	// Predict returns the predictive mean at the rows of X.
	Predict(X mat.Matrix) (*mat.VecDense, error)

	// PredictWithStd returns the predictive mean and standard deviation
	// at the rows of X.
	PredictWithStd(X mat.Matrix) (*mat.VecDense, *mat.VecDense, error)
}

// RegressorFactory constructs a fresh regressor for the given noise level.
// The fitter replaces whole regressor collections through the factory when
// the noise-decay schedule changes the level; fitted state is never carried
// across a noise change.
type RegressorFactory func(alpha float64) Regressor
