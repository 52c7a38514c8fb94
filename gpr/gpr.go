// Package gpr implements Gaussian Process Regression with an RBF kernel.
//
// The regressor stores its own copy of the training data, factorizes the
// kernel matrix once per Fit via Cholesky decomposition, and exposes both
// the predictive mean and the predictive standard deviation. Kernel
// hyperparameters are fixed unless an optimizer is configured, in which
// case the length-scale is tuned by maximizing the log marginal likelihood
// within the kernel's bounds.
package gpr

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/daliboussaidi/rshdmr/core/model"
	"github.com/daliboussaidi/rshdmr/pkg/errors"
	"github.com/daliboussaidi/rshdmr/pkg/log"
)

// OptimizerLML selects length-scale tuning by log-marginal-likelihood
// maximization. An empty optimizer keeps the kernel fixed as configured.
const OptimizerLML = "lml"

// GPR is a Gaussian Process Regressor.
type GPR struct {
	model.BaseEstimator

	kernel    *RBF
	alpha     float64
	optimizer string

	// Fitted state.
	x    *mat.Dense
	dual *mat.VecDense // solution of (K + alpha·I)·dual = y
	chol *mat.Cholesky
}

// Option configures a GPR.
type Option func(*GPR)

// WithOptimizer enables kernel hyperparameter optimization. The only
// supported identifier is OptimizerLML; an empty string disables tuning.
func WithOptimizer(name string) Option {
	return func(g *GPR) {
		g.optimizer = name
	}
}

// New creates a Gaussian Process Regressor with the given kernel and noise
// level alpha. Alpha is added to the diagonal of the kernel matrix during
// fitting, equivalent to a white-noise kernel term.
func New(kernel *RBF, alpha float64, opts ...Option) *GPR {
	g := &GPR{
		kernel: kernel,
		alpha:  alpha,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Alpha returns the configured noise level.
func (g *GPR) Alpha() float64 {
	return g.alpha
}

// Kernel returns the current kernel. After a Fit with an optimizer
// configured, this reflects the tuned length-scale.
func (g *GPR) Kernel() *RBF {
	return g.kernel
}

// Fit trains the regressor on X (n×d) and y (n).
func (g *GPR) Fit(X mat.Matrix, y *mat.VecDense) (err error) {
	defer errors.Recover(&err, "GPR.Fit")

	n, d := X.Dims()
	if n == 0 || d == 0 {
		return errors.NewModelError("GPR.Fit", "empty data", errors.ErrEmptyData)
	}
	if y.Len() != n {
		return errors.NewDimensionError("GPR.Fit", n, y.Len(), 0)
	}

	g.x = mat.DenseCopyOf(X)
	yCopy := mat.VecDenseCopyOf(y)

	logger := log.GetLoggerWithName("gpr")
	logger.Debug("fitting GPR",
		log.SamplesKey, n,
		log.FeaturesKey, d,
		log.AlphaKey, g.alpha,
		log.LengthScaleKey, g.kernel.LengthScale,
	)

	if g.optimizer == OptimizerLML {
		g.kernel = g.optimizeLengthScale(yCopy)
		logger.Debug("length-scale optimized", log.LengthScaleKey, g.kernel.LengthScale)
	}

	chol, dual, err := g.factorize(g.kernel, yCopy)
	if err != nil {
		return err
	}
	g.chol = chol
	g.dual = dual

	g.SetFitted()
	return nil
}

// factorize builds the kernel matrix for the stored training inputs, adds
// alpha to the diagonal, and solves for the dual coefficients.
func (g *GPR) factorize(kernel *RBF, y *mat.VecDense) (*mat.Cholesky, *mat.VecDense, error) {
	n, _ := g.x.Dims()

	k := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		xi := g.x.RawRowView(i)
		k.SetSym(i, i, kernel.Eval(xi, xi)+g.alpha)
		for j := i + 1; j < n; j++ {
			k.SetSym(i, j, kernel.Eval(xi, g.x.RawRowView(j)))
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(k); !ok {
		return nil, nil, errors.NewModelError("GPR.Fit", "kernel matrix factorization failed", errors.ErrNotPositiveDefinite)
	}

	dual := mat.NewVecDense(n, nil)
	if err := chol.SolveVecTo(dual, y); err != nil {
		return nil, nil, errors.NewModelError("GPR.Fit", "kernel system solve failed", err)
	}

	return &chol, dual, nil
}

// logMarginalLikelihood computes the log marginal likelihood of y under the
// given factorization:
//
//	log p(y|X) = -½·yᵀ·dual - ½·log|K| - (n/2)·log 2π
func logMarginalLikelihood(chol *mat.Cholesky, dual, y *mat.VecDense) float64 {
	n := y.Len()
	return -0.5*mat.Dot(y, dual) - 0.5*chol.LogDet() - 0.5*float64(n)*math.Log(2*math.Pi)
}

// optimizeLengthScale searches the kernel's length-scale bounds for the
// value maximizing the log marginal likelihood. The search is a
// golden-section scan over the log of the length-scale; candidates whose
// kernel matrix fails to factorize score negative infinity.
func (g *GPR) optimizeLengthScale(y *mat.VecDense) *RBF {
	const maxIter = 48
	const tol = 1e-4

	score := func(logL float64) float64 {
		candidate := g.kernel.WithLengthScale(math.Exp(logL))
		chol, dual, err := g.factorize(candidate, y)
		if err != nil {
			return math.Inf(-1)
		}
		return logMarginalLikelihood(chol, dual, y)
	}

	lo := math.Log(g.kernel.LengthScaleBounds[0])
	hi := math.Log(g.kernel.LengthScaleBounds[1])
	invPhi := (math.Sqrt(5) - 1) / 2

	a, b := lo, hi
	c := b - invPhi*(b-a)
	d := a + invPhi*(b-a)
	fc, fd := score(c), score(d)

	iter := 0
	for ; iter < maxIter && b-a > tol; iter++ {
		if fc > fd {
			b, d, fd = d, c, fc
			c = b - invPhi*(b-a)
			fc = score(c)
		} else {
			a, c, fc = c, d, fd
			d = a + invPhi*(b-a)
			fd = score(d)
		}
	}
	if iter == maxIter && b-a > tol {
		errors.Warn(errors.NewConvergenceWarning("GPR.optimizeLengthScale", maxIter,
			"length-scale search interval did not shrink below tolerance"))
	}

	best := (a + b) / 2
	if math.IsInf(score(best), -1) {
		// Every candidate failed to factorize; keep the configured kernel.
		return g.kernel
	}
	return g.kernel.WithLengthScale(math.Exp(best))
}

// Predict returns the predictive mean at the rows of X.
func (g *GPR) Predict(X mat.Matrix) (*mat.VecDense, error) {
	mean, _, err := g.predict(X, false)
	return mean, err
}

// PredictWithStd returns the predictive mean and standard deviation at the
// rows of X.
func (g *GPR) PredictWithStd(X mat.Matrix) (*mat.VecDense, *mat.VecDense, error) {
	return g.predict(X, true)
}

func (g *GPR) predict(X mat.Matrix, withStd bool) (_ *mat.VecDense, _ *mat.VecDense, err error) {
	defer errors.Recover(&err, "GPR.Predict")

	if !g.IsFitted() {
		return nil, nil, errors.NewNotFittedError("GPR", "Predict")
	}

	nTest, d := X.Dims()
	nTrain, dTrain := g.x.Dims()
	if d != dTrain {
		return nil, nil, errors.NewDimensionError("GPR.Predict", dTrain, d, 1)
	}

	// Cross-covariance between test and training points.
	kstar := mat.NewDense(nTest, nTrain, nil)
	row := make([]float64, d)
	for i := 0; i < nTest; i++ {
		mat.Row(row, i, X)
		for j := 0; j < nTrain; j++ {
			kstar.Set(i, j, g.kernel.Eval(row, g.x.RawRowView(j)))
		}
	}

	mean := mat.NewVecDense(nTest, nil)
	mean.MulVec(kstar, g.dual)

	if err := errors.CheckNumericalStability("GPR.Predict", mean.RawVector().Data, 0); err != nil {
		return nil, nil, err
	}

	if !withStd {
		return mean, nil, nil
	}

	// Predictive variance: k(x,x) - k*ᵀ·(K + alpha·I)⁻¹·k*, clamped at
	// zero against round-off.
	v := mat.NewDense(nTrain, nTest, nil)
	if solveErr := g.chol.SolveTo(v, kstar.T()); solveErr != nil {
		return nil, nil, errors.NewModelError("GPR.Predict", "variance solve failed", solveErr)
	}

	std := mat.NewVecDense(nTest, nil)
	for i := 0; i < nTest; i++ {
		mat.Row(row, i, X)
		variance := g.kernel.Eval(row, row)
		for j := 0; j < nTrain; j++ {
			variance -= kstar.At(i, j) * v.At(j, i)
		}
		if variance < 0 {
			variance = 0
		}
		std.SetVec(i, math.Sqrt(variance))
	}

	return mean, std, nil
}
