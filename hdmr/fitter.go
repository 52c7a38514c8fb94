// Package hdmr implements the RS-HDMR-GPR fitter: a sum of low-dimensional
// component functions, one per combination of input dimensions, each fit by
// an independent Gaussian Process Regressor and refined by cycling over the
// components.
//
// The cycle loop is deliberately Gauss-Seidel: components are updated in
// place one at a time, and later components within a cycle see the earlier
// components' already-updated values. The ordering is part of the
// algorithm, not an implementation accident.
package hdmr

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/daliboussaidi/rshdmr/core/model"
	"github.com/daliboussaidi/rshdmr/gpr"
	"github.com/daliboussaidi/rshdmr/metrics"
	"github.com/daliboussaidi/rshdmr/pkg/errors"
	"github.com/daliboussaidi/rshdmr/pkg/log"
)

// Fitter fits an RS-HDMR-GPR decomposition of the given order.
type Fitter struct {
	model.BaseEstimator

	order       int
	alpha       float64
	decayAlpha  bool
	scaleFactor float64
	lengthScale float64
	cycles      int
	init        Init
	mixing      bool
	optimizer   string
	factory     RegressorFactory

	// Fitted state.
	nFeatures  int
	combos     [][]int
	regressors []Regressor
	history    []float64
}

// New creates a Fitter for components of the given order. Inputs are
// expected to be scaled to [0,1] by the caller.
func New(order int, opts ...Option) *Fitter {
	f := &Fitter{
		order:       order,
		alpha:       1e-8,
		scaleFactor: 1,
		lengthScale: 0.6,
		cycles:      10,
		init:        InitNaive,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.factory == nil {
		f.factory = func(alpha float64) Regressor {
			return gpr.New(gpr.NewRBF(f.lengthScale), alpha, gpr.WithOptimizer(f.optimizer))
		}
	}
	return f
}

// Combinations returns the combination list built during Fit. The slice
// index is the component index used throughout fitting and evaluation.
func (f *Fitter) Combinations() [][]int {
	return f.combos
}

// Regressors returns the fitted regressor collection, one per combination.
func (f *Fitter) Regressors() []Regressor {
	return f.regressors
}

// History returns the per-cycle train RMSE recorded by the last Fit.
func (f *Fitter) History() []float64 {
	return f.history
}

// Fit runs the full cycle loop on the training data and returns the
// per-cycle train RMSE history.
func (f *Fitter) Fit(X mat.Matrix, y *mat.VecDense) (_ []float64, err error) {
	defer errors.Recover(&err, "Fitter.Fit")

	n, d := X.Dims()
	if n == 0 || d == 0 {
		return nil, errors.NewModelError("Fitter.Fit", "empty data", errors.ErrEmptyData)
	}
	if y.Len() != n {
		return nil, errors.NewDimensionError("Fitter.Fit", n, y.Len(), 0)
	}
	if f.cycles < 1 {
		return nil, errors.NewValidationError("cycles", "must be at least 1", f.cycles)
	}

	combos, err := Combinations(d, f.order)
	if err != nil {
		return nil, err
	}
	m := len(combos)

	logger := log.GetLoggerWithName("hdmr").With(
		log.ModelNameKey, "RSHDMRGPR",
		log.OrderKey, f.order,
		log.CombinationsKey, m,
	)
	logger.Info("fit started",
		log.OperationKey, "fit",
		log.SamplesKey, n,
		log.FeaturesKey, d,
		log.AlphaKey, f.alpha,
	)

	components, err := seedComponents(X, y, combos, f.init)
	if err != nil {
		return nil, err
	}

	// Per-combination training sub-matrices, reused every cycle.
	subX := make([]*mat.Dense, m)
	for i, combo := range combos {
		subX[i] = selectColumns(X, combo)
	}

	// With decay enabled the collection is rebuilt at the top of every
	// cycle, so the initial instances would never be fit.
	regressors := make([]Regressor, m)
	if !f.decayAlpha {
		for i := range regressors {
			regressors[i] = f.factory(f.alpha)
		}
	}

	maxScaleDown := f.cycles / 3
	history := make([]float64, 0, f.cycles)

	for k := 0; k < f.cycles; k++ {
		if f.decayAlpha {
			// A fresh regressor collection per cycle: the underlying
			// fitting routine cannot be refit with a changed noise
			// hyperparameter, so instances are replaced, never mutated.
			alpha := decayedAlpha(f.alpha, k)
			for i := range regressors {
				regressors[i] = f.factory(alpha)
			}
			logger.Debug("noise level for cycle", log.CycleKey, k, log.AlphaKey, alpha)
		}

		ramp := rampFactor(k, maxScaleDown)

		for i := 0; i < m; i++ {
			// The residual of the target minus every other component is
			// what this component's regressor must learn.
			vect := residual(y, components, i)

			if fitErr := regressors[i].Fit(subX[i], vect); fitErr != nil {
				return nil, errors.Wrapf(fitErr, "component %d, cycle %d", i, k)
			}
			pred, predErr := regressors[i].Predict(subX[i])
			if predErr != nil {
				return nil, errors.Wrapf(predErr, "component %d, cycle %d", i, k)
			}

			// Updates land in the matrix immediately: component i+1's
			// residual in this same cycle sees them.
			for r := 0; r < n; r++ {
				if f.mixing {
					components.Set(r, i, (pred.AtVec(r)*ramp+vect.AtVec(r))/2)
				} else {
					components.Set(r, i, pred.AtVec(r)*ramp)
				}
			}
		}

		approx := sumColumns(components, NoExclusion)
		trainRMSE, rmseErr := metrics.ScaledRMSE(y, approx, f.scaleFactor)
		if rmseErr != nil {
			return nil, rmseErr
		}
		history = append(history, trainRMSE)
		logger.Info("cycle finished", log.CycleKey, k, log.RMSEKey, trainRMSE)
	}

	f.nFeatures = d
	f.combos = combos
	f.regressors = regressors
	f.history = history
	f.SetFitted()

	return history, nil
}

// Evaluation holds the test-time output of a fitted decomposition.
type Evaluation struct {
	// TestRMSE is the root-mean-square error on the held-out data, with
	// the scale factor applied.
	TestRMSE float64

	// Predictions are the scaled per-sample predictions.
	Predictions *mat.VecDense

	// ErrorBars are the scaled per-sample combined standard deviations.
	// Component variances are summed (the regressors are independent)
	// before the square root is taken.
	ErrorBars *mat.VecDense
}

// Evaluate applies the fitted per-combination regressors to held-out data
// and aggregates their predictions and predictive variances.
func (f *Fitter) Evaluate(X mat.Matrix, y *mat.VecDense) (_ *Evaluation, err error) {
	defer errors.Recover(&err, "Fitter.Evaluate")

	if !f.IsFitted() {
		return nil, errors.NewNotFittedError("RSHDMRGPR", "Evaluate")
	}

	n, d := X.Dims()
	if d != f.nFeatures {
		return nil, errors.NewDimensionError("Fitter.Evaluate", f.nFeatures, d, 1)
	}
	if y.Len() != n {
		return nil, errors.NewDimensionError("Fitter.Evaluate", n, y.Len(), 0)
	}

	m := len(f.combos)
	components := mat.NewDense(n, m, nil)
	variances := mat.NewDense(n, m, nil)

	for i, combo := range f.combos {
		sub := selectColumns(X, combo)
		mean, std, predErr := f.regressors[i].PredictWithStd(sub)
		if predErr != nil {
			return nil, errors.Wrapf(predErr, "component %d", i)
		}
		for r := 0; r < n; r++ {
			components.Set(r, i, mean.AtVec(r))
			s := std.AtVec(r)
			variances.Set(r, i, s*s)
		}
	}

	pred := sumColumns(components, NoExclusion)
	testRMSE, rmseErr := metrics.ScaledRMSE(y, pred, f.scaleFactor)
	if rmseErr != nil {
		return nil, rmseErr
	}

	scaledPred := mat.NewVecDense(n, nil)
	scaledPred.ScaleVec(f.scaleFactor, pred)

	bars := sumColumns(variances, NoExclusion)
	for r := 0; r < n; r++ {
		bars.SetVec(r, math.Sqrt(bars.AtVec(r))*f.scaleFactor)
	}

	log.GetLoggerWithName("hdmr").Info("evaluation finished",
		log.OperationKey, "evaluate",
		log.SamplesKey, n,
		log.RMSEKey, testRMSE,
	)

	return &Evaluation{
		TestRMSE:    testRMSE,
		Predictions: scaledPred,
		ErrorBars:   bars,
	}, nil
}

// Result bundles the complete output of a fit-and-evaluate run.
type Result struct {
	// TrainRMSE is the per-cycle train RMSE history.
	TrainRMSE []float64

	// TestRMSE is the scaled RMSE on the held-out data.
	TestRMSE float64

	// Regressors is the fitted regressor collection, one per combination.
	Regressors []Regressor

	// Predictions are the scaled test predictions.
	Predictions *mat.VecDense

	// ErrorBars are the scaled combined per-sample uncertainties.
	ErrorBars *mat.VecDense
}

// Run fits a decomposition of the given order on the training data and
// evaluates it on the held-out data in one call.
func Run(XTrain mat.Matrix, yTrain *mat.VecDense, XTest mat.Matrix, yTest *mat.VecDense, order int, opts ...Option) (*Result, error) {
	fitter := New(order, opts...)

	history, err := fitter.Fit(XTrain, yTrain)
	if err != nil {
		return nil, err
	}
	eval, err := fitter.Evaluate(XTest, yTest)
	if err != nil {
		return nil, err
	}

	return &Result{
		TrainRMSE:   history,
		TestRMSE:    eval.TestRMSE,
		Regressors:  fitter.Regressors(),
		Predictions: eval.Predictions,
		ErrorBars:   eval.ErrorBars,
	}, nil
}

// NoExclusion makes sumColumns include every column.
const NoExclusion = -1

// sumColumns sums the columns of f into a vector, skipping the column with
// index exclude. Any exclude outside [0, m) means no column is skipped.
func sumColumns(f *mat.Dense, exclude int) *mat.VecDense {
	n, m := f.Dims()
	s := mat.NewVecDense(n, nil)
	for j := 0; j < m; j++ {
		if j == exclude {
			continue
		}
		for i := 0; i < n; i++ {
			s.SetVec(i, s.AtVec(i)+f.At(i, j))
		}
	}
	return s
}

// residual computes y minus the row-sum of every component except column i.
func residual(y *mat.VecDense, components *mat.Dense, i int) *mat.VecDense {
	others := sumColumns(components, i)
	out := mat.NewVecDense(y.Len(), nil)
	out.SubVec(y, others)
	return out
}

// decayedAlpha applies the noise schedule: the base level for cycles 0 and
// 1, one decade lower from cycle 2 onward. The decay compounds once at the
// regime transition; later cycles keep the decayed level.
func decayedAlpha(base float64, k int) float64 {
	if k < 2 {
		return base
	}
	return base * 0.1
}

// rampFactor scales freshly fitted predictions up over roughly the first
// third of the cycles, capping at 1, to limit overshoot while the
// component estimates are still unstable.
func rampFactor(k, maxScaleDown int) float64 {
	if maxScaleDown <= 0 {
		return 1
	}
	ramp := float64(k+1)/float64(maxScaleDown) + 0.5
	if ramp > 1 {
		return 1
	}
	return ramp
}

// selectColumns copies the given columns of X into a new dense matrix.
func selectColumns(X mat.Matrix, cols []int) *mat.Dense {
	n, _ := X.Dims()
	out := mat.NewDense(n, len(cols), nil)
	buf := make([]float64, n)
	for j, c := range cols {
		mat.Col(buf, c, X)
		out.SetCol(j, buf)
	}
	return out
}
