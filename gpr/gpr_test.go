package gpr

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/daliboussaidi/rshdmr/pkg/errors"
)

func sineData(n int, seed int64) (*mat.Dense, *mat.VecDense) {
	rng := rand.New(rand.NewSource(seed))
	x := mat.NewDense(n, 1, nil)
	y := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		v := rng.Float64()
		x.Set(i, 0, v)
		y.SetVec(i, math.Sin(2*math.Pi*v))
	}
	return x, y
}

func TestGPRFitPredict(t *testing.T) {
	x, y := sineData(25, 1)

	g := New(NewRBF(0.3), 1e-8)
	if err := g.Fit(x, y); err != nil {
		t.Fatalf("Fit() error: %v", err)
	}

	// With near-zero noise the regressor interpolates the training data.
	pred, err := g.Predict(x)
	if err != nil {
		t.Fatalf("Predict() error: %v", err)
	}
	for i := 0; i < y.Len(); i++ {
		if diff := math.Abs(pred.AtVec(i) - y.AtVec(i)); diff > 1e-4 {
			t.Errorf("training point %d: |pred - y| = %v", i, diff)
		}
	}

	// Held-out points from the same smooth function.
	xt, yt := sineData(10, 2)
	predTest, err := g.Predict(xt)
	if err != nil {
		t.Fatalf("Predict() error: %v", err)
	}
	for i := 0; i < yt.Len(); i++ {
		if diff := math.Abs(predTest.AtVec(i) - yt.AtVec(i)); diff > 0.05 {
			t.Errorf("test point %d: |pred - y| = %v", i, diff)
		}
	}
}

func TestGPRPredictWithStd(t *testing.T) {
	x, y := sineData(20, 3)

	g := New(NewRBF(0.3), 1e-8)
	if err := g.Fit(x, y); err != nil {
		t.Fatalf("Fit() error: %v", err)
	}

	_, stdTrain, err := g.PredictWithStd(x)
	if err != nil {
		t.Fatalf("PredictWithStd() error: %v", err)
	}
	for i := 0; i < stdTrain.Len(); i++ {
		s := stdTrain.AtVec(i)
		if s < 0 {
			t.Errorf("std[%d] = %v, want >= 0", i, s)
		}
		// Uncertainty collapses at the training points.
		if s > 1e-2 {
			t.Errorf("std[%d] = %v at a training point, want near zero", i, s)
		}
	}

	// A point far from every training input reverts toward the prior.
	far := mat.NewDense(1, 1, []float64{50})
	_, stdFar, err := g.PredictWithStd(far)
	if err != nil {
		t.Fatalf("PredictWithStd() error: %v", err)
	}
	if s := stdFar.AtVec(0); s < 0.9 {
		t.Errorf("std far from data = %v, want close to prior std 1", s)
	}
}

func TestGPRPredictBeforeFit(t *testing.T) {
	g := New(NewRBF(0.6), 1e-8)
	x := mat.NewDense(2, 1, []float64{0, 1})

	_, err := g.Predict(x)
	if err == nil {
		t.Fatal("expected a NotFittedError")
	}
	var notFitted *errors.NotFittedError
	if !errors.As(err, &notFitted) {
		t.Errorf("error = %v, want NotFittedError", err)
	}
}

func TestGPRFitValidation(t *testing.T) {
	g := New(NewRBF(0.6), 1e-8)

	t.Run("target length mismatch", func(t *testing.T) {
		x := mat.NewDense(3, 1, []float64{0, 0.5, 1})
		y := mat.NewVecDense(2, []float64{0, 1})
		if err := g.Fit(x, y); err == nil {
			t.Error("expected a dimension error")
		}
	})

	t.Run("feature count mismatch on predict", func(t *testing.T) {
		x := mat.NewDense(3, 1, []float64{0, 0.5, 1})
		y := mat.NewVecDense(3, []float64{0, 1, 0})
		if err := g.Fit(x, y); err != nil {
			t.Fatalf("Fit() error: %v", err)
		}
		if _, err := g.Predict(mat.NewDense(1, 2, []float64{0, 0})); err == nil {
			t.Error("expected a dimension error")
		}
	})
}

func TestGPROptimizeLengthScale(t *testing.T) {
	x, y := sineData(30, 4)

	// Start the search from a length-scale far too large for a full sine
	// period on [0,1].
	g := New(NewRBF(10), 1e-6, WithOptimizer(OptimizerLML))
	if err := g.Fit(x, y); err != nil {
		t.Fatalf("Fit() error: %v", err)
	}

	tuned := g.Kernel().LengthScale
	if tuned < DefaultLengthScaleBounds[0] || tuned > DefaultLengthScaleBounds[1] {
		t.Fatalf("tuned length-scale %v outside bounds %v", tuned, DefaultLengthScaleBounds)
	}
	if tuned >= 10 {
		t.Errorf("tuned length-scale = %v, want below the starting value", tuned)
	}

	// The tuned kernel still fits the data well.
	pred, err := g.Predict(x)
	if err != nil {
		t.Fatalf("Predict() error: %v", err)
	}
	var sumSq float64
	for i := 0; i < y.Len(); i++ {
		d := pred.AtVec(i) - y.AtVec(i)
		sumSq += d * d
	}
	if rmse := math.Sqrt(sumSq / float64(y.Len())); rmse > 0.01 {
		t.Errorf("train RMSE after tuning = %v, want < 0.01", rmse)
	}
}

func TestGPRAlphaAccessor(t *testing.T) {
	g := New(NewRBF(0.6), 1e-5)
	if g.Alpha() != 1e-5 {
		t.Errorf("Alpha() = %v, want 1e-5", g.Alpha())
	}
}
