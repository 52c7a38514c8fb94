package dataset

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/daliboussaidi/rshdmr/pkg/errors"
)

// Split holds the train/test partition of a dataset. The two sets are
// disjoint.
type Split struct {
	XTrain *mat.Dense
	YTrain *mat.VecDense
	XTest  *mat.Dense
	YTest  *mat.VecDense
}

// TrainTestSplit draws disjoint random train and test sets from X and y.
// trainFrac and testFrac are fractions of the total sample count; their
// sum must not exceed 1. The same seed reproduces the same partition.
func TrainTestSplit(X *mat.Dense, y *mat.VecDense, trainFrac, testFrac float64, seed int64) (*Split, error) {
	n, d := X.Dims()
	if n == 0 {
		return nil, errors.NewModelError("dataset.TrainTestSplit", "empty data", errors.ErrEmptyData)
	}
	if y.Len() != n {
		return nil, errors.NewDimensionError("dataset.TrainTestSplit", n, y.Len(), 0)
	}
	if trainFrac <= 0 || testFrac <= 0 || trainFrac+testFrac > 1 {
		return nil, errors.NewValidationError("trainFrac/testFrac",
			"fractions must be positive and sum to at most 1",
			[2]float64{trainFrac, testFrac})
	}

	nTrain := int(float64(n) * trainFrac)
	nTest := int(float64(n) * testFrac)
	if nTrain < 1 || nTest < 1 {
		return nil, errors.NewValidationError("trainFrac/testFrac",
			"fractions select fewer than one sample",
			[2]float64{trainFrac, testFrac})
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)

	take := func(idx []int) (*mat.Dense, *mat.VecDense) {
		xs := mat.NewDense(len(idx), d, nil)
		ys := mat.NewVecDense(len(idx), nil)
		for i, p := range idx {
			for j := 0; j < d; j++ {
				xs.Set(i, j, X.At(p, j))
			}
			ys.SetVec(i, y.AtVec(p))
		}
		return xs, ys
	}

	xTrain, yTrain := take(perm[:nTrain])
	xTest, yTest := take(perm[nTrain : nTrain+nTest])

	return &Split{
		XTrain: xTrain,
		YTrain: yTrain,
		XTest:  xTest,
		YTest:  yTest,
	}, nil
}
