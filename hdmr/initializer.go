package hdmr

import (
	"gonum.org/v1/gonum/mat"

	"github.com/daliboussaidi/rshdmr/pkg/errors"
	"github.com/daliboussaidi/rshdmr/pkg/log"
)

// seedComponents builds the initial n×m component-function matrix for the
// given combinations.
func seedComponents(X mat.Matrix, y *mat.VecDense, combos [][]int, init Init) (*mat.Dense, error) {
	n := y.Len()
	m := len(combos)

	switch init {
	case InitNaive:
		// Every cell gets mean(y)/m, so the row-sum over all components
		// reproduces the target mean exactly at cycle zero.
		mean := mat.Sum(y) / float64(n)
		cell := mean / float64(m)
		f := mat.NewDense(n, m, nil)
		for i := 0; i < n; i++ {
			for j := 0; j < m; j++ {
				f.Set(i, j, cell)
			}
		}
		return f, nil

	case InitPoly:
		f := mat.NewDense(n, m, nil)
		col := make([]float64, n)
		for j, combo := range combos {
			// Only the combination's first dimension is used, whatever
			// the order.
			mat.Col(col, combo[0], X)
			seed, err := polyEval(col, y)
			if err != nil {
				return nil, err
			}
			f.SetCol(j, seed)
		}
		log.GetLoggerWithName("hdmr").Info("polynomial initialization used to seed component functions",
			log.CombinationsKey, m)
		return f, nil

	default:
		return nil, errors.NewValidationError("init", "unknown initialization policy", string(init))
	}
}

// polyDegree is the degree of the least-squares polynomial used by InitPoly.
const polyDegree = 3

// polyEval fits a degree-3 polynomial of y on x by least squares and
// returns its evaluation at every x.
func polyEval(x []float64, y *mat.VecDense) ([]float64, error) {
	n := len(x)

	// Vandermonde design matrix, highest power first.
	v := mat.NewDense(n, polyDegree+1, nil)
	for i := 0; i < n; i++ {
		p := 1.0
		for j := polyDegree; j >= 0; j-- {
			v.Set(i, j, p)
			p *= x[i]
		}
	}

	var coef mat.Dense
	if err := coef.Solve(v, y); err != nil {
		return nil, errors.NewModelError("hdmr.polyEval", "polynomial least-squares fit failed", err)
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		// Horner evaluation with the highest-power coefficient first.
		val := 0.0
		for j := 0; j <= polyDegree; j++ {
			val = val*x[i] + coef.At(j, 0)
		}
		out[i] = val
	}
	return out, nil
}
