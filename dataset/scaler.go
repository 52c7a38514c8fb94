package dataset

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/daliboussaidi/rshdmr/core/model"
	"github.com/daliboussaidi/rshdmr/pkg/errors"
)

// MinMaxScaler scales each feature to [0,1] based on the per-feature
// minimum and maximum seen during Fit. The fitter expects its inputs in
// this range.
type MinMaxScaler struct {
	model.BaseEstimator

	// DataMin holds the per-feature minimum of the fitted data.
	DataMin []float64

	// DataMax holds the per-feature maximum of the fitted data.
	DataMax []float64

	// Scale holds the per-feature range (max - min). Constant features
	// get a scale of 1 so the transform stays finite.
	Scale []float64

	// NFeatures is the number of features seen during Fit.
	NFeatures int
}

// NewMinMaxScaler creates a MinMaxScaler.
func NewMinMaxScaler() *MinMaxScaler {
	return &MinMaxScaler{}
}

// Fit computes the per-feature minimum and maximum of X.
func (m *MinMaxScaler) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("MinMaxScaler.Fit", "empty data", errors.ErrEmptyData)
	}

	m.NFeatures = c
	m.DataMin = make([]float64, c)
	m.DataMax = make([]float64, c)
	m.Scale = make([]float64, c)

	for j := 0; j < c; j++ {
		lo := X.At(0, j)
		hi := X.At(0, j)
		for i := 1; i < r; i++ {
			val := X.At(i, j)
			if val < lo {
				lo = val
			}
			if val > hi {
				hi = val
			}
		}
		m.DataMin[j] = lo
		m.DataMax[j] = hi

		dataRange := hi - lo
		if math.Abs(dataRange) < 1e-8 {
			m.Scale[j] = 1.0
		} else {
			m.Scale[j] = dataRange
		}
	}

	m.SetFitted()
	return nil
}

// Transform scales X using the fitted statistics.
func (m *MinMaxScaler) Transform(X mat.Matrix) (*mat.Dense, error) {
	if !m.IsFitted() {
		return nil, errors.NewNotFittedError("MinMaxScaler", "Transform")
	}

	r, c := X.Dims()
	if c != m.NFeatures {
		return nil, errors.NewDimensionError("MinMaxScaler.Transform", m.NFeatures, c, 1)
	}

	result := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			result.Set(i, j, (X.At(i, j)-m.DataMin[j])/m.Scale[j])
		}
	}
	return result, nil
}

// FitTransform fits on X and transforms the same data.
func (m *MinMaxScaler) FitTransform(X mat.Matrix) (*mat.Dense, error) {
	if err := m.Fit(X); err != nil {
		return nil, err
	}
	return m.Transform(X)
}

// InverseTransform maps scaled data back to the original range.
func (m *MinMaxScaler) InverseTransform(X mat.Matrix) (*mat.Dense, error) {
	if !m.IsFitted() {
		return nil, errors.NewNotFittedError("MinMaxScaler", "InverseTransform")
	}

	r, c := X.Dims()
	if c != m.NFeatures {
		return nil, errors.NewDimensionError("MinMaxScaler.InverseTransform", m.NFeatures, c, 1)
	}

	result := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			result.Set(i, j, X.At(i, j)*m.Scale[j]+m.DataMin[j])
		}
	}
	return result, nil
}

// Range returns the fitted range (max - min) of feature j. For a scaler
// fitted on the target column this is the scale factor the fitter applies
// at reporting time.
func (m *MinMaxScaler) Range(j int) float64 {
	return m.DataMax[j] - m.DataMin[j]
}

// String returns a short description of the scaler.
func (m *MinMaxScaler) String() string {
	if !m.IsFitted() {
		return "MinMaxScaler()"
	}
	return fmt.Sprintf("MinMaxScaler(n_features=%d)", m.NFeatures)
}

// ScaleVec scales a target vector to [0,1] and returns both the scaled
// vector and the original range (max - min).
func ScaleVec(y *mat.VecDense) (*mat.VecDense, float64, error) {
	n := y.Len()
	if n == 0 {
		return nil, 0, errors.NewValueError("dataset.ScaleVec", "empty vector")
	}

	lo, hi := y.AtVec(0), y.AtVec(0)
	for i := 1; i < n; i++ {
		v := y.AtVec(i)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	scale := hi - lo
	div := scale
	if math.Abs(div) < 1e-8 {
		div = 1.0
	}

	out := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		out.SetVec(i, (y.AtVec(i)-lo)/div)
	}
	return out, scale, nil
}
