package gpr

import (
	"math"
)

// Kernel is a covariance function between two input points.
type Kernel interface {
	// Eval computes the kernel value between x1 and x2.
	Eval(x1, x2 []float64) float64
}

// DefaultLengthScaleBounds are the bounds the length-scale is kept within,
// both when set directly and during hyperparameter optimization.
var DefaultLengthScaleBounds = [2]float64{1e-2, 1e2}

// RBF is the radial basis function (squared exponential) kernel:
//
//	k(x1, x2) = exp(-||x1 - x2||² / (2·l²))
type RBF struct {
	// LengthScale controls the smoothness of the interpolation. Larger
	// values give smoother functions.
	LengthScale float64

	// LengthScaleBounds constrain the length-scale during optimization.
	LengthScaleBounds [2]float64
}

// NewRBF creates an RBF kernel with the given length-scale and the default
// bounds.
func NewRBF(lengthScale float64) *RBF {
	return &RBF{
		LengthScale:       lengthScale,
		LengthScaleBounds: DefaultLengthScaleBounds,
	}
}

// Eval computes the RBF kernel value between x1 and x2.
func (k *RBF) Eval(x1, x2 []float64) float64 {
	var sumSq float64
	for i := range x1 {
		diff := x1[i] - x2[i]
		sumSq += diff * diff
	}
	return math.Exp(-sumSq / (2 * k.LengthScale * k.LengthScale))
}

// WithLengthScale returns a copy of the kernel with the length-scale set to
// l, clamped to the kernel's bounds.
func (k *RBF) WithLengthScale(l float64) *RBF {
	clamped := math.Min(math.Max(l, k.LengthScaleBounds[0]), k.LengthScaleBounds[1])
	return &RBF{
		LengthScale:       clamped,
		LengthScaleBounds: k.LengthScaleBounds,
	}
}
