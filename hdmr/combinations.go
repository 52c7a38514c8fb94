package hdmr

import (
	"gonum.org/v1/gonum/stat/combin"

	"github.com/daliboussaidi/rshdmr/pkg/errors"
)

// Combinations enumerates all unordered subsets of size order of the
// feature indices {0, ..., d-1}, in lexicographic order. The ordering is
// deterministic; the fitter relies on the same combination index being
// used at fit and evaluation time.
func Combinations(d, order int) ([][]int, error) {
	if order < 1 {
		return nil, errors.NewValidationError("order", "must be at least 1", order)
	}
	if order > d {
		return nil, errors.NewValidationError("order", "must not exceed the number of features", order)
	}

	return combin.Combinations(d, order), nil
}
