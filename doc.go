// Package rshdmr provides RS-HDMR-GPR for Go: Random-Sampling
// High-Dimensional Model Representation combined with Gaussian Process
// Regression.
//
// A high-dimensional target function is approximated as a sum of
// lower-dimensional component functions, one per combination of input
// dimensions, each fit by an independent Gaussian Process Regressor.
// The fit cycles over the components in a Gauss-Seidel fashion: every
// component is repeatedly refit against the residual of the target minus
// the sum of all other current components.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/daliboussaidi/rshdmr/hdmr"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(4, 2, []float64{0, 0, 0.3, 0.1, 0.6, 0.4, 1, 1})
//	    y := mat.NewVecDense(4, []float64{0, 0.4, 1.0, 2.0})
//
//	    fitter := hdmr.New(1, hdmr.WithCycles(10), hdmr.WithAlpha(1e-6))
//	    history, err := fitter.Fit(X, y)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("train RMSE per cycle:", history)
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - hdmr: the RS-HDMR-GPR fitter (combinations, cycle loop, evaluator)
//   - gpr: the Gaussian Process Regression primitive with an RBF kernel
//   - dataset: whitespace-delimited table I/O, min-max scaling, splitting
//   - metrics: regression error metrics (RMSE, MSE)
//   - plotting: convergence and correlation diagnostic charts
package rshdmr
