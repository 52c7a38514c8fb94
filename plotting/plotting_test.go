package plotting

import (
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestConvergencePlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conv.png")

	if err := ConvergencePlot([]float64{0.5, 0.2, 0.1, 0.05}, path); err != nil {
		t.Fatalf("ConvergencePlot() error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}

	if err := ConvergencePlot(nil, path); err == nil {
		t.Error("expected an error for an empty history")
	}
}

func TestCorrelationPlot(t *testing.T) {
	target := mat.NewVecDense(3, []float64{1, 2, 3})
	pred := mat.NewVecDense(3, []float64{1.1, 1.9, 3.2})
	path := filepath.Join(t.TempDir(), "corr.png")

	if err := CorrelationPlot(target, pred, path); err != nil {
		t.Fatalf("CorrelationPlot() error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("output file missing: %v", err)
	}

	short := mat.NewVecDense(2, []float64{1, 2})
	if err := CorrelationPlot(target, short, path); err == nil {
		t.Error("expected a dimension error")
	}
}

func TestCorrelationPlotWithErrorBars(t *testing.T) {
	target := mat.NewVecDense(3, []float64{1, 2, 3})
	pred := mat.NewVecDense(3, []float64{1.1, 1.9, 3.2})
	bars := mat.NewVecDense(3, []float64{0.1, 0.2, 0.1})
	path := filepath.Join(t.TempDir(), "bars.png")

	if err := CorrelationPlotWithErrorBars(target, pred, bars, path); err != nil {
		t.Fatalf("CorrelationPlotWithErrorBars() error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("output file missing: %v", err)
	}

	short := mat.NewVecDense(2, []float64{0.1, 0.2})
	if err := CorrelationPlotWithErrorBars(target, pred, short, path); err == nil {
		t.Error("expected a dimension error")
	}
}
