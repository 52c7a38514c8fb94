// Package plotting renders the diagnostic charts of a fit: the per-cycle
// RMSE convergence curve and the prediction-vs-target correlation plots.
// The fitter itself never draws; callers hand its outputs to this package.
package plotting

import (
	"image/color"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/daliboussaidi/rshdmr/pkg/errors"
)

// ConvergencePlot writes the per-cycle train RMSE history as a line chart.
// The output format follows the file extension (.png, .pdf, .svg).
func ConvergencePlot(history []float64, path string) error {
	if len(history) == 0 {
		return errors.NewValueError("plotting.ConvergencePlot", "empty RMSE history")
	}

	pts := make(plotter.XYs, len(history))
	for i, v := range history {
		pts[i].X = float64(i)
		pts[i].Y = v
	}

	p := plot.New()
	p.X.Label.Text = "number of cycles"
	p.Y.Label.Text = "fit_rmse"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return errors.Wrap(err, "plotting: convergence line")
	}
	p.Add(line)

	return errors.Wrap(p.Save(6*vg.Inch, 4*vg.Inch, path), "plotting: save convergence plot")
}

// CorrelationPlot writes a predictions-vs-targets scatter chart.
func CorrelationPlot(target, pred *mat.VecDense, path string) error {
	pts, err := pairs(target, pred, "plotting.CorrelationPlot")
	if err != nil {
		return err
	}

	p := plot.New()
	p.X.Label.Text = "Target"
	p.Y.Label.Text = "Predictions"
	p.Add(plotter.NewGrid())

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.Wrap(err, "plotting: correlation scatter")
	}
	scatter.GlyphStyle.Radius = vg.Points(1)
	scatter.GlyphStyle.Color = color.RGBA{B: 255, A: 255}
	p.Add(scatter)

	return errors.Wrap(p.Save(6*vg.Inch, 4*vg.Inch, path), "plotting: save correlation plot")
}

// CorrelationPlotWithErrorBars writes the predictions-vs-targets scatter
// with a vertical uncertainty bar per sample.
func CorrelationPlotWithErrorBars(target, pred, bars *mat.VecDense, path string) error {
	pts, err := pairs(target, pred, "plotting.CorrelationPlotWithErrorBars")
	if err != nil {
		return err
	}
	if bars.Len() != target.Len() {
		return errors.NewDimensionError("plotting.CorrelationPlotWithErrorBars", target.Len(), bars.Len(), 0)
	}

	yerrs := make(plotter.YErrors, bars.Len())
	for i := range yerrs {
		e := bars.AtVec(i)
		yerrs[i].Low = e
		yerrs[i].High = e
	}

	p := plot.New()
	p.X.Label.Text = "Target"
	p.Y.Label.Text = "Predictions"
	p.Add(plotter.NewGrid())

	errBars, err := plotter.NewYErrorBars(errorBarData{XYs: pts, YErrors: yerrs})
	if err != nil {
		return errors.Wrap(err, "plotting: error bars")
	}
	errBars.LineStyle.Color = color.RGBA{R: 255, A: 255}
	p.Add(errBars)

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.Wrap(err, "plotting: correlation scatter")
	}
	scatter.GlyphStyle.Radius = vg.Points(1)
	scatter.GlyphStyle.Color = color.RGBA{B: 255, A: 255}
	p.Add(scatter)

	return errors.Wrap(p.Save(6*vg.Inch, 4*vg.Inch, path), "plotting: save error-bar plot")
}

// errorBarData satisfies the XYer and YErrorer interfaces that
// plotter.NewYErrorBars consumes.
type errorBarData struct {
	plotter.XYs
	plotter.YErrors
}

func pairs(target, pred *mat.VecDense, op string) (plotter.XYs, error) {
	if target.Len() == 0 {
		return nil, errors.NewValueError(op, "empty vector")
	}
	if pred.Len() != target.Len() {
		return nil, errors.NewDimensionError(op, target.Len(), pred.Len(), 0)
	}
	pts := make(plotter.XYs, target.Len())
	for i := range pts {
		pts[i].X = target.AtVec(i)
		pts[i].Y = pred.AtVec(i)
	}
	return pts, nil
}
