// Package plot samples a catalog expression and its derivative over an interval
// and draws both curves with gonum/plot.
//
// The derivative is not computed numerically: the expression is built once on a
// vector of sample points and the backward pass is seeded with ones, so x.Grad
// holds dy/dx at every sample.
package plot

import (
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"github.com/born-ml/gograd/internal/autodiff"
	"github.com/born-ml/gograd/internal/expr"
	"github.com/born-ml/gograd/internal/tensor"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"k8s.io/klog/v2"
)

// DefaultSamples is the number of points used when Sample is given n <= 0.
const DefaultSamples = 200

// ErrInterval is returned for empty or reversed sampling intervals.
var ErrInterval = errors.New("invalid interval")

// Curve holds an expression sampled at evenly spaced points.
type Curve struct {
	Expression expr.Expression
	X, Y, Grad []float64
}

// Sample evaluates e and its derivative at n points in [from, to].
func Sample(e expr.Expression, from, to float64, n int) (*Curve, error) {
	if !(from < to) {
		return nil, errors.Wrapf(ErrInterval, "[%g, %g]", from, to)
	}
	if n <= 0 {
		n = DefaultSamples
	}
	xs, err := tensor.Linspace(from, to, n)
	if err != nil {
		return nil, err
	}
	x := autodiff.NewVariable(xs, autodiff.WithName("x"))
	y, _, err := e.Build(x)
	if err != nil {
		return nil, errors.WithMessagef(err, "sampling %q on [%g, %g]", e.Name, from, to)
	}
	if err := y.SetGrad(tensor.OnesLike(y.Data())); err != nil {
		return nil, err
	}
	if err := y.Backward(autodiff.RetainGrad(false)); err != nil {
		return nil, err
	}
	klog.V(2).Infof("plot: sampled %q at %d points on [%g, %g]", e.Name, n, from, to)
	return &Curve{
		Expression: e,
		X:          xs.Data(),
		Y:          y.Data().Data(),
		Grad:       x.Grad().Data(),
	}, nil
}

func xys(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}

// Plot lays out the value and derivative curves.
func (c *Curve) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "y = " + c.Expression.Formula
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	value, err := plotter.NewLine(xys(c.X, c.Y))
	if err != nil {
		return nil, errors.Wrap(err, "value curve")
	}
	value.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	value.Width = vg.Points(1.5)

	deriv, err := plotter.NewLine(xys(c.X, c.Grad))
	if err != nil {
		return nil, errors.Wrap(err, "derivative curve")
	}
	deriv.Color = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	deriv.Width = vg.Points(1.5)
	deriv.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}

	p.Add(value, deriv)
	p.Legend.Add("y", value)
	p.Legend.Add("dy/dx", deriv)
	p.Legend.Top = true
	return p, nil
}

// Image dimensions.
var (
	Width  = 8 * vg.Inch
	Height = 5 * vg.Inch
)

// Save writes the plot to path; the format follows the extension (.png, .svg, .pdf, ...).
func (c *Curve) Save(path string) error {
	p, err := c.Plot()
	if err != nil {
		return err
	}
	if err := p.Save(Width, Height, path); err != nil {
		return errors.Wrapf(err, "saving plot to %q", path)
	}
	klog.V(1).Infof("plot: wrote %s", path)
	return nil
}

// Encode writes the plot in the given format ("png", "svg", ...) to w.
func (c *Curve) Encode(w io.Writer, format string) (int64, error) {
	p, err := c.Plot()
	if err != nil {
		return 0, err
	}
	wt, err := p.WriterTo(Width, Height, format)
	if err != nil {
		return 0, errors.Wrapf(err, "format %q", format)
	}
	return wt.WriteTo(w)
}

// FormatOf returns the image format implied by path's extension, defaulting to png.
func FormatOf(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return "png"
	}
	return ext
}
