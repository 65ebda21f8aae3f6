// Package phasorplot draws a solution vector as phasors: one line from the
// origin to each unknown in the complex plane.
package phasorplot

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/complexsolver/cplx"
	"github.com/katalvlaran/complexsolver/sheet"
)

// DefaultSize is the edge length of the square canvas.
const DefaultSize = 4 * vg.Inch

// margin widens the axes past the longest phasor.
const margin = 1.15

var (
	// ErrEmpty is returned for an empty vector.
	ErrEmpty = errors.New("phasorplot: nothing to draw")

	// ErrNonFinite is returned when an unknown has a NaN or infinite part.
	ErrNonFinite = errors.New("phasorplot: non-finite value")
)

// New builds the plot for x.
func New(x []cplx.Complex, title string) (*plot.Plot, error) {
	if len(x) == 0 {
		return nil, ErrEmpty
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Re"
	p.Y.Label.Text = "Im"
	p.Add(plotter.NewGrid())

	var reach float64
	tips := make(plotter.XYs, len(x))
	names := make([]string, len(x))
	for k, z := range x {
		if !z.IsFinite() {
			return nil, fmt.Errorf("%w: %s = %v", ErrNonFinite, sheet.UnknownLabel(k), z)
		}
		tip := plotter.XY{X: float64(z.Re), Y: float64(z.Im)}
		line, err := plotter.NewLine(plotter.XYs{{}, tip})
		if err != nil {
			return nil, fmt.Errorf("phasorplot: %w", err)
		}
		line.Color = plotutil.Color(k)
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(sheet.UnknownLabel(k), line)

		tips[k] = tip
		names[k] = sheet.UnknownLabel(k)
		reach = math.Max(reach, float64(z.Abs()))
	}

	heads, err := plotter.NewScatter(tips)
	if err != nil {
		return nil, fmt.Errorf("phasorplot: %w", err)
	}
	heads.GlyphStyle.Shape = plotutil.Shape(0)
	p.Add(heads)

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: tips, Labels: names})
	if err != nil {
		return nil, fmt.Errorf("phasorplot: %w", err)
	}
	p.Add(labels)

	if reach == 0 {
		reach = 1
	}
	reach *= margin
	p.X.Min, p.X.Max = -reach, reach
	p.Y.Min, p.Y.Max = -reach, reach
	p.Legend.Top = true

	return p, nil
}

// Save renders x to path; the extension picks the format (png, svg, pdf…).
func Save(x []cplx.Complex, title, path string) error {
	p, err := New(x, title)
	if err != nil {
		return err
	}
	if err = p.Save(DefaultSize, DefaultSize, path); err != nil {
		return fmt.Errorf("phasorplot: save %s: %w", path, err)
	}

	return nil
}

// Write renders x to w in format ("png", "svg", …).
func Write(w io.Writer, x []cplx.Complex, title, format string) error {
	p, err := New(x, title)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(DefaultSize, DefaultSize, format)
	if err != nil {
		return fmt.Errorf("phasorplot: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("phasorplot: write: %w", err)
	}

	return nil
}
