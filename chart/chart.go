package chart

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/ghedger/regression/dataset"
	"github.com/ghedger/regression/fit"
	"github.com/ghedger/regression/util"
)

var (
	p        *plot.Plot
	plotters []plot.Plotter
)

func init() {
	p = plot.New()
}

func Plot() *plot.Plot {
	return p
}

// Clear resets the package plot so successive renders don't stack.
func Clear() {
	p = plot.New()
	plotters = nil
	ResetLineColor()
}

func SetTitles(t, x, y string) {
	p.Title.Text = t
	p.X.Label.Text = x
	p.X.Padding = -1
	p.Y.Label.Text = y
	p.Y.Padding = -1
}

func SetRanges(minX, maxX, minY, maxY float64) {
	p.X.Min, p.X.Max, p.Y.Min, p.Y.Max = minX, maxX, minY, maxY
}

// AddPoints scatters the dataset and pins the plot ranges to it, with
// a margin so edge points stay off the frame.
func AddPoints(data dataset.Points, label string) error {
	if len(data) == 0 {
		return fmt.Errorf("no points to plot")
	}
	s, err := plotter.NewScatter(data)
	if err != nil {
		return err
	}
	s.GlyphStyle = NextGlyphStyle()
	plotters = append(plotters, s)
	if label != "" {
		p.Legend.Add(label, s)
	}
	x0, xn, y0, yn := data.Range()
	x0, xn = util.PadRangeF(x0, xn, 0.05)
	y0, yn = util.PadRangeF(y0, yn, 0.05)
	SetRanges(x0, xn, y0, yn)
	return nil
}

func AddLineWithStyle(xyer plotter.XYer, label string, style draw.LineStyle) {
	l, err := plotter.NewLine(xyer)
	if err != nil {
		panic(err)
	}
	l.LineStyle = style
	plotters = append(plotters, l)
	if label != "" {
		p.Legend.Add(label, l)
	}
}

func AddLine(xyer plotter.XYer, label string) {
	AddLineWithStyle(xyer, label, NextLineStyle())
}

// AddFitLine draws l across [x0, x1].
func AddFitLine(l fit.Line, x0, x1 float64, label string) {
	AddLineWithStyle(FitLine{l, [2]float64{x0, x1}}, label, NextLineStyle())
}

func AddHorizontalWithStyle(f float64, label string, style draw.LineStyle) {
	AddLineWithStyle(Horizontal{f, [2]float64{p.X.Min, p.X.Max}}, label, style)
}

func AddHorizontal(f float64, label string) {
	AddHorizontalWithStyle(f, label, NextLineStyle())
}

func AddVertical(f float64, label string) {
	AddLineWithStyle(Vertical{f, [2]float64{p.Y.Min, p.Y.Max}}, label, NextLineStyle())
}

// AddMark highlights a single (x, y), e.g. the fitted value at the
// mean x.
func AddMark(x, y float64, label string) error {
	s, err := plotter.NewScatter(Point{x, y})
	if err != nil {
		return err
	}
	s.GlyphStyle = draw.GlyphStyle{Color: Red, Radius: W4, Shape: draw.CrossGlyph{}}
	plotters = append(plotters, s)
	if label != "" {
		p.Legend.Add(label, s)
	}
	return nil
}

// Save renders every pending plotter and writes the image, format
// derived from the file extension. With grid set, horizontal rules are
// drawn under the data at every y tick.
func Save(dimX, dimY vg.Length, grid bool, file string) error {
	if grid {
		for _, v := range p.Y.Tick.Marker.Ticks(p.Y.Min, p.Y.Max) {
			l := plotter.DefaultLineStyle
			if !v.IsMinor() {
				l.Color = Color("e8e8e8")
			} else {
				l.Color = Color("c4c4c4")
			}
			AddHorizontalWithStyle(v.Value, "", l)
		}
	}
	for i := len(plotters) - 1; i >= 0; i-- {
		p.Add(plotters[i])
	}
	return p.Save(dimX, dimY, file)
}
