package dataset

import (
	"fmt"
	"io"

	"github.com/montanaflynn/stats"
)

// Point is a single (x, y) observation.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Points []Point

func (p Points) Len() int {
	return len(p)
}

// XY implements gonum's plotter.XYer.
func (p Points) XY(i int) (float64, float64) {
	if i < 0 || i >= len(p) {
		return 0, 0
	}
	return p[i].X, p[i].Y
}

func (p Points) Xs() (val []float64) {
	val = make([]float64, len(p))
	for i, v := range p {
		val[i] = v.X
	}
	return val
}

func (p Points) Ys() (val []float64) {
	val = make([]float64, len(p))
	for i, v := range p {
		val[i] = v.Y
	}
	return val
}

// SwapXY exchanges x and y on every point, in place.
func (p Points) SwapXY() Points {
	for i, v := range p {
		p[i].X, p[i].Y = v.Y, v.X
	}
	return p
}

func (p Points) Range() (x0, xn, y0, yn float64) {
	return p.X0(), p.XN(), p.Y0(), p.YN()
}

func (p Points) X0() float64 {
	f, _ := stats.Min(stats.Float64Data(p.Xs()))
	return f
}

func (p Points) XN() float64 {
	f, _ := stats.Max(stats.Float64Data(p.Xs()))
	return f
}

func (p Points) Y0() float64 {
	f, _ := stats.Min(stats.Float64Data(p.Ys()))
	return f
}

func (p Points) YN() float64 {
	f, _ := stats.Max(stats.Float64Data(p.Ys()))
	return f
}

// Dump writes one "x,y" line per point. The output parses back through
// ParseReader into the same sequence, within %f precision.
func (p Points) Dump(w io.Writer) error {
	for _, v := range p {
		if _, err := fmt.Fprintf(w, "%f,%f\n", v.X, v.Y); err != nil {
			return err
		}
	}
	return nil
}
