package chart

import "github.com/ghedger/regression/fit"

// Point is a one-element XYer for single markers.
type Point struct {
	X, Y float64
}

func (p Point) Len() int {
	return 1
}

func (p Point) XY(i int) (float64, float64) {
	return p.X, p.Y
}

// Horizontal spans y = Y between X[0] and X[1].
type Horizontal struct {
	Y float64
	X [2]float64
}

func (Horizontal) Len() int { return 2 }

func (h Horizontal) XY(i int) (float64, float64) {
	return h.X[i], h.Y
}

// Vertical spans x = X between Y[0] and Y[1].
type Vertical struct {
	X float64
	Y [2]float64
}

func (Vertical) Len() int { return 2 }

func (v Vertical) XY(i int) (float64, float64) {
	return v.X, v.Y[i]
}

// FitLine samples a fitted line at the ends of [X[0], X[1]].
type FitLine struct {
	L fit.Line
	X [2]float64
}

func (FitLine) Len() int { return 2 }

func (f FitLine) XY(i int) (float64, float64) {
	return f.X[i], f.L.At(f.X[i])
}
