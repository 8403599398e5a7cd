// Package fit solves ordinary least squares lines over xy datasets.
package fit

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/ghedger/regression/dataset"
)

var (
	// ErrNoData is returned when a dataset holds no points.
	ErrNoData = errors.New("empty dataset")

	// ErrDegenerate is returned when the x values carry no variance, no
	// single line minimizes the residuals then.
	ErrDegenerate = errors.New("degenerate input: x values have zero variance")
)

// BestFit solves y = m·x + b minimizing squared residuals, slope first,
// intercept derived from the slope.
func BestFit(data dataset.Points) (b, m float64, err error) {
	n := len(data)
	if n == 0 {
		return 0, 0, ErrNoData
	}
	s := ComputeSums(data)
	den := s.Denominator(n)
	if den == 0 || math.IsNaN(den) || math.IsInf(den, 0) {
		return 0, 0, fmt.Errorf("n=%d: %w", n, ErrDegenerate)
	}
	m = (float64(n)*s.XY - s.X*s.Y) / den
	b = (s.Y - m*s.X) / float64(n)
	return b, m, nil
}

// LeastSquares solves the same line with intercept (a) and slope (b)
// each computed directly from the sums.
func LeastSquares(data dataset.Points) (a, b float64, err error) {
	n := len(data)
	if n == 0 {
		return 0, 0, ErrNoData
	}
	s := ComputeSums(data)
	den := s.Denominator(n)
	if den == 0 || math.IsNaN(den) || math.IsInf(den, 0) {
		return 0, 0, fmt.Errorf("n=%d: %w", n, ErrDegenerate)
	}
	a = (s.Y*s.XX - s.X*s.XY) / den
	b = (float64(n)*s.XY - s.X*s.Y) / den
	return a, b, nil
}

// Mean returns the arithmetic mean of the x values.
func Mean(data dataset.Points) (float64, error) {
	if len(data) == 0 {
		return 0, ErrNoData
	}
	return stats.Mean(stats.Float64Data(data.Xs()))
}

// MeanY returns the arithmetic mean of the y values.
func MeanY(data dataset.Points) (float64, error) {
	if len(data) == 0 {
		return 0, ErrNoData
	}
	return stats.Mean(stats.Float64Data(data.Ys()))
}

// Line is a fitted y = Slope·x + Intercept.
type Line struct {
	Slope     float64 `json:"m"`
	Intercept float64 `json:"b"`
}

// Fit wraps BestFit into a Line.
func Fit(data dataset.Points) (Line, error) {
	b, m, err := BestFit(data)
	if err != nil {
		return Line{}, err
	}
	return Line{Slope: m, Intercept: b}, nil
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

func (l Line) String() string {
	if l.Intercept < 0 {
		return fmt.Sprintf("y = %.6fx - %.6f", l.Slope, -l.Intercept)
	}
	return fmt.Sprintf("y = %.6fx + %.6f", l.Slope, l.Intercept)
}
