package fit

import "github.com/ghedger/regression/dataset"

// Sums holds the running totals a least squares fit is built from.
type Sums struct {
	X  float64 // Σx
	Y  float64 // Σy
	XX float64 // Σx²
	XY float64 // Σxy
}

// ComputeSums accumulates the four totals in a single pass.
func ComputeSums(data dataset.Points) (s Sums) {
	for _, p := range data {
		s.X += p.X
		s.Y += p.Y
		s.XX += p.X * p.X
		s.XY += p.X * p.Y
	}
	return s
}

// Denominator is the determinant n·Σx² − (Σx)². Zero means no single
// line minimizes the residuals: fewer than two points, or every x
// identical.
func (s Sums) Denominator(n int) float64 {
	return float64(n)*s.XX - s.X*s.X
}
