package fit

import (
	"math"

	"github.com/ghedger/regression/dataset"
)

// RSquared is the coefficient of determination of l against data,
// 1 − SSres/SStot. When the y values carry no variance it is 1 for a
// residual-free line and 0 otherwise.
func RSquared(data dataset.Points, l Line) float64 {
	if len(data) == 0 {
		return 0
	}
	mean, _ := MeanY(data)
	var ssRes, ssTot float64
	for _, p := range data {
		d := p.Y - l.At(p.X)
		ssRes += d * d
		d = p.Y - mean
		ssTot += d * d
	}
	if ssTot == 0 {
		if ssRes == 0 {
			return 1
		}
		return 0
	}
	return 1 - ssRes/ssTot
}

// RMSE is the root mean squared residual of l against data.
func RMSE(data dataset.Points, l Line) float64 {
	if len(data) == 0 {
		return 0
	}
	var ssRes float64
	for _, p := range data {
		d := p.Y - l.At(p.X)
		ssRes += d * d
	}
	return math.Sqrt(ssRes / float64(len(data)))
}
