package dataset

// Series maps values to x = X0 + i*XStep. It positions a y-column and
// its indicator overlays on a chart in input order.
type Series struct {
	Data  []float64
	X0    float64
	XStep float64
}

func NewSeries(data []float64) Series {
	return Series{Data: data, XStep: 1}
}

func (s Series) Len() int {
	return len(s.Data)
}

func (s Series) XY(i int) (float64, float64) {
	if i < 0 || i >= len(s.Data) {
		return 0, 0
	}
	return float64(i)*s.XStep + s.X0, s.Data[i]
}

// TrimLeft returns s without leading zero values, X0 shifted
// accordingly. Indicators pad their warmup window with zeros.
func (s Series) TrimLeft() Series {
	var i int
	for i = 0; i < len(s.Data) && s.Data[i] == 0; i++ {
	}
	return Series{s.Data[i:], s.X0 + float64(i)*s.XStep, s.XStep}
}
