package util

// Clamp forces v into [min, max].
func Clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// PadRangeF widens [min, max] by frac of its span on each side.
// A zero span pads by one unit so the range stays drawable.
func PadRangeF(min, max, frac float64) (float64, float64) {
	d := (max - min) * frac
	if d == 0 {
		d = 1
	}
	return min - d, max + d
}
