package dataset

import (
	"fmt"
	"log"
	"strconv"
)

// ArgsSource pairs positional CLI tokens into points: x1 y1 x2 y2 ...
// An odd trailing token is dropped with a warning and the even prefix
// is kept.
type ArgsSource struct {
	Args []string
}

func (s ArgsSource) String() string {
	return fmt.Sprintf("args[%d]", len(s.Args))
}

func (s ArgsSource) Load() (Points, error) {
	n := len(s.Args)
	if n%2 != 0 {
		log.Printf("WARNING: ignoring last value %q, arguments pair up as x y", s.Args[n-1])
		n--
	}
	pts := make(Points, 0, n/2)
	for i := 0; i < n; i += 2 {
		x, err := strconv.ParseFloat(s.Args[i], 64)
		if err != nil {
			return nil, fmt.Errorf("bad x value %q: %w", s.Args[i], err)
		}
		y, err := strconv.ParseFloat(s.Args[i+1], 64)
		if err != nil {
			return nil, fmt.Errorf("bad y value %q: %w", s.Args[i+1], err)
		}
		pts = append(pts, Point{x, y})
	}
	return pts, nil
}
