package dataset

import "fmt"

// Debug enables verbose acquisition logging.
var Debug bool

// Source yields a point sequence from one input channel. Implementations
// describe themselves via String for logs and result records.
type Source interface {
	fmt.Stringer

	// Load acquires the full point sequence in one shot.
	Load() (Points, error)
}
