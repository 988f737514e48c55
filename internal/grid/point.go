package grid

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Point is a cell on the unbounded integer lattice.
type Point struct {
	X, Y int
}

// Origin is where every walk starts.
func Origin() Point {
	return Point{}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale multiplies both coordinates by n.
func (p Point) Scale(n int) Point {
	return Point{X: p.X * n, Y: p.Y * n}
}

// Taxicab returns the manhattan distance between p and q.
func (p Point) Taxicab(q Point) int {
	return absDiff(p.X, q.X) + absDiff(p.Y, q.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func absDiff[T constraints.Signed](a, b T) T {
	v := a - b
	if v < 0 {
		v = -v
	}
	return v
}
