package pointset

import (
	"math"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Point is an immutable 2D coordinate pair.
type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return "[" + strconv.FormatFloat(p.X, 'f', -1, 64) + "," + strconv.FormatFloat(p.Y, 'f', -1, 64) + "]"
}

// Less orders points by Y, then by X.
func (p Point) Less(q Point) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// DistanceSquaredTo returns the squared euclidean distance between p and q.
func (p Point) DistanceSquaredTo(q Point) float64 {
	return planar.DistanceSquared(p.orb(), q.orb())
}

func (p Point) orb() orb.Point {
	return orb.Point{p.X, p.Y}
}

// a NaN coordinate has no place in the ordering
func (p Point) valid() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y)
}
