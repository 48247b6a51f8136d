package pointset

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Rect is an immutable axis-aligned rectangle. Its edges belong to it.
type Rect struct {
	XMin float64
	YMin float64
	XMax float64
	YMax float64
}

func NewRect(xmin, ymin, xmax, ymax float64) (*Rect, error) {
	for _, v := range []float64{xmin, ymin, xmax, ymax} {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("%w: rectangle coordinate is NaN", ErrInvalidArgument)
		}
	}
	if xmin > xmax || ymin > ymax {
		return nil, fmt.Errorf("%w: rectangle [%v,%v]x[%v,%v] is inverted", ErrInvalidArgument, xmin, xmax, ymin, ymax)
	}
	return &Rect{XMin: xmin, YMin: ymin, XMax: xmax, YMax: ymax}, nil
}

func (r *Rect) Width() float64 {
	return r.XMax - r.XMin
}

func (r *Rect) Height() float64 {
	return r.YMax - r.YMin
}

// Contains reports whether p lies inside r or on its boundary.
func (r *Rect) Contains(p Point) bool {
	return r.bound().Contains(p.orb())
}

func (r *Rect) String() string {
	return fmt.Sprintf("[%g,%g] x [%g,%g]", r.XMin, r.XMax, r.YMin, r.YMax)
}

func (r *Rect) bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{r.XMin, r.YMin},
		Max: orb.Point{r.XMax, r.YMax},
	}
}
