/*
Package pointset implements a set of 2D points with range and nearest-neighbor queries.

PointSet is the brute-force baseline: points are kept in an ordered set and every query scans all
of them, so query time grows linearly with Size(). There is no spatial partitioning.

Points are stored by value. Iteration, Draw and query results follow Point.Less, not insertion order.

pointset is not safe for concurrent use.
*/
package pointset

import (
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/btree"
)

type PointSet struct {
	points *btree.BTreeG[Point]
	log    log.FieldLogger
	drawer Drawer
}

func lessPoint(a, b Point) bool {
	return a.Less(b)
}

// New returns an empty set.
func New(opts ...Option) *PointSet {
	s := &PointSet{
		points: btree.NewBTreeGOptions(lessPoint, btree.Options{NoLocks: true}),
		log:    log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.drawer == nil {
		s.drawer = LogDrawer{Log: s.log}
	}
	return s
}

func (s *PointSet) IsEmpty() bool {
	return s.points.Len() == 0
}

func (s *PointSet) Size() int {
	return s.points.Len()
}

// Insert adds a copy of p to the set. Inserting a point already in the set does nothing.
func (s *PointSet) Insert(p *Point) error {
	if err := s.checkPoint(p); err != nil {
		return err
	}
	// Set would overwrite the stored copy, e.g. 0 with -0
	if _, ok := s.points.Get(*p); ok {
		s.log.Debugf("insert %s: already in set", p)
		return nil
	}
	s.points.Set(*p)
	return nil
}

func (s *PointSet) Contains(p *Point) (bool, error) {
	if err := s.checkPoint(p); err != nil {
		return false, err
	}
	_, ok := s.points.Get(*p)
	return ok, nil
}

// Draw passes every point to the set's Drawer, in order.
func (s *PointSet) Draw() {
	s.points.Scan(func(p Point) bool {
		s.drawer.DrawPoint(p)
		return true
	})
}

// Points returns a copy of every point in the set, in order.
func (s *PointSet) Points() []Point {
	points := make([]Point, 0, s.points.Len())
	s.points.Scan(func(p Point) bool {
		points = append(points, p)
		return true
	})
	return points
}

// Range returns the points inside r, boundary included. The result is never nil.
func (s *PointSet) Range(r *Rect) ([]Point, error) {
	if r == nil {
		s.log.Debug("range: rejected nil rectangle")
		return nil, errNilRect
	}
	points := []Point{}
	s.points.Scan(func(p Point) bool {
		if r.Contains(p) {
			points = append(points, p)
		}
		return true
	})
	s.log.Debugf("range %s: scanned %d points, found %d", r, s.points.Len(), len(points))
	return points, nil
}

// Nearest returns the point closest to p. ok is false if the set is empty.
// Among points at the same distance, the first in order wins.
func (s *PointSet) Nearest(p *Point) (nearest Point, ok bool, err error) {
	if err := s.checkPoint(p); err != nil {
		return Point{}, false, err
	}
	var best float64
	s.points.Scan(func(q Point) bool {
		// squared distances order the same as distances
		d := q.DistanceSquaredTo(*p)
		if !ok || d < best {
			nearest, best, ok = q, d, true
		}
		return true
	})
	s.log.Debugf("nearest %s: scanned %d points", p, s.points.Len())
	return nearest, ok, nil
}

// helper for the operations taking a point
func (s *PointSet) checkPoint(p *Point) error {
	if p == nil {
		s.log.Debug("rejected nil point")
		return errNilPoint
	}
	if !p.valid() {
		s.log.Debugf("rejected point %s", p)
		return errNaNPoint
	}
	return nil
}
