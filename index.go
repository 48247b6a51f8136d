package pointset

// Index is a queryable collection of unique points.
//
// PointSet is the brute-force implementation: every query visits every point.
type Index interface {
	IsEmpty() bool
	Size() int
	Insert(p *Point) error
	Contains(p *Point) (bool, error)
	Range(r *Rect) ([]Point, error)
	Nearest(p *Point) (Point, bool, error)
	Draw()
}

var _ Index = (*PointSet)(nil)
