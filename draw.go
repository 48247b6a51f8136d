package pointset

import (
	log "github.com/sirupsen/logrus"
)

// Drawer receives the points of a set, one call per point, when the set is drawn.
type Drawer interface {
	DrawPoint(p Point)
}

type DrawerFunc func(p Point)

func (f DrawerFunc) DrawPoint(p Point) {
	f(p)
}

// LogDrawer draws points as log entries. It is the default Drawer of a PointSet.
type LogDrawer struct {
	Log log.FieldLogger
}

func (d LogDrawer) DrawPoint(p Point) {
	d.Log.WithFields(log.Fields{"x": p.X, "y": p.Y}).Info("point")
}
