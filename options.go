package pointset

import (
	log "github.com/sirupsen/logrus"
)

type Option func(*PointSet)

// WithLogger sets the logger the set reports to. A nil logger is ignored.
func WithLogger(l log.FieldLogger) Option {
	return func(s *PointSet) {
		if l != nil {
			s.log = l
		}
	}
}

// WithDrawer sets the Drawer used by Draw. A nil drawer is ignored.
func WithDrawer(d Drawer) Option {
	return func(s *PointSet) {
		if d != nil {
			s.drawer = d
		}
	}
}
