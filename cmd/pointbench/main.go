// Command pointbench fills a PointSet with random points and times its queries.
package main

import (
	"flag"
	"math/rand"
	"time"

	"github.com/robert-butts/pointset"
	log "github.com/sirupsen/logrus"
)

func main() {
	pointsToInsert := flag.Int("points", 100000, "number of random points to insert")
	queries := flag.Int("queries", 100, "number of range and nearest queries to run")
	halfSize := flag.Float64("box", 5.0, "half the width of the range query box")
	seed := flag.Int64("seed", 0, "random seed; 0 seeds from the clock")
	draw := flag.Bool("draw", false, "log every point after inserting")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *pointsToInsert < 0 {
		log.Fatal("points must not be negative")
	}
	if *queries < 0 {
		log.Fatal("queries must not be negative")
	}
	if *halfSize <= 0 {
		log.Fatal("box must be positive")
	}
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(*seed))
	randomPoint := func() *pointset.Point {
		return &pointset.Point{X: rnd.Float64()*100.0 + 50.0, Y: rnd.Float64()*100.0 + 50.0}
	}

	var s pointset.Index = pointset.New(pointset.WithLogger(log.StandardLogger()))

	start := time.Now()
	for i := 0; i != *pointsToInsert; i++ {
		if err := s.Insert(randomPoint()); err != nil {
			log.Fatal(err)
		}
	}
	log.Infof("inserted %d points (%d distinct) in %s", *pointsToInsert, s.Size(), time.Since(start))

	if *draw {
		s.Draw()
	}

	found := 0
	var area float64
	start = time.Now()
	for i := 0; i != *queries; i++ {
		c := randomPoint()
		box, err := pointset.NewRect(c.X-*halfSize, c.Y-*halfSize, c.X+*halfSize, c.Y+*halfSize)
		if err != nil {
			log.Fatal(err)
		}
		points, err := s.Range(box)
		if err != nil {
			log.Fatal(err)
		}
		found += len(points)
		area += box.Width() * box.Height()
	}
	log.Infof("queried %d points via %d range queries covering area %g in %s", found, *queries, area, time.Since(start))

	var dist float64
	start = time.Now()
	for i := 0; i != *queries; i++ {
		q := randomPoint()
		nearest, ok, err := s.Nearest(q)
		if err != nil {
			log.Fatal(err)
		}
		if ok {
			dist += nearest.DistanceSquaredTo(*q)
		}
	}
	elapsed := time.Since(start)
	if *queries > 0 {
		log.Infof("ran %d nearest queries in %s, mean squared distance %g", *queries, elapsed, dist/float64(*queries))
	}
}
