package internal

import "math"

// The seed triangle that bootstraps the triangulation, counterclockwise.
type Seed struct {
	I0, I1, I2 int
}

// Pick three well separated points: the one closest to the center of the
// bounding box, its nearest neighbor, and the third point that makes the
// smallest circumcircle with them. Returns false if every candidate for the
// third point is collinear with the first two.
//
// ids must be distinct points, and there must be at least three of them.
func SelectSeed(coords Coords, ids []int) (seed Seed, ok bool) {
	if len(ids) < 3 {
		fatalf("seed selection needs 3 distinct points, got %d", len(ids))
	}

	center := coords.Bounds(ids).Center()

	// Strict comparisons everywhere, so ties go to the earliest id
	i0 := Nil
	minDist := math.Inf(1)
	for _, i := range ids {
		d := squaredDistance(center.X, center.Y, coords.X(i), coords.Y(i))
		if d < minDist {
			i0 = i
			minDist = d
		}
	}
	x0, y0 := coords.X(i0), coords.Y(i0)

	i1 := Nil
	minDist = math.Inf(1)
	for _, i := range ids {
		if i == i0 {
			continue
		}
		d := squaredDistance(x0, y0, coords.X(i), coords.Y(i))
		if d > 0 && d < minDist {
			i1 = i
			minDist = d
		}
	}
	if i1 == Nil {
		return Seed{}, false
	}
	x1, y1 := coords.X(i1), coords.Y(i1)

	i2 := Nil
	minRadius := math.Inf(1)
	for _, i := range ids {
		if i == i0 || i == i1 {
			continue
		}
		x, y := coords.X(i), coords.Y(i)
		if Orientation(x0, y0, x1, y1, x, y) == Collinear {
			continue
		}
		r := Circumradius(x0, y0, x1, y1, x, y)
		if r < minRadius {
			i2 = i
			minRadius = r
		}
	}
	if i2 == Nil {
		return Seed{}, false
	}

	if Orient(x0, y0, x1, y1, coords.X(i2), coords.Y(i2)) < 0 {
		i1, i2 = i2, i1
	}
	return Seed{i0, i1, i2}, true
}

// Circumcenter of the seed triangle. Every other point is sorted by its
// distance to this, and the hull hash is keyed by angle around it.
func (s Seed) Circumcenter(coords Coords) Point {
	x, y := Circumcenter(
		coords.X(s.I0), coords.Y(s.I0),
		coords.X(s.I1), coords.Y(s.I1),
		coords.X(s.I2), coords.Y(s.I2),
	)
	return Point{X: x, Y: y}
}

func (s Seed) Contains(i int) bool {
	return i == s.I0 || i == s.I1 || i == s.I2
}
