package internal

import "math"

// A closed polygon over point indexes, like the hull.
type Polygon struct {
	Coords Coords
	Points []int
}

func (poly Polygon) vertex(i int) (x, y float64) {
	v := poly.Points[CircularIndex(i, len(poly.Points))]
	return poly.Coords.X(v), poly.Coords.Y(v)
}

// Positive for counterclockwise polygons
func (poly Polygon) SignedArea() float64 {
	var area float64
	for i := range poly.Points {
		ax, ay := poly.vertex(i)
		bx, by := poly.vertex(i + 1)
		area += ax*by - bx*ay
	}
	return area / 2
}

// Even-odd point in polygon. Points exactly on the boundary can land on either
// side, so pair this with DistanceToBoundary when that matters.
func (poly Polygon) ContainsPointByEvenOdd(x, y float64) bool {
	return poly.CrossingCount(x, y)%2 == 1
}

// Crossing count helper for even odd rule. Casts a ray to the right.
func (poly Polygon) CrossingCount(x, y float64) int {
	crossingCount := 0
	for i := range poly.Points {
		ax, ay := poly.vertex(i)
		bx, by := poly.vertex(i + 1)
		if (ay > y) == (by > y) {
			continue
		}
		crossX := ax + (y-ay)*(bx-ax)/(by-ay)
		if crossX > x {
			crossingCount++
		}
	}
	return crossingCount
}

// Distance from (x, y) to the nearest edge of the polygon
func (poly Polygon) DistanceToBoundary(x, y float64) float64 {
	best := math.Inf(1)
	for i := range poly.Points {
		ax, ay := poly.vertex(i)
		bx, by := poly.vertex(i + 1)
		best = math.Min(best, distanceToSegment(x, y, ax, ay, bx, by))
	}
	return best
}

func distanceToSegment(x, y, ax, ay, bx, by float64) float64 {
	dx, dy := bx-ax, by-ay
	lengthSquared := dx*dx + dy*dy
	if lengthSquared == 0 {
		return math.Sqrt(squaredDistance(x, y, ax, ay))
	}
	t := ((x-ax)*dx + (y-ay)*dy) / lengthSquared
	t = math.Max(0, math.Min(1, t))
	return math.Sqrt(squaredDistance(x, y, ax+t*dx, ay+t*dy))
}
