package internal

import "github.com/golang/geo/r2"

// Points are only materialized at the edges of the package. Inside the engine,
// a point is an index into the flat coordinate buffer.
type Point = r2.Point

// Sentinel for a half-edge with no opposite, i.e. one on the outer boundary.
const Nil = -1

// The output of a triangulation. Triangle t occupies Triangles[3t:3t+3], and
// Halfedges[e] is the half-edge on the other side of e, or Nil.
type Triangulation struct {
	// The caller's buffer. It is not copied, so Update() can pick up changes
	// made in place.
	Coords []float64

	Triangles []int
	Halfedges []int
	// Counterclockwise boundary of the triangulation
	Hull []int

	// When every point is collinear, this holds every distinct point in order
	// along the line. The hull is then just the two ends of this chain.
	Collinear []int

	// Points left out of the triangles because they were within rounding noise
	// of a point or edge already there. Usually empty.
	Skipped []int

	// Set when the result is a fallback: the input admitted no triangle, or
	// legalization gave up.
	Degenerate bool
}

// A triangle of point indices, in counterclockwise order
type Triangle struct {
	A, B, C int
}

type EdgeStack []int

func (s *EdgeStack) Push(e int) {
	*s = append(*s, e)
}

func (s *EdgeStack) Pop() int {
	if len(*s) == 0 {
		return Nil
	}
	e := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return e
}

func (s *EdgeStack) Empty() bool {
	return len(*s) == 0
}

func (s *EdgeStack) Reset() {
	*s = (*s)[:0]
}
