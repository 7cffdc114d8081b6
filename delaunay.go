// A fast Delaunay triangulation package for Go.
//
// This package takes a set of points in the plane and connects them into
// triangles such that no point lies inside the circumcircle of any triangle.
// The result is stored as flat arrays of point and half-edge indexes, which
// also give you the convex hull and the adjacency of every triangle.
//
// Duplicate points are allowed (only the first copy is used), and degenerate
// input such as collinear points produces a best-effort result rather than an
// error, unless you ask for Strict().
package delaunay

import (
	"io"

	"github.com/osuushi/delaunay/internal"
	"go.uber.org/zap"
)

type Point = internal.Point
type Triangle = internal.Triangle
type Triangulation = internal.Triangulation
type Option = internal.Option
type RenderOptions = internal.RenderOptions

// Marks a half-edge with no opposite, i.e. one on the hull.
const Nil = internal.Nil

var (
	// The coordinate buffer has an odd length or a non-finite value. Also
	// returned in strict mode for fewer than three distinct points.
	ErrInvalidInput = internal.ErrInvalidInput
	// Returned in strict mode when the points admit no triangulation, or the
	// triangulation could not be completed.
	ErrDegenerateGeometry = internal.ErrDegenerateGeometry
)

// Triangulate a flat buffer of coordinates [x0, y0, x1, y1, ...].
//
// The buffer is kept by reference in the result, so you can move points in
// place and call Update() on the result to triangulate again.
func Construct(coords []float64, opts ...Option) (*Triangulation, error) {
	return internal.Triangulate(coords, opts...)
}

// Triangulate a list of points. The coordinates are copied into a new buffer.
func FromPoints(points []Point, opts ...Option) (*Triangulation, error) {
	coords := make([]float64, 0, 2*len(points))
	for _, p := range points {
		coords = append(coords, p.X, p.Y)
	}
	return Construct(coords, opts...)
}

// Report degenerate input as an error instead of a fallback result.
func Strict() Option {
	return internal.Strict()
}

// Log debug information about each run. By default nothing is logged.
func WithLogger(logger *zap.Logger) Option {
	return internal.WithLogger(logger)
}

// Render a triangulation as a PNG image.
func Render(w io.Writer, tr *Triangulation, opts RenderOptions) error {
	return internal.Render(w, tr, opts)
}

func NextHalfedge(e int) int {
	return internal.NextHalfedge(e)
}

func PrevHalfedge(e int) int {
	return internal.PrevHalfedge(e)
}

func TriangleOfEdge(e int) int {
	return internal.TriangleOfEdge(e)
}

func EdgesOfTriangle(t int) [3]int {
	return internal.EdgesOfTriangle(t)
}
