package internal

import (
	"math"

	"github.com/pkg/errors"
)

// Check the structural invariants of a triangulation: half-edges pair up, every
// triangle is counterclockwise, every interior edge is locally Delaunay, the
// triangle count matches the hull, and the hull encloses every point.
//
// Checking every edge against its neighbor is enough, since a triangulation
// whose edges are all locally Delaunay is Delaunay.
func (tr *Triangulation) Validate() error {
	coords := Coords(tr.Coords)
	if err := coords.Validate(); err != nil {
		return err
	}
	if len(tr.Triangles)%3 != 0 {
		return errors.Errorf("triangles has length %d, which is not a multiple of 3", len(tr.Triangles))
	}
	if len(tr.Halfedges) != len(tr.Triangles) {
		return errors.Errorf("halfedges has length %d, but triangles has length %d", len(tr.Halfedges), len(tr.Triangles))
	}
	if tr.Degenerate {
		if len(tr.Triangles) != 0 {
			return errors.Errorf("degenerate triangulation has %d triangles", tr.Len())
		}
		return tr.validateHullPoints(coords)
	}
	if len(tr.Triangles) == 0 {
		return errors.New("no triangles, but not marked degenerate")
	}

	for e, v := range tr.Triangles {
		if v < 0 || v >= coords.Len() {
			return errors.Errorf("half-edge %d starts at point %d, which does not exist", e, v)
		}
	}
	if err := tr.validateHalfedges(); err != nil {
		return err
	}
	if err := tr.validateTriangles(coords); err != nil {
		return err
	}
	if err := tr.validateHullPoints(coords); err != nil {
		return err
	}
	if err := tr.validateHullEdges(); err != nil {
		return err
	}
	if err := tr.validateEnclosure(coords); err != nil {
		return err
	}
	return tr.validateCoverage(coords)
}

func (tr *Triangulation) validateHalfedges() error {
	for e, opposite := range tr.Halfedges {
		if opposite == Nil {
			continue
		}
		if opposite < 0 || opposite >= len(tr.Halfedges) {
			return errors.Errorf("half-edge %d has out of range opposite %d", e, opposite)
		}
		if tr.Halfedges[opposite] != e {
			return errors.Errorf("half-edge %d points to %d, which points to %d", e, opposite, tr.Halfedges[opposite])
		}
		// Opposite half-edges run between the same points, in reverse
		if tr.Triangles[e] != tr.Triangles[NextHalfedge(opposite)] || tr.Triangles[NextHalfedge(e)] != tr.Triangles[opposite] {
			return errors.Errorf("half-edges %d and %d are paired but don't share endpoints", e, opposite)
		}
	}
	return nil
}

func (tr *Triangulation) validateTriangles(coords Coords) error {
	for t := 0; t < tr.Len(); t++ {
		tri := tr.PointsOfTriangle(t)
		orientation := Orientation(
			coords.X(tri.A), coords.Y(tri.A),
			coords.X(tri.B), coords.Y(tri.B),
			coords.X(tri.C), coords.Y(tri.C),
		)
		if orientation == Clockwise {
			return errors.Errorf("triangle %d %v is clockwise", t, tri)
		}

		for _, e := range EdgesOfTriangle(t) {
			opposite := tr.Halfedges[e]
			if opposite == Nil || opposite < e {
				continue
			}
			// The point across edge e must not be inside this triangle's circumcircle
			p := tr.Triangles[PrevHalfedge(opposite)]
			if InCircumcircle(
				coords.X(tri.A), coords.Y(tri.A),
				coords.X(tri.B), coords.Y(tri.B),
				coords.X(tri.C), coords.Y(tri.C),
				coords.X(p), coords.Y(p),
			) {
				return errors.Errorf("edge %d of triangle %d is not Delaunay: point %d is inside the circumcircle", e, t, p)
			}
		}
	}
	return nil
}

func (tr *Triangulation) validateHullPoints(coords Coords) error {
	seen := make(map[int]bool, len(tr.Hull))
	for _, v := range tr.Hull {
		if v < 0 || v >= coords.Len() {
			return errors.Errorf("hull point %d does not exist", v)
		}
		if seen[v] {
			return errors.Errorf("hull visits point %d twice", v)
		}
		seen[v] = true
	}
	return nil
}

// The hull has to be exactly the loop of half-edges without an opposite.
func (tr *Triangulation) validateHullEdges() error {
	if len(tr.Hull) < 3 {
		return errors.Errorf("hull has %d points", len(tr.Hull))
	}

	boundary := make(map[[2]int]bool)
	used := make(map[int]bool)
	for e, opposite := range tr.Halfedges {
		used[tr.Triangles[e]] = true
		if opposite == Nil {
			boundary[[2]int{tr.Triangles[e], tr.Triangles[NextHalfedge(e)]}] = true
		}
	}
	if len(boundary) != len(tr.Hull) {
		return errors.Errorf("%d boundary half-edges, but the hull has %d points", len(boundary), len(tr.Hull))
	}
	for i, v := range tr.Hull {
		w := tr.Hull[CircularIndex(i+1, len(tr.Hull))]
		if !boundary[[2]int{v, w}] {
			return errors.Errorf("hull edge %d → %d is not a boundary half-edge", v, w)
		}
	}

	// Euler's formula for a triangulated disk
	expected := 2*len(used) - 2 - len(tr.Hull)
	if tr.Len() != expected {
		return errors.Errorf("%d triangles over %d points with %d on the hull, expected %d", tr.Len(), len(used), len(tr.Hull), expected)
	}
	return nil
}

// Every point has to be inside the hull, or on it to within a tolerance
// relative to the size of the point set.
func (tr *Triangulation) validateEnclosure(coords Coords) error {
	hull := Polygon{Coords: coords, Points: tr.Hull}
	if hull.SignedArea() <= 0 {
		return errors.New("hull is not counterclockwise")
	}

	bounds := coords.Bounds(coords.Distinct())
	size := bounds.Size()
	tolerance := Tolerance * math.Max(1, math.Max(size.X, size.Y))

	for i := 0; i < coords.Len(); i++ {
		x, y := coords.X(i), coords.Y(i)
		if hull.ContainsPointByEvenOdd(x, y) || hull.DistanceToBoundary(x, y) <= tolerance {
			continue
		}
		return errors.Errorf("point %d (%v, %v) is outside the hull", i, x, y)
	}
	return nil
}

// Every distinct point is either a vertex or listed in Skipped, but not both.
func (tr *Triangulation) validateCoverage(coords Coords) error {
	used := make(map[int]bool)
	for _, v := range tr.Triangles {
		used[v] = true
	}
	skipped := make(map[int]bool)
	for _, v := range tr.Skipped {
		if used[v] {
			return errors.Errorf("point %d is skipped, but used by a triangle", v)
		}
		skipped[v] = true
	}
	for _, i := range coords.Distinct() {
		if !used[i] && !skipped[i] {
			return errors.Errorf("point %d (%v, %v) is missing from the triangulation", i, coords.X(i), coords.Y(i))
		}
	}
	return nil
}
