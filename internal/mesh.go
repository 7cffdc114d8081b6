package internal

// The triangle/half-edge arrays under construction. Triangle t owns half-edges
// 3t, 3t+1 and 3t+2, and half-edge e runs from triangles[e] to
// triangles[NextHalfedge(e)].
type Mesh struct {
	triangles []int
	halfedges []int
	length    int // number of half-edges in use
}

// Presize for n points. A triangulation of n points has at most 2n-5
// triangles.
func NewMesh(n int) *Mesh {
	maxTriangles := 2*n - 5
	if maxTriangles < 1 {
		maxTriangles = 1
	}
	return &Mesh{
		triangles: make([]int, maxTriangles*3),
		halfedges: make([]int, maxTriangles*3),
	}
}

// Number of triangles added so far
func (m *Mesh) Len() int {
	return m.length / 3
}

// Add triangle (i0, i1, i2), linking its half-edges to a, b and c (which may be
// Nil). Returns the first half-edge of the new triangle.
func (m *Mesh) AddTriangle(i0, i1, i2, a, b, c int) int {
	t := m.length
	if t+3 > len(m.triangles) {
		// Only reachable if the bound above is wrong, but don't corrupt memory over it
		m.triangles = append(m.triangles, 0, 0, 0)
		m.halfedges = append(m.halfedges, Nil, Nil, Nil)
	}
	m.triangles[t] = i0
	m.triangles[t+1] = i1
	m.triangles[t+2] = i2
	m.link(t, a)
	m.link(t+1, b)
	m.link(t+2, c)
	m.length += 3
	return t
}

func (m *Mesh) link(a, b int) {
	m.halfedges[a] = b
	if b != Nil {
		m.halfedges[b] = a
	}
}

// Trimmed views of the finished arrays
func (m *Mesh) Triangles() []int {
	return m.triangles[:m.length]
}

func (m *Mesh) Halfedges() []int {
	return m.halfedges[:m.length]
}

func NextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}

func PrevHalfedge(e int) int {
	if e%3 == 0 {
		return e + 2
	}
	return e - 1
}

func TriangleOfEdge(e int) int {
	return e / 3
}

func EdgesOfTriangle(t int) [3]int {
	return [3]int{3 * t, 3*t + 1, 3*t + 2}
}

// Helpers for walking a finished triangulation.

func (tr *Triangulation) Len() int {
	return len(tr.Triangles) / 3
}

func (tr *Triangulation) PointsOfTriangle(t int) Triangle {
	return Triangle{tr.Triangles[3*t], tr.Triangles[3*t+1], tr.Triangles[3*t+2]}
}

// Triangles sharing an edge with t. Boundary edges contribute nothing.
func (tr *Triangulation) TrianglesAdjacentToTriangle(t int) []int {
	var adjacent []int
	for _, e := range EdgesOfTriangle(t) {
		opposite := tr.Halfedges[e]
		if opposite != Nil {
			adjacent = append(adjacent, TriangleOfEdge(opposite))
		}
	}
	return adjacent
}

// The half-edges pointing into the point where start ends, found by rotating
// around it. For a point on the hull, start should be the boundary half-edge
// that ends at the point, otherwise the walk stops early at the boundary.
func (tr *Triangulation) EdgesAroundPoint(start int) []int {
	var result []int
	incoming := start
	for {
		result = append(result, incoming)
		outgoing := NextHalfedge(incoming)
		incoming = tr.Halfedges[outgoing]
		if incoming == Nil || incoming == start {
			break
		}
	}
	return result
}

func (tr *Triangulation) Circumcenter(t int) Point {
	tri := tr.PointsOfTriangle(t)
	coords := Coords(tr.Coords)
	x, y := Circumcenter(
		coords.X(tri.A), coords.Y(tri.A),
		coords.X(tri.B), coords.Y(tri.B),
		coords.X(tri.C), coords.Y(tri.C),
	)
	return Point{X: x, Y: y}
}
