package internal

// Restores the Delaunay condition around a newly inserted point by flipping
// edges (Lawson flips). Each time a triangle is added, its edge opposite the
// new point is checked against the triangle on the other side.
type Legalizer struct {
	coords Coords
	mesh   *Mesh
	hull   *Hull
	stack  EdgeStack

	// Floating point noise can in principle make flips cycle, so flips per
	// insertion are bounded. Reset() starts a new insertion.
	flips  int
	limit  int
	factor int
}

func NewLegalizer(coords Coords, mesh *Mesh, hull *Hull, flipFactor int) *Legalizer {
	return &Legalizer{
		coords: coords,
		mesh:   mesh,
		hull:   hull,
		stack:  make(EdgeStack, 0, 64),
		factor: flipFactor,
	}
}

// Start counting flips for a new insertion. The bound is generous: a valid
// insertion flips each existing triangle at most a handful of times.
func (l *Legalizer) Reset() {
	l.flips = 0
	l.limit = l.factor * (l.mesh.Len() + 1)
}

// Legalize half-edge a, and everything that flipping it exposes. Returns the
// half-edge that ends up running from the inserted point along the hull side of
// the fan, which the caller records as the hull triangle.
//
// If the pair of triangles doesn't satisfy the Delaunay condition (p1 is inside
// the circumcircle of [p0, pr, pl]), flip them, then do the same check for the
// two new outer edges facing p0:
//
//	      pl                    pl
//	     /||\                  /  \
//	  al/ || \bl            al/    \a
//	   /  ||  \              /      \
//	  /  a||b  \    flip    /___ar___\
//	p0\   ||   /p1   =>   p0\---bl---/p1
//	   \  ||  /              \      /
//	  ar\ || /br             b\    /br
//	     \||/                  \  /
//	      pr                    pr
func (l *Legalizer) Legalize(a int) int {
	triangles := l.mesh.triangles
	halfedges := l.mesh.halfedges
	l.stack.Reset()

	var ar int
	for {
		b := halfedges[a]
		a0 := a - a%3
		ar = a0 + (a+2)%3

		if b == Nil { // Hull edge, nothing on the other side
			if l.stack.Empty() {
				break
			}
			a = l.stack.Pop()
			continue
		}

		b0 := b - b%3
		al := a0 + (a+1)%3
		bl := b0 + (b+2)%3

		p0 := triangles[ar]
		pr := triangles[a]
		pl := triangles[al]
		p1 := triangles[bl]

		illegal := InCircumcircle(
			l.coords.X(p0), l.coords.Y(p0),
			l.coords.X(pr), l.coords.Y(pr),
			l.coords.X(pl), l.coords.Y(pl),
			l.coords.X(p1), l.coords.Y(p1),
		)
		if !illegal {
			if l.stack.Empty() {
				break
			}
			a = l.stack.Pop()
			continue
		}

		l.flips++
		if l.flips > l.limit {
			throw(ErrDegenerateGeometry, "edge flips did not converge after %d flips", l.flips-1)
		}

		triangles[a] = p1
		triangles[b] = p0

		hbl := halfedges[bl]
		if hbl == Nil {
			// The flipped edge was on the hull, so the hull has to follow it
			l.hull.ReplaceTriangle(bl, a)
		}
		l.mesh.link(a, hbl)
		l.mesh.link(b, halfedges[ar])
		l.mesh.link(ar, bl)

		// Keep going with a, and come back for the other new edge
		br := b0 + (b+1)%3
		l.stack.Push(br)
	}
	return ar
}
