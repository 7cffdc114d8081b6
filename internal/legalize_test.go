package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two triangles sharing the long edge of a thin quad. The diagonal from a to b
// is illegal: d is well inside the circumcircle of [a, b, c].
//
//	    c
//	  /   \
//	a ----- b
//	  \   /
//	    d
func illegalQuad() (Coords, *Mesh, *Hull) {
	const a, b, c, d = 0, 1, 2, 3
	coords := Coords{
		0, 0,
		4, 0,
		2, 1,
		2, -1,
	}
	mesh := NewMesh(coords.Len())
	mesh.AddTriangle(a, b, c, Nil, Nil, Nil)
	mesh.AddTriangle(b, a, d, 0, Nil, Nil)

	hull := NewHull(coords)
	hull.start = a
	for _, edge := range [][3]int{{a, d, 4}, {d, b, 5}, {b, c, 1}, {c, a, 2}} {
		hull.next[edge[0]] = edge[1]
		hull.prev[edge[1]] = edge[0]
		hull.tri[edge[0]] = edge[2]
	}
	hull.size = 4
	return coords, mesh, hull
}

func TestLegalize(t *testing.T) {
	coords, mesh, hull := illegalQuad()
	legalizer := NewLegalizer(coords, mesh, hull, defaultFlipFactor)
	legalizer.Reset()

	e := legalizer.Legalize(0)

	// The diagonal now runs between c and d
	assert.Equal(t, []int{3, 1, 2, 2, 0, 3}, mesh.Triangles())
	assert.Equal(t, []int{Nil, Nil, 5, Nil, Nil, 2}, mesh.Halfedges())
	for tri := 0; tri < mesh.Len(); tri++ {
		tr := mesh.Triangles()[3*tri : 3*tri+3]
		assert.Greater(t, Orient(
			coords.X(tr[0]), coords.Y(tr[0]),
			coords.X(tr[1]), coords.Y(tr[1]),
			coords.X(tr[2]), coords.Y(tr[2]),
		), 0.0, "triangle %d", tri)
	}

	// d -> b was on the hull, and moved
	assert.Equal(t, 0, hull.Triangle(3))
	// The returned edge runs from c along the hull
	assert.Equal(t, 3, e)
	assert.Equal(t, 2, mesh.Triangles()[e])
	assert.Equal(t, 0, mesh.Triangles()[NextHalfedge(e)])
}

func TestLegalize_LegalEdge(t *testing.T) {
	coords := Coords{0, 0, 1, 0, 0, 1, 1, 1}
	mesh := NewMesh(coords.Len())
	mesh.AddTriangle(0, 1, 2, Nil, Nil, Nil)
	mesh.AddTriangle(1, 3, 2, Nil, Nil, 1)
	legalizer := NewLegalizer(coords, mesh, NewHull(coords), defaultFlipFactor)
	legalizer.Reset()

	// Cocircular, so the diagonal stays put
	assert.Equal(t, 4, legalizer.Legalize(5))
	assert.Equal(t, []int{0, 1, 2, 1, 3, 2}, mesh.Triangles())
	assert.Equal(t, 0, legalizer.flips)
}

func TestLegalize_FlipBound(t *testing.T) {
	coords, mesh, hull := illegalQuad()
	legalizer := NewLegalizer(coords, mesh, hull, defaultFlipFactor)
	legalizer.Reset()
	legalizer.limit = 0

	err := func() (err error) {
		defer func() {
			err = HandleTriangulatePanicRecover(recover())
		}()
		legalizer.Legalize(0)
		return nil
	}()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDegenerateGeometry))
}

func TestEdgeStack(t *testing.T) {
	var stack EdgeStack
	assert.True(t, stack.Empty())
	assert.Equal(t, Nil, stack.Pop())

	stack.Push(1)
	stack.Push(2)
	assert.Equal(t, 2, stack.Pop())
	assert.False(t, stack.Empty())
	stack.Reset()
	assert.True(t, stack.Empty())
}
