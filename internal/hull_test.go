package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A hull over the seed triangle of the unit square's lower left half, with room
// for the other points in coords.
func newTestHull(coords Coords) *Hull {
	hull := NewHull(coords)
	seed := Seed{0, 1, 2}
	hull.Initialize(seed, seed.Circumcenter(coords))
	return hull
}

func TestHullInitialize(t *testing.T) {
	coords := Coords{0, 0, 1, 0, 0, 1, 1, 1}
	hull := newTestHull(coords)

	assert.Equal(t, []int{0, 1, 2}, hull.Points())
	assert.Equal(t, 3, hull.Size())
	assert.Equal(t, 0, hull.Start())
	assert.Equal(t, 1, hull.Next(0))
	assert.Equal(t, 2, hull.Prev(0))
	for v := 0; v < 3; v++ {
		assert.Equal(t, v, hull.Triangle(v), "point %d", v)
	}
}

func TestHullFindVisibleEdge(t *testing.T) {
	coords := Coords{
		0, 0,
		1, 0,
		0, 1,
		1, 1, // outside the hypotenuse
		0.2, 0.2, // inside
		-1, -1, // outside the corner at the origin
	}
	hull := newTestHull(coords)

	t.Run("one visible edge", func(t *testing.T) {
		e, _, err := hull.FindVisibleEdge(1, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, e)
	})

	t.Run("two visible edges", func(t *testing.T) {
		e, walkBack, err := hull.FindVisibleEdge(-1, -1)
		require.NoError(t, err)
		assert.True(t, hull.Visible(-1, -1, e))
		// Either edge is fine, but if it's the second one, we have to know to walk
		// back to the first
		if e == 0 {
			assert.True(t, walkBack)
		} else {
			assert.Equal(t, 2, e)
		}
	})

	t.Run("inside", func(t *testing.T) {
		_, _, err := hull.FindVisibleEdge(0.2, 0.2)
		assert.True(t, errors.Is(err, ErrDegenerateGeometry))
	})

	t.Run("on an edge", func(t *testing.T) {
		_, _, err := hull.FindVisibleEdge(0.5, 0)
		assert.True(t, errors.Is(err, ErrDegenerateGeometry))
	})
}

func TestHullVisible(t *testing.T) {
	coords := Coords{0, 0, 1, 0, 0, 1}
	hull := newTestHull(coords)

	assert.True(t, hull.Visible(1, 1, 1))
	assert.False(t, hull.Visible(1, 1, 0))
	assert.False(t, hull.Visible(1, 1, 2))

	// Collinear with an edge doesn't count
	assert.False(t, hull.Visible(2, 0, 0))
}

func TestHullSplicing(t *testing.T) {
	coords := Coords{0, 0, 1, 0, 0, 1, 1, 1, 2, 2}
	hull := newTestHull(coords)

	hull.InsertAfter(1, 3)
	assert.Equal(t, []int{1, 3, 2, 0}, hull.Points())
	assert.Equal(t, 4, hull.Size())
	assert.Equal(t, 1, hull.Start())

	hull.Remove(1)
	assert.True(t, hull.Removed(1))
	assert.False(t, hull.Removed(3))
	assert.Equal(t, 3, hull.Size())
	// The start moves back off the removed point
	assert.Equal(t, 0, hull.Start())
	assert.Equal(t, []int{0, 3, 2}, hull.Points())

	t.Run("can drop to two points mid-insertion", func(t *testing.T) {
		hull.Remove(3)
		assert.Equal(t, []int{0, 2}, hull.Points())
		hull.InsertAfter(0, 4)
		assert.Equal(t, []int{0, 4, 2}, hull.Points())
	})

	t.Run("but no further", func(t *testing.T) {
		hull.Remove(4)
		err := func() (err error) {
			defer func() {
				err = HandleTriangulatePanicRecover(recover())
			}()
			hull.Remove(2)
			return nil
		}()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDegenerateGeometry))
	})
}

func TestHullStaleHash(t *testing.T) {
	coords := Coords{0, 0, 1, 0, 0, 1, 1, 1}
	hull := newTestHull(coords)

	// Every bucket points at a point that is no longer on the hull
	hull.InsertAfter(1, 3)
	hull.HashPoint(3)
	hull.Remove(3)
	for i := range hull.hash {
		hull.hash[i] = 3
	}

	e, _, err := hull.FindVisibleEdge(2, 2)
	require.NoError(t, err)
	assert.True(t, hull.Visible(2, 2, e))
}

func TestHullReplaceTriangle(t *testing.T) {
	coords := Coords{0, 0, 1, 0, 0, 1}
	hull := newTestHull(coords)

	hull.ReplaceTriangle(2, 7)
	assert.Equal(t, 7, hull.Triangle(2))
	assert.Equal(t, 0, hull.Triangle(0))

	// Unknown edges are ignored
	hull.ReplaceTriangle(42, 8)
	assert.Equal(t, []int{0, 1, 7}, []int{hull.Triangle(0), hull.Triangle(1), hull.Triangle(2)})
}

func TestHullString(t *testing.T) {
	coords := Coords{0, 0, 1, 0, 0, 1}
	assert.Equal(t, "Hull {}", NewHull(coords).String())

	hull := newTestHull(coords)
	assert.Contains(t, hull.String(), "Hull 3 {")
	assert.Contains(t, hull.String(), "(2)")
}
