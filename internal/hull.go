package internal

import (
	"fmt"
	"math"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/delaunay/internal/dbg"
	"github.com/pkg/errors"
)

// The advancing hull: the boundary of the region triangulated so far, as a
// circular doubly linked list over point indexes. The "nodes" are just point
// indexes, so the links live in parallel arrays rather than node structs.
//
// For each hull point v, tri[v] is the half-edge of the triangle that runs
// along the hull from v to next[v]. That edge always has a Nil opposite.
//
// The hash splits the directions around the seed circumcenter into buckets,
// and remembers the last hull point hashed into each. It is only a hint for
// where to start looking. Entries go stale as points are removed, which we
// detect because a removed point links to itself.
type Hull struct {
	coords Coords
	prev   []int
	next   []int
	tri    []int
	hash   []int
	center Point
	start  int
	size   int
}

// Presize for all of the points in coords
func NewHull(coords Coords) *Hull {
	n := coords.Len()
	hashSize := int(math.Ceil(math.Sqrt(float64(n))))
	if hashSize < 1 {
		hashSize = 1
	}
	return &Hull{
		coords: coords,
		prev:   make([]int, n),
		next:   make([]int, n),
		tri:    make([]int, n),
		hash:   make([]int, hashSize),
		start:  Nil,
	}
}

// Start the hull as the seed triangle, whose half-edges are 0, 1 and 2.
func (h *Hull) Initialize(seed Seed, center Point) {
	h.center = center
	for i := range h.hash {
		h.hash[i] = Nil
	}

	i0, i1, i2 := seed.I0, seed.I1, seed.I2
	h.next[i0] = i1
	h.prev[i2] = i1
	h.next[i1] = i2
	h.prev[i0] = i2
	h.next[i2] = i0
	h.prev[i1] = i0

	h.tri[i0] = 0
	h.tri[i1] = 1
	h.tri[i2] = 2

	h.HashPoint(i0)
	h.HashPoint(i1)
	h.HashPoint(i2)

	h.start = i0
	h.size = 3
}

func (h *Hull) hashKey(x, y float64) int {
	n := len(h.hash)
	return int(math.Floor(PseudoAngle(x-h.center.X, y-h.center.Y)*float64(n))) % n
}

func (h *Hull) HashPoint(v int) {
	h.hash[h.hashKey(h.coords.X(v), h.coords.Y(v))] = v
}

// Find a hull edge (e, Next(e)) that the point (x, y) lies strictly outside of.
// If walkBack is true, the search found e on its first step, so the edges
// before e may be visible too.
//
// The hash gives us a hull point in roughly the right direction. From just
// behind it we walk forward until an edge is visible, which in the worst case
// is a scan of the whole hull.
func (h *Hull) FindVisibleEdge(x, y float64) (e int, walkBack bool, err error) {
	start := Nil
	key := h.hashKey(x, y)
	for j := 0; j < len(h.hash); j++ {
		candidate := h.hash[(key+j)%len(h.hash)]
		if candidate != Nil && !h.Removed(candidate) {
			start = candidate
			break
		}
	}
	if start == Nil {
		start = h.start
	}

	start = h.prev[start]
	e = start
	for Orient(x, y, h.coords.X(e), h.coords.Y(e), h.coords.X(h.next[e]), h.coords.Y(h.next[e])) >= 0 {
		e = h.next[e]
		if e == start {
			return Nil, false, errors.Wrapf(ErrDegenerateGeometry, "no hull edge is visible from (%v, %v)", x, y)
		}
	}
	return e, e == start, nil
}

// Whether the point at (x, y) sees the hull edge starting at v
func (h *Hull) Visible(x, y float64, v int) bool {
	w := h.next[v]
	return Orient(x, y, h.coords.X(v), h.coords.Y(v), h.coords.X(w), h.coords.Y(w)) < 0
}

func (h *Hull) Next(v int) int {
	return h.next[v]
}

func (h *Hull) Prev(v int) int {
	return h.prev[v]
}

func (h *Hull) Start() int {
	return h.start
}

func (h *Hull) Size() int {
	return h.size
}

// The hull half-edge running from v to Next(v)
func (h *Hull) Triangle(v int) int {
	return h.tri[v]
}

func (h *Hull) SetTriangle(v, e int) {
	h.tri[v] = e
}

// A flip moved the hull edge old to the half-edge replacement. Find the hull
// point that owns it and repoint it. This walks the hull, but flips across the
// hull are rare.
func (h *Hull) ReplaceTriangle(old, replacement int) {
	v := h.start
	for {
		if h.tri[v] == old {
			h.tri[v] = replacement
			return
		}
		v = h.prev[v]
		if v == h.start {
			return
		}
	}
}

// Splice p into the hull directly after a, and make a the hull start.
func (h *Hull) InsertAfter(a, p int) {
	b := h.next[a]
	h.next[a] = p
	h.prev[p] = a
	h.next[p] = b
	h.prev[b] = p
	h.start = a
	h.size++
}

// Splice v out of the hull. A removed point links to itself, which is how stale
// hash entries are recognized. During an insertion the hull can briefly drop
// to two points, before the new point is spliced in.
func (h *Hull) Remove(v int) {
	if h.size <= 2 {
		throw(ErrDegenerateGeometry, "cannot remove %d from a degenerate hull: %s", v, h)
	}
	a, b := h.prev[v], h.next[v]
	h.next[a] = b
	h.prev[b] = a
	h.next[v] = v
	if h.start == v {
		h.start = a
	}
	h.size--
}

func (h *Hull) Removed(v int) bool {
	return h.next[v] == v
}

// The hull points in counterclockwise order, beginning at the hull start
func (h *Hull) Points() []int {
	points := make([]int, 0, h.size)
	v := h.start
	for i := 0; i < h.size; i++ {
		points = append(points, v)
		v = h.next[v]
	}
	return points
}

func (h *Hull) String() string {
	if h.start == Nil {
		return "Hull {}"
	}
	var parts []string
	for _, v := range h.Points() {
		name := dbg.Name(v)
		if v == h.start {
			name = aurora.Green(name).String()
		}
		parts = append(parts, fmt.Sprintf("%s(%d)", name, v))
	}
	return fmt.Sprintf("Hull %d { %s }", h.size, strings.Join(parts, " → "))
}
