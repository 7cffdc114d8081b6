package internal

import (
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Coords is the flat coordinate buffer [x0, y0, x1, y1, ...]. It is never
// modified during a triangulation.
type Coords []float64

// Validate the buffer shape. An odd length or a non-finite value is a hard
// error; a short buffer is not (it just has no triangles).
func (c Coords) Validate() error {
	if len(c)%2 != 0 {
		return errors.Wrapf(ErrInvalidInput, "coordinate buffer has odd length %d", len(c))
	}
	for i, f := range c {
		if !isFinite(f) {
			return errors.Wrapf(ErrInvalidInput, "coordinate %d of point %d is not finite: %v", i%2, i/2, f)
		}
	}
	return nil
}

func (c Coords) Len() int {
	return len(c) / 2
}

func (c Coords) X(i int) float64 {
	c.check(i)
	return c[2*i]
}

func (c Coords) Y(i int) float64 {
	c.check(i)
	return c[2*i+1]
}

func (c Coords) Point(i int) Point {
	c.check(i)
	return r2.Point{X: c[2*i], Y: c[2*i+1]}
}

func (c Coords) check(i int) {
	if i < 0 || 2*i+1 >= len(c) {
		fatalf("point index %d out of range [0, %d)", i, c.Len())
	}
}

// Bounding box of all of the given points
func (c Coords) Bounds(ids []int) r2.Rect {
	rect := r2.EmptyRect()
	for _, i := range ids {
		rect = rect.AddPoint(c.Point(i))
	}
	return rect
}

// Indexes of the first occurrence of each distinct point, in input order. Later
// exact duplicates are dropped, so they never reach a triangle.
func (c Coords) Distinct() []int {
	n := c.Len()
	seen := make(map[[2]float64]struct{}, n)
	ids := make([]int, 0, n)
	for i := 0; i < n; i++ {
		key := [2]float64{c[2*i], c[2*i+1]}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		ids = append(ids, i)
	}
	return ids
}
