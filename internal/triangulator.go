package internal

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Incremental sweep-hull Delaunay triangulation.
//
// Starting from a seed triangle near the middle of the point set, points are
// added in order of their distance from the seed's circumcenter. Each new
// point is always outside the current hull, so adding it means connecting it
// to the hull edges it can see (a fan of new triangles), splicing it into the
// hull, and flipping edges until the triangulation is Delaunay again.
//
// All state belongs to one run. Independent runs can happen concurrently.
type Triangulator struct {
	coords    Coords
	opts      Options
	log       *zap.Logger
	mesh      *Mesh
	hull      *Hull
	legalizer *Legalizer
	dists     []float64

	skipped []int
}

func NewTriangulator(coords Coords, opts Options) *Triangulator {
	mesh := NewMesh(coords.Len())
	hull := NewHull(coords)
	return &Triangulator{
		coords:    coords,
		opts:      opts,
		log:       opts.Logger,
		mesh:      mesh,
		hull:      hull,
		legalizer: NewLegalizer(coords, mesh, hull, opts.flipFactor),
		dists:     make([]float64, coords.Len()),
	}
}

// Triangulate the flat coordinate buffer [x0, y0, x1, y1, ...].
func Triangulate(coords []float64, opts ...Option) (*Triangulation, error) {
	result := &Triangulation{Coords: coords}
	if err := result.Update(opts...); err != nil {
		return nil, err
	}
	return result, nil
}

// Throw away the current result and triangulate Coords again, e.g. after the
// caller has moved points in place. Nothing from the previous run is reused.
// On error, the triangulation is left empty.
func (tr *Triangulation) Update(opts ...Option) error {
	coords := Coords(tr.Coords)
	*tr = Triangulation{Coords: tr.Coords}
	if err := coords.Validate(); err != nil {
		return err
	}

	result, err := NewTriangulator(coords, NewOptions(opts...)).Run()
	if err != nil {
		return err
	}
	*tr = *result
	return nil
}

func (t *Triangulator) Run() (*Triangulation, error) {
	ids := t.coords.Distinct()
	if len(ids) < 3 {
		if t.opts.Strict {
			return nil, errors.Wrapf(ErrInvalidInput, "need at least 3 distinct points, got %d", len(ids))
		}
		t.log.Debug("too few distinct points to triangulate", zap.Int("points", t.coords.Len()), zap.Int("distinct", len(ids)))
		return t.result(nil, nil, ids, nil, true), nil
	}

	seed, ok := SelectSeed(t.coords, ids)
	if !ok {
		if t.opts.Strict {
			return nil, errors.Wrapf(ErrDegenerateGeometry, "all %d distinct points are collinear", len(ids))
		}
		chain := CollinearChain(t.coords, ids, ids[0], ids[1])
		t.log.Debug("all points are collinear", zap.Int("distinct", len(ids)))
		hull := []int{chain[0], chain[len(chain)-1]}
		return t.result(nil, nil, hull, chain, true), nil
	}

	if err := t.sweep(ids, seed); err != nil {
		if t.opts.Strict || !errors.Is(err, ErrDegenerateGeometry) {
			return nil, err
		}
		t.log.Debug("falling back to convex hull", zap.Error(err))
		return t.result(nil, nil, ConvexHull(t.coords, ids), nil, true), nil
	}

	t.log.Debug("triangulated",
		zap.Int("points", t.coords.Len()),
		zap.Int("triangles", t.mesh.Len()),
		zap.Int("hull", t.hull.Size()),
		zap.Int("skipped", len(t.skipped)),
	)
	if len(t.skipped) > 0 {
		t.log.Warn("points left out of the triangulation", zap.Ints("skipped", t.skipped))
	}
	result := t.result(t.mesh.Triangles(), t.mesh.Halfedges(), t.hull.Points(), nil, false)
	result.Skipped = t.skipped
	return result, nil
}

func (t *Triangulator) result(triangles, halfedges, hull, chain []int, degenerate bool) *Triangulation {
	if triangles == nil {
		triangles = []int{}
		halfedges = []int{}
	}
	if hull == nil {
		hull = []int{}
	}
	return &Triangulation{
		Coords:     t.coords,
		Triangles:  triangles,
		Halfedges:  halfedges,
		Hull:       hull,
		Collinear:  chain,
		Degenerate: degenerate,
	}
}

func (t *Triangulator) sweep(ids []int, seed Seed) (err error) {
	defer func() {
		if recovered := HandleTriangulatePanicRecover(recover()); recovered != nil {
			err = recovered
		}
	}()

	center := seed.Circumcenter(t.coords)
	sorted := SortByProximity(t.coords, ids, seed, center, t.dists)

	t.hull.Initialize(seed, center)
	t.mesh.AddTriangle(seed.I0, seed.I1, seed.I2, Nil, Nil, Nil)

	var px, py float64
	for k, i := range sorted {
		x, y := t.coords.X(i), t.coords.Y(i)

		// Skip near-duplicates of the previous point
		if k > 0 && math.Abs(x-px) <= Epsilon && math.Abs(y-py) <= Epsilon {
			t.skipped = append(t.skipped, i)
			continue
		}
		px, py = x, y

		t.insert(i, x, y)
	}
	return nil
}

func (t *Triangulator) insert(i int, x, y float64) {
	hull := t.hull
	mesh := t.mesh

	e, walkBack, err := hull.FindVisibleEdge(x, y)
	if err != nil {
		// The point sits on the existing triangulation (to within precision), so
		// there is nothing to connect it to.
		t.log.Debug("skipping point", zap.Int("point", i), zap.Error(err))
		t.skipped = append(t.skipped, i)
		return
	}

	t.legalizer.Reset()

	// The first triangle is on the visible edge itself
	tri := mesh.AddTriangle(e, i, hull.Next(e), Nil, Nil, hull.Triangle(e))
	hull.SetTriangle(i, t.legalizer.Legalize(tri+2))
	hull.SetTriangle(e, tri)

	// Walk forward through the hull, adding triangles while the point sees the
	// next edge too
	n := hull.Next(e)
	for hull.Visible(x, y, n) {
		q := hull.Next(n)
		tri = mesh.AddTriangle(n, i, q, hull.Triangle(i), Nil, hull.Triangle(n))
		hull.SetTriangle(i, t.legalizer.Legalize(tri+2))
		hull.Remove(n)
		n = q
	}

	// If the visible edge was the first one we tried, the edges behind it can be
	// visible as well
	if walkBack {
		for {
			q := hull.Prev(e)
			if !hull.Visible(x, y, q) {
				break
			}
			tri = mesh.AddTriangle(q, i, e, Nil, hull.Triangle(e), hull.Triangle(q))
			t.legalizer.Legalize(tri + 2)
			hull.SetTriangle(q, tri)
			hull.Remove(e)
			e = q
		}
	}

	hull.InsertAfter(e, i)
	hull.HashPoint(i)
	hull.HashPoint(e)
}
