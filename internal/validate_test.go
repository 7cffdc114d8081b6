package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	require.NoError(t, squareTriangulation().Validate())

	tests := []struct {
		name    string
		corrupt func(tr *Triangulation)
		message string
	}{
		{
			"ragged triangles",
			func(tr *Triangulation) { tr.Triangles = tr.Triangles[:5] },
			"not a multiple of 3",
		},
		{
			"mismatched halfedges",
			func(tr *Triangulation) { tr.Halfedges = tr.Halfedges[:3] },
			"halfedges has length",
		},
		{
			"asymmetric halfedges",
			func(tr *Triangulation) { tr.Halfedges[5] = Nil },
			"points to",
		},
		{
			"clockwise triangle",
			func(tr *Triangulation) {
				tr.Triangles = []int{0, 2, 1, 1, 3, 2}
				tr.Halfedges = []int{Nil, Nil, Nil, Nil, Nil, Nil}
			},
			"clockwise",
		},
		{
			"not Delaunay",
			func(tr *Triangulation) {
				// Pull the far corner in until it's inside the circumcircle of the
				// other triangle
				tr.Coords = []float64{0, 0, 1, 0, 0, 1, 0.6, 0.6}
			},
			"not Delaunay",
		},
		{
			"hull misses an edge",
			func(tr *Triangulation) { tr.Hull = []int{1, 3, 0, 2} },
			"not a boundary half-edge",
		},
		{
			"hull repeats a point",
			func(tr *Triangulation) { tr.Hull = []int{1, 3, 2, 1} },
			"twice",
		},
		{
			"point outside the hull",
			func(tr *Triangulation) { tr.Coords = append(tr.Coords, 5, 5) },
			"outside the hull",
		},
		{
			"degenerate with triangles",
			func(tr *Triangulation) { tr.Degenerate = true },
			"degenerate triangulation has",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tr := squareTriangulation()
			test.corrupt(tr)
			err := tr.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.message)
		})
	}
}

func TestValidate_Degenerate(t *testing.T) {
	tr, err := Triangulate([]float64{0, 0, 1, 1, 2, 2, 3, 3})
	require.NoError(t, err)
	require.NoError(t, tr.Validate())

	tr.Hull = []int{0, 7}
	assert.Error(t, tr.Validate())
}
