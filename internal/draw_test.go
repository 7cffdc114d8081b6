package internal

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tr, err := Triangulate(LoadFixture("scatter"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, tr, RenderOptions{Scale: 2, Padding: 10, Circumcenters: true, Labels: true}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	coords := Coords(tr.Coords)
	size := coords.Bounds(coords.Distinct()).Size()
	assert.Equal(t, int(2*size.X+20)+1, img.Bounds().Dx())
	assert.Equal(t, int(2*size.Y+20)+1, img.Bounds().Dy())
}

func TestRender_FitsByDefault(t *testing.T) {
	tr, err := Triangulate([]float64{0, 0, 1, 0, 0, 1})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, tr, RenderOptions{}))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, defaultRenderSize+1, img.Bounds().Dx())
}

func TestRender_Degenerate(t *testing.T) {
	for _, coords := range [][]float64{
		{0, 0, 1, 1, 2, 2},
		{3, 3},
	} {
		tr, err := Triangulate(coords)
		require.NoError(t, err)
		var buf bytes.Buffer
		assert.NoError(t, Render(&buf, tr, RenderOptions{}))
		assert.NotZero(t, buf.Len())
	}

	t.Run("nothing to draw", func(t *testing.T) {
		tr, err := Triangulate(nil)
		require.NoError(t, err)
		err = Render(&bytes.Buffer{}, tr, RenderOptions{})
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})
}
