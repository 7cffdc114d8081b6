package internal

import (
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/delaunay/internal/dbg"
	"github.com/pkg/errors"
)

type RenderOptions struct {
	// Pixels per unit. Zero means fit the longer side of the bounds to 800
	// pixels.
	Scale   float64
	Padding float64
	// Draw the circumcenter of each triangle
	Circumcenters bool
	// Label points with their readable debug names
	Labels bool
}

const defaultRenderSize = 800

// Render the triangulation as a PNG: triangle edges in cyan, the hull in
// yellow, and points in white. Degenerate results just show their points and
// hull (or collinear chain).
func Render(w io.Writer, tr *Triangulation, opts RenderOptions) error {
	c, err := tr.drawContext(opts)
	if err != nil {
		return err
	}
	return errors.Wrap(c.EncodePNG(w), "encoding png")
}

// Helper to draw a triangulation in the terminal (iTerm only) for debugging.
func (tr *Triangulation) DbgDraw(scale float64) error {
	c, err := tr.drawContext(RenderOptions{Scale: scale, Padding: 20, Labels: true})
	if err != nil {
		return err
	}
	path := filepath.Join(os.TempDir(), "triangulation.png")
	if err := c.SavePNG(path); err != nil {
		return errors.Wrap(err, "saving debug image")
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}

func (tr *Triangulation) drawContext(opts RenderOptions) (*gg.Context, error) {
	coords := Coords(tr.Coords)
	if err := coords.Validate(); err != nil {
		return nil, err
	}
	if coords.Len() == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "nothing to render")
	}

	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for i := 0; i < coords.Len(); i++ {
		minX = math.Min(minX, coords.X(i))
		minY = math.Min(minY, coords.Y(i))
		maxX = math.Max(maxX, coords.X(i))
		maxY = math.Max(maxY, coords.Y(i))
	}

	scale := opts.Scale
	if scale <= 0 {
		extent := math.Max(maxX-minX, maxY-minY)
		if extent == 0 {
			extent = 1
		}
		scale = defaultRenderSize / extent
	}
	padding := opts.Padding

	// Set up the context
	width := int(scale*(maxX-minX)+padding*2) + 1
	height := int(scale*(maxY-minY)+padding*2) + 1
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(padding, padding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	// Line widths are in user space, so undo the scale
	pixel := 1 / scale

	// Each interior edge is shared by two half-edges, so only draw it once
	c.SetLineWidth(pixel)
	c.SetRGB(0, 1, 1)
	for e, opposite := range tr.Halfedges {
		if opposite != Nil && opposite < e {
			continue
		}
		a, b := tr.Triangles[e], tr.Triangles[NextHalfedge(e)]
		c.DrawLine(coords.X(a), coords.Y(a), coords.X(b), coords.Y(b))
	}
	c.Stroke()

	if opts.Circumcenters {
		c.SetRGB(1, 0, 1)
		for t := 0; t < tr.Len(); t++ {
			center := tr.Circumcenter(t)
			c.DrawCircle(center.X, center.Y, 1.5*pixel)
		}
		c.Fill()
	}

	boundary := tr.Hull
	if len(tr.Collinear) > 0 {
		boundary = tr.Collinear
	}
	if len(boundary) > 1 {
		c.SetLineWidth(2 * pixel)
		c.SetRGB(1, 1, 0)
		c.MoveTo(coords.X(boundary[0]), coords.Y(boundary[0]))
		for _, v := range boundary[1:] {
			c.LineTo(coords.X(v), coords.Y(v))
		}
		if len(boundary) > 2 && len(tr.Collinear) == 0 {
			c.ClosePath()
		}
		c.Stroke()
	}

	c.SetRGB(1, 1, 1)
	for i := 0; i < coords.Len(); i++ {
		c.DrawCircle(coords.X(i), coords.Y(i), 2*pixel)
	}
	c.Fill()

	if opts.Labels {
		// Text would come out upside down in the flipped context
		c.Identity()
		c.SetRGB(1, 1, 1)
		for i := 0; i < coords.Len(); i++ {
			x := padding + scale*(coords.X(i)-minX)
			y := float64(height) - padding - scale*(coords.Y(i)-minY)
			c.DrawString(dbg.Name(i), x+4, y-4)
		}
	}

	return c, nil
}
