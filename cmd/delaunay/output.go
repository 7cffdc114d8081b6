package main

import (
	"encoding/json"
	"io"

	"github.com/osuushi/delaunay"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

const (
	formatJSON    = "json"
	formatGeoJSON = "geojson"
	formatPNG     = "png"
)

var formats = []string{formatJSON, formatGeoJSON, formatPNG}

func validFormat(format string) bool {
	for _, f := range formats {
		if f == format {
			return true
		}
	}
	return false
}

type jsonResult struct {
	Triangles  []int `json:"triangles"`
	Halfedges  []int `json:"halfedges"`
	Hull       []int `json:"hull"`
	Collinear  []int `json:"collinear,omitempty"`
	Skipped    []int `json:"skipped,omitempty"`
	Degenerate bool  `json:"degenerate"`
}

func writeResult(w io.Writer, tr *delaunay.Triangulation, format string, cfg config) error {
	switch format {
	case formatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return errors.Wrap(encoder.Encode(jsonResult{
			Triangles:  tr.Triangles,
			Halfedges:  tr.Halfedges,
			Hull:       tr.Hull,
			Collinear:  tr.Collinear,
			Skipped:    tr.Skipped,
			Degenerate: tr.Degenerate,
		}), "writing json")
	case formatGeoJSON:
		data, err := toFeatureCollection(tr).MarshalJSON()
		if err != nil {
			return errors.Wrap(err, "encoding geojson")
		}
		_, err = w.Write(data)
		return errors.Wrap(err, "writing geojson")
	case formatPNG:
		return delaunay.Render(w, tr, cfg.renderOptions())
	}
	return errors.Errorf("unknown format %q", format)
}

// One polygon feature per triangle, plus the hull. The hull is a line string
// when it doesn't enclose anything.
func toFeatureCollection(tr *delaunay.Triangulation) *geojson.FeatureCollection {
	point := func(i int) orb.Point {
		return orb.Point{tr.Coords[2*i], tr.Coords[2*i+1]}
	}

	fc := geojson.NewFeatureCollection()
	for t := 0; t < tr.Len(); t++ {
		tri := tr.PointsOfTriangle(t)
		ring := orb.Ring{point(tri.A), point(tri.B), point(tri.C), point(tri.A)}
		feature := geojson.NewFeature(orb.Polygon{ring})
		feature.Properties["kind"] = "triangle"
		feature.Properties["triangle"] = t
		feature.Properties["points"] = []int{tri.A, tri.B, tri.C}
		fc.Append(feature)
	}

	boundary := tr.Hull
	if len(tr.Collinear) > 0 {
		boundary = tr.Collinear
	}
	if len(boundary) == 0 {
		return fc
	}
	var geometry orb.Geometry
	if len(boundary) == 1 {
		geometry = point(boundary[0])
	} else if len(boundary) >= 3 && len(tr.Collinear) == 0 {
		ring := make(orb.Ring, 0, len(boundary)+1)
		for _, v := range boundary {
			ring = append(ring, point(v))
		}
		ring = append(ring, point(boundary[0]))
		geometry = orb.Polygon{ring}
	} else {
		line := make(orb.LineString, 0, len(boundary))
		for _, v := range boundary {
			line = append(line, point(v))
		}
		geometry = line
	}
	feature := geojson.NewFeature(geometry)
	feature.Properties["kind"] = "hull"
	feature.Properties["points"] = tr.Hull
	feature.Properties["degenerate"] = tr.Degenerate
	fc.Append(feature)
	return fc
}
