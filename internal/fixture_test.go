package internal

import (
	"embed"
	"log"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into coordinate buffers. This is not a full
// (or even correct) svg parser. Every <circle> contributes its center, and
// every <polygon> contributes its vertices, in document order. If anything goes
// wrong, it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Coords {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	var coords Coords
	for _, polygonEl := range rootEl.FindAll("polygon") {
		for _, pointString := range strings.Fields(polygonEl.Attributes["points"]) {
			pointStrings := strings.Split(pointString, ",")
			if len(pointStrings) != 2 {
				log.Fatalf("Invalid point string %q", pointString)
			}
			coords = append(coords, parseFixtureFloat(pointStrings[0]), parseFixtureFloat(pointStrings[1]))
		}
	}
	for _, circleEl := range rootEl.FindAll("circle") {
		coords = append(coords, parseFixtureFloat(circleEl.Attributes["cx"]), parseFixtureFloat(circleEl.Attributes["cy"]))
	}

	if len(coords) == 0 {
		log.Fatalf("No points found in fixture %q", name)
	}
	return coords
}

func parseFixtureFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("Invalid coordinate %q: %v", s, err)
	}
	return f
}

// Some ad hoc code specified fixtures

func RandomPoints(n int, seed int64) Coords {
	r := rand.New(rand.NewSource(seed))
	coords := make(Coords, 0, 2*n)
	for i := 0; i < n; i++ {
		coords = append(coords, r.Float64()*1000, r.Float64()*1000)
	}
	return coords
}

// Points on an integer grid. Every cell is four cocircular points.
func Grid(width, height int) Coords {
	var coords Coords
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			coords = append(coords, float64(x), float64(y))
		}
	}
	return coords
}

// Points evenly spaced on a circle, plus its center
func Circle(n int, radius float64) Coords {
	coords := Coords{0, 0}
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		coords = append(coords, radius*math.Cos(angle), radius*math.Sin(angle))
	}
	return coords
}

// Random points strewn along a few concentric circles, which is hard on the
// hull hash since many points share a direction from the center.
func Rings(rings, perRing int, seed int64) Coords {
	r := rand.New(rand.NewSource(seed))
	var coords Coords
	for ring := 1; ring <= rings; ring++ {
		for i := 0; i < perRing; i++ {
			angle := r.Float64() * 2 * math.Pi
			radius := float64(ring) * 10
			coords = append(coords, radius*math.Cos(angle), radius*math.Sin(angle))
		}
	}
	return coords
}
