package hull

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"

	"github.com/arc-tools/archull/geom"
)

// This file parses the svg fixtures into arc-polygon boundaries. This is not
// a full (or even correct) svg parser. It parses the SVG, finds whatever the
// first polygon is, and converts its points into a CCW segment boundary. If
// anything goes wrong, it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) geom.ArcPolygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	pointString := polygons[0].Attributes["points"]
	var points []geom.Point
	for _, ps := range strings.Split(pointString, " ") {
		if ps == "" {
			continue
		}
		parts := strings.Split(ps, ",")
		if len(parts) != 2 {
			log.Fatalf("Invalid point string %q", ps)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", parts[0], err)
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", parts[1], err)
		}
		points = append(points, geom.Pt(x, y))
	}

	// Ensure the boundary winds CCW.
	area := 0.0
	for i, p := range points {
		q := points[(i+1)%len(points)]
		area += p.Perp(q)
	}
	if area < 0 {
		for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
			points[i], points[j] = points[j], points[i]
		}
	}

	poly := make(geom.ArcPolygon, 0, len(points))
	for i, p := range points {
		poly = append(poly, geom.NewSeg(p, points[(i+1)%len(points)]))
	}
	return poly
}
