package internal

import (
	"embed"
	"log"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// This file parses the svg fixtures into point sets with their boundary
// loops as constraint edges. It is not a full (or even correct) svg parser:
// it expects exactly one polygon and takes its vertices in order. If
// anything goes wrong, it stops the test binary with log.Fatalf.
//
// Fixtures are available by name in the fixtures/ directory, sans
// extension. None of them may contain a vertical edge, since the sweep
// drops those from the constraint set.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) ([]Point, []Edge) {
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

	var points []Point
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		parts := strings.Split(pointString, ",")
		if len(parts) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", parts[0], err)
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", parts[1], err)
		}
		points = append(points, Point{x, y})
	}

	edges := make([]Edge, len(points))
	for i := range points {
		edges[i] = Edge{i, (i + 1) % len(points)}
	}
	return points, edges
}

// polygonArea is the absolute shoelace area of the fixture loop.
func polygonArea(points []Point) float64 {
	var area2 float64
	for i, p := range points {
		q := points[(i+1)%len(points)]
		area2 += p.X*q.Y - p.Y*q.X
	}
	if area2 < 0 {
		area2 = -area2
	}
	return area2 / 2
}

func TestFixturePolygons(t *testing.T) {
	for _, name := range []string{"pocket", "blade"} {
		t.Run(name, func(t *testing.T) {
			points, edges := LoadFixture(name)
			constraints := CanonicalizeEdges(len(points), edges)

			// Nothing in the loop may be vertical or the fixture is
			// exercising the wrong thing.
			for _, e := range constraints {
				require.NotEqual(t, points[e[0]].X, points[e[1]].X, "fixture %q has a vertical edge %v", name, e)
			}

			cells := classify(t, points, edges, SideInterior, false)
			require.NotEmpty(t, cells)

			// The interior triangles carry every boundary edge and fill
			// exactly the polygon.
			cellEdges := collectEdges(cells)
			for _, e := range constraints {
				assert.Contains(t, cellEdges, newNormalizedEdge(e[0], e[1]))
			}
			var total float64
			for _, c := range cells {
				require.Negative(t, Orient(points[c[0]], points[c[1]], points[c[2]]))
				total += signedCellArea(points, c)
			}
			assert.InDelta(t, polygonArea(points), total, 1e-9)

			AssertLocallyDelaunay(t, points, edges, cells)
		})
	}
}
