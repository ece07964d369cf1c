package internal

// This contains no actual tests. It is just a collection of helpers for
// checking that a triangulation is valid.

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

const testEpsilon = 1e-9

// signedCellArea is the area of the cell, positive for the stored winding.
func signedCellArea(points []Point, c Cell) float64 {
	return -Orient(points[c[0]], points[c[1]], points[c[2]]) / 2
}

type normalizedEdge [2]int

func newNormalizedEdge(a, b int) normalizedEdge {
	if a > b {
		a, b = b, a
	}
	return normalizedEdge{a, b}
}

type edgeSet map[normalizedEdge]struct{}

func collectEdges(cells []Cell) edgeSet {
	set := make(edgeSet)
	for _, c := range cells {
		set[newNormalizedEdge(c[0], c[1])] = struct{}{}
		set[newNormalizedEdge(c[1], c[2])] = struct{}{}
		set[newNormalizedEdge(c[2], c[0])] = struct{}{}
	}
	return set
}

// convexHullArea computes the area of the convex hull of the points with
// Andrew's monotone chain, using the same orientation predicate as the
// triangulator so ties agree.
func convexHullArea(points []Point) float64 {
	pts := make([]Point, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})

	build := func(ordered []Point) []Point {
		var chain []Point
		for _, p := range ordered {
			for len(chain) > 1 && Orient(chain[len(chain)-2], chain[len(chain)-1], p) <= 0 {
				chain = chain[:len(chain)-1]
			}
			chain = append(chain, p)
		}
		return chain
	}
	lower := build(pts)
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
	upper := build(pts)

	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	var area2 float64
	for i, p := range hull {
		q := hull[(i+1)%len(hull)]
		area2 += p.X*q.Y - p.Y*q.X
	}
	if area2 < 0 {
		area2 = -area2
	}
	return area2 / 2
}

// AssertValidTriangulation checks the structural invariants of a finished
// triangulation. The rules are:
//  1. Every cell has three distinct vertex indices, consistently wound.
//  2. No cell appears twice.
//  3. Every given constraint edge appears as a cell edge.
//  4. The cells partition the convex hull: their areas sum to its area.
func AssertValidTriangulation(t *testing.T, points []Point, edges []Edge, cells []Cell) {
	t.Helper()

	seen := make(map[Cell]struct{})
	var total float64
	for _, c := range cells {
		require.True(t, c[0] != c[1] && c[1] != c[2] && c[2] != c[0], "degenerate cell %v", c)
		require.Negative(t, Orient(points[c[0]], points[c[1]], points[c[2]]), "cell %v has inverted or zero winding", c)
		total += signedCellArea(points, c)

		key := rotateCell(c)
		_, dup := seen[key]
		require.False(t, dup, "cell %v emitted twice", c)
		seen[key] = struct{}{}
	}

	cellEdges := collectEdges(cells)
	for _, e := range edges {
		_, ok := cellEdges[newNormalizedEdge(e[0], e[1])]
		require.True(t, ok, "constraint edge %v missing from the triangulation", e)
	}

	require.InDelta(t, convexHullArea(points), total, testEpsilon,
		"cell areas must sum to the convex hull area")
}

// AssertLocallyDelaunay rebuilds the adjacency for the cells and checks the
// empty-circumcircle property on every non-constraint interior edge.
func AssertLocallyDelaunay(t *testing.T, points []Point, edges []Edge, cells []Cell) {
	t.Helper()

	tri := NewTriangulation(len(points), CanonicalizeEdges(len(points), edges))
	for _, c := range cells {
		tri.AddTriangle(c[0], c[1], c[2])
	}
	for a := 0; a < len(points); a++ {
		star := tri.stars[a]
		for j := 1; j < len(star); j += 2 {
			b := star[j]
			if b < a || tri.IsConstraint(a, b) {
				continue
			}
			x := star[j-1]
			y := tri.Opposite(a, b)
			if y < 0 {
				continue
			}
			require.GreaterOrEqual(t, InCircle(points[a], points[b], points[x], points[y]), 0.0,
				"edge (%d,%d) is not locally Delaunay", a, b)
		}
	}
}

// cellsTopology is a winding-insensitive fingerprint for comparing two
// triangulations of the same point set.
func cellsTopology(cells []Cell) map[Cell]struct{} {
	m := make(map[Cell]struct{}, len(cells))
	for _, c := range cells {
		m[rotateCell(c)] = struct{}{}
	}
	return m
}

func centroid(points []Point, c Cell) Point {
	return Point{
		X: (points[c[0]].X + points[c[1]].X + points[c[2]].X) / 3,
		Y: (points[c[0]].Y + points[c[1]].Y + points[c[2]].Y) / 3,
	}
}
