package internal

import "sort"

type Point struct {
	X float64
	Y float64
}

// Edge is a pair of vertex indices into the input point slice. A canonical
// edge has its smaller index first; the constraint list handed to the
// triangulation is always canonical and sorted so membership is a binary
// search.
type Edge [2]int

// Cell is a triangle as a triple of vertex indices. Cells inside the
// triangulation keep a consistent winding: Orient of the three points is
// negative. The sentinel index -1 marks the unbounded face in pseudo-cells.
type Cell [3]int

const boundaryVertex = -1

func compareEdges(a, b Edge) float64 {
	if d := a[0] - b[0]; d != 0 {
		return float64(d)
	}
	return float64(a[1] - b[1])
}

// CanonicalizeEdges validates the constraint list against the vertex count,
// flips each edge so the smaller index comes first, sorts, and drops
// duplicates. Out-of-range indices are a caller bug and abort.
func CanonicalizeEdges(numPoints int, edges []Edge) []Edge {
	out := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e[0] < 0 || e[0] >= numPoints || e[1] < 0 || e[1] >= numPoints {
			fatalf("constraint edge (%d,%d) references a vertex outside [0,%d)", e[0], e[1], numPoints)
		}
		if e[0] > e[1] {
			e[0], e[1] = e[1], e[0]
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return compareEdges(out[i], out[j]) < 0 })
	n := 0
	for _, e := range out {
		if n == 0 || e != out[n-1] {
			out[n] = e
			n++
		}
	}
	return out[:n]
}

// rotateCell rotates (never sorts) the triple so the smallest index comes
// first. Sorting would destroy the winding and with it neighbor lookups.
func rotateCell(c Cell) Cell {
	x, y, z := c[0], c[1], c[2]
	if x < y {
		if x < z {
			return Cell{x, y, z}
		}
		return Cell{z, x, y}
	}
	if y < z {
		return Cell{y, z, x}
	}
	return Cell{z, x, y}
}

func compareCells(a, b Cell) float64 {
	if d := a[0] - b[0]; d != 0 {
		return float64(d)
	}
	if d := a[1] - b[1]; d != 0 {
		return float64(d)
	}
	return float64(a[2] - b[2])
}
