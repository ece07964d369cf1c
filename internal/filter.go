package internal

import "sort"

// Interior/exterior classification. Cells are rotated smallest-index-first
// (preserving winding) and sorted, giving every triangle a stable position
// that neighbor lookups can binary-search. A flood fill then labels cells,
// starting from the unbounded face and negating the label every time it
// crosses a constraint edge, the same parity rule as even-odd polygon
// filling.

// Labels assigned by the flood fill and accepted by FilterCells as targets.
const (
	SideInterior = -1
	SideExterior = 1
)

type faceIndex struct {
	cells      []Cell
	neighbor   []int
	constraint []bool
	flags      []int8
	active     []int
	next       []int
	boundary   []Cell
}

func (fi *faceIndex) locate(c Cell) int {
	return searchEQ(fi.cells, rotateCell(c), compareCells)
}

func newFaceIndex(tri *Triangulation, includeInfinity bool) *faceIndex {
	cells := tri.Cells()
	for i := range cells {
		cells[i] = rotateCell(cells[i])
	}
	sort.Slice(cells, func(i, j int) bool { return compareCells(cells[i], cells[j]) < 0 })

	m := len(cells)
	fi := &faceIndex{
		cells:      cells,
		neighbor:   make([]int, 3*m),
		constraint: make([]bool, 3*m),
		flags:      make([]int8, m),
	}
	for i, c := range cells {
		for j := 0; j < 3; j++ {
			p1, p2 := c[j], c[(j+1)%3]
			con := tri.IsConstraint(p1, p2)
			fi.constraint[3*i+j] = con

			v := tri.Opposite(p2, p1)
			if v < 0 {
				// Hull edge. Cells outside a boundary constraint start on
				// the far side of it; everything else starts exterior.
				fi.neighbor[3*i+j] = -1
				if con {
					fi.next = append(fi.next, i)
				} else {
					fi.flags[i] = SideExterior
					fi.active = append(fi.active, i)
				}
				if includeInfinity {
					fi.boundary = append(fi.boundary, Cell{p2, p1, boundaryVertex})
				}
				continue
			}
			fi.neighbor[3*i+j] = fi.locate(Cell{p2, p1, v})
		}
	}
	return fi
}

// floodFill propagates labels across non-constraint edges, parking cells
// reached through a constraint in the next queue. When a wave drains, the
// queues swap and the side flips.
func (fi *faceIndex) floodFill() {
	side := int8(SideExterior)
	for len(fi.active) > 0 || len(fi.next) > 0 {
		for len(fi.active) > 0 {
			t := fi.active[len(fi.active)-1]
			fi.active = fi.active[:len(fi.active)-1]
			if fi.flags[t] == -side {
				continue
			}
			fi.flags[t] = side
			for j := 0; j < 3; j++ {
				f := fi.neighbor[3*t+j]
				if f < 0 || fi.flags[f] != 0 {
					continue
				}
				if fi.constraint[3*t+j] {
					fi.next = append(fi.next, f)
				} else {
					fi.flags[f] = side
					fi.active = append(fi.active, f)
				}
			}
		}
		fi.active, fi.next = fi.next, fi.active[:0]
		side = -side
	}
}

// FilterCells classifies the triangulation and returns the cells whose
// label matches target (SideInterior, SideExterior, or 0 for everything).
// With includeInfinity, pseudo-cells for the unbounded face are appended
// whenever exterior cells are part of the answer.
func FilterCells(tri *Triangulation, target int, includeInfinity bool) []Cell {
	fi := newFaceIndex(tri, includeInfinity)
	fi.floodFill()

	out := make([]Cell, 0, len(fi.cells))
	if target == 0 {
		out = append(out, fi.cells...)
	} else {
		for i, c := range fi.cells {
			if int(fi.flags[i]) == target {
				out = append(out, c)
			}
		}
	}
	if includeInfinity && target >= 0 {
		out = append(out, fi.boundary...)
	}
	return out
}
