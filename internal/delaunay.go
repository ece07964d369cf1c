package internal

// Edge-flip refinement. The stack holds candidate edges as flattened index
// pairs; an edge is pushed whenever some flip may have spoiled it and
// re-tested when popped, so stale entries are cheap skips rather than bugs.

// testFlip pushes edge (a, b) if it is flippable and not locally Delaunay.
// x is the opposite vertex on the known side; the other side's opposite is
// looked up here. The edge is canonicalized (smaller index first, opposites
// swapped to match) before the constraint test.
func testFlip(points []Point, tri *Triangulation, stack []int, a, b, x int) []int {
	y := tri.Opposite(a, b)
	if y < 0 {
		return stack
	}
	if b < a {
		a, b = b, a
		x, y = y, x
	}
	if tri.IsConstraint(a, b) {
		return stack
	}
	if InCircle(points[a], points[b], points[x], points[y]) < 0 {
		stack = append(stack, a, b)
	}
	return stack
}

// RefineDelaunay flips non-constraint edges until every one of them
// satisfies the empty-circumcircle test. Each flip strictly increases the
// minimum angle vector of the triangulation, so the loop terminates at the
// unique constrained Delaunay triangulation (co-circular ties are settled
// by the exact predicate returning zero, which is never flipped).
func RefineDelaunay(points []Point, tri *Triangulation) {
	var stack []int

	// Seed with every interior non-constraint edge that fails the test.
	// Each edge is visited from its smaller endpoint only.
	for a := 0; a < len(points); a++ {
		star := tri.stars[a]
		for j := 1; j < len(star); j += 2 {
			b := star[j]
			if b < a || tri.IsConstraint(a, b) {
				continue
			}
			x := star[j-1]
			y := boundaryVertex
			for k := 1; k < len(star); k += 2 {
				if star[k-1] == b {
					y = star[k]
					break
				}
			}
			if y < 0 {
				continue
			}
			if InCircle(points[a], points[b], points[x], points[y]) < 0 {
				stack = append(stack, a, b)
			}
		}
	}

	for len(stack) > 0 {
		b := stack[len(stack)-1]
		a := stack[len(stack)-2]
		stack = stack[:len(stack)-2]

		// Locate the two opposites of (a, b) in a's star. Either may have
		// vanished under a previous flip.
		x, y := boundaryVertex, boundaryVertex
		star := tri.stars[a]
		for i := 1; i < len(star); i += 2 {
			s, t := star[i-1], star[i]
			if s == b {
				y = t
			} else if t == b {
				x = s
			}
		}
		if x < 0 || y < 0 {
			continue
		}
		if InCircle(points[a], points[b], points[x], points[y]) >= 0 {
			// An earlier flip already fixed this edge.
			continue
		}

		tri.Flip(a, b)

		// The four perimeter edges of the flipped quad are the only ones
		// whose status can have changed.
		stack = testFlip(points, tri, stack, x, a, y)
		stack = testFlip(points, tri, stack, a, y, x)
		stack = testFlip(points, tri, stack, y, b, x)
		stack = testFlip(points, tri, stack, b, x, y)
	}
}
