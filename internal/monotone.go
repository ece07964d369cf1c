package internal

import (
	"math"
	"sort"
)

// Sweep-line monotone triangulation. Events are processed left to right;
// the sweep status is a stack of "channels", horizontal regions separated
// by the constraint segments currently crossing the sweep line. Each
// channel triangulates independently, which is what keeps constraint edges
// out of reach of the ear-clipping below and therefore present in the
// output.
//
// Constraint edges with equal endpoint x are invisible to the sweep and are
// dropped from the event set. They stay in the canonical constraint list,
// so they still pin refinement and classification once the triangulation
// happens to contain them.

const (
	eventPoint = iota
	eventEnd
	eventStart
)

type sweepEvent struct {
	a    Point
	b    Point
	kind int
	idx  int
}

// partialHull is one channel: the constraint segment a->b bounding it, and
// the two reflex chains of the region triangulated so far. Any convex
// stretch of a chain is clipped into triangles the moment a new point can
// see it, so between events the chains only ever turn away from their
// channel.
type partialHull struct {
	a        Point
	b        Point
	idx      int
	lowerIds []int
	upperIds []int
}

func compareEvents(p, q *sweepEvent) float64 {
	if d := p.a.X - q.a.X; d != 0 {
		return d
	}
	if d := p.a.Y - q.a.Y; d != 0 {
		return d
	}
	if d := p.kind - q.kind; d != 0 {
		return float64(d)
	}
	if p.kind != eventPoint {
		if d := Orient(p.a, p.b, q.b); d != 0 {
			return d
		}
	}
	return float64(p.idx - q.idx)
}

func testHullPoint(hull *partialHull, p Point) float64 {
	return Orient(hull.a, hull.b, p)
}

// findSplit orders a constraint event against a channel. Which endpoints
// get compared depends on their x order; ties (shared endpoints, collinear
// constraints) fall back to the originating index so the order stays total.
func findSplit(hull *partialHull, ev *sweepEvent) float64 {
	var d float64
	if hull.a.X < ev.a.X {
		d = Orient(hull.a, hull.b, ev.a)
	} else {
		d = Orient(ev.b, ev.a, hull.a)
	}
	if d == 0 {
		if ev.b.X < hull.b.X {
			d = Orient(hull.a, hull.b, ev.b)
		} else {
			d = Orient(ev.b, ev.a, hull.b)
		}
		if d == 0 {
			return float64(hull.idx - ev.idx)
		}
	}
	return d
}

// addPoint inserts a point into every channel it touches. Points interior
// to a channel hit exactly one; a point on a constraint lies in two (or
// more, for overlapping constraints) and joins each of them.
func addPoint(cells []Cell, hulls []*partialHull, points []Point, p Point, idx int) []Cell {
	lo := searchLT(hulls, p, testHullPoint)
	hi := searchGT(hulls, p, testHullPoint)
	for i := lo; i < hi; i++ {
		hull := hulls[i]

		// Clip ears off the lower chain while the new point sees it.
		l := hull.lowerIds
		for len(l) > 1 && Orient(points[l[len(l)-2]], points[l[len(l)-1]], p) > 0 {
			cells = append(cells, Cell{l[len(l)-1], l[len(l)-2], idx})
			l = l[:len(l)-1]
		}
		hull.lowerIds = append(l, idx)

		// Same for the upper chain, with the turn test mirrored.
		u := hull.upperIds
		for len(u) > 1 && Orient(points[u[len(u)-2]], points[u[len(u)-1]], p) < 0 {
			cells = append(cells, Cell{u[len(u)-2], u[len(u)-1], idx})
			u = u[:len(u)-1]
		}
		hull.upperIds = append(u, idx)
	}
	return cells
}

// splitHulls opens a new channel when a constraint starts. The constraint's
// left endpoint was inserted by its own point event just before, so it is
// the last entry of the found channel's upper chain; both child channels
// start from it.
func splitHulls(hulls []*partialHull, ev *sweepEvent) []*partialHull {
	k := searchLE(hulls, ev, findSplit)
	if k < 0 {
		return hulls
	}
	hull := hulls[k]
	upperIds := hull.upperIds
	x := upperIds[len(upperIds)-1]
	hull.upperIds = []int{x}
	split := &partialHull{
		a:        ev.a,
		b:        ev.b,
		idx:      ev.idx,
		lowerIds: []int{x},
		upperIds: upperIds,
	}
	hulls = append(hulls, nil)
	copy(hulls[k+2:], hulls[k+1:])
	hulls[k+1] = split
	return hulls
}

// mergeHulls closes a channel when its constraint ends. The endpoints are
// swapped first so findSplit sees the same edge the matching start event
// carried.
func mergeHulls(hulls []*partialHull, ev *sweepEvent) []*partialHull {
	ev.a, ev.b = ev.b, ev.a
	k := searchEQ(hulls, ev, findSplit)
	if k < 1 {
		return hulls
	}
	hulls[k-1].upperIds = hulls[k].upperIds
	return append(hulls[:k], hulls[k+1:]...)
}

// MonotoneTriangulate sweeps the points and constraint edges left to right
// and returns a triangulation containing every non-vertical constraint.
// Edges must already be canonicalized.
func MonotoneTriangulate(points []Point, edges []Edge) []Cell {
	if len(points) == 0 {
		return nil
	}

	events := make([]*sweepEvent, 0, len(points)+2*len(edges))
	for i := range points {
		events = append(events, &sweepEvent{a: points[i], kind: eventPoint, idx: i})
	}
	for i, e := range edges {
		a, b := points[e[0]], points[e[1]]
		if a.X < b.X {
			events = append(events,
				&sweepEvent{a: a, b: b, kind: eventStart, idx: i},
				&sweepEvent{a: b, b: a, kind: eventEnd, idx: i})
		} else if a.X > b.X {
			events = append(events,
				&sweepEvent{a: b, b: a, kind: eventStart, idx: i},
				&sweepEvent{a: a, b: b, kind: eventEnd, idx: i})
		}
	}
	sort.Slice(events, func(i, j int) bool { return compareEvents(events[i], events[j]) < 0 })

	// The sentinel channel sits beyond every real event, so each point
	// lands in at least one channel and the searches never fall off the
	// ends of the status.
	minX := events[0].a.X - (1+math.Abs(events[0].a.X))*math.Ldexp(1, -51)
	hulls := []*partialHull{{a: Point{minX, 1}, b: Point{minX, 0}, idx: -1}}

	var cells []Cell
	for _, ev := range events {
		switch ev.kind {
		case eventPoint:
			cells = addPoint(cells, hulls, points, ev.a, ev.idx)
		case eventStart:
			hulls = splitHulls(hulls, ev)
		default:
			hulls = mergeHulls(hulls, ev)
		}
	}
	return cells
}
