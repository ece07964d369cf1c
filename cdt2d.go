// Package cdt2d computes constrained Delaunay triangulations of planar
// point sets.
//
// Given a list of points and an optional list of constraint edges (vertex
// index pairs that must survive as triangle edges), Triangulate produces a
// triangulation in which every constraint is present and, subject to that,
// every other edge satisfies the empty-circumcircle property. Options
// select interior triangles (inside the constraint loops), exterior ones,
// or both, and can add pseudo-triangles for the unbounded face so the
// convex hull can be reconstructed from the output.
//
// Points that coincide exactly are treated as distinct vertices, and a
// constraint edge whose endpoints share an x coordinate is dropped from
// the sweep (see DESIGN.md). Callers that care should deduplicate first.
package cdt2d

import "github.com/Eqicness/cdt2d/internal"

type Point = internal.Point
type Edge = internal.Edge
type Cell = internal.Cell

type options struct {
	delaunay bool
	interior bool
	exterior bool
	infinity bool
}

// Option configures Triangulate.
type Option func(*options)

// WithDelaunay toggles the edge-flip refinement pass. It defaults to on;
// without it the result is a valid constrained triangulation but makes no
// empty-circumcircle promise.
func WithDelaunay(on bool) Option {
	return func(o *options) { o.delaunay = on }
}

// WithInterior toggles triangles inside the constraint loops. Default on.
func WithInterior(on bool) Option {
	return func(o *options) { o.interior = on }
}

// WithExterior toggles triangles outside the constraint loops. Default on.
func WithExterior(on bool) Option {
	return func(o *options) { o.exterior = on }
}

// WithInfinity appends a pseudo-cell (b, a, -1) for every hull edge (a, b)
// when exterior triangles are requested. Default off.
func WithInfinity(on bool) Option {
	return func(o *options) { o.infinity = on }
}

// Triangulate triangulates points subject to the constraint edges. The
// returned cells are triples of indices into points; their order is
// deterministic for a given input. An out-of-range vertex index in edges
// is reported as an error.
func Triangulate(points []Point, edges []Edge, opts ...Option) (result []Cell, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	o := options{delaunay: true, interior: true, exterior: true}
	for _, opt := range opts {
		opt(&o)
	}

	if len(points) == 0 || (!o.interior && !o.exterior) {
		return []Cell{}, nil
	}

	constraints := internal.CanonicalizeEdges(len(points), edges)
	cells := internal.MonotoneTriangulate(points, constraints)

	// Refinement and filtering both want the adjacency structure; when
	// neither is needed the sweep's cells are already the answer.
	if !o.delaunay && o.interior && o.exterior && !o.infinity {
		return cells, nil
	}

	tri := internal.NewTriangulation(len(points), constraints)
	for _, c := range cells {
		tri.AddTriangle(c[0], c[1], c[2])
	}
	if o.delaunay {
		internal.RefineDelaunay(points, tri)
	}

	switch {
	case !o.exterior:
		return internal.FilterCells(tri, internal.SideInterior, false), nil
	case !o.interior:
		return internal.FilterCells(tri, internal.SideExterior, o.infinity), nil
	default:
		return internal.FilterCells(tri, 0, o.infinity), nil
	}
}
