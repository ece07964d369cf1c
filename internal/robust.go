package internal

import "math"

// Adaptive-precision predicates in the style of Shewchuk. Each predicate
// first evaluates the determinant in plain double precision and accepts the
// result if its magnitude clears an a-priori error bound; otherwise it
// recomputes the determinant as an expansion — a sequence of non-overlapping
// floats, ordered by increasing magnitude, whose sum is the exact value —
// and returns the dominant component. The sign of the returned value is
// therefore always the sign of the exact determinant.
//
// Everything here assumes IEEE-754 doubles with round-to-nearest-even and
// no flush-to-zero. The compensated sums and products below are exact at
// every step, so fused multiply-add contraction cannot change their values.

const (
	epsilon  = 2.220446049250313e-16 // 2^-52
	splitter = 134217729.0           // 2^27 + 1

	orientErrBound   = (3 + 16*epsilon) * epsilon
	inCircleErrBound = (10 + 96*epsilon) * epsilon
)

// twoSum returns the exact sum a+b as a head and a roundoff tail.
func twoSum(a, b float64) (hi, lo float64) {
	x := a + b
	bv := x - a
	av := x - bv
	br := b - bv
	ar := a - av
	return x, ar + br
}

// fastTwoSum requires |a| >= |b|.
func fastTwoSum(a, b float64) (hi, lo float64) {
	x := a + b
	bv := x - a
	return x, b - bv
}

// twoProduct returns the exact product a*b as a head and a roundoff tail,
// splitting each factor at the 27th bit.
func twoProduct(a, b float64) (hi, lo float64) {
	x := a * b
	c := splitter * a
	ahi := c - (c - a)
	alo := a - ahi
	d := splitter * b
	bhi := d - (d - b)
	blo := b - bhi
	e1 := x - ahi*bhi
	e2 := e1 - alo*bhi
	e3 := e2 - ahi*blo
	return x, alo*blo - e3
}

func prod2(a, b float64) []float64 {
	hi, lo := twoProduct(a, b)
	return []float64{lo, hi}
}

func scalarScalar(a, b float64) []float64 {
	hi, lo := twoSum(a, b)
	if lo != 0 {
		return []float64{lo, hi}
	}
	return []float64{hi}
}

// expansionSum merges two expansions in linear time, keeping the result
// sorted by magnitude, zero-free (except for the zero expansion itself)
// and with the dominant component last.
func expansionSum(e, f []float64) []float64 {
	ne, nf := len(e), len(f)
	if ne == 1 && nf == 1 {
		return scalarScalar(e[0], f[0])
	}
	g := make([]float64, 0, ne+nf)
	eptr, fptr := 0, 0
	ei, fi := e[0], f[0]
	ea, fa := math.Abs(ei), math.Abs(fi)

	// Pull the next smallest-magnitude component off either input.
	next := func() float64 {
		var v float64
		if (eptr < ne && ea < fa) || fptr >= nf {
			v = ei
			eptr++
			if eptr < ne {
				ei = e[eptr]
				ea = math.Abs(ei)
			}
		} else {
			v = fi
			fptr++
			if fptr < nf {
				fi = f[fptr]
				fa = math.Abs(fi)
			}
		}
		return v
	}

	b := next()
	a := next()
	q1, q0 := fastTwoSum(a, b)
	for eptr < ne || fptr < nf {
		a = next()
		x, y := twoSum(q0, a)
		if y != 0 {
			g = append(g, y)
		}
		q1, q0 = twoSum(q1, x)
	}
	if q0 != 0 {
		g = append(g, q0)
	}
	if q1 != 0 {
		g = append(g, q1)
	}
	if len(g) == 0 {
		g = append(g, 0)
	}
	return g
}

func expansionDiff(e, f []float64) []float64 {
	nf := make([]float64, len(f))
	for i, v := range f {
		nf[i] = -v
	}
	return expansionSum(e, nf)
}

// scaleExpansion multiplies an expansion by a scalar. Shewchuk's
// scale-expansion with zero elimination.
func scaleExpansion(e []float64, b float64) []float64 {
	g := make([]float64, 0, 2*len(e))
	q, hh := twoProduct(e[0], b)
	if hh != 0 {
		g = append(g, hh)
	}
	for i := 1; i < len(e); i++ {
		t, tl := twoProduct(e[i], b)
		q2, h1 := twoSum(q, tl)
		if h1 != 0 {
			g = append(g, h1)
		}
		q3, h2 := fastTwoSum(t, q2)
		if h2 != 0 {
			g = append(g, h2)
		}
		q = q3
	}
	if q != 0 || len(g) == 0 {
		g = append(g, q)
	}
	return g
}

// mulExpansions multiplies two expansions by scaling one by each component
// of the other and summing the partial products.
func mulExpansions(e, f []float64) []float64 {
	r := scaleExpansion(f, e[0])
	for i := 1; i < len(e); i++ {
		r = expansionSum(r, scaleExpansion(f, e[i]))
	}
	return r
}

// minorExp is the exact 2x2 minor px*qy - py*qx.
func minorExp(p, q Point) []float64 {
	return expansionDiff(prod2(p.X, q.Y), prod2(p.Y, q.X))
}

// orientExp is the exact counter-clockwise-positive area determinant of the
// triple, as an expansion. Note the sign is opposite to Orient; the lifted
// in-circle determinant below is composed from this orientation.
func orientExp(p, q, r Point) []float64 {
	return expansionSum(expansionSum(minorExp(p, q), minorExp(q, r)), minorExp(r, p))
}

// liftExp is the exact squared distance from the origin, px^2 + py^2.
func liftExp(p Point) []float64 {
	return expansionSum(prod2(p.X, p.X), prod2(p.Y, p.Y))
}

func orientExact(a, b, c Point) float64 {
	e := orientExp(a, b, c)
	return -e[len(e)-1]
}

// Orient computes the orientation determinant
//
//	(a.y-c.y)*(b.x-c.x) - (a.x-c.x)*(b.y-c.y)
//
// with a sign that is exact. Triangles stored in the triangulation satisfy
// Orient(v1, v2, v3) < 0; the sweep's hull comparators, the event order and
// the classifier all lean on this one convention.
func Orient(a, b, c Point) float64 {
	l := (a.Y - c.Y) * (b.X - c.X)
	r := (a.X - c.X) * (b.Y - c.Y)
	det := l - r
	var s float64
	switch {
	case l > 0:
		if r <= 0 {
			return det
		}
		s = l + r
	case l < 0:
		if r >= 0 {
			return det
		}
		s = -(l + r)
	default:
		return det
	}
	tol := orientErrBound * s
	if det >= tol || det <= -tol {
		return det
	}
	return orientExact(a, b, c)
}

func inCircleExact(a, b, c, d Point) float64 {
	// The 4x4 lifted determinant expanded by cofactors along the lifted
	// column: la*o(b,c,d) - lb*o(a,c,d) + lc*o(a,b,d) - ld*o(a,b,c).
	pos := expansionSum(
		mulExpansions(liftExp(a), orientExp(b, c, d)),
		mulExpansions(liftExp(c), orientExp(a, b, d)))
	neg := expansionSum(
		mulExpansions(liftExp(b), orientExp(a, c, d)),
		mulExpansions(liftExp(d), orientExp(a, b, c)))
	e := expansionDiff(pos, neg)
	return e[len(e)-1]
}

// InCircle computes the in-circle determinant for d against the circle
// through a, b, c, with a sign that is exact. For a counter-clockwise
// triple (one with Orient(a,b,c) < 0) the result is positive iff d lies
// strictly inside the circumcircle, negative iff strictly outside, and
// zero on the circle.
func InCircle(a, b, c, d Point) float64 {
	adx := a.X - d.X
	ady := a.Y - d.Y
	bdx := b.X - d.X
	bdy := b.Y - d.Y
	cdx := c.X - d.X
	cdy := c.Y - d.Y

	bdxcdy := bdx * cdy
	cdxbdy := cdx * bdy
	alift := adx*adx + ady*ady

	cdxady := cdx * ady
	adxcdy := adx * cdy
	blift := bdx*bdx + bdy*bdy

	adxbdy := adx * bdy
	bdxady := bdx * ady
	clift := cdx*cdx + cdy*cdy

	det := alift*(bdxcdy-cdxbdy) + blift*(cdxady-adxcdy) + clift*(adxbdy-bdxady)
	permanent := (math.Abs(bdxcdy)+math.Abs(cdxbdy))*alift +
		(math.Abs(cdxady)+math.Abs(adxcdy))*blift +
		(math.Abs(adxbdy)+math.Abs(bdxady))*clift
	tol := inCircleErrBound * permanent
	if det > tol || -det > tol {
		return det
	}
	return inCircleExact(a, b, c, d)
}
