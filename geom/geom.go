// Package geom provides validated 2D geometry primitives: vectors,
// angles, axis-aligned bounding boxes, and convex polygons, along with
// overlap testing between any pair of them.
//
// Every shape is built through a constructor that returns an error, so
// a value of type [AABB] or [Polygon] that exists at all is known to be
// finite and free of degenerate edges. Operations on such values never
// fail.
package geom

import "golang.org/x/exp/constraints"

// Float is a constraint for the scalar types that geom types and
// functions can handle. Unlike a general numeric constraint it excludes
// integers, since finiteness checks, unit vectors, and rotation are only
// meaningful for floating-point coordinates.
type Float interface {
	constraints.Float
}

// Shape is implemented by all of the shape types in this package. It
// is the only thing that a caller needs in order to test two shapes
// against each other, regardless of what kinds of shapes they are.
type Shape[T Float] interface {
	// Intersects reports whether the shape overlaps other. Shapes that
	// only touch along an edge or at a corner are considered to
	// overlap.
	Intersects(other Shape[T]) bool

	// Vertices returns the corners of the shape in boundary order. The
	// returned slice belongs to the caller. Implementations outside of
	// this package must return a finite, convex boundary. A shape with
	// no vertices is empty and intersects nothing.
	Vertices() []Vec[T]

	// Bounds returns the smallest AABB that contains the shape.
	Bounds() AABB[T]
}

// Intersects reports whether a and b overlap. It is equivalent to
// a.Intersects(b) and is provided for call sites that find a function
// more convenient than a method.
func Intersects[T Float](a, b Shape[T]) bool {
	return a.Intersects(b)
}

// sat reports whether the convex vertex sets a and b overlap according
// to the separating axis theorem. Every edge normal of both sets is
// tried as a candidate axis and the first one that separates the
// projections ends the search. An empty or non-finite vertex set
// intersects nothing.
func sat[T Float](a, b []Vec[T]) bool {
	if !usable(a) || !usable(b) {
		return false
	}
	return !hasSeparatingAxis(a, a, b) && !hasSeparatingAxis(b, a, b)
}

func hasSeparatingAxis[T Float](edges, a, b []Vec[T]) bool {
	for i, v := range edges {
		axis := edges[(i+1)%len(edges)].Sub(v).Normal()
		if axis.IsZero() {
			continue
		}

		amin, amax := project(a, axis)
		bmin, bmax := project(b, axis)
		if !overlaps(amin, amax, bmin, bmax) {
			return true
		}
	}
	return false
}

// project returns the interval covered by vertices when projected onto
// axis. The axis does not need to be normalized since only the order
// of the results matters.
func project[T Float](vertices []Vec[T], axis Vec[T]) (lo, hi T) {
	lo = vertices[0].Dot(axis)
	hi = lo
	for _, v := range vertices[1:] {
		d := v.Dot(axis)
		lo = min(lo, d)
		hi = max(hi, d)
	}
	return lo, hi
}

// overlaps reports whether the closed intervals [amin, amax] and [bmin,
// bmax] have at least one point in common.
func overlaps[T Float](amin, amax, bmin, bmax T) bool {
	return amin <= bmax && amax >= bmin
}

func usable[T Float](vertices []Vec[T]) bool {
	if len(vertices) == 0 {
		return false
	}
	for _, v := range vertices {
		if !v.IsFinite() {
			return false
		}
	}
	return true
}
