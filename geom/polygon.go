package geom

import (
	"fmt"
	"iter"
	"slices"

	"deedles.dev/xiter"
)

// containsEpsilon bounds the cross product of an edge with the vector
// from its start to a point, within which Polygon.ContainsPoint treats
// the point as lying on that edge. Since the cross product scales with
// edge length, the matching distance shrinks as edges get longer.
const containsEpsilon = 1e-6

// Polygon is a closed shape bounded by straight edges between
// successive vertices, with an implicit final edge from the last vertex
// back to the first.
//
// Polygons are assumed to be convex. Construction does not enforce
// this, but overlap tests against a concave polygon give undefined
// results. Use [Polygon.IsConvex] to check, or [HullPolygon] to build a
// polygon that is convex by construction.
//
// The zero Polygon is empty and intersects nothing. Its Bounds is the
// zero AABB and it contains no points.
type Polygon[T Float] struct {
	vertices []Vec[T]
}

// NewPolygon returns a polygon with the given vertices. It returns an
// error if there are fewer than 3 vertices, if any vertex is not
// finite, or if any two consecutive vertices, including the last and
// the first, are equal.
func NewPolygon[T Float](vertices ...Vec[T]) (Polygon[T], error) {
	return PolygonFromSeq(slices.Values(vertices))
}

// PolygonFromSeq is like [NewPolygon] but takes the vertices from an
// iterator. The iterator is consumed fully unless a vertex is rejected.
func PolygonFromSeq[T Float](seq iter.Seq[Vec[T]]) (Polygon[T], error) {
	var vertices []Vec[T]
	for i, v := range xiter.Enumerate(seq) {
		field := index("vertices", i)
		if err := checkVec(field, v); err != nil {
			return Polygon[T]{}, err
		}
		if i > 0 && v == vertices[i-1] {
			return Polygon[T]{}, invalid(field, ErrDegenerateEdge)
		}
		vertices = append(vertices, v)
	}

	if len(vertices) < 3 {
		return Polygon[T]{}, invalid("vertices", ErrTooFewVertices)
	}
	if last := len(vertices) - 1; vertices[last] == vertices[0] {
		return Polygon[T]{}, invalid(index("vertices", last), ErrDegenerateEdge)
	}

	return Polygon[T]{vertices: vertices}, nil
}

// Len returns the number of vertices in p.
func (p Polygon[T]) Len() int { return len(p.vertices) }

// Vertex returns the ith vertex of p.
func (p Polygon[T]) Vertex(i int) Vec[T] { return p.vertices[i] }

// Vertices returns a copy of the vertices of p in the order that they
// were given.
func (p Polygon[T]) Vertices() []Vec[T] {
	return slices.Clone(p.vertices)
}

// All yields the vertices of p in order.
func (p Polygon[T]) All() iter.Seq[Vec[T]] {
	return slices.Values(p.vertices)
}

// Edges yields each edge of p as a pair of its start and end vertices,
// ending with the edge from the last vertex back to the first.
func (p Polygon[T]) Edges() iter.Seq2[Vec[T], Vec[T]] {
	return func(yield func(Vec[T], Vec[T]) bool) {
		for i, v := range p.vertices {
			if !yield(v, p.vertices[(i+1)%len(p.vertices)]) {
				return
			}
		}
	}
}

// Bounds returns the smallest box containing every vertex of p.
func (p Polygon[T]) Bounds() AABB[T] {
	if len(p.vertices) == 0 {
		return AABB[T]{}
	}
	return boundsOf(p.vertices)
}

// Translate returns p moved by offset. It returns an error if the
// result would not be a valid polygon.
func (p Polygon[T]) Translate(offset Vec[T]) (Polygon[T], error) {
	return p.transform(func(v Vec[T]) Vec[T] { return v.Add(offset) })
}

// RotateAround returns p rotated counter-clockwise by a around center,
// matching [Vec.Rotate]. To rotate clockwise, pass a.Inverse().
// It returns an error if the result would not be a valid polygon, which
// can happen if rounding collapses two neighbouring vertices into one.
func (p Polygon[T]) RotateAround(a Angle, center Vec[T]) (Polygon[T], error) {
	return p.transform(func(v Vec[T]) Vec[T] {
		return v.Sub(center).Rotate(a).Add(center)
	})
}

func (p Polygon[T]) transform(f func(Vec[T]) Vec[T]) (Polygon[T], error) {
	return PolygonFromSeq(func(yield func(Vec[T]) bool) {
		for _, v := range p.vertices {
			if !yield(f(v)) {
				return
			}
		}
	})
}

// ContainsPoint reports whether pt lies inside p. Points on or within a
// tiny distance of the border are considered to be inside.
func (p Polygon[T]) ContainsPoint(pt Vec[T]) bool {
	if len(p.vertices) == 0 {
		return false
	}

	var side int
	for a, b := range p.Edges() {
		s := sideOf(a, b, pt)
		if s == 0 {
			continue
		}
		if side == 0 {
			side = s
			continue
		}
		if s != side {
			return false
		}
	}
	return true
}

// sideOf returns -1 or 1 depending on which side of the line through a
// and b the point pt is on, or 0 if it is on the line.
func sideOf[T Float](a, b, pt Vec[T]) int {
	c := float64(b.Sub(a).Cross(pt.Sub(a)))
	switch {
	case c < -containsEpsilon:
		return -1
	case c > containsEpsilon:
		return 1
	default:
		return 0
	}
}

// IsConvex reports whether p is convex, meaning that every turn along
// its boundary is in the same direction. Collinear vertices are
// allowed.
func (p Polygon[T]) IsConvex() bool {
	var turn T
	n := len(p.vertices)
	for i, v := range p.vertices {
		next := p.vertices[(i+1)%n]
		after := p.vertices[(i+2)%n]
		c := next.Sub(v).Cross(after.Sub(next))
		if c == 0 {
			continue
		}
		if turn != 0 && (c > 0) != (turn > 0) {
			return false
		}
		turn = c
	}
	return true
}

// Intersects reports whether p overlaps other, using the separating
// axis theorem. Shapes that only touch are considered to overlap.
func (p Polygon[T]) Intersects(other Shape[T]) bool {
	if o, ok := other.(Polygon[T]); ok {
		return sat(p.vertices, o.vertices)
	}
	return sat(p.vertices, other.Vertices())
}

func index(field string, i int) string {
	return fmt.Sprintf("%v[%v]", field, i)
}
