package geom

import (
	"iter"
	"slices"
)

// ConvexHull returns an iterator over the vertices of the convex hull
// of points in counter-clockwise order, starting from the point with
// the smallest X coordinate, with ties broken by smallest Y. Points that
// lie on the hull's edges between two corners are not yielded.
//
// It returns an error if points is empty or if any point is not finite.
// The iterator reads points lazily, so the caller must not modify the
// slice until it is done iterating.
func ConvexHull[T Float](points []Vec[T]) (iter.Seq[Vec[T]], error) {
	if len(points) == 0 {
		return nil, invalid("points", ErrNoPoints)
	}
	for i, p := range points {
		if err := checkVec(index("points", i), p); err != nil {
			return nil, err
		}
	}

	return func(yield func(Vec[T]) bool) {
		start := slices.MinFunc(points, compareVec[T])
		current := start
		// Each step visits a new corner, so the hull can never have
		// more steps than there are points.
		for range len(points) {
			if !yield(current) {
				return
			}

			current = nextHullPoint(points, current)
			if current == start {
				return
			}
		}
	}, nil
}

// HullPolygon returns the convex hull of points as a polygon. It returns
// an error if the hull has fewer than 3 corners, such as when all of
// the points are collinear.
func HullPolygon[T Float](points []Vec[T]) (Polygon[T], error) {
	hull, err := ConvexHull(points)
	if err != nil {
		return Polygon[T]{}, err
	}
	return PolygonFromSeq(hull)
}

// nextHullPoint performs one step of a Jarvis march, returning the
// point that has every other point on its left when looking from
// current.
func nextHullPoint[T Float](points []Vec[T], current Vec[T]) Vec[T] {
	next := current
	for _, p := range points {
		if p == current {
			continue
		}
		if next == current {
			next = p
			continue
		}

		c := next.Sub(current).Cross(p.Sub(current))
		switch {
		case c < 0:
			next = p
		case c == 0:
			d := p.Sub(current)
			e := next.Sub(current)
			if d.Dot(d) > e.Dot(e) {
				next = p
			}
		}
	}
	return next
}

func compareVec[T Float](a, b Vec[T]) int {
	switch {
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	default:
		return 0
	}
}
