package geom

// AABB is an axis-aligned bounding box. It contains the points whose
// coordinates lie between Min and Max inclusive on each axis.
//
// A box with zero width or zero height is valid. Such a box is a line
// segment or a single point and still overlaps anything that touches
// it.
type AABB[T Float] struct {
	min, max Vec[T]
}

// NewAABB returns the box spanning from min to max. It returns an error
// if either corner is not finite or if min is greater than max along
// either axis.
func NewAABB[T Float](min, max Vec[T]) (AABB[T], error) {
	if err := checkVec("min", min); err != nil {
		return AABB[T]{}, err
	}
	if err := checkVec("max", max); err != nil {
		return AABB[T]{}, err
	}
	if min.X > max.X {
		return AABB[T]{}, invalid("x", ErrInvertedBounds)
	}
	if min.Y > max.Y {
		return AABB[T]{}, invalid("y", ErrInvertedBounds)
	}

	return AABB[T]{min: min, max: max}, nil
}

// BoundsOf returns the smallest box that contains all of points. It
// returns an error if points is empty or contains a non-finite vector.
func BoundsOf[T Float](points []Vec[T]) (AABB[T], error) {
	if len(points) == 0 {
		return AABB[T]{}, invalid("points", ErrNoPoints)
	}
	for i, p := range points {
		if err := checkVec(index("points", i), p); err != nil {
			return AABB[T]{}, err
		}
	}
	return boundsOf(points), nil
}

// boundsOf is BoundsOf without validation. points must be non-empty and
// finite.
func boundsOf[T Float](points []Vec[T]) AABB[T] {
	b := AABB[T]{min: points[0], max: points[0]}
	for _, p := range points[1:] {
		b.min = Vec[T]{X: min(b.min.X, p.X), Y: min(b.min.Y, p.Y)}
		b.max = Vec[T]{X: max(b.max.X, p.X), Y: max(b.max.Y, p.Y)}
	}
	return b
}

// Min returns the corner of the box with the smallest coordinates.
func (b AABB[T]) Min() Vec[T] { return b.min }

// Max returns the corner of the box with the largest coordinates.
func (b AABB[T]) Max() Vec[T] { return b.max }

// Size returns the width and height of the box as a vector.
func (b AABB[T]) Size() Vec[T] {
	return b.max.Sub(b.min)
}

// Center returns the point halfway between the corners of the box.
func (b AABB[T]) Center() Vec[T] {
	return b.min.Add(b.Size().Div(2))
}

// Bounds returns b. It exists so that AABB implements [Shape].
func (b AABB[T]) Bounds() AABB[T] { return b }

// Vertices returns the corners of the box in counter-clockwise order,
// starting with Min. Corners that coincide because the box has no width
// or height are only listed once.
func (b AABB[T]) Vertices() []Vec[T] {
	lo, hi := b.min, b.max
	switch {
	case lo == hi:
		return []Vec[T]{lo}
	case lo.X == hi.X || lo.Y == hi.Y:
		return []Vec[T]{lo, hi}
	}

	return []Vec[T]{
		lo,
		{X: hi.X, Y: lo.Y},
		hi,
		{X: lo.X, Y: hi.Y},
	}
}

// ContainsPoint reports whether p lies inside the box or on its border.
func (b AABB[T]) ContainsPoint(p Vec[T]) bool {
	return p.X >= b.min.X && p.X <= b.max.X &&
		p.Y >= b.min.Y && p.Y <= b.max.Y
}

// Translate returns the box moved by offset. It returns an error if the
// result would not be finite.
func (b AABB[T]) Translate(offset Vec[T]) (AABB[T], error) {
	return NewAABB(b.min.Add(offset), b.max.Add(offset))
}

// Intersects reports whether b overlaps other. Boxes that share only an
// edge or a corner are considered to overlap.
//
// Two boxes are compared by their extents along each axis. Any other
// shape is compared using the separating axis theorem with b treated
// as a polygon.
func (b AABB[T]) Intersects(other Shape[T]) bool {
	if o, ok := other.(AABB[T]); ok {
		return b.overlapsAABB(o)
	}
	return sat(b.Vertices(), other.Vertices())
}

func (b AABB[T]) overlapsAABB(o AABB[T]) bool {
	return overlaps(b.min.X, b.max.X, o.min.X, o.max.X) &&
		overlaps(b.min.Y, b.max.Y, o.min.Y, o.max.Y)
}
