package geom

// PolygonBuilder accumulates vertices for a [Polygon]. Its zero value
// is ready to use.
//
//	p, err := new(geom.PolygonBuilder[float64]).
//		Vertex(-10, -10).
//		Vertex(10, -10).
//		Vertex(10, 10).
//		Vertex(-10, 10).
//		Build()
type PolygonBuilder[T Float] struct {
	vertices []Vec[T]
}

// Vertex appends a vertex at (x, y) and returns b.
func (b *PolygonBuilder[T]) Vertex(x, y T) *PolygonBuilder[T] {
	b.vertices = append(b.vertices, Vec[T]{X: x, Y: y})
	return b
}

// Vec appends v as a vertex and returns b.
func (b *PolygonBuilder[T]) Vec(v Vec[T]) *PolygonBuilder[T] {
	b.vertices = append(b.vertices, v)
	return b
}

// Build validates the accumulated vertices as with [NewPolygon]. The
// builder may be reused afterwards, and later calls to Vertex do not
// affect the returned polygon.
func (b *PolygonBuilder[T]) Build() (Polygon[T], error) {
	return NewPolygon(b.vertices...)
}
