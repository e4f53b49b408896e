package geom

import (
	"fmt"
	"math"
)

// Vec is a 2D vector. It is used both for positions and for
// displacements.
//
// A Vec on its own is not validated and may hold NaN or infinite
// components, such as the result of an overflowing multiplication.
// Shapes reject such vectors when they are constructed.
type Vec[T Float] struct {
	X T `json:"x" yaml:"x"`
	Y T `json:"y" yaml:"y"`
}

// V is shorthand for Vec[T]{X: x, Y: y}.
func V[T Float](x, y T) Vec[T] {
	return Vec[T]{X: x, Y: y}
}

func (v Vec[T]) String() string {
	return fmt.Sprintf("(%v,%v)", v.X, v.Y)
}

// IsFinite reports whether both components of v are neither NaN nor
// infinite.
func (v Vec[T]) IsFinite() bool {
	return finite(float64(v.X)) && finite(float64(v.Y))
}

// IsZero reports whether v is the zero vector.
func (v Vec[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Checked returns v unchanged if it is finite and an error wrapping
// ErrNonFinite otherwise. It is useful for validating the result of a
// chain of arithmetic before using it elsewhere.
func (v Vec[T]) Checked() (Vec[T], error) {
	return v, checkVec("", v)
}

// Add returns v+v2.
func (v Vec[T]) Add(v2 Vec[T]) Vec[T] {
	return Vec[T]{X: v.X + v2.X, Y: v.Y + v2.Y}
}

// Sub returns v-v2.
func (v Vec[T]) Sub(v2 Vec[T]) Vec[T] {
	return Vec[T]{X: v.X - v2.X, Y: v.Y - v2.Y}
}

// Mul returns v scaled by k.
func (v Vec[T]) Mul(k T) Vec[T] {
	return Vec[T]{X: v.X * k, Y: v.Y * k}
}

// Div returns v scaled by 1/k.
func (v Vec[T]) Div(k T) Vec[T] {
	return Vec[T]{X: v.X / k, Y: v.Y / k}
}

// Dot returns the dot product of v and v2.
func (v Vec[T]) Dot(v2 Vec[T]) T {
	return v.X*v2.X + v.Y*v2.Y
}

// Cross returns the z component of the 3D cross product of v and v2.
// It is positive if v2 is counter-clockwise from v.
func (v Vec[T]) Cross(v2 Vec[T]) T {
	return v.X*v2.Y - v.Y*v2.X
}

// Normal returns v rotated a quarter turn counter-clockwise, i.e.
// (-y, x).
func (v Vec[T]) Normal() Vec[T] {
	return Vec[T]{X: -v.Y, Y: v.X}
}

// Magnitude returns the Euclidean length of v. For float32 vectors with
// very large components the length itself may overflow to +Inf.
func (v Vec[T]) Magnitude() T {
	return T(math.Hypot(float64(v.X), float64(v.Y)))
}

// Unit returns a vector with the same direction as v and a magnitude
// of 1. It returns an error wrapping ErrZeroVector if v has no
// direction.
func (v Vec[T]) Unit() (Vec[T], error) {
	// Divide in float64 so that a float32 vector whose magnitude
	// overflows float32 still normalizes correctly.
	x, y := float64(v.X), float64(v.Y)
	m := math.Hypot(x, y)
	if m == 0 {
		return Vec[T]{}, invalid("", ErrZeroVector)
	}
	return Vec[T]{X: T(x / m), Y: T(y / m)}, nil
}

// ProjectOnto returns the projection of v onto v2. If either vector is
// zero, the result is the zero vector.
func (v Vec[T]) ProjectOnto(v2 Vec[T]) Vec[T] {
	if v.IsZero() || v2.IsZero() {
		return Vec[T]{}
	}
	return v2.Mul(v.Dot(v2) / v2.Dot(v2))
}

// Rotate returns v rotated counter-clockwise by a.
func (v Vec[T]) Rotate(a Angle) Vec[T] {
	sin, cos := math.Sincos(a.rad)
	x, y := float64(v.X), float64(v.Y)
	return Vec[T]{
		X: T(x*cos - y*sin),
		Y: T(x*sin + y*cos),
	}
}

// RotateClockwise returns v rotated clockwise by a. It undoes Rotate,
// up to floating-point error.
func (v Vec[T]) RotateClockwise(a Angle) Vec[T] {
	sin, cos := math.Sincos(a.rad)
	x, y := float64(v.X), float64(v.Y)
	return Vec[T]{
		X: T(x*cos + y*sin),
		Y: T(-x*sin + y*cos),
	}
}

// Negative returns -v.
func (v Vec[T]) Negative() Vec[T] {
	return Vec[T]{X: -v.X, Y: -v.Y}
}

func checkVec[T Float](field string, v Vec[T]) error {
	switch {
	case !finite(float64(v.X)):
		return invalid(join(field, "x"), ErrNonFinite)
	case !finite(float64(v.Y)):
		return invalid(join(field, "y"), ErrNonFinite)
	}
	return nil
}

func join(field, sub string) string {
	if field == "" {
		return sub
	}
	return field + "." + sub
}
