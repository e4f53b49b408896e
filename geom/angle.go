package geom

import "math"

const fullTurn = 2 * math.Pi

// Angle is a finite rotation, stored in radians in the range [0, 2π).
// The zero value is a valid angle of zero radians.
type Angle struct {
	rad float64
}

// Commonly used angles.
var (
	HalfTurn    = Angle{rad: math.Pi}
	QuarterTurn = Angle{rad: math.Pi / 2}
)

// AngleFromRadians returns an Angle of r radians. Any finite r is
// accepted and wrapped into [0, 2π), so -π/2 and 3π/2 produce the same
// Angle. It returns an error wrapping ErrNonFinite if r is NaN or
// infinite.
func AngleFromRadians(r float64) (Angle, error) {
	if !finite(r) {
		return Angle{}, invalid("radians", ErrNonFinite)
	}
	return Angle{rad: wrapRadians(r)}, nil
}

// AngleFromDegrees is like [AngleFromRadians] but takes its argument in
// degrees.
func AngleFromDegrees(d float64) (Angle, error) {
	if !finite(d) {
		return Angle{}, invalid("degrees", ErrNonFinite)
	}

	// Wrapping before converting keeps whole turns exact.
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return AngleFromRadians(d * math.Pi / 180)
}

func wrapRadians(r float64) float64 {
	r = math.Mod(r, fullTurn)
	if r < 0 {
		r += fullTurn
	}
	// Adding a full turn to a tiny negative remainder can round up to
	// exactly 2π.
	if r >= fullTurn {
		r = 0
	}
	return r
}

// Radians returns the angle in radians.
func (a Angle) Radians() float64 { return a.rad }

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 { return a.rad * 180 / math.Pi }

// Add returns the sum of a and b, wrapped back into [0, 2π).
func (a Angle) Add(b Angle) Angle {
	return Angle{rad: wrapRadians(a.rad + b.rad)}
}

// Inverse returns the angle that undoes a, such that a.Add(a.Inverse())
// is zero.
func (a Angle) Inverse() Angle {
	return Angle{rad: wrapRadians(-a.rad)}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
