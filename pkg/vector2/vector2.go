// Package vector2 provides an immutable 2 component vector.
//
// Every operation takes and returns Vector by value; nothing mutates its
// receiver, so values are safe to share between goroutines.
package vector2

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f32"
)

// Vector is a 2D vector.
type Vector struct {
	X, Y float64
}

// New creates a new Vector.
func New(x, y float64) Vector {
	return Vector{x, y}
}

// Origin returns the zero vector.
func Origin() Vector {
	return Vector{}
}

// UnitX returns (1, 0).
func UnitX() Vector {
	return Vector{1, 0}
}

// UnitY returns (0, 1).
func UnitY() Vector {
	return Vector{0, 1}
}

// FromPolar converts polar coordinates to a cartesian vector.
// The angle is in radians.
func FromPolar(radius, angle float64) Vector {
	return Vector{
		radius * math.Cos(angle),
		radius * math.Sin(angle),
	}
}

// FromF32 widens a float32 vector.
func FromF32(v f32.Vec2) Vector {
	return Vector{float64(v[0]), float64(v[1])}
}

// F32 narrows the vector to float32, e.g. for GPU buffers.
func (a Vector) F32() f32.Vec2 {
	return f32.Vec2{float32(a.X), float32(a.Y)}
}

// String formats the vector as "[ x, y ]" with three decimals.
func (a Vector) String() string {
	return fmt.Sprintf("[ %.3f, %.3f ]", a.X, a.Y)
}

// Equal reports whether both components are exactly equal.
// No tolerance is applied: -0 equals 0 and NaN equals nothing.
func (a Vector) Equal(b Vector) bool {
	return a.X == b.X && a.Y == b.Y
}

// Add returns the vector sum a + b.
func (a Vector) Add(b Vector) Vector {
	return Vector{a.X + b.X, a.Y + b.Y}
}

// AddScalar adds s to each component.
func (a Vector) AddScalar(s float64) Vector {
	return Vector{a.X + s, a.Y + s}
}

// Sub returns the vector difference a - b.
func (a Vector) Sub(b Vector) Vector {
	return Vector{a.X - b.X, a.Y - b.Y}
}

// SubScalar subtracts s from each component.
func (a Vector) SubScalar(s float64) Vector {
	return Vector{a.X - s, a.Y - s}
}

// Mul returns the component-wise product a * b.
func (a Vector) Mul(b Vector) Vector {
	return Vector{a.X * b.X, a.Y * b.Y}
}

// MulScalar returns the scalar product a * s.
func (a Vector) MulScalar(s float64) Vector {
	return Vector{a.X * s, a.Y * s}
}

// Div returns the component-wise quotient a / b.
// Zero components in b give IEEE-754 infinities or NaN.
func (a Vector) Div(b Vector) Vector {
	return Vector{a.X / b.X, a.Y / b.Y}
}

// DivScalar divides each component by s.
func (a Vector) DivScalar(s float64) Vector {
	return Vector{a.X / s, a.Y / s}
}

// Negate returns the negated vector.
func (a Vector) Negate() Vector {
	return Vector{-a.X, -a.Y}
}

// Min returns the component-wise minimum.
func (a Vector) Min(b Vector) Vector {
	return Vector{math.Min(a.X, b.X), math.Min(a.Y, b.Y)}
}

// Max returns the component-wise maximum.
func (a Vector) Max(b Vector) Vector {
	return Vector{math.Max(a.X, b.X), math.Max(a.Y, b.Y)}
}

// IsOrigin reports whether both components are exactly zero.
func (a Vector) IsOrigin() bool {
	return a.X == 0 && a.Y == 0
}

// Len returns the length of the vector.
func (a Vector) Len() float64 {
	return math.Sqrt(a.Len2())
}

// Len2 returns the squared length (faster, no sqrt).
func (a Vector) Len2() float64 {
	return a.Dot(a)
}

// Normalize returns the unit vector.
// The origin normalizes to itself instead of NaN.
func (a Vector) Normalize() Vector {
	if a.IsOrigin() {
		return Origin()
	}
	return a.DivScalar(a.Len())
}

// Trim scales the vector down to maxLen if it is longer than that.
func (a Vector) Trim(maxLen float64) Vector {
	return a.Normalize().MulScalar(math.Min(a.Len(), maxLen))
}

// Dot returns the dot product a · b.
func (a Vector) Dot(b Vector) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Cross returns the z component of the 3D cross product of a and b.
// The sign gives the orientation of b relative to a.
func (a Vector) Cross(b Vector) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Dist returns the distance between two points.
func (a Vector) Dist(b Vector) float64 {
	return math.Sqrt(a.Dist2(b))
}

// Dist2 returns the squared distance between two points.
func (a Vector) Dist2(b Vector) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Rotate rotates the vector counter-clockwise by angle (radians).
func (a Vector) Rotate(angle float64) Vector {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vector{
		c*a.X - s*a.Y,
		s*a.X + c*a.Y,
	}
}

// Perpendicular returns a perpendicular vector (90° counter-clockwise).
func (a Vector) Perpendicular() Vector {
	return Vector{-a.Y, a.X}
}

// AngleTo returns the bearing of a as seen from b, in (-π, π].
func (a Vector) AngleTo(b Vector) float64 {
	return math.Atan2(a.Y-b.Y, a.X-b.X)
}

// AngleBetween returns the unsigned angle between two directions, in [0, π].
// The result is NaN when either vector has zero length.
func (a Vector) AngleBetween(b Vector) float64 {
	return math.Acos(a.Dot(b) / (a.Len() * b.Len()))
}

// ToPolar returns the radius and angle of the vector.
//
// The angle lies in (0, 2π]: anything atan2 reports as <= 0 is shifted up by
// 2π, which means a vector on the positive X axis reports 2π rather than 0.
func (a Vector) ToPolar() (radius, angle float64) {
	radius = a.Len()
	angle = math.Atan2(a.Y, a.X)
	if angle <= 0 {
		angle += 2 * math.Pi
	}
	return radius, angle
}

// Lerp returns linear interpolation between a and b.
// step is not clamped; values outside [0, 1] extrapolate.
func (a Vector) Lerp(b Vector, step float64) Vector {
	return a.Add(b.Sub(a).MulScalar(step))
}
