// Package vector3 provides an immutable 3 component vector.
package vector3

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f32"
)

// Vector is a 3D vector.
type Vector struct {
	X, Y, Z float64
}

// New creates a new Vector.
func New(x, y, z float64) Vector {
	return Vector{x, y, z}
}

// Origin returns the zero vector.
func Origin() Vector {
	return Vector{}
}

// UnitX returns (1, 0, 0).
func UnitX() Vector {
	return Vector{1, 0, 0}
}

// UnitY returns (0, 1, 0).
func UnitY() Vector {
	return Vector{0, 1, 0}
}

// UnitZ returns (0, 0, 1).
func UnitZ() Vector {
	return Vector{0, 0, 1}
}

// FromF32 widens a float32 vector.
func FromF32(f f32.Vec3) Vector {
	return Vector{float64(f[0]), float64(f[1]), float64(f[2])}
}

// F32 narrows the vector to float32.
func (v Vector) F32() f32.Vec3 {
	return f32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// String formats the vector as "[ x, y, z ]" with three decimals.
func (v Vector) String() string {
	return fmt.Sprintf("[ %.3f, %.3f, %.3f ]", v.X, v.Y, v.Z)
}

// Equal reports exact component equality.
func (v Vector) Equal(b Vector) bool {
	return v.X == b.X && v.Y == b.Y && v.Z == b.Z
}

// Add returns the vector sum.
func (v Vector) Add(b Vector) Vector {
	return Vector{v.X + b.X, v.Y + b.Y, v.Z + b.Z}
}

// AddScalar adds s to every component.
func (v Vector) AddScalar(s float64) Vector {
	return Vector{v.X + s, v.Y + s, v.Z + s}
}

// Sub returns the vector difference.
func (v Vector) Sub(b Vector) Vector {
	return Vector{v.X - b.X, v.Y - b.Y, v.Z - b.Z}
}

// SubScalar subtracts s from every component.
func (v Vector) SubScalar(s float64) Vector {
	return Vector{v.X - s, v.Y - s, v.Z - s}
}

// Mul returns the component-wise product.
func (v Vector) Mul(b Vector) Vector {
	return Vector{v.X * b.X, v.Y * b.Y, v.Z * b.Z}
}

// MulScalar returns the scalar product.
func (v Vector) MulScalar(s float64) Vector {
	return Vector{v.X * s, v.Y * s, v.Z * s}
}

// Div returns the component-wise quotient.
func (v Vector) Div(b Vector) Vector {
	return Vector{v.X / b.X, v.Y / b.Y, v.Z / b.Z}
}

// DivScalar divides every component by s.
func (v Vector) DivScalar(s float64) Vector {
	return Vector{v.X / s, v.Y / s, v.Z / s}
}

// Negate returns the vector pointing the opposite way.
func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// Min returns the component-wise minimum.
func (v Vector) Min(b Vector) Vector {
	return Vector{math.Min(v.X, b.X), math.Min(v.Y, b.Y), math.Min(v.Z, b.Z)}
}

// Max returns the component-wise maximum.
func (v Vector) Max(b Vector) Vector {
	return Vector{math.Max(v.X, b.X), math.Max(v.Y, b.Y), math.Max(v.Z, b.Z)}
}

// IsOrigin reports whether every component is exactly zero.
func (v Vector) IsOrigin() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Len returns the length.
func (v Vector) Len() float64 {
	return math.Sqrt(v.Len2())
}

// Len2 returns the squared length.
func (v Vector) Len2() float64 {
	return v.Dot(v)
}

// Normalize returns the unit vector, or the origin for the origin.
func (v Vector) Normalize() Vector {
	if v.IsOrigin() {
		return Origin()
	}
	return v.DivScalar(v.Len())
}

// Trim caps the length of the vector at maxLen.
func (v Vector) Trim(maxLen float64) Vector {
	return v.Normalize().MulScalar(math.Min(v.Len(), maxLen))
}

// Dot returns the dot product.
func (v Vector) Dot(b Vector) float64 {
	return v.X*b.X + v.Y*b.Y + v.Z*b.Z
}

// Cross returns the cross product v × b, orthogonal to both inputs
// (right-hand rule).
func (v Vector) Cross(b Vector) Vector {
	return Vector{
		v.Y*b.Z - v.Z*b.Y,
		v.Z*b.X - v.X*b.Z,
		v.X*b.Y - v.Y*b.X,
	}
}

// Dist returns the distance between two points.
func (v Vector) Dist(b Vector) float64 {
	return math.Sqrt(v.Dist2(b))
}

// Dist2 returns the squared distance between two points.
func (v Vector) Dist2(b Vector) float64 {
	dx := v.X - b.X
	dy := v.Y - b.Y
	dz := v.Z - b.Z
	return dx*dx + dy*dy + dz*dz
}

// Rotate rotates the vector by angle (radians) about axis using Rodrigues'
// rotation formula. The axis does not need to be unit length.
func (v Vector) Rotate(angle float64, axis Vector) Vector {
	u := axis.Normalize()
	c, s := math.Cos(angle), math.Sin(angle)
	t := 1 - c

	m1 := Vector{c + u.X*u.X*t, u.X*u.Y*t - u.Z*s, u.X*u.Z*t + u.Y*s}
	m2 := Vector{u.Y*u.X*t + u.Z*s, c + u.Y*u.Y*t, u.Y*u.Z*t - u.X*s}
	m3 := Vector{u.Z*u.X*t - u.Y*s, u.Z*u.Y*t + u.X*s, c + u.Z*u.Z*t}

	return Vector{v.Dot(m1), v.Dot(m2), v.Dot(m3)}
}

// Perpendicular returns (-y, x, 0), the XY projection turned 90°
// counter-clockwise. It is the origin for vectors on the Z axis.
func (v Vector) Perpendicular() Vector {
	return Vector{-v.Y, v.X, 0}
}

// Lerp returns linear interpolation between v and b. step is not clamped.
func (v Vector) Lerp(b Vector, step float64) Vector {
	return v.Add(b.Sub(v).MulScalar(step))
}
