// Package motion animates vectors with harmonica's damped springs and
// projectile integrator.
//
// The types here are small per-frame state machines: call Update once per
// frame from the goroutine that owns them.
package motion

import (
	"github.com/charmbracelet/harmonica"
	"github.com/karai17/crml/pkg/vector2"
	"github.com/karai17/crml/pkg/vector3"
)

// Spring2 pulls a 2D point toward a target with one spring per axis.
type Spring2 struct {
	Position vector2.Vector
	Velocity vector2.Vector
	spring   harmonica.Spring
}

// NewSpring2 creates a spring that starts at rest at start.
// frequency is the angular frequency; damping 1.0 is critically damped (no overshoot).
func NewSpring2(fps int, frequency, damping float64, start vector2.Vector) *Spring2 {
	return &Spring2{
		Position: start,
		spring:   harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
}

// Update advances one frame toward target and returns the new position.
func (s *Spring2) Update(target vector2.Vector) vector2.Vector {
	s.Position.X, s.Velocity.X = s.spring.Update(s.Position.X, s.Velocity.X, target.X)
	s.Position.Y, s.Velocity.Y = s.spring.Update(s.Position.Y, s.Velocity.Y, target.Y)
	return s.Position
}

// AtRest reports whether the spring is within eps of target and moving slower than eps.
func (s *Spring2) AtRest(target vector2.Vector, eps float64) bool {
	return s.Position.Dist2(target) <= eps*eps && s.Velocity.Len2() <= eps*eps
}

// Spring3 is Spring2 in three dimensions.
type Spring3 struct {
	Position vector3.Vector
	Velocity vector3.Vector
	spring   harmonica.Spring
}

// NewSpring3 creates a spring that starts at rest at start.
func NewSpring3(fps int, frequency, damping float64, start vector3.Vector) *Spring3 {
	return &Spring3{
		Position: start,
		spring:   harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
}

// Update advances one frame toward target and returns the new position.
func (s *Spring3) Update(target vector3.Vector) vector3.Vector {
	s.Position.X, s.Velocity.X = s.spring.Update(s.Position.X, s.Velocity.X, target.X)
	s.Position.Y, s.Velocity.Y = s.spring.Update(s.Position.Y, s.Velocity.Y, target.Y)
	s.Position.Z, s.Velocity.Z = s.spring.Update(s.Position.Z, s.Velocity.Z, target.Z)
	return s.Position
}

// AtRest reports whether the spring is within eps of target and moving slower than eps.
func (s *Spring3) AtRest(target vector3.Vector, eps float64) bool {
	return s.Position.Dist2(target) <= eps*eps && s.Velocity.Len2() <= eps*eps
}
