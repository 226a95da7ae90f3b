package motion

import (
	"github.com/charmbracelet/harmonica"
	"github.com/karai17/crml/pkg/vector2"
	"github.com/karai17/crml/pkg/vector3"
)

// Spin tracks an angle and angular velocity with spring decay.
type Spin struct {
	Angle     float64 // radians
	Velocity  float64 // radians per frame
	velSpring harmonica.Spring
	velAccel  float64 // internal spring velocity (for animating Velocity toward 0)
	fps       int
}

// NewSpin creates a spin with a harmonica spring for smooth velocity decay.
func NewSpin(fps int) Spin {
	return Spin{
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
		fps:       fps,
	}
}

// Impulse adds dv to the angular velocity.
func (s *Spin) Impulse(dv float64) {
	s.Velocity += dv
}

// Update applies velocity to the angle and, when damping, decays velocity toward 0.
func (s *Spin) Update(damping bool) {
	s.Angle += s.Velocity
	if damping {
		s.Velocity, s.velAccel = s.velSpring.Update(s.Velocity, s.velAccel, 0)
	}
}

// Reset stops the spin and returns the angle to 0.
func (s *Spin) Reset() {
	*s = NewSpin(s.fps)
}

// Rotate2 rotates v by the current angle.
func (s Spin) Rotate2(v vector2.Vector) vector2.Vector {
	return v.Rotate(s.Angle)
}

// Rotate3 rotates v by the current angle about axis.
func (s Spin) Rotate3(v, axis vector3.Vector) vector3.Vector {
	return v.Rotate(s.Angle, axis)
}
