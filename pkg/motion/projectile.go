package motion

import (
	"github.com/charmbracelet/harmonica"
	"github.com/karai17/crml/pkg/vector3"
)

// Gravity is Earth gravity in a Y-up coordinate system.
var Gravity = fromVector(harmonica.Gravity)

// Projectile integrates a point under constant acceleration.
type Projectile struct {
	p *harmonica.Projectile
}

// NewProjectile creates a projectile stepping at fps frames per second.
func NewProjectile(fps int, position, velocity, acceleration vector3.Vector) *Projectile {
	return &Projectile{
		p: harmonica.NewProjectile(
			harmonica.FPS(fps),
			harmonica.Point{X: position.X, Y: position.Y, Z: position.Z},
			toVector(velocity),
			toVector(acceleration),
		),
	}
}

// Update advances one frame and returns the new position.
func (p *Projectile) Update() vector3.Vector {
	pt := p.p.Update()
	return vector3.New(pt.X, pt.Y, pt.Z)
}

func (p *Projectile) Position() vector3.Vector {
	pt := p.p.Position()
	return vector3.New(pt.X, pt.Y, pt.Z)
}

func (p *Projectile) Velocity() vector3.Vector {
	return fromVector(p.p.Velocity())
}

func (p *Projectile) Acceleration() vector3.Vector {
	return fromVector(p.p.Acceleration())
}

func toVector(v vector3.Vector) harmonica.Vector {
	return harmonica.Vector{X: v.X, Y: v.Y, Z: v.Z}
}

func fromVector(v harmonica.Vector) vector3.Vector {
	return vector3.New(v.X, v.Y, v.Z)
}
