// internal/physics/body.go
package physics

import "golang.org/x/image/math/f32"

// Body is the mass the wind pushes around. Velocity is integrated from forces with
// a unit time step; there is no position, callers use Velocity as an offset.
type Body struct {
	Velocity     f32.Vec2
	Acceleration f32.Vec2
	mass         float32
}

// NewBody creates a body at rest. Mass must be positive.
func NewBody(mass float32) *Body {
	if mass <= 0 {
		panic("physics: mass must be positive")
	}
	return &Body{mass: mass}
}

// Mass returns the mass the body was created with.
func (b *Body) Mass() float32 {
	return b.mass
}

// ApplyForce adds f/mass to the acceleration. Forces accumulate until the
// next Advance.
func (b *Body) ApplyForce(f f32.Vec2) {
	b.Acceleration[0] += f[0] / b.mass
	b.Acceleration[1] += f[1] / b.mass
}

// Advance integrates the acceleration into the velocity and clears it.
func (b *Body) Advance() {
	b.Velocity[0] += b.Acceleration[0]
	b.Velocity[1] += b.Acceleration[1]
	b.Acceleration = f32.Vec2{}
}
