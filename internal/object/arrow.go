package object

import "math"

// ArrowRadius is the collision radius of an arrow. It is not scaled.
const ArrowRadius = 6.0

// Arrow is a projectile fired from the bow.
type Arrow struct {
	X, Y   float64 // Position
	VX, VY float64 // Velocity (units/sec)
	Radius float64
	Alive  bool
}

// NewArrow creates a live arrow at (x,y) with the given velocity.
func NewArrow(x, y, vx, vy float64) *Arrow {
	return &Arrow{
		X:      x,
		Y:      y,
		VX:     vx,
		VY:     vy,
		Radius: ArrowRadius,
		Alive:  true,
	}
}

// Step moves the arrow along its velocity.
func (a *Arrow) Step(dt float64) {
	a.X += a.VX * dt
	a.Y += a.VY * dt
}

// Heading returns the direction of travel in radians, for drawing.
func (a *Arrow) Heading() float64 {
	return math.Atan2(a.VY, a.VX)
}

// MarkDestroyed marks the arrow for removal at the end of the step.
func (a *Arrow) MarkDestroyed() {
	a.Alive = false
}
