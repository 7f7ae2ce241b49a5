// Package object holds the game entities and the world they move in.
package object

import "math"

// World is the play area in device pixels.
type World struct {
	Width  float64
	Height float64
	Scale  float64 // Device pixel ratio; sizes and speeds are multiplied by it
}

// Unit returns a world with the given size and a scale of 1.
func Unit(width, height float64) World {
	return World{Width: width, Height: height, Scale: 1}
}

// ClampX clamps x into [margin, Width-margin].
func (w World) ClampX(x, margin float64) float64 {
	return Clamp(x, margin, w.Width-margin)
}

// Contains reports whether (x,y) lies inside the world grown by the given margins.
func (w World) Contains(x, y, marginX, marginY float64) bool {
	return x > -marginX && x < w.Width+marginX && y > -marginY && y < w.Height+marginY
}

// Player is the fixed bow anchor at the bottom of the screen.
type Player struct {
	X, Y   float64
	Radius float64
}

// Clamp limits v to [lo, hi]. When lo > hi the lower bound wins.
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
