package object

import (
	"math"
	"math/rand"
	"sync"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived cosmetic spark. It never takes part in collisions.
type Particle struct {
	X, Y        float64 // Position
	VX, VY      float64 // Velocity
	Lifetime    float64 // Seconds remaining
	MaxLifetime float64 // Initial lifetime (for fade calculation)
	Drag        float64 // Velocity decay (1.0 = no drag)
}

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, vx, vy, lifetime float64) *Particle {
	p := particlePool.Get().(*Particle)
	p.X = x
	p.Y = y
	p.VX = vx
	p.VY = vy
	p.Lifetime = lifetime
	p.MaxLifetime = lifetime
	p.Drag = 0.95
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the game.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// Burst appends count particles flying out of (x,y) in a circle to dst.
func Burst(dst []*Particle, rng *rand.Rand, x, y float64, count int, speed, lifetime float64) []*Particle {
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		// 50% to 150% speed, 50% to 100% lifetime
		spd := speed * (0.5 + rng.Float64())
		life := lifetime * (0.5 + rng.Float64()*0.5)
		dst = append(dst, NewParticle(x, y, math.Cos(angle)*spd, math.Sin(angle)*spd, life))
	}
	return dst
}

// Step moves the particle. Returns true once it has expired.
func (p *Particle) Step(dt float64) bool {
	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		return true
	}

	dragFactor := math.Pow(p.Drag, dt*60) // Normalize drag to ~60fps
	p.VX *= dragFactor
	p.VY *= dragFactor

	p.X += p.VX * dt
	p.Y += p.VY * dt
	return false
}

// Visible reports whether the particle is still bright enough to draw
// (faded particles below 25% lifetime are skipped).
func (p *Particle) Visible() bool {
	if p.MaxLifetime <= 0 {
		return true
	}
	return p.Lifetime/p.MaxLifetime >= 0.25
}
