package object

import "math"

// Ghost tiers, largest first. Splitting moves a ghost one tier down the list.
const (
	TierLarge   = 0
	TierMedium  = 1
	TierSmall   = 2
	TierTiny    = 3
	MaxTier     = TierTiny
	TierCount   = MaxTier + 1
	SwayRate    = 1.6 // Radians per second added to the sway phase
	splitOffset = 10.0
)

// Ghost is a falling target that sways side to side.
type Ghost struct {
	X, Y  float64 // Position (center)
	Tier  int     // Size tier, 0 (largest) .. MaxTier (smallest)
	Speed float64 // Downward speed (units/sec)
	Drift float64 // Sway amplitude (units/sec)
	Phase float64 // Sway phase (radians)
	Alive bool
}

// NewGhost creates a live ghost. Tier is clamped into [0, MaxTier].
func NewGhost(x, y float64, tier int, speed, drift, phase float64) *Ghost {
	if tier < 0 {
		tier = 0
	} else if tier > MaxTier {
		tier = MaxTier
	}
	return &Ghost{
		X:     x,
		Y:     y,
		Tier:  tier,
		Speed: speed,
		Drift: drift,
		Phase: phase,
		Alive: true,
	}
}

// Step makes the ghost fall and sway. Phase is never wrapped.
func (g *Ghost) Step(dt float64) {
	g.Y += g.Speed * dt
	g.Phase += dt * SwayRate
	g.X += math.Sin(g.Phase) * g.Drift * dt
}

// CanSplit reports whether destroying the ghost produces children.
func (g *Ghost) CanSplit() bool {
	return g.Tier < MaxTier
}

// Children returns the two ghosts produced by splitting g, one tier smaller, faster
// and with wider sway. Their phases are offset in opposite directions so they drift
// apart. The caller is responsible for clamping them into the world and for
// checking CanSplit first.
func (g *Ghost) Children() [2]*Ghost {
	next := g.Tier + 1
	speed := g.Speed * 1.06
	drift := g.Drift * 1.08
	return [2]*Ghost{
		NewGhost(g.X-splitOffset, g.Y, next, speed, drift, g.Phase+1.2),
		NewGhost(g.X+splitOffset, g.Y, next, speed, drift, g.Phase-1.2),
	}
}

// MarkDestroyed marks the ghost for removal at the end of the step.
func (g *Ghost) MarkDestroyed() {
	g.Alive = false
}
