package game

// Gameplay tuning. Lengths and speeds marked "scaled" are multiplied by the
// world scale; everything else is in raw world units.

// Firing
const (
	FireCooldown = 0.28  // Seconds between shots
	ArrowSpeed   = 900.0 // Units/sec, scaled
)

// Frame timing
const (
	MaxStep = 0.033 // Longest simulated step in seconds
)

// Player anchor
const (
	PlayerRadius       = 44.0 // Scaled
	PlayerBottomOffset = 80.0 // Distance of the anchor above the bottom edge, scaled
)

// Culling margins around the world
const (
	ArrowMarginX     = 50.0
	ArrowMarginY     = 80.0
	GhostFloorMargin = 120.0 // Ghosts this far below the bottom edge are dropped
	ChildEdgeMargin  = 20.0  // Split children are clamped this far inside the side edges
)

// Waves
const (
	WaveBaseCount    = 3
	WaveCountPerWave = 0.6
	WaveMaxCount     = 7

	GhostBaseSpeed    = 60.0 // Scaled
	GhostSpeedPerWave = 10.0 // Scaled
	GhostSpeedJitter  = 35.0 // Scaled
	GhostDriftMin     = 18.0 // Scaled
	GhostDriftJitter  = 40.0 // Scaled

	SpawnXMin    = 0.15  // Fraction of world width
	SpawnXSpan   = 0.7   // Fraction of world width
	SpawnYMin    = 40.0  // Above the top edge, scaled
	SpawnYJitter = 140.0 // Scaled
)

// Scoring: smaller ghosts are worth more.
var ghostRewards = [...]int{10, 20, 40, 80}

// DefaultReward is awarded for a tier missing from the reward table.
const DefaultReward = 10

// Game over texts pushed to the observer.
const (
	GameOverTitle = "Game Over"
)
