// Package game is the ghost shooting simulation: entity physics, hit resolution,
// splitting, waves and the run state machine.
//
// A Game is not safe for concurrent use. The caller owns the scheduling: it calls
// Tick with a monotonically increasing timestamp once per frame, forwards fire and
// pause commands, and reads a Snapshot to draw.
package game

import (
	"math/rand"
	"time"

	"github.com/tomz197/ghostbow/internal/asset"
	"github.com/tomz197/ghostbow/internal/object"
	"github.com/tomz197/ghostbow/internal/physics"
)

// Rand is the random source used for spawning.
type Rand interface {
	Float64() float64
}

// ViewportFunc returns the current play area.
type ViewportFunc func() object.World

// Clock returns a monotonic timestamp, used to restart frame timing.
type Clock func() time.Duration

// Options configures a Game. Zero fields get defaults.
type Options struct {
	Sizes    asset.Sizes  // Ghost display sizes by tier (default asset.DefaultSizes)
	Viewport ViewportFunc // Play area source (default 800x600 at scale 1)
	Rand     Rand         // Spawn randomness (default time seeded)
	Clock    Clock        // Tick time reference (default time since New)
	Observer Observer     // Change notifications (default NopObserver)
}

// Game owns all entities and the run state.
type Game struct {
	sizes    asset.Sizes
	viewport ViewportFunc
	rng      Rand
	clock    Clock
	observer Observer

	world  object.World
	player object.Player
	arrows []*object.Arrow
	ghosts []*object.Ghost

	score    int
	wave     int
	phase    Phase
	cooldown float64
	lastTick time.Duration

	// Broad phase for arrow/ghost hits, rebuilt every step
	grid *physics.SpatialGrid
}

// New creates an idle game and sizes it from the viewport.
func New(opts Options) *Game {
	g := &Game{
		sizes:    opts.Sizes,
		viewport: opts.Viewport,
		rng:      opts.Rand,
		clock:    opts.Clock,
		observer: opts.Observer,
		wave:     1,
		phase:    PhaseIdle,
		grid:     physics.NewSpatialGrid(1, 1, 1),
	}
	if len(g.sizes) == 0 {
		g.sizes = asset.DefaultSizes
	}
	if g.viewport == nil {
		g.viewport = func() object.World { return object.Unit(800, 600) }
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.clock == nil {
		start := time.Now()
		g.clock = func() time.Duration { return time.Since(start) }
	}
	if g.observer == nil {
		g.observer = NopObserver{}
	}

	g.Resize()
	return g
}

// Resize recomputes the world from the viewport and moves the player anchor to
// the bottom center.
func (g *Game) Resize() {
	w := g.viewport()
	if w.Width < 1 {
		w.Width = 1
	}
	if w.Height < 1 {
		w.Height = 1
	}
	if w.Scale <= 0 {
		w.Scale = 1
	}
	g.world = w

	g.player = object.Player{
		X:      w.Width * 0.5,
		Y:      w.Height - PlayerBottomOffset*w.Scale,
		Radius: PlayerRadius * w.Scale,
	}

	// Widest possible hit distance: largest ghost radius plus an arrow radius.
	reach := g.sizes.Max(object.TierCount)*0.5*w.Scale + object.ArrowRadius
	g.grid.Reset(w.Width, w.Height, reach)
}

// StartNew resets score, wave and entities, spawns the first wave and starts running.
func (g *Game) StartNew() {
	g.phase = PhaseRunning
	g.score = 0
	g.wave = 1
	g.arrows = nil
	g.ghosts = nil
	g.cooldown = 0
	g.spawnWave()

	g.observer.ScoreChanged(g.score)
	g.observer.WaveChanged(g.wave)

	g.lastTick = g.clock()
}

// Fire shoots an arrow from the player anchor toward (x,y) in world coordinates.
// Ignored unless the game is running, unpaused and off cooldown.
func (g *Game) Fire(x, y float64) {
	if g.phase != PhaseRunning || g.cooldown > 0 {
		return
	}

	dx, dy := physics.Direction(g.player.X, g.player.Y, x, y)
	speed := ArrowSpeed * g.world.Scale
	g.arrows = append(g.arrows, object.NewArrow(g.player.X, g.player.Y, dx*speed, dy*speed))
	g.cooldown = FireCooldown
}

// TogglePause pauses or resumes a run in progress. Resuming restarts frame
// timing so the pause does not count as elapsed time.
func (g *Game) TogglePause() {
	switch g.phase {
	case PhaseRunning:
		g.phase = PhasePaused
	case PhasePaused:
		g.phase = PhaseRunning
		g.lastTick = g.clock()
	}
}

// Tick advances the simulation by the time elapsed since the previous tick,
// capped at MaxStep. It returns true if the game is still running and the caller
// should schedule another tick; in that case the observer gets a Frame call.
func (g *Game) Tick(now time.Duration) bool {
	if g.phase != PhaseRunning {
		return false
	}

	dt := object.Clamp((now - g.lastTick).Seconds(), 0, MaxStep)
	g.lastTick = now

	g.Step(dt)
	if g.phase != PhaseRunning {
		return false
	}

	g.observer.Frame()
	return true
}

// Phase returns the current lifecycle state.
func (g *Game) Phase() Phase {
	return g.phase
}

// Running reports whether a run is in progress (paused or not).
func (g *Game) Running() bool {
	return g.phase == PhaseRunning || g.phase == PhasePaused
}

// Paused reports whether the run is paused.
func (g *Game) Paused() bool {
	return g.phase == PhasePaused
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Wave returns the current wave number.
func (g *Game) Wave() int {
	return g.wave
}

// World returns the current play area.
func (g *Game) World() object.World {
	return g.world
}

// Player returns the bow anchor.
func (g *Game) Player() object.Player {
	return g.player
}

// GhostRadius returns the collision radius of a ghost of the given tier.
func (g *Game) GhostRadius(tier int) float64 {
	return g.sizes.At(tier) * 0.5 * g.world.Scale
}

// Snapshot copies the live state for drawing.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		World:    g.world,
		Player:   g.player,
		Arrows:   make([]object.Arrow, 0, len(g.arrows)),
		Ghosts:   make([]object.Ghost, 0, len(g.ghosts)),
		Score:    g.score,
		Wave:     g.wave,
		Phase:    g.phase,
		Cooldown: g.cooldown,
	}
	for _, a := range g.arrows {
		if a.Alive {
			s.Arrows = append(s.Arrows, *a)
		}
	}
	for _, gh := range g.ghosts {
		if gh.Alive {
			s.Ghosts = append(s.Ghosts, *gh)
		}
	}
	return s
}
