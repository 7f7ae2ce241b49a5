package game

import (
	"math"

	"github.com/tomz197/ghostbow/internal/object"
)

// WaveSize returns how many ghosts spawn in the given wave.
func WaveSize(wave int) int {
	n := WaveBaseCount + int(math.Floor(float64(wave)*WaveCountPerWave))
	return min(max(n, WaveBaseCount), WaveMaxCount)
}

// spawnWave adds a batch of large ghosts above the top edge. Faster waves get
// a higher base speed.
func (g *Game) spawnWave() {
	w := g.world
	for n := WaveSize(g.wave); n > 0; n-- {
		x := (SpawnXMin + g.rng.Float64()*SpawnXSpan) * w.Width
		y := -(SpawnYMin + g.rng.Float64()*SpawnYJitter) * w.Scale
		speed := (GhostBaseSpeed + float64(g.wave)*GhostSpeedPerWave + g.rng.Float64()*GhostSpeedJitter) * w.Scale
		drift := (GhostDriftMin + g.rng.Float64()*GhostDriftJitter) * w.Scale
		phase := g.rng.Float64() * 2 * math.Pi

		g.ghosts = append(g.ghosts, object.NewGhost(x, y, object.TierLarge, speed, drift, phase))
	}
}
