package game

import (
	"fmt"

	"github.com/tomz197/ghostbow/internal/object"
	"github.com/tomz197/ghostbow/internal/physics"
)

// Step advances the simulation by dt seconds: movement, hits, cleanup, wave
// advance and the loss check, in that order. It does nothing unless running.
func (g *Game) Step(dt float64) {
	if g.phase != PhaseRunning {
		return
	}

	if g.cooldown > 0 {
		g.cooldown -= dt
	}

	for _, a := range g.arrows {
		if a.Alive {
			a.Step(dt)
		}
	}
	for _, gh := range g.ghosts {
		if gh.Alive {
			gh.Step(dt)
		}
	}

	g.resolveHits()
	g.cleanup()

	if len(g.ghosts) == 0 {
		g.wave++
		g.observer.WaveChanged(g.wave)
		g.spawnWave()
	}

	if g.playerHit() {
		g.gameOver()
	}
}

// resolveHits destroys at most one ghost per arrow. Among the overlapping ghosts
// the one inserted first wins, as in a linear scan.
func (g *Game) resolveHits() {
	if len(g.arrows) == 0 || len(g.ghosts) == 0 {
		return
	}

	g.grid.Clear()
	for i, gh := range g.ghosts {
		if gh.Alive {
			g.grid.Insert(gh.X, gh.Y, i)
		}
	}

	for _, a := range g.arrows {
		if !a.Alive {
			continue
		}

		hit := -1
		g.grid.QueryAround(a.X, a.Y, func(i int) bool {
			if hit >= 0 && i > hit {
				return false
			}
			gh := g.ghosts[i]
			if gh.Alive && physics.CirclesOverlap(a.X, a.Y, a.Radius, gh.X, gh.Y, g.GhostRadius(gh.Tier)) {
				hit = i
			}
			return false
		})
		if hit < 0 {
			continue
		}

		a.MarkDestroyed()
		g.split(g.ghosts[hit])
	}
}

// split scores and removes a ghost, replacing it with two smaller children
// unless it is already the smallest tier. Children join the grid so later
// arrows in the same step can hit them.
func (g *Game) split(gh *object.Ghost) {
	g.score += Reward(gh.Tier)
	gh.MarkDestroyed()
	g.observer.ScoreChanged(g.score)
	if po, ok := g.observer.(PopObserver); ok {
		po.GhostPopped(*gh)
	}

	if !gh.CanSplit() {
		return
	}
	for _, child := range gh.Children() {
		child.X = g.world.ClampX(child.X, ChildEdgeMargin)
		g.ghosts = append(g.ghosts, child)
		g.grid.Insert(child.X, child.Y, len(g.ghosts)-1)
	}
}

// cleanup drops dead entities and those that left the play area.
func (g *Game) cleanup() {
	arrows := g.arrows[:0]
	for _, a := range g.arrows {
		if a.Alive && g.world.Contains(a.X, a.Y, ArrowMarginX, ArrowMarginY) {
			arrows = append(arrows, a)
		}
	}
	clear(g.arrows[len(arrows):])
	g.arrows = arrows

	ghosts := g.ghosts[:0]
	for _, gh := range g.ghosts {
		if gh.Alive && gh.Y < g.world.Height+GhostFloorMargin {
			ghosts = append(ghosts, gh)
		}
	}
	clear(g.ghosts[len(ghosts):])
	g.ghosts = ghosts
}

func (g *Game) playerHit() bool {
	p := g.player
	for _, gh := range g.ghosts {
		if gh.Alive && physics.CirclesOverlap(p.X, p.Y, p.Radius, gh.X, gh.Y, g.GhostRadius(gh.Tier)) {
			return true
		}
	}
	return false
}

func (g *Game) gameOver() {
	g.phase = PhaseGameOver
	g.observer.GameOver(GameOverTitle, fmt.Sprintf("Score: %d", g.score))
}

// Reward returns the score for destroying a ghost of the given tier.
func Reward(tier int) int {
	if tier < 0 || tier >= len(ghostRewards) {
		return DefaultReward
	}
	return ghostRewards[tier]
}
