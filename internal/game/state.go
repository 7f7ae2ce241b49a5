package game

import "github.com/tomz197/ghostbow/internal/object"

// Phase is the run lifecycle state.
type Phase int

const (
	PhaseIdle     Phase = iota // Before the first run
	PhaseRunning               // Simulating
	PhasePaused                // Running, but ticks are ignored
	PhaseGameOver              // A ghost reached the player; only StartNew leaves it
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Observer receives the changes a presentation layer has to mirror.
// All calls happen synchronously on the goroutine driving the Game.
type Observer interface {
	ScoreChanged(score int)
	WaveChanged(wave int)
	GameOver(title, desc string)
	// Frame is called after every tick that leaves the game running.
	Frame()
}

// PopObserver is optionally implemented by an Observer that wants to know
// about every ghost that was hit.
type PopObserver interface {
	GhostPopped(g object.Ghost)
}

// NopObserver ignores every notification. Embed it to implement only part of Observer.
type NopObserver struct{}

func (NopObserver) ScoreChanged(int) {}
func (NopObserver) WaveChanged(int) {}
func (NopObserver) GameOver(string, string) {}
func (NopObserver) Frame() {}

// Snapshot is a copy of the simulation state for drawing.
type Snapshot struct {
	World    object.World
	Player   object.Player
	Arrows   []object.Arrow
	Ghosts   []object.Ghost
	Score    int
	Wave     int
	Phase    Phase
	Cooldown float64
}

// Running reports whether a run is in progress (paused or not).
func (s Snapshot) Running() bool {
	return s.Phase == PhaseRunning || s.Phase == PhasePaused
}

// Paused reports whether the run is paused.
func (s Snapshot) Paused() bool {
	return s.Phase == PhasePaused
}
