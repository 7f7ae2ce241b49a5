// Package config centralizes the terminal presentation parameters.
package config

import "time"

// Max render resolution in terminal cells. Larger terminals get a centered,
// bordered play area.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 60
)

// Smallest terminal the game is drawn in; below this a resize hint is shown.
const (
	MinTermWidth  = 40
	MinTermHeight = 16
)

// Scene
const (
	DefenseBand = 150.0 // Height of the tinted band above the bottom edge, scaled
	StarCount   = 40
	BowWidth    = 86.0  // Scaled
	BowHeight   = 140.0 // Scaled
	ArrowLength = 72.0  // Scaled
	ArrowWidth  = 24.0  // Scaled
)

// Pop particles
const (
	PopParticles = 10
	PopSpeed     = 90.0 // Units/sec, scaled
	PopLifetime  = 0.5  // Seconds
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)

// Server scoreboard refresh rate
const (
	ServerTickRate = 10
	ServerTickTime = time.Second / ServerTickRate
)

// Scoreboard
const (
	TopScoresShown    = 3
	MaxUsernameLength = 16 // Maximum display length for player usernames
)
