package client

import (
	"time"

	"github.com/tomz197/ghostbow/internal/input"
	"github.com/tomz197/ghostbow/internal/loop/server"
)

// View is what the client currently shows on top of the scene.
type View int

const (
	ViewStart    View = iota // Title screen, no run yet
	ViewPlaying              // Run in progress
	ViewPaused               // Run paused
	ViewGameOver             // Run lost, show restart prompt
	ViewShutdown             // Server is shutting down
	ViewTooSmall             // Terminal below the minimum size
)

// ClientState holds per-session presentation state. The simulation itself
// lives in the client's game.Game.
type ClientState struct {
	Input   input.Input
	View    View
	Running bool // Client loop running

	// Mirrored from observer notifications
	Score     int
	Wave      int
	GameTitle string // Game over title
	GameDesc  string // Game over description

	Hub *server.Snapshot // Latest hub snapshot

	toast      string  // Transient notice, e.g. a player joining
	toastTimer float64 // Seconds left to show the toast

	delta         time.Duration // Frame delta time
	shutdownTimer float64       // Countdown before auto-disconnect on shutdown
	shuttingDown  bool
	tooSmall      bool
	isInactive    bool // Whether the client is in inactive warning state
	prevView      View
	wasInactive   bool
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		View:     ViewStart,
		Wave:     1,
		Running:  true,
		Hub:      &server.Snapshot{},
		prevView: ViewStart,
	}
}
