// Package client runs one terminal session: its own game, input, rendering and
// the connection to the shared session hub.
package client

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/ghostbow/internal/asset"
	"github.com/tomz197/ghostbow/internal/config"
	"github.com/tomz197/ghostbow/internal/draw"
	"github.com/tomz197/ghostbow/internal/game"
	"github.com/tomz197/ghostbow/internal/input"
	lconfig "github.com/tomz197/ghostbow/internal/loop/config"
	"github.com/tomz197/ghostbow/internal/loop/server"
	"github.com/tomz197/ghostbow/internal/object"
)

// Client handles rendering and input for a single connection.
type Client struct {
	server       server.GameServer
	handle       *server.ClientHandle
	state        *ClientState
	game         *game.Game
	pack         asset.Pack
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	lastInput    time.Time
	termSizeFunc draw.TermSizeFunc
	settings     config.Settings
	logger       *log.Logger

	epoch     time.Time  // Zero point of the game clock
	fx        *rand.Rand // Particle randomness, separate from spawning
	particles []*object.Particle
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Settings     config.Settings // Zero value means config.Defaults()
	Assets       asset.Provider  // Default asset.Default()
	Logger       *log.Logger     // Default discards
}

// Compile-time checks that Client receives game notifications.
var (
	_ game.Observer    = (*Client)(nil)
	_ game.PopObserver = (*Client)(nil)
)

// NewClient creates a new client connected to the given server.
func NewClient(gs server.GameServer, r *bufio.Reader, w io.Writer, opts ClientOptions) (*Client, error) {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	settings := opts.Settings
	if settings.UnitsPerColumn <= 0 {
		settings = config.Defaults()
	}
	provider := opts.Assets
	if provider == nil {
		provider = asset.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	pack, err := provider.Load()
	if err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}

	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewCanvas(renderWidth, renderHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	c := &Client{
		server:       gs,
		state:        NewClientState(),
		pack:         pack,
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		lastInput:    time.Now(),
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		settings:     settings,
		logger:       logger,
		epoch:        time.Now(),
		fx:           rand.New(rand.NewSource(seed ^ 0x5eed)),
	}
	c.applyLogicalSize()
	c.state.tooSmall = tooSmall(termWidth, termHeight)

	c.game = game.New(game.Options{
		Sizes:    pack.GhostSizes,
		Viewport: c.viewport,
		Rand:     rand.New(rand.NewSource(seed)),
		Clock:    c.now,
		Observer: c,
	})

	c.handle = gs.RegisterClient(opts.Username)
	return c, nil
}

// Run starts the client loop. Blocks until the client disconnects or server stops.
func (c *Client) Run() error {
	c.logger.Info("session started", "user", c.handle.Username, "client", c.handle.ID)

	io.WriteString(c.writer, input.EnableMouse)
	draw.HideCursor(c.writer)
	draw.ClearScreen(c.writer)
	defer func() {
		draw.ShowCursor(c.writer)
		io.WriteString(c.writer, input.DisableMouse)
	}()

	lastTime := time.Now()

	for c.state.Running {
		frameStart := time.Now()
		c.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		c.processInput()
		c.processServerEvents()
		c.updateScreen()
		c.update()

		if err := c.drawFrame(); err != nil {
			c.server.UnregisterClient(c.handle.ID)
			return fmt.Errorf("draw frame: %w", err)
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < lconfig.ClientTargetFrameTime {
			time.Sleep(lconfig.ClientTargetFrameTime - elapsed)
		}
	}

	// Unregister from server
	c.server.UnregisterClient(c.handle.ID)
	c.logger.Info("session ended", "user", c.handle.Username, "client", c.handle.ID, "score", c.state.Score)

	draw.ClearScreen(c.writer)
	return nil
}

// now is the game clock: time since the client started.
func (c *Client) now() time.Duration {
	return time.Since(c.epoch)
}

// viewport maps the render area to world units: every column is UnitsPerColumn
// units wide and every half-block row UnitsPerColumn units tall.
func (c *Client) viewport() object.World {
	u := float64(c.settings.UnitsPerColumn)
	return object.World{
		Width:  float64(c.canvas.TerminalWidth()) * u,
		Height: float64(c.canvas.TerminalHeight()*2) * u,
		Scale:  1,
	}
}

func (c *Client) applyLogicalSize() {
	w := c.viewport()
	c.canvas.SetLogicalSize(w.Width, w.Height)
}

// processInput reads input and applies it to the game.
func (c *Client) processInput() {
	c.state.Input = input.ReadInput(c.inputStream)
	c.handleInput(c.state.Input)
}

func (c *Client) handleInput(in input.Input) {
	idle := time.Since(c.lastInput).Seconds()
	if in.Any() {
		c.lastInput = time.Now()
		c.state.isInactive = false
	} else if idle > lconfig.InactivityDisconnectUser {
		c.state.Running = false
	} else if idle > lconfig.InactivityWarnUser {
		c.state.isInactive = true
	}

	if in.Quit {
		c.state.Running = false
		return
	}
	if c.state.shuttingDown || c.state.tooSmall {
		return
	}

	if in.Pause || in.Escape {
		c.game.TogglePause()
	}

	switch c.game.Phase() {
	case game.PhaseIdle, game.PhaseGameOver:
		if in.Space || in.Enter || hasLeftClick(in.Clicks) {
			c.startGame()
		}
	case game.PhaseRunning:
		for _, click := range in.Clicks {
			if click.Button != input.ButtonLeft {
				continue
			}
			if x, y, ok := c.canvas.CellToLogical(click.Col, click.Row); ok {
				c.game.Fire(x, y)
			}
		}
	}
}

func hasLeftClick(clicks []input.Click) bool {
	for _, click := range clicks {
		if click.Button == input.ButtonLeft {
			return true
		}
	}
	return false
}

// startGame starts or restarts the run.
func (c *Client) startGame() {
	input.ResetKeyInput(c.inputStream)
	c.releaseParticles()
	c.game.StartNew()
	c.logger.Debug("run started", "client", c.handle.ID)
}

// processServerEvents handles events from the server.
func (c *Client) processServerEvents() {
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				// Server closed the channel
				c.state.Running = false
				return
			}
			switch event.Type {
			case server.EventPlayerJoined:
				c.state.toast = event.Username + " joined"
				c.state.toastTimer = toastSeconds
			case server.EventServerShutdown:
				c.state.shuttingDown = true
				c.state.shutdownTimer = lconfig.ShutdownDisplaySeconds
				if c.game.Phase() == game.PhaseRunning {
					c.game.TogglePause()
				}
			}
		default:
			return
		}
	}
}

const toastSeconds = 3.0

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	c.state.tooSmall = tooSmall(termWidth, termHeight)
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	sizeChanged := renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight()
	if sizeChanged || offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.writer)
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)

	if sizeChanged {
		c.applyLogicalSize()
		c.game.Resize()
	}
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(max(termWidth, 1), lconfig.MaxTermWidth)
	renderHeight = min(max(termHeight, 1), lconfig.MaxTermHeight)
	offsetCol = max((termWidth-renderWidth)/2, 0)
	offsetRow = max((termHeight-renderHeight)/2, 0)
	return
}

func tooSmall(termWidth, termHeight int) bool {
	return termWidth < lconfig.MinTermWidth || termHeight < lconfig.MinTermHeight
}

// update advances the game and the session timers by one frame.
func (c *Client) update() {
	dt := c.state.delta.Seconds()
	c.state.Hub = c.server.GetSnapshot()

	if c.state.toastTimer > 0 {
		c.state.toastTimer -= dt
		if c.state.toastTimer <= 0 {
			c.state.toast = ""
		}
	}

	if c.state.shuttingDown {
		c.state.shutdownTimer -= dt
		if c.state.shutdownTimer <= 0 {
			c.state.Running = false
		}
	}

	// A terminal below the minimum size freezes the run; the next tick after
	// it grows back is clamped like any other long frame.
	if !c.state.tooSmall {
		c.game.Tick(c.now())
	}

	c.state.View = c.currentView()
}

func (c *Client) currentView() View {
	switch {
	case c.state.shuttingDown:
		return ViewShutdown
	case c.state.tooSmall:
		return ViewTooSmall
	}
	switch c.game.Phase() {
	case game.PhaseRunning:
		return ViewPlaying
	case game.PhasePaused:
		return ViewPaused
	case game.PhaseGameOver:
		return ViewGameOver
	default:
		return ViewStart
	}
}

// ScoreChanged mirrors the score and reports it to the hub scoreboard.
func (c *Client) ScoreChanged(score int) {
	c.state.Score = score
	c.server.ReportScore(c.handle.ID, score)
}

// WaveChanged mirrors the wave number.
func (c *Client) WaveChanged(wave int) {
	c.state.Wave = wave
}

// GameOver stores the texts for the game over screen.
func (c *Client) GameOver(title, desc string) {
	c.state.GameTitle = title
	c.state.GameDesc = desc
	c.releaseParticles()
	c.logger.Debug("run over", "client", c.handle.ID, "score", c.state.Score, "wave", c.state.Wave)
}

// Frame advances the pop particles together with the simulation, so they
// freeze while the run is paused.
func (c *Client) Frame() {
	dt := min(c.state.delta.Seconds(), game.MaxStep)
	live := c.particles[:0]
	for _, p := range c.particles {
		if p.Step(dt) {
			p.Release()
			continue
		}
		live = append(live, p)
	}
	clear(c.particles[len(live):])
	c.particles = live
}

// GhostPopped bursts particles where a ghost was hit.
func (c *Client) GhostPopped(g object.Ghost) {
	scale := c.game.World().Scale
	c.particles = object.Burst(c.particles, c.fx, g.X, g.Y, lconfig.PopParticles, lconfig.PopSpeed*scale, lconfig.PopLifetime)
}

func (c *Client) releaseParticles() {
	for _, p := range c.particles {
		p.Release()
	}
	clear(c.particles)
	c.particles = c.particles[:0]
}
