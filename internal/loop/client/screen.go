package client

import (
	"fmt"
	"math"
	"time"

	"github.com/tomz197/ghostbow/internal/draw"
	"github.com/tomz197/ghostbow/internal/game"
	"github.com/tomz197/ghostbow/internal/loop/config"
)

// Title art (figlet "small" font).
var (
	titleArt = []string{
		`  ___  _  _   ___   ___  _____  ___   ___  __      __`,
		` / __|| || | / _ \ / __||_   _|| _ ) / _ \ \ \    / /`,
		`| (_ || __ || (_) |\__ \  | |  | _ \| (_) | \ \/\/ / `,
		` \___||_||_| \___/ |___/  |_|  |___/ \___/   \_/\_/  `,
	}
	gameOverArt = []string{
		`   ___   _   __  __ ___    _____   _____ ___  `,
		`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
		` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
		`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
	}
)

// ringSegments is the number of edges of the player circle outline.
const ringSegments = 32

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	// On view or inactivity transitions, do a full terminal clear
	// so UI elements from the previous view don't persist on screen.
	viewChanged := c.state.View != c.state.prevView
	inactiveChanged := c.state.isInactive != c.state.wasInactive
	if viewChanged || inactiveChanged {
		draw.ClearScreen(c.chunkWriter)
		c.canvas.ForceRedraw()
		c.state.prevView = c.state.View
		c.state.wasInactive = c.state.isInactive
	}

	c.canvas.Clear()
	if c.state.View != ViewTooSmall {
		c.drawScene(c.game.Snapshot())
	}

	// Render canvas to terminal
	c.canvas.Render(c.chunkWriter)

	// Draw border when terminal exceeds max render resolution
	c.canvas.RenderBorder(c.chunkWriter)

	c.drawUI()

	return c.chunkWriter.Flush()
}

// drawScene paints background, bow, arrows, ghosts and particles onto the canvas.
func (c *Client) drawScene(snap game.Snapshot) {
	w, h, scale := snap.World.Width, snap.World.Height, snap.World.Scale
	cv := c.canvas

	// Faint stars in the upper half
	for i := 0; i < config.StarCount; i++ {
		x := math.Mod(float64(i*97), w)
		y := math.Mod(float64(i*211), h) * 0.55
		cv.SetFloat(x, y, draw.ColorStar)
	}

	// Defense band with its top edge
	bandTop := h - config.DefenseBand*scale
	cv.FillRect(0, bandTop, w, h, draw.ColorBand)
	cv.DrawLine(draw.Point{X: 0, Y: bandTop}, draw.Point{X: w, Y: bandTop}, draw.ColorGhostOutline)

	// Player circle and bow
	p := snap.Player
	ring := cv.BorrowPoints(ringSegments)
	for i := range ring {
		a := 2 * math.Pi * float64(i) / ringSegments
		ring[i] = draw.Point{X: p.X + math.Cos(a)*p.Radius, Y: p.Y + math.Sin(a)*p.Radius}
	}
	cv.DrawPolygon(ring, draw.ColorPlayerRing, false)
	cv.DrawSprite(c.pack.Bow, p.X, p.Y, config.BowWidth*scale, config.BowHeight*scale, 0, draw.BowTones)

	for i := range snap.Arrows {
		a := &snap.Arrows[i]
		cv.DrawSprite(c.pack.Arrow, a.X, a.Y, config.ArrowLength*scale, config.ArrowWidth*scale, a.Heading(), draw.ArrowTones)
	}

	for _, g := range snap.Ghosts {
		size := c.pack.GhostSizes.At(g.Tier) * scale
		cv.DrawSprite(c.pack.Ghost, g.X, g.Y, size, size, 0, draw.GhostTones)
	}

	for _, pt := range c.particles {
		if pt.Visible() {
			cv.SetFloat(pt.X, pt.Y, draw.ColorParticle)
		}
	}
}

// drawUI draws the text overlay for the current view.
func (c *Client) drawUI() {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	switch c.state.View {
	case ViewShutdown:
		c.drawShutdownScreen(centerX, centerY)
		return
	case ViewTooSmall:
		c.drawTooSmallScreen(centerX, centerY)
		return
	}

	if c.state.isInactive {
		c.drawInactivityScreen(centerX, centerY)
		return
	}

	c.drawHUD(termWidth, termHeight)

	switch c.state.View {
	case ViewStart:
		c.drawStartScreen(centerX, centerY)
	case ViewPaused:
		c.drawPausedScreen(centerX, centerY)
	case ViewGameOver:
		c.drawGameOverScreen(centerX, centerY)
	}
}

// text writes s at a 1-based canvas position and marks the cells so the canvas
// paints over them on the next frame.
func (c *Client) text(col, row int, fg draw.Color, s string) {
	n := len([]rune(s))
	if row < 1 || row > c.canvas.TerminalHeight() || col < 1 {
		return
	}
	if col+n-1 > c.canvas.TerminalWidth() {
		return
	}
	c.chunkWriter.WriteStyledAt(col, row, draw.TextStyle(fg), s)
	c.canvas.MarkTextDirty(col, row, n)
}

// centered writes s centered on column centerX.
func (c *Client) centered(centerX, row int, fg draw.Color, s string) {
	c.text(centerX-len([]rune(s))/2, row, fg, s)
}

// art writes a block of lines centered on centerX, or the fallback text when
// the terminal is too narrow for it. Returns the number of rows used.
func (c *Client) art(centerX, row int, lines []string, fallback string) int {
	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}
	if width+2 > c.canvas.TerminalWidth() {
		c.centered(centerX, row, draw.ColorGhost, fallback)
		return 1
	}
	for i, line := range lines {
		c.text(centerX-width/2, row+i, draw.ColorGhostOutline, line)
	}
	return len(lines)
}

// blink reports whether blinking prompts are visible this frame.
func blink() bool {
	return time.Now().UnixMilli()/600%2 == 0
}

// drawHUD draws score, wave, pause label, scoreboard and player count.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (c *Client) drawHUD(termWidth, termHeight int) {
	c.text(2, 1, draw.ColorGhost, fmt.Sprintf("Score: %-8d", c.state.Score))
	c.text(2, 2, draw.ColorGhost, fmt.Sprintf("Wave: %-4d", c.state.Wave))

	if c.state.View == ViewPlaying || c.state.View == ViewPaused {
		label := "[P] Pause "
		if c.state.View == ViewPaused {
			label = "[P] Resume"
		}
		c.text(termWidth-len(label), 1, draw.ColorBow, label)
	}

	hub := c.state.Hub
	for i, e := range hub.TopScores {
		line := fmt.Sprintf("%d. %-*s %6d", i+1, config.MaxUsernameLength, e.Username, e.Score)
		c.text(termWidth-len([]rune(line)), 3+i, draw.ColorStar, line)
	}

	players := fmt.Sprintf("Players: %-4d", hub.Players)
	c.text(termWidth-len(players), termHeight, draw.ColorStar, players)

	if c.state.toast != "" {
		c.centered(termWidth/2, termHeight-1, draw.ColorBow, c.state.toast)
	}
}

// drawStartScreen draws the title screen.
func (c *Client) drawStartScreen(centerX, centerY int) {
	row := centerY - 6
	row += c.art(centerX, row, titleArt, "GHOSTBOW") + 1

	c.centered(centerX, row, draw.ColorStar, "~ Shoot the falling ghosts before they reach you ~")
	row += 2

	controls := []string{
		"CLICK  . . . . . Shoot",
		"P / ESC  . . . . Pause",
		"Q  . . . . . . .  Quit",
	}
	for _, line := range controls {
		c.centered(centerX, row, draw.ColorGhost, line)
		row++
	}

	if blink() {
		c.centered(centerX, row+1, draw.ColorBow, ">>  Click or press SPACE to Start  <<")
	}
}

// drawPausedScreen draws the pause notice.
func (c *Client) drawPausedScreen(centerX, centerY int) {
	c.centered(centerX, centerY-1, draw.ColorGhost, "PAUSED")
	c.centered(centerX, centerY+1, draw.ColorStar, "Press P to resume")
}

// drawGameOverScreen draws the game over title, score and restart prompt.
func (c *Client) drawGameOverScreen(centerX, centerY int) {
	row := centerY - 4
	title := c.state.GameTitle
	if title == "" {
		title = game.GameOverTitle
	}
	row += c.art(centerX, row, gameOverArt, title) + 1

	c.centered(centerX, row, draw.ColorGhost, c.state.GameDesc)
	row += 2

	if blink() {
		c.centered(centerX, row, draw.ColorBow, ">>  Click or press SPACE to Restart  <<")
	}
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerX, centerY int) {
	c.centered(centerX, centerY-2, draw.ColorArrowTip, "INACTIVITY WARNING")

	left := int(config.InactivityDisconnectUser - time.Since(c.lastInput).Seconds())
	c.centered(centerX, centerY, draw.ColorGhost, fmt.Sprintf("Disconnecting in %d seconds.", max(left, 0)))
	c.centered(centerX, centerY+2, draw.ColorStar, "Press any key to continue")
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerX, centerY int) {
	c.centered(centerX, centerY-3, draw.ColorArrowTip, "SERVER SHUTTING DOWN")
	c.centered(centerX, centerY-1, draw.ColorGhost, "The server is restarting for maintenance.")
	c.centered(centerX, centerY, draw.ColorGhost, "Please reconnect in a moment.")

	remaining := int(c.state.shutdownTimer) + 1
	c.centered(centerX, centerY+2, draw.ColorGhost, fmt.Sprintf("Disconnecting in %d seconds...", remaining))
	c.centered(centerX, centerY+4, draw.ColorStar, "Press Q to disconnect now")
}

// drawTooSmallScreen asks for a bigger terminal.
func (c *Client) drawTooSmallScreen(centerX, centerY int) {
	c.centered(centerX, centerY, draw.ColorGhost, "Terminal too small")
	c.centered(centerX, centerY+1, draw.ColorStar,
		fmt.Sprintf("Need %dx%d", config.MinTermWidth, config.MinTermHeight))
}
