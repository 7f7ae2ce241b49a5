// Package gui is the desktop window for the game, built on ebiten. It forwards
// clicks and keys to a game.Game and draws its snapshot with vector sprites.
package gui

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/tomz197/ghostbow/internal/asset"
	"github.com/tomz197/ghostbow/internal/config"
	"github.com/tomz197/ghostbow/internal/game"
	"github.com/tomz197/ghostbow/internal/object"
)

// Scene sizes in CSS pixels, multiplied by the scale.
const (
	defenseBand = 150.0
	bowWidth    = 86.0
	bowHeight   = 140.0
	arrowLength = 72.0
	arrowWidth  = 24.0
	starCount   = 40
	strokeWidth = 3.0

	buttonWidth  = 84
	buttonHeight = 24
	buttonMargin = 12
)

// App implements ebiten.Game around a game.Game.
type App struct {
	game     *game.Game
	pack     asset.Pack
	settings config.Settings
	logger   *log.Logger
	face     font.Face
	sprites  *spriteRenderer
	epoch    time.Time

	// Layout in CSS pixels and the device scale applied on top
	width, height int
	scale         float64

	// Mirrored from observer notifications
	score     int
	wave      int
	overTitle string
	overDesc  string
}

// Compile-time check that App receives game notifications.
var _ game.Observer = (*App)(nil)

// New creates the app. The window size comes from settings until the first Layout.
func New(settings config.Settings, provider asset.Provider, logger *log.Logger) (*App, error) {
	pack, err := provider.Load()
	if err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}
	if err := pack.Validate(); err != nil {
		return nil, err
	}

	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	a := &App{
		pack:     pack,
		settings: settings,
		logger:   logger,
		face:     basicfont.Face7x13,
		epoch:    time.Now(),
		width:    settings.WindowWidth,
		height:   settings.WindowHeight,
		scale:    1,
		wave:     1,
	}
	a.game = game.New(game.Options{
		Sizes:    pack.GhostSizes,
		Viewport: a.viewport,
		Rand:     rand.New(rand.NewSource(seed)),
		Clock:    a.now,
		Observer: a,
	})
	return a, nil
}

func (a *App) now() time.Duration {
	return time.Since(a.epoch)
}

// viewport is the world in device pixels.
func (a *App) viewport() object.World {
	return object.World{
		Width:  float64(a.width) * a.scale,
		Height: float64(a.height) * a.scale,
		Scale:  a.scale,
	}
}

// Layout sizes the screen in device pixels and resizes the game when the
// window or the device scale changed.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := 1.0
	if m := ebiten.Monitor(); m != nil {
		scale = m.DeviceScaleFactor()
	}
	a.resize(outsideWidth, outsideHeight, scale)
	w := a.game.World()
	return int(w.Width), int(w.Height)
}

func (a *App) resize(width, height int, scale float64) {
	scale = a.settings.ClampScale(scale)
	if width == a.width && height == a.height && scale == a.scale {
		return
	}
	a.width, a.height, a.scale = width, height, scale
	a.game.Resize()
	a.logger.Debug("resized", "width", width, "height", height, "scale", scale)
}

// Update handles input and advances the game.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.game.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		a.start()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		a.click(float64(x), float64(y))
	}

	a.game.Tick(a.now())
	return nil
}

// click handles a left click at a screen position in device pixels.
func (a *App) click(x, y float64) {
	if a.game.Running() && image.Pt(int(x), int(y)).In(a.pauseButton()) {
		a.game.TogglePause()
		return
	}
	switch a.game.Phase() {
	case game.PhaseIdle, game.PhaseGameOver:
		a.start()
	case game.PhaseRunning:
		a.game.Fire(x, y)
	}
}

func (a *App) start() {
	if a.game.Running() {
		return
	}
	a.game.StartNew()
	a.logger.Debug("run started")
}

// pauseButton is the pause/resume button in the top right corner, in device pixels.
func (a *App) pauseButton() image.Rectangle {
	s := a.scale
	w := a.game.World().Width
	x1 := int(w - buttonMargin*s)
	y0 := int(buttonMargin * s)
	return image.Rect(x1-int(buttonWidth*s), y0, x1, y0+int(buttonHeight*s))
}

// ScoreChanged mirrors the score for the HUD.
func (a *App) ScoreChanged(score int) {
	a.score = score
}

// WaveChanged mirrors the wave for the HUD.
func (a *App) WaveChanged(wave int) {
	a.wave = wave
}

// GameOver stores the overlay texts.
func (a *App) GameOver(title, desc string) {
	a.overTitle = title
	a.overDesc = desc
	a.logger.Info("game over", "score", a.score, "wave", a.wave)
}

// Frame is a no-op; ebiten redraws every frame anyway.
func (a *App) Frame() {}

// Draw renders the scene, HUD and overlays.
func (a *App) Draw(screen *ebiten.Image) {
	if a.sprites == nil {
		a.sprites = newSpriteRenderer()
	}
	snap := a.game.Snapshot()
	w, h, s := float32(snap.World.Width), float32(snap.World.Height), float32(snap.World.Scale)

	screen.Fill(colorBackground)

	for i := 0; i < starCount; i++ {
		x := float32((i * 97) % max(int(w), 1))
		y := float32((i*211)%max(int(h), 1)) * 0.55
		vector.DrawFilledRect(screen, x, y, 2*s, 2*s, colorStar, false)
	}

	vector.DrawFilledRect(screen, 0, h-defenseBand*s, w, defenseBand*s, colorBand, false)
	vector.StrokeLine(screen, 0, h-defenseBand*s, w, h-defenseBand*s, 2*s, colorBandEdge, true)

	scale := snap.World.Scale
	stroke := strokeWidth * s
	p := snap.Player
	a.sprites.draw(screen, a.pack.Bow, p.X, p.Y, bowWidth*scale, bowHeight*scale, 0, bowTones, stroke)

	for i := range snap.Arrows {
		ar := &snap.Arrows[i]
		a.sprites.draw(screen, a.pack.Arrow, ar.X, ar.Y, arrowLength*scale, arrowWidth*scale, ar.Heading(), arrowTones, stroke)
	}
	for _, g := range snap.Ghosts {
		size := a.pack.GhostSizes.At(g.Tier) * scale
		a.sprites.draw(screen, a.pack.Ghost, g.X, g.Y, size, size, 0, ghostTones, stroke)
	}

	a.drawHUD(screen, snap)
	a.drawOverlay(screen, snap)
}

func (a *App) drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	text.Draw(screen, fmt.Sprintf("Score: %d", a.score), a.face, 12, 24, colorText)
	text.Draw(screen, fmt.Sprintf("Wave: %d", a.wave), a.face, 12, 42, colorText)

	if !snap.Running() {
		return
	}
	r := a.pauseButton()
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), colorButton, false)
	label := "Pause"
	if snap.Paused() {
		label = "Resume"
	}
	a.centered(screen, label, (r.Min.X+r.Max.X)/2, r.Max.Y-(r.Dy()-9)/2, colorText)
}

func (a *App) drawOverlay(screen *ebiten.Image, snap game.Snapshot) {
	var lines []string
	switch snap.Phase {
	case game.PhaseIdle:
		lines = []string{"GHOSTBOW", "Click to start", "P pause   Q quit"}
	case game.PhasePaused:
		lines = []string{"Paused", "Press P to resume"}
	case game.PhaseGameOver:
		lines = []string{a.overTitle, a.overDesc, "Click to restart"}
	default:
		return
	}

	w, h := int(snap.World.Width), int(snap.World.Height)
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), colorShade, false)
	y := h/2 - len(lines)*10
	for i, line := range lines {
		c := colorText
		if i > 0 {
			c = colorDim
		}
		a.centered(screen, line, w/2, y+i*20, c)
	}
}

func (a *App) centered(screen *ebiten.Image, s string, cx, y int, c color.Color) {
	b := text.BoundString(a.face, s)
	text.Draw(screen, s, a.face, cx-b.Dx()/2, y, c)
}
