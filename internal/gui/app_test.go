package gui

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/tomz197/ghostbow/internal/asset"
	"github.com/tomz197/ghostbow/internal/config"
	"github.com/tomz197/ghostbow/internal/game"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	settings := config.Defaults()
	settings.Seed = 1
	settings.WindowWidth, settings.WindowHeight = 800, 600

	a, err := New(settings, asset.Default(), log.New(io.Discard))
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestNewRejectsEmptyPack(t *testing.T) {
	empty := asset.ProviderFunc(func() (asset.Pack, error) { return asset.Pack{}, nil })
	if _, err := New(config.Defaults(), empty, log.New(io.Discard)); err == nil {
		t.Fatal("expected an error for a pack without sizes")
	}
}

func TestResizeAppliesClampedScale(t *testing.T) {
	a := newTestApp(t)

	a.resize(640, 480, 3)
	w := a.game.World()
	if w.Scale != 2 || w.Width != 1280 || w.Height != 960 {
		t.Fatalf("world = %+v, want 1280x960 at scale 2", w)
	}
	if p := a.game.Player(); p.Y != 960-80*2 || p.Radius != 88 {
		t.Fatalf("player = %+v", p)
	}
}

func TestClickStartsFiresAndPauses(t *testing.T) {
	a := newTestApp(t)

	a.click(400, 100)
	if a.game.Phase() != game.PhaseRunning {
		t.Fatalf("phase = %v, want running", a.game.Phase())
	}
	if a.score != 0 || a.wave != 1 {
		t.Fatalf("HUD = %d/%d", a.score, a.wave)
	}

	a.click(400, 100)
	if n := len(a.game.Snapshot().Arrows); n != 1 {
		t.Fatalf("arrows = %d, want 1", n)
	}

	r := a.pauseButton()
	a.click(float64(r.Min.X+1), float64(r.Min.Y+1))
	if !a.game.Paused() {
		t.Fatal("pause button did not pause")
	}
	if n := len(a.game.Snapshot().Arrows); n != 1 {
		t.Fatal("pause click fired an arrow")
	}

	a.click(float64(r.Min.X+1), float64(r.Min.Y+1))
	if a.game.Paused() {
		t.Fatal("pause button did not resume")
	}
}

func TestGameOverOverlay(t *testing.T) {
	a := newTestApp(t)
	a.GameOver(game.GameOverTitle, "Score: 120")
	if a.overTitle != "Game Over" || a.overDesc != "Score: 120" {
		t.Fatalf("overlay = %q / %q", a.overTitle, a.overDesc)
	}
}
