package object

import (
	"math"
	"math/rand"
	"testing"
)

const eps = 1e-9

func TestArrowStep(t *testing.T) {
	a := NewArrow(10, 20, 100, -50)
	a.Step(0.5)
	if a.X != 60 || a.Y != -5 {
		t.Fatalf("position after step = (%f,%f), want (60,-5)", a.X, a.Y)
	}
	if !a.Alive || a.Radius != ArrowRadius {
		t.Fatalf("new arrow should be alive with radius %f, got alive=%v r=%f", ArrowRadius, a.Alive, a.Radius)
	}
	if got := a.Heading(); math.Abs(got-math.Atan2(-50, 100)) > eps {
		t.Fatalf("heading = %f", got)
	}
}

func TestGhostStepFallsAndSways(t *testing.T) {
	g := NewGhost(100, 0, TierLarge, 60, 20, 0)
	g.Step(0.5)

	wantPhase := 0.5 * SwayRate
	if math.Abs(g.Phase-wantPhase) > eps {
		t.Fatalf("phase = %f, want %f", g.Phase, wantPhase)
	}
	if math.Abs(g.Y-30) > eps {
		t.Fatalf("y = %f, want 30", g.Y)
	}
	wantX := 100 + math.Sin(wantPhase)*20*0.5
	if math.Abs(g.X-wantX) > eps {
		t.Fatalf("x = %f, want %f", g.X, wantX)
	}
}

func TestNewGhostClampsTier(t *testing.T) {
	if g := NewGhost(0, 0, -3, 1, 1, 0); g.Tier != 0 {
		t.Fatalf("tier = %d, want 0", g.Tier)
	}
	if g := NewGhost(0, 0, 9, 1, 1, 0); g.Tier != MaxTier {
		t.Fatalf("tier = %d, want %d", g.Tier, MaxTier)
	}
}

func TestGhostChildren(t *testing.T) {
	g := NewGhost(200, 50, TierMedium, 100, 40, 2)
	if !g.CanSplit() {
		t.Fatal("medium ghost should split")
	}
	kids := g.Children()
	for i, c := range kids {
		if c.Tier != TierSmall {
			t.Errorf("child %d tier = %d, want %d", i, c.Tier, TierSmall)
		}
		if math.Abs(c.Speed-106) > 1e-4 || math.Abs(c.Drift-43.2) > 1e-4 {
			t.Errorf("child %d speed/drift = %f/%f", i, c.Speed, c.Drift)
		}
		if c.Y != 50 || !c.Alive {
			t.Errorf("child %d y=%f alive=%v", i, c.Y, c.Alive)
		}
	}
	if kids[0].X != 190 || kids[1].X != 210 {
		t.Fatalf("child x = %f,%f want 190,210", kids[0].X, kids[1].X)
	}
	if math.Abs(kids[0].Phase-3.2) > eps || math.Abs(kids[1].Phase-0.8) > eps {
		t.Fatalf("child phases = %f,%f", kids[0].Phase, kids[1].Phase)
	}

	if NewGhost(0, 0, TierTiny, 1, 1, 0).CanSplit() {
		t.Fatal("tiny ghost must not split")
	}
}

func TestWorldHelpers(t *testing.T) {
	w := Unit(400, 300)
	if got := w.ClampX(-5, 20); got != 20 {
		t.Errorf("ClampX(-5) = %f", got)
	}
	if got := w.ClampX(999, 20); got != 380 {
		t.Errorf("ClampX(999) = %f", got)
	}
	if !w.Contains(-49, 0, 50, 80) || w.Contains(-50, 0, 50, 80) {
		t.Error("horizontal margin is exclusive")
	}
	if !w.Contains(0, 379, 50, 80) || w.Contains(0, 380, 50, 80) {
		t.Error("vertical margin is exclusive")
	}
}

func TestParticleBurst(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ps := Burst(nil, rng, 5, 5, 8, 20, 0.5)
	if len(ps) != 8 {
		t.Fatalf("burst size = %d, want 8", len(ps))
	}
	for _, p := range ps {
		if p.Lifetime < 0.25 || p.Lifetime > 0.5 {
			t.Errorf("lifetime %f out of range", p.Lifetime)
		}
	}

	p := ps[0]
	if p.Step(0.01) {
		t.Fatal("particle expired too early")
	}
	if !p.Step(1) {
		t.Fatal("particle should expire after its lifetime")
	}
	for _, p := range ps {
		p.Release()
	}
}
