package asset

import (
	"errors"
	"math"
	"testing"
)

func TestSizesAt(t *testing.T) {
	tests := []struct {
		name  string
		sizes Sizes
		tier  int
		want  float64
	}{
		{"largest", DefaultSizes, 0, 78},
		{"smallest", DefaultSizes, 3, 30},
		{"out of range", DefaultSizes, 4, DefaultGhostSize},
		{"negative tier", DefaultSizes, -1, DefaultGhostSize},
		{"short table", Sizes{78, 56}, 2, DefaultGhostSize},
		{"zero entry", Sizes{0, 56}, 0, DefaultGhostSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sizes.At(tt.tier); got != tt.want {
				t.Fatalf("At(%d) = %f, want %f", tt.tier, got, tt.want)
			}
		})
	}
}

func TestSizesMax(t *testing.T) {
	if got := DefaultSizes.Max(4); got != 78 {
		t.Fatalf("Max = %f, want 78", got)
	}
	if got := (Sizes{20, 10}).Max(4); got != DefaultGhostSize {
		t.Fatalf("Max with fallback tiers = %f, want %f", got, DefaultGhostSize)
	}
}

func TestDefaultPack(t *testing.T) {
	pack, err := Default().Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := pack.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(pack.GhostSizes) != 4 {
		t.Fatalf("ghost sizes = %v", pack.GhostSizes)
	}

	// Loading twice must not share the size table.
	pack.GhostSizes[0] = 1
	if DefaultSizes[0] != 78 {
		t.Fatal("pack aliases DefaultSizes")
	}

	for _, s := range []Sprite{pack.Ghost, pack.Bow, pack.Arrow} {
		if len(s.Paths) == 0 {
			t.Fatalf("sprite %q has no paths", s.Name)
		}
		for _, p := range s.Paths {
			for _, v := range p.Points {
				if math.Abs(v.X) > 0.5 || math.Abs(v.Y) > 0.5 {
					t.Fatalf("sprite %q point %+v outside unit box", s.Name, v)
				}
			}
		}
	}
}

func TestValidateEmptySizes(t *testing.T) {
	if err := (Pack{}).Validate(); !errors.Is(err, ErrNoSizes) {
		t.Fatalf("Validate = %v, want ErrNoSizes", err)
	}
}

func TestTransform(t *testing.T) {
	x, y := Transform(Point{X: 0.5, Y: 0}, 100, 100, 20, 10, 0)
	if x != 110 || y != 100 {
		t.Fatalf("Transform = (%f,%f), want (110,100)", x, y)
	}
	x, y = Transform(Point{X: 0.5, Y: 0}, 0, 0, 20, 10, math.Pi/2)
	if math.Abs(x) > 1e-9 || math.Abs(y-10) > 1e-9 {
		t.Fatalf("rotated Transform = (%f,%f), want (0,10)", x, y)
	}
}
