package physics

import (
	"math"
	"math/rand"
	"sort"
	"testing"
)

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name       string
		x1, y1, r1 float64
		x2, y2, r2 float64
		want       bool
	}{
		{"same center", 0, 0, 1, 0, 0, 1, true},
		{"touching", 0, 0, 1, 2, 0, 1, false},
		{"just inside", 0, 0, 1, 1.999, 0, 1, true},
		{"apart", 0, 0, 5, 30, 40, 5, false},
		{"diagonal", 0, 0, 3, 3, 4, 2.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CirclesOverlap(tt.x1, tt.y1, tt.r1, tt.x2, tt.y2, tt.r2); got != tt.want {
				t.Fatalf("CirclesOverlap = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDirection(t *testing.T) {
	dx, dy := Direction(0, 0, 3, 4)
	if math.Abs(dx-0.6) > 1e-12 || math.Abs(dy-0.8) > 1e-12 {
		t.Fatalf("Direction = (%f,%f), want (0.6,0.8)", dx, dy)
	}
	dx, dy = Direction(5, 5, 5, 5)
	if dx != 1 || dy != 0 {
		t.Fatalf("Direction for coincident points = (%f,%f), want (1,0)", dx, dy)
	}
}

func TestSpatialGridFindsAllNeighbors(t *testing.T) {
	const (
		w, h   = 400.0, 300.0
		reach  = 45.0
		points = 200
	)
	rng := rand.New(rand.NewSource(7))
	xs := make([]float64, points)
	ys := make([]float64, points)
	grid := NewSpatialGrid(w, h, reach)
	for i := range xs {
		// Include positions outside the world, like ghosts entering from above.
		xs[i] = rng.Float64()*(w+100) - 50
		ys[i] = rng.Float64()*(h+300) - 200
		grid.Insert(xs[i], ys[i], i)
	}

	for q := 0; q < 50; q++ {
		qx := rng.Float64()*(w+100) - 50
		qy := rng.Float64()*(h+300) - 200

		var want []int
		for i := range xs {
			if DistanceSquared(qx, qy, xs[i], ys[i]) < reach*reach {
				want = append(want, i)
			}
		}

		var got []int
		grid.QueryAround(qx, qy, func(i int) bool {
			if DistanceSquared(qx, qy, xs[i], ys[i]) < reach*reach {
				got = append(got, i)
			}
			return false
		})
		sort.Ints(got)

		if len(got) != len(want) {
			t.Fatalf("query %d: got %v, want %v", q, got, want)
		}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("query %d: got %v, want %v", q, got, want)
			}
		}
	}
}

func TestSpatialGridResetAndEarlyStop(t *testing.T) {
	grid := NewSpatialGrid(100, 100, 10)
	grid.Insert(5, 5, 1)
	grid.Insert(6, 6, 2)

	calls := 0
	grid.QueryAround(5, 5, func(int) bool {
		calls++
		return true
	})
	if calls != 1 {
		t.Fatalf("early stop: fn called %d times, want 1", calls)
	}

	grid.Reset(50, 50, 25)
	if grid.CellSize() != 25 {
		t.Fatalf("cell size = %f, want 25", grid.CellSize())
	}
	grid.QueryAround(5, 5, func(int) bool {
		t.Fatal("grid should be empty after Reset")
		return false
	})
}
