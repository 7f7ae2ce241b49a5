package asset

import "math"

// Sprites are authored on a 256x256 board and normalized into the unit box.
const board = 256.0

func pt(x, y float64) Point {
	return Point{X: x/board - 0.5, Y: y/board - 0.5}
}

func pts(xy ...float64) []Point {
	out := make([]Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, pt(xy[i], xy[i+1]))
	}
	return out
}

// arc returns points on a circle of radius r around (cx,cy) from angle a0 to a1.
func arc(cx, cy, r, a0, a1 float64, steps int) []Point {
	out := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(steps)
		out = append(out, pt(cx+math.Cos(a)*r, cy+math.Sin(a)*r))
	}
	return out
}

func ghostSprite() Sprite {
	// Dome from the left shoulder over the top to the right shoulder, then down
	// the right side and back along a wavy hem.
	body := arc(128, 108, 76, math.Pi, 2*math.Pi, 12)
	body = append(body, pts(
		204, 188,
		196, 202, 182, 196, 166, 206, 150, 196, 134, 206,
		118, 196, 102, 206, 86, 196, 72, 202,
		52, 188,
	)...)

	return Sprite{
		Name: "ghost",
		Paths: []Path{
			{Points: body, Closed: true, Filled: true, Tone: ToneBody},
			{Points: body, Closed: true, Tone: ToneOutline},
			{Points: arc(100, 116, 16, 0, 2*math.Pi, 8), Closed: true, Filled: true, Tone: ToneDetail},
			{Points: arc(156, 116, 16, 0, 2*math.Pi, 8), Closed: true, Filled: true, Tone: ToneDetail},
			{Points: pts(110, 150, 128, 159, 146, 150), Tone: ToneDetail},
		},
	}
}

func bowSprite() Sprite {
	limb := make([]Point, 0, 17)
	for i := 0; i <= 16; i++ {
		t := float64(i) / 16
		limb = append(limb, pt(64+52*math.Sin(math.Pi*t), 40+176*t))
	}

	return Sprite{
		Name: "bow",
		Paths: []Path{
			{Points: limb, Tone: ToneOutline},
			{Points: pts(64, 40, 64, 216), Tone: ToneDetail},
			{Points: pts(52, 118, 76, 118, 76, 138, 52, 138), Closed: true, Filled: true, Tone: ToneAccent},
		},
	}
}

func arrowSprite() Sprite {
	return Sprite{
		Name: "arrow",
		Paths: []Path{
			{Points: pts(40, 128, 196, 128), Tone: ToneBody},
			{Points: pts(196, 128, 172, 110, 172, 146), Closed: true, Filled: true, Tone: ToneAccent},
			{Points: pts(54, 110, 40, 128, 54, 146), Tone: ToneBody},
		},
	}
}

// Transform maps a sprite point into world space: scaled to w x h, rotated by
// angle (radians) and centered on (cx,cy).
func Transform(p Point, cx, cy, w, h, angle float64) (float64, float64) {
	x := p.X * w
	y := p.Y * h
	if angle != 0 {
		sin, cos := math.Sincos(angle)
		x, y = x*cos-y*sin, x*sin+y*cos
	}
	return cx + x, cy + y
}
