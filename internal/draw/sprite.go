package draw

import "github.com/tomz197/ghostbow/internal/asset"

// Tones assigns palette colors to the tones of a sprite.
type Tones struct {
	Body    Color
	Outline Color
	Detail  Color
	Accent  Color
}

// Color returns the palette color for tone.
func (t Tones) Color(tone asset.Tone) Color {
	switch tone {
	case asset.ToneOutline:
		return t.Outline
	case asset.ToneDetail:
		return t.Detail
	case asset.ToneAccent:
		return t.Accent
	default:
		return t.Body
	}
}

// Tone sets for the built-in sprites.
var (
	GhostTones = Tones{Body: ColorGhost, Outline: ColorGhostOutline, Detail: ColorGhostEyes, Accent: ColorGhostOutline}
	BowTones   = Tones{Body: ColorBow, Outline: ColorBow, Detail: ColorArrow, Accent: ColorGrip}
	ArrowTones = Tones{Body: ColorArrow, Outline: ColorArrow, Detail: ColorArrow, Accent: ColorArrowTip}
)

// DrawSprite rasterizes s scaled to w x h logical units, rotated by angle and
// centered on (cx,cy). Paths are drawn in order, so later paths paint over earlier ones.
func (c *Canvas) DrawSprite(s asset.Sprite, cx, cy, w, h, angle float64, tones Tones) {
	for _, path := range s.Paths {
		pts := c.BorrowPoints(len(path.Points))
		for i, p := range path.Points {
			pts[i].X, pts[i].Y = asset.Transform(p, cx, cy, w, h, angle)
		}

		col := tones.Color(path.Tone)
		if path.Closed {
			c.DrawPolygon(pts, col, path.Filled)
		} else {
			c.DrawPolyline(pts, col)
		}
	}
}
