package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/ghostbow/internal/asset"
)

// Palette
var (
	colorBackground = color.RGBA{0x0b, 0x10, 0x20, 0xff}
	colorStar       = color.RGBA{0xff, 0xff, 0xff, 0x0f}
	colorBand       = color.RGBA{0x7c, 0x5c, 0xff, 0x1a}
	colorBandEdge   = color.RGBA{0xff, 0xff, 0xff, 0x1a}
	colorText       = color.RGBA{0xe7, 0xf0, 0xff, 0xff}
	colorDim        = color.RGBA{0x9a, 0xa3, 0xc4, 0xff}
	colorButton     = color.RGBA{0x2a, 0x24, 0x5c, 0xff}
	colorShade      = color.RGBA{0x0b, 0x10, 0x20, 0xb0}
)

// tones assigns colors to the tones of a sprite.
type tones [4]color.RGBA

var (
	ghostTones = tones{
		asset.ToneBody:    {0xff, 0xff, 0xff, 0xff},
		asset.ToneOutline: {0x7c, 0x5c, 0xff, 0xff},
		asset.ToneDetail:  {0x0b, 0x10, 0x20, 0xff},
		asset.ToneAccent:  {0x7c, 0x5c, 0xff, 0xff},
	}
	bowTones = tones{
		asset.ToneBody:    {0xff, 0xd1, 0x66, 0xff},
		asset.ToneOutline: {0xff, 0xd1, 0x66, 0xff},
		asset.ToneDetail:  {0xe7, 0xf0, 0xff, 0xff},
		asset.ToneAccent:  {0x8d, 0x55, 0x24, 0xff},
	}
	arrowTones = tones{
		asset.ToneBody:    {0xe7, 0xf0, 0xff, 0xff},
		asset.ToneOutline: {0xe7, 0xf0, 0xff, 0xff},
		asset.ToneDetail:  {0xe7, 0xf0, 0xff, 0xff},
		asset.ToneAccent:  {0xff, 0x4d, 0x6d, 0xff},
	}
)

func (t tones) color(tone asset.Tone) color.RGBA {
	if tone < 0 || int(tone) >= len(t) {
		return t[asset.ToneBody]
	}
	return t[tone]
}

// spriteRenderer turns sprite outlines into triangles. Buffers are reused
// between calls.
type spriteRenderer struct {
	whiteImg *ebiten.Image
	vs       []ebiten.Vertex
	is       []uint16
}

func newSpriteRenderer() *spriteRenderer {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return &spriteRenderer{whiteImg: img}
}

// draw renders s scaled to w x h, rotated by angle and centered on (cx,cy).
// Outlines are stroked with the given width.
func (r *spriteRenderer) draw(dst *ebiten.Image, s asset.Sprite, cx, cy, w, h, angle float64, t tones, stroke float32) {
	for _, p := range s.Paths {
		if len(p.Points) < 2 {
			continue
		}

		var path vector.Path
		for i, pt := range p.Points {
			x, y := asset.Transform(pt, cx, cy, w, h, angle)
			if i == 0 {
				path.MoveTo(float32(x), float32(y))
			} else {
				path.LineTo(float32(x), float32(y))
			}
		}
		if p.Closed {
			path.Close()
		}

		if p.Filled {
			r.vs, r.is = path.AppendVerticesAndIndicesForFilling(r.vs[:0], r.is[:0])
		} else {
			r.vs, r.is = path.AppendVerticesAndIndicesForStroke(r.vs[:0], r.is[:0], &vector.StrokeOptions{
				Width:    stroke,
				LineJoin: vector.LineJoinRound,
				LineCap:  vector.LineCapRound,
			})
		}
		r.paint(dst, t.color(p.Tone))
	}
}

func (r *spriteRenderer) paint(dst *ebiten.Image, c color.RGBA) {
	for i := range r.vs {
		r.vs[i].SrcX = 0
		r.vs[i].SrcY = 0
		r.vs[i].ColorR = float32(c.R) / 255
		r.vs[i].ColorG = float32(c.G) / 255
		r.vs[i].ColorB = float32(c.B) / 255
		r.vs[i].ColorA = float32(c.A) / 255
	}
	dst.DrawTriangles(r.vs, r.is, r.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
