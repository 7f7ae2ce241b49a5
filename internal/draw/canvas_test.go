package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tomz197/ghostbow/internal/asset"
)

func render(c *Canvas) string {
	var buf bytes.Buffer
	c.Render(&buf)
	return buf.String()
}

func TestRenderOnlyChangedCells(t *testing.T) {
	c := NewCanvas(4, 2)

	out := render(c)
	if n := strings.Count(out, string(BlockUpperHalf)); n != 8 {
		t.Fatalf("first render painted %d cells, want 8", n)
	}
	if !strings.HasPrefix(out, "\033[1;1H") || !strings.HasSuffix(out, ColorReset) {
		t.Fatalf("unexpected first render %q", out)
	}

	if out := render(c); out != "" {
		t.Fatalf("unchanged render = %q, want nothing", out)
	}

	c.SetFloat(2, 3, ColorGhost)
	out = render(c)
	if n := strings.Count(out, string(BlockUpperHalf)); n != 1 {
		t.Fatalf("painted %d cells, want 1", n)
	}
	if !strings.Contains(out, "\033[2;3H") {
		t.Fatalf("render %q does not move to row 2 col 3", out)
	}
	if !strings.Contains(out, "48;2;255;255;255m") {
		t.Fatalf("render %q does not paint the bottom half white", out)
	}
}

func TestRenderRepaintsDirtyText(t *testing.T) {
	c := NewCanvas(4, 2)
	render(c)

	c.MarkTextDirty(2, 1, 2)
	if n := strings.Count(render(c), string(BlockUpperHalf)); n != 2 {
		t.Fatalf("repainted %d cells, want 2", n)
	}

	// Out of range marks are ignored.
	c.MarkTextDirty(3, 9, 5)
	c.MarkTextDirty(-5, 1, 2)
	if out := render(c); out != "" {
		t.Fatalf("render after out of range marks = %q", out)
	}
}

func TestForceRedraw(t *testing.T) {
	c := NewCanvas(3, 1)
	render(c)

	c.ForceRedraw()
	if n := strings.Count(render(c), string(BlockUpperHalf)); n != 3 {
		t.Fatalf("forced redraw painted %d cells, want 3", n)
	}

	c.SetOffset(1, 0)
	out := render(c)
	if n := strings.Count(out, string(BlockUpperHalf)); n != 3 {
		t.Fatalf("redraw after offset painted %d cells, want 3", n)
	}
	if !strings.HasPrefix(out, "\033[1;2H") {
		t.Fatalf("offset render starts with %q", out)
	}
}

func TestDrawLine(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawLine(Point{0, 0}, Point{9, 0}, ColorArrow)
	for x := 0; x < 10; x++ {
		if c.Pixel(x, 0) != ColorArrow {
			t.Fatalf("pixel %d not set", x)
		}
	}
	if c.Pixel(0, 1) != ColorNone {
		t.Fatal("line leaked into the next row")
	}
}

func TestDrawPolygonFilled(t *testing.T) {
	c := NewCanvas(10, 5)
	square := []Point{{1, 1}, {6, 1}, {6, 6}, {1, 6}}

	c.DrawPolygon(square, ColorGhost, false)
	if c.Pixel(3, 3) != ColorNone {
		t.Fatal("outline filled the interior")
	}

	c.DrawPolygon(square, ColorGhost, true)
	if c.Pixel(3, 3) != ColorGhost {
		t.Fatal("interior not filled")
	}
	if c.Pixel(8, 8) != ColorNone {
		t.Fatal("fill leaked outside the polygon")
	}
}

func TestFillRect(t *testing.T) {
	c := NewCanvas(4, 2)
	c.FillRect(0, 2, 4, 4, ColorBand)
	for x := 0; x < 4; x++ {
		if c.Pixel(x, 1) != ColorNone || c.Pixel(x, 2) != ColorBand || c.Pixel(x, 3) != ColorBand {
			t.Fatalf("column %d not filled as expected", x)
		}
	}

	// Clipped to the canvas.
	c.FillRect(-10, -10, 100, 100, ColorStar)
	if c.Pixel(3, 3) != ColorStar {
		t.Fatal("clipped rect not filled")
	}
}

func TestCellToLogical(t *testing.T) {
	c := NewScaledCanvas(10, 5, 80, 80)

	x, y, ok := c.CellToLogical(0, 0)
	if !ok || x != 4 || y != 8 {
		t.Fatalf("CellToLogical(0,0) = (%f,%f,%v), want (4,8,true)", x, y, ok)
	}
	if col, row := c.LogicalToTerminal(x, y); col != 1 || row != 1 {
		t.Fatalf("LogicalToTerminal = (%d,%d), want (1,1)", col, row)
	}

	c.SetOffset(2, 1)
	if x, y, ok = c.CellToLogical(2, 1); !ok || x != 4 || y != 8 {
		t.Fatalf("offset CellToLogical = (%f,%f,%v)", x, y, ok)
	}
	if _, _, ok = c.CellToLogical(1, 1); ok {
		t.Fatal("cell left of the canvas mapped")
	}
	if _, _, ok = c.CellToLogical(12, 1); ok {
		t.Fatal("cell right of the canvas mapped")
	}
}

func TestSetLogicalSize(t *testing.T) {
	c := NewCanvas(10, 5)
	c.SetLogicalSize(100, 100)
	c.SetFloat(95, 95, ColorGhost)
	if c.Pixel(9, 9) != ColorGhost {
		t.Fatal("scaled pixel not set")
	}
}

func TestDrawSprite(t *testing.T) {
	pack, err := asset.Default().Load()
	if err != nil {
		t.Fatal(err)
	}
	c := NewCanvas(100, 50)
	c.DrawSprite(pack.Ghost, 50, 50, 80, 80, 0, GhostTones)

	if c.Pixel(50, 50) != ColorGhost {
		t.Fatalf("ghost center = %d, want body color", c.Pixel(50, 50))
	}
	if c.Pixel(5, 5) != ColorNone {
		t.Fatal("ghost painted far outside its box")
	}
}

func TestColorRGB(t *testing.T) {
	if Color(200).RGB() != ColorNone.RGB() {
		t.Fatal("unknown color should map to the background")
	}
	if ColorArrowTip.RGB() != (RGB{0xff, 0x4d, 0x6d}) {
		t.Fatal("unexpected arrow tip color")
	}
}
