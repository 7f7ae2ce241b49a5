// Package asset provides the sprites and ghost size table used by the presentation
// layers. Sprites are vector outlines so that the same pack renders on a terminal
// canvas and in a desktop window.
package asset

import "errors"

// DefaultGhostSize is the display size used for a tier missing from the size table.
const DefaultGhostSize = 60.0

// ErrNoSizes is returned by Pack.Validate when the ghost size table is empty.
var ErrNoSizes = errors.New("asset: ghost size table is empty")

// Sizes holds ghost display sizes by tier, largest first.
type Sizes []float64

// DefaultSizes is the built-in size table.
var DefaultSizes = Sizes{78, 56, 40, 30}

// At returns the display size for tier, or DefaultGhostSize if the table has no
// positive entry for it.
func (s Sizes) At(tier int) float64 {
	if tier < 0 || tier >= len(s) || s[tier] <= 0 {
		return DefaultGhostSize
	}
	return s[tier]
}

// Max returns the largest size any tier can be drawn with, counting the fallback.
func (s Sizes) Max(tiers int) float64 {
	largest := 0.0
	for tier := 0; tier < tiers; tier++ {
		if v := s.At(tier); v > largest {
			largest = v
		}
	}
	return largest
}

// Point is a sprite vertex in the unit box [-0.5, 0.5] x [-0.5, 0.5].
type Point struct {
	X, Y float64
}

// Tone tells the renderer which palette slot a path uses.
type Tone int

const (
	ToneBody    Tone = iota // Main fill
	ToneOutline             // Strokes around the body
	ToneDetail              // Eyes, mouth, bow string
	ToneAccent              // Arrow tip, grip
)

// Path is a polyline in sprite space.
type Path struct {
	Points []Point
	Closed bool
	Filled bool
	Tone   Tone
}

// Sprite is a named set of paths.
type Sprite struct {
	Name  string
	Paths []Path
}

// Pack is everything a presentation layer needs to draw the game.
type Pack struct {
	Ghost      Sprite
	Bow        Sprite
	Arrow      Sprite
	GhostSizes Sizes
}

// Validate reports packs that would force every tier onto the fallback size.
func (p Pack) Validate() error {
	if len(p.GhostSizes) == 0 {
		return ErrNoSizes
	}
	return nil
}

// Provider produces an asset pack.
type Provider interface {
	Load() (Pack, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func() (Pack, error)

// Load calls f.
func (f ProviderFunc) Load() (Pack, error) {
	return f()
}

// Default returns the provider for the built-in vector pack.
func Default() Provider {
	return ProviderFunc(func() (Pack, error) {
		return Pack{
			Ghost:      ghostSprite(),
			Bow:        bowSprite(),
			Arrow:      arrowSprite(),
			GhostSizes: append(Sizes(nil), DefaultSizes...),
		}, nil
	})
}
