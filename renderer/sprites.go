package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/mailride/camera"
)

// SpriteRenderer draws overlay sprites. World coordinates go through the
// overlay mapping; rotations are counter-clockwise radians in the y-up world,
// so they negate into raylib's clockwise screen degrees.
type SpriteRenderer struct {
	ov camera.Overlay
}

// NewSpriteRenderer creates a sprite renderer over the given overlay mapping.
func NewSpriteRenderer(ov camera.Overlay) *SpriteRenderer {
	return &SpriteRenderer{ov: ov}
}

// SetOverlay swaps the overlay mapping, e.g. after a window resize.
func (s *SpriteRenderer) SetOverlay(ov camera.Overlay) {
	s.ov = ov
}

// Overlay returns the current overlay mapping.
func (s *SpriteRenderer) Overlay() camera.Overlay {
	return s.ov
}

// Draw renders tex centered at overlay point (wx, wy), covering worldW by
// worldH world units, rotated by rot radians counter-clockwise.
func (s *SpriteRenderer) Draw(tex rl.Texture2D, wx, wy, worldW, worldH, rot float32) {
	sx, sy := s.ov.WorldToScreen(wx, wy)
	scale := s.ov.Scale()
	dw := worldW * scale
	dh := worldH * scale

	src := rl.Rectangle{Width: float32(tex.Width), Height: float32(tex.Height)}
	dst := rl.Rectangle{X: sx, Y: sy, Width: dw, Height: dh}
	origin := rl.Vector2{X: dw / 2, Y: dh / 2}
	rl.DrawTexturePro(tex, src, dst, origin, -rot*180/math.Pi, rl.White)
}
