// Package renderer draws the game with raylib: the road ring in 3D, mailbox
// billboards, and overlay sprites for items, bag and hand.
package renderer

import (
	"image"
	"log/slog"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/mailride/placeholders"
)

// Assets holds the textures the renderer draws with. Each slot is filled
// from <dir>/<name>.png when present, otherwise from a generated placeholder
// sprite, so the game runs with no asset files at all.
type Assets struct {
	Envelope    rl.Texture2D
	Bag         rl.Texture2D
	Hand        rl.Texture2D
	HoldingHand rl.Texture2D
	Mailbox     rl.Texture2D
	Road        rl.Texture2D

	loaded bool
}

// LoadAssets loads sprite textures (must be called after the raylib window
// is created). dir may be empty to use placeholders for everything.
func LoadAssets(dir string) *Assets {
	a := &Assets{
		Envelope:    loadOrPlaceholder(dir, "envelope", placeholders.Envelope),
		Bag:         loadOrPlaceholder(dir, "bag", placeholders.Bag),
		Hand:        loadOrPlaceholder(dir, "hand", placeholders.Hand),
		HoldingHand: loadOrPlaceholder(dir, "hand_holding", placeholders.HoldingHand),
		Mailbox:     loadOrPlaceholder(dir, "mailbox", placeholders.MailboxSprite),
		Road:        loadOrPlaceholder(dir, "road", placeholders.RoadTile),
	}

	// The road texture tiles around the ring; everything else is drawn once.
	rl.SetTextureWrap(a.Road, rl.WrapRepeat)

	a.loaded = true
	return a
}

// EnvelopeAspect returns the width/height ratio of the envelope texture,
// which fixes the in-world shape of items.
func (a *Assets) EnvelopeAspect() float32 {
	if a.Envelope.Height == 0 {
		return 1
	}
	return float32(a.Envelope.Width) / float32(a.Envelope.Height)
}

// Unload frees all textures.
func (a *Assets) Unload() {
	if !a.loaded {
		return
	}
	rl.UnloadTexture(a.Envelope)
	rl.UnloadTexture(a.Bag)
	rl.UnloadTexture(a.Hand)
	rl.UnloadTexture(a.HoldingHand)
	rl.UnloadTexture(a.Mailbox)
	rl.UnloadTexture(a.Road)
	a.loaded = false
}

// loadOrPlaceholder loads <dir>/<name>.png, falling back to the generated
// sprite when the file is missing or fails to decode.
func loadOrPlaceholder(dir, name string, gen func() *image.RGBA) rl.Texture2D {
	if dir != "" {
		path := filepath.Join(dir, name+".png")
		if _, err := os.Stat(path); err == nil {
			tex := rl.LoadTexture(path)
			if tex.ID != 0 {
				rl.SetTextureFilter(tex, rl.FilterPoint)
				return tex
			}
			slog.Warn("Failed to load sprite, using placeholder", "sprite", name, "path", path)
		}
	}

	img := rl.NewImageFromImage(gen())
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(tex, rl.FilterPoint)
	return tex
}
