package placeholders

import "testing"

func TestEnvelopeDimensions(t *testing.T) {
	img := Envelope()
	b := img.Bounds()
	if b.Dx() != 48 || b.Dy() != 32 {
		t.Errorf("Envelope bounds = %dx%d, want 48x32", b.Dx(), b.Dy())
	}

	// Landscape aspect drives the in-world item shape.
	if b.Dx() <= b.Dy() {
		t.Errorf("Envelope should be wider than tall, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestEnvelopeFillAndBorder(t *testing.T) {
	img := Envelope()
	if got := img.RGBAAt(24, 28); got != Palette.Paper {
		t.Errorf("interior pixel = %v, want paper %v", got, Palette.Paper)
	}
	if got := img.RGBAAt(0, 0); got != Palette.PaperEdge {
		t.Errorf("corner pixel = %v, want edge %v", got, Palette.PaperEdge)
	}
}

func TestSpriteSizes(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"bag", 64, 64},
		{"hand", 32, 32},
		{"holding_hand", 32, 32},
		{"mailbox", 32, 48},
		{"road", 64, 64},
	}

	bounds := map[string][2]int{
		"bag":          {Bag().Bounds().Dx(), Bag().Bounds().Dy()},
		"hand":         {Hand().Bounds().Dx(), Hand().Bounds().Dy()},
		"holding_hand": {HoldingHand().Bounds().Dx(), HoldingHand().Bounds().Dy()},
		"mailbox":      {MailboxSprite().Bounds().Dx(), MailboxSprite().Bounds().Dy()},
		"road":         {RoadTile().Bounds().Dx(), RoadTile().Bounds().Dy()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bounds[tt.name]
			if got[0] != tt.w || got[1] != tt.h {
				t.Errorf("size = %dx%d, want %dx%d", got[0], got[1], tt.w, tt.h)
			}
		})
	}
}

func TestRoadTileRepeatsVertically(t *testing.T) {
	img := RoadTile()

	// The dash pattern has period 16 and the period divides the tile height,
	// so the texture tiles along the ring without a visible seam.
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			if a, b := img.RGBAAt(x, y), img.RGBAAt(x, y+16); a != b {
				t.Fatalf("pixel (%d,%d) = %v but (%d,%d) = %v, dash period broken", x, y, a, x, y+16, b)
			}
		}
	}
}

func TestHandsDiffer(t *testing.T) {
	open := Hand()
	holding := HoldingHand()
	same := true
	for y := 0; y < 32 && same; y++ {
		for x := 0; x < 32; x++ {
			if open.RGBAAt(x, y) != holding.RGBAAt(x, y) {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("Hand and HoldingHand render identically")
	}
}
