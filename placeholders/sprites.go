// Package placeholders generates flat-color stand-in sprites so the game can
// run before real art exists. Each generator returns a small RGBA image the
// renderer uploads as a texture.
package placeholders

import (
	"image"
	"image/color"
	"image/draw"
)

// Palette defines the colors used by the placeholder sprites.
var Palette = struct {
	Paper      color.RGBA
	PaperEdge  color.RGBA
	BagCloth   color.RGBA
	BagEdge    color.RGBA
	Skin       color.RGBA
	SkinShadow color.RGBA
	BoxBlue    color.RGBA
	BoxEdge    color.RGBA
	Post       color.RGBA
	Flag       color.RGBA
	Asphalt    color.RGBA
	LaneMark   color.RGBA
	EdgeMark   color.RGBA
}{
	Paper:      color.RGBA{235, 225, 200, 255}, // cream
	PaperEdge:  color.RGBA{120, 110, 90, 255},  // dull brown
	BagCloth:   color.RGBA{150, 100, 60, 255},  // leather brown
	BagEdge:    color.RGBA{90, 60, 35, 255},    // dark brown
	Skin:       color.RGBA{230, 180, 140, 255}, // light skin tone
	SkinShadow: color.RGBA{190, 140, 105, 255}, // knuckle shadow
	BoxBlue:    color.RGBA{60, 110, 190, 255},  // mailbox blue
	BoxEdge:    color.RGBA{30, 60, 110, 255},   // dark blue
	Post:       color.RGBA{100, 80, 60, 255},   // wooden post
	Flag:       color.RGBA{220, 60, 50, 255},   // signal flag red
	Asphalt:    color.RGBA{95, 95, 100, 255},   // road gray
	LaneMark:   color.RGBA{230, 200, 70, 255},  // center line yellow
	EdgeMark:   color.RGBA{225, 225, 225, 255}, // edge line white
}

// Envelope is a 48x32 cream envelope with a flap.
func Envelope() *image.RGBA {
	img := newFilled(48, 32, Palette.Paper)
	borderRect(img, 0, 0, 47, 31, Palette.PaperEdge)

	// Flap: two diagonals from the top corners meeting mid-height.
	for x := 0; x <= 23; x++ {
		y := x * 15 / 23
		img.SetRGBA(x, y, Palette.PaperEdge)
		img.SetRGBA(47-x, y, Palette.PaperEdge)
	}
	return img
}

// Bag is a 64x64 cloth bag with a lighter opening strip.
func Bag() *image.RGBA {
	img := newFilled(64, 64, Palette.BagCloth)
	borderRect(img, 0, 0, 63, 63, Palette.BagEdge)
	fillRect(img, 4, 4, 59, 12, Palette.BagEdge)
	fillRect(img, 8, 6, 55, 10, Palette.Paper) // envelopes peeking out
	return img
}

// Hand is a 32x32 open hand: palm with four finger gaps.
func Hand() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	fillRect(img, 4, 10, 27, 29, Palette.Skin)
	for i := 0; i < 4; i++ {
		x := 5 + i*6
		fillRect(img, x, 2, x+4, 12, Palette.Skin)
	}
	borderRect(img, 4, 10, 27, 29, Palette.SkinShadow)
	return img
}

// HoldingHand is a 32x32 gripping hand: palm with folded knuckles.
func HoldingHand() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	fillRect(img, 4, 8, 27, 29, Palette.Skin)
	fillRect(img, 6, 10, 25, 15, Palette.SkinShadow)
	borderRect(img, 4, 8, 27, 29, Palette.SkinShadow)
	return img
}

// MailboxSprite is a 32x48 mailbox on a post with a signal flag.
func MailboxSprite() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 32, 48))
	fillRect(img, 13, 22, 18, 47, Palette.Post)
	fillRect(img, 2, 4, 29, 22, Palette.BoxBlue)
	borderRect(img, 2, 4, 29, 22, Palette.BoxEdge)
	fillRect(img, 27, 0, 31, 10, Palette.Flag)
	return img
}

// RoadTile is a 64x64 repeatable asphalt tile: edge lines left and right,
// dashed center line along the direction of travel.
func RoadTile() *image.RGBA {
	img := newFilled(64, 64, Palette.Asphalt)
	fillRect(img, 0, 0, 2, 63, Palette.EdgeMark)
	fillRect(img, 61, 0, 63, 63, Palette.EdgeMark)
	for y := 0; y < 64; y += 16 {
		fillRect(img, 30, y, 33, y+9, Palette.LaneMark)
	}
	return img
}

// newFilled creates a w x h image filled with a solid color.
func newFilled(w, h int, col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// fillRect fills the inclusive pixel rectangle [x0,x1] x [y0,y1].
func fillRect(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	draw.Draw(img, image.Rect(x0, y0, x1+1, y1+1), &image.Uniform{col}, image.Point{}, draw.Src)
}

// borderRect outlines the inclusive pixel rectangle with a 1px border.
func borderRect(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	fillRect(img, x0, y0, x1, y0, col)
	fillRect(img, x0, y1, x1, y1, col)
	fillRect(img, x0, y0, x0, y1, col)
	fillRect(img, x1, y0, x1, y1, col)
}
