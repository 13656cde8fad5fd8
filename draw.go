package twig

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// NewWhiteTexture returns a 1x1 white texture, ready to be stretched and
// tinted. The caller owns it and must Deallocate it (see ImageDisposer).
func NewWhiteTexture() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(ColorWhite)
	return img
}

// DrawRect draws the filled rectangle r with color c by stretching tex, which
// is typically a NewWhiteTexture. The batch tint is restored afterwards.
func DrawRect(b *Batch, tex *ebiten.Image, r Rect, c Color) {
	prev := b.Color()
	b.SetColor(c)
	b.Draw(tex, r.X, r.Y, r.Width, r.Height)
	b.SetColor(prev)
}

// DrawFrame draws the 1-unit outline of r with color c. The batch tint is
// restored afterwards.
func DrawFrame(b *Batch, tex *ebiten.Image, r Rect, c Color) {
	prev := b.Color()
	b.SetColor(c)
	for _, s := range FrameStrips(r) {
		if s.Width <= 0 || s.Height <= 0 {
			continue
		}
		b.Draw(tex, s.X, s.Y, s.Width, s.Height)
	}
	b.SetColor(prev)
}

// FrameStrips returns the four 1-unit strips outlining r: top, bottom, left,
// right. Top and bottom span the full width; left and right cover only the
// rows between them, so no two strips overlap. Strips may be empty when r is
// thinner than 2 units.
func FrameStrips(r Rect) [4]Rect {
	inner := r.Height - 2
	if inner < 0 {
		inner = 0
	}
	width := max(r.Width, 0)
	bottom := Rect{r.X, r.Y + r.Height - 1, width, 1}
	if r.Height < 2 {
		bottom.Height = 0
	}
	top := Rect{r.X, r.Y, width, 1}
	if r.Height < 1 {
		top.Height = 0
	}
	left := Rect{r.X, r.Y + 1, 1, inner}
	if r.Width < 1 {
		left.Width = 0
	}
	right := Rect{r.X + r.Width - 1, r.Y + 1, 1, inner}
	if r.Width < 2 {
		right.Width = 0
	}
	return [4]Rect{top, bottom, left, right}
}
