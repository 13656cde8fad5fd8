package twig

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Target is the surface a Batch submits to. *ebiten.Image satisfies it.
type Target interface {
	DrawImage(img *ebiten.Image, op *ebiten.DrawImageOptions)
	DrawTriangles(vertices []ebiten.Vertex, indices []uint16, img *ebiten.Image, op *ebiten.DrawTrianglesOptions)
}

// Batch accumulates draw state for a frame: a tint, a transform and a
// begin/end bracket. Widgets draw through a Batch so that tint changes can be
// saved and restored around each call.
//
// Ebitengine submits immediately, so Begin/End only guard ordering. Widgets
// that draw shapes end the batch first and begin it again afterwards.
type Batch struct {
	target  Target
	tint    Color
	geoM    ebiten.GeoM
	drawing bool
	op      ebiten.DrawImageOptions
}

// NewBatch creates a batch drawing onto target with a white tint.
func NewBatch(target Target) *Batch {
	if target == nil {
		panic("twig: batch target is nil")
	}
	return &Batch{target: target, tint: ColorWhite}
}

// Target returns the surface this batch draws onto.
func (b *Batch) Target() Target {
	return b.target
}

// Begin opens the batch for drawing.
func (b *Batch) Begin() {
	if b.drawing {
		panic("twig: Batch.End must be called before Begin")
	}
	b.drawing = true
}

// End closes the batch.
func (b *Batch) End() {
	if !b.drawing {
		panic("twig: Batch.Begin must be called before End")
	}
	b.drawing = false
}

// IsDrawing reports whether the batch is between Begin and End.
func (b *Batch) IsDrawing() bool {
	return b.drawing
}

// SetColor sets the tint applied to subsequent draws.
func (b *Batch) SetColor(c Color) {
	b.tint = c
}

// Color returns the current tint.
func (b *Batch) Color() Color {
	return b.tint
}

// SetTransform sets the transform concatenated after each draw's own placement.
func (b *Batch) SetTransform(g ebiten.GeoM) {
	b.geoM = g
}

// Transform returns the batch transform.
func (b *Batch) Transform() ebiten.GeoM {
	return b.geoM
}

// Draw stretches img to the rectangle (x, y, w, h), tinted with the current
// color. Panics when called outside Begin/End.
func (b *Batch) Draw(img *ebiten.Image, x, y, w, h float64) {
	if !b.drawing {
		panic("twig: Batch.Begin must be called before Draw")
	}
	if img == nil {
		return
	}
	bounds := img.Bounds()
	iw, ih := float64(bounds.Dx()), float64(bounds.Dy())
	if iw == 0 || ih == 0 {
		return
	}

	op := &b.op
	op.GeoM.Reset()
	op.GeoM.Scale(w/iw, h/ih)
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(b.geoM)

	op.ColorScale.Reset()
	a := float32(b.tint.A)
	op.ColorScale.Scale(float32(b.tint.R)*a, float32(b.tint.G)*a, float32(b.tint.B)*a, a)

	b.target.DrawImage(img, op)
}
