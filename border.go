package twig

import "math"

// CornerStyle selects how the corners of a Borderer's margins are filled.
type CornerStyle uint8

const (
	CornerSquare  CornerStyle = iota // corners filled with squares
	CornerMissing                    // corners left empty
	CornerRounded                    // corners filled with quarter discs
)

// Borderer draws margins of equal size on all four sides of a wrapped widget.
// The container is padded by the border size so the margins occupy the
// padding ring around the child.
type Borderer struct {
	Container

	// XOffset and YOffset shift the margins. Typically left to 0.
	XOffset, YOffset float64

	// Logger receives renderer disposal failures. May be nil.
	Logger Logger

	style  CornerStyle
	size   float64
	border Color
	shapes shapeHost
}

// NewBorderer wraps child with a border of the given size, style and color.
// renderer may be nil, in which case one is created on first draw and
// released by Dispose. Panics if child is nil.
func NewBorderer(renderer ShapeRenderer, child Widget, style CornerStyle, size float64, c Color) *Borderer {
	b := &Borderer{style: style, size: size, border: c}
	initContainer(&b.Container, "borderer", child)
	b.SetPadding(size, size, size, size)
	b.shapes.renderer = renderer
	return b
}

// BorderSize returns the margin thickness.
func (b *Borderer) BorderSize() float64 {
	return b.size
}

// BorderColor returns the margin color.
func (b *Borderer) BorderColor() Color {
	return b.border
}

// Style returns the corner style.
func (b *Borderer) Style() CornerStyle {
	return b.style
}

// Draw draws the margins with the shape renderer and then the child.
func (b *Borderer) Draw(batch *Batch, parentAlpha float64) {
	if !b.Visible {
		return
	}
	b.Layout()
	inner := b.ChildBounds()
	inner.X += b.XOffset
	inner.Y += b.YOffset
	b.shapes.drawShapes(batch, b.border.WithAlpha(parentAlpha), func(r ShapeRenderer) {
		drawMarginsAround(r, inner, b.size, b.style)
	})
	b.Container.Draw(batch, parentAlpha)
}

// Dispose releases the renderer if the Borderer created it.
func (b *Borderer) Dispose() error {
	return b.shapes.dispose(b.Logger)
}

// drawMarginsAround fills four margins of the given size outside inner, plus
// the corners according to style.
func drawMarginsAround(r ShapeRenderer, inner Rect, size float64, style CornerStyle) {
	if size <= 0 {
		return
	}
	x, y, w, h := inner.X, inner.Y, inner.Width, inner.Height
	r.Rect(x-size, y, size, h) // left
	r.Rect(x+w, y, size, h)    // right
	r.Rect(x, y-size, w, size) // top
	r.Rect(x, y+h, w, size)    // bottom

	switch style {
	case CornerSquare:
		r.Rect(x-size, y-size, size, size)
		r.Rect(x+w, y-size, size, size)
		r.Rect(x-size, y+h, size, size)
		r.Rect(x+w, y+h, size, size)
	case CornerRounded:
		// Y grows downward, so the top-left quadrant spans pi..3pi/2.
		r.Sector(x, y, size, math.Pi, math.Pi/2)
		r.Sector(x+w, y, size, 3*math.Pi/2, math.Pi/2)
		r.Sector(x+w, y+h, size, 0, math.Pi/2)
		r.Sector(x, y+h, size, math.Pi/2, math.Pi/2)
	case CornerMissing:
	}
}
