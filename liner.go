package twig

// Edge is a bitmask of rectangle sides.
type Edge uint8

const (
	EdgeLeft Edge = 1 << iota
	EdgeRight
	EdgeTop
	EdgeBottom

	EdgeAll = EdgeLeft | EdgeRight | EdgeTop | EdgeBottom
)

// Liner draws lines along selected sides of a wrapped widget. Each selected
// side gets a padding of the line size and the line fills that padding.
type Liner struct {
	Container

	// Logger receives renderer disposal failures. May be nil.
	Logger Logger

	line   Color
	shapes shapeHost
}

// NewLiner wraps child, lining the sides in edges with lines of the given
// size and color. renderer may be nil, in which case one is created on first
// draw and released by Dispose. Panics if child is nil.
func NewLiner(renderer ShapeRenderer, child Widget, edges Edge, size float64, c Color) *Liner {
	l := &Liner{line: c}
	initContainer(&l.Container, "liner", child)
	if edges&EdgeLeft != 0 {
		l.PadLeft = size
	}
	if edges&EdgeRight != 0 {
		l.PadRight = size
	}
	if edges&EdgeTop != 0 {
		l.PadTop = size
	}
	if edges&EdgeBottom != 0 {
		l.PadBottom = size
	}
	l.shapes.renderer = renderer
	return l
}

// Draw draws the lines with the shape renderer and then the child.
func (l *Liner) Draw(b *Batch, parentAlpha float64) {
	if !l.Visible {
		return
	}
	l.Layout()
	l.shapes.drawShapes(b, l.line.WithAlpha(parentAlpha), func(r ShapeRenderer) {
		x, y, w, h := l.X, l.Y, l.Width, l.Height
		if l.PadLeft != 0 {
			r.Rect(x, y, l.PadLeft, h)
		}
		if l.PadRight != 0 {
			r.Rect(x+w-l.PadRight, y, l.PadRight, h)
		}
		if l.PadTop != 0 {
			r.Rect(x, y, w, l.PadTop)
		}
		if l.PadBottom != 0 {
			r.Rect(x, y+h-l.PadBottom, w, l.PadBottom)
		}
	})
	l.Container.Draw(b, parentAlpha)
}

// Dispose releases the renderer if the Liner created it.
func (l *Liner) Dispose() error {
	return l.shapes.dispose(l.Logger)
}
