package twig

// Container wraps a single child widget inside four paddings. The child is
// placed in absolute coordinates on every Layout.
type Container struct {
	Actor

	PadLeft, PadTop, PadRight, PadBottom float64

	child Widget
}

// NewContainer wraps child. Panics if child is nil.
func NewContainer(name string, child Widget) *Container {
	c := &Container{}
	initContainer(c, name, child)
	return c
}

func initContainer(c *Container, name string, child Widget) {
	if isNil(child) {
		panic("twig: container child is nil")
	}
	actorDefaults(&c.Actor, name)
	c.child = child
}

// Child returns the wrapped widget.
func (c *Container) Child() Widget {
	return c.child
}

// SetPadding sets all four paddings.
func (c *Container) SetPadding(left, top, right, bottom float64) {
	c.PadLeft, c.PadTop, c.PadRight, c.PadBottom = left, top, right, bottom
}

// PrefSize is the child's preferred size plus the paddings.
func (c *Container) PrefSize() (w, h float64) {
	cw, ch := c.child.PrefSize()
	return cw + c.PadLeft + c.PadRight, ch + c.PadTop + c.PadBottom
}

// Pack sizes the container to its preferred size and lays out the child.
func (c *Container) Pack() {
	w, h := c.PrefSize()
	c.SetSize(w, h)
	c.Layout()
}

// Layout positions and sizes the child inside the paddings.
func (c *Container) Layout() {
	c.child.SetPosition(c.X+c.PadLeft, c.Y+c.PadTop)
	c.child.SetSize(
		max(0, c.Width-c.PadLeft-c.PadRight),
		max(0, c.Height-c.PadTop-c.PadBottom),
	)
}

// ChildBounds returns the rectangle left for the child.
func (c *Container) ChildBounds() Rect {
	return c.Bounds().Inset(c.PadLeft, c.PadTop, c.PadRight, c.PadBottom)
}

// Act advances the container's actions and then the child's.
func (c *Container) Act(dt float32) {
	c.Actor.Act(dt)
	c.child.Act(dt)
}

// Draw lays out and draws the child, multiplying parentAlpha by the
// container's alpha.
func (c *Container) Draw(b *Batch, parentAlpha float64) {
	if !c.Visible {
		return
	}
	c.Layout()
	c.child.Draw(b, parentAlpha*c.Color.A)
}

// shapeHost holds the renderer a bordered widget draws its margins with.
// When none is supplied one is created on first draw and owned.
type shapeHost struct {
	renderer ShapeRenderer
	owned    bool
}

func (s *shapeHost) ensure() ShapeRenderer {
	if isNil(s.renderer) {
		s.renderer = NewVectorRenderer()
		s.owned = true
	}
	return s.renderer
}

// drawShapes ends b, runs fn with the renderer set up for b's target and
// transform, then begins b again. Shapes and batch draws must not interleave.
func (s *shapeHost) drawShapes(b *Batch, c Color, fn func(r ShapeRenderer)) {
	r := s.ensure()
	wasDrawing := b.IsDrawing()
	if wasDrawing {
		b.End()
	}
	r.Begin(b.Target())
	r.SetTransform(b.Transform())
	r.SetColor(c)
	fn(r)
	r.End()
	if wasDrawing {
		b.Begin()
	}
}

func (s *shapeHost) dispose(l Logger) error {
	if !s.owned {
		return nil
	}
	err := SafeDisposeRenderer(s.renderer, l)
	if err == nil && !s.renderer.IsDrawing() {
		s.renderer = nil
		s.owned = false
	}
	return err
}
