package twig

// Widget is a drawable, positioned, sized element. Concrete widgets embed an
// Actor and override the methods they need; containers hold a Widget child
// rather than inheriting from it.
type Widget interface {
	Base() *Actor
	SetPosition(x, y float64)
	SetSize(w, h float64)
	// PrefSize is the size the widget would like when packed.
	PrefSize() (w, h float64)
	Act(dt float32)
	Draw(b *Batch, parentAlpha float64)
}

// Actor holds the state shared by every widget: placement, tint, visibility
// and the running actions. An Actor on its own draws nothing.
type Actor struct {
	Name string

	X, Y          float64
	Width, Height float64

	// Color tints whatever the widget draws. Alpha multiplies the parent alpha.
	Color   Color
	Visible bool

	actions []Action
	acting  bool
	cleared bool
}

// NewActor creates an actor with a white tint, visible, at the origin.
func NewActor(name string) *Actor {
	a := &Actor{}
	actorDefaults(a, name)
	return a
}

func actorDefaults(a *Actor, name string) {
	a.Name = name
	a.Color = ColorWhite
	a.Visible = true
}

// Base returns a itself; it lets embedding widgets satisfy Widget.
func (a *Actor) Base() *Actor {
	return a
}

// SetPosition moves the actor.
func (a *Actor) SetPosition(x, y float64) {
	a.X = x
	a.Y = y
}

// SetSize resizes the actor.
func (a *Actor) SetSize(w, h float64) {
	a.Width = w
	a.Height = h
}

// PrefSize returns the current size.
func (a *Actor) PrefSize() (w, h float64) {
	return a.Width, a.Height
}

// Bounds returns the actor's rectangle.
func (a *Actor) Bounds() Rect {
	return Rect{a.X, a.Y, a.Width, a.Height}
}

// Draw does nothing; widgets override it.
func (a *Actor) Draw(*Batch, float64) {}

// AddAction schedules act. It is advanced by Act until it reports completion.
func (a *Actor) AddAction(act Action) {
	if act == nil {
		panic("twig: cannot add nil action")
	}
	a.actions = append(a.actions, act)
}

// HasActions reports whether any action is still running.
func (a *Actor) HasActions() bool {
	return len(a.actions) > 0
}

// ClearActions drops every pending action without finishing it. Called from
// inside an action, it also stops the actions not yet advanced this frame.
func (a *Actor) ClearActions() {
	clear(a.actions)
	a.actions = a.actions[:0]
	if a.acting {
		a.cleared = true
	}
}

// Act advances every running action by dt seconds and drops the finished ones.
// Actions may add or clear actions on their own actor; added actions first
// run on the next call.
func (a *Actor) Act(dt float32) {
	if len(a.actions) == 0 || a.acting {
		return
	}
	pending := a.actions
	a.actions = nil
	a.acting, a.cleared = true, false
	defer func() { a.acting = false }()

	kept := pending[:0]
	for _, act := range pending {
		if a.cleared {
			break
		}
		if act != nil && !act.Act(dt) {
			kept = append(kept, act)
		}
	}
	if a.cleared {
		kept = kept[:0]
	}
	added := a.actions
	clear(pending[len(kept):])
	a.actions = append(kept, added...)
}
