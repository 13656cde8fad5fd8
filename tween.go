package twig

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Action is a time-driven change applied to an actor. Act advances it by dt
// seconds and reports whether it has finished.
type Action interface {
	Act(dt float32) bool
}

// TweenGroup animates up to 4 float64 fields simultaneously. Create one via
// the constructors (TweenPosition, TweenColor, TweenAlpha) and either call
// Update each frame or hand it to Actor.AddAction.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Act implements Action.
func (g *TweenGroup) Act(dt float32) bool {
	g.Update(dt)
	return g.Done
}

func (g *TweenGroup) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.count++
}

// TweenPosition animates a.X and a.Y to the given coordinates.
func TweenPosition(a *Actor, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(&a.X, toX, duration, fn)
	g.add(&a.Y, toY, duration, fn)
	return g
}

// TweenColor animates all four components of a.Color to the target color.
func TweenColor(a *Actor, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(&a.Color.R, to.R, duration, fn)
	g.add(&a.Color.G, to.G, duration, fn)
	g.add(&a.Color.B, to.B, duration, fn)
	g.add(&a.Color.A, to.A, duration, fn)
	return g
}

// TweenAlpha animates a.Color.A to the target value.
func TweenAlpha(a *Actor, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(&a.Color.A, to, duration, fn)
	return g
}

// TweenSize animates a.Width and a.Height.
func TweenSize(a *Actor, toW, toH float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(&a.Width, toW, duration, fn)
	g.add(&a.Height, toH, duration, fn)
	return g
}
