package twig

import (
	"github.com/tanema/gween/ease"
)

const (
	// TintGoRatio is the share of a tint's duration spent reaching the tint.
	TintGoRatio = 0.3
	// TintBackRatio is the share of a tint's duration spent reverting.
	TintBackRatio = 1 - TintGoRatio
)

// deferred builds its tween the first time it is advanced, so relative
// actions start from the values the actor has when they begin.
type deferred struct {
	build func() *TweenGroup
	group *TweenGroup
}

func (d *deferred) Act(dt float32) bool {
	if d.group == nil {
		d.group = d.build()
	}
	return d.group.Act(dt)
}

// ColorTo tweens a.Color to c, starting from the color a has when the action
// begins.
func ColorTo(a *Actor, c Color, duration float32, fn ease.TweenFunc) Action {
	return &deferred{build: func() *TweenGroup {
		return TweenColor(a, c, duration, fn)
	}}
}

// AlphaTo tweens a.Color.A to alpha.
func AlphaTo(a *Actor, alpha float64, duration float32, fn ease.TweenFunc) Action {
	return &deferred{build: func() *TweenGroup {
		return TweenAlpha(a, alpha, duration, fn)
	}}
}

// MoveTo tweens a to the absolute position (x, y).
func MoveTo(a *Actor, x, y float64, duration float32, fn ease.TweenFunc) Action {
	return &deferred{build: func() *TweenGroup {
		return TweenPosition(a, x, y, duration, fn)
	}}
}

// MoveBy tweens a by (dx, dy) relative to where it is when the action begins.
func MoveBy(a *Actor, dx, dy float64, duration float32, fn ease.TweenFunc) Action {
	return &deferred{build: func() *TweenGroup {
		return TweenPosition(a, a.X+dx, a.Y+dy, duration, fn)
	}}
}

type delay struct {
	remaining float32
}

func (d *delay) Act(dt float32) bool {
	d.remaining -= dt
	return d.remaining <= 0
}

// Delay finishes after duration seconds without touching anything.
func Delay(duration float32) Action {
	return &delay{remaining: duration}
}

type run struct {
	fn   func()
	done bool
}

func (r *run) Act(float32) bool {
	if !r.done {
		r.done = true
		r.fn()
	}
	return true
}

// Run calls fn once, the first time the action is advanced.
func Run(fn func()) Action {
	return &run{fn: fn}
}

// SequenceAction runs its actions one after another.
type SequenceAction struct {
	actions []Action
	index   int
}

// Sequence returns an action running actions in order. A step that finishes
// during a frame hands over to the next step on the following frame.
func Sequence(actions ...Action) *SequenceAction {
	return &SequenceAction{actions: actions}
}

// Len returns the number of steps.
func (s *SequenceAction) Len() int {
	return len(s.actions)
}

// Act implements Action.
func (s *SequenceAction) Act(dt float32) bool {
	if s.index >= len(s.actions) {
		return true
	}
	if s.actions[s.index].Act(dt) {
		s.index++
	}
	return s.index >= len(s.actions)
}

// ParallelAction runs its actions together and finishes when all have.
type ParallelAction struct {
	actions []Action
	done    []bool
}

// Parallel returns an action running actions simultaneously.
func Parallel(actions ...Action) *ParallelAction {
	return &ParallelAction{actions: actions, done: make([]bool, len(actions))}
}

// Act implements Action.
func (p *ParallelAction) Act(dt float32) bool {
	all := true
	for i, a := range p.actions {
		if p.done[i] {
			continue
		}
		if a.Act(dt) {
			p.done[i] = true
		} else {
			all = false
		}
	}
	return all
}

// TintAction tints a to c and back. The first step reaches c in
// duration*TintGoRatio; the second returns to the color a had when
// TintAction was called, in duration*TintBackRatio.
func TintAction(a *Actor, c Color, duration float32) *SequenceAction {
	original := a.Color
	return Sequence(
		ColorTo(a, c, duration*TintGoRatio, ease.Linear),
		ColorTo(a, original, duration*TintBackRatio, ease.Linear),
	)
}

// SlideAndBack moves a by (dx, dy) and back again, each half taking
// duration/2 with easing fn.
func SlideAndBack(a *Actor, dx, dy float64, fn ease.TweenFunc, duration float32) *SequenceAction {
	half := duration / 2
	return Sequence(
		MoveBy(a, dx, dy, half, fn),
		MoveBy(a, -dx, -dy, half, fn),
	)
}
