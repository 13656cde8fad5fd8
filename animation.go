package twig

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// PlayMode controls how an Animation maps elapsed time to a frame.
type PlayMode uint8

const (
	PlayNormal       PlayMode = iota // play once, hold the last frame
	PlayReversed                     // play once backwards, hold the first frame
	PlayLoop                         // restart from the first frame
	PlayLoopReversed                 // restart backwards
	PlayLoopPingPong                 // forwards then backwards, repeatedly
)

// Animation is a list of frames shown for FrameDuration seconds each.
type Animation struct {
	Frames        []*ebiten.Image
	FrameDuration float64
	Mode          PlayMode
}

// NewAnimation creates an animation over frames.
func NewAnimation(frameDuration float64, mode PlayMode, frames ...*ebiten.Image) *Animation {
	return &Animation{Frames: frames, FrameDuration: frameDuration, Mode: mode}
}

// FrameIndex returns the index of the frame to show after stateTime seconds.
func (a *Animation) FrameIndex(stateTime float64) int {
	n := len(a.Frames)
	if n <= 1 || a.FrameDuration <= 0 {
		return 0
	}
	i := int(math.Floor(stateTime / a.FrameDuration))
	if i < 0 {
		i = 0
	}
	switch a.Mode {
	case PlayNormal:
		return min(i, n-1)
	case PlayReversed:
		return max(n-i-1, 0)
	case PlayLoop:
		return i % n
	case PlayLoopReversed:
		return n - i%n - 1
	case PlayLoopPingPong:
		i %= n*2 - 2
		if i >= n {
			i = n - 2 - (i - n)
		}
		return i
	}
	return min(i, n-1)
}

// KeyFrame returns the frame to show after stateTime seconds, or nil when the
// animation has no frames.
func (a *Animation) KeyFrame(stateTime float64) *ebiten.Image {
	if len(a.Frames) == 0 {
		return nil
	}
	return a.Frames[a.FrameIndex(stateTime)]
}

// Finished reports whether a non-looping animation has reached its end.
func (a *Animation) Finished(stateTime float64) bool {
	switch a.Mode {
	case PlayNormal, PlayReversed:
		if a.FrameDuration <= 0 {
			return true
		}
		return stateTime/a.FrameDuration >= float64(len(a.Frames))
	}
	return false
}

// AnimatedActor draws the current frame of an Animation stretched to its
// bounds, tinted with the actor color.
type AnimatedActor struct {
	Actor

	Animation *Animation

	stateTime float64
}

// NewAnimatedActor creates an actor playing anim.
func NewAnimatedActor(name string, anim *Animation) *AnimatedActor {
	a := &AnimatedActor{Animation: anim}
	actorDefaults(&a.Actor, name)
	return a
}

// StateTime returns the seconds elapsed since the animation started.
func (a *AnimatedActor) StateTime() float64 {
	return a.stateTime
}

// Reset restarts the animation.
func (a *AnimatedActor) Reset() {
	a.stateTime = 0
}

// Act advances the animation clock and the actor's actions.
func (a *AnimatedActor) Act(dt float32) {
	a.stateTime += float64(dt)
	a.Actor.Act(dt)
}

// Draw draws the current frame and restores the batch tint to white.
func (a *AnimatedActor) Draw(b *Batch, parentAlpha float64) {
	if !a.Visible || a.Animation == nil {
		return
	}
	frame := a.Animation.KeyFrame(a.stateTime)
	if frame == nil {
		return
	}
	b.SetColor(a.Color.WithAlpha(parentAlpha))
	b.Draw(frame, a.X, a.Y, a.Width, a.Height)
	b.SetColor(ColorWhite)
}
