// Package twig is a small set of helpers for drawing 2D user interfaces with
// [Ebitengine].
//
// Twig does not own a render loop. Widgets are drawn through a [Batch], which
// wraps the screen (or any [Target]) with a tint and a transform:
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		b := twig.NewBatch(screen)
//		b.Begin()
//		g.box.Draw(b, 1)
//		b.End()
//	}
//
// # Drawing helpers
//
// [NewWhiteTexture] creates a 1x1 white texture; [DrawRect] and [DrawFrame]
// stretch it into filled rectangles and 1-unit outlines, restoring the batch
// tint afterwards.
//
// # Widgets
//
// Every widget embeds an [Actor] (position, size, tint, running actions).
// Containers wrap a child [Widget] instead of inheriting from it:
//
//   - [Borderer] draws margins with square, missing or rounded corners.
//   - [Liner] draws lines along selected edges.
//   - [AnimatedActor] plays an [Animation].
//   - [RegionActor] draws an image region.
//   - [FixedWidthText] wraps [ColoredString] lines at a fixed width and
//     computes its height.
//
// Regions and animation frames usually come from an [Atlas] loaded from
// TexturePacker JSON with [LoadAtlas].
//
// Bordered widgets draw with a [ShapeRenderer]. Pass one to share it, or pass
// nil and call Dispose when done.
//
// # Actions
//
// Actions are advanced by [Actor.Act]. [TintAction] and [SlideAndBack] build
// two-step sequences from [ColorTo] and [MoveBy], which tween with [gween].
//
// # Resources
//
// [SafeDispose] and [DisposeAll] release resources without letting a failure
// escape; failures are logged to an injected [Logger] and returned.
//
// See the rng and sound subpackages for the random-number service and the
// sound store. The ecs module drives widgets from a Donburi world.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package twig
