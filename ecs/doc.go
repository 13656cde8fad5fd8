// Package ecs keeps twig widgets in a [Donburi] world.
//
// Attach a widget to an entity with [AddWidget], then run [ActSystem] from
// Update and [DrawSystem] from Draw:
//
//	world := donburi.NewWorld()
//	ecs.AddWidget(world, box, 0)
//
//	func (g *Game) Update() error {
//		ecs.ActSystem(g.world, 1.0/60)
//		return nil
//	}
//
// [RemoveWidget] releases the widget if it is [twig.Disposable]. Failures are
// published as [DisposeFailedEvent] rather than returned to the system loop.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
