package ecs

import (
	"slices"

	"github.com/phanxgames/twig"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// WidgetData is the component attaching a twig widget to an entity. Lower
// Order values are drawn first.
type WidgetData struct {
	Widget twig.Widget
	Order  int
}

// Widget is the component type holding WidgetData.
var Widget = donburi.NewComponentType[WidgetData]()

// DisposeFailure is published when releasing a removed widget fails.
type DisposeFailure struct {
	Entity donburi.Entity
	Err    error
}

// DisposeFailedEvent is the Donburi event type for DisposeFailure.
var DisposeFailedEvent = events.NewEventType[DisposeFailure]()

var widgets = donburi.NewQuery(filter.Contains(Widget))

// AddWidget creates an entity holding w. Panics if w is nil.
func AddWidget(world donburi.World, w twig.Widget, order int) donburi.Entity {
	if w == nil {
		panic("ecs: cannot add nil widget")
	}
	e := world.Create(Widget)
	Widget.SetValue(world.Entry(e), WidgetData{Widget: w, Order: order})
	return e
}

// RemoveWidget removes the entity and disposes its widget when the widget is
// twig.Disposable. A disposal failure is published as DisposeFailedEvent.
func RemoveWidget(world donburi.World, e donburi.Entity, l twig.Logger) {
	if !world.Valid(e) {
		return
	}
	entry := world.Entry(e)
	if entry.HasComponent(Widget) {
		if d, ok := Widget.Get(entry).Widget.(twig.Disposable); ok {
			if err := twig.SafeDispose(d, l); err != nil {
				DisposeFailedEvent.Publish(world, DisposeFailure{Entity: e, Err: err})
			}
		}
	}
	world.Remove(e)
}

// ActSystem advances every widget by dt seconds.
func ActSystem(world donburi.World, dt float32) {
	widgets.Each(world, func(entry *donburi.Entry) {
		Widget.Get(entry).Widget.Act(dt)
	})
}

// DrawSystem draws every widget through b in ascending Order. Ties keep
// query order.
func DrawSystem(world donburi.World, b *twig.Batch) {
	var list []*WidgetData
	widgets.Each(world, func(entry *donburi.Entry) {
		list = append(list, Widget.Get(entry))
	})
	slices.SortStableFunc(list, func(a, b *WidgetData) int {
		return a.Order - b.Order
	})
	for _, w := range list {
		w.Widget.Draw(b, 1)
	}
}
