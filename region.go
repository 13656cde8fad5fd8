package twig

import "github.com/hajimehoshi/ebiten/v2"

// RegionActor draws an image region stretched to its bounds.
type RegionActor struct {
	Actor

	// Region is the image to draw. Typically a SubImage of an atlas page.
	Region *ebiten.Image
}

// NewRegionActor creates a w x h actor drawing region.
func NewRegionActor(name string, w, h float64, region *ebiten.Image) *RegionActor {
	a := &RegionActor{Region: region}
	actorDefaults(&a.Actor, name)
	a.SetSize(w, h)
	return a
}

// Draw draws the region tinted with the actor color, then restores the
// batch tint it found.
func (a *RegionActor) Draw(b *Batch, parentAlpha float64) {
	if !a.Visible || a.Region == nil {
		return
	}
	prev := b.Color()
	b.SetColor(a.Color.WithAlpha(parentAlpha))
	b.Draw(a.Region, a.X, a.Y, a.Width, a.Height)
	b.SetColor(prev)
}
