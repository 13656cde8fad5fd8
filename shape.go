package twig

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// ShapeRenderer draws filled primitives between Begin and End. Borderer and
// Liner use one to draw their margins; a renderer can be shared between
// widgets or left nil so the widget creates and owns one.
type ShapeRenderer interface {
	Begin(dst Target)
	SetTransform(g ebiten.GeoM)
	SetColor(c Color)
	Rect(x, y, w, h float64)
	// Sector fills a circular sector centered on (cx, cy) from angle start,
	// sweeping by sweep radians.
	Sector(cx, cy, radius, start, sweep float64)
	End()
	IsDrawing() bool
	Dispose() error
}

// sectorSegments is the number of triangles used for a quarter turn.
const sectorSegments = 8

// maxShapeVerts keeps indices within uint16 range.
const maxShapeVerts = math.MaxUint16 - 4

// VectorRenderer is a ShapeRenderer that accumulates triangles and submits
// them in one DrawTriangles call at End.
type VectorRenderer struct {
	tex     *ebiten.Image
	dst     Target
	geoM    ebiten.GeoM
	color   Color
	drawing bool

	verts []ebiten.Vertex
	inds  []uint16
}

// NewVectorRenderer creates a renderer owning a 1x1 white texture. Call
// Dispose to release it.
func NewVectorRenderer() *VectorRenderer {
	return &VectorRenderer{tex: NewWhiteTexture(), color: ColorWhite}
}

// Begin starts collecting shapes for dst.
func (r *VectorRenderer) Begin(dst Target) {
	if r.tex == nil {
		panic("twig: VectorRenderer used after Dispose")
	}
	if r.drawing {
		panic("twig: VectorRenderer.End must be called before Begin")
	}
	r.dst = dst
	r.drawing = true
}

// SetTransform sets the transform applied to subsequent shapes.
func (r *VectorRenderer) SetTransform(g ebiten.GeoM) {
	r.geoM = g
}

// SetColor sets the fill color for subsequent shapes.
func (r *VectorRenderer) SetColor(c Color) {
	r.color = c
}

// IsDrawing reports whether the renderer is between Begin and End.
func (r *VectorRenderer) IsDrawing() bool {
	return r.drawing
}

// Rect fills the rectangle (x, y, w, h).
func (r *VectorRenderer) Rect(x, y, w, h float64) {
	r.reserve(4)
	base := uint16(len(r.verts))
	r.vertex(x, y)
	r.vertex(x+w, y)
	r.vertex(x, y+h)
	r.vertex(x+w, y+h)
	// Two triangles: TL-TR-BL, TR-BR-BL
	r.inds = append(r.inds,
		base+0, base+1, base+2,
		base+1, base+3, base+2,
	)
}

// Sector fills a circular sector as a triangle fan.
func (r *VectorRenderer) Sector(cx, cy, radius, start, sweep float64) {
	segs := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2) * sectorSegments))
	if segs < 1 {
		segs = 1
	}
	r.reserve(segs + 2)
	hub := uint16(len(r.verts))
	r.vertex(cx, cy)
	for i := 0; i <= segs; i++ {
		a := start + sweep*float64(i)/float64(segs)
		r.vertex(cx+radius*math.Cos(a), cy+radius*math.Sin(a))
	}
	for i := 0; i < segs; i++ {
		r.inds = append(r.inds, hub, hub+uint16(i)+1, hub+uint16(i)+2)
	}
}

// End submits the accumulated shapes.
func (r *VectorRenderer) End() {
	if !r.drawing {
		panic("twig: VectorRenderer.Begin must be called before End")
	}
	r.flush()
	r.drawing = false
	r.dst = nil
}

// Dispose releases the renderer's texture. It is safe to call more than once.
func (r *VectorRenderer) Dispose() error {
	if r.tex == nil {
		return nil
	}
	r.tex.Deallocate()
	r.tex = nil
	r.verts = nil
	r.inds = nil
	return nil
}

func (r *VectorRenderer) reserve(n int) {
	if !r.drawing {
		panic("twig: VectorRenderer.Begin must be called before drawing")
	}
	if len(r.verts)+n > maxShapeVerts {
		r.flush()
	}
}

func (r *VectorRenderer) vertex(x, y float64) {
	dx, dy := r.geoM.Apply(x, y)
	a := float32(r.color.A)
	r.verts = append(r.verts, ebiten.Vertex{
		DstX:   float32(dx),
		DstY:   float32(dy),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(r.color.R) * a,
		ColorG: float32(r.color.G) * a,
		ColorB: float32(r.color.B) * a,
		ColorA: a,
	})
}

func (r *VectorRenderer) flush() {
	if len(r.verts) == 0 {
		return
	}
	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	r.dst.DrawTriangles(r.verts, r.inds, r.tex, &op)
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
}
