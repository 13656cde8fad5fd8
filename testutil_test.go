package twig

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Recording doubles shared by the package tests ---

type drawCall struct {
	img *ebiten.Image
	op  ebiten.DrawImageOptions
}

// rect returns the destination rectangle the call covers.
func (c drawCall) rect() Rect {
	b := c.img.Bounds()
	x0, y0 := c.op.GeoM.Apply(0, 0)
	x1, y1 := c.op.GeoM.Apply(float64(b.Dx()), float64(b.Dy()))
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// scale returns the premultiplied color scale of the call.
func (c drawCall) scale() [4]float32 {
	cs := c.op.ColorScale
	return [4]float32{cs.R(), cs.G(), cs.B(), cs.A()}
}

type recordingTarget struct {
	draws     []drawCall
	triangles int
}

func (r *recordingTarget) DrawImage(img *ebiten.Image, op *ebiten.DrawImageOptions) {
	r.draws = append(r.draws, drawCall{img: img, op: *op})
}

func (r *recordingTarget) DrawTriangles(_ []ebiten.Vertex, _ []uint16, _ *ebiten.Image, _ *ebiten.DrawTrianglesOptions) {
	r.triangles++
}

type shapeCall struct {
	kind  string // "rect" or "sector"
	rect  Rect
	color Color
}

// fakeRenderer is a ShapeRenderer that records what it is asked to draw and
// whether the host batch was drawing when Begin was called.
type fakeRenderer struct {
	batch        *Batch
	calls        []shapeCall
	color        Color
	geoM         ebiten.GeoM
	drawing      bool
	begins       int
	batchDrawing []bool
	disposed     int
	disposeErr   error
}

func (f *fakeRenderer) Begin(Target) {
	f.begins++
	f.drawing = true
	if f.batch != nil {
		f.batchDrawing = append(f.batchDrawing, f.batch.IsDrawing())
	}
}

func (f *fakeRenderer) SetTransform(g ebiten.GeoM) { f.geoM = g }
func (f *fakeRenderer) SetColor(c Color)          { f.color = c }

func (f *fakeRenderer) Rect(x, y, w, h float64) {
	f.calls = append(f.calls, shapeCall{kind: "rect", rect: Rect{x, y, w, h}, color: f.color})
}

func (f *fakeRenderer) Sector(cx, cy, radius, _, _ float64) {
	f.calls = append(f.calls, shapeCall{kind: "sector", rect: Rect{cx, cy, radius, radius}, color: f.color})
}

func (f *fakeRenderer) End()            { f.drawing = false }
func (f *fakeRenderer) IsDrawing() bool { return f.drawing }

func (f *fakeRenderer) Dispose() error {
	f.disposed++
	return f.disposeErr
}

func (f *fakeRenderer) rects() []Rect {
	var out []Rect
	for _, c := range f.calls {
		if c.kind == "rect" {
			out = append(out, c.rect)
		}
	}
	return out
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-3
}

func approxColor(a, b Color) bool {
	return approx(a.R, b.R) && approx(a.G, b.G) && approx(a.B, b.B) && approx(a.A, b.A)
}
