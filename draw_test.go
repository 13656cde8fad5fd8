package twig

import (
	"testing"
)

// --- FrameStrips ---

func TestFrameStripsCoverBorderOnly(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
	}{
		{"square", Rect{0, 0, 10, 10}},
		{"wide", Rect{5, 7, 40, 3}},
		{"tall", Rect{-3, 2, 2, 30}},
		{"minimal", Rect{0, 0, 2, 2}},
		{"one wide", Rect{0, 0, 1, 5}},
		{"one high", Rect{0, 0, 5, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strips := FrameStrips(tt.r)
			inner := tt.r.Inset(1, 1, 1, 1)

			var area float64
			for i, s := range strips {
				if s.Width <= 0 || s.Height <= 0 {
					continue
				}
				if s.Width != 1 && s.Height != 1 {
					t.Errorf("strip %d is not 1 unit thick: %v", i, s)
				}
				if !tt.r.Contains(s.X, s.Y) || !tt.r.Contains(s.X+s.Width, s.Y+s.Height) {
					t.Errorf("strip %d %v leaves %v", i, s, tt.r)
				}
				if inner.Width > 0 && inner.Height > 0 && s.Overlaps(inner) {
					t.Errorf("strip %d %v overlaps inner area %v", i, s, inner)
				}
				for j := i + 1; j < len(strips); j++ {
					if s.Overlaps(strips[j]) {
						t.Errorf("strips %d and %d overlap: %v %v", i, j, s, strips[j])
					}
				}
				area += s.Area()
			}
			// Non-overlapping strips inside r covering everything but the
			// inner area form exactly the border.
			want := tt.r.Area() - max(0, inner.Width)*max(0, inner.Height)
			if !approx(area, want) {
				t.Errorf("strip area = %v, want %v", area, want)
			}
		})
	}
}

func TestFrameStripsDegenerate(t *testing.T) {
	strips := FrameStrips(Rect{0, 0, 5, 1})
	if strips[0].Height != 1 {
		t.Errorf("top = %v, want height 1", strips[0])
	}
	for i := 1; i < 4; i++ {
		if strips[i].Height != 0 {
			t.Errorf("strip %d = %v, want empty", i, strips[i])
		}
	}

	strips = FrameStrips(Rect{0, 0, 1, 5})
	if strips[2].Width != 1 || strips[3].Width != 0 {
		t.Errorf("left = %v, right = %v, want only the left strip", strips[2], strips[3])
	}
	strips = FrameStrips(Rect{0, 0, -2, 5})
	for i, s := range strips {
		if s.Width != 0 {
			t.Errorf("strip %d = %v, want empty for a negative width", i, s)
		}
	}
}

// --- DrawRect / DrawFrame ---

func TestDrawRectStretchesAndRestoresTint(t *testing.T) {
	target := &recordingTarget{}
	b := NewBatch(target)
	tex := NewWhiteTexture()
	defer tex.Deallocate()

	prev := Color{0.5, 0.5, 0.5, 1}
	b.SetColor(prev)
	b.Begin()
	DrawRect(b, tex, Rect{10, 20, 30, 40}, Color{1, 0, 0, 1})
	b.End()

	if len(target.draws) != 1 {
		t.Fatalf("draws = %d, want 1", len(target.draws))
	}
	if got := target.draws[0].rect(); got != (Rect{10, 20, 30, 40}) {
		t.Errorf("rect = %v", got)
	}
	if got := target.draws[0].scale(); got != [4]float32{1, 0, 0, 1} {
		t.Errorf("color scale = %v, want red", got)
	}
	if b.Color() != prev {
		t.Errorf("tint = %v, want restored %v", b.Color(), prev)
	}
}

func TestDrawFrameDrawsFourStrips(t *testing.T) {
	target := &recordingTarget{}
	b := NewBatch(target)
	tex := NewWhiteTexture()
	defer tex.Deallocate()

	r := Rect{0, 0, 8, 6}
	b.Begin()
	DrawFrame(b, tex, r, Color{0, 1, 0, 1})
	b.End()

	if len(target.draws) != 4 {
		t.Fatalf("draws = %d, want 4", len(target.draws))
	}
	want := FrameStrips(r)
	for i, d := range target.draws {
		got := d.rect()
		if !approx(got.X, want[i].X) || !approx(got.Y, want[i].Y) ||
			!approx(got.Width, want[i].Width) || !approx(got.Height, want[i].Height) {
			t.Errorf("strip %d = %v, want %v", i, got, want[i])
		}
	}
	if b.Color() != ColorWhite {
		t.Errorf("tint = %v, want white", b.Color())
	}
}
