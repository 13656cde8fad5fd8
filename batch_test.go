package twig

import (
	"testing"
)

// --- Batch ---

func TestBatchBeginEndPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(b *Batch)
	}{
		{"end without begin", func(b *Batch) { b.End() }},
		{"double begin", func(b *Batch) { b.Begin(); b.Begin() }},
		{"draw outside begin", func(b *Batch) { b.Draw(nil, 0, 0, 1, 1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn(NewBatch(&recordingTarget{}))
		})
	}
}

func TestBatchTransformApplies(t *testing.T) {
	target := &recordingTarget{}
	b := NewBatch(target)
	tex := NewWhiteTexture()
	defer tex.Deallocate()

	g := b.Transform()
	g.Translate(100, 50)
	b.SetTransform(g)
	b.Begin()
	b.Draw(tex, 1, 2, 3, 4)
	b.End()

	if got := target.draws[0].rect(); got != (Rect{101, 52, 3, 4}) {
		t.Errorf("rect = %v, want translated", got)
	}
}

func TestBatchPremultipliesTint(t *testing.T) {
	target := &recordingTarget{}
	b := NewBatch(target)
	tex := NewWhiteTexture()
	defer tex.Deallocate()

	b.SetColor(Color{1, 0.5, 0, 0.5})
	b.Begin()
	b.Draw(tex, 0, 0, 1, 1)
	b.End()

	if got := target.draws[0].scale(); got != [4]float32{0.5, 0.25, 0, 0.5} {
		t.Errorf("color scale = %v", got)
	}
}

func TestNewBatchNilTargetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewBatch(nil)
}
