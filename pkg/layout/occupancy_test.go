package layout

import (
	"testing"

	"github.com/cptiwari20/ai-learning-sub000/pkg/canvas"
)

func rect(x, y, w, h float64) canvas.Element {
	return canvas.Element{Kind: canvas.KindRectangle, X: x, Y: y, Width: w, Height: h}
}

func TestIndexOverlaps(t *testing.T) {
	ix := NewIndex([]canvas.Element{rect(0, 0, 100, 100)})

	tests := []struct {
		name      string
		candidate canvas.Box
		padding   float64
		want      bool
	}{
		{"direct overlap", canvas.Box{Left: 50, Top: 50, Right: 150, Bottom: 150}, 0, true},
		{"clear of box", canvas.Box{Left: 300, Top: 0, Right: 400, Bottom: 100}, 0, false},
		{"clear without padding", canvas.Box{Left: 110, Top: 0, Right: 210, Bottom: 100}, 0, false},
		{"too close with padding", canvas.Box{Left: 110, Top: 0, Right: 210, Bottom: 100}, 20, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ix.Overlaps(tt.candidate, tt.padding); got != tt.want {
				t.Errorf("Overlaps(%+v, %g) = %v, want %v", tt.candidate, tt.padding, got, tt.want)
			}
		})
	}
}

func TestIndexExtent(t *testing.T) {
	ix := NewIndex(nil)
	if _, ok := ix.Extent(); ok {
		t.Error("Extent() of an empty index should report ok=false")
	}

	ix = NewIndex([]canvas.Element{
		rect(10, 20, 100, 50),
		rect(300, 200, 50, 50),
	})
	extent, ok := ix.Extent()
	if !ok {
		t.Fatal("Extent() ok = false, want true")
	}
	want := canvas.Box{Left: 10, Top: 20, Right: 350, Bottom: 250}
	if extent != want {
		t.Errorf("Extent() = %+v, want %+v", extent, want)
	}
}

func TestIndexLen(t *testing.T) {
	ix := NewIndex([]canvas.Element{rect(0, 0, 10, 10), rect(20, 0, 10, 10)})
	if got := ix.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}
