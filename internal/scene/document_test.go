package scene

import (
	"testing"

	"github.com/dshills/inkstorm/internal/geom"
)

func TestRectNormalized(t *testing.T) {
	tests := []struct {
		name string
		in   Rect
		want Rect
	}{
		{"already normal", Rect{X: 1, Y: 2, W: 3, H: 4}, Rect{X: 1, Y: 2, W: 3, H: 4}},
		{"negative width", Rect{X: 5, Y: 0, W: -3, H: 2}, Rect{X: 2, Y: 0, W: 3, H: 2}},
		{"negative height", Rect{X: 0, Y: 5, W: 2, H: -3}, Rect{X: 0, Y: 2, W: 2, H: 3}},
		{"both negative", Rect{X: 5, Y: 5, W: -5, H: -5}, Rect{X: 0, Y: 0, W: 5, H: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalized(); got != tt.want {
				t.Errorf("Normalized() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 5, H: 5}

	tests := []struct {
		name string
		p    geom.Point
		want bool
	}{
		{"inside", geom.Point{X: 12, Y: 12}, true},
		{"on edge", geom.Point{X: 10, Y: 10}, true},
		{"on far edge", geom.Point{X: 15, Y: 15}, true},
		{"outside", geom.Point{X: 16, Y: 12}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}

	// Un-normalized rectangles hit-test the same region.
	flipped := Rect{X: 15, Y: 15, W: -5, H: -5}
	if !flipped.Contains(geom.Point{X: 12, Y: 12}) {
		t.Error("flipped rect did not contain interior point")
	}
}

func TestDocumentHitTestTopmost(t *testing.T) {
	d := NewDocument()
	d.Add(Rect{X: 0, Y: 0, W: 10, H: 10})
	d.Add(Rect{X: 5, Y: 5, W: 10, H: 10}) // overlaps, added later

	i, ok := d.HitTest(geom.Point{X: 7, Y: 7})
	if !ok || i != 1 {
		t.Errorf("HitTest() = %d, %v; want 1, true", i, ok)
	}

	i, ok = d.HitTest(geom.Point{X: 1, Y: 1})
	if !ok || i != 0 {
		t.Errorf("HitTest() = %d, %v; want 0, true", i, ok)
	}

	if _, ok := d.HitTest(geom.Point{X: 50, Y: 50}); ok {
		t.Error("HitTest() hit empty space")
	}
}

func TestDocumentMove(t *testing.T) {
	d := NewDocument()
	d.Add(Rect{X: 1, Y: 1, W: 2, H: 2})

	d.Move(0, 3, -1)
	got := d.Rects()[0]
	if got.X != 4 || got.Y != 0 {
		t.Errorf("rect after Move = %+v, want X=4 Y=0", got)
	}

	d.Move(5, 1, 1)  // out of range: no-op
	d.Move(-1, 1, 1) // out of range: no-op
	if got := d.Rects()[0]; got.X != 4 {
		t.Errorf("out-of-range Move mutated document: %+v", got)
	}
}

func TestDocumentRectsIsCopy(t *testing.T) {
	d := NewDocument()
	d.Add(Rect{X: 1, Y: 1, W: 1, H: 1})

	cp := d.Rects()
	cp[0].X = 99
	if got := d.Rects()[0].X; got != 1 {
		t.Errorf("Rects() exposed internal slice, X = %v", got)
	}
}

func TestDocumentDraft(t *testing.T) {
	d := NewDocument()

	if _, ok := d.Draft(); ok {
		t.Fatal("empty document reported a draft")
	}

	d.SetDraft(Rect{X: 5, Y: 5, W: -2, H: -2})
	draft, ok := d.Draft()
	if !ok {
		t.Fatal("Draft() not set")
	}
	if draft.W != 2 || draft.H != 2 {
		t.Errorf("draft not normalized: %+v", draft)
	}

	d.ClearDraft()
	if _, ok := d.Draft(); ok {
		t.Error("draft survived ClearDraft")
	}
	if len(d.Rects()) != 0 {
		t.Error("draft leaked into document rects")
	}
}
