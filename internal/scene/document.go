// Package scene provides the minimal document and viewport model used by the
// demo editor. It exists to exercise the tool arbitration core end to end;
// it is not a general scene graph.
package scene

import (
	"sync"

	"github.com/dshills/inkstorm/internal/geom"
)

// Rect is an axis-aligned rectangle in scene coordinates.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Normalized returns the rectangle with non-negative width and height.
func (r Rect) Normalized() Rect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p geom.Point) bool {
	n := r.Normalized()
	return p.X >= n.X && p.X <= n.X+n.W && p.Y >= n.Y && p.Y <= n.Y+n.H
}

// Document holds the demo scene content.
type Document struct {
	mu    sync.RWMutex
	rects []Rect

	// draft is the rectangle being drawn by the rect tool, if any.
	draft    Rect
	hasDraft bool
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Add appends a rectangle to the document.
func (d *Document) Add(r Rect) {
	d.mu.Lock()
	d.rects = append(d.rects, r.Normalized())
	d.mu.Unlock()
}

// Rects returns a copy of the document's rectangles.
func (d *Document) Rects() []Rect {
	d.mu.RLock()
	defer d.mu.RUnlock()

	cp := make([]Rect, len(d.rects))
	copy(cp, d.rects)
	return cp
}

// HitTest returns the index of the topmost rectangle containing p.
func (d *Document) HitTest(p geom.Point) (int, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for i := len(d.rects) - 1; i >= 0; i-- {
		if d.rects[i].Contains(p) {
			return i, true
		}
	}
	return 0, false
}

// Move translates the rectangle at index i by (dx, dy).
func (d *Document) Move(i int, dx, dy float64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if i < 0 || i >= len(d.rects) {
		return
	}
	d.rects[i].X += dx
	d.rects[i].Y += dy
}

// SetDraft sets the in-progress rectangle shown while drawing.
func (d *Document) SetDraft(r Rect) {
	d.mu.Lock()
	d.draft = r.Normalized()
	d.hasDraft = true
	d.mu.Unlock()
}

// ClearDraft removes the in-progress rectangle.
func (d *Document) ClearDraft() {
	d.mu.Lock()
	d.hasDraft = false
	d.mu.Unlock()
}

// Draft returns the in-progress rectangle, if any.
func (d *Document) Draft() (Rect, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.draft, d.hasDraft
}
