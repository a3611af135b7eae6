package tools

import (
	"github.com/dshills/inkstorm/internal/geom"
	"github.com/dshills/inkstorm/internal/input/pointer"
	"github.com/dshills/inkstorm/internal/scene"
	"github.com/dshills/inkstorm/internal/tool"
)

// Rect draws a rectangle by dragging out its diagonal. A press that never
// becomes a drag commits nothing.
type Rect struct {
	tool.Base

	doc      *scene.Document
	viewport *scene.Viewport

	start   geom.Point
	drawing bool
}

// NewRect returns a constructor for the rect tool.
func NewRect(doc *scene.Document, viewport *scene.Viewport) tool.Constructor {
	return func() tool.Tool {
		return &Rect{doc: doc, viewport: viewport}
	}
}

// Name implements tool.Tool.
func (r *Rect) Name() string { return tool.TypeRect }

// Cursor implements tool.Tool.
func (r *Rect) Cursor() string { return "crosshair" }

// OnStart records the scene-space anchor of the rectangle.
func (r *Rect) OnStart(ev pointer.Event) {
	r.start = r.viewport.ToScene(ev.Pos.X, ev.Pos.Y)
	r.drawing = true
}

// OnDrag updates the draft rectangle spanning anchor to pointer.
func (r *Rect) OnDrag(ev pointer.Event) {
	if !r.drawing {
		return
	}
	p := r.viewport.ToScene(ev.Pos.X, ev.Pos.Y)
	r.doc.SetDraft(scene.Rect{
		X: r.start.X,
		Y: r.start.Y,
		W: p.X - r.start.X,
		H: p.Y - r.start.Y,
	})
}

// OnEnd commits the draft when the press became a drag.
func (r *Rect) OnEnd(ev pointer.Event, dragged bool) {
	if !r.drawing {
		return
	}
	if dragged {
		p := r.viewport.ToScene(ev.Pos.X, ev.Pos.Y)
		r.doc.Add(scene.Rect{
			X: r.start.X,
			Y: r.start.Y,
			W: p.X - r.start.X,
			H: p.Y - r.start.Y,
		})
	}
}

// AfterEnd clears the draft and press state.
func (r *Rect) AfterEnd(pointer.Event) {
	r.doc.ClearDraft()
	r.drawing = false
}

// OnInactive clears any in-progress draft.
func (r *Rect) OnInactive() error {
	r.doc.ClearDraft()
	return nil
}
