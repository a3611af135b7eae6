package tools

import (
	"github.com/dshills/inkstorm/internal/geom"
	"github.com/dshills/inkstorm/internal/input/pointer"
	"github.com/dshills/inkstorm/internal/scene"
	"github.com/dshills/inkstorm/internal/tool"
)

// Select hit-tests the scene on press and moves the hit rectangle while
// dragging.
type Select struct {
	tool.Base

	doc      *scene.Document
	viewport *scene.Viewport

	hit     int
	hasHit  bool
	lastPos geom.Point
}

// NewSelect returns a constructor for the select tool.
func NewSelect(doc *scene.Document, viewport *scene.Viewport) tool.Constructor {
	return func() tool.Tool {
		return &Select{doc: doc, viewport: viewport}
	}
}

// Name implements tool.Tool.
func (s *Select) Name() string { return tool.TypeSelect }

// Cursor implements tool.Tool.
func (s *Select) Cursor() string { return "default" }

// OnStart hit-tests the press position.
func (s *Select) OnStart(ev pointer.Event) {
	p := s.viewport.ToScene(ev.Pos.X, ev.Pos.Y)
	s.hit, s.hasHit = s.doc.HitTest(p)
	s.lastPos = p
}

// OnDrag moves the hit rectangle by the pointer delta.
func (s *Select) OnDrag(ev pointer.Event) {
	if !s.hasHit {
		return
	}
	p := s.viewport.ToScene(ev.Pos.X, ev.Pos.Y)
	d := p.Delta(s.lastPos)
	s.doc.Move(s.hit, d.X, d.Y)
	s.lastPos = p
}

// AfterEnd drops the hit reference.
func (s *Select) AfterEnd(pointer.Event) {
	s.hasHit = false
}
