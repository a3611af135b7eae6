package tools

import (
	"github.com/dshills/inkstorm/internal/geom"
	"github.com/dshills/inkstorm/internal/input/pointer"
	"github.com/dshills/inkstorm/internal/scene"
	"github.com/dshills/inkstorm/internal/tool"
)

// Pan scrolls the viewport while dragging. Dragging the pointer right moves
// the scene right, so the origin shifts by the negated delta.
type Pan struct {
	tool.Base

	viewport *scene.Viewport

	lastPos geom.Point
	panning bool
}

// NewPan returns a constructor for the pan tool.
func NewPan(viewport *scene.Viewport) tool.Constructor {
	return func() tool.Tool {
		return &Pan{viewport: viewport}
	}
}

// Name implements tool.Tool.
func (p *Pan) Name() string { return tool.TypePan }

// Cursor implements tool.Tool.
func (p *Pan) Cursor() string { return "grab" }

// OnStart records the press position in screen space.
func (p *Pan) OnStart(ev pointer.Event) {
	p.lastPos = ev.Pos
	p.panning = true
}

// OnDrag scrolls the viewport by the screen-space delta.
func (p *Pan) OnDrag(ev pointer.Event) {
	if !p.panning {
		return
	}
	d := ev.Pos.Delta(p.lastPos)
	p.viewport.Scroll(-d.X, -d.Y)
	p.lastPos = ev.Pos
}

// AfterEnd ends the pan.
func (p *Pan) AfterEnd(pointer.Event) {
	p.panning = false
}
