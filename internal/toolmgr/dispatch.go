package toolmgr

import (
	"github.com/dshills/inkstorm/internal/input/pointer"
	"github.com/dshills/inkstorm/internal/tool"
)

// PointerDown feeds a raw pointer-down event into the drag classifier.
// Press handling is deferred by one scheduling tick; see the pointer package.
func (m *Manager) PointerDown(ev pointer.Event) {
	m.classifier.PointerDown(ev)
}

// PointerMove feeds a raw pointer-move event into the drag classifier.
func (m *Manager) PointerMove(ev pointer.Event) {
	m.classifier.PointerMove(ev)
}

// PointerUp feeds a raw pointer-up event into the drag classifier.
func (m *Manager) PointerUp(ev pointer.Event) {
	m.classifier.PointerUp(ev)
}

// PressStart implements pointer.Sink. Dispatching a press with no active
// tool is a fatal precondition violation.
func (m *Manager) PressStart(ev pointer.Event) error {
	m.trackPoint(ev)

	t := m.activeTool()
	if t == nil {
		m.logger.Error("pointer press dispatched with no active tool")
		return ErrNoActiveTool
	}
	t.OnStart(ev)
	return nil
}

// DragBegin implements pointer.Sink. On the threshold-crossing move the
// switch gate closes and the competing pan gesture is suppressed for the
// duration of the drag.
func (m *Manager) DragBegin(ev pointer.Event) {
	m.trackPoint(ev)

	m.mu.Lock()
	m.gateOpen = false
	m.mu.Unlock()

	if m.pan != nil {
		m.pan.DisableDragBySpace()
	}
	if t := m.activeTool(); t != nil {
		t.OnDrag(ev)
	}
}

// DragMove implements pointer.Sink.
func (m *Manager) DragMove(ev pointer.Event) {
	m.trackPoint(ev)

	if t := m.activeTool(); t != nil {
		t.OnDrag(ev)
	}
}

// PressEnd implements pointer.Sink. The tool receives OnEnd then AfterEnd,
// the switch gate reopens, and the pan gesture is re-enabled.
func (m *Manager) PressEnd(ev pointer.Event, dragged bool) {
	m.trackPoint(ev)

	if t := m.activeTool(); t != nil {
		t.OnEnd(ev, dragged)
		t.AfterEnd(ev)
	}

	m.mu.Lock()
	m.gateOpen = true
	m.mu.Unlock()

	if m.pan != nil {
		m.pan.EnableDragBySpace()
	}
}

// HoverMove implements pointer.Sink. Hover dispatch is separate from drag
// dispatch and carries the outside-canvas flag for cursor suppression.
func (m *Manager) HoverMove(ev pointer.Event, outside bool) {
	m.trackPoint(ev)

	if t := m.activeTool(); t != nil {
		t.OnMoveExcludeDrag(ev, outside)
	}
}

// GateReset implements pointer.Sink. A pointer-up that did not begin with
// the primary button unconditionally reopens the switch gate.
func (m *Manager) GateReset() {
	m.mu.Lock()
	m.gateOpen = true
	m.mu.Unlock()
}

// OnCommandChange forwards a command-system change notification to the
// active tool when it observes commands.
func (m *Manager) OnCommandChange() {
	if t, ok := m.activeTool().(tool.CommandObserver); ok {
		t.OnCommandChange()
	}
}

// OnSpaceToggle forwards the spacebar-held toggle to the active tool when it
// observes it.
func (m *Manager) OnSpaceToggle(pressed bool) {
	if t, ok := m.activeTool().(tool.SpaceObserver); ok {
		t.OnSpaceToggle(pressed)
	}
}

// OnAltToggle forwards the alt-key toggle to the active tool when it
// observes it.
func (m *Manager) OnAltToggle(pressed bool) {
	if t, ok := m.activeTool().(tool.AltObserver); ok {
		t.OnAltToggle(pressed)
	}
}

// OnViewportChange forwards a viewport origin change to the active tool when
// it observes it, and recomputes the current scene point from the last
// screen position.
func (m *Manager) OnViewportChange(x, y float64) {
	m.mu.Lock()
	last := m.lastScreen
	if m.viewport != nil {
		m.currPoint = m.viewport.ToScene(last.X, last.Y)
	}
	m.mu.Unlock()

	if t, ok := m.activeTool().(tool.ViewportObserver); ok {
		t.OnViewportChange(x, y)
	}
}

// BindSource attaches a pointer/keyboard event source for later teardown.
func (m *Manager) BindSource(src Source) {
	m.mu.Lock()
	m.source = src
	m.mu.Unlock()
}

// UnbindEvent detaches the bound event source and releases all hotkey
// tokens. It is idempotent.
func (m *Manager) UnbindEvent() {
	m.mu.Lock()
	src := m.source
	m.source = nil
	m.gateOpen = true
	m.mu.Unlock()

	if src != nil {
		src.Unbind()
	}
	if m.binder != nil {
		m.binder.UnbindAll()
	}
	m.classifier.Reset()
}

// Destroy deactivates the current tool and drops the reference. It does not
// detach event listeners; use UnbindEvent for full teardown. Idempotent.
func (m *Manager) Destroy() {
	m.mu.Lock()
	t := m.active
	m.active = nil
	m.activeType = ""
	m.mu.Unlock()

	if t != nil {
		if err := t.OnInactive(); err != nil {
			m.logger.Error("tool deactivation failed during destroy",
				"tool", t.Name(), "error", err)
		}
	}
}

func (m *Manager) trackPoint(ev pointer.Event) {
	m.mu.Lock()
	m.lastScreen = ev.Pos
	if m.viewport != nil {
		m.currPoint = m.viewport.ToScene(ev.Pos.X, ev.Pos.Y)
	} else {
		m.currPoint = ev.Pos
	}
	m.mu.Unlock()
}
