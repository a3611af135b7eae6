package tool

import (
	"github.com/dshills/inkstorm/internal/input/pointer"
)

// Tool defines the interface every tool variant implements.
// Exactly one tool instance is active at a time; the instance is created on
// activation and dropped when superseded.
type Tool interface {
	// Name returns the unique tool type identifier (e.g., "select", "rect").
	Name() string

	// Cursor returns the cursor spec shown while this tool is active.
	Cursor() string

	// OnActive is called when the tool becomes the active tool.
	OnActive() error

	// OnInactive is called when the tool is superseded or destroyed.
	OnInactive() error

	// OnStart is called when a press is accepted while this tool is active.
	OnStart(ev pointer.Event)

	// OnDrag is called for the threshold-crossing move and every move after
	// it, until pointer-up.
	OnDrag(ev pointer.Event)

	// OnEnd terminates a press. dragged reports whether the press became a
	// drag. AfterEnd always follows OnEnd for the same press.
	OnEnd(ev pointer.Event, dragged bool)

	// AfterEnd runs cleanup after OnEnd for the same press sequence.
	AfterEnd(ev pointer.Event)

	// OnMoveExcludeDrag is called for pointer moves while no press is in
	// progress. outside is true when the pointer left the canvas surface.
	OnMoveExcludeDrag(ev pointer.Event, outside bool)
}

// CommandObserver is implemented by tools that react to command-system
// change notifications.
type CommandObserver interface {
	OnCommandChange()
}

// SpaceObserver is implemented by tools that react to the spacebar-held
// pan toggle.
type SpaceObserver interface {
	OnSpaceToggle(pressed bool)
}

// AltObserver is implemented by tools that react to the alt-key toggle.
type AltObserver interface {
	OnAltToggle(pressed bool)
}

// ViewportObserver is implemented by tools that react to viewport origin
// changes.
type ViewportObserver interface {
	OnViewportChange(x, y float64)
}

// Base provides no-op defaults for the non-lifecycle callbacks.
// Tool implementations embed Base and override what they need.
type Base struct{}

// OnActive is a no-op.
func (Base) OnActive() error { return nil }

// OnInactive is a no-op.
func (Base) OnInactive() error { return nil }

// OnStart is a no-op.
func (Base) OnStart(pointer.Event) {}

// OnDrag is a no-op.
func (Base) OnDrag(pointer.Event) {}

// OnEnd is a no-op.
func (Base) OnEnd(pointer.Event, bool) {}

// AfterEnd is a no-op.
func (Base) AfterEnd(pointer.Event) {}

// OnMoveExcludeDrag is a no-op.
func (Base) OnMoveExcludeDrag(pointer.Event, bool) {}

// Standard tool type identifiers.
const (
	TypeSelect  = "select"
	TypeRect    = "rect"
	TypeEllipse = "ellipse"
	TypePath    = "path"
	TypeText    = "text"
	TypePan     = "pan"
)
