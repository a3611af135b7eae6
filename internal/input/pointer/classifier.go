package pointer

import (
	"math"

	"github.com/dshills/inkstorm/internal/geom"
)

// DefaultDragBlockStep is the drag threshold used when no settings store is
// wired in.
const DefaultDragBlockStep = 4

// Sink receives classified pointer transitions.
//
// The classifier guarantees ordering: DragBegin and DragMove are only called
// after a successful PressStart in the same press sequence, and every
// successful PressStart is terminated by exactly one PressEnd.
type Sink interface {
	// PressStart is called when a press is accepted and the classifier
	// enters the Pressed state. Returning an error aborts the press and
	// the classifier stays Idle.
	PressStart(ev Event) error

	// DragBegin is called on the exact move that crosses the drag
	// threshold. Tool switching must be suppressed from this point until
	// PressEnd.
	DragBegin(ev Event)

	// DragMove is called for every subsequent move while dragging.
	DragMove(ev Event)

	// PressEnd terminates a press that began with the primary button.
	// dragged reports whether the threshold was crossed during the press.
	PressEnd(ev Event, dragged bool)

	// HoverMove is called for moves while no press is in progress.
	HoverMove(ev Event, outside bool)

	// GateReset is called on a pointer-up that did not begin with the
	// primary button, as a defensive reset of the switch gate.
	GateReset()
}

// Config configures the drag classifier.
type Config struct {
	// Step returns the current drag threshold in pixels. Evaluated on
	// every move so settings changes take effect mid-session. Nil means
	// DefaultDragBlockStep.
	Step func() float64

	// IsEditing reports whether a text-edit surface has focus. Presses
	// are ignored while editing.
	IsEditing func() bool

	// IsSpacePressing reports whether the pan-by-space gesture is held.
	// Presses are ignored while panning.
	IsSpacePressing func() bool
}

// Classifier consumes a raw pointer-down/move/up stream and classifies
// motion as click, drag, or hover.
//
// States: Idle (no press), Pressed (button down, within threshold),
// Dragging (threshold crossed). A press cycle always returns to Idle on
// pointer-up.
type Classifier struct {
	sink   Sink
	sched  Scheduler
	config Config

	pressing  bool
	dragging  bool
	leftPress bool
	startPos  geom.Point
}

// NewClassifier creates a classifier dispatching to sink, deferring press
// decisions through sched.
func NewClassifier(sink Sink, sched Scheduler, config Config) *Classifier {
	if sched == nil {
		sched = Immediate{}
	}
	return &Classifier{
		sink:   sink,
		sched:  sched,
		config: config,
	}
}

// PointerDown records a button press. The press decision is deferred by one
// scheduling tick so exclusion flags set by a concurrent modifier event are
// observed after the batch settles.
func (c *Classifier) PointerDown(ev Event) {
	c.sched.Defer(func() {
		c.beginPress(ev)
	})
}

// beginPress decides whether the press enters the Pressed state.
func (c *Classifier) beginPress(ev Event) {
	if c.pressing {
		return
	}
	if !ev.Button.IsPrimary() {
		return
	}
	if c.config.IsEditing != nil && c.config.IsEditing() {
		return
	}
	if c.config.IsSpacePressing != nil && c.config.IsSpacePressing() {
		return
	}

	c.pressing = true
	c.leftPress = true
	c.dragging = false
	c.startPos = ev.Pos

	if err := c.sink.PressStart(ev); err != nil {
		// Precondition violation upstream; stay Idle.
		c.reset()
	}
}

// PointerMove classifies a move event as hover, threshold tracking, or drag.
func (c *Classifier) PointerMove(ev Event) {
	if !c.pressing {
		c.sink.HoverMove(ev, ev.Outside)
		return
	}

	if !c.dragging {
		step := c.step()
		d := ev.Pos.Delta(c.startPos)
		if math.Abs(d.X) > step || math.Abs(d.Y) > step {
			c.dragging = true
			c.sink.DragBegin(ev)
		}
		return
	}

	c.sink.DragMove(ev)
}

// PointerUp terminates the current press cycle.
func (c *Classifier) PointerUp(ev Event) {
	if !c.pressing || !c.leftPress {
		c.reset()
		c.sink.GateReset()
		return
	}

	dragged := c.dragging
	c.reset()
	c.sink.PressEnd(ev, dragged)
}

// IsPressing returns true while a press is in progress.
func (c *Classifier) IsPressing() bool {
	return c.pressing
}

// IsDragging returns true once the drag threshold has been crossed, until
// the matching pointer-up.
func (c *Classifier) IsDragging() bool {
	return c.dragging
}

// StartPos returns the position where the current press began.
func (c *Classifier) StartPos() (geom.Point, bool) {
	if !c.pressing {
		return geom.Point{}, false
	}
	return c.startPos, true
}

// Reset clears all press state without dispatching. Used on teardown.
func (c *Classifier) Reset() {
	c.reset()
}

func (c *Classifier) reset() {
	c.pressing = false
	c.dragging = false
	c.leftPress = false
	c.startPos = geom.Point{}
}

func (c *Classifier) step() float64 {
	if c.config.Step == nil {
		return DefaultDragBlockStep
	}
	if s := c.config.Step(); s > 0 {
		return s
	}
	return DefaultDragBlockStep
}
