package toolmgr

import (
	"testing"

	"github.com/dshills/inkstorm/internal/geom"
	"github.com/dshills/inkstorm/internal/input/pointer"
	"github.com/dshills/inkstorm/internal/tool"
)

type fakeSettings struct {
	step float64
}

func (s *fakeSettings) DragBlockStep() float64 { return s.step }

func pressAt(x, y float64) pointer.Event {
	return pointer.Event{Pos: geom.Point{X: x, Y: y}, Button: pointer.ButtonLeft}
}

func moveTo(x, y float64) pointer.Event {
	return pointer.Event{Pos: geom.Point{X: x, Y: y}}
}

func activeManager(t *testing.T, cfg Config) (*Manager, *recorder) {
	t.Helper()
	if cfg.Logger == nil {
		cfg.Logger = testLogger()
	}
	rec := &recorder{}
	m := New(cfg)
	registerFake(t, m, rec, "select", "")
	registerFake(t, m, rec, "rect", "")
	m.SetEnableHotKeyTools([]string{"select", "rect"})
	if err := m.SetActiveTool("select"); err != nil {
		t.Fatalf("SetActiveTool() error = %v", err)
	}
	rec.log = nil // drop activation noise
	return m, rec
}

func TestDispatchClick(t *testing.T) {
	m, rec := activeManager(t, Config{})

	m.PointerDown(pressAt(10, 10))
	m.PointerUp(pressAt(10, 10))

	rec.assert(t, "select.start(10,10)", "select.end(dragged=false)", "select.afterEnd")
}

func TestDispatchDragFlow(t *testing.T) {
	pan := &fakePan{}
	m, rec := activeManager(t, Config{Pan: pan})

	m.PointerDown(pressAt(10, 10))
	m.PointerMove(moveTo(12, 10)) // within threshold
	m.PointerMove(moveTo(16, 10)) // crosses
	m.PointerMove(moveTo(20, 10))
	if !m.IsDragging() {
		t.Fatal("IsDragging() = false mid-drag")
	}
	m.PointerUp(pressAt(20, 10))

	rec.assert(t,
		"select.start(10,10)",
		"select.drag(16,10)",
		"select.drag(20,10)",
		"select.end(dragged=true)",
		"select.afterEnd",
	)

	// Pan-by-space is suppressed for the drag duration only.
	if pan.disables != 1 || pan.enables != 1 {
		t.Errorf("pan suppression: disables=%d enables=%d, want 1/1", pan.disables, pan.enables)
	}
	if m.IsDragging() {
		t.Error("IsDragging() = true after pointer-up")
	}
}

func TestDispatchSwitchGatedDuringDrag(t *testing.T) {
	m, _ := activeManager(t, Config{})

	m.PointerDown(pressAt(0, 0))
	m.PointerMove(moveTo(10, 0)) // begin drag

	// The switch is dropped, not queued.
	if err := m.SetActiveTool("rect"); err != nil {
		t.Fatalf("SetActiveTool() during drag error = %v, want nil", err)
	}
	if got := m.ActiveToolName(); got != "select" {
		t.Fatalf("tool switched mid-drag to %q", got)
	}

	m.PointerUp(pressAt(10, 0))

	// Gate reopens on pointer-up; the same request now succeeds.
	if err := m.SetActiveTool("rect"); err != nil {
		t.Fatalf("SetActiveTool() after drag error = %v", err)
	}
	if got := m.ActiveToolName(); got != "rect" {
		t.Errorf("ActiveToolName() = %q, want %q", got, "rect")
	}
}

func TestDispatchUnbindDuringDragReopensGate(t *testing.T) {
	m, _ := activeManager(t, Config{})

	m.PointerDown(pressAt(0, 0))
	m.PointerMove(moveTo(10, 0)) // gate closes

	// Teardown mid-drag must not leave the switch gate stuck closed.
	m.UnbindEvent()

	if m.IsDragging() {
		t.Error("IsDragging() = true after UnbindEvent")
	}
	if err := m.SetActiveTool("rect"); err != nil {
		t.Fatalf("SetActiveTool() error = %v", err)
	}
	if got := m.ActiveToolName(); got != "rect" {
		t.Errorf("gate stayed closed after UnbindEvent, active = %q", got)
	}
}

func TestDispatchHoverCarriesOutsideFlag(t *testing.T) {
	m, rec := activeManager(t, Config{})

	m.PointerMove(pointer.Event{Pos: geom.Point{X: 5, Y: 5}, Outside: true})
	m.PointerMove(pointer.Event{Pos: geom.Point{X: 6, Y: 5}})

	rec.assert(t, "select.move(outside=true)", "select.move(outside=false)")
}

func TestDispatchPressWithNoActiveTool(t *testing.T) {
	m := New(Config{Logger: testLogger()})

	// No tool active: the press is rejected and the classifier stays idle.
	m.PointerDown(pressAt(0, 0))
	m.PointerMove(moveTo(20, 0))

	if m.IsDragging() {
		t.Error("drag began with no active tool")
	}
}

func TestDispatchCustomDragStep(t *testing.T) {
	m, rec := activeManager(t, Config{Settings: &fakeSettings{step: 10}})

	m.PointerDown(pressAt(0, 0))
	m.PointerMove(moveTo(8, 0))
	if m.IsDragging() {
		t.Fatal("drag began below configured threshold")
	}
	m.PointerMove(moveTo(12, 0))
	if !m.IsDragging() {
		t.Fatal("drag did not begin past configured threshold")
	}
	m.PointerUp(pressAt(12, 0))

	rec.assert(t,
		"select.start(0,0)",
		"select.drag(12,0)",
		"select.end(dragged=true)",
		"select.afterEnd",
	)
}

func TestDispatchCurrPointUsesViewport(t *testing.T) {
	vp := &fakeViewport{ox: 100, oy: 50}
	m, _ := activeManager(t, Config{Viewport: vp})

	m.PointerMove(moveTo(10, 20))

	got := m.CurrPoint()
	want := geom.Point{X: 110, Y: 70}
	if !got.Equal(want) {
		t.Errorf("CurrPoint() = %v, want %v", got, want)
	}
}

func TestDispatchViewportChangeRecomputesCurrPoint(t *testing.T) {
	vp := &fakeViewport{}
	m, _ := activeManager(t, Config{Viewport: vp})

	m.PointerMove(moveTo(10, 20))

	// The pointer has not moved, but the viewport origin has.
	vp.ox, vp.oy = 5, 5
	m.OnViewportChange(5, 5)

	got := m.CurrPoint()
	want := geom.Point{X: 15, Y: 25}
	if !got.Equal(want) {
		t.Errorf("CurrPoint() = %v after viewport change, want %v", got, want)
	}
}

func registerObserver(t *testing.T, m *Manager, rec *recorder, name string) {
	t.Helper()
	err := m.RegisterTool(tool.Descriptor{
		Type: name,
		New: func() tool.Tool {
			return &observerTool{fakeTool: fakeTool{name: name, rec: rec}}
		},
	})
	if err != nil {
		t.Fatalf("RegisterTool(%s) error = %v", name, err)
	}
}

func TestDispatchSideChannelsReachObservers(t *testing.T) {
	rec := &recorder{}
	m := New(Config{Logger: testLogger()})
	registerObserver(t, m, rec, "watcher")
	m.SetEnableHotKeyTools([]string{"watcher"})
	if err := m.SetActiveTool("watcher"); err != nil {
		t.Fatalf("SetActiveTool() error = %v", err)
	}
	rec.log = nil

	m.OnCommandChange()
	m.OnSpaceToggle(true)
	m.OnAltToggle(true)
	m.OnViewportChange(3, 4)

	rec.assert(t,
		"watcher.commandChange",
		"watcher.spaceToggle(true)",
		"watcher.altToggle(true)",
		"watcher.viewportChange(3,4)",
	)
}

func TestDispatchSideChannelsSkipNonObservers(t *testing.T) {
	m, rec := activeManager(t, Config{})

	// fakeTool implements none of the observer interfaces; these must all
	// be silent no-ops.
	m.OnCommandChange()
	m.OnSpaceToggle(true)
	m.OnAltToggle(false)
	m.OnViewportChange(1, 2)

	rec.assert(t)
}

func TestDispatchSpaceExclusionBlocksPress(t *testing.T) {
	pan := &fakePan{pressing: true}
	m, rec := activeManager(t, Config{Pan: pan})

	m.PointerDown(pressAt(0, 0))

	rec.assert(t) // press never reached the tool
}

type fakeEdit struct {
	editing bool
}

func (e *fakeEdit) IsEditing() bool { return e.editing }

func TestDispatchEditExclusionBlocksPress(t *testing.T) {
	edit := &fakeEdit{editing: true}
	m, rec := activeManager(t, Config{Edit: edit})

	m.PointerDown(pressAt(0, 0))
	rec.assert(t)

	// Focus released: presses flow again.
	edit.editing = false
	m.PointerDown(pressAt(0, 0))
	m.PointerUp(pressAt(0, 0))
	rec.assert(t, "select.start(0,0)", "select.end(dragged=false)", "select.afterEnd")
}

func TestDispatchDeferredPressWithQueue(t *testing.T) {
	pan := &fakePan{}
	q := pointer.NewQueue()
	m, rec := activeManager(t, Config{Pan: pan, Scheduler: q})

	m.PointerDown(pressAt(0, 0))
	rec.assert(t) // decision pending

	// The pan toggle lands in the same batch, before the drain.
	pan.pressing = true
	q.Drain()

	rec.assert(t) // press excluded by the settled flag
}
