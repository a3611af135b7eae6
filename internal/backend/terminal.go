package backend

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/dshills/inkstorm/internal/geom"
	"github.com/dshills/inkstorm/internal/input/pointer"
	"github.com/dshills/inkstorm/internal/scene"
	"github.com/dshills/inkstorm/internal/toolmgr"
)

// Terminal is the demo's pointer/keyboard source and renderer, built on
// tcell. It translates terminal mouse and key events into the core's
// pointer/hotkey streams, drains the press-deferral queue after each input
// batch, and draws the scene plus a status line.
type Terminal struct {
	screen  tcell.Screen
	manager *toolmgr.Manager
	keys    *Keybindings
	pan     *SpacePan
	doc     *scene.Document
	view    *scene.Viewport
	queue   *pointer.Queue

	mu       sync.Mutex
	cursor   string
	unbound  bool
	quitting bool
	prevMask tcell.ButtonMask
	altDown  bool
}

// NewTerminal creates a terminal backend over a new tcell screen.
func NewTerminal(manager *toolmgr.Manager, keys *Keybindings, pan *SpacePan, doc *scene.Document, view *scene.Viewport, queue *pointer.Queue) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return &Terminal{
		screen:  screen,
		manager: manager,
		keys:    keys,
		pan:     pan,
		doc:     doc,
		view:    view,
		queue:   queue,
		cursor:  "default",
	}, nil
}

// Init initializes the screen and enables mouse reporting.
func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	t.screen.EnableMouse()
	return nil
}

// Fini restores the terminal.
func (t *Terminal) Fini() {
	t.screen.Fini()
}

// SetCursor implements toolmgr.CursorSetter. Terminals cannot restyle the
// mouse pointer, so the cursor spec is surfaced on the status line.
func (t *Terminal) SetCursor(cursor string) {
	t.mu.Lock()
	t.cursor = cursor
	t.mu.Unlock()
}

// Unbind implements toolmgr.Source: it detaches all input handling in one
// call. Subsequent events are ignored and the run loop is woken to observe
// the unbound state.
func (t *Terminal) Unbind() {
	t.mu.Lock()
	already := t.unbound
	t.unbound = true
	t.mu.Unlock()

	if !already {
		t.screen.DisableMouse()
		_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil)) // best-effort wakeup
	}
}

// Run processes events until quit. Deferred press decisions are drained
// after each input batch, so modifier toggles arriving in the same batch
// settle before the drag classifier reads them.
func (t *Terminal) Run() error {
	t.render()
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return nil
		}
		t.handleEvent(ev)

		// Consume the rest of the current input batch before settling.
		for t.screen.HasPendingEvent() {
			ev = t.screen.PollEvent()
			if ev == nil {
				break
			}
			t.handleEvent(ev)
		}

		t.queue.Drain()

		t.mu.Lock()
		done := t.quitting || t.unbound
		t.mu.Unlock()
		if done {
			return nil
		}

		t.render()
	}
}

// Quit requests a clean exit of the run loop.
func (t *Terminal) Quit() {
	t.mu.Lock()
	t.quitting = true
	t.mu.Unlock()
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil)) // best-effort wakeup
}

func (t *Terminal) handleEvent(ev tcell.Event) {
	t.mu.Lock()
	unbound := t.unbound
	t.mu.Unlock()
	if unbound {
		return
	}

	switch e := ev.(type) {
	case *tcell.EventMouse:
		t.handleMouse(e)
	case *tcell.EventKey:
		t.handleKey(e)
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

func (t *Terminal) handleMouse(e *tcell.EventMouse) {
	t.syncAlt(e.Modifiers())

	x, y := e.Position()
	pos := geom.Point{X: float64(x), Y: float64(y)}

	mask := e.Buttons()

	switch {
	case mask&tcell.WheelUp != 0:
		t.view.Scroll(0, -1)
		return
	case mask&tcell.WheelDown != 0:
		t.view.Scroll(0, 1)
		return
	case mask&tcell.WheelLeft != 0:
		t.view.Scroll(-1, 0)
		return
	case mask&tcell.WheelRight != 0:
		t.view.Scroll(1, 0)
		return
	}

	buttons := mask & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	t.mu.Lock()
	prev := t.prevMask
	t.prevMask = buttons
	t.mu.Unlock()

	outside := t.isOutsideCanvas(y)

	pressed := buttons &^ prev
	released := prev &^ buttons

	switch {
	case pressed != 0:
		t.manager.PointerDown(pointer.Event{
			Pos:     pos,
			Button:  convertButton(pressed),
			Outside: outside,
		})
	case released != 0:
		t.manager.PointerUp(pointer.Event{
			Pos:     pos,
			Button:  convertButton(released),
			Outside: outside,
		})
	default:
		t.manager.PointerMove(pointer.Event{
			Pos:     pos,
			Outside: outside,
		})
	}
}

func (t *Terminal) handleKey(e *tcell.EventKey) {
	t.syncAlt(e.Modifiers())

	switch e.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		t.Quit()
		return
	case tcell.KeyRune:
	default:
		return
	}

	r := e.Rune()
	switch r {
	case 'q':
		t.Quit()
	case ' ':
		pressed := t.pan.Toggle()
		t.manager.OnSpaceToggle(pressed)
	default:
		t.keys.HandleKey(string(r))
	}
}

// syncAlt forwards alt-key transitions observed on event modifiers.
func (t *Terminal) syncAlt(mods tcell.ModMask) {
	held := mods&tcell.ModAlt != 0

	t.mu.Lock()
	changed := held != t.altDown
	t.altDown = held
	t.mu.Unlock()

	if changed {
		t.manager.OnAltToggle(held)
	}
}

// isOutsideCanvas reports whether row y falls on the status line.
func (t *Terminal) isOutsideCanvas(y int) bool {
	_, h := t.screen.Size()
	return y >= h-1
}

func (t *Terminal) render() {
	t.screen.Clear()

	w, h := t.screen.Size()
	canvasH := h - 1

	rectStyle := tcell.StyleDefault.Foreground(tcell.ColorTeal)
	draftStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)

	for _, r := range t.doc.Rects() {
		t.drawRect(r, rectStyle, w, canvasH)
	}
	if draft, ok := t.doc.Draft(); ok {
		t.drawRect(draft, draftStyle, w, canvasH)
	}

	t.renderStatus(w, h)
	t.screen.Show()
}

// drawRect draws the rectangle border in screen space, clipped to the
// canvas area.
func (t *Terminal) drawRect(r scene.Rect, style tcell.Style, w, canvasH int) {
	ox, oy := t.view.Origin()
	n := r.Normalized()

	left := int(n.X - ox)
	top := int(n.Y - oy)
	right := int(n.X + n.W - ox)
	bottom := int(n.Y + n.H - oy)

	set := func(x, y int, ch rune) {
		if x >= 0 && x < w && y >= 0 && y < canvasH {
			t.screen.SetContent(x, y, ch, nil, style)
		}
	}

	for x := left + 1; x < right; x++ {
		set(x, top, '─')
		set(x, bottom, '─')
	}
	for y := top + 1; y < bottom; y++ {
		set(left, y, '│')
		set(right, y, '│')
	}
	set(left, top, '┌')
	set(right, top, '┐')
	set(left, bottom, '└')
	set(right, bottom, '┘')
}

func (t *Terminal) renderStatus(w, h int) {
	t.mu.Lock()
	cursor := t.cursor
	t.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, " tool:%s cursor:%s", t.manager.ActiveToolName(), cursor)
	if t.manager.IsDragging() {
		b.WriteString(" [drag]")
	}
	if t.pan.IsSpacePressing() {
		b.WriteString(" [pan]")
	}
	for key, toolType := range t.manager.HotkeyBindings() {
		fmt.Fprintf(&b, "  %s:%s", key, toolType)
	}
	b.WriteString("  space:pan-toggle q:quit")

	line := runewidth.Truncate(b.String(), w, "…")
	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < w; x++ {
		t.screen.SetContent(x, h-1, ' ', nil, style)
	}
	col := 0
	for _, r := range line {
		t.screen.SetContent(col, h-1, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
}

// convertButton maps a tcell button mask to a pointer button.
func convertButton(mask tcell.ButtonMask) pointer.Button {
	switch {
	case mask&tcell.Button1 != 0:
		return pointer.ButtonLeft
	case mask&tcell.Button2 != 0:
		return pointer.ButtonMiddle
	case mask&tcell.Button3 != 0:
		return pointer.ButtonRight
	default:
		return pointer.ButtonNone
	}
}
