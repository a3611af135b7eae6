package lua

import (
	"fmt"
	"log/slog"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/inkstorm/internal/input/pointer"
	"github.com/dshills/inkstorm/internal/tool"
)

// Callback names a script may define inside its global `tool` table.
const (
	fnOnActive      = "on_active"
	fnOnInactive    = "on_inactive"
	fnOnStart       = "on_start"
	fnOnDrag        = "on_drag"
	fnOnEnd         = "on_end"
	fnAfterEnd      = "after_end"
	fnOnMove        = "on_move"
	fnOnCommand     = "on_command_change"
	fnOnSpaceToggle = "on_space_toggle"
	fnOnAltToggle   = "on_alt_toggle"
	fnOnViewport    = "on_viewport_change"
)

// ScriptTool adapts a Lua script to the tool capability contract.
//
// The script must define a global table `tool` with a `name` field and any
// subset of the callback functions. Missing callbacks are no-ops, matching
// the optional-hook design of the Go contract. Each instance owns its own
// Lua state; the state is closed when the tool is deactivated.
//
//	tool = {
//	    name = "stamp",
//	    cursor = "crosshair",
//	    on_start = function(x, y) ... end,
//	    on_drag = function(x, y) ... end,
//	    on_end = function(x, y, dragged) ... end,
//	}
type ScriptTool struct {
	name   string
	cursor string

	state  *lua.LState
	fns    map[string]*lua.LFunction
	logger *slog.Logger
}

// Load compiles and runs source, returning the script-backed tool.
func Load(source string, logger *slog.Logger) (*ScriptTool, error) {
	if logger == nil {
		logger = slog.Default()
	}

	L := lua.NewState()
	if err := L.DoString(source); err != nil {
		L.Close()
		return nil, fmt.Errorf("running tool script: %w", err)
	}

	tbl, ok := L.GetGlobal("tool").(*lua.LTable)
	if !ok {
		L.Close()
		return nil, fmt.Errorf("tool script must define a global 'tool' table")
	}

	name, ok := L.GetField(tbl, "name").(lua.LString)
	if !ok || name == "" {
		L.Close()
		return nil, fmt.Errorf("tool script must set tool.name")
	}

	cursor := "default"
	if c, ok := L.GetField(tbl, "cursor").(lua.LString); ok && c != "" {
		cursor = string(c)
	}

	fns := make(map[string]*lua.LFunction)
	for _, fname := range []string{
		fnOnActive, fnOnInactive, fnOnStart, fnOnDrag, fnOnEnd,
		fnAfterEnd, fnOnMove, fnOnCommand, fnOnSpaceToggle,
		fnOnAltToggle, fnOnViewport,
	} {
		if fn, ok := L.GetField(tbl, fname).(*lua.LFunction); ok {
			fns[fname] = fn
		}
	}

	return &ScriptTool{
		name:   string(name),
		cursor: cursor,
		state:  L,
		fns:    fns,
		logger: logger,
	}, nil
}

// Constructor validates source once and returns a tool constructor that
// loads a fresh Lua state per instance, plus the tool name declared by the
// script for registration.
func Constructor(source string, logger *slog.Logger) (tool.Constructor, string, error) {
	probe, err := Load(source, logger)
	if err != nil {
		return nil, "", err
	}
	name := probe.name
	probe.close()

	ctor := func() tool.Tool {
		t, err := Load(source, logger)
		if err != nil {
			// Validated above; a failure here means the script became
			// nondeterministic. Fall back to an inert tool.
			if logger != nil {
				logger.Error("tool script reload failed", "tool", name, "error", err)
			}
			return &ScriptTool{name: name, cursor: "default", logger: logger}
		}
		return t
	}
	return ctor, name, nil
}

// Name implements tool.Tool.
func (t *ScriptTool) Name() string { return t.name }

// Cursor implements tool.Tool.
func (t *ScriptTool) Cursor() string { return t.cursor }

// OnActive implements tool.Tool.
func (t *ScriptTool) OnActive() error {
	return t.call(fnOnActive)
}

// OnInactive implements tool.Tool and releases the Lua state.
func (t *ScriptTool) OnInactive() error {
	err := t.call(fnOnInactive)
	t.close()
	return err
}

// OnStart implements tool.Tool.
func (t *ScriptTool) OnStart(ev pointer.Event) {
	t.callLogged(fnOnStart, lua.LNumber(ev.Pos.X), lua.LNumber(ev.Pos.Y))
}

// OnDrag implements tool.Tool.
func (t *ScriptTool) OnDrag(ev pointer.Event) {
	t.callLogged(fnOnDrag, lua.LNumber(ev.Pos.X), lua.LNumber(ev.Pos.Y))
}

// OnEnd implements tool.Tool.
func (t *ScriptTool) OnEnd(ev pointer.Event, dragged bool) {
	t.callLogged(fnOnEnd, lua.LNumber(ev.Pos.X), lua.LNumber(ev.Pos.Y), lua.LBool(dragged))
}

// AfterEnd implements tool.Tool.
func (t *ScriptTool) AfterEnd(ev pointer.Event) {
	t.callLogged(fnAfterEnd, lua.LNumber(ev.Pos.X), lua.LNumber(ev.Pos.Y))
}

// OnMoveExcludeDrag implements tool.Tool.
func (t *ScriptTool) OnMoveExcludeDrag(ev pointer.Event, outside bool) {
	t.callLogged(fnOnMove, lua.LNumber(ev.Pos.X), lua.LNumber(ev.Pos.Y), lua.LBool(outside))
}

// OnCommandChange implements tool.CommandObserver.
func (t *ScriptTool) OnCommandChange() {
	t.callLogged(fnOnCommand)
}

// OnSpaceToggle implements tool.SpaceObserver.
func (t *ScriptTool) OnSpaceToggle(pressed bool) {
	t.callLogged(fnOnSpaceToggle, lua.LBool(pressed))
}

// OnAltToggle implements tool.AltObserver.
func (t *ScriptTool) OnAltToggle(pressed bool) {
	t.callLogged(fnOnAltToggle, lua.LBool(pressed))
}

// OnViewportChange implements tool.ViewportObserver.
func (t *ScriptTool) OnViewportChange(x, y float64) {
	t.callLogged(fnOnViewport, lua.LNumber(x), lua.LNumber(y))
}

// call invokes a script callback under pcall protection.
// Missing callbacks and closed states are no-ops.
func (t *ScriptTool) call(name string, args ...lua.LValue) error {
	if t.state == nil {
		return nil
	}
	fn, ok := t.fns[name]
	if !ok {
		return nil
	}

	if err := t.state.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, args...); err != nil {
		return fmt.Errorf("tool script %s.%s: %w", t.name, name, err)
	}
	return nil
}

// callLogged invokes a script callback and logs failures. Used for the
// dispatch callbacks whose Go contract has no error return.
func (t *ScriptTool) callLogged(name string, args ...lua.LValue) {
	if err := t.call(name, args...); err != nil {
		t.logger.Error("tool script callback failed", "error", err)
	}
}

func (t *ScriptTool) close() {
	if t.state != nil {
		t.state.Close()
		t.state = nil
	}
}
