package toolmgr

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/dshills/inkstorm/internal/event"
	"github.com/dshills/inkstorm/internal/geom"
	"github.com/dshills/inkstorm/internal/input/hotkey"
	"github.com/dshills/inkstorm/internal/input/pointer"
	"github.com/dshills/inkstorm/internal/tool"
)

// EditQuery reports whether a text-edit surface currently has focus.
type EditQuery interface {
	IsEditing() bool
}

// PanGesture exposes the competing pan-by-space gesture. The gesture is
// suppressed for the duration of a tool drag and re-enabled on pointer-up.
type PanGesture interface {
	IsSpacePressing() bool
	DisableDragBySpace()
	EnableDragBySpace()
}

// Viewport converts screen coordinates to scene coordinates.
type Viewport interface {
	ToScene(x, y float64) geom.Point
}

// CursorSetter resolves and applies the cursor for the active tool.
type CursorSetter interface {
	SetCursor(cursor string)
}

// SettingsStore provides editor settings consumed by the drag classifier.
type SettingsStore interface {
	DragBlockStep() float64
}

// Source is a bound pointer/keyboard event source. Unbind removes all of its
// listener registrations in one call.
type Source interface {
	Unbind()
}

// Config wires the manager's external collaborators. All fields are
// optional except where noted; nil collaborators disable the corresponding
// integration.
type Config struct {
	// Keybindings is the external keybinding service. Nil disables hotkey
	// binding for registered tools.
	Keybindings hotkey.Service

	// Edit reports text-edit focus; presses are ignored while editing.
	Edit EditQuery

	// Pan is the competing pan-by-space gesture.
	Pan PanGesture

	// Viewport converts screen to scene coordinates for CurrPoint.
	Viewport Viewport

	// Cursor applies the active tool's cursor.
	Cursor CursorSetter

	// Settings supplies the drag threshold. Nil uses the default step.
	Settings SettingsStore

	// Scheduler defers press handling by one tick. Nil runs presses
	// immediately (acceptable only when input arrives unbatched).
	Scheduler pointer.Scheduler

	// Logger receives warnings for rejected requests and errors for
	// precondition violations. Nil falls back to slog.Default().
	Logger *slog.Logger
}

// Manager is the active tool controller: it holds the single active tool
// instance, enforces switch permission, runs the activate/deactivate
// lifecycle, and forwards classified input to the active tool.
type Manager struct {
	mu sync.RWMutex

	registry   *tool.Registry
	hub        *event.Hub
	binder     *hotkey.Binder
	classifier *pointer.Classifier

	enabled   []string
	gateOpen  bool
	switching bool

	active     tool.Tool
	activeType string

	lastScreen geom.Point
	currPoint  geom.Point

	source Source

	edit     EditQuery
	pan      PanGesture
	viewport Viewport
	cursor   CursorSetter

	logger *slog.Logger
}

// New creates a tool manager with the given collaborators.
func New(cfg Config) *Manager {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	m := &Manager{
		registry: tool.NewRegistry(logger),
		hub:      event.NewHub(),
		gateOpen: true,
		edit:     cfg.Edit,
		pan:      cfg.Pan,
		viewport: cfg.Viewport,
		cursor:   cfg.Cursor,
		logger:   logger,
	}

	if cfg.Keybindings != nil {
		m.binder = hotkey.NewBinder(cfg.Keybindings, logger)
	}

	classifierCfg := pointer.Config{
		IsEditing: func() bool {
			return m.edit != nil && m.edit.IsEditing()
		},
		IsSpacePressing: func() bool {
			return m.pan != nil && m.pan.IsSpacePressing()
		},
	}
	if cfg.Settings != nil {
		classifierCfg.Step = cfg.Settings.DragBlockStep
	}
	m.classifier = pointer.NewClassifier(m, cfg.Scheduler, classifierCfg)

	return m
}

// Registry returns the tool registry.
func (m *Manager) Registry() *tool.Registry {
	return m.registry
}

// RegisterTool registers a tool descriptor and, when a keybinding service is
// wired, binds its hotkey. The hotkey predicate checks enabled-set
// membership at trigger time.
func (m *Manager) RegisterTool(desc tool.Descriptor) error {
	if err := m.registry.Register(desc); err != nil {
		return err
	}

	if m.binder != nil && desc.Hotkey != "" {
		toolType := desc.Type
		m.binder.Bind(desc.Hotkey, toolType,
			func() bool { return m.isEnabled(toolType) },
			func() {
				if err := m.SetActiveTool(toolType); err != nil {
					m.logger.Error("hotkey tool switch failed",
						"tool", toolType, "error", err)
				}
			})
	}
	return nil
}

// SetActiveTool switches the active tool.
//
// The call is a silent no-op when switching is gated off (drag in progress),
// when a switch is already in progress, or when the target is already
// active. A target outside the enabled tool set is rejected with a warning.
// An unregistered target is a fatal precondition violation and returns
// ErrToolNotRegistered.
//
// Deactivation of the old tool completes before the new tool activates, and
// the switch broadcast fires only after activation, so listeners observe a
// fully initialized tool.
func (m *Manager) SetActiveTool(toolType string) error {
	m.mu.Lock()
	if m.switching {
		m.mu.Unlock()
		m.logger.Warn("tool switch requested during switch in progress", "tool", toolType)
		return nil
	}
	if !m.gateOpen {
		m.mu.Unlock()
		m.logger.Debug("tool switch gated off during drag", "tool", toolType)
		return nil
	}
	if m.activeType == toolType {
		m.mu.Unlock()
		return nil
	}
	if !m.isEnabledLocked(toolType) {
		m.mu.Unlock()
		m.logger.Warn("tool not in enabled set", "tool", toolType)
		return nil
	}
	desc, ok := m.registry.Get(toolType)
	if !ok {
		m.mu.Unlock()
		m.logger.Error("activation of unregistered tool", "tool", toolType)
		return fmt.Errorf("%w: %s", ErrToolNotRegistered, toolType)
	}

	old := m.active
	m.switching = true
	m.mu.Unlock()

	// Lifecycle callbacks run outside the lock; the switching flag rejects
	// re-entrant switch requests from within them.
	if old != nil {
		if err := old.OnInactive(); err != nil {
			m.logger.Error("tool deactivation failed",
				"tool", old.Name(), "error", err)
		}
	}

	next := desc.New()
	if m.cursor != nil {
		m.cursor.SetCursor(next.Cursor())
	}
	if err := next.OnActive(); err != nil {
		m.mu.Lock()
		m.active = nil
		m.activeType = ""
		m.switching = false
		m.mu.Unlock()
		return fmt.Errorf("activating tool %q: %w", toolType, err)
	}

	m.mu.Lock()
	m.active = next
	m.activeType = toolType
	m.switching = false
	m.mu.Unlock()

	m.hub.EmitSwitchTool(toolType)
	return nil
}

// SetEnableHotKeyTools replaces the enabled tool set and broadcasts the
// change. Switching to a tool outside this set is rejected, not queued.
func (m *Manager) SetEnableHotKeyTools(types []string) {
	cp := make([]string, len(types))
	copy(cp, types)

	m.mu.Lock()
	m.enabled = cp
	m.mu.Unlock()

	m.hub.EmitChangeEnableTools(cp)
}

// EnableTools returns a copy of the enabled tool set.
func (m *Manager) EnableTools() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cp := make([]string, len(m.enabled))
	copy(cp, m.enabled)
	return cp
}

// ActiveToolName returns the type of the active tool, or empty string when
// no tool is active.
func (m *Manager) ActiveToolName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.activeType
}

// IsDragging returns true while a drag is in progress.
func (m *Manager) IsDragging() bool {
	return m.classifier.IsDragging()
}

// CurrPoint returns the last pointer position in scene coordinates.
func (m *Manager) CurrPoint() geom.Point {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currPoint
}

// OnSwitchTool subscribes to tool-switch notifications.
func (m *Manager) OnSwitchTool(fn event.SwitchToolHandler) func() {
	return m.hub.OnSwitchTool(fn)
}

// OnChangeEnableTools subscribes to enabled-tools-changed notifications.
func (m *Manager) OnChangeEnableTools(fn event.EnableToolsHandler) func() {
	return m.hub.OnChangeEnableTools(fn)
}

// HotkeyBindings reports the current hotkey-to-tool associations, or nil
// when no keybinding service is wired.
func (m *Manager) HotkeyBindings() map[string]string {
	if m.binder == nil {
		return nil
	}
	return m.binder.Bindings()
}

func (m *Manager) isEnabled(toolType string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.isEnabledLocked(toolType)
}

func (m *Manager) isEnabledLocked(toolType string) bool {
	for _, t := range m.enabled {
		if t == toolType {
			return true
		}
	}
	return false
}

// activeTool returns the current tool instance.
func (m *Manager) activeTool() tool.Tool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.active
}
