package event

import (
	"sync"

	"github.com/google/uuid"
)

// SwitchToolHandler receives the new tool type after a completed switch.
type SwitchToolHandler func(toolType string)

// EnableToolsHandler receives the enabled tool set after it is replaced.
// The slice is a fresh copy per handler; mutating it has no effect on the
// controller's state.
type EnableToolsHandler func(types []string)

type switchSub struct {
	id string
	fn SwitchToolHandler
}

type enableSub struct {
	id string
	fn EnableToolsHandler
}

// Hub broadcasts tool-switch and enabled-tools-changed notifications to
// external listeners. Emission is synchronous, in registration order.
type Hub struct {
	mu sync.Mutex

	switchSubs []switchSub
	enableSubs []enableSub
}

// NewHub creates an empty broadcaster.
func NewHub() *Hub {
	return &Hub{}
}

// OnSwitchTool subscribes to tool-switch notifications.
// The returned function unsubscribes this handler; other handlers keep
// firing in their registration order.
func (h *Hub) OnSwitchTool(fn SwitchToolHandler) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := uuid.NewString()
	h.switchSubs = append(h.switchSubs, switchSub{id: id, fn: fn})

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		for i, sub := range h.switchSubs {
			if sub.id == id {
				h.switchSubs = append(h.switchSubs[:i], h.switchSubs[i+1:]...)
				return
			}
		}
	}
}

// OnChangeEnableTools subscribes to enabled-tools-changed notifications.
// The returned function unsubscribes this handler.
func (h *Hub) OnChangeEnableTools(fn EnableToolsHandler) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := uuid.NewString()
	h.enableSubs = append(h.enableSubs, enableSub{id: id, fn: fn})

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		for i, sub := range h.enableSubs {
			if sub.id == id {
				h.enableSubs = append(h.enableSubs[:i], h.enableSubs[i+1:]...)
				return
			}
		}
	}
}

// EmitSwitchTool notifies all switch-tool subscribers synchronously.
func (h *Hub) EmitSwitchTool(toolType string) {
	h.mu.Lock()
	subs := make([]switchSub, len(h.switchSubs))
	copy(subs, h.switchSubs)
	h.mu.Unlock()

	// Handlers run outside the lock so they may subscribe or unsubscribe.
	for _, sub := range subs {
		sub.fn(toolType)
	}
}

// EmitChangeEnableTools notifies all enable-set subscribers synchronously.
// Each handler receives its own copy of the set.
func (h *Hub) EmitChangeEnableTools(types []string) {
	h.mu.Lock()
	subs := make([]enableSub, len(h.enableSubs))
	copy(subs, h.enableSubs)
	h.mu.Unlock()

	for _, sub := range subs {
		cp := make([]string, len(types))
		copy(cp, types)
		sub.fn(cp)
	}
}
