package hotkey

import (
	"log/slog"
	"sync"
)

// Token identifies a registered binding for later revocation.
// Tokens are opaque; the keybinding service defines their contents.
type Token string

// Binding is a single key-to-action registration passed to the keybinding
// service. When is evaluated by the service at trigger time, not at
// registration time, so enabling and disabling tools takes effect without
// re-registering hotkeys.
type Binding struct {
	// Key is the physical key code (single character for tool hotkeys).
	Key string

	// ActionName names the action for diagnostics and conflict reporting.
	ActionName string

	// When gates the action. The binding only fires when it returns true.
	When func() bool

	// Action runs when the key is pressed and When allows it.
	Action func()
}

// Service is the external keybinding service consumed by the binder.
type Service interface {
	// Register installs a binding and returns a revocation token.
	Register(b Binding) Token

	// Unregister revokes a previously registered binding.
	Unregister(token Token)
}

// Binder registers one keybinding per tool type against the external
// keybinding service and tracks the revocation tokens.
type Binder struct {
	mu sync.Mutex

	service Service
	tokens  []Token
	keys    map[string]string // key -> tool type, for duplicate detection
	logger  *slog.Logger
}

// NewBinder creates a binder over the given keybinding service.
// A nil logger falls back to slog.Default().
func NewBinder(service Service, logger *slog.Logger) *Binder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Binder{
		service: service,
		keys:    make(map[string]string),
		logger:  logger,
	}
}

// Bind registers a binding activating toolType on key, gated by when.
// Duplicate keys across tool types are tolerated: both bindings remain
// independently triggerable, and the collision is logged.
func (b *Binder) Bind(key, toolType string, when func() bool, action func()) {
	if key == "" {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if prev, exists := b.keys[key]; exists && prev != toolType {
		b.logger.Warn("duplicate hotkey registration",
			"key", key, "tool", toolType, "existing", prev)
	}
	b.keys[key] = toolType

	token := b.service.Register(Binding{
		Key:        key,
		ActionName: "tool.switch." + toolType,
		When:       when,
		Action:     action,
	})
	b.tokens = append(b.tokens, token)
}

// Bindings returns the current key-to-tool associations.
// When keys collide, the last registration is reported.
func (b *Binder) Bindings() map[string]string {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make(map[string]string, len(b.keys))
	for k, v := range b.keys {
		out[k] = v
	}
	return out
}

// UnbindAll releases every token and clears the token list.
// It is idempotent and safe to call when nothing is bound.
func (b *Binder) UnbindAll() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, token := range b.tokens {
		b.service.Unregister(token)
	}
	b.tokens = nil
	b.keys = make(map[string]string)
}
