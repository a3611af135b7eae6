package backend

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/inkstorm/internal/input/hotkey"
)

type keyEntry struct {
	token   hotkey.Token
	binding hotkey.Binding
}

// Keybindings is an in-process keybinding service: it stores tokenized
// bindings and fires them on key presses. Duplicate keys are permitted;
// every binding for a key fires in registration order, each gated by its
// own When predicate.
type Keybindings struct {
	mu      sync.Mutex
	entries []keyEntry
	logger  *slog.Logger
}

// NewKeybindings creates an empty keybinding service.
func NewKeybindings(logger *slog.Logger) *Keybindings {
	if logger == nil {
		logger = slog.Default()
	}
	return &Keybindings{logger: logger}
}

// Register implements hotkey.Service.
func (k *Keybindings) Register(b hotkey.Binding) hotkey.Token {
	k.mu.Lock()
	defer k.mu.Unlock()

	token := hotkey.Token(uuid.NewString())
	k.entries = append(k.entries, keyEntry{token: token, binding: b})
	return token
}

// Unregister implements hotkey.Service.
func (k *Keybindings) Unregister(token hotkey.Token) {
	k.mu.Lock()
	defer k.mu.Unlock()

	for i, e := range k.entries {
		if e.token == token {
			k.entries = append(k.entries[:i], k.entries[i+1:]...)
			return
		}
	}
}

// HandleKey fires every binding registered for key whose predicate passes.
// Predicates are evaluated now, at trigger time. Returns true if any
// binding fired.
func (k *Keybindings) HandleKey(key string) bool {
	k.mu.Lock()
	matches := make([]hotkey.Binding, 0, 2)
	for _, e := range k.entries {
		if e.binding.Key == key {
			matches = append(matches, e.binding)
		}
	}
	k.mu.Unlock()

	fired := false
	for _, b := range matches {
		if b.When != nil && !b.When() {
			continue
		}
		b.Action()
		fired = true
	}
	return fired
}

// Len returns the number of registered bindings.
func (k *Keybindings) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}
