package tool

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// Constructor produces a fresh tool instance bound to the host editor.
type Constructor func() Tool

// Descriptor describes a registrable tool: its unique type identifier, the
// hotkey that activates it, and the constructor producing live instances.
type Descriptor struct {
	// Type is the unique tool type identifier.
	Type string

	// Hotkey is the key that activates this tool (single character).
	// Empty means no hotkey.
	Hotkey string

	// New constructs a tool instance.
	New Constructor
}

// Registry maps tool type identifiers to their descriptors.
// Re-registering a type replaces the previous descriptor and logs a warning;
// replacement is informational only, to support hot-swapping tool
// implementations during development.
type Registry struct {
	mu sync.RWMutex

	descriptors map[string]Descriptor
	logger      *slog.Logger
}

// NewRegistry creates an empty tool registry.
// A nil logger falls back to slog.Default().
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		descriptors: make(map[string]Descriptor),
		logger:      logger,
	}
}

// Register inserts or replaces the mapping for desc.Type.
// Replacement never fails; it is logged at warning level.
func (r *Registry) Register(desc Descriptor) error {
	if desc.Type == "" {
		return fmt.Errorf("cannot register tool with empty type")
	}
	if desc.New == nil {
		return fmt.Errorf("cannot register tool %q with nil constructor", desc.Type)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.descriptors[desc.Type]; exists {
		r.logger.Warn("tool type already registered, replacing", "type", desc.Type)
	}
	r.descriptors[desc.Type] = desc
	return nil
}

// Resolve returns the constructor for a tool type.
func (r *Registry) Resolve(toolType string) (Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	desc, ok := r.descriptors[toolType]
	if !ok {
		return nil, false
	}
	return desc.New, true
}

// Get returns the full descriptor for a tool type.
func (r *Registry) Get(toolType string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	desc, ok := r.descriptors[toolType]
	return desc, ok
}

// Types returns all registered tool type identifiers, sorted.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.descriptors))
	for t := range r.descriptors {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
