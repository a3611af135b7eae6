// Package hotkey binds tool-activation hotkeys against an external
// keybinding service.
//
// Each registered tool gets one binding whose trigger predicate is "is this
// tool currently enabled" and whose action requests activation. Predicates
// are evaluated by the service at trigger time, so the enabled tool set can
// change dynamically without rebinding. Bindings are tokenized and revoked
// in bulk via UnbindAll.
package hotkey
