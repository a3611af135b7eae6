// Package pointer classifies raw pointer input into clicks, drags, and
// hovers for the tool arbitration core.
//
// # State Machine
//
// The classifier has three states per press cycle:
//
//	Idle     - no press in progress; moves dispatch as hovers
//	Pressed  - primary button down, cumulative displacement within threshold
//	Dragging - displacement exceeded the threshold on either axis
//
// A cycle always returns to Idle on pointer-up. The drag latch resets only
// on pointer-up, never mid-press.
//
// # Deferred Press Handling
//
// Pointer-down handling is deferred by one scheduling tick through the
// Scheduler interface. This lets exclusion flags (text-edit focus, space-pan)
// that are toggled by events in the same input batch settle before the press
// decision is made. Queue is the production Scheduler: the event loop drains
// it after each batch. Tests drain it manually to pin down the ordering.
//
// # Dispatch Guarantees
//
// DragBegin/DragMove fire only after a successful PressStart in the same
// press sequence, and every successful PressStart is terminated by exactly
// one PressEnd before the next press can begin.
package pointer
