// Package toolmgr implements the active tool controller: the state machine
// that owns exactly one active tool, routes classified pointer input to it,
// and arbitrates tool switches.
//
// # Switch Permission
//
// SetActiveTool is a no-op when the target is already active, when a switch
// is already in progress, or while a drag holds the switch gate closed. A
// target outside the enabled tool set is rejected with a warning; these are
// expected, frequent occurrences (hotkey mashing) and never errors. Only
// activation of a never-registered type is fatal.
//
// # Lifecycle Ordering
//
// Deactivation of the old tool fully completes before the new tool's
// OnActive runs, and the switch broadcast fires only after activation, so
// listeners observing the switch see a fully initialized tool. A
// switch-in-progress flag rejects re-entrant SetActiveTool calls from within
// lifecycle callbacks, preserving the single-active-tool invariant.
//
// # Concurrency
//
// All input is expected on one logical event goroutine. The internal mutex
// guards accessor reads from other goroutines; it is not a license to drive
// pointer dispatch concurrently.
package toolmgr
