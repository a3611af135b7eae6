package toolmgr

import "errors"

// Fatal precondition violations. These indicate a programming error in setup
// order and halt the offending operation; they are never used for expected
// rejections such as switching to a disabled tool.
var (
	// ErrNoActiveTool is returned when pointer input is dispatched before
	// any tool has been activated.
	ErrNoActiveTool = errors.New("no active tool")

	// ErrToolNotRegistered is returned when activation is requested for a
	// tool type that was never registered.
	ErrToolNotRegistered = errors.New("tool not registered")
)
