package pointer

import "github.com/dshills/inkstorm/internal/geom"

// Button represents a pointer button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) pointer button.
	ButtonLeft
	// ButtonMiddle is the middle pointer button.
	ButtonMiddle
	// ButtonRight is the secondary (right) pointer button.
	ButtonRight
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "none"
	}
}

// IsPrimary returns true for the primary (left) button.
func (b Button) IsPrimary() bool {
	return b == ButtonLeft
}

// Event represents a single pointer input event.
type Event struct {
	// Pos is the position in screen coordinates.
	Pos geom.Point

	// Button is the button involved, if any. Move events carry ButtonNone.
	Button Button

	// Outside is true when the pointer is outside the canvas surface.
	// Tools use this to suppress hover hints and cursor previews.
	Outside bool
}
