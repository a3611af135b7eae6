package backend

import "sync"

// SpacePan tracks the pan-by-space gesture for the terminal demo.
//
// Terminals deliver no key-release events, so space acts as a toggle rather
// than a hold. The gesture can be suppressed while a tool drag is in
// progress and re-enabled on pointer-up.
type SpacePan struct {
	mu       sync.Mutex
	pressing bool
	enabled  bool
}

// NewSpacePan creates an enabled, un-pressed gesture tracker.
func NewSpacePan() *SpacePan {
	return &SpacePan{enabled: true}
}

// Toggle flips the pressing state and returns the new state. A suppressed
// gesture stays un-pressed.
func (s *SpacePan) Toggle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled {
		s.pressing = false
		return false
	}
	s.pressing = !s.pressing
	return s.pressing
}

// IsSpacePressing implements toolmgr.PanGesture.
func (s *SpacePan) IsSpacePressing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled && s.pressing
}

// DisableDragBySpace implements toolmgr.PanGesture. Suppression also ends
// any gesture in progress.
func (s *SpacePan) DisableDragBySpace() {
	s.mu.Lock()
	s.enabled = false
	s.pressing = false
	s.mu.Unlock()
}

// EnableDragBySpace implements toolmgr.PanGesture.
func (s *SpacePan) EnableDragBySpace() {
	s.mu.Lock()
	s.enabled = true
	s.mu.Unlock()
}
