// Package backend provides the terminal host for the tool system: a tcell
// event loop that feeds the drag classifier, an in-process keybinding
// service, and the pan-by-space gesture tracker. The terminal owns batch
// settling: it drains the press-deferral queue after consuming each pending
// group of events.
package backend
