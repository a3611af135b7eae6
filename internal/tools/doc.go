// Package tools contains the reference tools shipped with the demo editor:
// select (hit-test and move), rect (draw rectangles by drag), and pan
// (scroll the viewport). They are intentionally small; their purpose is to
// exercise the arbitration core, not to be a complete editing toolset.
package tools
