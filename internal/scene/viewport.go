package scene

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/inkstorm/internal/geom"
)

// OriginHandler receives the new viewport origin after it changes.
type OriginHandler func(x, y float64)

type originSub struct {
	id string
	fn OriginHandler
}

// Viewport maps screen coordinates to scene coordinates by a translation
// origin and notifies listeners when the origin changes.
type Viewport struct {
	mu      sync.RWMutex
	originX float64
	originY float64
	subs    []originSub
}

// NewViewport creates a viewport with origin (0, 0).
func NewViewport() *Viewport {
	return &Viewport{}
}

// ToScene converts screen coordinates to scene coordinates.
func (v *Viewport) ToScene(x, y float64) geom.Point {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return geom.Point{X: x + v.originX, Y: y + v.originY}
}

// Origin returns the current origin.
func (v *Viewport) Origin() (x, y float64) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.originX, v.originY
}

// SetOrigin moves the origin and notifies subscribers when it changed.
func (v *Viewport) SetOrigin(x, y float64) {
	v.mu.Lock()
	if v.originX == x && v.originY == y {
		v.mu.Unlock()
		return
	}
	v.originX = x
	v.originY = y
	subs := make([]originSub, len(v.subs))
	copy(subs, v.subs)
	v.mu.Unlock()

	for _, sub := range subs {
		sub.fn(x, y)
	}
}

// Scroll shifts the origin by (dx, dy).
func (v *Viewport) Scroll(dx, dy float64) {
	x, y := v.Origin()
	v.SetOrigin(x+dx, y+dy)
}

// OnXOrYChange subscribes to origin changes. The returned function
// unsubscribes the handler.
func (v *Viewport) OnXOrYChange(fn OriginHandler) func() {
	v.mu.Lock()
	defer v.mu.Unlock()

	id := uuid.NewString()
	v.subs = append(v.subs, originSub{id: id, fn: fn})

	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		for i, sub := range v.subs {
			if sub.id == id {
				v.subs = append(v.subs[:i], v.subs[i+1:]...)
				return
			}
		}
	}
}
