package sim

import "math"

// Key identifies a keyboard key by its DOM-style name
type Key string

const (
	KeyArrowUp   Key = "ArrowUp"
	KeyArrowDown Key = "ArrowDown"
)

// Key auto-repeat, in ticks
const (
	RepeatDelay    = 30
	RepeatInterval = 3
)

// KeyRepeats reports whether a key held for d ticks fires a KeyDown this tick:
// once on press, then every RepeatInterval ticks after RepeatDelay
func KeyRepeats(d int) bool {
	if d == 1 {
		return true
	}
	return d >= RepeatDelay && (d-RepeatDelay)%RepeatInterval == 0
}

// Pointer is the mouse state. Dragging points into World.Balls and does not own the ball.
type Pointer struct {
	X, Y     float64
	Valid    bool // false until the first pointer event
	Down     bool
	Dragging *Ball
}

// PointerDown presses the button at (x, y) and picks the first ball in list
// order under the cursor as the drag target
func (w *World) PointerDown(x, y float64) {
	w.Pointer.X, w.Pointer.Y = x, y
	w.Pointer.Valid = true
	w.Pointer.Down = true

	for _, b := range w.Balls {
		if b.Contains(x, y) {
			w.Pointer.Dragging = b
			break
		}
	}
}

// PointerMove moves the cursor. While a ball is dragged it is pinned to the
// cursor with zero velocity.
func (w *World) PointerMove(x, y float64) {
	w.Pointer.X, w.Pointer.Y = x, y
	w.Pointer.Valid = true

	if w.Pointer.Down && w.Pointer.Dragging != nil {
		b := w.Pointer.Dragging
		b.X, b.Y = x, y
		b.DX, b.DY = 0, 0
	}
}

// PointerUp releases the button and the drag target. The ball keeps zero velocity.
func (w *World) PointerUp() {
	w.Pointer.Down = false
	w.Pointer.Dragging = nil
}

// KeyDown adjusts gravity. Other keys are ignored.
func (w *World) KeyDown(k Key) {
	switch k {
	case KeyArrowUp:
		w.Gravity += w.cfg.GravityStep
	case KeyArrowDown:
		w.Gravity = math.Max(0, w.Gravity-w.cfg.GravityStep)
	}
}
