// Package gesture converts raw pointer X coordinates into a one-dimensional
// drag offset. Mouse and touch input normalize to the same start/move/end
// triplet before they reach the tracker, so it has no device awareness.
package gesture

// Tracker accumulates a horizontal drag. The zero value is ready to use.
type Tracker struct {
	dragging bool
	startX   float64
	offsetX  float64
}

// Start begins a drag anchored at x and zeroes the offset.
func (t *Tracker) Start(x float64) {
	t.dragging = true
	t.startX = x
	t.offsetX = 0
}

// Move updates the offset relative to the anchor. It is a no-op unless a
// drag is in progress.
func (t *Tracker) Move(x float64) {
	if !t.dragging {
		return
	}
	t.offsetX = x - t.startX
}

// End finalizes the gesture and returns the accumulated offset. The second
// return is false when no drag was in progress (a stray release). The
// tracker is cleared unconditionally, so a pointer leaving the surface can
// be routed here to avoid a stuck drag.
func (t *Tracker) End() (float64, bool) {
	offset := t.offsetX
	active := t.dragging
	t.dragging = false
	t.startX = 0
	t.offsetX = 0
	return offset, active
}

// Cancel discards any in-progress drag without reporting an offset.
func (t *Tracker) Cancel() {
	t.dragging = false
	t.startX = 0
	t.offsetX = 0
}

// Dragging reports whether a drag is in progress.
func (t *Tracker) Dragging() bool {
	return t.dragging
}

// Offset returns the current drag offset in pixels.
func (t *Tracker) Offset() float64 {
	return t.offsetX
}
