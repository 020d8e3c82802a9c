package slide

// Slot is one fixed position in the card window. Index is the absolute
// position in the question sequence and doubles as the stable slide index
// used to seed per-slide visual variation; Present is false at sequence
// boundaries where no record exists.
type Slot struct {
	Offset  int
	Index   int
	Present bool
}

// Window is a fixed-radius view into the question sequence centered on the
// active index.
type Window struct {
	Radius int
	Active int
	Length int
}

// NewWindow builds a window for the given layout radius.
func NewWindow(layout Layout, active, length int) Window {
	return Window{Radius: layout.Radius(), Active: active, Length: length}
}

// Slots returns the window slots in left-to-right order, from -Radius
// through +Radius.
func (w Window) Slots() []Slot {
	slots := make([]Slot, 0, 2*w.Radius+1)
	for off := -w.Radius; off <= w.Radius; off++ {
		idx := w.Active + off
		slots = append(slots, Slot{
			Offset:  off,
			Index:   idx,
			Present: idx >= 0 && idx < w.Length,
		})
	}
	return slots
}
