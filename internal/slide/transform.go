// Package slide maps a drag offset onto per-card transforms for the window
// of cards around the active slide. All arithmetic is pure; the shell feeds
// offsets in and renders whatever comes out.
package slide

import (
	"math"
)

// Transform is the pose of one card in the window.
type Transform struct {
	TranslateX  float64
	Scale       float64
	RotationDeg float64
	Opacity     float64
}

// Layout selects how many cards the window renders and how slot base
// positions are derived.
type Layout int

const (
	// LayoutCompact renders three slots on an equal-width track, each base
	// position a whole card apart.
	LayoutCompact Layout = iota
	// LayoutExtended renders five slots with base positions of half the
	// viewport plus half a card, so resting neighbors sit fully off screen.
	LayoutExtended
)

// Radius returns how many neighbors each side of the active card is held
// in the window.
func (l Layout) Radius() int {
	if l == LayoutExtended {
		return 2
	}
	return 1
}

func (l Layout) String() string {
	if l == LayoutExtended {
		return "extended"
	}
	return "compact"
}

// Geometry carries the pixel dimensions base positions derive from.
type Geometry struct {
	Layout        Layout
	ViewportWidth float64
	CardWidth     float64
}

// Step is the distance between adjacent slot base positions.
func (g Geometry) Step() float64 {
	if g.Layout == LayoutExtended {
		return g.ViewportWidth/2 + g.CardWidth/2
	}
	return g.CardWidth
}

// BasePosition is the resting horizontal position of a slot relative to
// the viewport center.
func (g Geometry) BasePosition(slot int) float64 {
	return float64(slot) * g.Step()
}

// Config holds the tunable pose constants.
type Config struct {
	// ScaleFloor is the resting scale of non-active cards and the minimum
	// the active card shrinks to during a full drag.
	ScaleFloor float64
	// MaxAngleDeg is the rotation reached by the active card at full drag
	// progress, and the resting tilt of neighbors.
	MaxAngleDeg float64
}

// DefaultConfig matches the canonical constants: a 0.9 scale floor and a
// 5 degree tilt.
func DefaultConfig() Config {
	return Config{ScaleFloor: 0.9, MaxAngleDeg: 5}
}

// Progress normalizes a drag offset against the reference card width into
// the [0,1] range.
func Progress(offset, referenceWidth float64) float64 {
	if referenceWidth <= 0 {
		return 0
	}
	p := math.Abs(offset) / referenceWidth
	return math.Min(math.Max(p, 0), 1)
}

// Direction is the sign of the offset. Ties resolve to +1.
func Direction(offset float64) float64 {
	if offset < 0 {
		return -1
	}
	return 1
}

// Compute returns the pose of the card occupying the given window slot for
// the current drag offset. Slot 0 is the active card; positive slots sit
// toward the next record. All cards stay fully opaque.
func Compute(slot int, offset float64, cfg Config, geo Geometry) Transform {
	p := Progress(offset, geo.CardWidth)
	dir := Direction(offset)
	// The slot being swiped toward: dragging left (negative offset) pulls
	// in the next card at slot +1.
	target := int(-dir)

	tr := Transform{
		TranslateX: geo.BasePosition(slot) + offset,
		Opacity:    1,
	}

	switch {
	case slot == 0:
		tr.Scale = 1 - (1-cfg.ScaleFloor)*p
		tr.RotationDeg = dir * cfg.MaxAngleDeg * p
	case slot == target && offset != 0:
		tr.Scale = cfg.ScaleFloor + (1-cfg.ScaleFloor)*p
		tr.RotationDeg = -dir * cfg.MaxAngleDeg * (1 - p)
	default:
		// Rest pose. The tilt matches the value the card would start its
		// target interpolation from, so poses stay continuous when a drag
		// begins.
		tr.Scale = cfg.ScaleFloor
		tr.RotationDeg = restTilt(slot) * cfg.MaxAngleDeg
	}
	return tr
}

func restTilt(slot int) float64 {
	switch {
	case slot > 0:
		return 1
	case slot < 0:
		return -1
	default:
		return 0
	}
}
