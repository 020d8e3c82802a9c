// Package measure provides the text measurement capability used to decide
// whether a word fits its container. The hyphenation engine only ever sees
// the Measurer interface, so tests can inject a deterministic width function
// and the engine degrades to a passthrough when no measurer is available.
package measure

import (
	"github.com/mattn/go-runewidth"
)

// FontSpec describes the font a text run would be rendered with.
type FontSpec struct {
	SizePx float64
	Family string
	Weight int
}

// Measurer reports the rendered pixel width of a text run under a font.
type Measurer interface {
	Width(text string, font FontSpec) float64
}

// defaultAdvanceRatio is the horizontal advance of one terminal cell as a
// fraction of the font size, matching typical monospace metrics.
const defaultAdvanceRatio = 0.6

// CellMeasurer measures text in terminal display cells and converts the
// cell count to pixels using the font size. Wide runes (CJK, emoji) count
// as two cells, combining marks as zero, per go-runewidth.
type CellMeasurer struct {
	// AdvanceRatio overrides the per-cell advance as a fraction of the
	// font size. Zero means the default.
	AdvanceRatio float64
}

// NewCellMeasurer returns a CellMeasurer with default metrics.
func NewCellMeasurer() *CellMeasurer {
	return &CellMeasurer{}
}

// Width implements Measurer.
func (m *CellMeasurer) Width(text string, font FontSpec) float64 {
	ratio := m.AdvanceRatio
	if ratio <= 0 {
		ratio = defaultAdvanceRatio
	}
	cells := runewidth.StringWidth(text)
	return float64(cells) * font.SizePx * ratio
}

// Func adapts a plain function to the Measurer interface.
type Func func(text string, font FontSpec) float64

// Width implements Measurer.
func (f Func) Width(text string, font FontSpec) float64 {
	return f(text, font)
}
