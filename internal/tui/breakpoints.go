package tui

import (
	"github.com/talvid/swipedeck/internal/slide"
)

// Breakpoint buckets the terminal width into the two supported card
// window layouts.
type Breakpoint int

const (
	// BreakpointCompact covers touch-sized viewports under 120 columns:
	// a three-card window and the shorter commit duration.
	BreakpointCompact Breakpoint = iota
	// BreakpointExtended covers desktop-sized viewports: five cards with
	// resting neighbors fully off screen.
	BreakpointExtended
)

// compactMax is the widest terminal still treated as compact.
const compactMax = 119

// DetectBreakpoint returns the breakpoint for a terminal width.
func DetectBreakpoint(width int) Breakpoint {
	if width <= compactMax {
		return BreakpointCompact
	}
	return BreakpointExtended
}

// Layout maps the breakpoint to its slide window layout.
func (b Breakpoint) Layout() slide.Layout {
	if b == BreakpointExtended {
		return slide.LayoutExtended
	}
	return slide.LayoutCompact
}

func (b Breakpoint) String() string {
	if b == BreakpointExtended {
		return "extended"
	}
	return "compact"
}
