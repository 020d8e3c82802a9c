package tui

import (
	"time"
)

// frameMsg drives one animation frame. At most one is ever pending; a new
// request while one is in flight is coalesced, not queued.
type frameMsg time.Time

// transitionDoneMsg fires when a commit or snap-back phase has run its
// duration. Seq identifies the phase; a stale sequence (teardown, filter
// change) is ignored.
type transitionDoneMsg struct {
	seq uint64
}
