// Package nav owns the active slide index and arbitrates between drag
// releases, edge taps, and keyboard triggers. Every user-driven condition
// resolves to a defined transition or a silent no-op; the only way this
// package fails is a broken invariant, which panics.
package nav

import (
	"math"
	"time"

	"github.com/talvid/swipedeck/pkg/errors"
)

// State enumerates the machine phases.
type State int

const (
	StateIdle State = iota
	StateDragging
	StateCommitting
	StateSnappingBack
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateCommitting:
		return "committing"
	case StateSnappingBack:
		return "snapping_back"
	default:
		return "unknown"
	}
}

// Direction of a navigation. DirLeft is a leftward swipe, which advances
// to the next record; DirRight retreats to the previous one.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// Delta is the index change a committed navigation applies.
func (d Direction) Delta() int {
	switch d {
	case DirLeft:
		return 1
	case DirRight:
		return -1
	default:
		return 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Config holds the machine's tunable constants.
type Config struct {
	ThresholdPx      float64
	CommitDuration   time.Duration
	SnapBackDuration time.Duration
}

// DefaultConfig returns the canonical constants: a 60px swipe threshold,
// 400ms commits, 250ms snap-backs.
func DefaultConfig() Config {
	return Config{
		ThresholdPx:      60,
		CommitDuration:   400 * time.Millisecond,
		SnapBackDuration: 250 * time.Millisecond,
	}
}

// ProgressFunc observes drag progress toward a neighboring record. It
// also fires with progress 1 the moment a commit is decided, so dependent
// visual state animates in lock-step with the card.
type ProgressFunc func(progress float64, targetCategory string, dir Direction)

// CommitFunc observes committed index changes.
type CommitFunc func(newIndex int, dir Direction)

// Outcome describes the transition a release or trigger produced. Seq
// identifies the pending phase so the shell's timer callback can be
// recognized as current or stale, and Duration is how long the phase runs.
type Outcome struct {
	State    State
	Dir      Direction
	Seq      uint64
	Duration time.Duration
}

// Machine is the navigation state machine. Not safe for concurrent use;
// the shell drives it from a single event loop.
type Machine struct {
	cfg    Config
	state  State
	dir    Direction
	index  int
	length int
	seq    uint64

	categoryAt func(int) string
	onProgress ProgressFunc
	onCommit   CommitFunc
}

// NewMachine creates a machine over a sequence of the given length,
// starting at index start. The empty sequence is valid and pins start
// to zero.
func NewMachine(length, start int, cfg Config) (*Machine, error) {
	if length < 0 {
		return nil, errors.NewInvariantError("nav", "negative sequence length %d", length)
	}
	if length == 0 {
		start = 0
	} else if start < 0 || start >= length {
		return nil, errors.NewInvariantError("nav", "start index %d outside [0,%d)", start, length)
	}
	return &Machine{cfg: cfg, state: StateIdle, index: start, length: length}, nil
}

// SetObservers registers the progress and commit observers.
func (m *Machine) SetObservers(progress ProgressFunc, commit CommitFunc) {
	m.onProgress = progress
	m.onCommit = commit
}

// SetCategoryLookup registers the category accessor used to report the
// target category alongside drag progress.
func (m *Machine) SetCategoryLookup(fn func(int) string) {
	m.categoryAt = fn
}

// Index returns the active index.
func (m *Machine) Index() int { return m.index }

// Len returns the sequence length.
func (m *Machine) Len() int { return m.length }

// State returns the current phase.
func (m *Machine) State() State { return m.state }

// Seq identifies the current pending phase. Timer callbacks carrying an
// older sequence are stale.
func (m *Machine) Seq() uint64 { return m.seq }

// Dir returns the direction of an in-flight commit, or DirNone.
func (m *Machine) Dir() Direction { return m.dir }

// StartDrag begins a gesture. Returns false while any transition is in
// flight; re-entrant gestures are rejected, not queued.
func (m *Machine) StartDrag() bool {
	if m.state != StateIdle {
		return false
	}
	m.state = StateDragging
	m.dir = DirNone
	return true
}

// DragProgress reports the live offset of an in-progress drag and
// notifies the progress observer.
func (m *Machine) DragProgress(offset, referenceWidth float64) {
	if m.state != StateDragging || m.onProgress == nil {
		return
	}
	dir := directionForOffset(offset)
	p := 0.0
	if referenceWidth > 0 {
		p = math.Min(math.Abs(offset)/referenceWidth, 1)
	}
	m.onProgress(p, m.targetCategory(dir), dir)
}

// Release ends a drag. Crossing the threshold toward an existing neighbor
// commits; everything else, including a swipe past a sequence boundary,
// snaps back.
func (m *Machine) Release(offset, referenceWidth float64) Outcome {
	if m.state != StateDragging {
		return Outcome{State: m.state}
	}

	dir := directionForOffset(offset)
	if math.Abs(offset) >= m.cfg.ThresholdPx && m.hasNeighbor(dir) {
		return m.beginCommit(dir)
	}

	m.state = StateSnappingBack
	m.dir = DirNone
	m.seq++
	return Outcome{State: StateSnappingBack, Seq: m.seq, Duration: m.cfg.SnapBackDuration}
}

// Trigger synthesizes a commit from an edge tap or an arrow key, using
// the same arithmetic as a full-magnitude drag. It is ignored unless the
// machine is idle and a neighbor exists in that direction.
func (m *Machine) Trigger(dir Direction) (Outcome, bool) {
	if m.state != StateIdle || dir == DirNone {
		return Outcome{}, false
	}
	if !m.hasNeighbor(dir) {
		return Outcome{}, false
	}
	return m.beginCommit(dir), true
}

// CancelDrag abandons an in-progress drag without an outcome, for
// teardown paths. A live release should go through Release instead.
func (m *Machine) CancelDrag() {
	if m.state == StateDragging {
		m.state = StateIdle
		m.dir = DirNone
	}
}

// Shutdown invalidates any pending phase so late timer callbacks are
// recognized as stale. Used when the shell is torn down mid-transition.
func (m *Machine) Shutdown() {
	m.seq++
	m.state = StateIdle
	m.dir = DirNone
}

// Complete finishes the phase identified by seq. Stale or duplicate
// sequence numbers are ignored. Completing a commit applies the index
// change and notifies the commit observer; the shell must have reset
// transient drag state before calling, so the new index paints clean.
func (m *Machine) Complete(seq uint64) bool {
	if seq != m.seq {
		return false
	}
	switch m.state {
	case StateCommitting:
		next := m.index + m.dir.Delta()
		if next < 0 || next >= m.length {
			panic(errors.NewInvariantError("nav", "committed index %d outside [0,%d)", next, m.length))
		}
		dir := m.dir
		m.index = next
		m.state = StateIdle
		m.dir = DirNone
		if m.onCommit != nil {
			m.onCommit(m.index, dir)
		}
		return true
	case StateSnappingBack:
		m.state = StateIdle
		return true
	default:
		return false
	}
}

func (m *Machine) beginCommit(dir Direction) Outcome {
	m.state = StateCommitting
	m.dir = dir
	m.seq++
	if m.onProgress != nil {
		m.onProgress(1, m.targetCategory(dir), dir)
	}
	return Outcome{State: StateCommitting, Dir: dir, Seq: m.seq, Duration: m.cfg.CommitDuration}
}

func (m *Machine) hasNeighbor(dir Direction) bool {
	idx := m.index + dir.Delta()
	return dir != DirNone && idx >= 0 && idx < m.length
}

func (m *Machine) targetCategory(dir Direction) string {
	if m.categoryAt == nil {
		return ""
	}
	idx := m.index + dir.Delta()
	if idx < 0 || idx >= m.length {
		return ""
	}
	return m.categoryAt(idx)
}

// directionForOffset maps a signed drag offset to a navigation direction.
// Negative offsets swipe left toward the next record; ties resolve to the
// positive side, matching the transform calculator.
func directionForOffset(offset float64) Direction {
	if offset < 0 {
		return DirLeft
	}
	return DirRight
}
