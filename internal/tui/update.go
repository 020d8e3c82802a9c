package tui

import (
	"math"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/talvid/swipedeck/internal/nav"
)

// tapSlopPx is the largest release offset still treated as a tap rather
// than a drag.
const tapSlopPx = 5.0

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case tea.KeyMsg:
		if m.showPicker {
			return m.handlePickerKey(msg)
		}
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.showPicker {
			return m, nil
		}
		return m.handleMouse(msg)
	case frameMsg:
		return m.handleFrame()
	case transitionDoneMsg:
		return m.handleTransitionDone(msg)
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	previous := m.breakpoint
	m.breakpoint = DetectBreakpoint(msg.Width)
	m.geo = m.geometry()
	m.refitCards()

	if previous != m.breakpoint {
		// Commit durations differ per breakpoint; rebuild the machine
		// config by recreating it at the same index. In-flight phases are
		// invalidated rather than retimed.
		machine, err := nav.NewMachine(m.deck.Len(), m.machine.Index(), m.cfg.NavConfig(m.geo.Layout))
		if err == nil {
			m.machine.Shutdown()
			m.machine = machine
			m.wireObservers()
			m.tracker.Cancel()
			m.animator.SetImmediate(0)
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.machine.Shutdown()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Prev):
		return m.trigger(nav.DirRight)
	case key.Matches(msg, m.keys.Next):
		return m.trigger(nav.DirLeft)
	case key.Matches(msg, m.keys.Categories):
		m.showPicker = true
		m.picker.reset()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	return m, nil
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.showPicker = false
		return m, nil
	case tea.KeyEnter:
		m.showPicker = false
		m.applyCategoryFilter(m.picker.selection())
		return m, nil
	case tea.KeyUp:
		m.picker.moveCursor(-1)
		return m, nil
	case tea.KeyDown:
		m.picker.moveCursor(1)
		return m, nil
	case tea.KeySpace:
		m.picker.toggleCurrent()
		return m, nil
	case tea.KeyBackspace:
		m.picker.backspace()
		return m, nil
	case tea.KeyCtrlC:
		m.quitting = true
		m.machine.Shutdown()
		return m, tea.Quit
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.picker.typeRune(r)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if !m.machine.StartDrag() {
			// A transition is in flight; the gesture is rejected, not
			// queued.
			return m, nil
		}
		m.pressActive = true
		m.pressMoved = false
		m.pressX = m.pxForColumn(msg.X)
		m.tracker.Start(m.pressX)
		return m, nil

	case tea.MouseActionMotion:
		if !m.pressActive || m.machine.State() != nav.StateDragging {
			return m, nil
		}
		m.tracker.Move(m.pxForColumn(msg.X))
		if math.Abs(m.tracker.Offset()) > tapSlopPx {
			m.pressMoved = true
		}
		m.animator.SetImmediate(m.tracker.Offset())
		m.machine.DragProgress(m.tracker.Offset(), m.geo.CardWidth)
		return m, nil

	case tea.MouseActionRelease:
		return m.handleRelease(msg.X)
	}
	return m, nil
}

func (m Model) handleRelease(col int) (tea.Model, tea.Cmd) {
	offset, ok := m.tracker.End()
	m.pressActive = false
	if !ok || m.machine.State() != nav.StateDragging {
		return m, nil
	}

	// A press-and-release without meaningful motion inside an edge zone
	// navigates like a full-magnitude swipe.
	if !m.pressMoved && math.Abs(offset) <= tapSlopPx {
		m.machine.CancelDrag()
		if dir, ok := m.edgeTapDirection(col); ok {
			return m.trigger(dir)
		}
		return m, nil
	}

	outcome := m.machine.Release(offset, m.geo.CardWidth)
	return m.scheduleOutcome(outcome)
}

// edgeTapDirection maps a tap column to a navigation direction when it
// falls inside one of the edge zones.
func (m Model) edgeTapDirection(col int) (nav.Direction, bool) {
	zone := m.cfg.Gesture.EdgeTapZonePx
	x := m.pxForColumn(col)
	viewport := float64(m.width) * m.cellAdvance()
	switch {
	case x <= zone:
		return nav.DirRight, true
	case x >= viewport-zone:
		return nav.DirLeft, true
	default:
		return nav.DirNone, false
	}
}

func (m Model) trigger(dir nav.Direction) (tea.Model, tea.Cmd) {
	outcome, ok := m.machine.Trigger(dir)
	if !ok {
		// No neighbor in that direction, or a transition in flight:
		// a silent no-op.
		return m, nil
	}
	return m.scheduleOutcome(outcome)
}

// scheduleOutcome starts the animation and completion timer for a release
// or trigger outcome.
func (m Model) scheduleOutcome(outcome nav.Outcome) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch outcome.State {
	case nav.StateCommitting:
		target := m.geo.Step()
		if outcome.Dir == nav.DirLeft {
			target = -target
		}
		m.animator.AnimateTo(target)
	case nav.StateSnappingBack:
		m.animator.AnimateTo(0)
	default:
		return m, nil
	}

	cmds = append(cmds, transitionDoneCmd(outcome.Duration, outcome.Seq))
	if !m.framePending {
		m.framePending = true
		cmds = append(cmds, frameCmd(m.cfg.Animation.FPS))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	m.framePending = false
	if !m.animator.Active() {
		return m, nil
	}
	m.animator.Step()
	if m.animator.Active() {
		m.framePending = true
		return m, frameCmd(m.cfg.Animation.FPS)
	}
	return m, nil
}

func (m Model) handleTransitionDone(msg transitionDoneMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.machine.Seq() {
		// Stale timer from a torn-down or replaced phase.
		return m, nil
	}

	// Reset transient presentation state before the index changes so the
	// new active card paints at its base position in the same frame.
	m.tracker.Cancel()
	m.animator.SetImmediate(0)
	if m.machine.Complete(msg.seq) {
		m.refitCards()
	}
	return m, nil
}
