package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker_StartMoveEnd(t *testing.T) {
	t.Parallel()

	var tr Tracker
	tr.Start(200)
	assert.True(t, tr.Dragging())
	assert.Equal(t, 0.0, tr.Offset())

	tr.Move(140)
	assert.Equal(t, -60.0, tr.Offset())

	tr.Move(260)
	assert.Equal(t, 60.0, tr.Offset())

	offset, ok := tr.End()
	assert.True(t, ok)
	assert.Equal(t, 60.0, offset)
	assert.False(t, tr.Dragging())
	assert.Equal(t, 0.0, tr.Offset())
}

func TestTracker_MoveWithoutStartIsNoop(t *testing.T) {
	t.Parallel()

	var tr Tracker
	tr.Move(500)
	assert.False(t, tr.Dragging())
	assert.Equal(t, 0.0, tr.Offset())
}

func TestTracker_EndWithoutStart(t *testing.T) {
	t.Parallel()

	var tr Tracker
	offset, ok := tr.End()
	assert.False(t, ok)
	assert.Equal(t, 0.0, offset)
}

func TestTracker_EndClearsUnconditionally(t *testing.T) {
	t.Parallel()

	var tr Tracker
	tr.Start(100)
	tr.Move(50)
	tr.End()

	// Simulates the pointer re-entering after a leave: stale motion must
	// not resurrect the drag.
	tr.Move(300)
	assert.Equal(t, 0.0, tr.Offset())
}

func TestTracker_Cancel(t *testing.T) {
	t.Parallel()

	var tr Tracker
	tr.Start(100)
	tr.Move(180)
	tr.Cancel()

	assert.False(t, tr.Dragging())
	offset, ok := tr.End()
	assert.False(t, ok)
	assert.Equal(t, 0.0, offset)
}

func TestTracker_RestartZeroesOffset(t *testing.T) {
	t.Parallel()

	var tr Tracker
	tr.Start(100)
	tr.Move(250)
	tr.Start(400)
	assert.Equal(t, 0.0, tr.Offset())

	tr.Move(390)
	assert.Equal(t, -10.0, tr.Offset())
}
