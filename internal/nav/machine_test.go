package nav

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		ThresholdPx:      50,
		CommitDuration:   300 * time.Millisecond,
		SnapBackDuration: 250 * time.Millisecond,
	}
}

func newTestMachine(t *testing.T, length, start int) *Machine {
	t.Helper()
	m, err := NewMachine(length, start, testConfig())
	require.NoError(t, err)
	return m
}

func TestNewMachine_RejectsOutOfRangeStart(t *testing.T) {
	t.Parallel()

	_, err := NewMachine(3, 3, testConfig())
	assert.Error(t, err)

	_, err = NewMachine(3, -1, testConfig())
	assert.Error(t, err)

	m, err := NewMachine(0, 5, testConfig())
	require.NoError(t, err)
	assert.Equal(t, 0, m.Index(), "empty sequence pins the start index")
}

func TestRelease_BelowThresholdSnapsBack(t *testing.T) {
	t.Parallel()

	m := newTestMachine(t, 3, 1)
	require.True(t, m.StartDrag())

	out := m.Release(-30, 300)
	assert.Equal(t, StateSnappingBack, out.State)
	assert.Equal(t, 250*time.Millisecond, out.Duration)
	assert.Equal(t, 1, m.Index(), "index unchanged below threshold")

	require.True(t, m.Complete(out.Seq))
	assert.Equal(t, StateIdle, m.State())
	assert.Equal(t, 1, m.Index())
}

func TestRelease_AboveThresholdCommitsExactlyOne(t *testing.T) {
	t.Parallel()

	m := newTestMachine(t, 3, 0)
	require.True(t, m.StartDrag())

	out := m.Release(-120, 300)
	require.Equal(t, StateCommitting, out.State)
	assert.Equal(t, DirLeft, out.Dir)
	assert.Equal(t, 300*time.Millisecond, out.Duration)
	assert.Equal(t, 0, m.Index(), "index only changes on completion")

	require.True(t, m.Complete(out.Seq))
	assert.Equal(t, 1, m.Index())
	assert.Equal(t, StateIdle, m.State())
}

func TestRelease_PastBoundarySnapsBack(t *testing.T) {
	t.Parallel()

	// At the last record, a hard left swipe has nowhere to go.
	m := newTestMachine(t, 3, 2)
	require.True(t, m.StartDrag())

	out := m.Release(-200, 300)
	assert.Equal(t, StateSnappingBack, out.State)
	require.True(t, m.Complete(out.Seq))
	assert.Equal(t, 2, m.Index())
}

func TestTrigger_ArrowAtFirstRecordIsNoop(t *testing.T) {
	t.Parallel()

	// ArrowLeft maps to the previous record (DirRight); at index 0 there
	// is none.
	m := newTestMachine(t, 3, 0)
	_, ok := m.Trigger(DirRight)
	assert.False(t, ok)
	assert.Equal(t, 0, m.Index())
	assert.Equal(t, StateIdle, m.State())
}

func TestTrigger_SynthesizesCommitFromIdle(t *testing.T) {
	t.Parallel()

	m := newTestMachine(t, 3, 0)
	out, ok := m.Trigger(DirLeft)
	require.True(t, ok)
	assert.Equal(t, StateCommitting, out.State)

	require.True(t, m.Complete(out.Seq))
	assert.Equal(t, 1, m.Index())
}

func TestTrigger_IgnoredWhileCommitting(t *testing.T) {
	t.Parallel()

	m := newTestMachine(t, 5, 2)
	out, ok := m.Trigger(DirLeft)
	require.True(t, ok)

	_, ok = m.Trigger(DirLeft)
	assert.False(t, ok, "re-entrant trigger must be ignored")
	assert.False(t, m.StartDrag(), "new gesture rejected while committing")

	require.True(t, m.Complete(out.Seq))
	assert.Equal(t, 3, m.Index())
}

func TestComplete_StaleSequenceIgnored(t *testing.T) {
	t.Parallel()

	m := newTestMachine(t, 3, 0)
	require.True(t, m.StartDrag())
	out := m.Release(-120, 300)

	m.Shutdown()
	assert.False(t, m.Complete(out.Seq), "timer fired after teardown")
	assert.Equal(t, 0, m.Index())
}

func TestComplete_DuplicateTimerIgnored(t *testing.T) {
	t.Parallel()

	m := newTestMachine(t, 3, 0)
	require.True(t, m.StartDrag())
	out := m.Release(-120, 300)

	require.True(t, m.Complete(out.Seq))
	assert.False(t, m.Complete(out.Seq))
	assert.Equal(t, 1, m.Index())
}

func TestScenario_DragLeftCommitsWithProgressOne(t *testing.T) {
	t.Parallel()

	// Three categorized questions: party, family, party.
	categories := []string{"party", "family", "party"}
	m := newTestMachine(t, 3, 0)
	m.SetCategoryLookup(func(i int) string { return categories[i] })

	var lastProgress float64
	var lastCategory string
	var committedIndex int
	var committedDir Direction
	m.SetObservers(
		func(p float64, cat string, _ Direction) {
			lastProgress = p
			lastCategory = cat
		},
		func(idx int, dir Direction) {
			committedIndex = idx
			committedDir = dir
		},
	)

	require.True(t, m.StartDrag())
	m.DragProgress(-90, 300)
	assert.InDelta(t, 0.3, lastProgress, 0.001)
	assert.Equal(t, "family", lastCategory)

	out := m.Release(-120, 300)
	require.Equal(t, StateCommitting, out.State)
	assert.Equal(t, 1.0, lastProgress, "progress reaches 1 at the commit decision, not completion")
	assert.Equal(t, "family", lastCategory)

	require.True(t, m.Complete(out.Seq))
	assert.Equal(t, 1, committedIndex)
	assert.Equal(t, DirLeft, committedDir)
}

func TestProperty_IndexNeverLeavesRange(t *testing.T) {
	t.Parallel()

	const length = 7
	m := newTestMachine(t, length, 3)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		before := m.Index()
		if rng.Intn(2) == 0 {
			require.True(t, m.StartDrag())
			offset := (rng.Float64() - 0.5) * 600
			out := m.Release(offset, 300)
			m.Complete(out.Seq)
		} else {
			dir := DirLeft
			if rng.Intn(2) == 0 {
				dir = DirRight
			}
			if out, ok := m.Trigger(dir); ok {
				m.Complete(out.Seq)
			}
		}

		idx := m.Index()
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, length)
		require.LessOrEqual(t, abs(idx-before), 1, "index moves by at most one")
		require.Equal(t, StateIdle, m.State())
	}
}

func TestDragProgress_OnlyWhileDragging(t *testing.T) {
	t.Parallel()

	m := newTestMachine(t, 3, 0)
	called := false
	m.SetObservers(func(float64, string, Direction) { called = true }, nil)

	m.DragProgress(-90, 300)
	assert.False(t, called, "progress must not fire outside a drag")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
