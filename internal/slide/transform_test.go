package slide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testGeo = Geometry{Layout: LayoutCompact, ViewportWidth: 900, CardWidth: 300}

func TestProgress_ClampsToUnitRange(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, Progress(0, 300))
	assert.InDelta(t, 0.5, Progress(-150, 300), 0.001)
	assert.InDelta(t, 0.5, Progress(150, 300), 0.001)
	assert.Equal(t, 1.0, Progress(450, 300))
	assert.Equal(t, 1.0, Progress(-10000, 300))
	assert.Equal(t, 0.0, Progress(120, 0))
}

func TestDirection_TiesResolvePositive(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, Direction(0))
	assert.Equal(t, 1.0, Direction(42))
	assert.Equal(t, -1.0, Direction(-42))
}

func TestCompute_IdlePose(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	active := Compute(0, 0, cfg, testGeo)
	assert.InDelta(t, 1.0, active.Scale, 0.001)
	assert.InDelta(t, 0.0, active.RotationDeg, 0.001)
	assert.InDelta(t, 0.0, active.TranslateX, 0.001)
	assert.Equal(t, 1.0, active.Opacity)

	next := Compute(1, 0, cfg, testGeo)
	assert.InDelta(t, cfg.ScaleFloor, next.Scale, 0.001)
	assert.InDelta(t, cfg.MaxAngleDeg, next.RotationDeg, 0.001)
	assert.InDelta(t, 300.0, next.TranslateX, 0.001)

	prev := Compute(-1, 0, cfg, testGeo)
	assert.InDelta(t, -cfg.MaxAngleDeg, prev.RotationDeg, 0.001)
	assert.InDelta(t, -300.0, prev.TranslateX, 0.001)
}

func TestCompute_ActiveCardShrinksAndRotatesAway(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	// Half a card width to the left.
	tr := Compute(0, -150, cfg, testGeo)
	assert.InDelta(t, 0.95, tr.Scale, 0.001)
	assert.InDelta(t, -2.5, tr.RotationDeg, 0.001)
	assert.InDelta(t, -150.0, tr.TranslateX, 0.001)

	// Full drag pins the floor and max angle.
	tr = Compute(0, -300, cfg, testGeo)
	assert.InDelta(t, cfg.ScaleFloor, tr.Scale, 0.001)
	assert.InDelta(t, -cfg.MaxAngleDeg, tr.RotationDeg, 0.001)
}

func TestCompute_TargetNeighborRotatesIntoPlace(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	// Dragging left pulls in slot +1.
	tr := Compute(1, -150, cfg, testGeo)
	assert.InDelta(t, 0.95, tr.Scale, 0.001)
	assert.InDelta(t, 2.5, tr.RotationDeg, 0.001)

	tr = Compute(1, -300, cfg, testGeo)
	assert.InDelta(t, 1.0, tr.Scale, 0.001)
	assert.InDelta(t, 0.0, tr.RotationDeg, 0.001)

	// The slot not being swiped toward stays at rest.
	rest := Compute(-1, -150, cfg, testGeo)
	assert.InDelta(t, cfg.ScaleFloor, rest.Scale, 0.001)
	assert.InDelta(t, -cfg.MaxAngleDeg, rest.RotationDeg, 0.001)
}

func TestCompute_PoseContinuousAtDragStart(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	// The instant a left drag begins, the target neighbor's interpolated
	// pose must equal its resting pose.
	rest := Compute(1, 0, cfg, testGeo)
	started := Compute(1, -0.001, cfg, testGeo)
	assert.InDelta(t, rest.Scale, started.Scale, 0.01)
	assert.InDelta(t, rest.RotationDeg, started.RotationDeg, 0.01)
}

func TestGeometry_ExtendedStepHidesNeighbors(t *testing.T) {
	t.Parallel()

	geo := Geometry{Layout: LayoutExtended, ViewportWidth: 1200, CardWidth: 360}
	// Half viewport plus half card: the resting neighbor's near edge sits
	// exactly at the viewport edge.
	assert.InDelta(t, 780.0, geo.Step(), 0.001)
	assert.InDelta(t, -1560.0, geo.BasePosition(-2), 0.001)
	assert.Equal(t, 2, geo.Layout.Radius())
}

func TestWindow_BoundarySlots(t *testing.T) {
	t.Parallel()

	w := NewWindow(LayoutExtended, 0, 3)
	slots := w.Slots()
	require.Len(t, slots, 5)

	assert.False(t, slots[0].Present, "no record two before the first")
	assert.False(t, slots[1].Present, "no record before the first")
	assert.True(t, slots[2].Present)
	assert.Equal(t, 0, slots[2].Index)
	assert.True(t, slots[3].Present)
	assert.True(t, slots[4].Present)

	end := NewWindow(LayoutCompact, 2, 3)
	endSlots := end.Slots()
	require.Len(t, endSlots, 3)
	assert.True(t, endSlots[0].Present)
	assert.True(t, endSlots[1].Present)
	assert.False(t, endSlots[2].Present, "no record after the last")
}

func TestAnimator_SettlesOnTarget(t *testing.T) {
	t.Parallel()

	a := NewAnimator(60)
	a.SetImmediate(-120)
	a.AnimateTo(-300)

	require.True(t, a.Active())
	for i := 0; i < 600 && a.Active(); i++ {
		a.Step()
	}
	assert.False(t, a.Active(), "spring should settle within ten seconds of frames")
	assert.InDelta(t, -300.0, a.Pos(), 0.001)
}

func TestAnimator_SetImmediateKillsAnimation(t *testing.T) {
	t.Parallel()

	a := NewAnimator(60)
	a.AnimateTo(500)
	a.Step()
	a.SetImmediate(0)

	assert.False(t, a.Active())
	assert.Equal(t, 0.0, a.Pos())
	assert.Equal(t, 0.0, a.Step(), "stepping while inactive holds position")
}
