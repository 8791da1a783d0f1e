package dial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func deg(d float64) float64 { return d * math.Pi / 180 }

func TestNewDefaults(t *testing.T) {
	d := New()
	st := d.State()
	require.Equal(t, 60, st.Remaining)
	require.False(t, st.Running)
	require.False(t, st.Dragging)
	require.False(t, st.Spinning)
	require.Equal(t, PhaseIdle, d.Phase())
	require.Equal(t, 2.0, d.Sensitivity())

	d = New(WithInitial(9000), WithSensitivity(-1))
	require.Equal(t, MaxSeconds, d.Remaining())
	require.Equal(t, 2.0, d.Sensitivity())
}

func TestAdjustClamps(t *testing.T) {
	for _, delta := range []int{-100000, -3601, -61, -1, 0, 1, 59, 3540, 3541, 100000} {
		d := New()
		d.Adjust(delta)
		require.GreaterOrEqual(t, d.Remaining(), 0, "delta %d", delta)
		require.LessOrEqual(t, d.Remaining(), MaxSeconds, "delta %d", delta)
	}

	d := New()
	require.True(t, d.Adjust(10))
	require.Equal(t, 70, d.Remaining())
	require.True(t, d.Adjust(-1000))
	require.Equal(t, 0, d.Remaining())
	require.False(t, d.Adjust(-10))
	d.Set(3590)
	d.Adjust(60)
	require.Equal(t, MaxSeconds, d.Remaining())
}

func TestAdjustAndDragIgnoredWhileRunning(t *testing.T) {
	d := New()
	require.True(t, d.Toggle())
	require.False(t, d.Adjust(60))
	require.False(t, d.Set(10))
	require.False(t, d.Reset())
	require.False(t, d.PointerDown(10, 0, 0, 0))
	require.False(t, d.Dragging())
	require.Zero(t, d.PointerMove(0, 10))
	require.Equal(t, 60, d.Remaining())
}

func TestTickExpiresInOneTransition(t *testing.T) {
	d := New(WithInitial(1))
	d.Toggle()
	gen := d.RunGen()
	require.Equal(t, TickExpired, d.Tick(gen))
	st := d.State()
	require.Equal(t, 0, st.Remaining)
	require.False(t, st.Running)
	require.True(t, st.Spinning)
	require.Equal(t, PhaseIdle, d.Phase())
	require.Equal(t, 1, d.Elapsed())

	// the run is over; a trailing tick from the same timer does nothing
	require.Equal(t, TickIgnored, d.Tick(gen))
	require.Equal(t, 0, d.Remaining())
}

func TestTickCountsDown(t *testing.T) {
	d := New(WithInitial(3))
	d.Toggle()
	gen := d.RunGen()
	require.Equal(t, TickCounted, d.Tick(gen))
	require.Equal(t, TickCounted, d.Tick(gen))
	require.Equal(t, 1, d.Remaining())
	require.True(t, d.Running())
	require.Equal(t, TickExpired, d.Tick(gen))
	require.Equal(t, 3, d.Planned())
}

func TestStaleTickIgnoredAfterPause(t *testing.T) {
	d := New(WithInitial(10))
	d.Toggle()
	first := d.RunGen()
	d.Toggle() // pause
	require.Equal(t, TickIgnored, d.Tick(first))
	d.Toggle() // resume
	require.Equal(t, TickIgnored, d.Tick(first))
	require.Equal(t, TickCounted, d.Tick(d.RunGen()))
	require.Equal(t, 9, d.Remaining())
}

func TestToggleAtZeroNeverTicks(t *testing.T) {
	d := New(WithInitial(0))
	require.True(t, d.Toggle())
	require.True(t, d.Running())
	require.False(t, d.ShouldTick())
	require.Equal(t, TickIgnored, d.Tick(d.RunGen()))
	require.Equal(t, 0, d.Remaining())
	require.False(t, d.Spinning())
}

func TestClearSpinOnlyCurrentGeneration(t *testing.T) {
	d := New(WithInitial(1))
	d.Toggle()
	d.Tick(d.RunGen())
	first := d.SpinGen()

	// a second expiry before the first clear fires supersedes it
	d.Set(1)
	d.Toggle()
	d.Tick(d.RunGen())
	second := d.SpinGen()
	require.NotEqual(t, first, second)

	require.False(t, d.ClearSpin(first))
	require.True(t, d.Spinning())
	require.True(t, d.ClearSpin(second))
	require.False(t, d.Spinning())
	require.False(t, d.ClearSpin(second))
}

func TestDragFollowsPointer(t *testing.T) {
	d := New(WithSensitivity(2))
	require.True(t, d.PointerDown(10, 0, 0, 0))
	st := d.State()
	require.True(t, st.Dragging)
	require.Equal(t, PhaseDragging, d.Phase())
	require.InDelta(t, 0, st.DragStart, 1e-9)

	// quarter turn clockwise on screen (y grows downward)
	require.Equal(t, 30, d.PointerMove(0, 10))
	require.Equal(t, 90, d.Remaining())
	require.InDelta(t, math.Pi/2, d.State().DragLast, 1e-9)
	require.InDelta(t, 0, d.State().DragStart, 1e-9)

	// and back
	require.Equal(t, -30, d.PointerMove(10, 0))
	require.Equal(t, 60, d.Remaining())

	d.PointerUp()
	require.False(t, d.Dragging())
	require.Zero(t, d.PointerMove(0, 10))
}

func TestDragFullTurn(t *testing.T) {
	for _, s := range []float64{2, 30} {
		d := New(WithSensitivity(s), WithInitial(0))
		d.PointerDown(10, 0, 0, 0)
		total := 0
		for _, a := range []float64{90, 180, 270, 360} {
			total += d.PointerMove(10*math.Cos(deg(a)), 10*math.Sin(deg(a)))
		}
		require.Equal(t, int(60*s), total, "sensitivity %v", s)
	}
}

func TestDragWrapsAcrossPi(t *testing.T) {
	d := New(WithSensitivity(30), WithInitial(600))
	d.PointerDown(10*math.Cos(deg(179)), 10*math.Sin(deg(179)), 0, 0)
	moved := d.PointerMove(10*math.Cos(deg(-179)), 10*math.Sin(deg(-179)))
	// +2° at sensitivity 30 is 10 seconds, not a large negative jump
	require.Equal(t, 10, moved)
	require.Equal(t, 610, d.Remaining())
}

func TestDragClamps(t *testing.T) {
	d := New(WithSensitivity(30), WithInitial(5))
	d.PointerDown(10, 0, 0, 0)
	d.PointerMove(10*math.Cos(deg(-90)), 10*math.Sin(deg(-90)))
	require.Equal(t, 0, d.Remaining())
}

func TestPointerUpAlwaysSafe(t *testing.T) {
	d := New()
	d.PointerUp()
	require.False(t, d.Dragging())
	require.Equal(t, PhaseIdle, d.Phase())
}

func TestToggleDuringDragEndsGesture(t *testing.T) {
	d := New()
	d.PointerDown(10, 0, 0, 0)
	require.True(t, d.Toggle())
	st := d.State()
	require.True(t, st.Running)
	require.False(t, st.Dragging)
}

func TestHaltInvalidatesTimers(t *testing.T) {
	d := New(WithInitial(1))
	d.Toggle()
	run := d.RunGen()
	d.Halt()
	require.False(t, d.Running())
	require.Equal(t, TickIgnored, d.Tick(run))

	d = New(WithInitial(1))
	d.Toggle()
	d.Tick(d.RunGen())
	spin := d.SpinGen()
	d.Halt()
	require.False(t, d.Spinning())
	require.False(t, d.ClearSpin(spin))
}

func TestFormat(t *testing.T) {
	require.Equal(t, "01m05s", Format(65))
	require.Equal(t, "00m00s", Format(0))
	require.Equal(t, "60m00s", Format(3600))
	require.Equal(t, "100m00s", Format(6000))
}
