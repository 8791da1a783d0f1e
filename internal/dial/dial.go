// Package dial holds the countdown dial's state and every operation that
// mutates it. It performs no I/O and owns no timers; callers deliver ticks
// and spin-clear events tagged with the generation they were armed for.
package dial

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/looplab/fsm"
)

const (
	MaxSeconds     = 3600
	DefaultSeconds = 60

	TickInterval = time.Second
	SpinDuration = 2500 * time.Millisecond
)

// Run phases.
const (
	PhaseIdle     = "idle"
	PhaseDragging = "dragging"
	PhaseRunning  = "running"
)

const (
	eventGrab    = "grab"
	eventRelease = "release"
	eventStart   = "start"
	eventStop    = "stop"
	eventExpire  = "expire"
)

// State is a snapshot of the dial.
type State struct {
	Remaining int
	Running   bool
	Dragging  bool
	DragStart float64
	DragLast  float64
	PivotX    float64
	PivotY    float64
	Spinning  bool
}

// TickResult reports what a tick did.
type TickResult int

const (
	TickIgnored TickResult = iota
	TickCounted
	TickExpired
)

func (r TickResult) String() string {
	switch r {
	case TickCounted:
		return "counted"
	case TickExpired:
		return "expired"
	default:
		return "ignored"
	}
}

// Dial is the countdown dial state machine.
type Dial struct {
	state       State
	phase       *fsm.FSM
	sensitivity float64
	initial     int
	planned     int
	runGen      uint64
	spinGen     uint64
}

// Option customises a Dial.
type Option func(*Dial)

// WithSensitivity sets the drag feel. Non-positive values are ignored.
func WithSensitivity(s float64) Option {
	return func(d *Dial) {
		if s > 0 {
			d.sensitivity = s
		}
	}
}

// WithInitial sets the starting value, clamped to [0, MaxSeconds].
func WithInitial(seconds int) Option {
	return func(d *Dial) { d.initial = clamp(seconds) }
}

// New returns an idle dial showing DefaultSeconds unless overridden.
func New(opts ...Option) *Dial {
	d := &Dial{
		sensitivity: Offekt().Sensitivity,
		initial:     DefaultSeconds,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.state.Remaining = d.initial
	d.phase = fsm.NewFSM(
		PhaseIdle,
		fsm.Events{
			{Name: eventGrab, Src: []string{PhaseIdle}, Dst: PhaseDragging},
			{Name: eventRelease, Src: []string{PhaseDragging}, Dst: PhaseIdle},
			{Name: eventStart, Src: []string{PhaseIdle, PhaseDragging}, Dst: PhaseRunning},
			{Name: eventStop, Src: []string{PhaseRunning}, Dst: PhaseIdle},
			{Name: eventExpire, Src: []string{PhaseRunning}, Dst: PhaseIdle},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				d.state.Running = e.Dst == PhaseRunning
				d.state.Dragging = e.Dst == PhaseDragging
			},
			"enter_" + PhaseRunning: func(_ context.Context, _ *fsm.Event) {
				d.runGen++
				d.planned = d.state.Remaining
			},
			"leave_" + PhaseRunning: func(_ context.Context, _ *fsm.Event) {
				d.runGen++
			},
		},
	)
	return d
}

func (d *Dial) fire(event string) bool {
	if !d.phase.Can(event) {
		return false
	}
	return d.phase.Event(context.Background(), event) == nil
}

// State returns a copy of the current state.
func (d *Dial) State() State { return d.state }

// Phase names the current run phase.
func (d *Dial) Phase() string { return d.phase.Current() }

func (d *Dial) Remaining() int { return d.state.Remaining }
func (d *Dial) Running() bool { return d.state.Running }
func (d *Dial) Dragging() bool { return d.state.Dragging }
func (d *Dial) Spinning() bool { return d.state.Spinning }
func (d *Dial) Sensitivity() float64 { return d.sensitivity }
func (d *Dial) Initial() int { return d.initial }

// RunGen identifies the current run; ticks armed for an older run are ignored.
func (d *Dial) RunGen() uint64 { return d.runGen }

// SpinGen identifies the current spin; clears armed for an older spin are ignored.
func (d *Dial) SpinGen() uint64 { return d.spinGen }

// Planned is the value the current or most recent run started from.
func (d *Dial) Planned() int { return d.planned }

// Elapsed is how many seconds the current or most recent run counted down.
func (d *Dial) Elapsed() int {
	if e := d.planned - d.state.Remaining; e > 0 {
		return e
	}
	return 0
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxSeconds {
		return MaxSeconds
	}
	return v
}

// Adjust adds delta seconds unless running. It reports whether the value changed.
func (d *Dial) Adjust(delta int) bool {
	if d.state.Running {
		return false
	}
	next := clamp(d.state.Remaining + delta)
	changed := next != d.state.Remaining
	d.state.Remaining = next
	return changed
}

// Set replaces the value unless running.
func (d *Dial) Set(seconds int) bool {
	if d.state.Running {
		return false
	}
	return d.Adjust(seconds - d.state.Remaining)
}

// Reset restores the initial value unless running.
func (d *Dial) Reset() bool { return d.Set(d.initial) }

// PointerDown starts a drag gesture around the pivot (cx, cy).
func (d *Dial) PointerDown(x, y, cx, cy float64) bool {
	if d.state.Running {
		return false
	}
	if !d.state.Dragging && !d.fire(eventGrab) {
		return false
	}
	angle := math.Atan2(y-cy, x-cx)
	d.state.PivotX, d.state.PivotY = cx, cy
	d.state.DragStart = angle
	d.state.DragLast = angle
	return true
}

// PointerMove continues a drag and returns the applied change in seconds.
func (d *Dial) PointerMove(x, y float64) int {
	if !d.state.Dragging || d.state.Running {
		return 0
	}
	current := math.Atan2(y-d.state.PivotY, x-d.state.PivotX)
	delta := NormalizeAngle(current - d.state.DragLast)
	before := d.state.Remaining
	d.state.Remaining = clamp(before + DragSeconds(delta, d.sensitivity))
	d.state.DragLast = current
	return d.state.Remaining - before
}

// PointerUp ends any drag gesture.
func (d *Dial) PointerUp() {
	if d.state.Dragging {
		d.fire(eventRelease)
	}
	d.state.Dragging = false
}

// Toggle flips between running and stopped and returns the new running flag.
// Starting at zero is allowed; such a run never ticks.
func (d *Dial) Toggle() bool {
	if d.state.Running {
		d.fire(eventStop)
	} else {
		d.fire(eventStart)
	}
	return d.state.Running
}

// Tick counts one second down for run gen. Reaching zero stops the run and
// arms the spin in the same step.
func (d *Dial) Tick(gen uint64) TickResult {
	if gen != d.runGen || !d.state.Running || d.state.Remaining <= 0 {
		return TickIgnored
	}
	d.state.Remaining--
	if d.state.Remaining > 0 {
		return TickCounted
	}
	d.fire(eventExpire)
	d.state.Spinning = true
	d.spinGen++
	return TickExpired
}

// ShouldTick reports whether a tick timer must be live.
func (d *Dial) ShouldTick() bool {
	return d.state.Running && d.state.Remaining > 0
}

// ClearSpin ends spin gen. Clears for a superseded spin do nothing.
func (d *Dial) ClearSpin(gen uint64) bool {
	if !d.state.Spinning || gen != d.spinGen {
		return false
	}
	d.state.Spinning = false
	return true
}

// Halt tears the dial down: the run stops, the gesture ends, the spin is
// dropped and every outstanding timer generation is invalidated.
func (d *Dial) Halt() {
	d.PointerUp()
	if d.state.Running {
		d.fire(eventStop)
	}
	d.runGen++
	d.state.Spinning = false
	d.spinGen++
}

// Format renders seconds as MMmSSs.
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02dm%02ds", seconds/60, seconds%60)
}
