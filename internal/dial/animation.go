package dial

import (
	"math"
	"strconv"
)

// State is the animation driver's state machine. There are exactly two
// states; a finished animation never resets or loops.
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Animation owns the only mutable per-frame state of the gauge: the
// current needle angle and the current display value. Both start at their
// minimum and only ever increase. The host scheduler renders the current
// frame, then calls Advance exactly once per frame until it reports
// Stopped.
type Animation struct {
	cfg Config

	angle    float64
	value    float64
	valueInc float64 // per-frame value increment, scaled to the sweep
	state    State
}

// NewAnimation validates cfg and returns a driver positioned at the first
// frame: needle at the start angle, value at zero.
func NewAnimation(cfg Config) (*Animation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	geo := cfg.Derive()
	return &Animation{
		cfg: cfg,
		// The value reaches MaxValue exactly when the needle has swept
		// the whole dial, regardless of step size.
		valueInc: cfg.MaxValue() / geo.Sweep * cfg.Step,
		angle:    cfg.StartAngle,
		state:    Running,
	}, nil
}

// Frame returns the pair to render right now: the needle angle and the
// display value rounded to the nearest integer as text.
func (a *Animation) Frame() (angleDeg float64, display string) {
	return a.angle, strconv.Itoa(int(math.Round(a.value)))
}

// Advance moves the animation forward by one frame and reports whether it
// is still running. When the next angle would pass the rest angle the
// driver stops instead, leaving the last rendered frame as the largest
// angle not beyond rest.
func (a *Animation) Advance() bool {
	if a.state == Stopped {
		return false
	}
	next := a.angle + a.cfg.Step
	if next > a.cfg.RestAngle {
		a.state = Stopped
		return false
	}
	a.angle = next
	a.value += a.valueInc
	return true
}

// Angle returns the current needle angle in degrees.
func (a *Animation) Angle() float64 { return a.angle }

// Value returns the current display value before rounding.
func (a *Animation) Value() float64 { return a.value }

// Progress returns how far the value has advanced toward full scale, in
// [0, 1]. Used by presentation extras such as the engine tone.
func (a *Animation) Progress() float64 {
	return a.value / a.cfg.MaxValue()
}

// State returns Running until the terminal condition has been reached.
func (a *Animation) State() State { return a.state }
