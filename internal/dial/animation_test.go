package dial

import (
	"math"
	"testing"
)

func newTestAnimation(t *testing.T, mutate func(*Config)) *Animation {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	a, err := NewAnimation(cfg)
	if err != nil {
		t.Fatalf("NewAnimation: %v", err)
	}
	return a
}

func TestNewAnimationRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Step = 0
	if _, err := NewAnimation(cfg); err == nil {
		t.Fatal("NewAnimation accepted a zero animation step")
	}
}

func TestInitialFrame(t *testing.T) {
	a := newTestAnimation(t, nil)
	angle, display := a.Frame()
	if angle != 135 {
		t.Errorf("initial angle = %v, want the start angle 135", angle)
	}
	if display != "0" {
		t.Errorf("initial display = %q, want %q", display, "0")
	}
	if a.State() != Running {
		t.Errorf("initial state = %v, want running", a.State())
	}
}

func TestAdvanceIsMonotonic(t *testing.T) {
	a := newTestAnimation(t, nil)

	prevAngle, _ := a.Frame()
	prevValue := a.Value()
	for a.Advance() {
		angle, _ := a.Frame()
		if math.Abs(angle-prevAngle-1) > 1e-9 {
			t.Fatalf("angle advanced from %v to %v, want exactly +1", prevAngle, angle)
		}
		if a.Value() <= prevValue {
			t.Fatalf("value did not increase: %v -> %v", prevValue, a.Value())
		}
		prevAngle, prevValue = angle, a.Value()
	}
}

func TestTerminationBoundary(t *testing.T) {
	a := newTestAnimation(t, nil)

	frames := 1 // the initial frame is rendered before the first Advance
	for a.Advance() {
		frames++
	}

	// 135..335 inclusive at one degree per frame.
	if frames != 201 {
		t.Errorf("rendered %d frames, want 201", frames)
	}
	if angle, _ := a.Frame(); angle != 335 {
		t.Errorf("final angle = %v, want the rest angle 335", angle)
	}
	if a.State() != Stopped {
		t.Errorf("state after termination = %v, want stopped", a.State())
	}
}

func TestAdvanceAfterStopIsInert(t *testing.T) {
	a := newTestAnimation(t, nil)
	for a.Advance() {
	}
	angle, display := a.Frame()

	if a.Advance() {
		t.Error("Advance returned true after the terminal state")
	}
	angle2, display2 := a.Frame()
	if angle2 != angle || display2 != display {
		t.Errorf("state changed after stop: (%v, %q) -> (%v, %q)", angle, display, angle2, display2)
	}
}

func TestValueScaling(t *testing.T) {
	a := newTestAnimation(t, nil)
	for a.Advance() {
	}

	// 200 steps of 100/270 each.
	want := 200 * 100.0 / 270.0
	if math.Abs(a.Value()-want) > 1e-9 {
		t.Errorf("final value = %v, want %v", a.Value(), want)
	}
	if _, display := a.Frame(); display != "74" {
		t.Errorf("final display = %q, want %q", display, "74")
	}
	if p := a.Progress(); math.Abs(p-want/100) > 1e-9 {
		t.Errorf("final progress = %v, want %v", p, want/100)
	}
}

func TestStopShortOfRestWithCoarseStep(t *testing.T) {
	a := newTestAnimation(t, func(c *Config) { c.Step = 3 })
	for a.Advance() {
	}

	// 135 + 3k <= 335 holds last at k = 66, angle 333; the frame at 336
	// is never reached.
	if angle, _ := a.Frame(); angle != 333 {
		t.Errorf("final angle = %v, want 333 (largest reachable angle <= rest)", angle)
	}
}

func TestFrameDisplayRounding(t *testing.T) {
	a := newTestAnimation(t, nil)
	// After 4 steps the raw value is 4 * 100/270 = 1.481..., which rounds
	// to "1"; after 5 it is 1.851..., which rounds to "2".
	for i := 0; i < 4; i++ {
		a.Advance()
	}
	if _, display := a.Frame(); display != "1" {
		t.Errorf("display after 4 steps = %q, want %q", display, "1")
	}
	a.Advance()
	if _, display := a.Frame(); display != "2" {
		t.Errorf("display after 5 steps = %q, want %q", display, "2")
	}
}
