package inkblot

import (
	"math"
	"testing"
)

func TestNewDriver(t *testing.T) {
	d := NewDriver(DefaultConfig())
	if d.Buffer.Width != 320 || d.Buffer.Height != 240 {
		t.Errorf("buffer = %dx%d, want 320x240", d.Buffer.Width, d.Buffer.Height)
	}
	if d.Sequencer.Field() != d.Field {
		t.Error("sequencer drives a different field")
	}
	if d.Frame() != 0 {
		t.Errorf("Frame = %d, want 0", d.Frame())
	}
}

func TestDriverStep(t *testing.T) {
	d := smallDriver(t)
	stats := d.Step(frameDT)
	if d.Frame() != 1 {
		t.Errorf("Frame = %d, want 1", d.Frame())
	}
	if stats.Filled == 0 {
		t.Error("first frame rendered nothing")
	}
	if d.Field.Time == 0 {
		t.Error("field time did not advance")
	}
}

func TestDriverMoveTo(t *testing.T) {
	d := smallDriver(t)
	d.Pointer = Vec2{-500, -500}
	d.MoveTo(10, 10)
	for i := 0; i < 400; i++ {
		d.Step(frameDT)
	}
	if d.Field.TargetX != 10 || d.Field.TargetY != 10 {
		t.Errorf("target = (%v,%v), want (10,10)", d.Field.TargetX, d.Field.TargetY)
	}
	if math.Abs(d.Field.X-10) > 1e-3 || math.Abs(d.Field.Y-10) > 1e-3 {
		t.Errorf("position = (%v,%v), want ~(10,10)", d.Field.X, d.Field.Y)
	}
}

func TestDriverTransitionAndStop(t *testing.T) {
	d := smallDriver(t)
	d.Transition(ModeMenuExpanded, nil)
	d.Step(frameDT)
	if d.Sequencer.Idle() {
		t.Fatal("transition queued nothing")
	}
	d.Stop()
	if !d.Sequencer.Idle() {
		t.Error("Stop should clear the sequencer")
	}
	// Field smoothing keeps running toward the mode's morph.
	for i := 0; i < 200; i++ {
		d.Step(frameDT)
	}
	if d.Field.MorphFactor < 0.99 {
		t.Errorf("MorphFactor = %v, want ~1", d.Field.MorphFactor)
	}
}
