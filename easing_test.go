package inkblot

import (
	"math"
	"testing"
)

var allEasings = []Easing{EaseLinear, EaseInOut, EaseOut, EaseIn, EaseElastic}

func TestEasingEndpointsExact(t *testing.T) {
	for _, e := range allEasings {
		t.Run(e.String(), func(t *testing.T) {
			for _, in := range []float64{-1, 0} {
				if got := e.Apply(in); got != 0 {
					t.Errorf("Apply(%v) = %v, want 0", in, got)
				}
			}
			for _, in := range []float64{1, 2.5} {
				if got := e.Apply(in); got != 1 {
					t.Errorf("Apply(%v) = %v, want 1", in, got)
				}
			}
		})
	}
}

func TestEasingMidpoints(t *testing.T) {
	tests := []struct {
		e    Easing
		want float64
	}{
		{EaseLinear, 0.5},
		{EaseInOut, 0.5},
		{EaseOut, 0.75},
		{EaseIn, 0.25},
	}
	for _, tt := range tests {
		if got := tt.e.Apply(0.5); math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("%v.Apply(0.5) = %v, want %v", tt.e, got, tt.want)
		}
	}
}

func TestEasingMonotonicPolynomials(t *testing.T) {
	for _, e := range []Easing{EaseLinear, EaseInOut, EaseOut, EaseIn} {
		prev := 0.0
		for i := 1; i <= 100; i++ {
			v := e.Apply(float64(i) / 100)
			if v < prev-1e-6 {
				t.Fatalf("%v not monotonic at %d: %v < %v", e, i, v, prev)
			}
			prev = v
		}
	}
}

func TestEasingElasticOvershoots(t *testing.T) {
	peak := 0.0
	for i := 1; i < 100; i++ {
		v := EaseElastic.Apply(float64(i) / 100)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("Apply(%v) = %v", float64(i)/100, v)
		}
		peak = math.Max(peak, v)
	}
	if peak <= 1 {
		t.Errorf("elastic peak = %v, want > 1", peak)
	}
}

func TestEasingNames(t *testing.T) {
	for _, e := range allEasings {
		text, err := e.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d): %v", e, err)
		}
		var back Easing
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != e {
			t.Errorf("round trip %v = %v", e, back)
		}
	}
	if _, err := ParseEasing("bouncy"); err == nil {
		t.Error("expected error for unknown easing")
	}
	if Easing(99).Func() == nil {
		t.Error("unknown easing should fall back to linear")
	}
}

func TestProgressTween(t *testing.T) {
	tw := newProgressTween(1, EaseLinear)
	v, done := tw.Update(0.5)
	if done || math.Abs(float64(v)-0.5) > 1e-6 {
		t.Errorf("half way = %v done=%v, want 0.5 false", v, done)
	}
	v, done = tw.Update(0.5)
	if !done || v != 1 {
		t.Errorf("end = %v done=%v, want 1 true", v, done)
	}

	zero := newProgressTween(0, EaseInOut)
	if _, done := zero.Update(frameDT); !done {
		t.Error("zero-duration tween should finish on first update")
	}
}
