package inkblot

import (
	"math"
	"testing"
)

func TestPlanPathDetour(t *testing.T) {
	start, end, avoid := Vec2{0, 0}, Vec2{200, 0}, Vec2{50, 0}
	bounds := Rect{X: -500, Y: -500, Width: 1000, Height: 1000}

	for _, side := range []float64{-1, 1} {
		path := PlanPath(start, end, avoid, side, bounds)
		if len(path) != 3 {
			t.Fatalf("side %v: len = %d, want 3", side, len(path))
		}
		if path[0] != start || path[2] != end {
			t.Errorf("side %v: endpoints = %v, %v", side, path[0], path[2])
		}
		mid := path[1]
		if d := math.Hypot(mid.X-avoid.X, mid.Y-avoid.Y); math.Abs(d-120) > 1e-9 {
			t.Errorf("side %v: detour %v is %v from avoid, want 120", side, mid, d)
		}
		if math.Abs(mid.X-50) > 1e-9 || math.Abs(math.Abs(mid.Y)-120) > 1e-9 {
			t.Errorf("side %v: detour = %v, want (50, ±120)", side, mid)
		}
		if !bounds.Contains(mid.X, mid.Y) {
			t.Errorf("side %v: detour %v outside bounds", side, mid)
		}
	}

	a := PlanPath(start, end, avoid, -1, bounds)[1]
	b := PlanPath(start, end, avoid, 1, bounds)[1]
	if a.Y == b.Y {
		t.Errorf("both sides gave %v", a)
	}
}

func TestPlanPathClampsDetour(t *testing.T) {
	bounds := Rect{Width: 320, Height: 240}
	path := PlanPath(Vec2{0, 0}, Vec2{200, 0}, Vec2{50, 0}, -1, bounds)
	if len(path) != 3 {
		t.Fatalf("len = %d, want 3", len(path))
	}
	mid := path[1]
	if mid.X < 60 || mid.X > 260 || mid.Y < 60 || mid.Y > 180 {
		t.Errorf("detour %v not clamped into [60,260]x[60,180]", mid)
	}
	if mid != (Vec2{60, 60}) {
		t.Errorf("detour = %v, want (60,60)", mid)
	}
}

func TestPlanPathNoDetour(t *testing.T) {
	tests := []struct {
		name              string
		start, end, avoid Vec2
	}{
		{"avoid far", Vec2{0, 0}, Vec2{200, 0}, Vec2{150, 0}},
		{"avoid at 100", Vec2{0, 0}, Vec2{200, 0}, Vec2{100, 0}},
		{"short trip", Vec2{0, 0}, Vec2{40, 0}, Vec2{10, 0}},
		{"trip exactly 50", Vec2{0, 0}, Vec2{50, 0}, Vec2{10, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := PlanPath(tt.start, tt.end, tt.avoid, 1, Rect{})
			if len(path) != 2 || path[0] != tt.start || path[1] != tt.end {
				t.Errorf("path = %v, want [%v %v]", path, tt.start, tt.end)
			}
		})
	}
}

func TestPlanPathStartOnAvoid(t *testing.T) {
	path := PlanPath(Vec2{10, 10}, Vec2{10, 210}, Vec2{10, 10}, 1, Rect{})
	if len(path) != 3 {
		t.Fatalf("len = %d, want 3", len(path))
	}
	mid := path[1]
	if d := math.Hypot(mid.X-10, mid.Y-10); math.Abs(d-120) > 1e-9 {
		t.Errorf("detour %v is %v from avoid, want 120", mid, d)
	}
}

func TestClampInsetInvertedRange(t *testing.T) {
	if got := clampInset(5, 0, 100); got != 50 {
		t.Errorf("clampInset on a 100 wide range = %v, want midpoint 50", got)
	}
}

func TestPathPoint(t *testing.T) {
	wp := []Vec2{{0, 0}, {100, 0}, {100, 100}}
	tests := []struct {
		p    float64
		want Vec2
	}{
		{0, Vec2{0, 0}},
		{0.25, Vec2{50, 0}},
		{0.5, Vec2{100, 0}},
		{0.75, Vec2{100, 50}},
		{1, Vec2{100, 100}},
	}
	for _, tt := range tests {
		got := pathPoint(wp, tt.p)
		if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
			t.Errorf("pathPoint(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if got := pathPoint([]Vec2{{7, 8}}, 0.3); got != (Vec2{7, 8}) {
		t.Errorf("single waypoint = %v, want (7,8)", got)
	}
}

func TestNewMorphSequenceClamps(t *testing.T) {
	s := NewMorphSequence(-2, 5, 1, EaseLinear)
	if s.From != 0 || s.To != 1 {
		t.Errorf("From/To = %v/%v, want 0/1", s.From, s.To)
	}
	if s.Kind != KindMorph || s.Continuous {
		t.Errorf("Kind = %v, Continuous = %v", s.Kind, s.Continuous)
	}
}

func TestNewBreathingSequenceIsContinuous(t *testing.T) {
	s := NewBreathingSequence(BreathingPreset{Intensity: 2, Frequency: 3})
	if !s.Continuous || s.Kind != KindBreathing {
		t.Errorf("breathing = %+v, want continuous", s)
	}
}
