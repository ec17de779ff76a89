package inkblot

import "testing"

func TestLoadModeLabelInvalid(t *testing.T) {
	if _, err := LoadModeLabel([]byte("not a font"), 12); err == nil {
		t.Error("expected error for invalid font data")
	}
}

func TestModeLabelMeasure(t *testing.T) {
	l, err := NewModeLabel(12)
	if err != nil {
		t.Fatalf("NewModeLabel: %v", err)
	}
	idleW, idleH := l.Measure(ModeIdle)
	menuW, _ := l.Measure(ModeMenuExpanded)
	if idleW <= 0 || idleH <= 0 {
		t.Errorf("idle size = %vx%v, want positive", idleW, idleH)
	}
	if menuW <= idleW {
		t.Errorf("menuExpanded width %v should exceed idle width %v", menuW, idleW)
	}
}

func TestModeLabelPosition(t *testing.T) {
	l, err := NewModeLabel(12)
	if err != nil {
		t.Fatal(err)
	}
	const viewW, viewH = 320, 240

	f := NewShapeField(160, 100)
	w, h := l.Measure(f.Mode)
	x, y := l.Position(f, viewW, viewH)
	if y <= f.Y {
		t.Errorf("label y = %v, want below the blot center %v", y, f.Y)
	}
	if d := x + w/2 - f.X; d > 1e-9 || d < -1e-9 {
		t.Errorf("label not centered: x = %v, width %v", x, w)
	}

	for _, p := range []Vec2{{315, 238}, {-40, -40}} {
		f := NewShapeField(p.X, p.Y)
		x, y := l.Position(f, viewW, viewH)
		if x < 0 || y < 0 || x+w > viewW+1e-9 || y+h > viewH+1e-9 {
			t.Errorf("at %v: label (%v,%v) %vx%v leaves the view", p, x, y, w, h)
		}
	}
}
