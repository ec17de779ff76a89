package inkblot

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Easing selects the curve a sequence follows from start to end.
type Easing uint8

const (
	EaseLinear  Easing = iota // constant speed
	EaseInOut                 // quadratic acceleration then deceleration
	EaseOut                   // quadratic deceleration
	EaseIn                    // quadratic acceleration
	EaseElastic               // overshoots and settles with a damped spring

	easingCount
)

var easingNames = [easingCount]string{"linear", "easeInOut", "easeOut", "easeIn", "elastic"}

var easingFuncs = [easingCount]ease.TweenFunc{
	EaseLinear:  ease.Linear,
	EaseInOut:   ease.InOutQuad,
	EaseOut:     ease.OutQuad,
	EaseIn:      ease.InQuad,
	EaseElastic: ease.OutElastic,
}

func (e Easing) String() string {
	if e >= easingCount {
		return fmt.Sprintf("Easing(%d)", uint8(e))
	}
	return easingNames[e]
}

// Func returns the gween easing function for e. Unknown values fall back to
// linear.
func (e Easing) Func() ease.TweenFunc {
	if e >= easingCount {
		return ease.Linear
	}
	return easingFuncs[e]
}

// Apply maps progress t in [0, 1] to eased progress. t is clamped, and both
// endpoints are exact for every curve.
func (e Easing) Apply(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	return float64(e.Func()(float32(t), 0, 1, 1))
}

// ParseEasing returns the Easing with the given name.
func ParseEasing(name string) (Easing, error) {
	for i, n := range easingNames {
		if n == name {
			return Easing(i), nil
		}
	}
	return 0, fmt.Errorf("parse easing %q: unknown easing", name)
}

// MarshalText implements encoding.TextMarshaler.
func (e Easing) MarshalText() ([]byte, error) {
	if e >= easingCount {
		return nil, fmt.Errorf("marshal easing %d: unknown easing", uint8(e))
	}
	return []byte(easingNames[e]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Easing) UnmarshalText(text []byte) error {
	parsed, err := ParseEasing(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// newProgressTween returns a tween from 0 to 1 over duration seconds along
// the easing curve. Its value is the eased progress of a sequence.
func newProgressTween(duration float64, e Easing) *gween.Tween {
	return gween.New(0, 1, float32(max(duration, 0)), e.Func())
}
