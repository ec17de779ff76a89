package inkblot

import (
	"errors"
	"fmt"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R float64 `toml:"r"`
	G float64 `toml:"g"`
	B float64 `toml:"b"`
	A float64 `toml:"a"`
}

// ColorInk is the default base color of a blot.
var ColorInk = Color{R: 0.22, G: 0.28, B: 0.85, A: 1}

// Vec2 is a 2D vector used for positions, waypoints, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Mode is the descriptive state of a blot. It only selects the target morph
// factor; it never gates which code path runs.
type Mode uint8

const (
	ModeIdle         Mode = iota // resting blot
	ModeActive                   // slightly swollen blot
	ModeMenuExpanded             // blot opened into a disc

	modeCount
)

// ErrUnknownMode is returned when a mode name cannot be parsed.
var ErrUnknownMode = errors.New("unknown mode")

var modeNames = [modeCount]string{"idle", "active", "menuExpanded"}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return m < modeCount
}

func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
	return modeNames[m]
}

// ParseMode returns the Mode with the given name.
func ParseMode(name string) (Mode, error) {
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("parse mode %q: %w", name, ErrUnknownMode)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("marshal mode %d: %w", uint8(m), ErrUnknownMode)
	}
	return []byte(modeNames[m]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// morphTarget is the target morph factor for each mode.
var morphTarget = [modeCount]float64{
	ModeIdle:         0,
	ModeActive:       0.3,
	ModeMenuExpanded: 1.0,
}

// MorphTarget returns the morph factor a mode settles at. Invalid modes
// report false.
func (m Mode) MorphTarget() (float64, bool) {
	if !m.Valid() {
		return 0, false
	}
	return morphTarget[m], true
}

// Kind identifies the type of an animation sequence.
type Kind uint8

const (
	KindMove      Kind = iota // waypoint movement of the target position
	KindMorph                 // interpolation of the current morph factor
	KindBreathing             // continuous breathing parameters
)

func (k Kind) String() string {
	switch k {
	case KindMove:
		return "move"
	case KindMorph:
		return "morph"
	case KindBreathing:
		return "breathing"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// clamp01 restricts v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
