package inkblot

import "math"

// Detour tuning for move planning.
const (
	avoidRadius    = 100.0 // start must be closer than this to the avoid point
	minDetourTrip  = 50.0  // and travel farther than this
	detourDistance = 120.0 // detour waypoint offset from the avoid point
	detourInset    = 60.0  // detour is kept this far inside the bounds
)

// Sequence is one discrete animation. Build one with NewMoveSequence,
// NewMorphSequence or NewBreathingSequence and hand it to Sequencer.Enqueue.
type Sequence struct {
	Kind Kind
	// Duration is in seconds. Continuous sequences ignore it.
	Duration float64
	Easing   Easing
	// Continuous sequences never complete on their own.
	Continuous bool

	// Waypoints of a move, start first.
	Waypoints []Vec2
	// From and To of a morph.
	From, To float64
	// Breathing payload.
	Breathing BreathingPreset
}

// NewMoveSequence returns a move along the given path.
func NewMoveSequence(waypoints []Vec2, duration float64, easing Easing) Sequence {
	return Sequence{
		Kind:      KindMove,
		Duration:  duration,
		Easing:    easing,
		Waypoints: waypoints,
	}
}

// NewMorphSequence returns a morph from one factor to another. Both ends are
// clamped to [0, 1].
func NewMorphSequence(from, to, duration float64, easing Easing) Sequence {
	return Sequence{
		Kind:     KindMorph,
		Duration: duration,
		Easing:   easing,
		From:     clamp01(from),
		To:       clamp01(to),
	}
}

// NewBreathingSequence returns a continuous breathing sequence.
func NewBreathingSequence(preset BreathingPreset) Sequence {
	return Sequence{
		Kind:       KindBreathing,
		Easing:     EaseLinear,
		Continuous: true,
		Breathing:  preset,
	}
}

// PlanPath returns the waypoints from start to end, with a single detour
// around avoid when the start is near it and the trip is long enough.
//
// The detour sits detourDistance from avoid, perpendicular to the bearing
// from start to avoid, on the side given by the sign of side. When bounds is
// not empty the detour is clamped to stay detourInset inside it. This is a
// one-step heuristic: the detour itself is not checked against avoid.
func PlanPath(start, end, avoid Vec2, side float64, bounds Rect) []Vec2 {
	toAvoid := math.Hypot(avoid.X-start.X, avoid.Y-start.Y)
	trip := math.Hypot(end.X-start.X, end.Y-start.Y)
	if toAvoid >= avoidRadius || trip <= minDetourTrip {
		return []Vec2{start, end}
	}

	// Bearing from start to avoid; fall back to the travel direction when
	// the start sits exactly on the avoid point.
	dx, dy := avoid.X-start.X, avoid.Y-start.Y
	n := toAvoid
	if n == 0 {
		dx, dy = end.X-start.X, end.Y-start.Y
		n = trip
	}
	dx, dy = dx/n, dy/n

	s := 1.0
	if side < 0 {
		s = -1
	}
	detour := Vec2{
		X: avoid.X - dy*detourDistance*s,
		Y: avoid.Y + dx*detourDistance*s,
	}
	if !bounds.Empty() {
		detour.X = clampInset(detour.X, bounds.X, bounds.Width)
		detour.Y = clampInset(detour.Y, bounds.Y, bounds.Height)
	}
	return []Vec2{start, detour, end}
}

// clampInset clamps v to [origin+detourInset, origin+size-detourInset]. When
// the range is inverted the midpoint wins.
func clampInset(v, origin, size float64) float64 {
	lo, hi := origin+detourInset, origin+size-detourInset
	if lo > hi {
		return origin + size/2
	}
	return math.Min(math.Max(v, lo), hi)
}

// pathPoint returns the point at eased progress p along waypoints treated as
// equal-duration linear segments. Progress outside [0, 1] extrapolates the
// first or last segment, which lets elastic easing overshoot.
func pathPoint(waypoints []Vec2, p float64) Vec2 {
	n := len(waypoints)
	if n == 1 {
		return waypoints[0]
	}
	seg := p * float64(n-1)
	i := int(math.Floor(seg))
	i = min(max(i, 0), n-2)
	local := seg - float64(i)
	a, b := waypoints[i], waypoints[i+1]
	return Vec2{
		X: a.X + (b.X-a.X)*local,
		Y: a.Y + (b.Y-a.Y)*local,
	}
}
