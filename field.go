package inkblot

import (
	"log/slog"
	"math"
)

// Field tuning. Rates marked "per ms" are applied to dt converted to
// milliseconds; smoothing rates are applied once per Update call.
const (
	animationSpeed = 0.02   // Time per ms
	breathingRate  = 0.001  // BreathingPhase per ms
	pulseRate      = 0.002  // PulsePhase per ms
	wiggleRate     = 0.0015 // WigglePhase per ms

	positionSmoothing = 0.08
	morphSmoothing    = 0.1

	ellipseRadiusX = 35.0
	ellipseRadiusY = 28.0
	ellipseSwing   = 0.1 // ±10% radius oscillation at intensity 1

	secondaryBlend = 15.0 // cubic smooth-min radius
	tertiaryBlend  = 12.0 // quadratic smooth-min radius

	menuRadius      = 45.0
	menuRadiusMorph = 10.0

	noiseAmplitude = 0.5
	falloffWidth   = 20.0
)

// ShapeField is one organic ink blot: a signed distance field built from a
// breathing ellipse and two orbiting circles, blended with smooth minimums.
//
// Drive it once per frame: Update to integrate motion, then Render to
// rasterize. All time arguments are seconds.
type ShapeField struct {
	// X and Y are the current center. They chase TargetX/TargetY.
	X, Y float64
	// TargetX and TargetY are where the blot is heading.
	TargetX, TargetY float64

	// MorphFactor crossfades the blot toward a disc. Always in [0, 1].
	MorphFactor float64
	// TargetMorphFactor is the morph the field is smoothing toward.
	TargetMorphFactor float64

	// Time drives the primitive motion.
	Time float64
	// BreathingPhase offsets the ellipse oscillation per instance.
	BreathingPhase float64
	// PulsePhase and WigglePhase advance every Update and are reserved for
	// future effects; nothing reads them yet.
	PulsePhase  float64
	WigglePhase float64

	// BreathingIntensity scales the ellipse swing. 1 is the base ±10%.
	BreathingIntensity float64
	// BreathingFrequency scales the ellipse angular rate.
	BreathingFrequency float64

	// Mode is descriptive only; see SetState.
	Mode Mode

	// Color is the base ink color, scaled by depth when rendered.
	Color Color

	// Debug enables render stats logging.
	Debug bool
}

// NewShapeField creates a field centered at (x, y) with its target at the
// same point, idle and unmorphed.
func NewShapeField(x, y float64) *ShapeField {
	return &ShapeField{
		X:                  x,
		Y:                  y,
		TargetX:            x,
		TargetY:            y,
		BreathingIntensity: 1,
		BreathingFrequency: 1,
		Mode:               ModeIdle,
		Color:              ColorInk,
	}
}

// Update advances the phase accumulators by dt seconds and moves position
// and morph one smoothing step toward their targets. Smoothing never
// overshoots.
func (f *ShapeField) Update(dt float64) {
	ms := dt * 1000
	f.Time += ms * animationSpeed
	f.BreathingPhase += ms * breathingRate
	f.PulsePhase += ms * pulseRate
	f.WigglePhase += ms * wiggleRate

	f.X += (f.TargetX - f.X) * positionSmoothing
	f.Y += (f.TargetY - f.Y) * positionSmoothing
	f.MorphFactor = clamp01(f.MorphFactor + (f.TargetMorphFactor-f.MorphFactor)*morphSmoothing)
}

// SetState sets the mode and its target morph factor. Out-of-range modes are
// ignored and leave the field untouched.
func (f *ShapeField) SetState(mode Mode) {
	target, ok := mode.MorphTarget()
	if !ok {
		Logger().Warn("inkblot: ignoring unknown mode", slog.Int("mode", int(mode)))
		return
	}
	f.Mode = mode
	f.TargetMorphFactor = target
}

// SetTarget sets the position the field smooths toward.
func (f *ShapeField) SetTarget(x, y float64) {
	f.TargetX = x
	f.TargetY = y
}

// SetMorph writes the current morph factor directly, clamped to [0, 1].
func (f *ShapeField) SetMorph(m float64) {
	f.MorphFactor = clamp01(m)
}

// Evaluate returns the field value at (px, py) for the current state.
// Negative values are inside the blot.
func (f *ShapeField) Evaluate(px, py float64) float64 {
	return f.evaluate(px, py, f.Time, f.MorphFactor)
}

// EvaluateField returns the field value at (px, py) for an explicit time and
// morph factor, using the field's position and breathing parameters.
func (f *ShapeField) EvaluateField(px, py, time, morph float64) float64 {
	return f.evaluate(px, py, time, clamp01(morph))
}

func (f *ShapeField) evaluate(px, py, t, morph float64) float64 {
	cx, cy := f.X, f.Y

	swing := 1 + ellipseSwing*f.BreathingIntensity*math.Sin(2*f.BreathingFrequency*t+f.BreathingPhase)
	ellipse := EllipseDistance(px, py, cx, cy, ellipseRadiusX*swing, ellipseRadiusY*swing)

	secondary := CircleDistance(px, py,
		cx+15*math.Cos(1.5*t),
		cy+10*math.Sin(1.2*t),
		18+5*math.Sin(t))

	tertiary := CircleDistance(px, py,
		cx-12*math.Cos(0.8*t),
		cy-8*math.Sin(1.8*t),
		12+3*math.Cos(1.3*t))

	// Cubic first, then quadratic. The order is part of the look.
	d := SmoothMinCubic(ellipse, secondary, secondaryBlend)
	d = SmoothMinQuadratic(d, tertiary, tertiaryBlend)

	if morph > 0 {
		menu := CircleDistance(px, py, cx, cy, menuRadius+menuRadiusMorph*morph)
		d += (menu - d) * morph
	}

	d += 2 * math.Sin(0.1*px+t) * math.Cos(0.1*py+1.3*t) * noiseAmplitude
	return d
}

// Reach returns a radius around the center outside of which the field is
// guaranteed to be positive, for any time and morph factor. It is infinite
// when the breathing swing is large enough to collapse the ellipse.
func (f *ShapeField) Reach() float64 {
	// Each smooth min lowers the field by at most its radius, and the noise
	// term by at most 1, so every primitive must clear this margin.
	margin := secondaryBlend + tertiaryBlend + 2*noiseAmplitude + 1

	amp := ellipseSwing * math.Abs(f.BreathingIntensity)
	if amp >= 1 {
		return math.Inf(1)
	}
	lo := math.Min(ellipseRadiusX, ellipseRadiusY) * (1 - amp)
	hi := math.Max(ellipseRadiusX, ellipseRadiusY) * (1 + amp)
	// The ellipse approximation is bounded below by (lo²/hi)(R/hi - 1).
	r := hi * (1 + margin*hi/(lo*lo))

	r = math.Max(r, math.Hypot(15, 10)+23+margin)
	r = math.Max(r, math.Hypot(12, 8)+15+margin)
	r = math.Max(r, menuRadius+menuRadiusMorph+margin)
	return r
}
