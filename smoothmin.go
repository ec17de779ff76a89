package inkblot

import "math"

// Blend-width normalization constants. Each variant scales k so that the
// maximum reduction below min(a, b), reached at a == b, is exactly k.
const (
	smoothQuadraticScale = 4.0
	smoothCubicScale     = 6.0
)

// smoothCircularScale is 1/(1-√0.5).
var smoothCircularScale = 1.0 / (1.0 - math.Sqrt(0.5))

// SmoothMinQuadratic blends a and b with a quadratic polynomial over a
// radius of 4k. The result is never above min(a, b) and equals it once
// |a-b| >= 4k. Non-positive k degrades to a plain min.
func SmoothMinQuadratic(a, b, k float64) float64 {
	if k <= 0 {
		return math.Min(a, b)
	}
	k *= smoothQuadraticScale
	h := math.Max(k-math.Abs(a-b), 0) / k
	return math.Min(a, b) - h*h*k*(1.0/4.0)
}

// SmoothMinCubic blends a and b with a cubic polynomial over a radius of 6k.
func SmoothMinCubic(a, b, k float64) float64 {
	if k <= 0 {
		return math.Min(a, b)
	}
	k *= smoothCubicScale
	h := math.Max(k-math.Abs(a-b), 0) / k
	return math.Min(a, b) - h*h*h*k*(1.0/6.0)
}

// SmoothMinCircular blends a and b along a circular arc over a radius of
// k/(1-√0.5).
func SmoothMinCircular(a, b, k float64) float64 {
	if k <= 0 {
		return math.Min(a, b)
	}
	k *= smoothCircularScale
	h := math.Max(k-math.Abs(a-b), 0) / k
	return math.Min(a, b) - k*0.5*(1.0+h-math.Sqrt(1.0-h*(h-2.0)))
}

// BlendWidth returns the |a-b| beyond which the smooth minimum of the given
// variant equals the plain minimum.
func BlendWidth(variant SmoothVariant, k float64) float64 {
	switch variant {
	case SmoothQuadratic:
		return k * smoothQuadraticScale
	case SmoothCubic:
		return k * smoothCubicScale
	case SmoothCircular:
		return k * smoothCircularScale
	default:
		return 0
	}
}

// SmoothVariant selects one of the smooth-minimum formulas.
type SmoothVariant uint8

const (
	SmoothQuadratic SmoothVariant = iota
	SmoothCubic
	SmoothCircular
)

// SmoothMin dispatches to the variant's smooth-minimum function.
func SmoothMin(variant SmoothVariant, a, b, k float64) float64 {
	switch variant {
	case SmoothCubic:
		return SmoothMinCubic(a, b, k)
	case SmoothCircular:
		return SmoothMinCircular(a, b, k)
	default:
		return SmoothMinQuadratic(a, b, k)
	}
}
