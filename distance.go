package inkblot

import "math"

// CircleDistance returns the signed distance from (px, py) to the circle
// centered at (cx, cy) with radius r. Negative inside.
func CircleDistance(px, py, cx, cy, r float64) float64 {
	return math.Hypot(px-cx, py-cy) - r
}

// EllipseDistance approximates the signed distance from (px, py) to the
// axis-aligned ellipse centered at (cx, cy) with radii rx and ry.
//
// Outside, the closed form k0(k0-1)/k1 is used, which is exact on both axes.
// Inside, the normalized radius is scaled by the smaller radius so the value
// stays continuous through the center. Good enough for shading, not for
// geometry.
func EllipseDistance(px, py, cx, cy, rx, ry float64) float64 {
	dx, dy := px-cx, py-cy
	k0 := math.Hypot(dx/rx, dy/ry)
	if k0 < 1 {
		return (k0 - 1) * math.Min(rx, ry)
	}
	k1 := math.Hypot(dx/(rx*rx), dy/(ry*ry))
	return k0 * (k0 - 1) / k1
}
