package inkblot

import (
	"image"
	"math"
	"time"
)

// PixelBuffer is a straight-alpha RGBA8 pixel buffer, four bytes per pixel in
// row-major order. The layout matches ebiten.Image.WritePixels and
// image.NRGBA.
type PixelBuffer struct {
	Pix    []byte
	Width  int
	Height int
}

// NewPixelBuffer allocates a transparent buffer of the given size.
func NewPixelBuffer(w, h int) *PixelBuffer {
	w, h = max(w, 0), max(h, 0)
	return &PixelBuffer{
		Pix:    make([]byte, 4*w*h),
		Width:  w,
		Height: h,
	}
}

// Clear makes every pixel transparent black.
func (b *PixelBuffer) Clear() {
	clear(b.Pix)
}

// RGBA returns the four bytes of the pixel at (x, y). Out-of-range
// coordinates return zero.
func (b *PixelBuffer) RGBA(x, y int) (r, g, bl, a uint8) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return 0, 0, 0, 0
	}
	i := 4 * (y*b.Width + x)
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3]
}

// Bounds returns the buffer rectangle.
func (b *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// NRGBA wraps the buffer as an image without copying.
func (b *PixelBuffer) NRGBA() *image.NRGBA {
	return &image.NRGBA{Pix: b.Pix, Stride: 4 * b.Width, Rect: b.Bounds()}
}

// Render rasterizes the field into buf. Pixels inside the blot get the base
// color scaled by depth, falling off linearly over 20 units inward from the
// boundary; everything else is transparent.
//
// Only the box of radius Reach around the center is evaluated. Pixels outside
// it are always transparent, so the result equals a full scan.
func (f *ShapeField) Render(buf *PixelBuffer) RenderStats {
	var t0 time.Time
	if f.Debug {
		t0 = time.Now()
	}

	buf.Clear()
	stats := f.rasterize(buf, f.cullBounds(buf.Bounds()))

	if f.Debug {
		stats.Elapsed = time.Since(t0)
		stats.debugLog()
	}
	return stats
}

// cullBounds returns the part of full that can contain negative field values.
func (f *ShapeField) cullBounds(full image.Rectangle) image.Rectangle {
	reach := f.Reach()
	if math.IsInf(reach, 1) {
		return full
	}
	box := image.Rect(
		int(math.Floor(f.X-reach)),
		int(math.Floor(f.Y-reach)),
		int(math.Ceil(f.X+reach))+1,
		int(math.Ceil(f.Y+reach))+1,
	)
	return box.Intersect(full)
}

// rasterize evaluates every pixel in area and writes it into buf. Pixels of
// buf outside area are left as they are.
func (f *ShapeField) rasterize(buf *PixelBuffer, area image.Rectangle) RenderStats {
	var stats RenderStats
	r := f.Color.R * 255
	g := f.Color.G * 255
	b := f.Color.B * 255

	for y := area.Min.Y; y < area.Max.Y; y++ {
		row := 4 * y * buf.Width
		for x := area.Min.X; x < area.Max.X; x++ {
			d := f.Evaluate(float64(x), float64(y))
			stats.Evaluated++
			i := row + 4*x
			if d >= 0 {
				buf.Pix[i] = 0
				buf.Pix[i+1] = 0
				buf.Pix[i+2] = 0
				buf.Pix[i+3] = 0
				continue
			}
			intensity := math.Max(0, 1+d/falloffWidth)
			buf.Pix[i] = channel(r * intensity)
			buf.Pix[i+1] = channel(g * intensity)
			buf.Pix[i+2] = channel(b * intensity)
			buf.Pix[i+3] = 0xff
			stats.Filled++
		}
	}
	return stats
}

// channel converts a [0, 255] float to a byte, rounding and saturating.
func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}
