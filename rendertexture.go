package inkblot

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderTexture mirrors a PixelBuffer into an *ebiten.Image so a field
// rendered on the CPU can be drawn by Ebitengine. The buffer is owned by the
// caller; the texture only uploads it.
type RenderTexture struct {
	image *ebiten.Image
	buf   *PixelBuffer
}

// NewRenderTexture creates a texture the size of buf.
func NewRenderTexture(buf *PixelBuffer) *RenderTexture {
	return &RenderTexture{
		image: ebiten.NewImage(buf.Width, buf.Height),
		buf:   buf,
	}
}

// Image returns the underlying *ebiten.Image.
func (rt *RenderTexture) Image() *ebiten.Image {
	return rt.image
}

// Buffer returns the mirrored pixel buffer.
func (rt *RenderTexture) Buffer() *PixelBuffer {
	return rt.buf
}

// Width returns the texture width in pixels.
func (rt *RenderTexture) Width() int {
	return rt.buf.Width
}

// Height returns the texture height in pixels.
func (rt *RenderTexture) Height() int {
	return rt.buf.Height
}

// Upload copies the buffer into the image. The rasterizer only writes fully
// opaque or fully transparent pixels, so the straight-alpha buffer is also
// valid premultiplied data.
func (rt *RenderTexture) Upload() {
	rt.image.WritePixels(rt.buf.Pix)
}

// Render rasterizes f into the buffer and uploads it.
func (rt *RenderTexture) Render(f *ShapeField) RenderStats {
	stats := f.Render(rt.buf)
	rt.Upload()
	return stats
}

// DrawTo draws the texture onto dst at (x, y), scaled by scale.
func (rt *RenderTexture) DrawTo(dst *ebiten.Image, x, y, scale float64) {
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	dst.DrawImage(rt.image, &op)
}

// Dispose deallocates the underlying image. The RenderTexture should not be
// used after calling Dispose.
func (rt *RenderTexture) Dispose() {
	if rt.image != nil {
		rt.image.Deallocate()
		rt.image = nil
	}
}
