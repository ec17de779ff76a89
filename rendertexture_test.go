package inkblot

import (
	"testing"
)

func TestNewRenderTextureDimensions(t *testing.T) {
	buf := NewPixelBuffer(128, 64)
	rt := NewRenderTexture(buf)
	defer rt.Dispose()

	if rt.Width() != 128 {
		t.Errorf("Width = %d, want 128", rt.Width())
	}
	if rt.Height() != 64 {
		t.Errorf("Height = %d, want 64", rt.Height())
	}
	if rt.Image() == nil {
		t.Error("Image() should not be nil")
	}
	if b := rt.Image().Bounds(); b.Dx() != 128 || b.Dy() != 64 {
		t.Errorf("image bounds = %v, want 128x64", b)
	}
	if rt.Buffer() != buf {
		t.Error("Buffer() should return the mirrored buffer")
	}
}

func TestRenderTextureDisposeTwice(t *testing.T) {
	rt := NewRenderTexture(NewPixelBuffer(8, 8))
	rt.Dispose()
	rt.Dispose()
	if rt.Image() != nil {
		t.Error("Image() should be nil after Dispose")
	}
}
