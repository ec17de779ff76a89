package inkblot

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// FPSOverlay draws FPS, TPS and the last render stats in a corner. The
// text is refreshed every ~0.5 seconds.
type FPSOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
	stats      RenderStats
}

// NewFPSOverlay creates an overlay. 160x48 fits three short lines.
func NewFPSOverlay() *FPSOverlay {
	return &FPSOverlay{img: ebiten.NewImage(160, 48), lastUpdate: 0.5}
}

// Update records stats and redraws the text when due.
func (o *FPSOverlay) Update(dt float64, stats RenderStats) {
	o.stats = stats
	o.lastUpdate += dt
	if o.lastUpdate < 0.5 {
		return
	}
	o.lastUpdate = 0

	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nPixels: %d/%d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), o.stats.Filled, o.stats.Evaluated))
}

// Draw draws the overlay at the top-left of dst.
func (o *FPSOverlay) Draw(dst *ebiten.Image) {
	dst.DrawImage(o.img, nil)
}
