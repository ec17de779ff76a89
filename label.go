package inkblot

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// labelGap is the distance between the blot's reach and the label's top edge.
const labelGap = 4

// ModeLabel draws a field's mode name centered under the blot with
// Ebitengine's text/v2.
type ModeLabel struct {
	face *text.GoTextFace
	lh   float64 // cached line height

	// Color is the text color.
	Color Color
}

// NewModeLabel creates a label using the Go Regular font at size.
func NewModeLabel(size float64) (*ModeLabel, error) {
	return LoadModeLabel(goregular.TTF, size)
}

// LoadModeLabel creates a label from raw TTF/OTF data at the given size.
func LoadModeLabel(ttfData []byte, size float64) (*ModeLabel, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("inkblot: parse font: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &ModeLabel{
		face:  face,
		lh:    m.HAscent + m.HDescent + m.HLineGap,
		Color: Color{A: 1},
	}, nil
}

// Measure returns the size of the rendered mode name.
func (l *ModeLabel) Measure(m Mode) (width, height float64) {
	return text.Measure(m.String(), l.face, l.lh)
}

// Position returns the top-left corner the label is drawn at for f, clamped
// to a viewport of the given size so it stays readable near the edges.
func (l *ModeLabel) Position(f *ShapeField, viewW, viewH float64) (x, y float64) {
	w, h := l.Measure(f.Mode)
	x = f.X - w/2
	y = f.Y + min(f.Reach(), viewH) + labelGap
	x = max(0, min(x, viewW-w))
	y = max(0, min(y, viewH-h))
	return x, y
}

// Draw draws f's mode name onto dst.
func (l *ModeLabel) Draw(dst *ebiten.Image, f *ShapeField) {
	b := dst.Bounds()
	x, y := l.Position(f, float64(b.Dx()), float64(b.Dy()))

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.LineSpacing = l.lh
	c := l.Color
	op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	text.Draw(dst, f.Mode.String(), l.face, op)
}
