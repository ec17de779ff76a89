package inkblot

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config describes one blot and its animation. Zero-value fields in a loaded
// file keep their defaults.
type Config struct {
	// Width and Height are the pixel buffer size.
	Width  int `toml:"width"`
	Height int `toml:"height"`
	// StartX and StartY place the blot. Zero centers it in the buffer.
	StartX float64 `toml:"startX"`
	StartY float64 `toml:"startY"`
	// BreathingPhase is the per-instance phase offset of the ellipse.
	BreathingPhase float64 `toml:"breathingPhase"`
	// Color is the base ink color.
	Color Color `toml:"color"`

	// MoveDuration and MorphDuration are in seconds.
	MoveDuration  float64 `toml:"moveDuration"`
	MorphDuration float64 `toml:"morphDuration"`
	// Seed fixes the random detour sides.
	Seed uint64 `toml:"seed"`
	// Debug logs render stats.
	Debug bool `toml:"debug"`

	Presets Presets `toml:"presets"`
}

// DefaultConfig returns a 320×240 buffer with the built-in timings and
// presets.
func DefaultConfig() Config {
	return Config{
		Width:         320,
		Height:        240,
		Color:         ColorInk,
		MoveDuration:  DefaultMoveDuration,
		MorphDuration: DefaultMorphDuration,
		Presets:       DefaultPresets(),
	}
}

// LoadConfig decodes TOML on top of DefaultConfig.
//
// Example:
//
//	width = 640
//	height = 480
//	moveDuration = 0.8
//
//	[color]
//	r = 0.9
//	g = 0.2
//	b = 0.3
//	a = 1.0
//
//	[presets.active]
//	intensity = 1.5
//	frequency = 2.0
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Config{}, fmt.Errorf("parse config: invalid size %dx%d", cfg.Width, cfg.Height)
	}
	return cfg, nil
}

// LoadConfigFile reads and decodes a TOML config file.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := LoadConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	Logger().Info("inkblot: config loaded", slog.String("path", path),
		slog.Int("width", cfg.Width), slog.Int("height", cfg.Height))
	return cfg, nil
}

// Bounds returns the buffer rectangle in field coordinates.
func (c Config) Bounds() Rect {
	return Rect{Width: float64(c.Width), Height: float64(c.Height)}
}

// NewField creates the configured ShapeField.
func (c Config) NewField() *ShapeField {
	x, y := c.StartX, c.StartY
	if x == 0 && y == 0 {
		x, y = float64(c.Width)/2, float64(c.Height)/2
	}
	f := NewShapeField(x, y)
	f.BreathingPhase = c.BreathingPhase
	f.Color = c.Color
	f.Debug = c.Debug
	return f
}

// NewSequencer creates the configured Sequencer for field.
func (c Config) NewSequencer(field *ShapeField) *Sequencer {
	s := NewSequencer(field, c.Seed)
	s.Bounds = c.Bounds()
	s.MoveDuration = c.MoveDuration
	s.MorphDuration = c.MorphDuration
	s.Presets = c.Presets
	return s
}
