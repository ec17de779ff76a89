package inkblot

// BreathingPreset is the payload of a breathing sequence.
type BreathingPreset struct {
	Intensity float64 `toml:"intensity"`
	Frequency float64 `toml:"frequency"`
}

// Presets holds one breathing preset per mode.
type Presets struct {
	Idle         BreathingPreset `toml:"idle"`
	Active       BreathingPreset `toml:"active"`
	MenuExpanded BreathingPreset `toml:"menuExpanded"`
}

// DefaultPresets returns the built-in breathing table.
func DefaultPresets() Presets {
	return Presets{
		Idle:         BreathingPreset{Intensity: 1.0, Frequency: 1.0},
		Active:       BreathingPreset{Intensity: 1.3, Frequency: 1.6},
		MenuExpanded: BreathingPreset{Intensity: 0.6, Frequency: 0.7},
	}
}

// For returns the preset of the given mode. Invalid modes get the idle
// preset.
func (p Presets) For(mode Mode) BreathingPreset {
	switch mode {
	case ModeActive:
		return p.Active
	case ModeMenuExpanded:
		return p.MenuExpanded
	default:
		return p.Idle
	}
}
