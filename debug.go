package inkblot

import (
	"log/slog"
	"time"
)

// RenderStats reports the work done by one Render call.
type RenderStats struct {
	Evaluated int // pixels whose field value was computed
	Filled    int // pixels inside the blot
	// Elapsed is only measured when the field is in debug mode.
	Elapsed time.Duration
}

// Culled returns how many pixels of a buffer of the given area were skipped
// by bounding-box culling.
func (s RenderStats) Culled(area int) int {
	return max(area-s.Evaluated, 0)
}

// debugLog writes the stats at debug level.
func (s RenderStats) debugLog() {
	Logger().Debug("inkblot: render",
		slog.Int("evaluated", s.Evaluated),
		slog.Int("filled", s.Filled),
		slog.Duration("elapsed", s.Elapsed))
}
