package inkblot

// Driver owns a field, its sequencer and the pixel buffer they render into,
// and runs them in frame order. It is the glue used by the example program
// and by scripted scenarios; nothing in the core depends on it.
type Driver struct {
	Field     *ShapeField
	Sequencer *Sequencer
	Buffer    *PixelBuffer

	// Pointer is the point moves detour around.
	Pointer Vec2

	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir string

	frame           int
	screenshotQueue []string
}

// NewDriver builds the field, sequencer and buffer described by cfg. The
// pointer starts at the buffer origin.
func NewDriver(cfg Config) *Driver {
	f := cfg.NewField()
	return &Driver{
		Field:         f,
		Sequencer:     cfg.NewSequencer(f),
		Buffer:        NewPixelBuffer(cfg.Width, cfg.Height),
		ScreenshotDir: "screenshots",
	}
}

// Step runs one frame of dt seconds: sequencer, then field integration, then
// rasterization. Screenshots queued before or during the frame are written
// after it is rendered.
func (d *Driver) Step(dt float64) RenderStats {
	d.Sequencer.Update(dt)
	d.Field.Update(dt)
	stats := d.Field.Render(d.Buffer)
	d.frame++
	d.flushScreenshots()
	return stats
}

// Frame returns the number of frames stepped so far.
func (d *Driver) Frame() int {
	return d.frame
}

// Transition animates into mode, moving to target when it is not nil and
// avoiding the pointer.
func (d *Driver) Transition(mode Mode, target *Vec2) {
	d.Sequencer.TransitionToState(mode, target, d.Pointer.X, d.Pointer.Y)
}

// MoveTo queues a move to (x, y) that avoids the pointer.
func (d *Driver) MoveTo(x, y float64) {
	seq := d.Sequencer.CreateMoveSequence(x, y, d.Pointer.X, d.Pointer.Y, d.Sequencer.MoveDuration)
	d.Sequencer.Enqueue(seq, PriorityMove)
}

// Stop discards all animation work.
func (d *Driver) Stop() {
	d.Sequencer.EmergencyStop()
}
