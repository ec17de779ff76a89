// Package inkblot renders an animated, organic ink blot from a signed
// distance field and sequences its animations.
//
// The package has two cooperating types:
//
//   - [ShapeField] evaluates the blot's distance field, a breathing ellipse
//     and two orbiting circles joined with smooth minimums, and rasterizes it
//     into a [PixelBuffer].
//   - [Sequencer] runs one animation at a time on a field (move, morph or
//     breathing) from a priority queue, with eased progress via [gween].
//
// # Frame loop
//
// Drive both once per frame, in this order. All times are seconds:
//
//	field := inkblot.NewShapeField(160, 120)
//	seq := inkblot.NewSequencer(field, 1)
//	buf := inkblot.NewPixelBuffer(320, 240)
//
//	seq.TransitionToState(inkblot.ModeMenuExpanded, &inkblot.Vec2{X: 200, Y: 100}, cursorX, cursorY)
//
//	// each frame:
//	seq.Update(dt)
//	field.Update(dt)
//	field.Render(buf)
//
// [Driver] bundles the three and adds screenshots; [ScenarioRunner] plays
// JSON scripts against a Driver. For Ebitengine, [RenderTexture] uploads the
// buffer to an *ebiten.Image each frame:
//
//	type Game struct {
//		driver *inkblot.Driver
//		tex    *inkblot.RenderTexture
//	}
//
//	func (g *Game) Update() error {
//		g.driver.Step(1 / float64(ebiten.TPS()))
//		return nil
//	}
//	func (g *Game) Draw(s *ebiten.Image) { g.tex.Upload(); g.tex.DrawTo(s, 0, 0, 1) }
//	func (g *Game) Layout(w, h int) (int, int) { return 320, 240 }
//
// # Motion
//
// Moves are written to the field's target position and the field smooths
// toward it, so a move is filtered twice. Morphs write the current morph
// factor directly. Breathing sequences never complete; they yield as soon as
// other work is queued.
//
// [gween]: https://github.com/tanema/gween
package inkblot
