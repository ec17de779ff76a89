package inkblot

import (
	"cmp"
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/tanema/gween"
)

// Priorities used by TransitionToState. Higher runs sooner.
const (
	PriorityMorph     = 10
	PriorityMove      = 9
	PriorityBreathing = 1
)

// Default sequence durations in seconds.
const (
	DefaultMoveDuration  = 1.2
	DefaultMorphDuration = 0.6
)

// entry is a queued or active sequence.
type entry struct {
	seq      Sequence
	priority int
	id       uint64

	progress *gween.Tween // created on activation
	elapsed  float64
}

// Sequencer runs one animation sequence at a time on a ShapeField, picking
// the next from a priority queue. Equal priorities run in enqueue order.
//
// The Sequencer reads no clock. Every active sequence accumulates the dt
// passed to Update, in seconds.
type Sequencer struct {
	field *ShapeField

	// Bounds is the viewport that move detours are clamped into. An empty
	// rect disables clamping.
	Bounds Rect
	// MoveDuration and MorphDuration are used by TransitionToState.
	MoveDuration  float64
	MorphDuration float64
	// Presets is the per-mode breathing table used by TransitionToState.
	Presets Presets

	queue  []entry
	active *entry
	lastID uint64

	rng  *rand.Rand
	sink EventSink
}

// NewSequencer creates an idle sequencer driving field. The seed fixes the
// choice of detour sides.
func NewSequencer(field *ShapeField, seed uint64) *Sequencer {
	return &Sequencer{
		field:         field,
		MoveDuration:  DefaultMoveDuration,
		MorphDuration: DefaultMorphDuration,
		Presets:       DefaultPresets(),
		rng:           rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Field returns the field this sequencer drives.
func (s *Sequencer) Field() *ShapeField {
	return s.field
}

// SetEventSink sets the optional lifecycle event receiver. Pass nil to
// disable.
func (s *Sequencer) SetEventSink(sink EventSink) {
	s.sink = sink
}

// Enqueue adds seq with the given priority. If nothing is active, the head of
// the queue becomes active immediately.
func (s *Sequencer) Enqueue(seq Sequence, priority int) {
	s.lastID++
	s.queue = append(s.queue, entry{seq: seq, priority: priority, id: s.lastID})
	slices.SortStableFunc(s.queue, func(a, b entry) int {
		return cmp.Or(cmp.Compare(b.priority, a.priority), cmp.Compare(a.id, b.id))
	})
	if s.active == nil {
		s.promote()
	}
}

// Update advances the active sequence by dt seconds and applies it to the
// field. A finished sequence is retired and the next one promoted; the
// promoted sequence starts advancing on the following Update.
func (s *Sequencer) Update(dt float64) {
	e := s.active
	if e == nil {
		return
	}
	dt = max(dt, 0)
	e.elapsed += dt
	p, finished := e.progress.Update(float32(dt))
	s.apply(e, float64(p), finished)

	switch {
	case e.seq.Continuous:
		if len(s.queue) > 0 {
			s.retire(EventReplaced)
		}
	case finished:
		s.retire(EventCompleted)
	}
}

func (s *Sequencer) apply(e *entry, p float64, finished bool) {
	f := s.field
	switch e.seq.Kind {
	case KindMove:
		wp := e.seq.Waypoints
		if len(wp) == 0 {
			return
		}
		pt := wp[len(wp)-1]
		if !finished {
			pt = pathPoint(wp, p)
		}
		// Written to the target so the field's own smoothing still applies.
		f.SetTarget(pt.X, pt.Y)
	case KindMorph:
		v := e.seq.To
		if !finished {
			v = e.seq.From + (e.seq.To-e.seq.From)*p
		}
		f.SetMorph(v)
	case KindBreathing:
		f.BreathingIntensity = e.seq.Breathing.Intensity
		f.BreathingFrequency = e.seq.Breathing.Frequency
	}
}

func (s *Sequencer) promote() {
	if len(s.queue) == 0 {
		s.active = nil
		return
	}
	e := s.queue[0]
	s.queue = slices.Delete(s.queue, 0, 1)
	e.progress = newProgressTween(e.seq.Duration, e.seq.Easing)
	s.active = &e
	Logger().Debug("inkblot: sequence started",
		slog.String("kind", e.seq.Kind.String()),
		slog.Int("priority", e.priority),
		slog.Uint64("id", e.id))
	s.emit(EventStarted, &e)
}

func (s *Sequencer) retire(reason EventType) {
	e := s.active
	s.active = nil
	Logger().Debug("inkblot: sequence "+reason.String(),
		slog.String("kind", e.seq.Kind.String()),
		slog.Uint64("id", e.id),
		slog.Float64("elapsed", e.elapsed))
	s.emit(reason, e)
	s.promote()
}

func (s *Sequencer) emit(t EventType, e *entry) {
	if s.sink == nil {
		return
	}
	s.sink.EmitEvent(SequenceEvent{
		Type:     t,
		Kind:     e.seq.Kind,
		Priority: e.priority,
		ID:       e.id,
		Elapsed:  e.elapsed,
	})
}

// EmergencyStop discards the active sequence and everything queued. The field
// is left as it is.
func (s *Sequencer) EmergencyStop() {
	dropped := len(s.queue)
	if s.active != nil {
		dropped++
		s.emit(EventStopped, s.active)
	}
	s.active = nil
	s.queue = s.queue[:0]
	Logger().Info("inkblot: emergency stop", slog.Int("dropped", dropped))
}

// Active returns a copy of the active sequence.
func (s *Sequencer) Active() (Sequence, bool) {
	if s.active == nil {
		return Sequence{}, false
	}
	return s.active.seq, true
}

// Pending returns the number of queued sequences, not counting the active
// one.
func (s *Sequencer) Pending() int {
	return len(s.queue)
}

// Idle reports whether nothing is active or queued.
func (s *Sequencer) Idle() bool {
	return s.active == nil && len(s.queue) == 0
}

// CreateMoveSequence plans a move from the field's current position to
// (targetX, targetY), detouring around (avoidX, avoidY). The detour side is
// picked at random.
func (s *Sequencer) CreateMoveSequence(targetX, targetY, avoidX, avoidY, duration float64) Sequence {
	side := 1.0
	if s.rng.IntN(2) == 0 {
		side = -1
	}
	path := PlanPath(
		Vec2{s.field.X, s.field.Y},
		Vec2{targetX, targetY},
		Vec2{avoidX, avoidY},
		side, s.Bounds)
	return NewMoveSequence(path, duration, EaseInOut)
}

// CreateMorphSequence returns a morph from the field's current morph factor
// to target.
func (s *Sequencer) CreateMorphSequence(target, duration float64) Sequence {
	return NewMorphSequence(s.field.MorphFactor, target, duration, EaseInOut)
}

// CreateBreathingSequence returns the breathing sequence of a mode.
func (s *Sequencer) CreateBreathingSequence(mode Mode) Sequence {
	return NewBreathingSequence(s.Presets.For(mode))
}

// TransitionToState animates the field into mode: a morph to the mode's
// morph factor, a move to target when it is not nil, then the mode's
// breathing. The field's Mode is updated at once, so it leads the visuals
// while the morph and move play out. Invalid modes are ignored.
func (s *Sequencer) TransitionToState(mode Mode, target *Vec2, avoidX, avoidY float64) {
	morph, ok := mode.MorphTarget()
	if !ok {
		Logger().Warn("inkblot: ignoring transition to unknown mode", slog.Int("mode", int(mode)))
		return
	}
	s.Enqueue(s.CreateMorphSequence(morph, s.MorphDuration), PriorityMorph)
	if target != nil {
		s.Enqueue(s.CreateMoveSequence(target.X, target.Y, avoidX, avoidY, s.MoveDuration), PriorityMove)
	}
	s.Enqueue(s.CreateBreathingSequence(mode), PriorityBreathing)
	s.field.SetState(mode)
}
