package ecs

import (
	"testing"

	"github.com/phanxgames/inkblot"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []inkblot.SequenceEvent
	SequenceEventType.Subscribe(world, func(w donburi.World, e inkblot.SequenceEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(inkblot.SequenceEvent{
		Type:     inkblot.EventStarted,
		Kind:     inkblot.KindMorph,
		Priority: 10,
		ID:       1,
	})
	sink.EmitEvent(inkblot.SequenceEvent{
		Type:    inkblot.EventCompleted,
		Kind:    inkblot.KindMorph,
		ID:      1,
		Elapsed: 0.6,
	})

	// Events are queued until processed.
	SequenceEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Type != inkblot.EventStarted || e.Priority != 10 {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Type != inkblot.EventCompleted || e.Elapsed != 0.6 {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiSink_FromSequencer(t *testing.T) {
	world := donburi.NewWorld()

	var kinds []inkblot.Kind
	var types []inkblot.EventType
	SequenceEventType.Subscribe(world, func(w donburi.World, e inkblot.SequenceEvent) {
		kinds = append(kinds, e.Kind)
		types = append(types, e.Type)
	})

	field := inkblot.NewShapeField(100, 100)
	seq := inkblot.NewSequencer(field, 1)
	seq.SetEventSink(NewDonburiSink(world))

	seq.Enqueue(inkblot.NewMorphSequence(0, 1, 0, inkblot.EaseLinear), 10)
	seq.Update(0.1)
	events.ProcessAllEvents(world)

	if len(types) != 2 {
		t.Fatalf("expected 2 events, got %d (%v)", len(types), types)
	}
	if types[0] != inkblot.EventStarted || types[1] != inkblot.EventCompleted {
		t.Errorf("types = %v, want [started completed]", types)
	}
	if kinds[0] != inkblot.KindMorph {
		t.Errorf("kind = %v, want morph", kinds[0])
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink inkblot.EventSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}
