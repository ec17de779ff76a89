// Package ecs provides ECS adapters for inkblot.
package ecs

import (
	"github.com/phanxgames/inkblot"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SequenceEventType is the Donburi event type for inkblot sequence events.
// Subscribe to this in your ECS systems to react to animations starting,
// completing, being replaced or stopped.
var SequenceEventType = events.NewEventType[inkblot.SequenceEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Sequence events are published to SequenceEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) inkblot.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event inkblot.SequenceEvent) {
	SequenceEventType.Publish(s.world, event)
}
