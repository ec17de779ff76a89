// Package ecs provides ECS adapters for inkblot's sequence events.
//
// The primary adapter is [NewDonburiSink], which bridges sequencer lifecycle
// events (started, completed, replaced, stopped) into a [Donburi] world as
// typed events. Subscribe to [SequenceEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	sequencer.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
