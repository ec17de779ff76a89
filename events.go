package inkblot

// EventSink receives sequence lifecycle events. Set one on a Sequencer to
// bridge animation progress into other systems (see the ecs package).
type EventSink interface {
	EmitEvent(event SequenceEvent)
}

// EventType identifies a sequence lifecycle transition.
type EventType uint8

const (
	EventStarted   EventType = iota // sequence became active
	EventCompleted                  // sequence reached the end of its duration
	EventReplaced                   // continuous sequence yielded to pending work
	EventStopped                    // sequence discarded by EmergencyStop
)

func (t EventType) String() string {
	switch t {
	case EventStarted:
		return "started"
	case EventCompleted:
		return "completed"
	case EventReplaced:
		return "replaced"
	case EventStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// SequenceEvent describes one lifecycle transition of a sequence.
type SequenceEvent struct {
	Type     EventType
	Kind     Kind
	Priority int
	// ID is the enqueue order of the sequence, starting at 1.
	ID uint64
	// Elapsed is the time in seconds the sequence had been active.
	Elapsed float64
}
