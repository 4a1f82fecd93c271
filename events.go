package pretender

// LifecycleEventType identifies a change in an entity's life.
type LifecycleEventType uint8

const (
	EventSpawned LifecycleEventType = iota // entity entered the registry
	EventRetired                           // entity left the registry and returns to its pool
)

// RetireReason says why an entity was retired.
type RetireReason uint8

const (
	RetireNone      RetireReason = iota
	RetireKilled                 // picked off at a point (KillAt)
	RetireOffStreet              // walked past the street's left edge
)

// LifecycleEvent carries spawn and retirement notifications to an EventSink.
type LifecycleEvent struct {
	Type     LifecycleEventType
	EntityID uint32
	X, Y     float64
	Reason   RetireReason
}

// EventSink receives lifecycle events. The ecs package bridges them into a
// Donburi world.
type EventSink interface {
	EmitEvent(event LifecycleEvent)
}

func emit(sink EventSink, event LifecycleEvent) {
	if sink != nil {
		sink.EmitEvent(event)
	}
}

// EventFlusher is implemented by sinks that queue events. The scene calls
// FlushEvents once at the end of every tick.
type EventFlusher interface {
	FlushEvents()
}

func flushEvents(sink EventSink) {
	if f, ok := sink.(EventFlusher); ok {
		f.FlushEvents()
	}
}
