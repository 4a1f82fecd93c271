package ecs

import (
	"github.com/phanxgames/pretender"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LifecycleEventType is the Donburi event type for pretender lifecycle events.
var LifecycleEventType = events.NewEventType[pretender.LifecycleEvent]()

// DonburiSink is an EventSink backed by a Donburi world.
type DonburiSink struct {
	world donburi.World
}

var (
	_ pretender.EventSink    = (*DonburiSink)(nil)
	_ pretender.EventFlusher = (*DonburiSink)(nil)
)

// NewDonburiSink creates a sink that publishes to LifecycleEventType. Events
// are queued until FlushEvents (or events.ProcessAllEvents) runs.
func NewDonburiSink(world donburi.World) *DonburiSink {
	return &DonburiSink{world: world}
}

// EmitEvent queues event in the world.
func (s *DonburiSink) EmitEvent(event pretender.LifecycleEvent) {
	LifecycleEventType.Publish(s.world, event)
}

// FlushEvents delivers queued lifecycle events to subscribers.
func (s *DonburiSink) FlushEvents() {
	LifecycleEventType.ProcessEvents(s.world)
}

// World returns the underlying world.
func (s *DonburiSink) World() donburi.World { return s.world }
