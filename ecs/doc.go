// Package ecs bridges pretender lifecycle events into a [Donburi] world.
//
// [NewDonburiSink] publishes spawn and retirement events to
// [LifecycleEventType]; subscribe to it in your ECS systems. [NewCensus]
// keeps a running population count in a singleton component.
//
// Usage:
//
//	world := donburi.NewWorld()
//	sink := ecs.NewDonburiSink(world)
//	census := ecs.NewCensus(world)
//	// pass sink as the scene's EventSink
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
