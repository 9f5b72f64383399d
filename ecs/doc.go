// Package ecs provides ECS adapters for quill's pointer event system.
//
// The primary adapter is [NewDonburiSink], which bridges quill interaction
// events (mousemove, mousedown, mouseup, click, mouseover, mouseout,
// mouseleave) into a [Donburi] world as typed events. Subscribe to
// [InteractionEventType] in your ECS systems to receive them.
//
// Nodes can be bound to entities with [DonburiSink.Bind]; events whose target
// is a bound node are additionally published to [EntityEventType] with the
// entity attached.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	stage.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
