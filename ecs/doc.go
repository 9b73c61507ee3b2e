// Package ecs provides ECS adapters for sparkle's trigger events.
//
// The primary adapter is [NewDonburiSink], which bridges sparkle trigger and
// mode change events into a [Donburi] world as typed events. Subscribe to
// [TriggerEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	page.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
