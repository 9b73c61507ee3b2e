// Package ecs provides ECS adapters for sparkle.
package ecs

import (
	"github.com/phanxgames/sparkle"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TriggerEventType is the Donburi event type for sparkle trigger events.
// Subscribe to this in your ECS systems to receive button triggers and mode
// changes.
var TriggerEventType = events.NewEventType[sparkle.TriggerEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Trigger events are published to TriggerEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) sparkle.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitTrigger(event sparkle.TriggerEvent) {
	TriggerEventType.Publish(s.world, event)
}
