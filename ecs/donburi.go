package ecs

import (
	"github.com/phanxgames/animico"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TweenEventType is the Donburi event type for animico tween events.
// Subscribe to this in your ECS systems to react to completions and
// cancellations.
var TweenEventType = events.NewEventType[animico.TweenEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Tween events are published to TweenEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) animico.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event animico.TweenEvent) {
	TweenEventType.Publish(s.world, event)
}

// HandleSet lists the tweens owned by an entity.
type HandleSet struct {
	Handles []animico.Handle
}

// Handles is the component that records an entity's tweens.
var Handles = donburi.NewComponentType[HandleSet]()

// Track records h as owned by entry, adding the Handles component if needed.
func Track(entry *donburi.Entry, h animico.Handle) {
	if !entry.HasComponent(Handles) {
		donburi.Add(entry, Handles, &HandleSet{})
	}
	set := Handles.Get(entry)
	set.Handles = append(set.Handles, h)
}

// CancelAll cancels every tween tracked on entry that is still active, clears
// the list, and returns how many were cancelled.
func CancelAll(s *animico.Scheduler, entry *donburi.Entry) int {
	if !entry.HasComponent(Handles) {
		return 0
	}
	set := Handles.Get(entry)
	n := 0
	for _, h := range set.Handles {
		if s.IsActive(h) {
			s.Cancel(h)
			n++
		}
	}
	set.Handles = set.Handles[:0]
	return n
}

// Prune drops handles that are no longer active from entry's list.
func Prune(s *animico.Scheduler, entry *donburi.Entry) {
	if !entry.HasComponent(Handles) {
		return
	}
	set := Handles.Get(entry)
	live := set.Handles[:0]
	for _, h := range set.Handles {
		if s.IsActive(h) {
			live = append(live, h)
		}
	}
	set.Handles = live
}
