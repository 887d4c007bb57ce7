// Package ecs provides ECS adapters for animico.
//
// [NewDonburiSink] bridges scheduler retirements (completed, cancelled,
// expired) into a [Donburi] world as typed events. Subscribe to
// [TweenEventType] in your ECS systems to receive them.
//
// The [Handles] component lets an entity own its tweens so they can be
// cancelled together with [CancelAll] when the entity is removed.
//
// Usage:
//
//	s.SetEventSink(ecs.NewDonburiSink(world))
//	h, _ := animico.TweenX(s, node, 100, 0.5, animico.EaseOut, nil)
//	ecs.Track(entry, h)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
