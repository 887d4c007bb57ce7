// Package animico is a frame-driven tween scheduler with an easing library.
//
// A tween animates one property of a target from its current value to an end
// value over a fixed duration. The host calls [Scheduler.Tick] once per frame
// with the elapsed seconds, and every active tween writes its interpolated
// value through a setter. On the tick where a tween's elapsed time reaches its
// duration, the end value is written exactly, the tween is removed, and its
// completion callback fires.
//
// # Quick start
//
//	s := animico.NewScheduler()
//	node := animico.NewNode("hero")
//
//	animico.TweenPosition(s, node, animico.Vec3{X: 100, Y: 50}, 0.5, animico.EaseOut, nil)
//
//	// once per frame:
//	s.Tick(dt)
//
// To drive the scheduler from an Ebitengine game loop, see the host
// subpackage. The ecs subpackage publishes tween events into a Donburi world.
//
// # Tweens
//
// [Schedule] registers a generic [Tween] for any value type with an
// [Interpolator]. [ScheduleFloat], [ScheduleVec2], [ScheduleVec3] and
// [ScheduleColor] cover the built-in value types. The start value is read
// lazily on the tween's first advance, not at registration.
//
// Property adapters such as [TweenX], [TweenScale], [TweenColor],
// [TweenAlpha], [TweenRotation], [TweenMaterialColor] and [TweenZoom] bind a
// tween to a target's getter and setter. Adapters stop a tween silently if
// the target is disposed while it runs.
//
// Each registration returns a [Handle]. Cancel with [Scheduler.Cancel],
// [Scheduler.CancelTarget], [Scheduler.CancelTag] or [Scheduler.CancelAll].
// Cancelled tweens keep their last written value and never complete.
//
// # Easing
//
// An [EaseFunc] maps linear progress in [0, 1] to eased progress. [Linear],
// [EaseIn], [EaseOut] and [EaseInOut] are built in; [FromGween] wraps any
// curve from the gween ease package, and [EaseByName] looks curves up by
// name for data-driven timings. Eased progress is not clamped, so curves
// such as outBack overshoot the end value before settling on it.
//
// # Presets and scripts
//
// [LoadPresets] reads named duration and easing pairs from YAML.
// [LoadScript] reads a frame script (tick, wait, cancelTag, cancelAll) that a
// [ScriptRunner] replays against a scheduler for reproducible tests.
//
// # Debugging
//
// [Scheduler.SetDebugMode] logs per-tick statistics and warnings to stderr.
// [Scheduler.Stats] returns the counters from the most recent tick.
//
// # Threading
//
// A Scheduler is not safe for concurrent use. Tick, registration and
// cancellation must all happen on the thread that runs the frame loop.
// Callbacks may register or cancel tweens during a tick; a tween registered
// during a tick first advances on the next one. Calling Tick from inside a
// callback panics.
package animico
