package animico

import (
	"fmt"
	"math"
)

// Handle identifies a scheduled tween. The zero Handle is never issued.
type Handle uint64

// Tween describes one interpolation to register with a Scheduler.
//
// From is called once, at the first advance, to capture the live start value.
// Set receives every interpolated value and, last, the exact To value.
type Tween[V any] struct {
	// Target identifies the object being animated. The scheduler never
	// inspects it; it is only used by CancelTarget and carried on events.
	// It may be nil.
	Target any

	From func() V
	Set  func(V)
	To   V
	Lerp Interpolator[V]

	// Duration is in seconds and must be > 0.
	Duration float64

	// Ease is optional; nil means linear.
	Ease       EaseFunc
	OnComplete func()

	// Tag is an optional label for CancelTag, scripts, and events.
	Tag string

	// Alive is optional. When it reports false the tween is dropped before
	// its next write and OnComplete is not called.
	Alive func() bool
}

func (tw *Tween[V]) validate() error {
	if !(tw.Duration > 0) || math.IsInf(tw.Duration, 1) {
		return fmt.Errorf("%w: duration must be positive and finite, got %v", ErrInvalidArgument, tw.Duration)
	}
	if tw.From == nil {
		return fmt.Errorf("%w: nil start accessor", ErrInvalidArgument)
	}
	if tw.Set == nil {
		return fmt.Errorf("%w: nil setter", ErrInvalidArgument)
	}
	if tw.Lerp == nil {
		return fmt.Errorf("%w: nil interpolator", ErrInvalidArgument)
	}
	return nil
}

// advanceResult reports what happened to a tween during one advance.
type advanceResult uint8

const (
	advanceRunning advanceResult = iota
	advanceFinished
	advanceExpired
)

// runner is the type-erased view of a tween the scheduler iterates over.
type runner interface {
	advance(dt float64) advanceResult
	complete()
	target() any
	tag() string
}

// tweenState is the scheduler-owned record for a Tween[V].
type tweenState[V any] struct {
	tw      Tween[V]
	start   V
	started bool
	elapsed float64
}

func (st *tweenState[V]) advance(dt float64) advanceResult {
	tw := &st.tw
	if tw.Alive != nil && !tw.Alive() {
		return advanceExpired
	}
	if !st.started {
		st.start = tw.From()
		st.started = true
	}

	st.elapsed += dt
	ratio := st.elapsed / tw.Duration
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}

	progress := ratio
	if tw.Ease != nil {
		progress = tw.Ease(ratio)
	}
	tw.Set(tw.Lerp(st.start, tw.To, progress))

	if ratio >= 1 {
		// Exact final write: the interpolated value above may carry rounding
		// error or easing overshoot.
		tw.Set(tw.To)
		return advanceFinished
	}
	return advanceRunning
}

func (st *tweenState[V]) complete() {
	if st.tw.OnComplete != nil {
		st.tw.OnComplete()
	}
}

func (st *tweenState[V]) target() any { return st.tw.Target }
func (st *tweenState[V]) tag() string { return st.tw.Tag }

// Schedule validates tw and registers it with s. The tween is first advanced
// on the next Tick. Validation errors wrap ErrInvalidArgument and nothing is
// registered.
func Schedule[V any](s *Scheduler, tw Tween[V]) (Handle, error) {
	if s == nil {
		return 0, fmt.Errorf("%w: nil scheduler", ErrInvalidArgument)
	}
	if err := tw.validate(); err != nil {
		return 0, err
	}
	return s.add(&tweenState[V]{tw: tw}), nil
}

// ScheduleFloat registers a scalar tween.
func ScheduleFloat(s *Scheduler, target any, get func() float64, set func(float64), end, duration float64, fn EaseFunc, onComplete func()) (Handle, error) {
	return Schedule(s, Tween[float64]{
		Target: target, From: get, Set: set, To: end, Lerp: lerpFloat,
		Duration: duration, Ease: fn, OnComplete: onComplete,
	})
}

// ScheduleVec2 registers a 2-component vector tween.
func ScheduleVec2(s *Scheduler, target any, get func() Vec2, set func(Vec2), end Vec2, duration float64, fn EaseFunc, onComplete func()) (Handle, error) {
	return Schedule(s, Tween[Vec2]{
		Target: target, From: get, Set: set, To: end, Lerp: lerpVec2,
		Duration: duration, Ease: fn, OnComplete: onComplete,
	})
}

// ScheduleVec3 registers a 3-component vector tween.
func ScheduleVec3(s *Scheduler, target any, get func() Vec3, set func(Vec3), end Vec3, duration float64, fn EaseFunc, onComplete func()) (Handle, error) {
	return Schedule(s, Tween[Vec3]{
		Target: target, From: get, Set: set, To: end, Lerp: lerpVec3,
		Duration: duration, Ease: fn, OnComplete: onComplete,
	})
}

// ScheduleColor registers an RGBA tween.
func ScheduleColor(s *Scheduler, target any, get func() Color, set func(Color), end Color, duration float64, fn EaseFunc, onComplete func()) (Handle, error) {
	return Schedule(s, Tween[Color]{
		Target: target, From: get, Set: set, To: end, Lerp: lerpColor,
		Duration: duration, Ease: fn, OnComplete: onComplete,
	})
}
