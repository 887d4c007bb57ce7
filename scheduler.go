package animico

import (
	"math"
	"time"
)

// EventSink is the interface for optional event integration (for example the
// donburi bridge in animico/ecs). When set on a Scheduler, every retirement
// is forwarded to it.
type EventSink interface {
	EmitEvent(event TweenEvent)
}

// TweenEvent describes how a tween left the active set.
type TweenEvent struct {
	Type   EventType
	Handle Handle
	Target any
	Tag    string
}

// EventType identifies why a tween was retired.
type EventType uint8

const (
	EventCompleted EventType = iota // reached its end value; OnComplete has run
	EventCancelled                  // removed by Cancel, CancelTarget or CancelTag
	EventExpired                    // its Alive check reported false
)

func (t EventType) String() string {
	switch t {
	case EventCompleted:
		return "completed"
	case EventCancelled:
		return "cancelled"
	case EventExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// entry is one slot in the scheduler's active list.
type entry struct {
	id   Handle
	r    runner
	dead bool
}

// Scheduler owns the set of in-flight tweens and advances them once per Tick.
//
// A Scheduler is not safe for concurrent use: scheduling, ticking and
// cancelling must all happen on the goroutine that drives the frame loop.
// Schedule and Cancel may be called from inside callbacks fired by Tick.
type Scheduler struct {
	entries []*entry
	byID    map[Handle]*entry
	nextID  Handle

	ticking  bool
	sweeping int // depth of nested cancelWhere calls
	sink     EventSink
	debug    bool

	stats          TickStats
	pendingCancels int
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		entries: make([]*entry, 0, 64),
		byID:    make(map[Handle]*entry, 64),
	}
}

// defaultScheduler backs Default. Only the frame loop goroutine touches it.
var defaultScheduler *Scheduler

// Default returns the process-wide scheduler, creating it on first use.
// It is intended for top-level call sites; library code should accept a
// *Scheduler so tests can inject their own.
func Default() *Scheduler {
	if defaultScheduler == nil {
		defaultScheduler = NewScheduler()
	}
	return defaultScheduler
}

func (s *Scheduler) add(r runner) Handle {
	s.nextID++
	e := &entry{id: s.nextID, r: r}
	s.entries = append(s.entries, e)
	s.byID[e.id] = e
	return e.id
}

// Tick advances every active tween by dt seconds, in registration order.
// Tweens scheduled during this call are first advanced on the next Tick.
// A negative or NaN dt is treated as zero.
func (s *Scheduler) Tick(dt float64) {
	if s.ticking {
		panic("animico: Tick called re-entrantly from a tween callback")
	}
	if dt < 0 || math.IsNaN(dt) {
		if s.debug {
			debugWarnDelta(dt)
		}
		dt = 0
	}

	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	stats := TickStats{DT: dt, Cancelled: s.pendingCancels}
	s.pendingCancels = 0

	s.ticking = true
	defer s.endTick()

	// Only the entries present at the start of the pass are advanced.
	n := len(s.entries)
	for i := 0; i < n; i++ {
		e := s.entries[i]
		if e.dead {
			continue
		}
		stats.Advanced++
		res := e.r.advance(dt)
		if e.dead {
			// Cancelled by its own accessor during the advance.
			continue
		}
		switch res {
		case advanceFinished:
			s.retire(e)
			stats.Completed++
			e.r.complete()
			s.emit(EventCompleted, e)
		case advanceExpired:
			s.retire(e)
			stats.Expired++
			s.emit(EventExpired, e)
		}
	}

	stats.Cancelled += s.pendingCancels
	s.pendingCancels = 0
	stats.Active = len(s.byID)
	if s.debug {
		stats.Elapsed = time.Since(t0)
	}
	s.stats = stats
	if s.debug {
		s.debugLog(stats)
	}
}

// endTick clears the ticking flag and drops retired entries, preserving the
// order of the survivors.
func (s *Scheduler) endTick() {
	s.ticking = false
	s.compact()
}

func (s *Scheduler) compact() {
	live := s.entries[:0]
	for _, e := range s.entries {
		if !e.dead {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(s.entries); i++ {
		s.entries[i] = nil
	}
	s.entries = live
}

func (s *Scheduler) retire(e *entry) {
	e.dead = true
	delete(s.byID, e.id)
}

func (s *Scheduler) emit(typ EventType, e *entry) {
	if s.sink == nil {
		return
	}
	s.sink.EmitEvent(TweenEvent{Type: typ, Handle: e.id, Target: e.r.target(), Tag: e.r.tag()})
}

// Cancel removes the tween immediately. No further value is written and
// OnComplete is not called. Cancelling an unknown, completed or already
// cancelled handle does nothing.
func (s *Scheduler) Cancel(h Handle) {
	e, ok := s.byID[h]
	if !ok {
		return
	}
	s.cancel(e)
	if !s.ticking && s.sweeping == 0 {
		s.compact()
	}
}

func (s *Scheduler) cancel(e *entry) {
	s.retire(e)
	s.pendingCancels++
	s.emit(EventCancelled, e)
}

// CancelTarget cancels every active tween registered with the given target
// and returns how many were cancelled. Targets are compared with ==, so they
// should be pointers or other comparable values.
func (s *Scheduler) CancelTarget(target any) int {
	return s.cancelWhere(func(r runner) bool { return r.target() == target })
}

// CancelTag cancels every active tween with the given tag and returns how
// many were cancelled.
func (s *Scheduler) CancelTag(tag string) int {
	return s.cancelWhere(func(r runner) bool { return r.tag() == tag })
}

// CancelAll cancels every active tween and returns how many were cancelled.
func (s *Scheduler) CancelAll() int {
	return s.cancelWhere(func(runner) bool { return true })
}

func (s *Scheduler) cancelWhere(match func(runner) bool) int {
	count := 0
	// A sink reacting to the events may cancel or append entries; the slice
	// is only compacted once the outermost sweep is done.
	s.sweeping++
	for i := 0; i < len(s.entries); i++ {
		e := s.entries[i]
		if e.dead || !match(e.r) {
			continue
		}
		s.cancel(e)
		count++
	}
	s.sweeping--
	if s.sweeping == 0 && !s.ticking {
		s.compact()
	}
	return count
}

// IsActive reports whether h refers to a tween that has not yet completed,
// expired or been cancelled.
func (s *Scheduler) IsActive(h Handle) bool {
	_, ok := s.byID[h]
	return ok
}

// ActiveCount returns the number of in-flight tweens.
func (s *Scheduler) ActiveCount() int {
	return len(s.byID)
}

// Update advances the scheduler by the clock's frame delta.
func (s *Scheduler) Update(c FrameClock) {
	s.Tick(c.Delta())
}

// SetEventSink sets the optional event bridge. Pass nil to detach.
func (s *Scheduler) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, per-tick stats
// and warnings are printed to stderr.
func (s *Scheduler) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Stats returns the counters recorded by the most recent Tick.
func (s *Scheduler) Stats() TickStats {
	return s.stats
}
