package animico

import "time"

// FrameClock reports the seconds elapsed since the previous frame. The host
// calls Scheduler.Update (or Tick with the delta) once per rendered frame.
type FrameClock interface {
	Delta() float64
}

// FixedClock reports the same step every frame, like a fixed-TPS game loop.
type FixedClock struct {
	Step float64
}

// Delta returns the fixed step.
func (c FixedClock) Delta() float64 {
	return c.Step
}

// ManualClock returns whatever delta was last queued with Advance, then zero
// until the next Advance. Useful for tests and tools that step frames by hand.
type ManualClock struct {
	next float64
}

// Advance queues dt seconds for the next Delta call.
func (c *ManualClock) Advance(dt float64) {
	c.next += dt
}

// Delta returns and clears the queued delta.
func (c *ManualClock) Delta() float64 {
	dt := c.next
	c.next = 0
	return dt
}

// WallClock measures real elapsed time between Delta calls. The first call
// returns 0.
type WallClock struct {
	last time.Time
	now  func() time.Time
}

// NewWallClock creates a clock backed by time.Now.
func NewWallClock() *WallClock {
	return &WallClock{now: time.Now}
}

// Delta returns the seconds since the previous call.
func (c *WallClock) Delta() float64 {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return 0
	}
	dt := t.Sub(c.last).Seconds()
	c.last = t
	return dt
}
