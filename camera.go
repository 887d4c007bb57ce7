package animico

// Camera controls the view into a scene: position, zoom and orthographic size.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// OrthoSize is half the height of the view volume in world units.
	OrthoSize float64

	scroll Handle
	sched  *Scheduler
}

// NewCamera creates a Camera with default values.
func NewCamera() *Camera {
	return &Camera{Zoom: 1.0, OrthoSize: 5}
}

// ViewHeight returns the visible world height, accounting for zoom.
func (c *Camera) ViewHeight() float64 {
	if c.Zoom == 0 {
		return 0
	}
	return 2 * c.OrthoSize / c.Zoom
}

// ScrollTo animates the camera to the given world position over duration
// seconds. A scroll already in progress on the same camera is cancelled.
func (c *Camera) ScrollTo(s *Scheduler, x, y, duration float64, fn EaseFunc, onComplete func()) (Handle, error) {
	h, err := ScheduleVec2(s, c,
		func() Vec2 { return Vec2{c.X, c.Y} },
		func(v Vec2) { c.X, c.Y = v.X, v.Y },
		Vec2{x, y}, duration, fn, onComplete)
	if err != nil {
		return 0, err
	}
	if c.sched != nil {
		c.sched.Cancel(c.scroll)
	}
	c.scroll, c.sched = h, s
	return h, nil
}

// IsScrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) IsScrolling() bool {
	return c.sched != nil && c.sched.IsActive(c.scroll)
}
