package animico

import (
	"fmt"
	"reflect"
)

// The adapters below bind one property of one object to the scheduler. Each
// reads the live value at the first advance and writes through the object's
// setter, so single-axis tweens on the same object compose. If the target
// implements IsDisposed, disposal stops the tween before its next write.

// TweenX animates the X component of target's position.
func TweenX(s *Scheduler, target Positioner, end, duration float64, fn EaseFunc, onComplete func()) (Handle, error) {
	if isNil(target) {
		return 0, errNilTarget
	}
	return bindAxis(s, target, target.Position, target.SetPosition, axisX, end, duration, fn, onComplete)
}

// TweenY animates the Y component of target's position.
func TweenY(s *Scheduler, target Positioner, end, duration float64, fn EaseFunc, onComplete func()) (Handle, error) {
	if isNil(target) {
		return 0, errNilTarget
	}
	return bindAxis(s, target, target.Position, target.SetPosition, axisY, end, duration, fn, onComplete)
}

// TweenZ animates the Z component of target's position.
func TweenZ(s *Scheduler, target Positioner, end, duration float64, fn EaseFunc, onComplete func()) (Handle, error) {
	if isNil(target) {
		return 0, errNilTarget
	}
	return bindAxis(s, target, target.Position, target.SetPosition, axisZ, end, duration, fn, onComplete)
}

// TweenPosition animates all three components of target's position.
func TweenPosition(s *Scheduler, target Positioner, end Vec3, duration float64, fn EaseFunc, onComplete func()) (Handle, error) {
	if isNil(target) {
		return 0, errNilTarget
	}
	return bind(s, target, target.Position, target.SetPosition, end, lerpVec3, duration, fn, onComplete)
}

// TweenScaleX animates the X component of target's scale.
func TweenScaleX(s *Scheduler, target Scaler, end, duration float64, fn EaseFunc, onComplete func()) (Handle, error) {
	if isNil(target) {
		return 0, errNilTarget
	}
	return bindAxis(s, target, target.Scale, target.SetScale, axisX, end, duration, fn, onComplete)
}

// TweenScaleY animates the Y component of target's scale.
func TweenScaleY(s *Scheduler, target Scaler, end, duration float64, fn EaseFunc, onComplete func()) (Handle, error) {
	if isNil(target) {
		return 0, errNilTarget
	}
	return bindAxis(s, target, target.Scale, target.SetScale, axisY, end, duration, fn, onComplete)
}

// TweenScaleZ animates the Z component of target's scale.
func TweenScaleZ(s *Scheduler, target Scaler, end, duration float64, fn EaseFunc, onComplete func()) (Handle, error) {
	if isNil(target) {
		return 0, errNilTarget
	}
	return bindAxis(s, target, target.Scale, target.SetScale, axisZ, end, duration, fn, onComplete)
}

// TweenScale animates all three components of target's scale.
func TweenScale(s *Scheduler, target Scaler, end Vec3, duration float64, fn EaseFunc, onComplete func()) (Handle, error) {
	if isNil(target) {
		return 0, errNilTarget
	}
	return bind(s, target, target.Scale, target.SetScale, end, lerpVec3, duration, fn, onComplete)
}

// TweenColor animates all four channels of target's tint.
func TweenColor(s *Scheduler, target Tinter, end Color, duration float64, fn EaseFunc, onComplete func()) (Handle, error) {
	if isNil(target) {
		return 0, errNilTarget
	}
	return bind(s, target, target.Tint, target.SetTint, end, lerpColor, duration, fn, onComplete)
}

// TweenAlpha animates only the alpha channel of target's tint, leaving R, G
// and B free for other tweens.
func TweenAlpha(s *Scheduler, target Tinter, end, duration float64, fn EaseFunc, onComplete func()) (Handle, error) {
	if isNil(target) {
		return 0, errNilTarget
	}
	return bind(s, target,
		func() float64 { return target.Tint().A },
		func(a float64) {
			c := target.Tint()
			c.A = a
			target.SetTint(c)
		},
		end, lerpFloat, duration, fn, onComplete)
}

// TweenRotation animates target's rotation angle, in radians.
func TweenRotation(s *Scheduler, target Rotator, end, duration float64, fn EaseFunc, onComplete func()) (Handle, error) {
	if isNil(target) {
		return 0, errNilTarget
	}
	return bind(s, target, target.Angle, target.SetAngle, end, lerpFloat, duration, fn, onComplete)
}

// TweenMaterialColor animates the color of r's material. It fails with
// ErrNoMaterial if r has none.
func TweenMaterialColor(s *Scheduler, r *Renderer, end Color, duration float64, fn EaseFunc, onComplete func()) (Handle, error) {
	m, err := rendererMaterial(r)
	if err != nil {
		return 0, err
	}
	return bind(s, r,
		func() Color { return m.Color },
		func(c Color) { m.Color = c },
		end, lerpColor, duration, fn, onComplete)
}

// TweenMaterialAlpha animates the alpha channel of r's material. It fails
// with ErrNoMaterial if r has none.
func TweenMaterialAlpha(s *Scheduler, r *Renderer, end, duration float64, fn EaseFunc, onComplete func()) (Handle, error) {
	m, err := rendererMaterial(r)
	if err != nil {
		return 0, err
	}
	return bind(s, r,
		func() float64 { return m.Color.A },
		func(a float64) { m.Color.A = a },
		end, lerpFloat, duration, fn, onComplete)
}

// TweenOrthoSize animates the camera's orthographic size.
func TweenOrthoSize(s *Scheduler, c *Camera, end, duration float64, fn EaseFunc, onComplete func()) (Handle, error) {
	if c == nil {
		return 0, errNilTarget
	}
	return bind(s, c,
		func() float64 { return c.OrthoSize },
		func(v float64) { c.OrthoSize = v },
		end, lerpFloat, duration, fn, onComplete)
}

// TweenZoom animates the camera's zoom factor.
func TweenZoom(s *Scheduler, c *Camera, end, duration float64, fn EaseFunc, onComplete func()) (Handle, error) {
	if c == nil {
		return 0, errNilTarget
	}
	return bind(s, c,
		func() float64 { return c.Zoom },
		func(v float64) { c.Zoom = v },
		end, lerpFloat, duration, fn, onComplete)
}

// --- helpers ---

var errNilTarget = fmt.Errorf("%w: nil target", ErrInvalidArgument)

type axis uint8

const (
	axisX axis = iota
	axisY
	axisZ
)

func (a axis) get(v Vec3) float64 {
	switch a {
	case axisX:
		return v.X
	case axisY:
		return v.Y
	default:
		return v.Z
	}
}

func (a axis) set(v Vec3, f float64) Vec3 {
	switch a {
	case axisX:
		v.X = f
	case axisY:
		v.Y = f
	default:
		v.Z = f
	}
	return v
}

// bindAxis binds one component of a Vec3 property. The setter re-reads the
// other components on every write.
func bindAxis(s *Scheduler, target any, get func() Vec3, set func(Vec3), a axis, end, duration float64, fn EaseFunc, onComplete func()) (Handle, error) {
	return bind(s, target,
		func() float64 { return a.get(get()) },
		func(f float64) { set(a.set(get(), f)) },
		end, lerpFloat, duration, fn, onComplete)
}

func bind[V any](s *Scheduler, target any, get func() V, set func(V), end V, lerp Interpolator[V], duration float64, fn EaseFunc, onComplete func()) (Handle, error) {
	if isNil(target) {
		return 0, errNilTarget
	}
	return Schedule(s, Tween[V]{
		Target:     target,
		From:       get,
		Set:        set,
		To:         end,
		Lerp:       lerp,
		Duration:   duration,
		Ease:       fn,
		OnComplete: onComplete,
		Alive:      aliveCheck(target),
	})
}

func aliveCheck(target any) func() bool {
	d, ok := target.(disposable)
	if !ok {
		return nil
	}
	return func() bool { return !d.IsDisposed() }
}

func rendererMaterial(r *Renderer) (*Material, error) {
	if r == nil {
		return nil, errNilTarget
	}
	if r.Material == nil {
		return nil, ErrNoMaterial
	}
	return r.Material, nil
}

// isNil reports whether v is nil or a nil pointer stored in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return rv.IsNil()
	}
	return false
}
