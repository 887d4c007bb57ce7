package animico

import "golang.org/x/exp/constraints"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Lerp interpolates each channel independently. t is not clamped.
func (c Color) Lerp(to Color, t float64) Color {
	return Color{
		R: Lerp(c.R, to.R, t),
		G: Lerp(c.G, to.G, t),
		B: Lerp(c.B, to.B, t),
		A: Lerp(c.A, to.A, t),
	}
}

// Vec2 is a 2D vector used for camera positions and other planar values.
type Vec2 struct {
	X, Y float64
}

// Lerp interpolates X and Y independently. t is not clamped.
func (v Vec2) Lerp(to Vec2, t float64) Vec2 {
	return Vec2{X: Lerp(v.X, to.X, t), Y: Lerp(v.Y, to.Y, t)}
}

// Vec3 is a 3-component vector used for positions and scales.
type Vec3 struct {
	X, Y, Z float64
}

// Lerp interpolates X, Y and Z independently. t is not clamped.
func (v Vec3) Lerp(to Vec3, t float64) Vec3 {
	return Vec3{X: Lerp(v.X, to.X, t), Y: Lerp(v.Y, to.Y, t), Z: Lerp(v.Z, to.Z, t)}
}

// Interpolator blends from toward to by t. t=0 yields from, t=1 yields to;
// values outside [0, 1] extrapolate.
type Interpolator[V any] func(from, to V, t float64) V

// Lerper is implemented by value types that know how to interpolate
// themselves component-wise (Vec2, Vec3, Color).
type Lerper[V any] interface {
	Lerp(to V, t float64) V
}

// Lerp is the scalar linear interpolation used by every value type.
func Lerp[T constraints.Float](from, to T, t float64) T {
	return from + (to-from)*T(t)
}

// LerpMethod returns an Interpolator that calls V's Lerp method.
func LerpMethod[V Lerper[V]]() Interpolator[V] {
	return func(from, to V, t float64) V {
		return from.Lerp(to, t)
	}
}

var (
	lerpFloat Interpolator[float64] = Lerp[float64]
	lerpVec2                        = LerpMethod[Vec2]()
	lerpVec3                        = LerpMethod[Vec3]()
	lerpColor                       = LerpMethod[Color]()
)
