package animico

import (
	"strings"

	"github.com/tanema/gween/ease"
)

// EaseFunc remaps normalized progress. The scheduler passes a ratio clamped to
// [0, 1] but never clamps the result, so curves may overshoot.
type EaseFunc func(t float64) float64

// Linear returns t unchanged.
func Linear(t float64) float64 {
	return t
}

// EaseIn accelerates from zero velocity: t².
func EaseIn(t float64) float64 {
	return t * t
}

// EaseOut decelerates to zero velocity: t(2-t).
func EaseOut(t float64) float64 {
	return t * (2 - t)
}

// EaseInOut accelerates until halfway, then decelerates.
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// FromGween adapts a gween easing curve, which uses the Penner
// (t, begin, change, duration) signature, to an EaseFunc.
func FromGween(fn ease.TweenFunc) EaseFunc {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// easeRegistry maps lower-cased names to curves for EaseByName.
var easeRegistry = map[string]EaseFunc{
	"linear":    Linear,
	"easein":    EaseIn,
	"easeout":   EaseOut,
	"easeinout": EaseInOut,

	"inquad":       FromGween(ease.InQuad),
	"outquad":      FromGween(ease.OutQuad),
	"inoutquad":    FromGween(ease.InOutQuad),
	"incubic":      FromGween(ease.InCubic),
	"outcubic":     FromGween(ease.OutCubic),
	"inoutcubic":   FromGween(ease.InOutCubic),
	"inquart":      FromGween(ease.InQuart),
	"outquart":     FromGween(ease.OutQuart),
	"inoutquart":   FromGween(ease.InOutQuart),
	"inquint":      FromGween(ease.InQuint),
	"outquint":     FromGween(ease.OutQuint),
	"inoutquint":   FromGween(ease.InOutQuint),
	"insine":       FromGween(ease.InSine),
	"outsine":      FromGween(ease.OutSine),
	"inoutsine":    FromGween(ease.InOutSine),
	"inexpo":       FromGween(ease.InExpo),
	"outexpo":      FromGween(ease.OutExpo),
	"inoutexpo":    FromGween(ease.InOutExpo),
	"incirc":       FromGween(ease.InCirc),
	"outcirc":      FromGween(ease.OutCirc),
	"inoutcirc":    FromGween(ease.InOutCirc),
	"inelastic":    FromGween(ease.InElastic),
	"outelastic":   FromGween(ease.OutElastic),
	"inoutelastic": FromGween(ease.InOutElastic),
	"inback":       FromGween(ease.InBack),
	"outback":      FromGween(ease.OutBack),
	"inoutback":    FromGween(ease.InOutBack),
	"inbounce":     FromGween(ease.InBounce),
	"outbounce":    FromGween(ease.OutBounce),
	"inoutbounce":  FromGween(ease.InOutBounce),
}

// EaseByName looks up a curve by name, ignoring case. It knows the four
// built-in curves ("linear", "easeIn", "easeOut", "easeInOut") and the gween
// curves ("outBack", "inOutElastic", ...).
func EaseByName(name string) (EaseFunc, bool) {
	fn, ok := easeRegistry[strings.ToLower(name)]
	return fn, ok
}
