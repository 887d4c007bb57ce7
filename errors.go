package animico

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned synchronously when a tween is registered
	// with a non-positive duration or a missing accessor, and by the property
	// adapters when given a nil target. Schedule itself accepts a nil
	// Tween.Target.
	ErrInvalidArgument = errors.New("animico: invalid argument")

	// ErrNoMaterial is returned when a material adapter is bound to a
	// Renderer that has no Material. It wraps ErrInvalidArgument.
	ErrNoMaterial = fmt.Errorf("%w: renderer has no material", ErrInvalidArgument)

	// ErrUnknownEase is returned when a preset or script names a curve that
	// EaseByName does not know.
	ErrUnknownEase = errors.New("animico: unknown ease")

	// ErrScript is returned for malformed frame scripts.
	ErrScript = errors.New("animico: invalid script")
)
