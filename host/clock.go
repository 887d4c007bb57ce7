package host

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/animico"
)

var _ animico.FrameClock = TPSClock{}

// TPSClock reports one ebiten tick: 1/TPS seconds. Ebiten calls Update a
// fixed number of times per second, so the fixed step is the frame delta.
type TPSClock struct{}

// Delta returns 1/ebiten.TPS().
func (TPSClock) Delta() float64 {
	return 1.0 / float64(ebiten.TPS())
}
