package host

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/animico"
)

// statsOverlay shows TPS, FPS and the active tween count. The text is
// refreshed every ~0.5 seconds.
type statsOverlay struct {
	img        *ebiten.Image
	text       string
	sinceFresh float64
}

func newStatsOverlay() *statsOverlay {
	// 140x48 is enough for three short lines of debug text.
	return &statsOverlay{img: ebiten.NewImage(140, 48), sinceFresh: 0.5}
}

func (o *statsOverlay) update(s *animico.Scheduler, dt float64) {
	o.sinceFresh += dt
	if o.sinceFresh < 0.5 {
		return
	}
	o.sinceFresh = 0
	o.text = fmt.Sprintf("TPS: %.1f\nFPS: %.1f\nTweens: %d",
		ebiten.ActualTPS(), ebiten.ActualFPS(), s.ActiveCount())
}

func (o *statsOverlay) draw(screen *ebiten.Image) {
	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, o.text)
	screen.DrawImage(o.img, nil)
}
