// Package host drives an animico scheduler from an Ebitengine game loop.
//
// The simplest way to get started is [Run], which creates a window and ticks
// the scheduler once per frame:
//
//	s := animico.NewScheduler()
//	g := host.NewGame(s, host.RunConfig{Title: "Demo", Width: 640, Height: 480})
//	g.OnDraw = func(screen *ebiten.Image) { ... }
//	if err := host.Run(g); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, implement [ebiten.Game] yourself and call
// Scheduler.Update with a [TPSClock] from your Update method.
package host

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/animico"
)

// RunConfig holds window and loop options for Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// TPS overrides ebiten's ticks per second when > 0.
	TPS int
	// ShowStats draws TPS, FPS and the active tween count in the corner.
	ShowStats bool
}

// Game implements ebiten.Game around a Scheduler. Each Update ticks the
// scheduler first, then calls OnUpdate, so user code sees this frame's
// tweened values.
type Game struct {
	Scheduler *animico.Scheduler
	Clock     animico.FrameClock

	OnUpdate func() error
	OnDraw   func(screen *ebiten.Image)

	cfg     RunConfig
	overlay *statsOverlay
}

// NewGame creates a Game that ticks s with a TPSClock.
func NewGame(s *animico.Scheduler, cfg RunConfig) *Game {
	if s == nil {
		s = animico.Default()
	}
	g := &Game{Scheduler: s, Clock: TPSClock{}, cfg: cfg}
	if cfg.ShowStats {
		g.overlay = newStatsOverlay()
	}
	return g
}

// Update advances the scheduler by one frame and runs OnUpdate.
func (g *Game) Update() error {
	g.Scheduler.Update(g.Clock)
	if g.overlay != nil {
		g.overlay.update(g.Scheduler, 1/float64(ebiten.TPS()))
	}
	if g.OnUpdate != nil {
		return g.OnUpdate()
	}
	return nil
}

// Draw calls OnDraw and, when enabled, the stats overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.OnDraw != nil {
		g.OnDraw(screen)
	}
	if g.overlay != nil {
		g.overlay.draw(screen)
	}
}

// Layout returns the configured size, or the outside size if none was set.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.cfg.Width > 0 && g.cfg.Height > 0 {
		return g.cfg.Width, g.cfg.Height
	}
	return outsideWidth, outsideHeight
}

// Run opens a window with g's configuration and blocks until the game exits.
func Run(g *Game) error {
	cfg := g.cfg
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
