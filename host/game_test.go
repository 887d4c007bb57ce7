package host

import (
	"errors"
	"math"
	"testing"

	"github.com/phanxgames/animico"
)

func TestTPSClockDefault(t *testing.T) {
	if got := (TPSClock{}).Delta(); math.Abs(got-1.0/60) > 1e-12 {
		t.Errorf("Delta = %v, want 1/60 at the default TPS", got)
	}
}

func TestNewGameDefaults(t *testing.T) {
	g := NewGame(nil, RunConfig{})
	if g.Scheduler != animico.Default() {
		t.Error("nil scheduler should fall back to animico.Default()")
	}
	if _, ok := g.Clock.(TPSClock); !ok {
		t.Errorf("Clock = %T, want TPSClock", g.Clock)
	}
	if g.overlay != nil {
		t.Error("overlay should be off unless ShowStats is set")
	}
}

func TestGameUpdateTicksBeforeOnUpdate(t *testing.T) {
	s := animico.NewScheduler()
	node := animico.NewNode("n")
	if _, err := animico.TweenX(s, node, 10, 1.0, nil, nil); err != nil {
		t.Fatal(err)
	}

	clock := &animico.ManualClock{}
	g := NewGame(s, RunConfig{})
	g.Clock = clock

	var seen float64
	g.OnUpdate = func() error {
		seen = node.Pos.X
		return nil
	}

	clock.Advance(0.5)
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if math.Abs(seen-5) > 1e-9 {
		t.Errorf("OnUpdate saw X = %v, want ~5", seen)
	}

	clock.Advance(0.5)
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if node.Pos.X != 10 || s.ActiveCount() != 0 {
		t.Errorf("X = %v active = %d, want 10 and 0", node.Pos.X, s.ActiveCount())
	}
}

func TestGameUpdatePropagatesError(t *testing.T) {
	g := NewGame(animico.NewScheduler(), RunConfig{})
	g.Clock = &animico.ManualClock{}
	want := errors.New("quit")
	g.OnUpdate = func() error { return want }
	if err := g.Update(); !errors.Is(err, want) {
		t.Errorf("Update err = %v, want %v", err, want)
	}
}

func TestGameLayout(t *testing.T) {
	g := NewGame(animico.NewScheduler(), RunConfig{Width: 320, Height: 240})
	if w, h := g.Layout(1920, 1080); w != 320 || h != 240 {
		t.Errorf("Layout = %dx%d, want 320x240", w, h)
	}

	g = NewGame(animico.NewScheduler(), RunConfig{})
	if w, h := g.Layout(800, 600); w != 800 || h != 600 {
		t.Errorf("Layout = %dx%d, want outside size 800x600", w, h)
	}
}
