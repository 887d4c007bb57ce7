package animico

import (
	"errors"
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPositionReachesTarget(t *testing.T) {
	s := NewScheduler()
	node := NewNode("pos")
	node.Pos = Vec3{10, 20, 0}

	done := false
	if _, err := TweenPosition(s, node, Vec3{100, 200, 5}, 1.0, Linear, func() { done = true }); err != nil {
		t.Fatal(err)
	}

	s.Tick(0.5)
	s.Tick(0.5)

	if !done {
		t.Fatal("expected completion after full duration")
	}
	if node.Pos != (Vec3{100, 200, 5}) {
		t.Errorf("Pos = %+v, want exactly {100 200 5}", node.Pos)
	}
}

func TestTweenAxesCompose(t *testing.T) {
	s := NewScheduler()
	node := NewNode("axes")

	if _, err := TweenX(s, node, 10, 1.0, nil, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := TweenY(s, node, 20, 0.5, nil, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := TweenZ(s, node, -5, 2.0, nil, nil); err != nil {
		t.Fatal(err)
	}

	s.Tick(0.5)
	if math.Abs(node.Pos.X-5) > 1e-9 || node.Pos.Y != 20 || math.Abs(node.Pos.Z+1.25) > 1e-9 {
		t.Errorf("Pos = %+v, want ~{5 20 -1.25}", node.Pos)
	}

	s.Tick(1.5)
	if node.Pos != (Vec3{10, 20, -5}) {
		t.Errorf("Pos = %+v, want {10 20 -5}", node.Pos)
	}
}

func TestTweenScaleReachesTarget(t *testing.T) {
	s := NewScheduler()
	node := NewNode("scale")

	if _, err := TweenScale(s, node, Vec3{2, 3, 1}, 0.5, Linear, nil); err != nil {
		t.Fatal(err)
	}
	s.Tick(0.25)
	s.Tick(0.25)

	if node.Scl != (Vec3{2, 3, 1}) {
		t.Errorf("Scl = %+v, want {2 3 1}", node.Scl)
	}
}

func TestTweenScaleSingleAxis(t *testing.T) {
	s := NewScheduler()
	node := NewNode("scale-axis")

	_, errX := TweenScaleX(s, node, 4, 1, nil, nil)
	_, errY := TweenScaleY(s, node, 0.5, 1, nil, nil)
	_, errZ := TweenScaleZ(s, node, 2, 1, nil, nil)
	if err := errors.Join(errX, errY, errZ); err != nil {
		t.Fatal(err)
	}
	s.Tick(1)
	if node.Scl != (Vec3{4, 0.5, 2}) {
		t.Errorf("Scl = %+v, want {4 0.5 2}", node.Scl)
	}
}

func TestTweenColorAllComponents(t *testing.T) {
	s := NewScheduler()
	node := NewNode("color")
	node.Color = Color{R: 1, G: 0, B: 0, A: 1}
	target := Color{R: 0, G: 1, B: 0.5, A: 0.5}

	if _, err := TweenColor(s, node, target, 1.0, Linear, nil); err != nil {
		t.Fatal(err)
	}
	s.Tick(0.5)
	if math.Abs(node.Color.G-0.5) > 0.01 {
		t.Errorf("G = %f at halfway, want ~0.5", node.Color.G)
	}
	s.Tick(0.5)
	if node.Color != target {
		t.Errorf("Color = %+v, want %+v", node.Color, target)
	}
}

func TestTweenAlphaInterpolates(t *testing.T) {
	s := NewScheduler()
	node := NewNode("alpha")
	node.Color = Color{R: 0.2, G: 0.4, B: 0.6, A: 1}

	if _, err := TweenAlpha(s, node, 0.0, 1.0, Linear, nil); err != nil {
		t.Fatal(err)
	}

	// Halfway through.
	s.Tick(0.5)
	if math.Abs(node.Color.A-0.5) > 0.05 {
		t.Errorf("Alpha = %f, want ~0.5 at halfway", node.Color.A)
	}

	// Finish.
	s.Tick(0.5)
	if node.Color != (Color{R: 0.2, G: 0.4, B: 0.6, A: 0}) {
		t.Errorf("Color = %+v, only alpha should change", node.Color)
	}
}

func TestTweenRotationReachesTarget(t *testing.T) {
	s := NewScheduler()
	node := NewNode("rot")

	if _, err := TweenRotation(s, node, math.Pi, 1.0, Linear, nil); err != nil {
		t.Fatal(err)
	}
	s.Tick(0.5)
	s.Tick(0.5)

	if node.Rotation != math.Pi {
		t.Errorf("Rotation = %f, want %f", node.Rotation, math.Pi)
	}
}

func TestTweenMarksDirty(t *testing.T) {
	s := NewScheduler()
	node := NewNode("dirty")

	// Clear the dirty flag first.
	node.ClearDirty()

	if _, err := TweenX(s, node, 100, 1.0, Linear, nil); err != nil {
		t.Fatal(err)
	}
	s.Tick(0.1)

	if !node.TransformDirty() {
		t.Fatal("expected node to be marked dirty after tween update")
	}
}

func TestTweenDisposedNode(t *testing.T) {
	s := NewScheduler()
	node := NewNode("disposed")
	node.Pos = Vec3{10, 20, 0}

	completed := false
	if _, err := TweenPosition(s, node, Vec3{100, 200, 0}, 1.0, Linear, func() { completed = true }); err != nil {
		t.Fatal(err)
	}

	// Dispose the node before tweening.
	node.Dispose()
	s.Tick(0.1)

	if s.ActiveCount() != 0 {
		t.Fatal("expected tween dropped after disposed node detected")
	}
	if completed {
		t.Error("OnComplete should not fire for a disposed target")
	}
	// Values should not have changed.
	if node.Pos != (Vec3{10, 20, 0}) {
		t.Errorf("Pos changed to %+v on disposed node", node.Pos)
	}
}

func TestTweenDisposedMidAnimation(t *testing.T) {
	s := NewScheduler()
	node := NewNode("mid-dispose")

	if _, err := TweenPosition(s, node, Vec3{100, 100, 0}, 1.0, Linear, nil); err != nil {
		t.Fatal(err)
	}

	// Run a few frames.
	s.Tick(0.1)
	s.Tick(0.1)
	if s.ActiveCount() != 1 {
		t.Fatal("should still be running")
	}

	// Dispose mid-animation.
	node.Dispose()
	saved := node.Pos

	s.Tick(0.1)
	if s.ActiveCount() != 0 {
		t.Fatal("expected tween dropped after node disposed mid-animation")
	}
	if node.Pos != saved {
		t.Error("node fields should not change after disposal")
	}
}

func TestTweenEasingFunctionsProduceDifferentCurves(t *testing.T) {
	// Spot-check: linear vs OutCubic at the midpoint should differ.
	s := NewScheduler()
	nodeL := NewNode("linear")
	nodeC := NewNode("cubic")

	if _, err := TweenX(s, nodeL, 100, 1.0, Linear, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := TweenX(s, nodeC, 100, 1.0, FromGween(ease.OutCubic), nil); err != nil {
		t.Fatal(err)
	}

	// Advance to midpoint.
	s.Tick(0.5)

	// OutCubic should be ahead of linear at midpoint.
	if nodeC.Pos.X-nodeL.Pos.X < 1.0 {
		t.Errorf("easing curves should produce different values at midpoint: linear=%f cubic=%f", nodeL.Pos.X, nodeC.Pos.X)
	}
}

func TestTweenElementUsesAnchoredPosition(t *testing.T) {
	s := NewScheduler()
	el := NewElement("button")
	el.AnchoredPosition = Vec3{0, -40, 0}

	if _, err := TweenY(s, el, 0, 0.25, EaseOut, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := TweenAlpha(s, el, 0.5, 0.25, nil, nil); err != nil {
		t.Fatal(err)
	}
	s.Tick(0.25)

	if el.AnchoredPosition != (Vec3{0, 0, 0}) {
		t.Errorf("AnchoredPosition = %+v, want origin", el.AnchoredPosition)
	}
	if el.Color.A != 0.5 {
		t.Errorf("alpha = %v, want 0.5", el.Color.A)
	}
}

func TestTweenMaterial(t *testing.T) {
	s := NewScheduler()
	r := &Renderer{Material: &Material{Color: ColorWhite}}

	if _, err := TweenMaterialColor(s, r, Color{1, 0, 0, 1}, 1, nil, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := TweenMaterialAlpha(s, r, 0.25, 2, nil, nil); err != nil {
		t.Fatal(err)
	}
	s.Tick(1)
	s.Tick(1)

	if r.Material.Color != (Color{1, 0, 0, 0.25}) {
		t.Errorf("material color = %+v", r.Material.Color)
	}
}

func TestTweenMaterialWithoutMaterial(t *testing.T) {
	s := NewScheduler()
	r := &Renderer{}

	_, err := TweenMaterialColor(s, r, ColorWhite, 1, nil, nil)
	if !errors.Is(err, ErrNoMaterial) {
		t.Errorf("err = %v, want ErrNoMaterial", err)
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ErrNoMaterial should wrap ErrInvalidArgument")
	}
	if _, err := TweenMaterialAlpha(s, r, 0, 1, nil, nil); !errors.Is(err, ErrNoMaterial) {
		t.Errorf("alpha err = %v, want ErrNoMaterial", err)
	}
	if s.ActiveCount() != 0 {
		t.Error("nothing should be scheduled")
	}
}

func TestTweenNilTargets(t *testing.T) {
	s := NewScheduler()
	var nilNode *Node

	checks := map[string]error{}
	_, checks["TweenX nil interface"] = TweenX(s, nil, 1, 1, nil, nil)
	_, checks["TweenX nil node"] = TweenX(s, nilNode, 1, 1, nil, nil)
	_, checks["TweenScale nil node"] = TweenScale(s, nilNode, Vec3{}, 1, nil, nil)
	_, checks["TweenColor nil"] = TweenColor(s, nil, Color{}, 1, nil, nil)
	_, checks["TweenRotation nil"] = TweenRotation(s, nil, 1, 1, nil, nil)
	_, checks["TweenOrthoSize nil"] = TweenOrthoSize(s, nil, 1, 1, nil, nil)
	_, checks["TweenZoom nil"] = TweenZoom(s, nil, 1, 1, nil, nil)
	_, checks["TweenMaterialColor nil"] = TweenMaterialColor(s, nil, Color{}, 1, nil, nil)

	for name, err := range checks {
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s: err = %v, want ErrInvalidArgument", name, err)
		}
	}
}

func TestTweenAdapterRejectsZeroDuration(t *testing.T) {
	s := NewScheduler()
	if _, err := TweenX(s, NewNode("n"), 1, 0, nil, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestCancelTargetStopsAllAdapters(t *testing.T) {
	s := NewScheduler()
	node := NewNode("multi")
	other := NewNode("other")

	_, _ = TweenX(s, node, 1, 1, nil, nil)
	_, _ = TweenScale(s, node, Vec3{2, 2, 2}, 1, nil, nil)
	_, _ = TweenAlpha(s, node, 0, 1, nil, nil)
	_, _ = TweenX(s, other, 1, 1, nil, nil)

	if n := s.CancelTarget(node); n != 3 {
		t.Errorf("CancelTarget = %d, want 3", n)
	}
	if s.ActiveCount() != 1 {
		t.Errorf("ActiveCount = %d, want 1", s.ActiveCount())
	}
}
