package animico

// --- Capabilities ---

// Positioner is anything with a tweenable position.
type Positioner interface {
	Position() Vec3
	SetPosition(Vec3)
}

// Scaler is anything with a tweenable scale.
type Scaler interface {
	Scale() Vec3
	SetScale(Vec3)
}

// Tinter is anything with a tweenable color.
type Tinter interface {
	Tint() Color
	SetTint(Color)
}

// Rotator is anything with a tweenable rotation angle, in radians.
type Rotator interface {
	Angle() float64
	SetAngle(float64)
}

// disposable is checked by the adapters to stop tweens on dead targets.
type disposable interface {
	IsDisposed() bool
}

// --- Node ---

// Node is a world-space object: a transform plus a tint. It is a minimal host
// object for the property adapters; games with their own object model
// implement the capability interfaces instead.
type Node struct {
	Name string

	Pos      Vec3
	Scl      Vec3
	Rotation float64
	Color    Color

	transformDirty bool
	disposed       bool
}

// NewNode creates a node at the origin with unit scale and a white tint.
func NewNode(name string) *Node {
	return &Node{
		Name:           name,
		Scl:            Vec3{1, 1, 1},
		Color:          ColorWhite,
		transformDirty: true,
	}
}

// Position returns the node's world position.
func (n *Node) Position() Vec3 { return n.Pos }

// SetPosition sets the node's world position and marks it dirty.
func (n *Node) SetPosition(p Vec3) {
	n.Pos = p
	n.transformDirty = true
}

// Scale returns the node's scale.
func (n *Node) Scale() Vec3 { return n.Scl }

// SetScale sets the node's scale and marks it dirty.
func (n *Node) SetScale(s Vec3) {
	n.Scl = s
	n.transformDirty = true
}

// Angle returns the node's rotation in radians.
func (n *Node) Angle() float64 { return n.Rotation }

// SetAngle sets the node's rotation (in radians) and marks it dirty.
func (n *Node) SetAngle(r float64) {
	n.Rotation = r
	n.transformDirty = true
}

// Tint returns the node's color.
func (n *Node) Tint() Color { return n.Color }

// SetTint sets the node's color.
func (n *Node) SetTint(c Color) { n.Color = c }

// MarkDirty marks the node's transform as dirty. Useful after bulk-setting
// fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// TransformDirty reports whether the transform changed since the last
// ClearDirty.
func (n *Node) TransformDirty() bool { return n.transformDirty }

// ClearDirty resets the dirty flag, typically after the host has consumed
// the new transform.
func (n *Node) ClearDirty() { n.transformDirty = false }

// Dispose marks the node as dead. Tweens bound through the adapters stop
// before their next write.
func (n *Node) Dispose() {
	n.disposed = true
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Element ---

// Element is a UI-anchored object. Its position is the anchored position
// relative to the parent rectangle rather than a world position.
type Element struct {
	Name string

	AnchoredPosition Vec3
	Scl              Vec3
	Color            Color

	disposed bool
}

// NewElement creates an element anchored at the origin with unit scale.
func NewElement(name string) *Element {
	return &Element{Name: name, Scl: Vec3{1, 1, 1}, Color: ColorWhite}
}

func (e *Element) Position() Vec3     { return e.AnchoredPosition }
func (e *Element) SetPosition(p Vec3) { e.AnchoredPosition = p }
func (e *Element) Scale() Vec3        { return e.Scl }
func (e *Element) SetScale(s Vec3)    { e.Scl = s }
func (e *Element) Tint() Color        { return e.Color }
func (e *Element) SetTint(c Color)    { e.Color = c }

// Dispose marks the element as dead.
func (e *Element) Dispose() { e.disposed = true }

// IsDisposed returns true if this element has been disposed.
func (e *Element) IsDisposed() bool { return e.disposed }

// --- Renderer ---

// Material holds the shading color of a Renderer.
type Material struct {
	Color Color
}

// Renderer draws with an optional Material. Material adapters fail with
// ErrNoMaterial when it is nil.
type Renderer struct {
	Material *Material
}
