// Package scene provides a minimal 3D scene graph: a tree of typed,
// transformable nodes rooted at a Graph. It supplies the node model that the
// object3d synchronizer maps ECS entities onto.
package scene

// Vec3 is a three-component vector.
type Vec3 struct {
	X, Y, Z float64
}

// Node is a single node in the scene graph. Its Kind is fixed at
// construction; the remaining subtype fields (Projection, Light, Probe,
// Line, the capability booleans) refine it where the kind allows variants.
type Node struct {
	Name string
	// TypeName carries the concrete type name of wrapper node types that
	// share a kind, e.g. "CubeCamera" or "ArrayCamera" for KindCamera.
	TypeName string

	Position Vec3
	Rotation Vec3
	Scale    Vec3

	Projection Projection // cameras
	Light      LightKind  // lights
	Probe      ProbeKind  // light probes
	Line       LineKind   // lines

	Instanced       bool // meshes backed by per-instance attribute buffers
	Skinned         bool // meshes deformed by a bone skeleton
	Positional      bool // audio nodes with a spatial panner
	ImmediateRender bool // objects rendered outside the regular pass

	Visible       bool
	CastShadow    bool
	ReceiveShadow bool

	Material *Material

	kind     Kind
	parent   *Node
	children []*Node
}

// NewNode creates a node of the given kind with identity transform.
func NewNode(kind Kind) *Node {
	return &Node{
		Scale:   Vec3{X: 1, Y: 1, Z: 1},
		Visible: true,
		kind:    kind,
	}
}

// Kind returns the node's runtime subtype.
func (n *Node) Kind() Kind {
	return n.kind
}

// Parent returns the node's parent, or nil for detached nodes and roots.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's direct children. The slice is owned by the
// node; callers must not mutate it.
func (n *Node) Children() []*Node {
	return n.children
}

// AddChild appends c as a child of n, detaching it from any previous parent
// first. Adding a node to itself is a no-op.
func (n *Node) AddChild(c *Node) {
	if c == nil || c == n {
		return
	}
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	c.parent = n
	n.children = append(n.children, c)
}

// RemoveChild removes c from n's child list. Returns true if c was a direct
// child of n.
func (n *Node) RemoveChild(c *Node) bool {
	for i, ch := range n.children {
		if ch == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			return true
		}
	}
	return false
}

// DetachFromParent removes the node from its parent's child list, if it has
// one. Safe to call on already-detached nodes.
func (n *Node) DetachFromParent() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// Root walks up the parent chain and returns the topmost ancestor, which is
// n itself for detached nodes.
func (n *Node) Root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Traverse visits n and every descendant in pre-order.
func (n *Node) Traverse(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Traverse(fn)
	}
}

// IsRenderableGeometry reports whether the node carries renderable geometry
// for shadow purposes.
func (n *Node) IsRenderableGeometry() bool {
	return n.kind == KindMesh
}
