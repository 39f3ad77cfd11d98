package scene

// Graph owns a scene tree. The root is an explicit handle with its own
// lifecycle; there is no package-level singleton scene.
type Graph struct {
	root *Node
}

// NewGraph creates a graph with a fresh scene root.
func NewGraph(name string) *Graph {
	root := NewNode(KindScene)
	root.Name = name
	return &Graph{root: root}
}

// Root returns the graph's scene root.
func (g *Graph) Root() *Node {
	return g.root
}

// Add inserts n directly under the scene root.
func (g *Graph) Add(n *Node) {
	g.root.AddChild(n)
}

// Remove detaches n from the scene root. Nodes nested deeper in the tree
// are left in place; use Node.DetachFromParent for those.
func (g *Graph) Remove(n *Node) {
	if n != nil && n.Parent() == g.root {
		g.root.RemoveChild(n)
	}
}

// Contains reports whether n currently lives somewhere under this graph's
// root.
func (g *Graph) Contains(n *Node) bool {
	return n != nil && n.Root() == g.root
}

// Traverse visits every node in the graph in pre-order, starting at the
// root.
func (g *Graph) Traverse(fn func(*Node)) {
	g.root.Traverse(fn)
}
