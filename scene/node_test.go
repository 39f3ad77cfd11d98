package scene

import "testing"

func TestAddChildReparents(t *testing.T) {
	a := NewNode(KindGroup)
	b := NewNode(KindGroup)
	c := NewNode(KindMesh)

	a.AddChild(c)
	if c.Parent() != a {
		t.Fatal("c should be parented to a")
	}
	b.AddChild(c)
	if c.Parent() != b {
		t.Error("c should have moved to b")
	}
	if len(a.Children()) != 0 {
		t.Error("a should have no children after the move")
	}
}

func TestRemoveChild(t *testing.T) {
	p := NewNode(KindGroup)
	c := NewNode(KindMesh)
	p.AddChild(c)

	if !p.RemoveChild(c) {
		t.Error("RemoveChild should report true for a direct child")
	}
	if c.Parent() != nil {
		t.Error("removed child should be parentless")
	}
	if p.RemoveChild(c) {
		t.Error("RemoveChild should report false for a non-child")
	}
}

func TestDetachFromParent(t *testing.T) {
	p := NewNode(KindGroup)
	c := NewNode(KindMesh)
	p.AddChild(c)
	c.DetachFromParent()
	if c.Parent() != nil || len(p.Children()) != 0 {
		t.Error("detach left dangling links")
	}
	// Safe on already-detached nodes.
	c.DetachFromParent()
}

func TestTraversePreOrder(t *testing.T) {
	root := NewNode(KindGroup)
	root.Name = "root"
	a := NewNode(KindGroup)
	a.Name = "a"
	b := NewNode(KindMesh)
	b.Name = "b"
	aa := NewNode(KindMesh)
	aa.Name = "aa"
	root.AddChild(a)
	root.AddChild(b)
	a.AddChild(aa)

	var order []string
	root.Traverse(func(n *Node) { order = append(order, n.Name) })

	want := []string{"root", "a", "aa", "b"}
	if len(order) != len(want) {
		t.Fatalf("visited %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("visited %v, want %v", order, want)
		}
	}
}

func TestRoot(t *testing.T) {
	g := NewGraph("world")
	a := NewNode(KindGroup)
	b := NewNode(KindMesh)
	g.Add(a)
	a.AddChild(b)

	if b.Root() != g.Root() {
		t.Error("nested node should report the scene root")
	}
	if !g.Contains(b) {
		t.Error("graph should contain the nested node")
	}

	loose := NewNode(KindMesh)
	if loose.Root() != loose {
		t.Error("detached node is its own root")
	}
	if g.Contains(loose) {
		t.Error("graph should not contain a detached node")
	}
}

func TestGraphRemove(t *testing.T) {
	g := NewGraph("world")
	top := NewNode(KindGroup)
	nested := NewNode(KindMesh)
	g.Add(top)
	top.AddChild(nested)

	// Remove only detaches direct children of the root.
	g.Remove(nested)
	if nested.Parent() != top {
		t.Error("Remove must not touch nested nodes")
	}
	g.Remove(top)
	if top.Parent() != nil {
		t.Error("top should be detached from the root")
	}
	if g.Contains(top) {
		t.Error("graph should no longer contain the removed subtree")
	}
}

func TestParseKind(t *testing.T) {
	for k := KindObject; k <= KindSky; k++ {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", k.String(), err)
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
	if _, err := ParseKind("teapot"); err == nil {
		t.Error("expected error for unknown kind")
	}
}
