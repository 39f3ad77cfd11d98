package object3d

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/voanhcung/xr3ngine/ecs"
	"github.com/voanhcung/xr3ngine/scene"
)

// NodeSpec is a declarative node description, usually loaded from a YAML
// document. Props uses the same dot-path keys as Attachment.Props; Children
// are instantiated recursively, each on its own entity.
//
// Example:
//
//	name: lamp
//	kind: group
//	children:
//	  - name: bulb
//	    kind: light
//	    props:
//	      light.intensity: 2.0
type NodeSpec struct {
	Name     string         `yaml:"name"`
	Kind     string         `yaml:"kind"`
	Props    map[string]any `yaml:"props"`
	Children []NodeSpec     `yaml:"children"`
}

// DecodeSpec reads one YAML node spec from r.
func DecodeSpec(r io.Reader) (*NodeSpec, error) {
	var ns NodeSpec
	if err := yaml.NewDecoder(r).Decode(&ns); err != nil {
		return nil, fmt.Errorf("object3d: decode node spec: %w", err)
	}
	return &ns, nil
}

// LoadSpec reads a YAML node spec from a file.
func LoadSpec(path string) (*NodeSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("object3d: open node spec: %w", err)
	}
	defer f.Close()
	ns, err := DecodeSpec(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ns, nil
}

// Build constructs the scene node described by the spec, without applying
// props or instantiating children; those happen at attach time.
func (ns *NodeSpec) Build() (*scene.Node, error) {
	kind, err := scene.ParseKind(ns.Kind)
	if err != nil {
		return nil, err
	}
	n := scene.NewNode(kind)
	n.Name = ns.Name
	if kind == scene.KindMesh {
		// meshes get a default material so "material.*" props have a
		// target
		n.Material = scene.NewMaterial()
	}
	return n, nil
}

// AttachSpec instantiates the spec tree: a fresh entity per spec node, each
// attached under its parent's node (the top of the tree goes under the
// parent entity's node, or the scene root when parent owns no node).
// Returns the entity of the tree's top node.
func (s *Synchronizer) AttachSpec(parent ecs.Entity, ns *NodeSpec) (ecs.Entity, error) {
	n, err := ns.Build()
	if err != nil {
		return ecs.Entity{}, err
	}
	e := s.world.CreateEntity()
	s.Attach(e, Attachment{Node: n, Props: ns.Props, Parent: parent})
	for i := range ns.Children {
		if _, err := s.AttachSpec(e, &ns.Children[i]); err != nil {
			return e, err
		}
	}
	return e, nil
}
