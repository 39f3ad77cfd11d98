package object3d

import (
	"reflect"
	"strings"

	"go.uber.org/zap"

	"github.com/voanhcung/xr3ngine/ecs"
	"github.com/voanhcung/xr3ngine/scene"
)

// Attachment describes the node to attach to an entity: either a pre-built
// Node, or a New constructor. Props is an optional property map applied to
// the node before insertion; keys are dot-separated paths into nested
// fields (e.g. "material.color"). Parent optionally names an entity whose
// node becomes the parent; when absent (or when the parent entity owns no
// node) the new node goes directly under the scene root.
type Attachment struct {
	Node   *scene.Node
	New    func() *scene.Node
	Props  map[string]any
	Parent ecs.Entity
}

// Attach binds a scene-graph node to the entity:
//
//  1. Instantiates the node via New when no instance was given.
//  2. Applies the property map (lenient, best-effort; see applyProp).
//  3. Enables shadow casting on every renderable-geometry descendant, and
//     shadow receiving unless the material's lighting is baked.
//  4. Attaches the Object3D component and the tag components derived from
//     the node's subtype.
//  5. Inserts the node under the parent entity's node, or the scene root.
//  6. Records the node→entity back-reference for cascading teardown.
//
// If the entity already owns a node it is detached first, so the entity
// ends up with exactly one Object3D and the tag set of the new node.
// Returns the entity for chaining.
func (s *Synchronizer) Attach(e ecs.Entity, a Attachment) ecs.Entity {
	n := a.Node
	if n == nil && a.New != nil {
		n = a.New()
	}
	if n == nil {
		return e
	}
	if _, ok := s.Node(e); ok {
		s.Detach(e, true)
	}
	s.applyProps(n, a.Props)
	applyShadowPolicy(n)
	ecs.SetComponent(s.world, e, Object3D{Node: n})
	s.tagNode(e, n)
	if pn, ok := s.Node(a.Parent); ok {
		pn.AddChild(n)
	} else {
		s.graph.Add(n)
	}
	s.entities[n] = e
	s.log.Debug("node attached",
		zap.String("name", n.Name),
		zap.Stringer("kind", n.Kind()),
		zap.Uint32("entity", e.ID))
	s.publishAttached(e, n)
	return e
}

// applyProps applies every entry of the property map to the node.
func (s *Synchronizer) applyProps(n *scene.Node, props map[string]any) {
	for path, val := range props {
		s.applyProp(n, path, val)
	}
}

// applyProp assigns one dot-path property. The policy is deliberately
// lenient: an unknown path segment silently skips the property, a nil
// intermediate object logs a warning and skips, and a value that cannot be
// represented in the target field is dropped. Color-typed fields accept
// numeric and string input through the scene color constructor.
func (s *Synchronizer) applyProp(n *scene.Node, path string, val any) {
	segs := strings.Split(path, ".")
	v := reflect.ValueOf(n).Elem()
	for _, seg := range segs[:len(segs)-1] {
		f := fieldByNameFold(v, seg)
		if !f.IsValid() {
			return
		}
		if f.Kind() == reflect.Pointer {
			if f.IsNil() {
				s.log.Warn("property target missing",
					zap.String("path", path),
					zap.String("segment", seg),
					zap.String("node", n.Name))
				return
			}
			f = f.Elem()
		}
		if f.Kind() != reflect.Struct {
			return
		}
		v = f
	}
	f := fieldByNameFold(v, segs[len(segs)-1])
	if !f.IsValid() || !f.CanSet() {
		return
	}
	if f.Type() == colorType {
		if c, ok := scene.NewColor(val); ok {
			f.Set(reflect.ValueOf(c))
		}
		return
	}
	rv := reflect.ValueOf(val)
	if !rv.IsValid() {
		return
	}
	switch {
	case rv.Type().AssignableTo(f.Type()):
		f.Set(rv)
	case isNumericKind(rv.Kind()) && isNumericKind(f.Kind()):
		f.Set(rv.Convert(f.Type()))
	}
}

var colorType = reflect.TypeOf((*scene.Color)(nil)).Elem()

// fieldByNameFold finds a struct field by case-insensitive name, so property
// maps can use the original lower-case key style ("position", "material").
func fieldByNameFold(v reflect.Value, name string) reflect.Value {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if strings.EqualFold(t.Field(i).Name, name) {
			return v.Field(i)
		}
	}
	return reflect.Value{}
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// applyShadowPolicy walks the node's subtree and enables shadow casting on
// renderable geometry. Receiving is enabled too, except on surfaces whose
// material lighting is baked into a lightmap; dynamic shadows on top of
// baked ones would double-shadow.
func applyShadowPolicy(n *scene.Node) {
	n.Traverse(func(d *scene.Node) {
		if !d.IsRenderableGeometry() {
			return
		}
		d.CastShadow = true
		d.ReceiveShadow = !(d.Material != nil && d.Material.LightmapBaked)
	})
}
