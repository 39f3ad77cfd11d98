// Package object3d keeps ECS entities and scene-graph nodes in sync. It owns
// the component that binds an entity to a node, the tag components that
// mirror a node's runtime subtype into the ECS, and the Synchronizer that
// performs attachment, detachment and cascading teardown.
package object3d

import (
	"reflect"

	"github.com/voanhcung/xr3ngine/scene"
)

// Object3D binds an entity to exactly one scene-graph node. The entity owns
// the node: detaching the component removes the node from the graph.
// An entity holds at most one Object3D at a time.
type Object3D struct {
	Node *scene.Node
}

// Tag components. Each is a zero-data marker mirroring one subtype fact of
// the entity's node, so systems can query by subtype without touching the
// scene graph.

type SceneTag struct{}
type GroupTag struct{}
type BoneTag struct{}
type LODTag struct{}
type SkyboxTag struct{}

type MeshTag struct{}
type InstancedMeshTag struct{}
type SkinnedMeshTag struct{}

type LineTag struct{}
type LineLoopTag struct{}
type LineSegmentsTag struct{}
type PointsTag struct{}
type SpriteTag struct{}

type CameraTag struct{}
type OrthographicCameraTag struct{}
type PerspectiveCameraTag struct{}
type ArrayCameraTag struct{}
type CubeCameraTag struct{}
type ImmediateRenderObjectTag struct{}

type LightTag struct{}
type AmbientLightTag struct{}
type DirectionalLightTag struct{}
type HemisphereLightTag struct{}
type PointLightTag struct{}
type RectAreaLightTag struct{}
type SpotLightTag struct{}

type LightProbeTag struct{}
type AmbientLightProbeTag struct{}
type HemisphereLightProbeTag struct{}

type AudioTag struct{}
type PositionalAudioTag struct{}
type AudioListenerTag struct{}

// tagTypes lists every Object3D-subtype tag. Detachment strips exactly this
// set from an entity; adding a new tag component here is all that is needed
// for it to participate in teardown.
var tagTypes = []reflect.Type{
	reflect.TypeOf((*SceneTag)(nil)).Elem(),
	reflect.TypeOf((*GroupTag)(nil)).Elem(),
	reflect.TypeOf((*BoneTag)(nil)).Elem(),
	reflect.TypeOf((*LODTag)(nil)).Elem(),
	reflect.TypeOf((*SkyboxTag)(nil)).Elem(),
	reflect.TypeOf((*MeshTag)(nil)).Elem(),
	reflect.TypeOf((*InstancedMeshTag)(nil)).Elem(),
	reflect.TypeOf((*SkinnedMeshTag)(nil)).Elem(),
	reflect.TypeOf((*LineTag)(nil)).Elem(),
	reflect.TypeOf((*LineLoopTag)(nil)).Elem(),
	reflect.TypeOf((*LineSegmentsTag)(nil)).Elem(),
	reflect.TypeOf((*PointsTag)(nil)).Elem(),
	reflect.TypeOf((*SpriteTag)(nil)).Elem(),
	reflect.TypeOf((*CameraTag)(nil)).Elem(),
	reflect.TypeOf((*OrthographicCameraTag)(nil)).Elem(),
	reflect.TypeOf((*PerspectiveCameraTag)(nil)).Elem(),
	reflect.TypeOf((*ArrayCameraTag)(nil)).Elem(),
	reflect.TypeOf((*CubeCameraTag)(nil)).Elem(),
	reflect.TypeOf((*ImmediateRenderObjectTag)(nil)).Elem(),
	reflect.TypeOf((*LightTag)(nil)).Elem(),
	reflect.TypeOf((*AmbientLightTag)(nil)).Elem(),
	reflect.TypeOf((*DirectionalLightTag)(nil)).Elem(),
	reflect.TypeOf((*HemisphereLightTag)(nil)).Elem(),
	reflect.TypeOf((*PointLightTag)(nil)).Elem(),
	reflect.TypeOf((*RectAreaLightTag)(nil)).Elem(),
	reflect.TypeOf((*SpotLightTag)(nil)).Elem(),
	reflect.TypeOf((*LightProbeTag)(nil)).Elem(),
	reflect.TypeOf((*AmbientLightProbeTag)(nil)).Elem(),
	reflect.TypeOf((*HemisphereLightProbeTag)(nil)).Elem(),
	reflect.TypeOf((*AudioTag)(nil)).Elem(),
	reflect.TypeOf((*PositionalAudioTag)(nil)).Elem(),
	reflect.TypeOf((*AudioListenerTag)(nil)).Elem(),
}
