package object3d

import (
	"github.com/voanhcung/xr3ngine/ecs"
	"github.com/voanhcung/xr3ngine/scene"
)

// Camera wrapper types that share KindCamera are told apart by their
// concrete type name.
const (
	typeNameArrayCamera = "ArrayCamera"
	typeNameCubeCamera  = "CubeCamera"
)

// tagNode derives the entity's tag set from the node's subtype. The
// dispatch is keyed on the Kind computed once at node construction; within
// a kind, the more specific secondary tags are added alongside the base
// one.
func (s *Synchronizer) tagNode(e ecs.Entity, n *scene.Node) {
	w := s.world
	switch n.Kind() {
	case scene.KindAudio:
		if n.Positional {
			ecs.SetComponent(w, e, PositionalAudioTag{})
		} else {
			ecs.SetComponent(w, e, AudioTag{})
		}
	case scene.KindAudioListener:
		ecs.SetComponent(w, e, AudioListenerTag{})
	case scene.KindCamera:
		ecs.SetComponent(w, e, CameraTag{})
		if n.Projection == scene.ProjectionOrthographic {
			ecs.SetComponent(w, e, OrthographicCameraTag{})
		} else {
			ecs.SetComponent(w, e, PerspectiveCameraTag{})
		}
		switch {
		case n.TypeName == typeNameArrayCamera:
			ecs.SetComponent(w, e, ArrayCameraTag{})
		case n.TypeName == typeNameCubeCamera:
			ecs.SetComponent(w, e, CubeCameraTag{})
		case n.ImmediateRender:
			ecs.SetComponent(w, e, ImmediateRenderObjectTag{})
		}
	case scene.KindLight:
		ecs.SetComponent(w, e, LightTag{})
		switch n.Light {
		case scene.LightAmbient:
			ecs.SetComponent(w, e, AmbientLightTag{})
		case scene.LightDirectional:
			ecs.SetComponent(w, e, DirectionalLightTag{})
		case scene.LightHemisphere:
			ecs.SetComponent(w, e, HemisphereLightTag{})
		case scene.LightPoint:
			ecs.SetComponent(w, e, PointLightTag{})
		case scene.LightRectArea:
			ecs.SetComponent(w, e, RectAreaLightTag{})
		case scene.LightSpot:
			ecs.SetComponent(w, e, SpotLightTag{})
		}
	case scene.KindLightProbe:
		ecs.SetComponent(w, e, LightProbeTag{})
		if n.Probe == scene.ProbeHemisphere {
			ecs.SetComponent(w, e, HemisphereLightProbeTag{})
		} else {
			ecs.SetComponent(w, e, AmbientLightProbeTag{})
		}
	case scene.KindBone:
		ecs.SetComponent(w, e, BoneTag{})
	case scene.KindGroup:
		ecs.SetComponent(w, e, GroupTag{})
	case scene.KindLOD:
		ecs.SetComponent(w, e, LODTag{})
	case scene.KindMesh:
		ecs.SetComponent(w, e, MeshTag{})
		if n.Instanced {
			ecs.SetComponent(w, e, InstancedMeshTag{})
		}
		if n.Skinned {
			ecs.SetComponent(w, e, SkinnedMeshTag{})
		}
	case scene.KindLine:
		ecs.SetComponent(w, e, LineTag{})
		switch n.Line {
		case scene.LineLoop:
			ecs.SetComponent(w, e, LineLoopTag{})
		case scene.LineSegments:
			ecs.SetComponent(w, e, LineSegmentsTag{})
		}
	case scene.KindPoints:
		ecs.SetComponent(w, e, PointsTag{})
	case scene.KindSprite:
		ecs.SetComponent(w, e, SpriteTag{})
	case scene.KindScene:
		ecs.SetComponent(w, e, SceneTag{})
	case scene.KindSky:
		ecs.SetComponent(w, e, SkyboxTag{})
	}
	// KindObject and any future unmatched subtype get no tags.
}
