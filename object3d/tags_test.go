package object3d_test

import (
	"reflect"
	"sort"
	"testing"

	"github.com/voanhcung/xr3ngine/ecs"
	"github.com/voanhcung/xr3ngine/object3d"
	"github.com/voanhcung/xr3ngine/scene"
)

// tagNames extracts the entity's component type names, minus the Object3D
// component itself, sorted for stable comparison.
func tagNames(w *ecs.World, e ecs.Entity) []string {
	var names []string
	for _, typ := range w.ComponentTypes(e) {
		if typ == reflect.TypeOf((*object3d.Object3D)(nil)).Elem() {
			continue
		}
		names = append(names, typ.Name())
	}
	sort.Strings(names)
	return names
}

// go test -run ^TestTagDispatch$ . -count 1
func TestTagDispatch(t *testing.T) {
	tests := []struct {
		name string
		node func() *scene.Node
		want []string
	}{
		{
			"plain object gets no tags",
			func() *scene.Node { return scene.NewNode(scene.KindObject) },
			nil,
		},
		{
			"group",
			func() *scene.Node { return scene.NewNode(scene.KindGroup) },
			[]string{"GroupTag"},
		},
		{
			"bone",
			func() *scene.Node { return scene.NewNode(scene.KindBone) },
			[]string{"BoneTag"},
		},
		{
			"lod",
			func() *scene.Node { return scene.NewNode(scene.KindLOD) },
			[]string{"LODTag"},
		},
		{
			"mesh",
			func() *scene.Node { return scene.NewNode(scene.KindMesh) },
			[]string{"MeshTag"},
		},
		{
			"skinned mesh",
			func() *scene.Node {
				n := scene.NewNode(scene.KindMesh)
				n.Skinned = true
				return n
			},
			[]string{"MeshTag", "SkinnedMeshTag"},
		},
		{
			"instanced mesh",
			func() *scene.Node {
				n := scene.NewNode(scene.KindMesh)
				n.Instanced = true
				return n
			},
			[]string{"InstancedMeshTag", "MeshTag"},
		},
		{
			"line strip",
			func() *scene.Node { return scene.NewNode(scene.KindLine) },
			[]string{"LineTag"},
		},
		{
			"line loop",
			func() *scene.Node {
				n := scene.NewNode(scene.KindLine)
				n.Line = scene.LineLoop
				return n
			},
			[]string{"LineLoopTag", "LineTag"},
		},
		{
			"line segments",
			func() *scene.Node {
				n := scene.NewNode(scene.KindLine)
				n.Line = scene.LineSegments
				return n
			},
			[]string{"LineSegmentsTag", "LineTag"},
		},
		{
			"points",
			func() *scene.Node { return scene.NewNode(scene.KindPoints) },
			[]string{"PointsTag"},
		},
		{
			"sprite",
			func() *scene.Node { return scene.NewNode(scene.KindSprite) },
			[]string{"SpriteTag"},
		},
		{
			"perspective camera",
			func() *scene.Node { return scene.NewNode(scene.KindCamera) },
			[]string{"CameraTag", "PerspectiveCameraTag"},
		},
		{
			"orthographic camera",
			func() *scene.Node {
				n := scene.NewNode(scene.KindCamera)
				n.Projection = scene.ProjectionOrthographic
				return n
			},
			[]string{"CameraTag", "OrthographicCameraTag"},
		},
		{
			"array camera",
			func() *scene.Node {
				n := scene.NewNode(scene.KindCamera)
				n.TypeName = "ArrayCamera"
				return n
			},
			[]string{"ArrayCameraTag", "CameraTag", "PerspectiveCameraTag"},
		},
		{
			"cube camera",
			func() *scene.Node {
				n := scene.NewNode(scene.KindCamera)
				n.TypeName = "CubeCamera"
				return n
			},
			[]string{"CameraTag", "CubeCameraTag", "PerspectiveCameraTag"},
		},
		{
			"immediate render camera",
			func() *scene.Node {
				n := scene.NewNode(scene.KindCamera)
				n.ImmediateRender = true
				return n
			},
			[]string{"CameraTag", "ImmediateRenderObjectTag", "PerspectiveCameraTag"},
		},
		{
			"ambient light",
			func() *scene.Node { return scene.NewNode(scene.KindLight) },
			[]string{"AmbientLightTag", "LightTag"},
		},
		{
			"directional light",
			func() *scene.Node {
				n := scene.NewNode(scene.KindLight)
				n.Light = scene.LightDirectional
				return n
			},
			[]string{"DirectionalLightTag", "LightTag"},
		},
		{
			"hemisphere light",
			func() *scene.Node {
				n := scene.NewNode(scene.KindLight)
				n.Light = scene.LightHemisphere
				return n
			},
			[]string{"HemisphereLightTag", "LightTag"},
		},
		{
			"point light",
			func() *scene.Node {
				n := scene.NewNode(scene.KindLight)
				n.Light = scene.LightPoint
				return n
			},
			[]string{"LightTag", "PointLightTag"},
		},
		{
			"rect area light",
			func() *scene.Node {
				n := scene.NewNode(scene.KindLight)
				n.Light = scene.LightRectArea
				return n
			},
			[]string{"LightTag", "RectAreaLightTag"},
		},
		{
			"spot light",
			func() *scene.Node {
				n := scene.NewNode(scene.KindLight)
				n.Light = scene.LightSpot
				return n
			},
			[]string{"LightTag", "SpotLightTag"},
		},
		{
			"ambient light probe",
			func() *scene.Node { return scene.NewNode(scene.KindLightProbe) },
			[]string{"AmbientLightProbeTag", "LightProbeTag"},
		},
		{
			"hemisphere light probe",
			func() *scene.Node {
				n := scene.NewNode(scene.KindLightProbe)
				n.Probe = scene.ProbeHemisphere
				return n
			},
			[]string{"HemisphereLightProbeTag", "LightProbeTag"},
		},
		{
			"audio",
			func() *scene.Node { return scene.NewNode(scene.KindAudio) },
			[]string{"AudioTag"},
		},
		{
			"positional audio",
			func() *scene.Node {
				n := scene.NewNode(scene.KindAudio)
				n.Positional = true
				return n
			},
			[]string{"PositionalAudioTag"},
		},
		{
			"audio listener",
			func() *scene.Node { return scene.NewNode(scene.KindAudioListener) },
			[]string{"AudioListenerTag"},
		},
		{
			"scene root",
			func() *scene.Node { return scene.NewNode(scene.KindScene) },
			[]string{"SceneTag"},
		},
		{
			"sky dome",
			func() *scene.Node { return scene.NewNode(scene.KindSky) },
			[]string{"SkyboxTag"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := ecs.NewWorld(16)
			graph := scene.NewGraph("test")
			s := object3d.NewSynchronizer(world, graph, nil, nil)
			e := world.CreateEntity()
			s.Attach(e, object3d.Attachment{Node: tt.node()})

			got := tagNames(world, e)
			if len(got) != len(tt.want) {
				t.Fatalf("tags = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("tags = %v, want %v", got, tt.want)
				}
			}
		})
	}
}
