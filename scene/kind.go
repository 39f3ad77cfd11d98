package scene

import "fmt"

// Kind is a node's primary runtime subtype. It is assigned once at
// construction so consumers can dispatch on an explicit enumeration instead
// of probing boolean markers repeatedly.
type Kind uint8

const (
	// KindObject is a plain transform node with no specific subtype.
	KindObject Kind = iota
	KindGroup
	KindBone
	KindMesh
	KindLine
	KindPoints
	KindSprite
	KindCamera
	KindLight
	KindLightProbe
	KindAudio
	KindAudioListener
	KindLOD
	KindScene
	KindSky
)

var kindNames = [...]string{
	KindObject:        "object",
	KindGroup:         "group",
	KindBone:          "bone",
	KindMesh:          "mesh",
	KindLine:          "line",
	KindPoints:        "points",
	KindSprite:        "sprite",
	KindCamera:        "camera",
	KindLight:         "light",
	KindLightProbe:    "lightprobe",
	KindAudio:         "audio",
	KindAudioListener: "audiolistener",
	KindLOD:           "lod",
	KindScene:         "scene",
	KindSky:           "sky",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind converts a kind name (as used in node spec files) back to its
// Kind value.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return KindObject, fmt.Errorf("scene: unknown node kind %q", s)
}

// Projection selects a camera's projection model.
type Projection uint8

const (
	ProjectionPerspective Projection = iota
	ProjectionOrthographic
)

// LightKind is the subtype of a light node.
type LightKind uint8

const (
	LightAmbient LightKind = iota
	LightDirectional
	LightHemisphere
	LightPoint
	LightRectArea
	LightSpot
)

// ProbeKind is the subtype of a light-probe node.
type ProbeKind uint8

const (
	ProbeAmbient ProbeKind = iota
	ProbeHemisphere
)

// LineKind is the topology of a line node.
type LineKind uint8

const (
	LineStrip LineKind = iota
	LineLoop
	LineSegments
)
