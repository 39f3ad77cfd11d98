package scene

// Material holds the surface parameters of a renderable node.
type Material struct {
	Name     string
	Color    Color
	Emissive Color
	Opacity  float64
	// LightmapBaked marks materials whose lighting is precomputed and
	// baked into a texture; such surfaces must not receive dynamic
	// shadows on top of the baked ones.
	LightmapBaked bool
}

// NewMaterial creates an opaque white material.
func NewMaterial() *Material {
	return &Material{
		Color:   Color{R: 1, G: 1, B: 1},
		Opacity: 1,
	}
}
