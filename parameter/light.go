package parameter

// Lit-textured shading terms, summed then multiplied into the texel RGB
const (
	AmbientIntensity = 0.3
	SunIntensity     = 0.2

	// Sun direction before normalization
	SunDirX = 1.0
	SunDirY = 5.0
	SunDirZ = 2.0
)

// ClearColor is the opaque frame clear color (RGBA, 0..1)
var ClearColor = [4]float32{0, 0, 0, 1}
