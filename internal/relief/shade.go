package relief

import (
	"math"

	"voronoi-relief/internal/field"
)

// viewDir is the camera axis: looking straight down Z.
var viewDir = field.Vec3{X: 0, Y: 0, Z: 1}

// Light is the immutable lighting parameter set for one render.
type Light struct {
	Direction         field.Vec3 // normalized internally
	Intensity         float64
	Ambient           float64
	ShadowDepth       float64
	Wetness           float64
	SpecularIntensity float64
	SpecularPower     float64
	Reflection        [3]float64
}

// Shade evaluates the diffuse + Blinn-Phong specular reflection model per
// pixel. The height field drives the valley-darkening term
// shadow = 1 - (1-h)*shadowDepth, a linear attenuation of the directional
// light by elevation, so carved regions read as recessed regardless of the
// raw lighting dot product.
//
// The per-pixel color is
//
//	diffuse = clamp01(ambient + max(0, n·L) * intensity * shadow)
//	spec    = max(0, n·H)^power * specularIntensity
//	out     = base*diffuse*(1-wetness) + reflection*spec*wetness
//
// with H the half-vector between the light and the straight-down view axis.
// base may be nil, in which case baseColor fills every pixel. The output has
// 3 channels and every channel clamped to [0,1].
func Shade(normals *field.Normals, height *field.Field, light Light, base *field.Image, baseColor [3]float64) *field.Image {
	out := field.NewImage(normals.W, normals.H, 3)
	if normals.W == 0 || normals.H == 0 {
		return out
	}

	lightDir := light.Direction.Normalize()
	halfVec := lightDir.Add(viewDir).Normalize()

	matte := 1 - light.Wetness
	gloss := light.Wetness

	for i := 0; i < normals.W*normals.H; i++ {
		n := field.Vec3{X: normals.X[i], Y: normals.Y[i], Z: normals.Z[i]}

		ndl := n.Dot(lightDir)
		if ndl < 0 {
			ndl = 0
		}
		shadow := 1 - (1-height.Values()[i])*light.ShadowDepth
		diffuse := clamp01(light.Ambient + ndl*light.Intensity*shadow)

		ndh := n.Dot(halfVec)
		if ndh < 0 {
			ndh = 0
		}
		spec := math.Pow(ndh, light.SpecularPower) * light.SpecularIntensity

		px := i * 3
		for c := 0; c < 3; c++ {
			b := baseColor[c]
			if base != nil {
				b = base.Pix[i*base.C+c%base.C]
			}
			out.Pix[px+c] = clamp01(b*diffuse*matte + light.Reflection[c]*spec*gloss)
		}
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
