package shading

import (
	"math"

	"whitted-tracer/internal/mathutil"
	"whitted-tracer/internal/scene"
)

// LocalIllumination evaluates Blinn-Phong at a surface point.
//
// Per light: diffuse = I·kd·diffuseColor·max(0, n·l) and
// specular = I·ks·specularColor·max(0, n·h)^exponent with h = normalize(v + l).
// Specular is only added for lights in front of the surface. Ambient is added
// once, independent of the lights. The sum is clamped to [0,1].
//
// normal and viewDir must be unit vectors; viewDir points from the surface towards the viewer.
func LocalIllumination(point, normal mathutil.Vec3, mat *scene.Material, viewDir mathutil.Vec3, lights []scene.Light) scene.Color {
	color := mat.AmbientColor
	for i := range lights {
		color = color.Add(lightContribution(point, normal, mat, viewDir, &lights[i]))
	}
	return color.Clamp()
}

func lightContribution(point, normal mathutil.Vec3, mat *scene.Material, viewDir mathutil.Vec3, light *scene.Light) scene.Color {
	lightDir := light.Position.Sub(point).Normalize()
	ndl := normal.Dot(lightDir)
	if ndl <= 0 {
		return scene.Black
	}

	diffuse := light.Intensity.Mul(mat.DiffuseColor).Scale(mat.Kd * ndl)

	half := viewDir.Add(lightDir).Normalize()
	ndh := math.Max(0, normal.Dot(half))
	spec := math.Pow(ndh, float64(mat.SpecularExponent))
	specular := light.Intensity.Mul(mat.SpecularColor).Scale(mat.Ks * spec)

	return diffuse.Add(specular)
}
