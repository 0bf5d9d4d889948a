package shading

import (
	"math"
	"testing"

	"whitted-tracer/internal/mathutil"
	"whitted-tracer/internal/scene"
)

func closeColor(a, b scene.Color, eps float64) bool {
	return math.Abs(a.R-b.R) <= eps && math.Abs(a.G-b.G) <= eps && math.Abs(a.B-b.B) <= eps
}

func matteMaterial(diffuse scene.Color) scene.Material {
	return scene.Material{
		DiffuseColor:  diffuse,
		SpecularColor: scene.White,
		AmbientColor:  scene.DefaultAmbient(diffuse, scene.DefaultAmbientFactor),
		Kd:            1,
		Ks:            0,
	}
}

func TestLocalIlluminationIncidence(t *testing.T) {
	diffuse := scene.Color{R: 0.6, G: 0.3, B: 0.2}
	mat := matteMaterial(diffuse)
	point := mathutil.Vec3{0, 0, 5}
	normal := mathutil.Vec3{0, 0, -1}
	view := mathutil.Vec3{0, 0, -1}

	tests := []struct {
		name  string
		light mathutil.Vec3
		want  scene.Color
	}{
		{"normal incidence", mathutil.Vec3{0, 0, 0}, diffuse.Add(mat.AmbientColor).Clamp()},
		{"grazing", mathutil.Vec3{100, 0, 5}, mat.AmbientColor},
		{"behind surface", mathutil.Vec3{0, 0, 10}, mat.AmbientColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lights := []scene.Light{{Position: tt.light, Intensity: scene.White}}
			got := LocalIllumination(point, normal, &mat, view, lights)
			if !closeColor(got, tt.want, 1e-9) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLocalIlluminationNoLights(t *testing.T) {
	mat := matteMaterial(scene.Color{R: 1, G: 1, B: 1})
	got := LocalIllumination(mathutil.Vec3{}, mathutil.Vec3{0, 1, 0}, &mat, mathutil.Vec3{0, 1, 0}, nil)
	if !closeColor(got, mat.AmbientColor, 1e-12) {
		t.Errorf("got %+v, want ambient %+v", got, mat.AmbientColor)
	}
}

func TestLocalIlluminationSpecularPeak(t *testing.T) {
	mat := scene.Material{
		SpecularColor:    scene.Color{R: 0.5, G: 0.5, B: 0.5},
		Ks:               1,
		SpecularExponent: 64,
	}
	point := mathutil.Vec3{}
	normal := mathutil.Vec3{0, 1, 0}
	lights := []scene.Light{{Position: mathutil.Vec3{0, 10, 0}, Intensity: scene.White}}

	peak := LocalIllumination(point, normal, &mat, mathutil.Vec3{0, 1, 0}, lights)
	if !closeColor(peak, mat.SpecularColor, 1e-9) {
		t.Errorf("peak = %+v, want %+v", peak, mat.SpecularColor)
	}

	off := LocalIllumination(point, normal, &mat, mathutil.Vec3{1, 1, 0}.Normalize(), lights)
	if off.R >= peak.R {
		t.Errorf("off-axis highlight %g not below peak %g", off.R, peak.R)
	}
}

func TestLocalIlluminationClamped(t *testing.T) {
	mat := matteMaterial(scene.White)
	lights := []scene.Light{
		{Position: mathutil.Vec3{0, 5, 0}, Intensity: scene.Color{R: 3, G: 3, B: 3}},
		{Position: mathutil.Vec3{0, 5, 1}, Intensity: scene.White},
	}
	got := LocalIllumination(mathutil.Vec3{}, mathutil.Vec3{0, 1, 0}, &mat, mathutil.Vec3{0, 1, 0}, lights)
	if got != scene.White {
		t.Errorf("got %+v, want clamped white", got)
	}
}
