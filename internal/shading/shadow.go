package shading

import (
	"whitted-tracer/internal/intersect"
	"whitted-tracer/internal/mathutil"
	"whitted-tracer/internal/scene"
)

// DefaultBias offsets shadow and secondary ray origins off the surface to avoid shadow acne.
const DefaultBias = 1e-4

// Occluded reports whether any shape lies strictly between point and the light.
// The shadow ray starts bias along the to-light direction.
func Occluded(point mathutil.Vec3, shapes []scene.Shape, light *scene.Light, bias float64) bool {
	toLight := light.Position.Sub(point)
	dist := toLight.Len()
	if dist <= bias {
		return false
	}
	dir := toLight.Scale(1 / dist)
	ray := mathutil.Ray{Origin: point.Add(dir.Scale(bias)), Direction: dir}
	return intersect.AnyHitBefore(ray, shapes, dist-bias)
}

// InShadow reports whether point is occluded from at least one light, using DefaultBias.
func InShadow(point mathutil.Vec3, shapes []scene.Shape, lights []scene.Light) bool {
	for i := range lights {
		if Occluded(point, shapes, &lights[i], DefaultBias) {
			return true
		}
	}
	return false
}
