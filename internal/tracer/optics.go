package tracer

import (
	"math"

	"whitted-tracer/internal/mathutil"
)

// Reflect mirrors d about the unit normal n: d − 2(d·n)n.
func Reflect(d, n mathutil.Vec3) mathutil.Vec3 {
	return d.Sub(n.Scale(2 * d.Dot(n)))
}

// Refract bends the unit direction d through a surface with unit normal n facing
// against d, where eta is the ratio n1/n2 of the refractive indices.
// It reports false on total internal reflection, when no refracted ray exists.
func Refract(d, n mathutil.Vec3, eta float64) (mathutil.Vec3, bool) {
	cosI := -d.Dot(n)
	k := 1 - eta*eta*(1-cosI*cosI)
	if k < 0 {
		return mathutil.Vec3{}, false
	}
	return d.Scale(eta).Add(n.Scale(eta*cosI - math.Sqrt(k))).Normalize(), true
}
