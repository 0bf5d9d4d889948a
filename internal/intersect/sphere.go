package intersect

import (
	"math"

	"whitted-tracer/internal/mathutil"
	"whitted-tracer/internal/scene"
)

// SphereDiscriminant returns the quarter discriminant halfB² - a·c of the
// ray-sphere quadratic. Its sign decides whether the ray's line meets the sphere.
func SphereDiscriminant(ray mathutil.Ray, s scene.Sphere) float64 {
	oc := ray.Origin.Sub(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius
	return halfB*halfB - a*c
}

// Sphere solves |o + t·d - center|² = r² and returns the smallest positive root.
func Sphere(ray mathutil.Ray, s scene.Sphere) (float64, bool) {
	a := ray.Direction.Dot(ray.Direction)
	if a < mathutil.ParallelEpsilon {
		return 0, false
	}
	oc := ray.Origin.Sub(s.Center)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	disc := halfB*halfB - a*c
	if disc < 0 {
		return 0, false
	}
	sqrtD := math.Sqrt(disc)

	// Try the closer root first, then the farther one (origin inside the sphere).
	if t := (-halfB - sqrtD) / a; t > mathutil.MinHitDistance {
		return t, true
	}
	if t := (-halfB + sqrtD) / a; t > mathutil.MinHitDistance {
		return t, true
	}
	return 0, false
}

// sphereUV maps a surface point to longitude/latitude coordinates.
func sphereUV(s *scene.Shape, p mathutil.Vec3) (float64, float64) {
	n := p.Sub(s.Sphere.Center).Normalize()
	u := 0.5 + math.Atan2(n[2], n[0])/(2*math.Pi)
	v := 0.5 - math.Asin(math.Max(-1, math.Min(1, n[1])))/math.Pi
	return u, v
}
