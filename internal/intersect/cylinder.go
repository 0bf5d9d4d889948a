package intersect

import (
	"math"

	"whitted-tracer/internal/mathutil"
	"whitted-tracer/internal/scene"
)

// Cylinder intersects the lateral surface and both caps and returns the
// smallest positive distance among all valid candidates.
func Cylinder(ray mathutil.Ray, c scene.Cylinder) (float64, bool) {
	best := math.Inf(1)
	half := c.Height / 2

	oc := ray.Origin.Sub(c.Center)
	dv := ray.Direction.Dot(c.Axis)
	ov := oc.Dot(c.Axis)

	// Lateral surface: quadratic in the plane perpendicular to the axis.
	// a = |d|² - (d·A)², b = 2[oc·d - (oc·A)(d·A)], cc = |oc|² - (oc·A)² - r²
	a := ray.Direction.LenSq() - dv*dv
	if math.Abs(a) >= mathutil.ParallelEpsilon {
		b := 2 * (oc.Dot(ray.Direction) - ov*dv)
		cc := oc.LenSq() - ov*ov - c.Radius*c.Radius
		disc := b*b - 4*a*cc
		if disc >= 0 {
			sqrtD := math.Sqrt(disc)
			for _, t := range [2]float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)} {
				if t <= mathutil.MinHitDistance || t >= best {
					continue
				}
				// Axial extent check: projection relative to the centre in [-H/2, H/2].
				if h := ov + t*dv; h >= -half && h <= half {
					best = t
				}
			}
		}
	}

	// Caps: planes perpendicular to the axis through the top and bottom centres.
	if math.Abs(dv) >= mathutil.ParallelEpsilon {
		r2 := c.Radius * c.Radius
		for _, center := range [2]mathutil.Vec3{c.TopCenter(), c.BottomCenter()} {
			t := center.Sub(ray.Origin).Dot(c.Axis) / dv
			if t <= mathutil.MinHitDistance || t >= best {
				continue
			}
			if ray.At(t).Sub(center).LenSq() <= r2 {
				best = t
			}
		}
	}

	if math.IsInf(best, 1) {
		return 0, false
	}
	return best, true
}

// cylinderUV maps the angle around the axis to u and the axial position to v.
func cylinderUV(s *scene.Shape, p mathutil.Vec3) (float64, float64) {
	c := s.Cylinder
	rel := p.Sub(c.Center)
	h := rel.Dot(c.Axis)

	helper := mathutil.Vec3{1, 0, 0}
	if math.Abs(c.Axis[0]) > 0.9 {
		helper = mathutil.Vec3{0, 1, 0}
	}
	e1 := helper.Cross(c.Axis).Normalize()
	e2 := c.Axis.Cross(e1)

	u := 0.5 + math.Atan2(rel.Dot(e2), rel.Dot(e1))/(2*math.Pi)
	v := math.Max(0, math.Min(1, (h+c.Height/2)/c.Height))
	return u, v
}
