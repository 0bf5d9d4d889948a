package intersect

import (
	"math"

	"whitted-tracer/internal/mathutil"
	"whitted-tracer/internal/scene"
)

// Triangle intersects using the Möller-Trumbore algorithm and returns the ray
// parameter plus the barycentric coordinates (u, v) of V1 and V2.
// Rays parallel to the plane (|det| < 1e-8) miss.
func Triangle(ray mathutil.Ray, tri scene.Triangle) (t, u, v float64, ok bool) {
	edge1, edge2 := tri.Edges()

	pvec := ray.Direction.Cross(edge2)
	det := edge1.Dot(pvec)
	if math.Abs(det) < mathutil.ParallelEpsilon {
		return 0, 0, 0, false
	}
	invDet := 1 / det

	tvec := ray.Origin.Sub(tri.V0)
	u = tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	qvec := tvec.Cross(edge1)
	v = ray.Direction.Dot(qvec) * invDet
	if v < 0 || v > 1 || u+v > 1 {
		return 0, 0, 0, false
	}

	t = edge2.Dot(qvec) * invDet
	if t <= mathutil.MinHitDistance {
		return 0, 0, 0, false
	}
	return t, u, v, true
}

// triangleUV recovers the barycentric coordinates of a point in the triangle's plane.
func triangleUV(s *scene.Shape, p mathutil.Vec3) (float64, float64) {
	e1, e2 := s.Triangle.Edges()
	w := p.Sub(s.Triangle.V0)

	d11 := e1.Dot(e1)
	d12 := e1.Dot(e2)
	d22 := e2.Dot(e2)
	dw1 := w.Dot(e1)
	dw2 := w.Dot(e2)

	denom := d11*d22 - d12*d12
	if math.Abs(denom) < mathutil.ParallelEpsilon {
		return 0, 0
	}
	u := (d22*dw1 - d12*dw2) / denom
	v := (d11*dw2 - d12*dw1) / denom
	return u, v
}
