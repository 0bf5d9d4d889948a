package intersect

import (
	"math"

	"whitted-tracer/internal/mathutil"
	"whitted-tracer/internal/scene"
)

// Hit describes the nearest intersection of a ray with a shape.
type Hit struct {
	Shape     *scene.Shape
	Index     int // position of Shape in the slice passed to ClosestHit
	Distance  float64
	Point     mathutil.Vec3
	Normal    mathutil.Vec3 // outward unit normal
	FrontFace bool          // ray arrived from the side the outward normal points to
	U, V      float64       // surface coordinates in [0,1]
}

// FacingNormal returns the normal oriented against the incoming ray.
func (h *Hit) FacingNormal() mathutil.Vec3 {
	if h.FrontFace {
		return h.Normal
	}
	return h.Normal.Neg()
}

type intersector func(ray mathutil.Ray, s *scene.Shape) (float64, bool)

type uvMapper func(s *scene.Shape, p mathutil.Vec3) (float64, float64)

var intersectors = [...]intersector{
	scene.KindSphere:   func(r mathutil.Ray, s *scene.Shape) (float64, bool) { return Sphere(r, s.Sphere) },
	scene.KindCylinder: func(r mathutil.Ray, s *scene.Shape) (float64, bool) { return Cylinder(r, s.Cylinder) },
	scene.KindTriangle: func(r mathutil.Ray, s *scene.Shape) (float64, bool) {
		t, _, _, ok := Triangle(r, s.Triangle)
		return t, ok
	},
}

var uvMappers = [...]uvMapper{
	scene.KindSphere:   sphereUV,
	scene.KindCylinder: cylinderUV,
	scene.KindTriangle: triangleUV,
}

// distance returns the nearest positive ray parameter at which ray meets s.
// Unknown kinds never report a hit.
func distance(ray mathutil.Ray, s *scene.Shape) (float64, bool) {
	if !s.Kind.Valid() || int(s.Kind) >= len(intersectors) {
		return 0, false
	}
	return intersectors[s.Kind](ray, s)
}

// Intersect tests a single shape and fills a Hit on success.
func Intersect(ray mathutil.Ray, s *scene.Shape) (Hit, bool) {
	t, ok := distance(ray, s)
	if !ok {
		return Hit{}, false
	}
	return record(ray, s, -1, t), true
}

// ClosestHit returns the hit with the strictly smallest positive distance over shapes.
// Equal distances keep the earlier shape.
func ClosestHit(ray mathutil.Ray, shapes []scene.Shape) (Hit, bool) {
	best := math.Inf(1)
	bestIdx := -1
	for i := range shapes {
		if t, ok := distance(ray, &shapes[i]); ok && t < best {
			best = t
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return Hit{}, false
	}
	return record(ray, &shapes[bestIdx], bestIdx, best), true
}

// AnyHit reports whether the ray hits any shape at a positive distance.
func AnyHit(ray mathutil.Ray, shapes []scene.Shape) bool {
	return AnyHitBefore(ray, shapes, math.Inf(1))
}

// AnyHitBefore reports whether the ray hits any shape strictly nearer than maxDist.
func AnyHitBefore(ray mathutil.Ray, shapes []scene.Shape, maxDist float64) bool {
	for i := range shapes {
		if t, ok := distance(ray, &shapes[i]); ok && t < maxDist {
			return true
		}
	}
	return false
}

func record(ray mathutil.Ray, s *scene.Shape, idx int, t float64) Hit {
	p := ray.At(t)
	n := s.NormalAt(p)
	u, v := uvMappers[s.Kind](s, p)
	return Hit{
		Shape:     s,
		Index:     idx,
		Distance:  t,
		Point:     p,
		Normal:    n,
		FrontFace: ray.Direction.Dot(n) < 0,
		U:         u,
		V:         v,
	}
}
