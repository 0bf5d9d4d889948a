package mathutil

// Ray is a half-line origin + t·direction. Direction is not required to be unit length.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}
