package scene

import (
	"math"

	"whitted-tracer/internal/mathutil"
)

// Kind tags the geometry variant held by a Shape.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindSphere
	KindCylinder
	KindTriangle
	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindCylinder:
		return "cylinder"
	case KindTriangle:
		return "triangle"
	}
	return "unknown"
}

// Valid reports whether k names an implemented variant.
func (k Kind) Valid() bool {
	return k > KindUnknown && k < kindCount
}

type Sphere struct {
	Center mathutil.Vec3
	Radius float64
}

// Cylinder is a capped cylinder. Height is the full height; the caps sit at
// ±Height/2 along Axis from Center.
type Cylinder struct {
	Center mathutil.Vec3
	Axis   mathutil.Vec3 // unit length
	Radius float64
	Height float64
}

func (c Cylinder) TopCenter() mathutil.Vec3 {
	return c.Center.Add(c.Axis.Scale(c.Height / 2))
}

func (c Cylinder) BottomCenter() mathutil.Vec3 {
	return c.Center.Sub(c.Axis.Scale(c.Height / 2))
}

type Triangle struct {
	V0, V1, V2 mathutil.Vec3
}

// Edges returns V1-V0 and V2-V0.
func (t Triangle) Edges() (mathutil.Vec3, mathutil.Vec3) {
	return t.V1.Sub(t.V0), t.V2.Sub(t.V0)
}

// Shape is a closed variant over Sphere, Cylinder and Triangle. Only the field
// matching Kind is meaningful.
type Shape struct {
	Kind     Kind
	Material Material

	Sphere   Sphere
	Cylinder Cylinder
	Triangle Triangle
}

func NewSphere(center mathutil.Vec3, radius float64, mat Material) Shape {
	return Shape{Kind: KindSphere, Material: mat, Sphere: Sphere{Center: center, Radius: radius}}
}

// NewCylinder normalizes axis. A zero axis is kept as zero and rejected by Validate.
func NewCylinder(center, axis mathutil.Vec3, radius, height float64, mat Material) Shape {
	return Shape{Kind: KindCylinder, Material: mat, Cylinder: Cylinder{
		Center: center,
		Axis:   axis.Normalize(),
		Radius: radius,
		Height: height,
	}}
}

func NewTriangle(v0, v1, v2 mathutil.Vec3, mat Material) Shape {
	return Shape{Kind: KindTriangle, Material: mat, Triangle: Triangle{V0: v0, V1: v1, V2: v2}}
}

var normalFuncs = [kindCount]func(*Shape, mathutil.Vec3) mathutil.Vec3{
	KindSphere:   sphereNormal,
	KindCylinder: cylinderNormal,
	KindTriangle: triangleNormal,
}

// NormalAt returns the outward unit normal at a point on the surface.
// Unknown kinds yield the zero vector.
func (s *Shape) NormalAt(p mathutil.Vec3) mathutil.Vec3 {
	if !s.Kind.Valid() {
		return mathutil.Vec3{}
	}
	return normalFuncs[s.Kind](s, p)
}

func sphereNormal(s *Shape, p mathutil.Vec3) mathutil.Vec3 {
	return p.Sub(s.Sphere.Center).Normalize()
}

func cylinderNormal(s *Shape, p mathutil.Vec3) mathutil.Vec3 {
	c := s.Cylinder
	h := p.Sub(c.Center).Dot(c.Axis)
	radial := p.Sub(c.Center.Add(c.Axis.Scale(h)))

	// The nearer surface wins: distance to the cap plane against distance to the wall.
	capDist := math.Abs(c.Height/2 - math.Abs(h))
	sideDist := math.Abs(c.Radius - radial.Len())
	if capDist <= sideDist {
		if h >= 0 {
			return c.Axis
		}
		return c.Axis.Neg()
	}
	return radial.Normalize()
}

func triangleNormal(s *Shape, _ mathutil.Vec3) mathutil.Vec3 {
	e1, e2 := s.Triangle.Edges()
	return e1.Cross(e2).Normalize()
}

// Validate checks the geometry of the shape and its material.
func (s *Shape) Validate() error {
	switch s.Kind {
	case KindSphere:
		if s.Sphere.Radius <= 0 {
			return ConfigErrorf("sphere radius %g <= 0", s.Sphere.Radius)
		}
	case KindCylinder:
		c := s.Cylinder
		if c.Radius <= 0 {
			return ConfigErrorf("cylinder radius %g <= 0", c.Radius)
		}
		if c.Height <= 0 {
			return ConfigErrorf("cylinder height %g <= 0", c.Height)
		}
		if math.Abs(c.Axis.Len()-1) > 1e-6 {
			return ConfigErrorf("cylinder axis %v is not a direction", c.Axis)
		}
	case KindTriangle:
		e1, e2 := s.Triangle.Edges()
		if e1.Cross(e2).Len() <= mathutil.ParallelEpsilon {
			return ConfigErrorf("triangle %v %v %v is degenerate", s.Triangle.V0, s.Triangle.V1, s.Triangle.V2)
		}
	default:
		return ConfigErrorf("unknown shape kind %d", s.Kind)
	}
	return s.Material.Validate()
}
