package camera

import (
	"math"

	"whitted-tracer/internal/mathutil"
	"whitted-tracer/internal/scene"
)

// degenerateBasis is the minimum |up × forward| accepted for a view basis.
const degenerateBasis = 1e-6

// Generator maps pixel coordinates to world-space primary rays for a pinhole camera.
type Generator struct {
	origin  mathutil.Vec3
	view    mathutil.Mat4
	width   int
	height  int
	tanHalf float64
	aspect  float64

	Right, Up, Forward mathutil.Vec3
}

// NewGenerator validates the camera and precomputes its orthonormal basis.
// An up hint parallel to the view direction is a configuration error.
func NewGenerator(cam scene.Camera) (*Generator, error) {
	if err := cam.Validate(); err != nil {
		return nil, err
	}

	view := cam.LookAt.Sub(cam.Position)
	if view.Len() <= mathutil.NormalizeEpsilon {
		return nil, scene.ConfigErrorf("camera lookAt %v coincides with position", cam.LookAt)
	}
	forward := view.Normalize()

	side := cam.Up.Cross(forward)
	if side.Len() <= degenerateBasis {
		return nil, scene.ConfigErrorf("camera up %v is parallel to view direction %v", cam.Up, forward)
	}
	right := side.Normalize()
	up := forward.Cross(right)

	return &Generator{
		origin:  cam.Position,
		view:    mathutil.BasisMat4(right, up, forward),
		width:   cam.Width,
		height:  cam.Height,
		tanHalf: math.Tan(mathutil.Deg2Rad(cam.FOV) / 2),
		aspect:  cam.AspectRatio(),
		Right:   right,
		Up:      up,
		Forward: forward,
	}, nil
}

// Ray returns the normalized primary ray through the centre of pixel (x, y).
// Row 0 is the top of the image.
func (g *Generator) Ray(x, y int) mathutil.Ray {
	ndcX := 2*(float64(x)+0.5)/float64(g.width) - 1
	ndcY := 1 - 2*(float64(y)+0.5)/float64(g.height)

	local := mathutil.Vec3{
		ndcX * g.tanHalf * g.aspect,
		ndcY * g.tanHalf,
		1, // image plane at unit distance
	}
	dir := g.view.MulHomogeneous(local).Normalize()
	return mathutil.Ray{Origin: g.origin, Direction: dir}
}

// Size returns the image width and height.
func (g *Generator) Size() (int, int) {
	return g.width, g.height
}
