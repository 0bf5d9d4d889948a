package scene

import "whitted-tracer/internal/mathutil"

// ProjectionPinhole is the only projection model implemented.
const ProjectionPinhole = "pinhole"

// Camera describes the viewpoint and image size of a render.
type Camera struct {
	Projection string
	Width      int
	Height     int
	Position   mathutil.Vec3
	LookAt     mathutil.Vec3
	Up         mathutil.Vec3
	FOV        float64 // degrees, full field of view
	Exposure   float64
}

// AspectRatio returns Width/Height.
func (c *Camera) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}

// Validate checks image size, field of view, exposure, projection and that
// the placement vectors are finite. The view basis is checked by the ray generator.
func (c *Camera) Validate() error {
	if c.Projection != "" && c.Projection != ProjectionPinhole {
		return ConfigErrorf("unsupported camera type %q", c.Projection)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return ConfigErrorf("image size %dx%d", c.Width, c.Height)
	}
	if c.FOV <= 0 || c.FOV >= 180 {
		return ConfigErrorf("fov %g outside (0,180)", c.FOV)
	}
	if c.Exposure <= 0 {
		return ConfigErrorf("exposure %g <= 0", c.Exposure)
	}
	for _, v := range []mathutil.Vec3{c.Position, c.LookAt, c.Up} {
		if !v.IsFinite() {
			return ConfigErrorf("camera vector %v is not finite", v)
		}
	}
	return nil
}
