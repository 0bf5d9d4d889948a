package scene

import "whitted-tracer/internal/mathutil"

// Light is a point light. Intensity is an unclamped per-channel multiplier.
type Light struct {
	Position  mathutil.Vec3
	Intensity Color
}
