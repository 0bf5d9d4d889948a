package raster

import (
	"math"

	"whitted-tracer/internal/scene"
)

// ToneMap scales c by exposure and clamps each channel to [0,1].
func ToneMap(c scene.Color, exposure float64) scene.Color {
	return c.Scale(exposure).Clamp()
}

// Quantize maps a channel in [0,1] to 0..255 using round(v·255).
// Out-of-range and NaN inputs are clamped first.
func Quantize(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}
