package scene

import "math"

// Color is a linear RGB triple. Channels are nominally in [0,1] but intermediate
// shading sums may exceed that range until Clamp or tone mapping.
type Color struct {
	R, G, B float64
}

var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

func (c Color) Sub(o Color) Color {
	return Color{c.R - o.R, c.G - o.G, c.B - o.B}
}

// Mul returns the component-wise product.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B}
}

func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Lerp returns (1-k)·c + k·o.
func (c Color) Lerp(o Color, k float64) Color {
	return c.Scale(1 - k).Add(o.Scale(k))
}

// Clamp projects each channel into [0,1]. NaN channels become 0.
func (c Color) Clamp() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
