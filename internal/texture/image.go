package texture

import (
	"image"

	"whitted-tracer/internal/scene"
)

// Image is a decoded texture sampled with bilinear filtering. It implements scene.Texture.
type Image struct {
	img *image.NRGBA
}

// NewImage wraps an NRGBA image. The image must not be modified afterwards.
func NewImage(img *image.NRGBA) *Image {
	return &Image{img: img}
}

// Bounds returns the texture size.
func (t *Image) Bounds() image.Rectangle {
	return t.img.Rect
}

// Sample returns the bilinearly filtered colour at (u, v). Coordinates wrap;
// v = 0 is the bottom row of the image.
func (t *Image) Sample(u, v float64) scene.Color {
	r, g, b := sampleBilinear(t.img, wrap(u), 1-wrap(v))
	return scene.Color{R: r, G: g, B: b}
}

// sampleBilinear filters the four texels around (u, v) in image space
// (v = 0 at the top row). Channels are returned in [0,1].
func sampleBilinear(tex *image.NRGBA, u, v float64) (r, g, b float64) {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()
	if w == 0 || h == 0 {
		return 0, 0, 0
	}

	u = wrap(u)
	v = wrap(v)

	fx := u * float64(w-1)
	fy := v * float64(h-1)
	x0 := int(fx)
	y0 := int(fy)
	x1 := (x0 + 1) % w
	y1 := (y0 + 1) % h
	dx := fx - float64(x0)
	dy := fy - float64(y0)

	stride := tex.Stride
	pix := tex.Pix

	i00 := y0*stride + x0*4
	i10 := y0*stride + x1*4
	i01 := y1*stride + x0*4
	i11 := y1*stride + x1*4

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	channel := func(c int) float64 {
		return (float64(pix[i00+c])*w00 + float64(pix[i10+c])*w10 +
			float64(pix[i01+c])*w01 + float64(pix[i11+c])*w11) / 255
	}
	return channel(0), channel(1), channel(2)
}

// wrapEpsilon absorbs barycentric rounding just outside [0,1].
const wrapEpsilon = 1e-9

// wrap maps t into [0,1). Exactly 1 stays 1 so the last texel is reachable,
// and values within wrapEpsilon of the unit range clamp to it.
func wrap(t float64) float64 {
	if t >= -wrapEpsilon && t <= 1+wrapEpsilon {
		return min(max(t, 0), 1)
	}
	t -= float64(int(t))
	if t < 0 {
		t += 1
	}
	return t
}
