package raster

import (
	"image"

	"whitted-tracer/internal/scene"
)

// FrameBuffer holds the traced image as a flat row-major slice, top row first.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []scene.Color // len = W*H
}

// NewFrameBuffer allocates a black buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Pix:    make([]scene.Color, w*h),
	}
}

func (fb *FrameBuffer) At(x, y int) scene.Color {
	return fb.Pix[y*fb.Width+x]
}

func (fb *FrameBuffer) Set(x, y int, c scene.Color) {
	fb.Pix[y*fb.Width+x] = c
}

// Row returns the pixels of row y. The slice aliases the buffer.
func (fb *FrameBuffer) Row(y int) []scene.Color {
	off := y * fb.Width
	return fb.Pix[off : off+fb.Width]
}

// ToNRGBA quantizes the buffer into an opaque 8-bit image.
func (fb *FrameBuffer) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		off := y * img.Stride
		for x, c := range fb.Row(y) {
			i := off + x*4
			img.Pix[i] = Quantize(c.R)
			img.Pix[i+1] = Quantize(c.G)
			img.Pix[i+2] = Quantize(c.B)
			img.Pix[i+3] = 255
		}
	}
	return img
}
