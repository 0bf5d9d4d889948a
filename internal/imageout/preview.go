package imageout

import (
	"image"

	"golang.org/x/image/draw"
)

// Preview scales img down so its longer side is at most maxDim, keeping the
// aspect ratio. Images already within bounds are returned unchanged.
func Preview(img *image.NRGBA, maxDim int) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxDim <= 0 || (w <= maxDim && h <= maxDim) {
		return img
	}

	tw, th := maxDim, maxDim
	if w > h {
		th = max(1, h*maxDim/w)
	} else {
		tw = max(1, w*maxDim/h)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, tw, th))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
