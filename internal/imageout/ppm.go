package imageout

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
)

// EncodePPM writes a binary Netpbm image: P5 for *image.Gray, P6 otherwise.
// Alpha is discarded.
func EncodePPM(w io.Writer, img image.Image) error {
	b := img.Bounds()
	bw := bufio.NewWriter(w)

	if gray, ok := img.(*image.Gray); ok {
		fmt.Fprintf(bw, "P5\n%d %d\n255\n", b.Dx(), b.Dy())
		for y := b.Min.Y; y < b.Max.Y; y++ {
			off := gray.PixOffset(b.Min.X, y)
			if _, err := bw.Write(gray.Pix[off : off+b.Dx()]); err != nil {
				return err
			}
		}
		return bw.Flush()
	}

	fmt.Fprintf(bw, "P6\n%d %d\n255\n", b.Dx(), b.Dy())
	row := make([]byte, 0, b.Dx()*3)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row = row[:0]
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			row = append(row, c.R, c.G, c.B)
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ToGray converts img to 8-bit greyscale, for P5 output of binary renders.
func ToGray(img image.Image) *image.Gray {
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			gray.Set(x-b.Min.X, y-b.Min.Y, img.At(x, y))
		}
	}
	return gray
}
