package texture

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// Extensions lists the file extensions Load can decode.
var Extensions = []string{".png", ".jpg", ".jpeg", ".tga", ".bmp"}

// Supported reports whether path has a decodable extension.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load reads a PNG, JPEG, TGA or BMP file and returns it as NRGBA with origin (0,0).
func Load(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}
	defer f.Close()

	img, err := decode(f, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	return toNRGBA(img), nil
}

// decode dispatches on extension. The TGA decoder registers an empty magic
// string, so image.Decode sniffing is not used.
func decode(r io.Reader, ext string) (image.Image, error) {
	switch ext {
	case ".tga":
		return tga.Decode(r)
	case ".bmp":
		return bmp.Decode(r)
	case ".png":
		return png.Decode(r)
	case ".jpg", ".jpeg":
		return jpeg.Decode(r)
	}
	return nil, fmt.Errorf("unknown extension %q", ext)
}

// toNRGBA converts any image to NRGBA, rebased to the origin.
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
