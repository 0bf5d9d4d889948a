// Package imageout encodes rendered images to files.
package imageout

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/bmp"
)

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case WebP:
		return nativewebp.Encode(w, img, nil)
	case BMP:
		return bmp.Encode(w, img)
	case PPM:
		return EncodePPM(w, img)
	}
	return fmt.Errorf("imageout: unknown format %q", f)
}

// Write encodes img to path, creating parent directories as needed.
func Write(path string, img image.Image, f Format) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("imageout: create dir for %s: %w", path, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageout: create %s: %w", path, err)
	}

	bw := bufio.NewWriter(file)
	if err := Encode(bw, img, f); err != nil {
		file.Close()
		return fmt.Errorf("imageout: encode %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("imageout: write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("imageout: close %s: %w", path, err)
	}
	return nil
}
