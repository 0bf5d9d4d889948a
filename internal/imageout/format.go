package imageout

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format names an output encoding.
type Format string

const (
	PNG  Format = "png"
	WebP Format = "webp"
	BMP  Format = "bmp"
	PPM  Format = "ppm" // P6 colour, or P5 for greyscale images
)

// ParseFormat accepts a format name or extension, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(s, "."))); f {
	case PNG, WebP, BMP, PPM:
		return f, nil
	case "pgm":
		return PPM, nil
	}
	return "", fmt.Errorf("imageout: unknown format %q", s)
}

// FormatFromPath derives the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}
