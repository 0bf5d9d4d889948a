package batch

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultPattern matches frame documents in a sequence directory.
const DefaultPattern = "frame_*.json"

// Frame is one scene document to render.
type Frame struct {
	Name string // file stem, used for the output image name
	Path string
}

// Discover lists documents in dir matching pattern, sorted by name.
func Discover(dir, pattern string) ([]Frame, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	paths, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("batch: discover %s: %w", dir, err)
	}
	sort.Strings(paths)

	frames := make([]Frame, 0, len(paths))
	for _, p := range paths {
		frames = append(frames, NewFrame(p))
	}
	return frames, nil
}

// NewFrame names a single document after its file stem.
func NewFrame(path string) Frame {
	base := filepath.Base(path)
	return Frame{Name: strings.TrimSuffix(base, filepath.Ext(base)), Path: path}
}
