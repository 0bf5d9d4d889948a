package texture

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Index maps lowercase texture stems to files under a texture directory,
// so scene documents may name a texture without its path or extension.
type Index struct {
	root    string
	entries map[string]string // stem → full path
}

// BuildIndex walks dir recursively for decodable images. When two files share
// a stem the one found first in lexical walk order wins. A missing dir yields
// an empty index.
func BuildIndex(dir string) *Index {
	idx := &Index{root: dir, entries: make(map[string]string)}
	if dir == "" {
		return idx
	}
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !Supported(path) {
			return nil
		}
		stem := stemOf(path)
		if _, exists := idx.entries[stem]; !exists {
			idx.entries[stem] = path
		}
		return nil
	})
	return idx
}

// ResolvePath returns the indexed file whose stem matches name.
func (idx *Index) ResolvePath(name string) (string, bool) {
	path, ok := idx.entries[stemOf(name)]
	return path, ok
}

// Root returns the indexed directory.
func (idx *Index) Root() string {
	return idx.root
}

// Len returns the number of indexed textures.
func (idx *Index) Len() int {
	return len(idx.entries)
}

func stemOf(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	base := filepath.Base(name)
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}
