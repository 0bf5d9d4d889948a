package texture

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Resolver resolves a texture reference from a scene document to a sampler.
type Resolver interface {
	Resolve(name string) (*Image, error)
}

// Cache is a concurrency-safe texture cache. A texture referenced by many
// shapes or frames is decoded once.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
	index *Index
}

type cacheEntry struct {
	img *Image
	err error
}

// NewCache creates a cache that looks up bare names in index. index may be nil.
func NewCache(index *Index) *Cache {
	return &Cache{
		items: make(map[string]*cacheEntry),
		index: index,
	}
}

// Resolve loads and caches a texture. name may be a path (absolute, or relative
// to the working directory or index root) or a bare stem found in the index.
// Failed loads are cached too.
func (c *Cache) Resolve(name string) (*Image, error) {
	path, err := c.locate(name)
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	if entry, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return entry.img, entry.err
	}
	c.mu.RUnlock()

	var entry cacheEntry
	if img, err := Load(path); err != nil {
		entry.err = err
	} else {
		entry.img = NewImage(img)
	}

	c.mu.Lock()
	if existing, exists := c.items[path]; exists {
		c.mu.Unlock()
		return existing.img, existing.err
	}
	c.items[path] = &entry
	c.mu.Unlock()

	return entry.img, entry.err
}

// Len returns the number of cached entries, failed loads included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Cache) locate(name string) (string, error) {
	candidates := []string{name}
	if c.index != nil && c.index.Root() != "" && !filepath.IsAbs(name) {
		candidates = append(candidates, filepath.Join(c.index.Root(), name))
	}
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return filepath.Clean(p), nil
		}
	}
	if c.index != nil {
		if p, ok := c.index.ResolvePath(name); ok {
			return p, nil
		}
	}
	return "", fmt.Errorf("texture: resolve %s: %w", name, os.ErrNotExist)
}
