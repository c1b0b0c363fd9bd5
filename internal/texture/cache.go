package texture

import "sync"

// Resolver resolves a texture name to a decoded float canvas.
type Resolver interface {
	Resolve(texName string) *FloatImage
}

// Cache memoizes decoded source textures across bake jobs. Decoding a
// source into a float canvas is expensive (megabytes per texture), and
// batch workers frequently ask for the same diffuse/AO maps at the same
// time, so each path gets a single-flight entry: the first caller decodes
// under the entry's Once while later callers block on it instead of
// decoding again. Failed loads are cached as nil so a missing file is
// hit on disk only once per run.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
	index   *Index
}

type cacheEntry struct {
	once sync.Once
	img  *FloatImage
}

// NewCache creates a texture cache backed by the given index.
func NewCache(index *Index) *Cache {
	return &Cache{
		entries: make(map[string]*cacheEntry),
		index:   index,
	}
}

// Resolve loads and caches a texture by name. Returns nil if the name is
// not indexed or the file cannot be decoded.
func (c *Cache) Resolve(texName string) *FloatImage {
	path, ok := c.index.ResolvePath(texName)
	if !ok {
		return nil
	}

	c.mu.Lock()
	entry, exists := c.entries[path]
	if !exists {
		entry = &cacheEntry{}
		c.entries[path] = entry
	}
	c.mu.Unlock()

	entry.once.Do(func() {
		entry.img, _ = Load(path)
	})
	return entry.img
}
