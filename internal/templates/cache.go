package templates

import (
	"fmt"
	"io/fs"
	"sync"
)

// Cache holds template text for the lifetime of a run. Entries are
// populated on first load and never evicted; template files are
// immutable while a run is in progress.
type Cache struct {
	source  fs.FS
	mu      sync.RWMutex
	entries map[string]string
}

// NewCache creates a cache reading from source. A nil source means the
// embedded scaffold templates.
func NewCache(source fs.FS) *Cache {
	if source == nil {
		source = Builtin()
	}
	return &Cache{
		source:  source,
		entries: make(map[string]string),
	}
}

// Load returns the named template's text, reading it from the source
// on first access. Concurrent first loads of the same name may each
// read the file; the values are identical, so last writer wins.
func (c *Cache) Load(name string) (string, error) {
	c.mu.RLock()
	text, ok := c.entries[name]
	c.mu.RUnlock()
	if ok {
		return text, nil
	}

	data, err := fs.ReadFile(c.source, name)
	if err != nil {
		return "", fmt.Errorf("failed to load template %s: %w", name, err)
	}

	text = string(data)
	c.mu.Lock()
	c.entries[name] = text
	c.mu.Unlock()

	return text, nil
}
