package server

import (
	"fmt"
	"os"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mj1618/a11ycheck/internal/model"
	"github.com/mj1618/a11ycheck/internal/platform"
)

// DefaultCacheSize is the number of parsed dumps kept in memory.
const DefaultCacheSize = 64

// cacheKey identifies one version of a dump file on disk.
type cacheKey struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// DumpCache keeps parsed element dumps keyed by path, size and modification
// time, so an edited file is always re-read.
type DumpCache struct {
	mu     sync.Mutex
	lru    *lru.Cache[cacheKey, []model.RawElement]
	hits   int
	misses int
}

// NewDumpCache creates a cache. A size of 0 disables caching.
func NewDumpCache(size int) (*DumpCache, error) {
	if size <= 0 {
		return &DumpCache{}, nil
	}
	c, err := lru.New[cacheKey, []model.RawElement](size)
	if err != nil {
		return nil, fmt.Errorf("create dump cache: %w", err)
	}
	return &DumpCache{lru: c}, nil
}

// ReadElements returns cached elements for an unchanged file, otherwise reads
// fresh. Stdin is never cached. Identifier filtering is applied after the
// cache so one entry serves every ignore list.
func (c *DumpCache) ReadElements(reader platform.Reader, opts platform.ReadOptions) ([]model.RawElement, error) {
	ignore := opts.IgnoreIdentifiers
	opts.IgnoreIdentifiers = nil

	if c.lru == nil || opts.Path == platform.StdinPath {
		return c.read(reader, opts, ignore)
	}
	info, err := os.Stat(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("read element dump: %w", err)
	}
	key := cacheKey{Path: opts.Path, Size: info.Size(), ModTime: info.ModTime()}

	if elements, ok := c.lru.Get(key); ok {
		c.count(true)
		return model.FilterByIdentifier(elements, ignore), nil
	}
	c.count(false)

	elements, err := reader.ReadElements(opts)
	if err != nil {
		return nil, err
	}
	c.lru.Add(key, elements)
	return model.FilterByIdentifier(elements, ignore), nil
}

func (c *DumpCache) read(reader platform.Reader, opts platform.ReadOptions, ignore []string) ([]model.RawElement, error) {
	elements, err := reader.ReadElements(opts)
	if err != nil {
		return nil, err
	}
	return model.FilterByIdentifier(elements, ignore), nil
}

func (c *DumpCache) count(hit bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if hit {
		c.hits++
	} else {
		c.misses++
	}
}

// Stats returns hit and miss counts.
func (c *DumpCache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// Len returns the number of cached dumps.
func (c *DumpCache) Len() int {
	if c.lru == nil {
		return 0
	}
	return c.lru.Len()
}

// InvalidateAll clears the cache.
func (c *DumpCache) InvalidateAll() {
	if c.lru != nil {
		c.lru.Purge()
	}
}
