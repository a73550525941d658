package fonts

import (
	"sync"
	"time"

	"golang.org/x/image/font/sfnt"

	"github.com/alexisbeaulieu97/iconsmith/internal/config"
)

// DefaultTTL bounds how long a parsed font stays cached before the next
// resolve re-reads the source.
const DefaultTTL = 5 * time.Minute

type cacheEntry struct {
	font    *sfnt.Font
	expires time.Time
}

// Cache memoizes font resolution with a per-entry TTL. Construct it around
// any Resolver; it is safe for concurrent use.
type Cache struct {
	inner Resolver
	ttl   time.Duration
	now   func() time.Time

	mu      sync.Mutex
	entries map[string]cacheEntry
}

// NewCache wraps inner with TTL-based memoization. A non-positive ttl uses
// DefaultTTL.
func NewCache(inner Resolver, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		inner:   inner,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// Resolve returns the cached font for the spec's source settings, resolving
// through the wrapped resolver on miss or expiry. Failed resolutions are
// never cached.
func (c *Cache) Resolve(spec *config.TextForeground) (*sfnt.Font, error) {
	key := spec.FontSource + "|" + spec.FontFamily + "|" + spec.FontPath

	c.mu.Lock()
	entry, ok := c.entries[key]
	if ok && c.now().Before(entry.expires) {
		c.mu.Unlock()
		return entry.font, nil
	}
	c.mu.Unlock()

	font, err := c.inner.Resolve(spec)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{font: font, expires: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return font, nil
}

// Clear drops every cached entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}
