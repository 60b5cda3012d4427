package suggest

import (
	"strings"
	"sync"
	"time"
)

type cacheEntry struct {
	suggestions []string
	cachedAt    time.Time
}

// Cache keeps recent suggestion lists keyed by normalized query so
// repeated searches skip the LLM. Entries expire after the TTL.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cacheEntry
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the cached suggestions for a query if still fresh.
func (c *Cache) Get(query string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[cacheKey(query)]
	if !ok || !fresh(entry.cachedAt, c.now(), c.ttl) {
		return nil, false
	}
	return entry.suggestions, true
}

// Put stores suggestions for a query, stamping them with the current
// time.
func (c *Cache) Put(query string, suggestions []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[cacheKey(query)] = cacheEntry{
		suggestions: suggestions,
		cachedAt:    c.now(),
	}
}

// fresh is the expiry rule: an entry is usable while its age is below
// the TTL.
func fresh(cachedAt, now time.Time, ttl time.Duration) bool {
	return now.Sub(cachedAt) < ttl
}

func cacheKey(query string) string {
	return strings.ReplaceAll(strings.ToLower(query), " ", "_")
}
