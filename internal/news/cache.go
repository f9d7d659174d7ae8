package news

import (
	"sync"
	"time"

	"github.com/truenorthdata/newsdash/pkg/models"
)

// cache holds the last computed news tables together with when they were
// computed. A zero fetchedAt means no table is held.
type cache struct {
	mu        sync.Mutex
	items     []models.NewsItem
	all       []models.NewsItem
	fetchedAt time.Time
	ttl       time.Duration
}

func newCache(ttl time.Duration) *cache {
	return &cache{ttl: ttl}
}

func (c *cache) get(now time.Time) (items, all []models.NewsItem, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fetchedAt.IsZero() || now.Sub(c.fetchedAt) > c.ttl {
		return nil, nil, false
	}
	return c.items, c.all, true
}

func (c *cache) set(items, all []models.NewsItem, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
	c.all = all
	c.fetchedAt = now
}

func (c *cache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.all = nil
	c.fetchedAt = time.Time{}
}
